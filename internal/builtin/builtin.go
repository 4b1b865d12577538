// Package builtin holds the commands the shell runs in its own process.
package builtin

import (
	"io"
	"log"
)

// Status tells the read-eval loop whether to keep going.
type Status int

const (
	Continue Status = iota
	Terminate
)

// Context is what a handler may touch outside its arguments.
type Context struct {
	Stdout io.Writer
	// Log reports diagnostics on the error stream.
	Log *log.Logger
	// Environ returns the inherited environment as NAME=VALUE entries.
	Environ func() []string
	// Exit ends the process. If it returns, the handler asks the loop to stop.
	Exit func(code int)
}

// Handler runs a builtin. args[0] is the command name.
type Handler func(ctx *Context, args []string) Status

type Builtin struct {
	Name    string
	Handler Handler
}

// Registry is an ordered, read-only table of builtins.
type Registry struct {
	builtins []Builtin
}

func NewRegistry(builtins ...Builtin) *Registry {
	return &Registry{builtins: append([]Builtin(nil), builtins...)}
}

// Default returns the cd, exit and env builtins.
func Default() *Registry {
	return NewRegistry(
		Builtin{Name: "cd", Handler: Cd},
		Builtin{Name: "exit", Handler: Exit},
		Builtin{Name: "env", Handler: Env},
	)
}

// Lookup finds the first builtin registered under name. Matching is exact
// and case-sensitive.
func (r *Registry) Lookup(name string) (Handler, bool) {
	for _, b := range r.builtins {
		if b.Name == name {
			return b.Handler, true
		}
	}
	return nil, false
}

func (r *Registry) Len() int {
	return len(r.builtins)
}

