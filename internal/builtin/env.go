package builtin

import "fmt"

// Env prints the inherited environment, one NAME=VALUE per line, in the
// order the environment holds it.
func Env(ctx *Context, args []string) Status {
	for _, entry := range ctx.Environ() {
		if _, err := fmt.Fprintln(ctx.Stdout, entry); err != nil {
			ctx.Log.Printf("env: %v", err)
			break
		}
	}
	return Continue
}
