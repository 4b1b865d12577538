// Package shell runs the read-eval loop.
package shell

import (
	"errors"
	"io"
	"log"
	"os"

	"minishell/internal/builtin"
	"minishell/internal/execute"
	"minishell/internal/parser"
	"minishell/internal/prompt"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitFatal = 1
)

type Shell struct {
	Reader     parser.LineReader
	Dispatcher *execute.Dispatcher
	Log        *log.Logger
	Prompt     string
}

// NewLogger returns the diagnostic logger shared by the shell's parts.
func NewLogger(w io.Writer) *log.Logger {
	return log.New(w, prompt.Name+": ", 0)
}

// New wires a shell to the process's streams, environment and exit.
func New(reader parser.LineReader, promptText string) *Shell {
	logger := NewLogger(os.Stderr)

	return &Shell{
		Reader: reader,
		Dispatcher: &execute.Dispatcher{
			Builtins: builtin.Default(),
			Context: &builtin.Context{
				Stdout:  os.Stdout,
				Log:     logger,
				Environ: os.Environ,
				Exit:    os.Exit,
			},
			Launcher: execute.NewLauncher(logger),
		},
		Log:    logger,
		Prompt: promptText,
	}
}

// Run reads and executes lines until input ends, a builtin asks to stop,
// or reading fails. It returns the process exit code.
func (s *Shell) Run() int {
	for {
		line, err := s.Reader.ReadLine(s.Prompt)
		switch {
		case errors.Is(err, io.EOF):
			return ExitOK
		case err != nil:
			s.Log.Printf("read: %v", err)
			return ExitFatal
		}

		if s.Dispatcher.Dispatch(parser.Tokenize(line)) == builtin.Terminate {
			return ExitOK
		}
	}
}
