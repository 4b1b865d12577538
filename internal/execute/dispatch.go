package execute

import "minishell/internal/builtin"

// Dispatcher routes an argument vector to a builtin or an external program.
type Dispatcher struct {
	Builtins *builtin.Registry
	Context  *builtin.Context
	Launcher ForkExecer
}

// Dispatch runs cmdArgs. Empty input is a no-op and external programs
// never stop the loop, whatever their outcome.
func (d *Dispatcher) Dispatch(cmdArgs []string) builtin.Status {
	if len(cmdArgs) == 0 {
		return builtin.Continue
	}

	if handler, ok := d.Builtins.Lookup(cmdArgs[0]); ok {
		return handler(d.Context, cmdArgs)
	}

	d.Launcher.Launch(cmdArgs)
	return builtin.Continue
}
