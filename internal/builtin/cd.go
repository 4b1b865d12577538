package builtin

import "os"

// Cd changes the working directory of the shell process. Arguments after
// the path are ignored.
func Cd(ctx *Context, args []string) Status {
	if len(args) < 2 {
		ctx.Log.Println("cd: missing argument")
		return Continue
	}

	if err := os.Chdir(args[1]); err != nil {
		ctx.Log.Printf("cd: %v", err)
	}
	return Continue
}
