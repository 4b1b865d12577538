package builtin

// Exit ends the shell with status 0. Any arguments, including a numeric
// code, are ignored.
func Exit(ctx *Context, args []string) Status {
	ctx.Exit(0)
	return Terminate
}
