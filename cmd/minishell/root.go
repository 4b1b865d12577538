package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"minishell/internal/parser"
	"minishell/internal/prompt"
	"minishell/internal/shell"
)

var rootCmd = &cobra.Command{
	Use:           "minishell",
	Short:         "A minimal interactive command interpreter",
	Long:          `Reads command lines from stdin, runs the cd, exit and env builtins itself and everything else as an external program.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run())
	},
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func run() int {
	var reader parser.LineReader = parser.NewReader(os.Stdin, os.Stdout)

	colored := false
	if interactive() {
		rl, err := parser.NewReadline()
		if err != nil {
			shell.NewLogger(os.Stderr).Printf("falling back to plain input: %v", err)
		} else {
			defer closeQuietly(rl)
			reader = rl
			colored = true
		}
	}

	return shell.New(reader, prompt.String(colored)).Run()
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
