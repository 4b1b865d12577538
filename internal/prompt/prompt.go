package prompt

import "github.com/fatih/color"

const (
	Name = "minishell"
	Text = Name + "> "
)

var nameColor = color.New(color.FgGreen, color.Bold)

// String returns the prompt. Colored prompts are only meant for terminals;
// color.NoColor still wins when output is not a TTY.
func String(colored bool) string {
	if !colored {
		return Text
	}

	return nameColor.Sprint(Name) + "> "
}
