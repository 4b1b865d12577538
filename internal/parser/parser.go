package parser

import "minishell/internal/slice"

// InitialCapacity is the number of arguments a command line can hold before
// the argument vector has to grow.
const InitialCapacity = 64

// Tokenize splits line into words separated by slice.Delims. Runs of
// delimiters never produce empty words, so a blank line yields an empty
// vector.
func Tokenize(line string) []string {
	args := make([]string, 0, InitialCapacity)

	for i := slice.TrimSpaces(line, 0); i < len(line); i = slice.TrimSpaces(line, i) {
		end := slice.WordEnd(line, i)

		if len(args) == cap(args) {
			args = slice.Grow(args)
		}
		args = append(args, line[i:end])

		i = end
	}

	return args
}
