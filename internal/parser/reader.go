package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/abiosoft/readline"
)

// LineReader shows a prompt and returns the next command line. It returns
// io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Reader reads lines from a plain stream, writing the prompt to out before
// each read. Lines may be arbitrarily long.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (r *Reader) ReadLine(prompt string) (string, error) {
	if r.out != nil {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}

	line, err := r.in.ReadString('\n')
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, io.EOF) && line != "":
		// Last line had no newline; EOF surfaces on the next call.
		return line, nil
	default:
		return "", err
	}
}

// Readline reads lines from a terminal with line editing and history.
type Readline struct {
	instance *readline.Instance
}

func NewReadline() (*Readline, error) {
	instance, err := readline.NewEx(&readline.Config{})
	if err != nil {
		return nil, fmt.Errorf("readline: %w", err)
	}

	return &Readline{instance: instance}, nil
}

// ReadLine discards the current line on interrupt and returns it empty.
func (r *Readline) ReadLine(prompt string) (string, error) {
	r.instance.SetPrompt(prompt)

	line, err := r.instance.Readline()
	switch {
	case err == readline.ErrInterrupt:
		return "", nil
	case err != nil:
		return "", err
	}

	return line, nil
}

func (r *Readline) Close() error {
	return r.instance.Close()
}

var (
	_ LineReader = (*Reader)(nil)
	_ LineReader = (*Readline)(nil)
)
