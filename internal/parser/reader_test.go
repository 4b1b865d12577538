package parser

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderReadLine(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("ls -la\n\npwd"), &out)

	line, err := r.ReadLine("$ ")
	require.NoError(t, err)
	assert.Equal(t, "ls -la\n", line)

	line, err = r.ReadLine("$ ")
	require.NoError(t, err)
	assert.Equal(t, "\n", line)

	line, err = r.ReadLine("$ ")
	require.NoError(t, err)
	assert.Equal(t, "pwd", line)

	_, err = r.ReadLine("$ ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "$ $ $ $ ", out.String())
}

func TestReaderLongLine(t *testing.T) {
	long := strings.Repeat("a", 1<<20)
	r := NewReader(strings.NewReader(long+"\n"), nil)

	line, err := r.ReadLine("")
	require.NoError(t, err)
	assert.Len(t, line, len(long)+1)
}

func TestReaderError(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(iotest.ErrReader(boom), io.Discard)

	_, err := r.ReadLine("$ ")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, io.EOF)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestReaderPromptError(t *testing.T) {
	r := NewReader(strings.NewReader("ls\n"), failingWriter{})

	_, err := r.ReadLine("$ ")
	assert.EqualError(t, err, "write prompt: closed")
}
