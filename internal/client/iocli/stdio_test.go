package iocli

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedStdio(input string, out io.Writer) *Stdio {
	return &Stdio{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: out,
	}
}

func TestNewStdio(t *testing.T) {
	assert.NotNil(t, NewStdio())
}

func TestStdio_PrintlnAndPrintf(t *testing.T) {
	var out strings.Builder
	stdio := bufferedStdio("", &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")

	assert.Equal(t, "hello world\ntest 1 abc", out.String())
}

func TestStdio_ReadInput(t *testing.T) {
	var out strings.Builder
	stdio := bufferedStdio("  user input  \n", &out)

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)

	// Пробелы по краям обрезаны, prompt напечатан без перевода строки
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())
}

func TestStdio_ReadInput_EOF(t *testing.T) {
	stdio := bufferedStdio("no newline", io.Discard)

	_, err := stdio.ReadInput("> ")
	assert.ErrorIs(t, err, io.EOF)
}
