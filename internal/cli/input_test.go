package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, terminal bool, pw []byte, err error) {
	t.Helper()
	origRP, origIT := readPassword, isTerminal
	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return pw, err }
	t.Cleanup(func() {
		readPassword = origRP
		isTerminal = origIT
	})
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("secret"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), "[Login] Enter Password: ", &out)

	require.NoError(t, err)
	assert.Equal(t, "secret", string(pw))
	assert.Equal(t, "[Login] Enter Password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "pw: ", &out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	tests := []struct {
		name    string
		input   string
		want    string
		wantEOF bool
	}{
		{name: "unix newline", input: "secret\nrest", want: "secret"},
		{name: "crlf", input: "secret\r\n", want: "secret"},
		{name: "no newline", input: "secret", want: "secret"},
		{name: "empty line", input: "\n", want: ""},
		{name: "nothing", input: "", wantEOF: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			pw, err := GetPassword(rdr(tt.input), "pw: ", &out)
			if tt.wantEOF {
				require.ErrorIs(t, err, io.EOF)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(pw))
		})
	}
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		rest  string
	}{
		{name: "dot finishes", input: "a\nb\n.\nsave\n", want: "a\nb", rest: "save\n"},
		{name: "blank lines kept", input: "a\n\n\nb\n.\n", want: "a\n\n\nb"},
		{name: "crlf", input: "a\r\nb\r\n.\r\n", want: "a\nb"},
		{name: "indentation kept", input: "  indented\n\tTab\n.\n", want: "  indented\n\tTab"},
		{name: "dot inside a line", input: "end.\n. \n.\n", want: "end.\n. "},
		{name: "eof without terminator", input: "a\n\nb", want: "a\n\nb"},
		{name: "empty text", input: ".\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := rdr(tt.input)
			got, err := GetMultiline(r, "Enter text", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			rest, _ := io.ReadAll(r)
			assert.Equal(t, tt.rest, string(rest))
		})
	}
}

func TestGetMultiline_NothingEntered(t *testing.T) {
	var out bytes.Buffer
	_, err := GetMultiline(rdr(""), "Enter text", &out)
	require.ErrorIs(t, err, io.EOF)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestGetMultiline_ReadError(t *testing.T) {
	var out bytes.Buffer
	_, err := GetMultiline(bufio.NewReader(failingReader{}), "Enter text", &out)
	require.EqualError(t, err, "read failed")
}
