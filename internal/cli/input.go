package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for the x/term calls.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetPassword prints prompt to w and reads a password.
//
// On a terminal the password is read without echo and a newline is printed
// afterwards. When stdin is not a terminal (piped input) a single line is
// read from reader instead. io.EOF is returned when input ends before
// anything was entered.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}

	fd := int(os.Stdin.Fd())
	if isTerminal(fd) {
		pw, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return nil, err
		}
		return pw, nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// EndOfText is the line that finishes multi-line input.
const EndOfText = "."

// GetMultiline prints a prompt to w and reads lines until a line holding
// only EndOfText or the end of input. Blank lines are part of the text.
// Line endings are normalised to '\n'; other whitespace is kept as typed.
//
// io.EOF is returned when input ends before anything was entered.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n(finish with a line containing only %q)\n", prompt, EndOfText); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		eof := err != nil
		if eof && line == "" {
			if len(lines) == 0 {
				return "", io.EOF
			}
			break
		}

		line = strings.TrimRight(line, "\r\n")
		if line == EndOfText {
			break
		}
		lines = append(lines, line)
		if eof {
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}
