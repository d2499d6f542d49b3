// Package prompt reads interactive answers from a console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for a line of input.
type Prompter interface {
	Ask(label string) (string, error)
	AskSecret(label string) (string, error)
}

// Console prompts on an output writer and reads answers line by line.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
	isTTY  bool
}

// NewConsole creates a Console. When in is a terminal, secrets are read without echo.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{reader: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			c.fd = fd
			c.isTTY = true
		}
	}
	return c
}

// Ask prints label and returns the trimmed answer. io.EOF is returned only
// when the input ended before any character was read.
func (c *Console) Ask(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskSecret behaves like Ask but suppresses echo on a terminal.
func (c *Console) AskSecret(label string) (string, error) {
	if !c.isTTY {
		return c.Ask(label)
	}
	fmt.Fprint(c.out, label)
	secret, err := term.ReadPassword(c.fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

// Confirm asks a yes/no question; anything other than y or yes is a no.
func Confirm(p Prompter, label string) (bool, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
