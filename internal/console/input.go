package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// prompter reads answers from the user. Secrets are read without echo when
// the input is a terminal.
type prompter struct {
	in       *bufio.Reader
	out      io.Writer
	terminal *os.File
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.terminal = f
	}
	return p
}

// line prints prompt and returns the next input line without its newline.
// A final line without a newline is still returned.
func (p *prompter) line(prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprint(p.out, prompt); err != nil {
			return "", err
		}
	}
	text, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(text) > 0 {
			return strings.TrimRight(text, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

// text is line with surrounding whitespace removed.
func (p *prompter) text(prompt string) (string, error) {
	s, err := p.line(prompt)
	return strings.TrimSpace(s), err
}

func (p *prompter) secret(prompt string) (string, error) {
	if p.terminal == nil {
		return p.line(prompt)
	}
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(int(p.terminal.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// multiline reads lines until an empty one and joins them with '\n'.
func (p *prompter) multiline(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt+" (empty line to finish)\n"); err != nil {
		return "", err
	}
	var lines []string
	for {
		s, err := p.line("")
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if s == "" {
			break
		}
		lines = append(lines, s)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// confirm asks for an exact "YES".
func (p *prompter) confirm(prompt string) bool {
	answer, err := p.text(prompt + " Type 'YES' to confirm: ")
	return err == nil && answer == "YES"
}
