package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers from In and writes questions to Out
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// New creates a prompter. Hidden input is only possible when fd is a
// terminal; otherwise passwords are read as plain lines.
func New(in io.Reader, out io.Writer, fd int) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, fd: fd}
}

var std = New(os.Stdin, os.Stdout, int(os.Stdin.Fd()))

// String prompts for a single line
func (p *Prompter) String(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Password prompts for hidden input
func (p *Prompter) Password(label string) (string, error) {
	if !term.IsTerminal(p.fd) {
		return p.String(label)
	}

	fmt.Fprint(p.out, label)
	pw, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// Confirm prompts for yes/no
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.String(label + " (y/n) ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// Select prompts for one of options and returns its index
func (p *Prompter) Select(label string, options []string) (int, error) {
	fmt.Fprintln(p.out, label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "%d) %s\n", i+1, opt)
	}

	answer, err := p.String("Select option: ")
	if err != nil {
		return -1, err
	}

	var selection int
	if _, err := fmt.Sscanf(answer, "%d", &selection); err != nil {
		return -1, fmt.Errorf("invalid selection %q", answer)
	}
	if selection < 1 || selection > len(options) {
		return -1, fmt.Errorf("invalid selection")
	}
	return selection - 1, nil
}

// Multiline reads lines until an empty one or maxLines
func (p *Prompter) Multiline(label string, maxLines int) (string, error) {
	fmt.Fprintf(p.out, "%s (finish with an empty line):\n", label)

	var lines []string
	for i := 0; i < maxLines; i++ {
		line, err := p.in.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
		if err == io.EOF || (err == nil && trimmed == "") {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.Join(lines, "\n"), nil
}

// PromptString prompts on stdin
func PromptString(label string) (string, error) { return std.String(label) }

// PromptPassword prompts on stdin without echo
func PromptPassword(label string) (string, error) { return std.Password(label) }

// PromptConfirm prompts on stdin for yes/no
func PromptConfirm(label string) (bool, error) { return std.Confirm(label) }

// PromptSelect prompts on stdin for one of options
func PromptSelect(label string, options []string) (int, error) { return std.Select(label, options) }

// PromptMultilineString prompts on stdin for several lines
func PromptMultilineString(label string, maxLines int) (string, error) {
	return std.Multiline(label, maxLines)
}
