package palette

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type terminalBackend struct {
	in  *os.File
	out io.Writer
}

// NewTerminalBackend prompts on the controlling terminal with tab
// completion over the choices.
func NewTerminalBackend() Backend {
	return &terminalBackend{in: os.Stdin, out: os.Stderr}
}

func (b *terminalBackend) Capabilities() Capabilities {
	return Capabilities{FreeText: true, Completion: true}
}

func (b *terminalBackend) Ask(prompt string, choices []string) (string, error) {
	fd := int(b.in.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("terminal palette requires an interactive stdin")
	}

	if list := formatChoices(choices); list != "" {
		fmt.Fprintf(b.out, "%s\n", strings.ReplaceAll(list, "\n", "  "))
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{b.in, b.out}, prompt+": ")
	t.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
		if key != '\t' {
			return "", 0, false
		}
		completed, ok := completeChoice(choices, line)
		if !ok {
			return "", 0, false
		}
		return completed, len(completed), true
	}

	line, err := t.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ErrCancelled
	}
	return line, nil
}

// completeChoice extends line to the longest common prefix of the choices
// that start with it.
func completeChoice(choices []string, line string) (string, bool) {
	var matches []string
	for _, c := range choices {
		if strings.HasPrefix(c, line) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	prefix := matches[0]
	for _, m := range matches[1:] {
		for !strings.HasPrefix(m, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	if prefix == line {
		return "", false
	}
	return prefix, true
}
