package palette

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

type formBackend struct {
	run func(*huh.Form) error
}

// NewFormBackend prompts with a full-screen huh form. Choices become
// suggestions accepted with tab.
func NewFormBackend() Backend {
	return &formBackend{run: (*huh.Form).Run}
}

func (b *formBackend) Capabilities() Capabilities {
	return Capabilities{FreeText: true, Completion: true}
}

func (b *formBackend) Ask(prompt string, choices []string) (string, error) {
	var answer string
	input := huh.NewInput().
		Title(prompt).
		Value(&answer)
	if list := formatChoices(choices); list != "" {
		input = input.
			Suggestions(strings.Split(list, "\n")).
			Description(strings.ReplaceAll(list, "\n", ", "))
	}

	form := huh.NewForm(huh.NewGroup(input))
	if err := b.run(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", ErrCancelled
	}
	return answer, nil
}
