// Package palette asks the user for a group name or workspace number
// through a dmenu-style launcher or the terminal.
package palette

import (
	"fmt"
	"strings"
)

// Prompter asks for one line of input. choices are offered for selection,
// but typed text that matches none of them is returned as is. Cancelling or
// entering nothing returns ErrCancelled.
type Prompter interface {
	Ask(prompt string, choices []string) (string, error)
}

// Capabilities describes what features a backend supports.
type Capabilities struct {
	FreeText   bool // Accepts typed entries that are not in the list
	Completion bool // Tab-completes against the choices
	Fuzzy      bool // Supports fuzzy matching of choices
}

// Backend is a Prompter that reports its capabilities.
type Backend interface {
	Prompter
	Capabilities() Capabilities
}

// AutoDetect selects the first available backend in priority order.
func AutoDetect() (Backend, error) {
	name, err := DetectBackend()
	if err != nil {
		return nil, err
	}
	return NewBackend(name)
}

// NewBackend creates a backend by name.
//
// Supported names: auto, rofi, fuzzel, wofi, dmenu, terminal, form.
func NewBackend(name string) (Backend, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", "auto":
		return AutoDetect()
	case "rofi", "fuzzel", "wofi", "dmenu":
		if _, err := lookPath(n); err != nil {
			return nil, fmt.Errorf("palette backend %q not found in PATH", n)
		}
		switch n {
		case "rofi":
			return NewRofiBackend(), nil
		case "fuzzel":
			return NewFuzzelBackend(), nil
		case "wofi":
			return NewWofiBackend(), nil
		default:
			return NewDmenuBackend(), nil
		}
	case "terminal":
		return NewTerminalBackend(), nil
	case "form":
		return NewFormBackend(), nil
	default:
		return nil, fmt.Errorf("unknown palette backend: %q (expected: auto, rofi, fuzzel, wofi, dmenu, terminal, form)", name)
	}
}
