package palette

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/term"
)

// lookPath and stdinIsTerminal are replaced in tests.
var (
	lookPath        = exec.LookPath
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// DetectBackend returns the first available palette backend, in priority
// order: rofi, fuzzel, wofi, dmenu, then the terminal when stdin is one.
func DetectBackend() (string, error) {
	for _, name := range []string{"rofi", "fuzzel", "wofi", "dmenu"} {
		if _, err := lookPath(name); err == nil {
			return name, nil
		}
	}
	if stdinIsTerminal() {
		return "terminal", nil
	}
	return "", fmt.Errorf("no palette backend found in PATH (looked for: rofi, fuzzel, wofi, dmenu) and stdin is not a terminal")
}
