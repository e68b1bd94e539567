package palette

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestRofiBuildArgs(t *testing.T) {
	b := NewRofiBackend().(*dmenuLikeBackend)

	args := b.buildArgs("Group name")
	if !containsArgs(args, "-p", "Group name") {
		t.Fatalf("expected -p prompt in args, got %v", args)
	}
	if !containsArg(args, "-dmenu") || !containsArg(args, "-i") {
		t.Fatalf("expected -dmenu -i in args, got %v", args)
	}
	if containsArg(args, "-no-custom") {
		t.Fatalf("typed entries must be allowed, got %v", args)
	}
	if containsArg(args, "-matching") {
		t.Fatalf("fuzzy matching should be off by default, got %v", args)
	}
}

func TestRofiBuildArgs_FuzzyMatching(t *testing.T) {
	b := NewRofiBackend().(*dmenuLikeBackend)
	b.SetFuzzyMatching(true)

	if args := b.buildArgs("prompt"); !containsArgs(args, "-matching", "fuzzy") {
		t.Fatalf("expected -matching fuzzy in args, got %v", args)
	}
}

func TestBuildArgs_OtherBackends(t *testing.T) {
	tests := []struct {
		backend Backend
		a, b    string
	}{
		{NewFuzzelBackend(), "--prompt", "Workspace number: "},
		{NewWofiBackend(), "--prompt", "Workspace number"},
		{NewDmenuBackend(), "-p", "Workspace number"},
	}
	for _, tt := range tests {
		args := tt.backend.(*dmenuLikeBackend).buildArgs("Workspace number")
		if !containsArgs(args, tt.a, tt.b) {
			t.Errorf("%s args = %v, want %s %q", tt.backend.(*dmenuLikeBackend).command, args, tt.a, tt.b)
		}
	}
}

func TestFormatChoices(t *testing.T) {
	got := formatChoices([]string{"work", "", "play\n", "work", "  code  "})
	if got != "work\nplay\ncode" {
		t.Fatalf("formatChoices = %q", got)
	}
}

// fakeLauncher installs a script named like a launcher that prints out and
// exits with code.
func fakeLauncher(t *testing.T, out string, code int) *dmenuLikeBackend {
	t.Helper()
	dir := t.TempDir()
	script := filepath.Join(dir, "rofi")
	body := "#!/bin/sh\ncat >/dev/null\nprintf '%s' '" + out + "'\nexit " + string(rune('0'+code)) + "\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	b := NewRofiBackend().(*dmenuLikeBackend)
	b.command = script
	return b
}

func TestAsk_ReturnsTypedText(t *testing.T) {
	b := fakeLauncher(t, "  new-group  ", 0)
	got, err := b.Ask("Group name", []string{"work"})
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if got != "new-group" {
		t.Fatalf("Ask = %q, want new-group", got)
	}
}

func TestAsk_Cancelled(t *testing.T) {
	for _, tt := range []struct {
		out  string
		code int
	}{
		{"", 1},
		{"", 0},
		{"   ", 0},
	} {
		b := fakeLauncher(t, tt.out, tt.code)
		if _, err := b.Ask("Group name", nil); !errors.Is(err, ErrCancelled) {
			t.Fatalf("Ask(out=%q, code=%d) error = %v, want ErrCancelled", tt.out, tt.code, err)
		}
	}
}

func TestAsk_Failure(t *testing.T) {
	b := fakeLauncher(t, "", 2)
	_, err := b.Ask("Group name", nil)
	if err == nil || errors.Is(err, ErrCancelled) {
		t.Fatalf("Ask error = %v, want launcher failure", err)
	}
	if !strings.Contains(err.Error(), "failed") {
		t.Fatalf("unexpected error text %q", err)
	}
}

func TestNewBackend(t *testing.T) {
	orig := lookPath
	lookPath = func(name string) (string, error) {
		if name == "wofi" {
			return "/usr/bin/wofi", nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = orig })

	b, err := NewBackend("auto")
	if err != nil {
		t.Fatalf("NewBackend(auto) error: %v", err)
	}
	if b.(*dmenuLikeBackend).command != "wofi" {
		t.Fatalf("auto picked %q, want wofi", b.(*dmenuLikeBackend).command)
	}
	if _, err := NewBackend("rofi"); err == nil {
		t.Fatal("NewBackend(rofi) succeeded without rofi in PATH")
	}
	if _, err := NewBackend("terminal"); err != nil {
		t.Fatalf("NewBackend(terminal) error: %v", err)
	}
	if b, err := NewBackend("form"); err != nil {
		t.Fatalf("NewBackend(form) error: %v", err)
	} else if _, ok := b.(*formBackend); !ok {
		t.Fatalf("NewBackend(form) = %T", b)
	}
	if _, err := NewBackend("zenity"); err == nil {
		t.Fatal("NewBackend(zenity) succeeded")
	}
}

func TestDetectBackend_TerminalFallback(t *testing.T) {
	origLook, origTTY := lookPath, stdinIsTerminal
	lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	t.Cleanup(func() { lookPath, stdinIsTerminal = origLook, origTTY })

	stdinIsTerminal = func() bool { return true }
	if name, err := DetectBackend(); err != nil || name != "terminal" {
		t.Fatalf("DetectBackend = %q, %v; want terminal", name, err)
	}

	stdinIsTerminal = func() bool { return false }
	if _, err := DetectBackend(); err == nil {
		t.Fatal("DetectBackend succeeded without launcher or terminal")
	}
}

func TestCompleteChoice(t *testing.T) {
	choices := []string{"work", "workshop", "play"}
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"p", "play", true},
		{"w", "work", true},
		{"work", "", false},
		{"x", "", false},
	}
	for _, tt := range tests {
		got, ok := completeChoice(choices, tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("completeChoice(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func containsArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func containsArgs(args []string, a string, b string) bool {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == a && args[i+1] == b {
			return true
		}
	}
	return false
}
