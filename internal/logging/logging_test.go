package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNew_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", "text", false, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("Running command", "command", "workspace 101:work")
	logger.Debug("hidden")

	output := buf.String()
	if !strings.Contains(output, `command="workspace 101:work"`) {
		t.Fatalf("expected command attr in output, got: %s", output)
	}
	if strings.Contains(output, "hidden") {
		t.Fatalf("debug line should be filtered at info level, got: %s", output)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", "json", false, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("test message")

	output := buf.String()
	if !strings.HasPrefix(output, "{") || !strings.Contains(output, `"msg":"test message"`) {
		t.Fatalf("expected JSON output, got: %s", output)
	}
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("error", "text", true, &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Fatalf("debug message should appear in verbose mode, got: %s", buf.String())
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, err := New("info", "xml", false, nil); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
