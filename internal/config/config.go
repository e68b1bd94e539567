package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGroupSize  = 100
	DefaultGroupSpace = 1 << 20
)

// Config holds the application configuration.
type Config struct {
	GroupSize            int    `yaml:"group_size"`
	GroupSpace           int    `yaml:"group_space"`
	WindowManager        string `yaml:"window_manager"`
	SocketPath           string `yaml:"socket_path,omitempty"`
	PaletteBackend       string `yaml:"palette_backend"`
	PaletteFuzzyMatching bool   `yaml:"palette_fuzzy_matching"`
	DryRun               bool   `yaml:"dry_run"`
	LogLevel             string `yaml:"log_level"`
	LogFormat            string `yaml:"log_format"`
}

func DefaultConfig() *Config {
	return &Config{
		GroupSize:      DefaultGroupSize,
		GroupSpace:     DefaultGroupSpace,
		WindowManager:  "auto",
		PaletteBackend: "auto",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validate reports the first invalid key.
func (c *Config) Validate() error {
	if c.GroupSize < 2 {
		return &ValidationError{Path: "group_size", Err: fmt.Errorf("group_size must be >= 2")}
	}
	if c.GroupSpace < 2 {
		return &ValidationError{Path: "group_space", Err: fmt.Errorf("group_space must be >= 2")}
	}
	// Workspace numbers must stay within what i3 stores as a signed 32-bit int.
	if int64(c.GroupSpace)*int64(c.GroupSize) > math.MaxInt32 {
		return &ValidationError{Path: "group_space", Err: fmt.Errorf("group_space * group_size must not exceed %d", math.MaxInt32)}
	}
	switch c.WindowManager {
	case "auto", "i3", "sway", "ewmh":
	default:
		return &ValidationError{Path: "window_manager", Err: fmt.Errorf("window_manager must be one of: auto, i3, sway, ewmh")}
	}
	if c.SocketPath != "" && strings.TrimSpace(c.SocketPath) != c.SocketPath {
		return &ValidationError{Path: "socket_path", Err: fmt.Errorf("socket_path must not have surrounding whitespace")}
	}
	switch c.PaletteBackend {
	case "auto", "rofi", "fuzzel", "wofi", "dmenu", "terminal", "form":
	default:
		return &ValidationError{Path: "palette_backend", Err: fmt.Errorf("palette_backend must be one of: auto, rofi, fuzzel, wofi, dmenu, terminal, form")}
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return &ValidationError{Path: "log_format", Err: fmt.Errorf("log_format must be one of: text, json")}
	}
	return nil
}

// Marshal renders the effective configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path, creating the parent directory.
//
// Note: this marshals the effective config and will not preserve comments or
// include structure from the original YAML.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
