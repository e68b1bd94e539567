package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

// RawConfig mirrors Config with every key optional so that files can be
// layered: a nil field means "not set here".
type RawConfig struct {
	Include IncludeList `yaml:"include"`

	GroupSize            *int    `yaml:"group_size"`
	GroupSpace           *int    `yaml:"group_space"`
	WindowManager        *string `yaml:"window_manager"`
	SocketPath           *string `yaml:"socket_path"`
	PaletteBackend       *string `yaml:"palette_backend"`
	PaletteFuzzyMatching *bool   `yaml:"palette_fuzzy_matching"`
	DryRun               *bool   `yaml:"dry_run"`
	LogLevel             *string `yaml:"log_level"`
	LogFormat            *string `yaml:"log_format"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c
	if overlay.GroupSize != nil {
		out.GroupSize = overlay.GroupSize
	}
	if overlay.GroupSpace != nil {
		out.GroupSpace = overlay.GroupSpace
	}
	if overlay.WindowManager != nil {
		out.WindowManager = overlay.WindowManager
	}
	if overlay.SocketPath != nil {
		out.SocketPath = overlay.SocketPath
	}
	if overlay.PaletteBackend != nil {
		out.PaletteBackend = overlay.PaletteBackend
	}
	if overlay.PaletteFuzzyMatching != nil {
		out.PaletteFuzzyMatching = overlay.PaletteFuzzyMatching
	}
	if overlay.DryRun != nil {
		out.DryRun = overlay.DryRun
	}
	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.LogFormat != nil {
		out.LogFormat = overlay.LogFormat
	}
	out.Include = nil
	return out
}

// BuildEffectiveConfig applies raw on top of the defaults.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()
	if raw.GroupSize != nil {
		cfg.GroupSize = *raw.GroupSize
	}
	if raw.GroupSpace != nil {
		cfg.GroupSpace = *raw.GroupSpace
	}
	if raw.WindowManager != nil {
		cfg.WindowManager = *raw.WindowManager
	}
	if raw.SocketPath != nil {
		cfg.SocketPath = *raw.SocketPath
	}
	if raw.PaletteBackend != nil {
		cfg.PaletteBackend = *raw.PaletteBackend
	}
	if raw.PaletteFuzzyMatching != nil {
		cfg.PaletteFuzzyMatching = *raw.PaletteFuzzyMatching
	}
	if raw.DryRun != nil {
		cfg.DryRun = *raw.DryRun
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.LogFormat != nil {
		cfg.LogFormat = *raw.LogFormat
	}
	return cfg
}
