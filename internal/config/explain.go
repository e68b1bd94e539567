package config

import (
	"fmt"
)

// Explain returns the effective value of a top-level key and where it came
// from.
func Explain(res *LoadResult, key string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if key == "" {
		return nil, Source{}, fmt.Errorf("key is empty")
	}

	value, err := lookupValue(res.Config, key)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[key]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func lookupValue(cfg *Config, key string) (any, error) {
	switch key {
	case "group_size":
		return cfg.GroupSize, nil
	case "group_space":
		return cfg.GroupSpace, nil
	case "window_manager":
		return cfg.WindowManager, nil
	case "socket_path":
		return cfg.SocketPath, nil
	case "palette_backend":
		return cfg.PaletteBackend, nil
	case "palette_fuzzy_matching":
		return cfg.PaletteFuzzyMatching, nil
	case "dry_run":
		return cfg.DryRun, nil
	case "log_level":
		return cfg.LogLevel, nil
	case "log_format":
		return cfg.LogFormat, nil
	default:
		return nil, fmt.Errorf("unknown config key %q", key)
	}
}

// String renders a source for display next to an explained value.
func (s Source) String() string {
	switch s.Kind {
	case SourceFile:
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	case SourceDefault:
		return "default"
	default:
		return string(s.Kind)
	}
}
