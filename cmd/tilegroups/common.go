package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/1broseidon/tilegroups/internal/config"
	"github.com/1broseidon/tilegroups/internal/groups"
	"github.com/1broseidon/tilegroups/internal/logging"
	"github.com/1broseidon/tilegroups/internal/palette"
	"github.com/1broseidon/tilegroups/internal/wm"
	"github.com/1broseidon/tilegroups/internal/wsname"
)

// Replaced in tests.
var (
	openBackend = wm.Open
	newPrompter = func(cfg *config.Config) (palette.Prompter, error) {
		backend, err := palette.NewBackend(cfg.PaletteBackend)
		if err != nil {
			return nil, err
		}
		if setter, ok := backend.(interface{ SetFuzzyMatching(bool) }); ok {
			setter.SetFuzzyMatching(cfg.PaletteFuzzyMatching)
		}
		return backend, nil
	}
)

// commonOptions are the flags shared by every command that talks to the
// window manager.
type commonOptions struct {
	configPath string
	wm         string
	socket     string
	dryRun     bool
	verbose    bool
}

func addCommonFlags(fs *flag.FlagSet) *commonOptions {
	o := &commonOptions{}
	fs.StringVar(&o.configPath, "config", "", "Config file path (default: ~/.config/tilegroups/config.yaml)")
	fs.StringVar(&o.wm, "wm", "", "Window manager: auto, i3, sway, ewmh (overrides window_manager)")
	fs.StringVar(&o.socket, "socket", "", "i3/sway IPC socket path (overrides socket_path)")
	fs.BoolVar(&o.dryRun, "dry-run", false, "Log the commands instead of running them")
	fs.BoolVar(&o.verbose, "v", false, "Enable debug logging")
	return o
}

// loadConfig reads the config file and applies flag overrides.
func (o *commonOptions) loadConfig() (*config.Config, error) {
	var res *config.LoadResult
	var err error
	if o.configPath == "" {
		res, err = config.LoadWithSources()
	} else {
		res, err = config.LoadFromPath(o.configPath)
	}
	if err != nil {
		return nil, err
	}

	cfg := res.Config
	if o.wm != "" {
		cfg.WindowManager = o.wm
	}
	if o.socket != "" {
		cfg.SocketPath = o.socket
	}
	if o.dryRun {
		cfg.DryRun = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session is everything a command needs once flags are parsed.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	backend wm.Backend
}

func (o *commonOptions) open() (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, o.verbose, stderr)
	if err != nil {
		return nil, err
	}
	kind, err := wm.ParseKind(cfg.WindowManager)
	if err != nil {
		return nil, err
	}
	backend, err := openBackend(kind, cfg.SocketPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("connected to window manager", "kind", string(kind))
	return &session{cfg: cfg, logger: logger, backend: backend}, nil
}

func (s *session) snapshot(ctx context.Context) (*groups.Snapshot, error) {
	return groups.Load(ctx, s.backend, wsname.NewCodec(s.cfg.GroupSize), s.cfg.GroupSpace)
}

func (s *session) Close() error {
	return s.backend.Close()
}
