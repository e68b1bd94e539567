package wm

import (
	"context"
	"fmt"
	"log/slog"
)

// Executor sends commands to a sink, or only logs them in dry-run mode.
type Executor struct {
	sink   Sink
	dryRun bool
	logger *slog.Logger
}

// NewExecutor creates an executor. A nil logger discards log output.
func NewExecutor(sink Sink, dryRun bool, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{sink: sink, dryRun: dryRun, logger: logger}
}

// DryRun reports whether commands are only logged.
func (e *Executor) DryRun() bool {
	return e.dryRun
}

// Execute runs cmds in order and stops at the first failure.
func (e *Executor) Execute(ctx context.Context, cmds []Command) error {
	for _, cmd := range cmds {
		if e.dryRun {
			e.logger.Info("Dry-running command", "command", cmd.String())
			continue
		}
		e.logger.Info("Running command", "command", cmd.String())
		if err := e.sink.Run(ctx, cmd); err != nil {
			return fmt.Errorf("could not execute %q: %w", cmd.String(), err)
		}
	}
	return nil
}
