// Package mcp exposes the group operations as MCP tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/tilegroups/internal/config"
	"github.com/1broseidon/tilegroups/internal/groups"
	"github.com/1broseidon/tilegroups/internal/wm"
	"github.com/1broseidon/tilegroups/internal/wsname"
)

const (
	ServerName    = "tilegroups"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for workspace group operations.
type Server struct {
	mcpServer *mcpsdk.Server
	backend   wm.Backend
	codec     wsname.Codec
	space     int
	dryRun    bool
	logger    *slog.Logger

	// mu serialises snapshot-and-execute so two tool calls never decide
	// against the same stale workspace list.
	mu sync.Mutex
}

// NewServer creates a new MCP server that drives backend.
func NewServer(backend wm.Backend, cfg *config.Config, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		backend: backend,
		codec:   wsname.NewCodec(cfg.GroupSize),
		space:   cfg.GroupSpace,
		dryRun:  cfg.DryRun,
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases the window manager connection.
func (s *Server) Close() error {
	if s == nil || s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_groups",
		Description: "List workspace groups in workspace order with their numbers and member workspaces, plus the focused workspace.",
	}, s.handleListGroups)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_workspace",
		Description: "Focus a workspace by its local number inside the focused group. On an ungrouped workspace this focuses the plain workspace number.",
	}, s.handleFocusWorkspace)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_group",
		Description: "Focus a group. Existing groups open on their first workspace; unknown groups are created on local workspace 1.",
	}, s.handleFocusGroup)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_container_to_workspace",
		Description: "Move the focused container to a local workspace number of the focused group.",
	}, s.handleMoveContainerToWorkspace)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_container_to_group",
		Description: "Move the focused container into the lowest free workspace of a group. Moving into the focused group does nothing.",
	}, s.handleMoveContainerToGroup)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "rename_group",
		Description: "Rename a group (default: the focused group) keeping its position and local numbers. Renaming onto an existing group does nothing.",
	}, s.handleRenameGroup)
}

// snapshot reads the live workspace list. Callers must hold s.mu.
func (s *Server) snapshot(ctx context.Context) (*groups.Snapshot, error) {
	return groups.Load(ctx, s.backend, s.codec, s.space)
}

// apply builds a snapshot, computes the commands with op and runs them.
func (s *Server) apply(ctx context.Context, dryRun bool, op func(*groups.Snapshot) ([]wm.Command, error)) (CommandsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return CommandsOutput{}, err
	}
	cmds, err := op(snap)
	if err != nil {
		return CommandsOutput{}, err
	}

	dryRun = dryRun || s.dryRun
	if len(cmds) == 0 {
		s.logger.Debug("operation produced no commands")
	}
	if err := wm.NewExecutor(s.backend, dryRun, s.logger).Execute(ctx, cmds); err != nil {
		return CommandsOutput{}, err
	}

	out := CommandsOutput{Commands: make([]string, len(cmds)), DryRun: dryRun}
	for i, cmd := range cmds {
		out.Commands[i] = cmd.String()
	}
	return out, nil
}

func validateNumber(n int) error {
	if n < 0 {
		return fmt.Errorf("number must be >= 0, got %d", n)
	}
	return nil
}
