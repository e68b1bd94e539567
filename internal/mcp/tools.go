package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/tilegroups/internal/groups"
	"github.com/1broseidon/tilegroups/internal/wm"
)

func (s *Server) handleListGroups(ctx context.Context, _ *mcpsdk.CallToolRequest, _ ListGroupsInput) (*mcpsdk.CallToolResult, ListGroupsOutput, error) {
	s.mu.Lock()
	snap, err := s.snapshot(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, ListGroupsOutput{}, err
	}
	return nil, describe(snap), nil
}

func describe(snap *groups.Snapshot) ListGroupsOutput {
	focused, decoded := snap.Focused()
	return ListGroupsOutput{
		Groups:       snap.Summaries(),
		Focused:      focused.Name,
		FocusedGroup: decoded.GroupName(),
		Ungrouped:    snap.Ungrouped(),
	}
}

func (s *Server) handleFocusWorkspace(ctx context.Context, _ *mcpsdk.CallToolRequest, args FocusWorkspaceInput) (*mcpsdk.CallToolResult, CommandsOutput, error) {
	if err := validateNumber(args.Number); err != nil {
		return nil, CommandsOutput{}, err
	}
	out, err := s.apply(ctx, args.DryRun, func(snap *groups.Snapshot) ([]wm.Command, error) {
		return snap.FocusWorkspace(args.Number)
	})
	if err != nil {
		return nil, CommandsOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleFocusGroup(ctx context.Context, _ *mcpsdk.CallToolRequest, args FocusGroupInput) (*mcpsdk.CallToolResult, CommandsOutput, error) {
	out, err := s.apply(ctx, args.DryRun, func(snap *groups.Snapshot) ([]wm.Command, error) {
		return snap.FocusGroup(args.Group)
	})
	if err != nil {
		return nil, CommandsOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleMoveContainerToWorkspace(ctx context.Context, _ *mcpsdk.CallToolRequest, args MoveContainerToWorkspaceInput) (*mcpsdk.CallToolResult, CommandsOutput, error) {
	if err := validateNumber(args.Number); err != nil {
		return nil, CommandsOutput{}, err
	}
	out, err := s.apply(ctx, args.DryRun, func(snap *groups.Snapshot) ([]wm.Command, error) {
		return snap.MoveContainerToWorkspace(args.Number)
	})
	if err != nil {
		return nil, CommandsOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleMoveContainerToGroup(ctx context.Context, _ *mcpsdk.CallToolRequest, args MoveContainerToGroupInput) (*mcpsdk.CallToolResult, CommandsOutput, error) {
	out, err := s.apply(ctx, args.DryRun, func(snap *groups.Snapshot) ([]wm.Command, error) {
		return snap.MoveContainerToGroup(args.Group)
	})
	if err != nil {
		return nil, CommandsOutput{}, err
	}
	return nil, out, nil
}

func (s *Server) handleRenameGroup(ctx context.Context, _ *mcpsdk.CallToolRequest, args RenameGroupInput) (*mcpsdk.CallToolResult, CommandsOutput, error) {
	out, err := s.apply(ctx, args.DryRun, func(snap *groups.Snapshot) ([]wm.Command, error) {
		return snap.RenameGroup(args.From, args.To)
	})
	if err != nil {
		return nil, CommandsOutput{}, err
	}
	return nil, out, nil
}
