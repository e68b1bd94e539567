package mcp

import "github.com/1broseidon/tilegroups/internal/groups"

// ListGroupsInput is the input for the list_groups tool.
type ListGroupsInput struct{}

// ListGroupsOutput is the output for the list_groups tool.
type ListGroupsOutput struct {
	Groups       []groups.Summary `json:"groups"`
	Focused      string           `json:"focused"`
	FocusedGroup string           `json:"focused_group,omitempty"`
	Ungrouped    []string         `json:"ungrouped"`
}

// FocusWorkspaceInput is the input for the focus_workspace tool.
type FocusWorkspaceInput struct {
	Number int  `json:"number" jsonschema:"Local workspace number inside the focused group (0 does nothing)"`
	DryRun bool `json:"dry_run,omitempty" jsonschema:"Report the commands without running them"`
}

// FocusGroupInput is the input for the focus_group tool.
type FocusGroupInput struct {
	Group  string `json:"group" jsonschema:"Group to switch to; unknown groups are created"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"Report the commands without running them"`
}

// MoveContainerToWorkspaceInput is the input for the move_container_to_workspace tool.
type MoveContainerToWorkspaceInput struct {
	Number int  `json:"number" jsonschema:"Local workspace number inside the focused group (0 does nothing)"`
	DryRun bool `json:"dry_run,omitempty" jsonschema:"Report the commands without running them"`
}

// MoveContainerToGroupInput is the input for the move_container_to_group tool.
type MoveContainerToGroupInput struct {
	Group  string `json:"group" jsonschema:"Group that receives the focused container"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"Report the commands without running them"`
}

// RenameGroupInput is the input for the rename_group tool.
type RenameGroupInput struct {
	From   string `json:"from,omitempty" jsonschema:"Group to rename (default: the focused group)"`
	To     string `json:"to" jsonschema:"New group name; must not already exist"`
	DryRun bool   `json:"dry_run,omitempty" jsonschema:"Report the commands without running them"`
}

// CommandsOutput lists the window manager commands an operation emitted.
// An empty list means the operation was a no-op.
type CommandsOutput struct {
	Commands []string `json:"commands"`
	DryRun   bool     `json:"dry_run"`
}
