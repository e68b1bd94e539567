// Package wm talks to the window manager: it lists workspaces and runs the
// small set of workspace commands tilegroups emits.
package wm

import (
	"context"
	"fmt"
	"strings"
)

// Workspace is one entry of the live workspace list.
type Workspace struct {
	Name    string `json:"name"`
	Focused bool   `json:"focused"`
}

// Action identifies the kind of workspace command.
type Action int

const (
	ActionFocus Action = iota
	ActionFocusNumber
	ActionMove
	ActionRename
)

func (a Action) String() string {
	switch a {
	case ActionFocus:
		return "focus"
	case ActionFocusNumber:
		return "focus-number"
	case ActionMove:
		return "move"
	case ActionRename:
		return "rename"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Command is a single workspace command. From is only set for renames.
type Command struct {
	Action Action
	Target string
	From   string
}

// Focus switches to the workspace named target.
func Focus(target string) Command {
	return Command{Action: ActionFocus, Target: target}
}

// FocusNumber switches to the workspace numbered target, ignoring names.
func FocusNumber(target string) Command {
	return Command{Action: ActionFocusNumber, Target: target}
}

// MoveTo moves the focused container to the workspace named target.
func MoveTo(target string) Command {
	return Command{Action: ActionMove, Target: target}
}

// Rename renames workspace from to target.
func Rename(from, target string) Command {
	return Command{Action: ActionRename, From: from, Target: target}
}

// String renders the command in i3/sway command syntax.
func (c Command) String() string {
	switch c.Action {
	case ActionFocus:
		return "workspace " + quoteArg(c.Target)
	case ActionFocusNumber:
		return "workspace number " + quoteArg(c.Target)
	case ActionMove:
		return "move to workspace " + quoteArg(c.Target)
	case ActionRename:
		return "rename workspace " + quoteArg(c.From) + " to " + quoteArg(c.Target)
	default:
		return c.Action.String() + " " + quoteArg(c.Target)
	}
}

// quoteArg double-quotes names the i3 command parser would otherwise split.
func quoteArg(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t;,\"'[]\\") {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// Source lists the live workspaces.
type Source interface {
	Workspaces(ctx context.Context) ([]Workspace, error)
}

// Sink executes workspace commands.
type Sink interface {
	Run(ctx context.Context, cmd Command) error
}

// Backend is a window manager connection acting as both source and sink.
type Backend interface {
	Source
	Sink
	Close() error
}
