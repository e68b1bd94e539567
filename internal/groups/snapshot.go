// Package groups implements workspace groups on top of the flat workspace
// list of the window manager.
//
// A Snapshot is built once per invocation from the live workspace list and
// answers every operation from that single read. Operations return the
// commands to run instead of running them, so dry runs and real runs share
// the same decisions.
package groups

import (
	"context"
	"errors"
	"fmt"

	"github.com/1broseidon/tilegroups/internal/allocator"
	"github.com/1broseidon/tilegroups/internal/wm"
	"github.com/1broseidon/tilegroups/internal/wsname"
)

// ErrNoFocusedWorkspace is returned when the live list has no focused entry.
var ErrNoFocusedWorkspace = errors.New("no focused workspace")

// Snapshot is the per-run view of the window manager's workspaces.
type Snapshot struct {
	codec      wsname.Codec
	alloc      *allocator.Allocator
	workspaces []wm.Workspace
	focused    wm.Workspace
	decoded    wsname.Workspace
	index      *Index
}

// Load queries src once and builds a snapshot from the result.
func Load(ctx context.Context, src wm.Source, codec wsname.Codec, space int) (*Snapshot, error) {
	workspaces, err := src.Workspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return NewSnapshot(codec, allocator.New(space), workspaces)
}

// NewSnapshot builds a snapshot from an already fetched workspace list.
func NewSnapshot(codec wsname.Codec, alloc *allocator.Allocator, workspaces []wm.Workspace) (*Snapshot, error) {
	names := make([]string, len(workspaces))
	focusedAt := -1
	for i, ws := range workspaces {
		names[i] = ws.Name
		if ws.Focused && focusedAt < 0 {
			focusedAt = i
		}
	}
	if focusedAt < 0 {
		return nil, ErrNoFocusedWorkspace
	}

	index, err := BuildIndex(codec, alloc, names)
	if err != nil {
		return nil, err
	}

	focused := workspaces[focusedAt]
	decoded, err := codec.Decode(focused.Name)
	if err != nil {
		return nil, err
	}
	if decoded.Group != nil {
		g, _ := index.Lookup(decoded.Group.Name)
		decoded.Group = &g
	}

	return &Snapshot{
		codec:      codec,
		alloc:      alloc,
		workspaces: workspaces,
		focused:    focused,
		decoded:    decoded,
		index:      index,
	}, nil
}

// Workspaces returns the live workspace list the snapshot was built from.
func (s *Snapshot) Workspaces() []wm.Workspace {
	out := make([]wm.Workspace, len(s.workspaces))
	copy(out, s.workspaces)
	return out
}

// Focused returns the focused workspace and its decoded form.
func (s *Snapshot) Focused() (wm.Workspace, wsname.Workspace) {
	return s.focused, s.decoded
}

// FocusedGroup returns the group of the focused workspace, if any.
func (s *Snapshot) FocusedGroup() (wsname.Group, bool) {
	if s.decoded.Group == nil {
		return wsname.Group{}, false
	}
	return *s.decoded.Group, true
}

// Index exposes the group index.
func (s *Snapshot) Index() *Index {
	return s.index
}

// GroupNames returns the known group names in workspace order.
func (s *Snapshot) GroupNames() []string {
	return s.index.Names()
}

// Codec returns the codec used to decode the snapshot.
func (s *Snapshot) Codec() wsname.Codec {
	return s.codec
}

// resolveGroup returns an existing group or labels a new one.
func (s *Snapshot) resolveGroup(name string) (wsname.Group, error) {
	if g, ok := s.index.Lookup(name); ok {
		return g, nil
	}
	if err := wsname.ValidateGroupName(name); err != nil {
		return wsname.Group{}, err
	}
	number, err := s.alloc.Hash(name)
	if err != nil {
		return wsname.Group{}, fmt.Errorf("group %q: %w", name, err)
	}
	return wsname.Group{Name: name, Number: number}, nil
}
