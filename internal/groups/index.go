package groups

import (
	"errors"
	"fmt"
	"sort"

	"github.com/1broseidon/tilegroups/internal/allocator"
	"github.com/1broseidon/tilegroups/internal/wsname"
)

// Member is a workspace inside a group together with its live name.
type Member struct {
	Name  string `json:"name"`
	Local int    `json:"local"`
}

// ErrGroupFull is returned when every local number of a group is in use.
var ErrGroupFull = errors.New("group is full")

type entry struct {
	group   wsname.Group
	members []Member
}

// Index groups the live workspaces by group name.
type Index struct {
	groups   map[string]*entry
	order    []string // first-seen order, used to break label ties
	maxLocal int
}

// BuildIndex decodes every name and groups the results. Numbered names seed
// alloc before legacy names are labelled so a legacy workspace joins the
// label its numbered siblings already carry.
func BuildIndex(codec wsname.Codec, alloc *allocator.Allocator, names []string) (*Index, error) {
	decoded := make([]wsname.Workspace, len(names))
	for i, name := range names {
		ws, err := codec.Decode(name)
		if err != nil {
			return nil, err
		}
		decoded[i] = ws
		if ws.Group != nil && ws.Group.Number > 0 {
			if existing, ok := alloc.Lookup(ws.Group.Name); ok && existing != ws.Group.Number {
				return nil, fmt.Errorf("group %q appears with numbers %d and %d", ws.Group.Name, existing, ws.Group.Number)
			}
			if holder, ok := alloc.At(ws.Group.Number); ok && holder != ws.Group.Name {
				return nil, fmt.Errorf("groups %q and %q share number %d", holder, ws.Group.Name, ws.Group.Number)
			}
			if err := alloc.Set(ws.Group.Number, ws.Group.Name); err != nil {
				return nil, fmt.Errorf("workspace %q: %w", name, err)
			}
		}
	}

	idx := &Index{groups: make(map[string]*entry), maxLocal: codec.MaxLocal()}
	for i, ws := range decoded {
		if ws.Group == nil {
			continue
		}
		e, ok := idx.groups[ws.Group.Name]
		if !ok {
			number, err := alloc.Hash(ws.Group.Name)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", ws.Group.Name, err)
			}
			e = &entry{group: wsname.Group{Name: ws.Group.Name, Number: number}}
			idx.groups[ws.Group.Name] = e
			idx.order = append(idx.order, ws.Group.Name)
		}
		e.members = append(e.members, Member{Name: names[i], Local: ws.Local})
	}
	return idx, nil
}

// Lookup returns the group registered under name.
func (x *Index) Lookup(name string) (wsname.Group, bool) {
	e, ok := x.groups[name]
	if !ok {
		return wsname.Group{}, false
	}
	return e.group, true
}

// Members returns the group's workspaces in live list order.
func (x *Index) Members(name string) []Member {
	e, ok := x.groups[name]
	if !ok {
		return nil
	}
	out := make([]Member, len(e.members))
	copy(out, e.members)
	return out
}

// Names returns all group names ordered by group number.
func (x *Index) Names() []string {
	names := make([]string, len(x.order))
	copy(names, x.order)
	sort.SliceStable(names, func(i, j int) bool {
		return x.groups[names[i]].group.Number < x.groups[names[j]].group.Number
	})
	return names
}

// Len returns the number of groups.
func (x *Index) Len() int {
	return len(x.groups)
}

// MemberName returns the live name of the group's workspace with the given
// local number. Legacy and numbered names for the same slot resolve to
// whichever appears first in the live list.
func (x *Index) MemberName(name string, local int) (string, bool) {
	e, ok := x.groups[name]
	if !ok {
		return "", false
	}
	for _, m := range e.members {
		if m.Local == local {
			return m.Name, true
		}
	}
	return "", false
}

// LowestFree returns the smallest local number >= 1 not used in the group.
// Unknown groups start at 1.
func (x *Index) LowestFree(name string) (int, error) {
	e, ok := x.groups[name]
	if !ok {
		return 1, nil
	}
	used := make(map[int]struct{}, len(e.members))
	for _, m := range e.members {
		used[m.Local] = struct{}{}
	}
	for k := 1; k <= x.maxLocal; k++ {
		if _, taken := used[k]; !taken {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q uses all %d workspaces", ErrGroupFull, name, x.maxLocal)
}
