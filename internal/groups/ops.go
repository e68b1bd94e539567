package groups

import (
	"strings"

	"github.com/1broseidon/tilegroups/internal/wm"
	"github.com/1broseidon/tilegroups/internal/wsname"
)

// FocusWorkspace switches to local number n of the focused group.
// n == 0 means no number was given and yields no command.
func (s *Snapshot) FocusWorkspace(n int) ([]wm.Command, error) {
	if n == 0 {
		return nil, nil
	}
	target, err := s.inFocusedGroup(n)
	if err != nil {
		return nil, err
	}
	if s.decoded.Group == nil {
		return []wm.Command{wm.FocusNumber(target)}, nil
	}
	return []wm.Command{wm.Focus(target)}, nil
}

// MoveContainerToWorkspace moves the focused container to local number n of
// the focused group.
func (s *Snapshot) MoveContainerToWorkspace(n int) ([]wm.Command, error) {
	if n == 0 {
		return nil, nil
	}
	target, err := s.inFocusedGroup(n)
	if err != nil {
		return nil, err
	}
	return []wm.Command{wm.MoveTo(target)}, nil
}

// FocusGroup switches to a workspace of the named group. Existing groups
// open on the live name of their first listed workspace, new groups on
// local 1.
//
// TODO: prefer the group's last focused workspace once focus history is
// recorded somewhere that outlives a single run.
func (s *Snapshot) FocusGroup(name string) ([]wm.Command, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	group, err := s.resolveGroup(name)
	if err != nil {
		return nil, err
	}
	if members := s.index.Members(name); len(members) > 0 {
		return []wm.Command{wm.Focus(members[0].Name)}, nil
	}
	target, err := s.codec.Encode(wsname.Workspace{Group: &group, Local: 1})
	if err != nil {
		return nil, err
	}
	return []wm.Command{wm.Focus(target)}, nil
}

// MoveContainerToGroup moves the focused container into the lowest free
// slot of the named group. Moving into the focused group is a no-op.
func (s *Snapshot) MoveContainerToGroup(name string) ([]wm.Command, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == s.decoded.GroupName() {
		return nil, nil
	}
	group, err := s.resolveGroup(name)
	if err != nil {
		return nil, err
	}
	local, err := s.index.LowestFree(name)
	if err != nil {
		return nil, err
	}
	target, err := s.codec.Encode(wsname.Workspace{Group: &group, Local: local})
	if err != nil {
		return nil, err
	}
	return []wm.Command{wm.MoveTo(target)}, nil
}

// RenameGroup renames every workspace of group from to group to, keeping
// the group's number and each workspace's local number. An empty from
// means the focused group. Renaming onto an existing group, or renaming
// when there is no source group, yields no commands.
func (s *Snapshot) RenameGroup(from, to string) ([]wm.Command, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" {
		from = s.decoded.GroupName()
	}
	if from == "" || to == "" || from == to {
		return nil, nil
	}
	if _, exists := s.index.Lookup(to); exists {
		return nil, nil
	}
	group, ok := s.index.Lookup(from)
	if !ok {
		return nil, nil
	}
	if err := wsname.ValidateGroupName(to); err != nil {
		return nil, err
	}

	renamed := wsname.Group{Name: to, Number: group.Number}
	members := s.index.Members(from)
	cmds := make([]wm.Command, 0, len(members))
	for _, m := range members {
		target, err := s.codec.Encode(wsname.Workspace{Group: &renamed, Local: m.Local})
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, wm.Rename(m.Name, target))
	}
	return cmds, nil
}

// inFocusedGroup names local n of the focused group. A slot that is already
// live keeps its current name, legacy form included.
func (s *Snapshot) inFocusedGroup(n int) (string, error) {
	ws := wsname.Workspace{Local: n}
	if s.decoded.Group != nil {
		g := *s.decoded.Group
		if name, ok := s.index.MemberName(g.Name, n); ok {
			return name, nil
		}
		ws.Group = &g
	}
	return s.codec.Encode(ws)
}
