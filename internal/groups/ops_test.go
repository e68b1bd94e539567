package groups

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/1broseidon/tilegroups/internal/allocator"
	"github.com/1broseidon/tilegroups/internal/wm"
	"github.com/1broseidon/tilegroups/internal/wsname"
)

type fakeSource struct {
	workspaces []wm.Workspace
	calls      int
	err        error
}

func (f *fakeSource) Workspaces(context.Context) ([]wm.Workspace, error) {
	f.calls++
	return f.workspaces, f.err
}

// live builds a workspace list; the name prefixed with '*' is focused.
func live(names ...string) []wm.Workspace {
	out := make([]wm.Workspace, len(names))
	for i, n := range names {
		out[i] = wm.Workspace{Name: strings.TrimPrefix(n, "*"), Focused: strings.HasPrefix(n, "*")}
	}
	return out
}

func snapshot(t *testing.T, names ...string) *Snapshot {
	t.Helper()
	s, err := NewSnapshot(wsname.NewCodec(100), allocator.New(allocator.DefaultSpace), live(names...))
	if err != nil {
		t.Fatalf("NewSnapshot(%v) error: %v", names, err)
	}
	return s
}

func render(cmds []wm.Command) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.String())
	}
	return out
}

func TestLoad_QueriesSourceOnce(t *testing.T) {
	src := &fakeSource{workspaces: live("*1", "101:work")}
	s, err := Load(context.Background(), src, wsname.NewCodec(100), allocator.DefaultSpace)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, err := s.FocusWorkspace(2); err != nil {
		t.Fatalf("FocusWorkspace error: %v", err)
	}
	if _, err := s.MoveContainerToGroup("work"); err != nil {
		t.Fatalf("MoveContainerToGroup error: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("source queried %d times, want 1", src.calls)
	}
}

func TestLoad_Errors(t *testing.T) {
	codec := wsname.NewCodec(100)

	_, err := Load(context.Background(), &fakeSource{workspaces: live("1", "2")}, codec, allocator.DefaultSpace)
	if !errors.Is(err, ErrNoFocusedWorkspace) {
		t.Fatalf("error = %v, want ErrNoFocusedWorkspace", err)
	}

	boom := errors.New("boom")
	_, err = Load(context.Background(), &fakeSource{err: boom}, codec, allocator.DefaultSpace)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped source error", err)
	}

	_, err = Load(context.Background(), &fakeSource{workspaces: live("*web")}, codec, allocator.DefaultSpace)
	var pe *wsname.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *wsname.ParseError", err)
	}
}

func TestFocusWorkspace(t *testing.T) {
	tests := []struct {
		name string
		live []string
		n    int
		want []string
	}{
		{"ungrouped focus uses number", []string{"1", "*2", "work:1", "work:2"}, 5, []string{"workspace number 5"}},
		{"grouped focus", []string{"1", "*101:work", "102:work"}, 3, []string{"workspace 103:work"}},
		{"quoted group", []string{"*201:my stuff"}, 4, []string{`workspace "204:my stuff"`}},
		{"unspecified", []string{"*101:work"}, 0, []string{}},
		{"legacy member keeps its name", []string{"1", "*work:1", "work:2"}, 2, []string{"workspace work:2"}},
		{"numbered member in legacy group", []string{"*work:1", "103:work"}, 3, []string{"workspace 103:work"}},
		{"free slot in legacy group", []string{"*work:1"}, 3, []string{"workspace 52428803:work"}},
		{"ungrouped zero", []string{"0", "*101:work"}, 2, []string{"workspace 102:work"}},
		{"focused on zero", []string{"*0", "1"}, 1, []string{"workspace number 1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := snapshot(t, tt.live...).FocusWorkspace(tt.n)
			if err != nil {
				t.Fatalf("FocusWorkspace error: %v", err)
			}
			if got := render(cmds); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("commands = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFocusWorkspace_OutOfRange(t *testing.T) {
	if _, err := snapshot(t, "*101:work").FocusWorkspace(100); err == nil {
		t.Fatal("FocusWorkspace(100) succeeded, want capacity error")
	}
}

func TestMoveContainerToWorkspace(t *testing.T) {
	s := snapshot(t, "*101:work", "1")
	cmds, err := s.MoveContainerToWorkspace(7)
	if err != nil {
		t.Fatalf("MoveContainerToWorkspace error: %v", err)
	}
	if got := render(cmds); !reflect.DeepEqual(got, []string{"move to workspace 107:work"}) {
		t.Fatalf("commands = %q", got)
	}

	s = snapshot(t, "101:work", "*1")
	cmds, _ = s.MoveContainerToWorkspace(3)
	if got := render(cmds); !reflect.DeepEqual(got, []string{"move to workspace 3"}) {
		t.Fatalf("commands = %q", got)
	}
}

func TestMoveContainerToWorkspace_LegacyMember(t *testing.T) {
	s := snapshot(t, "1", "*work:1", "work:2")
	cmds, err := s.MoveContainerToWorkspace(2)
	if err != nil {
		t.Fatalf("MoveContainerToWorkspace error: %v", err)
	}
	if got := render(cmds); !reflect.DeepEqual(got, []string{"move to workspace work:2"}) {
		t.Fatalf("commands = %q", got)
	}
}

func TestFocusGroup(t *testing.T) {
	s := snapshot(t, "*1", "103:work", "105:work")
	cmds, err := s.FocusGroup("work")
	if err != nil {
		t.Fatalf("FocusGroup error: %v", err)
	}
	if got := render(cmds); !reflect.DeepEqual(got, []string{"workspace 103:work"}) {
		t.Fatalf("commands = %q", got)
	}

	cmds, err = s.FocusGroup("  ")
	if err != nil || len(cmds) != 0 {
		t.Fatalf("FocusGroup(blank) = %v, %v; want no commands", cmds, err)
	}
}

func TestFocusGroup_LegacyMembers(t *testing.T) {
	tests := []struct {
		name string
		live []string
		want string
	}{
		{"legacy only", []string{"*1", "work:1", "work:3"}, "workspace work:1"},
		{"legacy listed first", []string{"*1", "work:3", "101:work"}, "workspace work:3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := snapshot(t, tt.live...).FocusGroup("work")
			if err != nil {
				t.Fatalf("FocusGroup error: %v", err)
			}
			if got := render(cmds); !reflect.DeepEqual(got, []string{tt.want}) {
				t.Fatalf("commands = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFocusGroup_NewGroupStartsAtOne(t *testing.T) {
	s := snapshot(t, "*1", "101:work")
	cmds, err := s.FocusGroup("play")
	if err != nil {
		t.Fatalf("FocusGroup error: %v", err)
	}
	ws := decodeTarget(t, cmds)
	if ws.GroupName() != "play" || ws.Local != 1 {
		t.Fatalf("target = %+v, want (play, 1)", ws)
	}
	if ws.Group.Number <= 1 {
		t.Fatalf("play label %d should sort after work", ws.Group.Number)
	}
}

func TestMoveContainerToGroup_NewGroup(t *testing.T) {
	s := snapshot(t, "*101:work", "102:work")
	cmds, err := s.MoveContainerToGroup("play")
	if err != nil {
		t.Fatalf("MoveContainerToGroup error: %v", err)
	}
	if len(cmds) != 1 || cmds[0].Action != wm.ActionMove {
		t.Fatalf("commands = %v, want one move", render(cmds))
	}
	ws := decodeTarget(t, cmds)
	if ws.GroupName() != "play" || ws.Local != 1 {
		t.Fatalf("target = %+v, want (play, 1)", ws)
	}
}

func TestMoveContainerToGroup_FillsGap(t *testing.T) {
	s := snapshot(t, "*1", "101:work", "103:work")
	cmds, err := s.MoveContainerToGroup("work")
	if err != nil {
		t.Fatalf("MoveContainerToGroup error: %v", err)
	}
	if got := render(cmds); !reflect.DeepEqual(got, []string{"move to workspace 102:work"}) {
		t.Fatalf("commands = %q", got)
	}
}

func TestMoveContainerToGroup_FullGroup(t *testing.T) {
	names := []string{"*1"}
	for local := 1; local <= 9; local++ {
		names = append(names, fmt.Sprintf("1%d:work", local))
	}
	s, err := NewSnapshot(wsname.NewCodec(10), allocator.New(allocator.DefaultSpace), live(names...))
	if err != nil {
		t.Fatalf("NewSnapshot error: %v", err)
	}
	if _, err := s.MoveContainerToGroup("work"); !errors.Is(err, ErrGroupFull) {
		t.Fatalf("MoveContainerToGroup error = %v, want ErrGroupFull", err)
	}
}

func TestMoveContainerToGroup_SameGroupIsNoop(t *testing.T) {
	for _, live := range [][]string{
		{"*101:work", "102:work"},
		{"*work:1", "work:2"},
	} {
		cmds, err := snapshot(t, live...).MoveContainerToGroup("work")
		if err != nil {
			t.Fatalf("MoveContainerToGroup error: %v", err)
		}
		if len(cmds) != 0 {
			t.Fatalf("commands = %q, want none", render(cmds))
		}
	}
}

func TestRenameGroup(t *testing.T) {
	s := snapshot(t, "1", "*101:work", "103:work", "201:play")
	cmds, err := s.RenameGroup("", "job")
	if err != nil {
		t.Fatalf("RenameGroup error: %v", err)
	}
	want := []string{
		"rename workspace 101:work to 101:job",
		"rename workspace 103:work to 103:job",
	}
	if got := render(cmds); !reflect.DeepEqual(got, want) {
		t.Fatalf("commands = %q, want %q", got, want)
	}
}

func TestRenameGroup_ExplicitSourceAndLegacyNames(t *testing.T) {
	s := snapshot(t, "*1", "work:1", "work:2")
	cmds, err := s.RenameGroup("work", "job")
	if err != nil {
		t.Fatalf("RenameGroup error: %v", err)
	}
	g, _ := s.Index().Lookup("work")
	if len(cmds) != 2 {
		t.Fatalf("commands = %q, want 2 renames", render(cmds))
	}
	for i, c := range cmds {
		ws, err := s.Codec().Decode(c.Target)
		if err != nil {
			t.Fatalf("decode %q: %v", c.Target, err)
		}
		if ws.GroupName() != "job" || ws.Local != i+1 || ws.Group.Number != g.Number {
			t.Fatalf("rename target %q decoded to %+v", c.Target, ws)
		}
	}
}

func TestRenameGroup_Noops(t *testing.T) {
	tests := []struct {
		name     string
		live     []string
		from, to string
	}{
		{"target exists", []string{"*101:work", "201:play"}, "", "play"},
		{"no focused group", []string{"*1", "101:work"}, "", "job"},
		{"blank target", []string{"*101:work"}, "", " "},
		{"unknown source", []string{"*101:work"}, "nope", "job"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := snapshot(t, tt.live...).RenameGroup(tt.from, tt.to)
			if err != nil {
				t.Fatalf("RenameGroup error: %v", err)
			}
			if len(cmds) != 0 {
				t.Fatalf("commands = %q, want none", render(cmds))
			}
		})
	}
}

func TestGroupNames(t *testing.T) {
	s := snapshot(t, "*1", "301:c", "101:a", "201:b")
	if got := s.GroupNames(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("GroupNames() = %v", got)
	}
}

func decodeTarget(t *testing.T, cmds []wm.Command) wsname.Workspace {
	t.Helper()
	if len(cmds) != 1 {
		t.Fatalf("commands = %v, want exactly one", render(cmds))
	}
	ws, err := wsname.NewCodec(100).Decode(cmds[0].Target)
	if err != nil {
		t.Fatalf("decode %q: %v", cmds[0].Target, err)
	}
	return ws
}
