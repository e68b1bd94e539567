package wm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/tilegroups/internal/x11"
)

// desktopConn is the subset of the X11 connection the EWMH backend uses.
type desktopConn interface {
	GetCurrentDesktop() (int, error)
	GetDesktopNames() ([]string, error)
	SetDesktopNames(names []string) error
	SetDesktopCount(count int) error
	SwitchDesktop(desktop int) error
	GetActiveWindow() (xproto.Window, error)
	IsNormalWindow(windowID xproto.Window) bool
	SetWindowDesktop(windowID xproto.Window, desktop int) error
	Close()
}

// EWMH is a backend for window managers that only expose EWMH desktops.
// Workspace names map to _NET_DESKTOP_NAMES; a missing target desktop is
// appended. Desktops are positional, so new groups land at the end rather
// than in label order.
type EWMH struct {
	mu   sync.Mutex
	conn desktopConn
}

var _ Backend = (*EWMH)(nil)

// NewEWMH opens a connection to the X server named by $DISPLAY.
func NewEWMH() (*EWMH, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &EWMH{conn: conn}, nil
}

// Workspaces lists desktops by name with the current one focused.
func (b *EWMH) Workspaces(_ context.Context) ([]Workspace, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	names, err := b.conn.GetDesktopNames()
	if err != nil {
		return nil, err
	}
	current, err := b.conn.GetCurrentDesktop()
	if err != nil {
		return nil, err
	}
	out := make([]Workspace, len(names))
	for i, name := range names {
		out[i] = Workspace{Name: name, Focused: i == current}
	}
	return out, nil
}

// Run applies cmd through EWMH client messages.
func (b *EWMH) Run(_ context.Context, cmd Command) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	names, err := b.conn.GetDesktopNames()
	if err != nil {
		return err
	}

	switch cmd.Action {
	case ActionFocus, ActionFocusNumber:
		idx, err := b.ensure(names, cmd.Target, cmd.Action == ActionFocusNumber)
		if err != nil {
			return err
		}
		return b.conn.SwitchDesktop(idx)

	case ActionMove:
		win, err := b.conn.GetActiveWindow()
		if err != nil {
			return fmt.Errorf("failed to get active window: %w", err)
		}
		if win == 0 || !b.conn.IsNormalWindow(win) {
			return fmt.Errorf("no movable window is focused")
		}
		idx, err := b.ensure(names, cmd.Target, false)
		if err != nil {
			return err
		}
		return b.conn.SetWindowDesktop(win, idx)

	case ActionRename:
		idx := findDesktop(names, cmd.From, false)
		if idx < 0 {
			return fmt.Errorf("no desktop named %q", cmd.From)
		}
		if findDesktop(names, cmd.Target, false) >= 0 {
			return fmt.Errorf("desktop %q already exists", cmd.Target)
		}
		renamed := append([]string(nil), names...)
		renamed[idx] = cmd.Target
		return b.conn.SetDesktopNames(renamed)

	default:
		return fmt.Errorf("unsupported command %q", cmd.String())
	}
}

// Close releases the X11 connection.
func (b *EWMH) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conn.Close()
	return nil
}

// ensure returns the index of the desktop named target, appending one when
// none exists.
func (b *EWMH) ensure(names []string, target string, byNumber bool) (int, error) {
	if idx := findDesktop(names, target, byNumber); idx >= 0 {
		return idx, nil
	}
	grown := append(append([]string(nil), names...), target)
	if err := b.conn.SetDesktopNames(grown); err != nil {
		return 0, err
	}
	if err := b.conn.SetDesktopCount(len(grown)); err != nil {
		return 0, fmt.Errorf("failed to add desktop %q: %w", target, err)
	}
	return len(grown) - 1, nil
}

// findDesktop matches like i3: by exact name, or with byNumber also any
// desktop whose name starts with "<target>:".
func findDesktop(names []string, target string, byNumber bool) int {
	for i, name := range names {
		if name == target {
			return i
		}
	}
	if byNumber {
		for i, name := range names {
			if strings.HasPrefix(name, target+":") {
				return i
			}
		}
	}
	return -1
}
