package wm

import (
	"fmt"
	"os"
	"strings"

	"github.com/1broseidon/tilegroups/internal/runtimepath"
)

// Kind names a backend.
type Kind string

const (
	KindAuto Kind = "auto"
	KindI3   Kind = "i3"
	KindSway Kind = "sway"
	KindEWMH Kind = "ewmh"
)

// ParseKind validates a backend name from config or flags.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindAuto:
		return KindAuto, nil
	case KindI3, KindSway, KindEWMH:
		return k, nil
	default:
		return "", fmt.Errorf("unknown window manager %q (expected: auto, i3, sway, ewmh)", s)
	}
}

// Open connects to the window manager. socketPath overrides socket
// discovery for i3 and sway. In auto mode an IPC socket wins over EWMH.
func Open(kind Kind, socketPath string) (Backend, error) {
	switch kind {
	case KindEWMH:
		return NewEWMH()
	case KindI3, KindSway:
		if socketPath == "" {
			p, err := runtimepath.SocketPath(runtimepath.Kind(kind))
			if err != nil {
				return nil, err
			}
			socketPath = p
		}
		return NewI3(socketPath), nil
	case KindAuto, "":
		if socketPath != "" {
			return NewI3(socketPath), nil
		}
		p, sockErr := runtimepath.SocketPath(runtimepath.KindAuto)
		if sockErr == nil {
			return NewI3(p), nil
		}
		if os.Getenv("DISPLAY") != "" {
			return NewEWMH()
		}
		return nil, fmt.Errorf("no supported window manager found: %w", sockErr)
	default:
		return nil, fmt.Errorf("unknown window manager %q", kind)
	}
}
