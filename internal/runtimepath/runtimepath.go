package runtimepath

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Dir returns the runtime directory where window managers place their IPC
// sockets. Priority:
// 1) XDG_RUNTIME_DIR (if set)
// 2) /run/user/<uid> (if present)
// 3) os.TempDir()
func Dir() string {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return runtimeDir
	}

	runUserDir := fmt.Sprintf("/run/user/%d", os.Getuid())
	if info, err := os.Stat(runUserDir); err == nil && info.IsDir() {
		return runUserDir
	}
	return os.TempDir()
}

// Kind selects which window manager's socket conventions to follow.
type Kind string

const (
	KindAuto Kind = "auto"
	KindI3   Kind = "i3"
	KindSway Kind = "sway"
)

// getSocketPath asks a running window manager binary for its socket.
// Replaced in tests.
var getSocketPath = func(binary string) (string, error) {
	out, err := exec.Command(binary, "--get-socketpath").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// SocketPath returns the IPC socket for kind. Priority:
// 1) SWAYSOCK / I3SOCK environment variables
// 2) `<wm> --get-socketpath`
// 3) the newest matching socket in the runtime directory
func SocketPath(kind Kind) (string, error) {
	var envs, binaries, globs []string
	switch kind {
	case KindSway:
		envs = []string{"SWAYSOCK"}
		binaries = []string{"sway"}
		globs = []string{"sway-ipc.*.sock"}
	case KindI3:
		envs = []string{"I3SOCK"}
		binaries = []string{"i3"}
		globs = []string{filepath.Join("i3", "ipc-socket.*")}
	case KindAuto, "":
		envs = []string{"SWAYSOCK", "I3SOCK"}
		binaries = []string{"sway", "i3"}
		globs = []string{"sway-ipc.*.sock", filepath.Join("i3", "ipc-socket.*")}
	default:
		return "", fmt.Errorf("unknown socket kind %q", kind)
	}

	for _, env := range envs {
		if p := os.Getenv(env); p != "" {
			return p, nil
		}
	}
	for _, bin := range binaries {
		if p, err := getSocketPath(bin); err == nil && p != "" {
			return p, nil
		}
	}

	dir := Dir()
	for _, pattern := range globs {
		if p := newest(filepath.Join(dir, pattern)); p != "" {
			return p, nil
		}
	}
	return "", fmt.Errorf("no %s IPC socket found (checked %s and %s)", kind, strings.Join(envs, ", "), dir)
}

func newest(pattern string) string {
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return ""
	}
	type candidate struct {
		path  string
		mtime int64
	}
	var found []candidate
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.Mode()&os.ModeSocket == 0 {
			continue
		}
		found = append(found, candidate{path: m, mtime: info.ModTime().UnixNano()})
	}
	if len(found) == 0 {
		return ""
	}
	sort.Slice(found, func(i, j int) bool { return found[i].mtime > found[j].mtime })
	return found[0].path
}
