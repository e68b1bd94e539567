package ipc

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Magic prefixes every i3 IPC message in both directions.
const Magic = "i3-ipc"

const headerLen = len(Magic) + 8

// maxPayload bounds replies so a confused peer cannot make us allocate
// arbitrary amounts of memory.
const maxPayload = 64 << 20

// MessageType is the i3 IPC message (and reply) type.
type MessageType uint32

const (
	MessageRunCommand    MessageType = 0
	MessageGetWorkspaces MessageType = 1
	MessageGetVersion    MessageType = 7
)

func (t MessageType) String() string {
	switch t {
	case MessageRunCommand:
		return "RUN_COMMAND"
	case MessageGetWorkspaces:
		return "GET_WORKSPACES"
	case MessageGetVersion:
		return "GET_VERSION"
	default:
		return fmt.Sprintf("MESSAGE_%d", uint32(t))
	}
}

// ErrBadMagic is returned when a message does not start with Magic.
var ErrBadMagic = errors.New("ipc: invalid magic string")

// Workspace is one element of a GET_WORKSPACES reply.
type Workspace struct {
	ID      int64  `json:"id"`
	Num     int64  `json:"num"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Focused bool   `json:"focused"`
	Urgent  bool   `json:"urgent"`
	Output  string `json:"output"`
}

// CommandResult is one element of a RUN_COMMAND reply.
type CommandResult struct {
	Success    bool   `json:"success"`
	ParseError bool   `json:"parse_error,omitempty"`
	Error      string `json:"error,omitempty"`
}

// VersionData is the GET_VERSION reply.
type VersionData struct {
	Major                int    `json:"major"`
	Minor                int    `json:"minor"`
	Patch                int    `json:"patch"`
	HumanReadable        string `json:"human_readable"`
	LoadedConfigFileName string `json:"loaded_config_file_name"`
}

// WriteMessage frames payload with the i3 IPC header and writes it to w.
func WriteMessage(w io.Writer, t MessageType, payload []byte) error {
	buf := make([]byte, headerLen+len(payload))
	copy(buf, Magic)
	binary.NativeEndian.PutUint32(buf[len(Magic):], uint32(len(payload)))
	binary.NativeEndian.PutUint32(buf[len(Magic)+4:], uint32(t))
	copy(buf[headerLen:], payload)
	_, err := w.Write(buf)
	return err
}

// ReadMessage reads one framed message from r.
func ReadMessage(r io.Reader) (MessageType, []byte, error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, nil, fmt.Errorf("failed to read header: %w", err)
	}
	if !bytes.Equal(header[:len(Magic)], []byte(Magic)) {
		return 0, nil, ErrBadMagic
	}
	size := binary.NativeEndian.Uint32(header[len(Magic):])
	t := MessageType(binary.NativeEndian.Uint32(header[len(Magic)+4:]))
	if size > maxPayload {
		return 0, nil, fmt.Errorf("reply of %d bytes exceeds limit", size)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return t, payload, nil
}

// ParseCommandResults decodes a RUN_COMMAND reply and returns the first
// failure as an error.
func ParseCommandResults(data []byte) ([]CommandResult, error) {
	var results []CommandResult
	if err := json.Unmarshal(data, &results); err != nil {
		// Older sway versions answer a parse failure with a bare object.
		var single CommandResult
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return nil, fmt.Errorf("failed to parse command reply: %w", err)
		}
		results = []CommandResult{single}
	}
	for _, r := range results {
		if !r.Success {
			if r.Error == "" {
				return results, errors.New("command failed")
			}
			return results, fmt.Errorf("command failed: %s", r.Error)
		}
	}
	return results, nil
}
