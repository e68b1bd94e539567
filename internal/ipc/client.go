package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"
)

// Client talks to an i3 or sway IPC socket. Every request uses its own
// connection, so a Client is safe for concurrent use.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a client for the socket at socketPath.
func NewClient(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// SocketPath returns the socket the client dials.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// sendRequest sends one message and waits for the reply of the same type.
func (c *Client) sendRequest(ctx context.Context, t MessageType, payload []byte) ([]byte, error) {
	if c.socketPath == "" {
		return nil, fmt.Errorf("no window manager IPC socket configured (is i3 or sway running?)")
	}

	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	conn.SetDeadline(deadline)

	if err := WriteMessage(conn, t, payload); err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", t, err)
	}

	replyType, reply, err := ReadMessage(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s reply: %w", t, err)
	}
	if replyType != t {
		return nil, fmt.Errorf("unexpected reply type %s to %s", replyType, t)
	}
	return reply, nil
}

// GetWorkspaces returns the window manager's workspace list.
func (c *Client) GetWorkspaces(ctx context.Context) ([]Workspace, error) {
	reply, err := c.sendRequest(ctx, MessageGetWorkspaces, nil)
	if err != nil {
		return nil, err
	}

	var workspaces []Workspace
	if err := json.Unmarshal(reply, &workspaces); err != nil {
		return nil, fmt.Errorf("failed to parse workspaces: %w", err)
	}
	return workspaces, nil
}

// RunCommand executes a command string. A command the window manager
// rejects is returned as an error.
func (c *Client) RunCommand(ctx context.Context, command string) ([]CommandResult, error) {
	reply, err := c.sendRequest(ctx, MessageRunCommand, []byte(command))
	if err != nil {
		return nil, err
	}
	return ParseCommandResults(reply)
}

// GetVersion returns the window manager version. Used as a liveness check.
func (c *Client) GetVersion(ctx context.Context) (*VersionData, error) {
	reply, err := c.sendRequest(ctx, MessageGetVersion, nil)
	if err != nil {
		return nil, err
	}

	var version VersionData
	if err := json.Unmarshal(reply, &version); err != nil {
		return nil, fmt.Errorf("failed to parse version: %w", err)
	}
	return &version, nil
}

// Ping checks if the window manager is responding.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.GetVersion(ctx)
	return err
}
