package wm

import (
	"context"

	"github.com/1broseidon/tilegroups/internal/ipc"
)

// I3 is a backend for i3 and sway, which share the IPC protocol and the
// command language.
type I3 struct {
	client *ipc.Client
}

var _ Backend = (*I3)(nil)

// NewI3 creates a backend that talks to the IPC socket at socketPath.
func NewI3(socketPath string) *I3 {
	return &I3{client: ipc.NewClient(socketPath)}
}

// Workspaces returns the live workspaces in the window manager's order.
func (b *I3) Workspaces(ctx context.Context) ([]Workspace, error) {
	reply, err := b.client.GetWorkspaces(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Workspace, len(reply))
	for i, ws := range reply {
		out[i] = Workspace{Name: ws.Name, Focused: ws.Focused}
	}
	return out, nil
}

// Run sends cmd as a RUN_COMMAND message.
func (b *I3) Run(ctx context.Context, cmd Command) error {
	_, err := b.client.RunCommand(ctx, cmd.String())
	return err
}

// Close is a no-op; connections are per request.
func (b *I3) Close() error {
	return nil
}
