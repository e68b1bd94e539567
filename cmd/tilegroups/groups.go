package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/1broseidon/tilegroups/internal/groups"
	"github.com/1broseidon/tilegroups/internal/palette"
	"github.com/1broseidon/tilegroups/internal/wm"
	"github.com/1broseidon/tilegroups/internal/wsname"
)

// operation describes one workspace command of the CLI.
type operation struct {
	name    string
	arg     string
	summary string
	// hasFrom adds --group to pick the source group.
	hasFrom bool
	prompt  func(snap *groups.Snapshot, from string) string
	choices func(snap *groups.Snapshot) []string
	apply   func(snap *groups.Snapshot, from, value string) ([]wm.Command, error)
}

var (
	focusWorkspaceOp = operation{
		name:    "focus-workspace",
		arg:     "LOCAL",
		summary: "Focus local workspace LOCAL of the focused group.",
		prompt:  func(*groups.Snapshot, string) string { return "Workspace" },
		choices: localChoices,
		apply: func(snap *groups.Snapshot, _, value string) ([]wm.Command, error) {
			n, err := wsname.ParseLocal(value)
			if err != nil {
				return nil, err
			}
			return snap.FocusWorkspace(n)
		},
	}
	moveToWorkspaceOp = operation{
		name:    "move-container-to-workspace",
		arg:     "LOCAL",
		summary: "Move the focused container to local workspace LOCAL of the focused group.",
		prompt:  func(*groups.Snapshot, string) string { return "Move to workspace" },
		choices: localChoices,
		apply: func(snap *groups.Snapshot, _, value string) ([]wm.Command, error) {
			n, err := wsname.ParseLocal(value)
			if err != nil {
				return nil, err
			}
			return snap.MoveContainerToWorkspace(n)
		},
	}
	focusGroupOp = operation{
		name:    "focus-group",
		arg:     "GROUP",
		summary: "Focus group GROUP. Unknown groups are created on workspace 1.",
		prompt:  func(*groups.Snapshot, string) string { return "Group" },
		choices: groupChoices,
		apply: func(snap *groups.Snapshot, _, value string) ([]wm.Command, error) {
			return snap.FocusGroup(value)
		},
	}
	moveToGroupOp = operation{
		name:    "move-container-to-group",
		arg:     "GROUP",
		summary: "Move the focused container to the lowest free workspace of GROUP.",
		prompt:  func(*groups.Snapshot, string) string { return "Move to group" },
		choices: groupChoices,
		apply: func(snap *groups.Snapshot, _, value string) ([]wm.Command, error) {
			return snap.MoveContainerToGroup(value)
		},
	}
	renameGroupOp = operation{
		name:    "rename-group",
		arg:     "NEW",
		summary: "Rename a group to NEW, keeping its position and workspace numbers.",
		hasFrom: true,
		prompt: func(snap *groups.Snapshot, from string) string {
			if from == "" {
				if g, ok := snap.FocusedGroup(); ok {
					from = g.Name
				}
			}
			return fmt.Sprintf("Rename %s to", from)
		},
		choices: func(*groups.Snapshot) []string { return nil },
		apply: func(snap *groups.Snapshot, from, value string) ([]wm.Command, error) {
			return snap.RenameGroup(from, value)
		},
	}
)

func localChoices(snap *groups.Snapshot) []string {
	locals := snap.Locals()
	out := make([]string, len(locals))
	for i, n := range locals {
		out[i] = strconv.Itoa(n)
	}
	return out
}

func groupChoices(snap *groups.Snapshot) []string {
	return snap.GroupNames()
}

func runOperation(op operation, args []string) int {
	fs := flag.NewFlagSet(op.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := addCommonFlags(fs)
	var from string
	if op.hasFrom {
		fs.StringVar(&from, "group", "", "Group to rename (default: the focused group)")
	}
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tilegroups %s [options] [%s]\n", op.name, op.arg)
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, op.summary)
		fmt.Fprintf(stderr, "Without %s the palette asks for it.\n", op.arg)
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "%s takes at most one argument\n\n", op.name)
		fs.Usage()
		return 2
	}

	sess, err := opts.open()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer sess.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snap, err := sess.snapshot(ctx)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	value := fs.Arg(0)
	if fs.NArg() == 0 {
		prompter, err := newPrompter(sess.cfg)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		value, err = prompter.Ask(op.prompt(snap, from), op.choices(snap))
		if errors.Is(err, palette.ErrCancelled) {
			sess.logger.Debug("prompt cancelled", "command", op.name)
			return 0
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	cmds, err := op.apply(snap, from, value)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if len(cmds) == 0 {
		sess.logger.Debug("nothing to do", "command", op.name, "argument", value)
		return 0
	}
	if err := wm.NewExecutor(sess.backend, sess.cfg.DryRun, sess.logger).Execute(ctx, cmds); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
