package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/1broseidon/tilegroups/internal/groups"
)

type listJSON struct {
	Groups       []groups.Summary `json:"groups"`
	Focused      string           `json:"focused"`
	FocusedGroup string           `json:"focused_group,omitempty"`
	Ungrouped    []string         `json:"ungrouped"`
}

func runListGroups(args []string) int {
	fs := flag.NewFlagSet("list-groups", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := addCommonFlags(fs)
	asJSON := fs.Bool("json", false, "Print JSON")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: tilegroups list-groups [options]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "List groups in workspace order. The focused workspace is marked with '*'.")
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
	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "list-groups takes no arguments")
		return 2
	}

	sess, err := opts.open()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer sess.Close()

	snap, err := sess.snapshot(context.Background())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	focused, decoded := snap.Focused()

	if *asJSON {
		out := listJSON{
			Groups:       snap.Summaries(),
			Focused:      focused.Name,
			FocusedGroup: decoded.GroupName(),
			Ungrouped:    snap.Ungrouped(),
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	mark := func(name string) string {
		if name == focused.Name {
			return name + "*"
		}
		return name
	}
	summaries := snap.Summaries()
	width := 0
	for _, g := range summaries {
		width = max(width, len(g.Name))
	}
	for _, g := range summaries {
		names := make([]string, len(g.Workspaces))
		for i, m := range g.Workspaces {
			names[i] = mark(m.Name)
		}
		fmt.Fprintf(stdout, "%-*s  %7d  %s\n", width, g.Name, g.Number, strings.Join(names, " "))
	}
	if ungrouped := snap.Ungrouped(); len(ungrouped) > 0 {
		names := make([]string, len(ungrouped))
		for i, n := range ungrouped {
			names[i] = mark(n)
		}
		fmt.Fprintf(stdout, "(ungrouped) %s\n", strings.Join(names, " "))
	}
	return 0
}
