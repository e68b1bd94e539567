package main

import (
	"fmt"
	"io"
	"os"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printMainUsage(stdout)
		return 0
	}

	switch args[0] {
	case "focus-workspace":
		return runOperation(focusWorkspaceOp, args[1:])
	case "focus-group":
		return runOperation(focusGroupOp, args[1:])
	case "move-container-to-workspace":
		return runOperation(moveToWorkspaceOp, args[1:])
	case "move-container-to-group":
		return runOperation(moveToGroupOp, args[1:])
	case "rename-group":
		return runOperation(renameGroupOp, args[1:])
	case "list-groups":
		return runListGroups(args[1:])
	case "config":
		return runConfig(args[1:])
	case "mcp":
		return runMCP(args[1:])
	case "help", "-h", "--help":
		printMainUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printMainUsage(stderr)
		return 2
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tilegroups <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  focus-workspace [LOCAL]              Focus a workspace of the focused group")
	fmt.Fprintln(w, "  focus-group [GROUP]                  Focus a group, creating it if needed")
	fmt.Fprintln(w, "  move-container-to-workspace [LOCAL]  Move the focused container within the group")
	fmt.Fprintln(w, "  move-container-to-group [GROUP]      Move the focused container to another group")
	fmt.Fprintln(w, "  rename-group [--group G] [NEW]       Rename a group (default: the focused group)")
	fmt.Fprintln(w, "  list-groups [--json]                 List groups and their workspaces")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "  config init         Write a default configuration file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Missing LOCAL or GROUP arguments are asked for through the palette.")
	fmt.Fprintln(w, "Run 'tilegroups <command> --help' for command-specific options.")
}
