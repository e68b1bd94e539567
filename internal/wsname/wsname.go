// Package wsname converts between window manager workspace names and
// (group, local number) pairs.
//
// Grouped workspaces are named "<flat>:<group>" where flat is
// Number*GroupSize + Local. The window manager sorts on the leading number,
// so groups appear in label order and workspaces in local order inside them.
// Ungrouped workspaces keep a bare number.
package wsname

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultGroupSize leaves locals 1..99 per group.
const DefaultGroupSize = 100

const separator = ":"

// Group is a named bucket of workspaces. Number 0 means the group has not
// been assigned a label yet (legacy names carry no number).
type Group struct {
	Name   string
	Number int
}

// Workspace is a decoded workspace name. A nil Group means ungrouped.
type Workspace struct {
	Group *Group
	Local int
}

// Ungrouped reports whether w belongs to no group.
func (w Workspace) Ungrouped() bool {
	return w.Group == nil
}

// GroupName returns the group name or "" for ungrouped workspaces.
func (w Workspace) GroupName() string {
	if w.Group == nil {
		return ""
	}
	return w.Group.Name
}

// ParseError describes a workspace name that does not follow any known form.
type ParseError struct {
	Name   string
	Field  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("workspace name %q: %s %q", e.Name, e.Reason, e.Field)
	}
	return fmt.Sprintf("workspace name %q: %s", e.Name, e.Reason)
}

// Codec encodes and decodes workspace names for a fixed group size.
type Codec struct {
	GroupSize int
}

// NewCodec returns a codec; groupSize values below 2 fall back to the default.
func NewCodec(groupSize int) Codec {
	if groupSize < 2 {
		groupSize = DefaultGroupSize
	}
	return Codec{GroupSize: groupSize}
}

// MaxLocal is the largest local number a grouped workspace can hold.
func (c Codec) MaxLocal() int {
	return c.GroupSize - 1
}

// Encode returns the flat workspace name for w.
func (c Codec) Encode(w Workspace) (string, error) {
	if w.Local < 1 {
		return "", fmt.Errorf("local number %d must be at least 1", w.Local)
	}
	if w.Group == nil {
		return strconv.Itoa(w.Local), nil
	}
	if err := ValidateGroupName(w.Group.Name); err != nil {
		return "", err
	}
	if w.Group.Number < 1 {
		return "", fmt.Errorf("group %q has no number assigned", w.Group.Name)
	}
	if w.Local > c.MaxLocal() {
		return "", fmt.Errorf("local number %d exceeds group capacity %d", w.Local, c.MaxLocal())
	}
	flat := w.Group.Number*c.GroupSize + w.Local
	return strconv.Itoa(flat) + separator + w.Group.Name, nil
}

// Decode parses a workspace name.
//
// Accepted forms are "<n>" (ungrouped, n >= 0), "<flat>:<group>" and the
// legacy "<group>:<local>". Legacy names decode with Group.Number == 0.
func (c Codec) Decode(name string) (Workspace, error) {
	head, tail, grouped := strings.Cut(name, separator)
	if !grouped {
		n, err := parseNumber(head)
		if err != nil {
			return Workspace{}, &ParseError{Name: name, Field: head, Reason: "is not a workspace number"}
		}
		return Workspace{Local: n}, nil
	}

	if flat, err := parsePositive(head); err == nil {
		if tail == "" {
			return Workspace{}, &ParseError{Name: name, Reason: "empty group name"}
		}
		local := flat % c.GroupSize
		number := flat / c.GroupSize
		if local == 0 || number == 0 {
			return Workspace{}, &ParseError{Name: name, Field: head, Reason: fmt.Sprintf("is not a grouped number for group size %d", c.GroupSize)}
		}
		return Workspace{Group: &Group{Name: tail, Number: number}, Local: local}, nil
	}

	local, err := parsePositive(tail)
	if err != nil || head == "" {
		return Workspace{}, &ParseError{Name: name, Field: head, Reason: "leading field is not a number"}
	}
	if local > c.MaxLocal() {
		return Workspace{}, &ParseError{Name: name, Field: tail, Reason: fmt.Sprintf("local number exceeds group capacity %d", c.MaxLocal())}
	}
	return Workspace{Group: &Group{Name: head}, Local: local}, nil
}

// ValidateGroupName rejects names that cannot round-trip through Decode.
func ValidateGroupName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("group name must not be empty")
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("group name %q has surrounding whitespace", name)
	}
	if strings.ContainsAny(name, "\n\r") {
		return fmt.Errorf("group name %q contains a line break", name)
	}
	return nil
}

// ParseLocal parses user input as a local workspace number.
func ParseLocal(s string) (int, error) {
	n, err := parsePositive(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("workspace number %q is not a positive integer", s)
	}
	return n, nil
}

func parseNumber(s string) (int, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return strconv.Atoi(s)
}

func parsePositive(s string) (int, error) {
	n, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("not positive: %q", s)
	}
	return n, nil
}
