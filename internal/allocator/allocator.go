// Package allocator assigns order-preserving integer labels to group names
// inside a fixed numeric space.
//
// Labels are claimed by bisecting the space: every claimed label splits its
// interval in two, so a name that sorts between two existing names always
// lands between their labels and nothing already claimed has to move. The
// space is finite, so a long enough run of adjacent inserts eventually leaves
// an interval that cannot be split; Hash reports ErrExhausted instead of
// reusing a label.
package allocator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExhausted is returned when no free label is left on a name's probe path.
var ErrExhausted = errors.New("allocator: label space exhausted")

// DefaultSpace keeps Space*GroupSize well inside a signed 32-bit workspace
// number for the default group size.
const DefaultSpace = 1 << 20

// Allocator maps names to labels in [1, Space). Label 0 is never handed out.
type Allocator struct {
	space   int
	compare func(a, b string) int
	labels  map[int]string
	names   map[string]int
}

// New returns an allocator over [1, space) ordering names lexically.
func New(space int) *Allocator {
	return NewWithCompare(space, strings.Compare)
}

// NewWithCompare returns an allocator that orders names with compare.
func NewWithCompare(space int, compare func(a, b string) int) *Allocator {
	if space < 2 {
		space = 2
	}
	if compare == nil {
		compare = strings.Compare
	}
	return &Allocator{
		space:   space,
		compare: compare,
		labels:  make(map[int]string),
		names:   make(map[string]int),
	}
}

// Space returns the exclusive upper bound of the label space.
func (a *Allocator) Space() int {
	return a.space
}

// Hash returns the label for name, claiming one if name has none yet.
func (a *Allocator) Hash(name string) (int, error) {
	if label, ok := a.names[name]; ok {
		return label, nil
	}

	lo, hi := 0, a.space
	for {
		cur := lo + (hi-lo)/2
		if cur == lo {
			return 0, fmt.Errorf("%w: no slot left for %q between %d and %d", ErrExhausted, name, lo, hi)
		}
		occupant, taken := a.labels[cur]
		if !taken {
			a.claim(cur, name)
			return cur, nil
		}
		switch c := a.compare(name, occupant); {
		case c < 0:
			hi = cur
		case c > 0:
			lo = cur
		default:
			// Set stored name without a reverse entry.
			a.names[name] = cur
			return cur, nil
		}
	}
}

// Set reserves label for name. A label already held by another name is
// reassigned; the previous holder loses its reverse entry.
func (a *Allocator) Set(label int, name string) error {
	if label <= 0 || label >= a.space {
		return fmt.Errorf("allocator: label %d for %q outside [1, %d)", label, name, a.space)
	}
	if prev, ok := a.labels[label]; ok && prev != name {
		delete(a.names, prev)
	}
	a.claim(label, name)
	return nil
}

// Lookup returns the label already assigned to name.
func (a *Allocator) Lookup(name string) (int, bool) {
	label, ok := a.names[name]
	return label, ok
}

// At returns the name holding label.
func (a *Allocator) At(label int) (string, bool) {
	name, ok := a.labels[label]
	return name, ok
}

// Len returns the number of claimed labels.
func (a *Allocator) Len() int {
	return len(a.labels)
}

func (a *Allocator) claim(label int, name string) {
	a.labels[label] = name
	if _, ok := a.names[name]; !ok {
		a.names[name] = label
	}
}
