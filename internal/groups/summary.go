package groups

import (
	"sort"
)

// Summary describes one group for listing.
type Summary struct {
	Name       string   `json:"name"`
	Number     int      `json:"number"`
	Workspaces []Member `json:"workspaces"`
}

// Summaries returns every group in workspace order.
func (s *Snapshot) Summaries() []Summary {
	names := s.index.Names()
	out := make([]Summary, 0, len(names))
	for _, name := range names {
		g, _ := s.index.Lookup(name)
		out = append(out, Summary{Name: g.Name, Number: g.Number, Workspaces: s.index.Members(name)})
	}
	return out
}

// Ungrouped returns the live names of workspaces outside any group.
func (s *Snapshot) Ungrouped() []string {
	out := []string{}
	for _, ws := range s.workspaces {
		if d, err := s.codec.Decode(ws.Name); err == nil && d.Ungrouped() {
			out = append(out, ws.Name)
		}
	}
	return out
}

// Locals returns the sorted local numbers next to the focused workspace:
// the members of its group, or the ungrouped numbers.
func (s *Snapshot) Locals() []int {
	var out []int
	if name := s.decoded.GroupName(); name != "" {
		for _, m := range s.index.Members(name) {
			out = append(out, m.Local)
		}
	} else {
		for _, ws := range s.workspaces {
			// "0" cannot be picked as a local number.
			if d, err := s.codec.Decode(ws.Name); err == nil && d.Ungrouped() && d.Local > 0 {
				out = append(out, d.Local)
			}
		}
	}
	sort.Ints(out)
	return out
}
