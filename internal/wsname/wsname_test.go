package wsname

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	c := NewCodec(100)
	tests := []struct {
		name string
		ws   Workspace
		want string
	}{
		{"ungrouped", Workspace{Local: 5}, "5"},
		{"first group slot", Workspace{Group: &Group{Name: "work", Number: 1}, Local: 1}, "101:work"},
		{"last group slot", Workspace{Group: &Group{Name: "work", Number: 1}, Local: 99}, "199:work"},
		{"large label", Workspace{Group: &Group{Name: "play", Number: 524288}, Local: 3}, "52428803:play"},
		{"name with spaces", Workspace{Group: &Group{Name: "my project", Number: 2}, Local: 4}, "204:my project"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Encode(tt.ws)
			if err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Encode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncode_Rejects(t *testing.T) {
	c := NewCodec(100)
	tests := []struct {
		name string
		ws   Workspace
	}{
		{"zero local", Workspace{Local: 0}},
		{"local at group size", Workspace{Group: &Group{Name: "work", Number: 1}, Local: 100}},
		{"unassigned group", Workspace{Group: &Group{Name: "work"}, Local: 1}},
		{"empty group name", Workspace{Group: &Group{Name: "", Number: 1}, Local: 1}},
		{"padded group name", Workspace{Group: &Group{Name: " work", Number: 1}, Local: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := c.Encode(tt.ws); err == nil {
				t.Fatalf("Encode = %q, want error", got)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	c := NewCodec(100)
	tests := []struct {
		in        string
		group     string
		number    int
		local     int
		ungrouped bool
	}{
		{in: "0", local: 0, ungrouped: true},
		{in: "1", local: 1, ungrouped: true},
		{in: "42", local: 42, ungrouped: true},
		{in: "101:work", group: "work", number: 1, local: 1},
		{in: "1203:a:b", group: "a:b", number: 12, local: 3},
		{in: "work:2", group: "work", number: 0, local: 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := c.Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.in, err)
			}
			if got.Ungrouped() != tt.ungrouped {
				t.Fatalf("Ungrouped() = %v, want %v", got.Ungrouped(), tt.ungrouped)
			}
			if got.Local != tt.local {
				t.Fatalf("Local = %d, want %d", got.Local, tt.local)
			}
			if tt.ungrouped {
				return
			}
			if got.Group.Name != tt.group || got.Group.Number != tt.number {
				t.Fatalf("Group = %+v, want {%s %d}", *got.Group, tt.group, tt.number)
			}
		})
	}
}

func TestDecode_ParseErrors(t *testing.T) {
	c := NewCodec(100)
	for _, in := range []string{"", "web", "-3", "0:work", "work:x", ":5", "100:work", "42:work", "101:", "work:100"} {
		t.Run(in, func(t *testing.T) {
			_, err := c.Decode(in)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Decode(%q) error = %v, want *ParseError", in, err)
			}
			if pe.Name != in {
				t.Fatalf("ParseError.Name = %q, want %q", pe.Name, in)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, size := range []int{10, 100, 1000} {
		c := NewCodec(size)
		for _, group := range []*Group{nil, {Name: "work", Number: 1}, {Name: "x y", Number: 777}, {Name: "7", Number: 3}} {
			for local := 1; local < size; local++ {
				in := Workspace{Group: group, Local: local}
				name, err := c.Encode(in)
				if err != nil {
					t.Fatalf("Encode(%+v) error: %v", in, err)
				}
				out, err := c.Decode(name)
				if err != nil {
					t.Fatalf("Decode(%q) error: %v", name, err)
				}
				if out.Local != local || out.Ungrouped() != (group == nil) {
					t.Fatalf("round trip %q: got %+v", name, out)
				}
				if group != nil && *out.Group != *group {
					t.Fatalf("round trip %q: group %+v, want %+v", name, *out.Group, *group)
				}
			}
		}
	}
}

func TestParseLocal(t *testing.T) {
	if n, err := ParseLocal(" 7 "); err != nil || n != 7 {
		t.Fatalf("ParseLocal(7) = %d, %v", n, err)
	}
	for _, in := range []string{"", "abc", "0", "-1", "1.5"} {
		if _, err := ParseLocal(in); err == nil {
			t.Errorf("ParseLocal(%q) succeeded, want error", in)
		}
	}
}
