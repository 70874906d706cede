package forks

import "testing"

func TestDefaultColumnsOrder(t *testing.T) {
	want := []string{"Owner", "Link", "Branch", "Stars", "Forks", "Open Issues", "Size", "Last Push"}
	got := DefaultColumns().Titles()
	if len(got) != len(want) {
		t.Fatalf("got %d columns, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveSort(t *testing.T) {
	cols := DefaultColumns()
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"stars default", cols.StarsIndex(), 3},
		{"valid", 6, 6},
		{"first column", 0, 0},
		{"last column", 7, 7},
		{"out of range", 99, 3},
		{"exactly len", 8, 3},
		{"negative", -1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cols.ResolveSort(tt.in); got != tt.want {
				t.Errorf("ResolveSort(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	cols := DefaultColumns()
	tests := map[string]int{
		"stars":             3,
		"stargazers_count":  3,
		"Open Issues":       5,
		"open_issues":       5,
		"open_issues_count": 5,
		"owner":             0,
		"last_push":         7,
		"pushed_at":         7,
		"nope":              -1,
	}
	for name, want := range tests {
		if got := cols.Lookup(name); got != want {
			t.Errorf("Lookup(%q) = %d, want %d", name, got, want)
		}
	}
}
