package search

import (
	"testing"
	"time"

	"github.com/altinukshini/gh-forks/internal/forks"
	"github.com/altinukshini/gh-forks/internal/model"
)

func testRows() []forks.Row {
	return forks.Transform([]model.Fork{
		{
			Name: "Hello-World", FullName: "alice/Hello-World", Owner: &model.Owner{Login: "alice"},
			DefaultBranch: "main", StargazersCount: 12, Forks: 1, Size: 40,
			PushedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Name: "hello-world", FullName: "Bob/hello-world", Owner: &model.Owner{Login: "Bob"},
			DefaultBranch: "dev", StargazersCount: 3, Forks: 0, Size: 10,
			PushedAt: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Name: "Spoon-Knife", FullName: "ghost/Spoon-Knife",
			DefaultBranch: "main", StargazersCount: 0,
		},
	}, forks.DefaultColumns())
}

func owners(rows []forks.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Cells[0].Raw
	}
	return out
}

func TestFilter(t *testing.T) {
	engine := New(forks.DefaultColumns())
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", []string{"alice", "Bob", "Unknown"}},
		{"plain case insensitive", "bob", []string{"Bob"}},
		{"plain any column", "hello", []string{"alice", "Bob"}},
		{"all terms must match", "hello main", []string{"alice"}},
		{"regex", "/^spoon", []string{"Unknown"}},
		{"scoped", "branch:dev", []string{"Bob"}},
		{"numeric gte", "stars:>=3", []string{"alice", "Bob"}},
		{"numeric gt", "stars:>3", []string{"alice"}},
		{"numeric eq", "forks:=0", []string{"Bob", "Unknown"}},
		{"numeric lt", "size:<20", []string{"Bob", "Unknown"}},
		{"raw timestamp", "2024-05", []string{"alice"}},
		{"timestamp compare skips empty", "pushed_at:>2023", []string{"alice"}},
		{"unknown key is plain text", "nope:x", nil},
		{"title lookup", "open_issues:=0", []string{"alice", "Bob", "Unknown"}},
		{"scoped regex", "owner:/^b", []string{"Bob"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.FilterString(testRows(), tt.query)
			if err != nil {
				t.Fatalf("FilterString(%q): %v", tt.query, err)
			}
			gotOwners := owners(got)
			if len(gotOwners) != len(tt.want) {
				t.Fatalf("FilterString(%q) = %v, want %v", tt.query, gotOwners, tt.want)
			}
			for i := range tt.want {
				if gotOwners[i] != tt.want[i] {
					t.Errorf("FilterString(%q) = %v, want %v", tt.query, gotOwners, tt.want)
					break
				}
			}
		})
	}
}

func TestRelativeTextIsNotSearched(t *testing.T) {
	engine := New(forks.DefaultColumns())
	got, err := engine.FilterString(testRows(), "ago")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("display text should not be searchable, got %v", owners(got))
	}
}

func TestFilterCaseSensitive(t *testing.T) {
	engine := New(forks.DefaultColumns())
	query := engine.Parse("bob")
	query.CaseSensitive = true

	got, err := engine.Filter(testRows(), query)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("case-sensitive bob should not match Bob, got %v", owners(got))
	}
}

func TestFilterInvalidRegex(t *testing.T) {
	engine := New(forks.DefaultColumns())
	if _, err := engine.FilterString(testRows(), "/[unclosed"); err == nil {
		t.Error("expected invalid regex error")
	}
}

func TestParse(t *testing.T) {
	engine := New(forks.DefaultColumns())
	q := engine.Parse("stars:>=10 alice /re")
	if len(q.Terms) != 3 {
		t.Fatalf("got %d terms, want 3", len(q.Terms))
	}
	if q.Terms[0].Column != "stars" || q.Terms[0].Op != model.OpGte || q.Terms[0].Pattern != "10" {
		t.Errorf("term 0 = %+v", q.Terms[0])
	}
	if q.Terms[1].Column != "" || q.Terms[1].Pattern != "alice" {
		t.Errorf("term 1 = %+v", q.Terms[1])
	}
	if !q.Terms[2].IsRegex || q.Terms[2].Pattern != "re" {
		t.Errorf("term 2 = %+v", q.Terms[2])
	}
}
