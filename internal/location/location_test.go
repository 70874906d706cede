package location

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantRepo string
		wantSort int
	}{
		{"bare", "octocat/Hello-World", "octocat/Hello-World", 3},
		{"hash", "#octocat/Hello-World?sort=1", "octocat/Hello-World", 1},
		{"page url", "https://example.github.io/forks/#owner/name?sort=7", "owner/name", 7},
		{"encoded", "#owner%2Fname%3Fsort%3D2", "owner/name", 2},
		{"repo url", "https://github.com/owner/name.git", "owner/name", 3},
		{"empty", "", "", 3},
		{"repo url with anchor", "https://github.com/cli/cli#readme", "cli/cli", 3},
		{"repo with anchor and sort", "https://github.com/cli/cli?sort=1#installation", "cli/cli", 1},
		{"bare repo with anchor", "cli/cli#readme", "cli/cli", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := Parse(tt.raw)
			if loc.Repo != tt.wantRepo {
				t.Errorf("Repo = %q, want %q", loc.Repo, tt.wantRepo)
			}
			if got := loc.Sort(3); got != tt.wantSort {
				t.Errorf("Sort = %d, want %d", got, tt.wantSort)
			}
		})
	}
}

func TestFragment(t *testing.T) {
	loc := Location{Repo: "owner/name", Params: Params{"sort": "2"}}
	if got := loc.Fragment(); got != "#owner/name?sort=2" {
		t.Errorf("Fragment() = %q", got)
	}
	if got := (Location{Repo: "owner/name"}).Fragment(); got != "#owner/name" {
		t.Errorf("Fragment() = %q", got)
	}
}

func TestHistoryPushRepo(t *testing.T) {
	h := NewHistory("#owner/name?sort=2")

	if h.PushRepo("owner/name") {
		t.Error("pushing the current repo should be a no-op")
	}
	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}

	if !h.PushRepo("octocat/Hello-World") {
		t.Error("pushing a new repo should add an entry")
	}
	if h.Current() != "#octocat/Hello-World" {
		t.Errorf("Current = %q", h.Current())
	}

	prev, ok := h.Back()
	if !ok || prev != "#owner/name?sort=2" {
		t.Errorf("Back() = %q, %v", prev, ok)
	}
	if _, ok := h.Back(); ok {
		t.Error("Back() on a single entry should report false")
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory("")
	if h.Current() != "" {
		t.Errorf("Current = %q, want empty", h.Current())
	}
	if !h.PushRepo("a/b") {
		t.Error("first push should add an entry")
	}
}
