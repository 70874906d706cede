package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestForksQueryString(t *testing.T) {
	tests := []struct {
		name  string
		query ForksQuery
		want  string
	}{
		{"empty", ForksQuery{}, ""},
		{"stargazers", ForksQuery{Sort: "stargazers", PerPage: 100}, "?per_page=100&sort=stargazers"},
		{"per page only", ForksQuery{PerPage: 10}, "?per_page=10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.QueryString(); got != tt.want {
				t.Errorf("QueryString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListForks(t *testing.T) {
	var gotPath, gotQuery string
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-RateLimit-Remaining", "4999")
		w.Header().Set("X-RateLimit-Limit", "5000")
		fmt.Fprint(w, `[
			{"name":"Hello-World","full_name":"alice/Hello-World","owner":{"login":"alice","avatar_url":"https://avatars.example/u/1?v=4"},"stargazers_count":5,"pushed_at":"2024-01-02T03:04:05Z"},
			{"name":"Hello-World","full_name":"ghost/Hello-World","owner":null,"stargazers_count":1}
		]`)
	}))
	defer srv.Close()

	c, err := NewClient(Options{Token: "test-token", BaseURL: srv.URL, Transport: http.DefaultTransport})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	forks, err := c.ListForks(context.Background(), "octocat/Hello-World")
	if err != nil {
		t.Fatalf("ListForks: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if gotPath != "/repos/octocat/Hello-World/forks" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "per_page=100&sort=stargazers" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(forks) != 2 {
		t.Fatalf("got %d forks, want 2", len(forks))
	}
	if forks[0].Owner == nil || forks[0].Owner.Login != "alice" {
		t.Errorf("first owner = %+v", forks[0].Owner)
	}
	if forks[1].Owner != nil {
		t.Errorf("second owner should be nil, got %+v", forks[1].Owner)
	}
	if rl := c.RateLimit(); rl.Remaining != 4999 || rl.Limit != 5000 {
		t.Errorf("RateLimit() = %+v", rl)
	}
}

func TestListForksBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"not":"a list"`)
	}))
	defer srv.Close()

	c, err := NewClient(Options{Token: "test-token", BaseURL: srv.URL, Transport: http.DefaultTransport})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := c.ListForks(context.Background(), "a/b"); err == nil {
		t.Fatal("expected a decode error")
	}
}
