package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	apperrors "github.com/altinukshini/gh-forks/internal/errors"
)

// scriptedTransport answers with the given statuses in order, repeating the
// last one. A status of 0 produces a transport error.
type scriptedTransport struct {
	statuses []int
	body     string
	header   http.Header
	calls    atomic.Int32
}

func (s *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	n := int(s.calls.Add(1)) - 1
	if n >= len(s.statuses) {
		n = len(s.statuses) - 1
	}
	status := s.statuses[n]
	if status == 0 {
		return nil, errors.New("connection reset by peer")
	}
	header := http.Header{"Content-Type": []string{"application/json"}}
	for k, v := range s.header {
		header[k] = v
	}
	body := s.body
	if status >= 300 {
		body = `{"message":"` + http.StatusText(status) + `"}`
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func newTestClient(t *testing.T, rt http.RoundTripper) *Client {
	t.Helper()
	c, err := NewClient(Options{Token: "test-token", Transport: rt, BaseURL: "https://api.github.test/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestFetchSucceedsAfterTwoFailures(t *testing.T) {
	rt := &scriptedTransport{statuses: []int{500, 502, 200}, body: "[]"}
	c := newTestClient(t, rt)

	resp, err := c.Fetch(context.Background(), "https://api.github.test/repos/a/b/forks", 3)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if got := rt.calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestFetchGivesUpAfterRetries(t *testing.T) {
	rt := &scriptedTransport{statuses: []int{500}}
	c := newTestClient(t, rt)

	_, err := c.Fetch(context.Background(), "https://api.github.test/repos/a/b/forks", 2)
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := rt.calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
	if !apperrors.Is(err, apperrors.ErrCodeRequestFailed) {
		t.Errorf("expected REQUEST_FAILED, got %v", err)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error should keep the status, got %v", err)
	}
}

func TestFetchRetriesPermanentErrors(t *testing.T) {
	rt := &scriptedTransport{statuses: []int{404}}
	c := newTestClient(t, rt)

	_, err := c.Fetch(context.Background(), "https://api.github.test/repos/a/b/forks", 3)
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := rt.calls.Load(); got != 4 {
		t.Errorf("calls = %d, want 4", got)
	}
}

func TestFetchRetriesTransportErrors(t *testing.T) {
	rt := &scriptedTransport{statuses: []int{0, 200}, body: "[]"}
	c := newTestClient(t, rt)

	resp, err := c.Fetch(context.Background(), "https://api.github.test/repos/a/b/forks", 1)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	resp.Body.Close()
	if got := rt.calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestFetchZeroRetries(t *testing.T) {
	rt := &scriptedTransport{statuses: []int{500}}
	c := newTestClient(t, rt)

	if _, err := c.Fetch(context.Background(), "https://api.github.test/x", 0); err == nil {
		t.Fatal("expected an error")
	}
	if got := rt.calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestFetchRateLimited(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusTooManyRequests} {
		rt := &scriptedTransport{statuses: []int{status}}
		c := newTestClient(t, rt)

		_, err := c.Fetch(context.Background(), "https://api.github.test/x", 1)
		if !apperrors.Is(err, apperrors.ErrCodeRateLimited) {
			t.Errorf("status %d: expected RATE_LIMITED, got %v", status, err)
		}
	}
}

func TestFetchStopsOnCancel(t *testing.T) {
	rt := &scriptedTransport{statuses: []int{500}}
	c := newTestClient(t, rt)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Fetch(ctx, "https://api.github.test/x", 5)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if got := rt.calls.Load(); got != 0 {
		t.Errorf("calls = %d, want 0", got)
	}
}
