package ui

import (
	"github.com/altinukshini/gh-forks/internal/api"
	"github.com/altinukshini/gh-forks/internal/forks"
)

// ForksLoadedMsg completes a lookup. Token identifies the request so that
// stale completions can be dropped.
type ForksLoadedMsg struct {
	Token     uint64
	Result    forks.Result
	RateLimit api.RateLimit
	Err       error
}

type BrowseDoneMsg struct {
	URL string
	Err error
}

type StatusMsg struct {
	Text string
}
