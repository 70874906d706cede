package forks

import "sync/atomic"

// Tracker hands out request tokens. Only the completion whose token is still
// current may update what the user sees; older ones are stale.
type Tracker struct {
	current atomic.Uint64
}

// Begin starts a new request and returns its token.
func (t *Tracker) Begin() uint64 {
	return t.current.Add(1)
}

func (t *Tracker) IsCurrent(token uint64) bool {
	return token != 0 && t.current.Load() == token
}
