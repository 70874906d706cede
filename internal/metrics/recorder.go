// Package metrics records fork fetch activity. The default NoopRecorder
// keeps the TUI and list commands free of any metrics setup; serve installs
// a PrometheusRecorder and exposes it on /metrics.
package metrics

import "time"

// Outcome labels the final state of a lookup.
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeInvalidInput Outcome = "invalid_input"
	OutcomeFailed       Outcome = "failed"
	OutcomeRateLimited  Outcome = "rate_limited"
	OutcomeCanceled     Outcome = "canceled"
)

// Recorder receives fetch and lookup observations.
type Recorder interface {
	IncFetchAttempt(status int)
	IncFetchRetry()
	IncFetchExhausted()
	ObserveFetchDuration(d time.Duration, success bool)
	IncLookupOutcome(outcome Outcome)
	SetRateLimitRemaining(n int)
}

type NoopRecorder struct{}

func (NoopRecorder) IncFetchAttempt(int)                      {}
func (NoopRecorder) IncFetchRetry()                           {}
func (NoopRecorder) IncFetchExhausted()                       {}
func (NoopRecorder) ObserveFetchDuration(time.Duration, bool) {}
func (NoopRecorder) IncLookupOutcome(Outcome)                 {}
func (NoopRecorder) SetRateLimitRemaining(int)                {}
