package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gh_forks"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	attempts      *prom.CounterVec
	retries       prom.Counter
	exhausted     prom.Counter
	fetchDuration *prom.HistogramVec
	lookups       *prom.CounterVec
	rateRemaining prom.Gauge
}

// NewPrometheusRecorder creates the collectors and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		attempts: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_attempts_total",
			Help:      "HTTP attempts against the forks endpoint by status code (0 = transport error)",
		}, []string{"status"}),
		retries: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_retries_total",
			Help:      "Attempts made after a failed first attempt",
		}),
		exhausted: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_retry_exhausted_total",
			Help:      "Fetches that failed after using the whole retry budget",
		}),
		fetchDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a fetch including retries",
			Buckets:   prom.DefBuckets,
		}, []string{"result"}),
		lookups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Fork lookups by outcome",
		}, []string{"outcome"}),
		rateRemaining: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "rate_limit_remaining",
			Help:      "Last observed X-RateLimit-Remaining header",
		}),
	}
	reg.MustRegister(pr.attempts, pr.retries, pr.exhausted, pr.fetchDuration, pr.lookups, pr.rateRemaining)
	return pr
}

func (p *PrometheusRecorder) IncFetchAttempt(status int) {
	if p == nil {
		return
	}
	p.attempts.WithLabelValues(strconv.Itoa(status)).Inc()
}

func (p *PrometheusRecorder) IncFetchRetry() {
	if p == nil {
		return
	}
	p.retries.Inc()
}

func (p *PrometheusRecorder) IncFetchExhausted() {
	if p == nil {
		return
	}
	p.exhausted.Inc()
}

func (p *PrometheusRecorder) ObserveFetchDuration(d time.Duration, success bool) {
	if p == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.fetchDuration.WithLabelValues(res).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncLookupOutcome(outcome Outcome) {
	if p == nil {
		return
	}
	p.lookups.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetRateLimitRemaining(n int) {
	if p == nil {
		return
	}
	p.rateRemaining.Set(float64(n))
}

// HTTPHandler serves the metrics gathered by reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
