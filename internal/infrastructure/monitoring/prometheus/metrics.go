// Package prometheus exposes the service's operational metrics.
package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "casematch"

// Outcome labels for the analyses counter.
const (
	OutcomeMatched   = "matched"
	OutcomeNoMatch   = "no_match"
	OutcomeRejected  = "rejected"
	OutcomeCachedHit = "cache_hit"
)

// Metrics holds every collector the service registers.
type Metrics struct {
	registry *prometheus.Registry

	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	LeadsCreated     *prometheus.CounterVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New builds and registers all collectors on a private registry, keeping the
// /metrics endpoint free of unrelated default collectors from other packages
// in the process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Case analyses performed, by primary category and outcome.",
		}, []string{"category", "outcome"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of one full analysis.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_cache_hits_total",
			Help:      "Analysis results served from the cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "result_cache_misses_total",
			Help:      "Analysis requests that missed the cache.",
		}),
		LeadsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_created_total",
			Help:      "Expert leads created, by category.",
		}, []string{"category"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	reg.MustRegister(
		m.AnalysesTotal,
		m.AnalysisDuration,
		m.CacheHits,
		m.CacheMisses,
		m.LeadsCreated,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// ObserveAnalysis records one analysis with its outcome and duration.
func (m *Metrics) ObserveAnalysis(category, outcome string, elapsed time.Duration) {
	if category == "" {
		category = "none"
	}
	m.AnalysesTotal.WithLabelValues(category, outcome).Inc()
	m.AnalysisDuration.Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the private registry for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
