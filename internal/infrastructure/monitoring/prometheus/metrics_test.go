package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAnalysis(t *testing.T) {
	m := New()

	m.ObserveAnalysis("wage_theft", OutcomeMatched, 3*time.Millisecond)
	m.ObserveAnalysis("wage_theft", OutcomeMatched, 5*time.Millisecond)
	m.ObserveAnalysis("", OutcomeNoMatch, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("wage_theft", OutcomeMatched)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("none", OutcomeNoMatch)))
}

func TestCacheCounters(t *testing.T) {
	m := New()

	m.CacheHits.Inc()
	m.CacheMisses.Inc()
	m.CacheMisses.Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CacheMisses))
}

func TestHandlerExposition(t *testing.T) {
	m := New()
	m.LeadsCreated.WithLabelValues("divorce").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `casematch_leads_created_total{category="divorce"} 1`)
}
