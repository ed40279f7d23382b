package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveCalculation(t *testing.T) {
	m := New("loanprepay")

	m.ObserveCalculation("reduce_tenure", "ok", time.Millisecond)
	m.ObserveCalculation("reduce_tenure", "ok", time.Millisecond)
	m.ObserveCalculation("extra_payment", "not_viable", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues("reduce_tenure", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("extra_payment", "not_viable")))
}

func TestMetrics_ObserveCache(t *testing.T) {
	m := New("loanprepay")

	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.cache.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cache.WithLabelValues("miss")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveCalculation("x", "ok", time.Second)
		m.ObserveCache(true)
		m.ObserveRequest("/x", http.MethodGet, 200, time.Second)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("loanprepay")
	m.ObserveRequest("/health", http.MethodGet, 200, time.Millisecond)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "loanprepay_http_request_duration_seconds"))
}
