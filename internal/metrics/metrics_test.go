package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/campaigns/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns/"+id, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/campaigns/{id}", "418"))
	assert.Equal(t, 2.0, got)
}

func TestConfirmationCountsAmountOnlyWhenApplied(t *testing.T) {
	m := New()
	m.Confirmation(ResultApplied, 500)
	m.Confirmation(ResultDuplicate, 500)
	m.Confirmation(ResultApplied, 250)

	assert.Equal(t, 750.0, testutil.ToFloat64(m.ledgerAmount))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.confirmations.WithLabelValues(ResultApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.confirmations.WithLabelValues(ResultDuplicate)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Confirmation(ResultApplied, 1)
	m.ConnectionOpened()
	m.ConnectionClosed()
	m.FrameDropped()

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ConnectionOpened()
	m.FrameDropped()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "fundflow_realtime_connections 1"))
	assert.True(t, strings.Contains(body, "fundflow_realtime_dropped_frames_total 1"))
}
