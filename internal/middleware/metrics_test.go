package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/metrics-probe", nil)
	rr := httptest.NewRecorder()
	Metrics(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	counter := requestsTotal.WithLabelValues(http.MethodPost, "/api/metrics-probe", "201")
	assert.Equal(t, 1.0, testutil.ToFloat64(counter))
}

func TestStatusWriterDefaultsToOK(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// no explicit WriteHeader
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/implicit-status", nil)
	rr := httptest.NewRecorder()
	Metrics(next).ServeHTTP(rr, req)

	counter := requestsTotal.WithLabelValues(http.MethodGet, "/api/implicit-status", "200")
	assert.Equal(t, 1.0, testutil.ToFloat64(counter))
}
