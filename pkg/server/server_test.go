package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bizlens/pkg/core/benchmark"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	bench, err := benchmark.Load()
	require.NoError(t, err)

	api := NewWebAPI(zerolog.Nop(), Config{
		Addr:            ":0",
		ShutdownTimeout: time.Second,
		Benchmarks:      bench,
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, bench.Version(), body["benchmark_version"])
}

func TestUnknownRouteIs404(t *testing.T) {
	bench, err := benchmark.Load()
	require.NoError(t, err)

	api := NewWebAPI(zerolog.Nop(), Config{Addr: ":0", Benchmarks: bench})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
