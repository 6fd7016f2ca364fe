package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/metrics"
	"github.com/SaurabViena/heirloom/internal/utils"
)

func TestVersion(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())

	rec := do(t, router, http.MethodGet, "/api/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())

	rec := do(t, router, http.MethodGet, "/api/v1/inputs", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/v1/keys", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTraceID(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())

	t.Run("generated", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/api/version", nil)
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})

	t.Run("propagated into error bodies", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/api/v1/inputs", `{}`, traceIDHeader, "trace-123")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))

		var body utils.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "trace-123", body.TraceID)
		assert.NotEmpty(t, body.Error)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, testConfig())
	rec := do(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	provider, err := metrics.NewProvider()
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	h := NewHandler(nil, testConfig(), provider, logger.Nop())
	withMetrics := h.Init()

	do(t, withMetrics, http.MethodGet, "/api/version", nil)
	rec = do(t, withMetrics, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "heirloom_http_request")
}
