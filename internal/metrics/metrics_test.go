package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, p *Provider) string {
	t.Helper()
	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestBusinessMetrics_Observe(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	bm, err := NewBusinessMetrics(p.MeterProvider())
	require.NoError(t, err)

	Observe(context.Background(), bm, "gateway", "ingest", time.Now(), nil)
	Observe(context.Background(), bm, "gateway", "ingest", time.Now(), errors.New("boom"))

	out := scrape(t, p)
	assert.Regexp(t, `heirloom_operations_total\{[^}]*operation="ingest"[^}]*status="success"[^}]*\} 1`, out)
	assert.Regexp(t, `heirloom_operations_total\{[^}]*operation="ingest"[^}]*status="error"[^}]*\} 1`, out)
	assert.Contains(t, out, "heirloom_operation_duration_seconds")
}

func TestNoOp(t *testing.T) {
	m := NewNoOp()
	m.RecordOperation(context.Background(), "d", "o", StatusSuccess)
	m.RecordDuration(context.Background(), "d", "o", time.Second, StatusError)
}

func TestHTTPMiddleware_RecordsRoutePattern(t *testing.T) {
	p, err := NewProvider()
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(HTTPMiddleware(p.MeterProvider()))
	r.Get("/api/v1/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/42", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	out := scrape(t, p)
	assert.Regexp(t, `heirloom_http_requests_total\{[^}]*path="/api/v1/items/\{id\}"[^}]*status_code="418"[^}]*\} 1`, out)
}
