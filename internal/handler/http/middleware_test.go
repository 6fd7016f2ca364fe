package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/logger"
	"github.com/SaurabViena/heirloom/internal/store"
	"github.com/SaurabViena/heirloom/internal/utils"
)

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{traceIDs: utils.NewUUIDGenerator(), logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("Created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inputs", nil)
	rec := httptest.NewRecorder()
	h.withTraceID(h.withLogging(inner)).ServeHTTP(rec, req)

	out := buf.String()
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/api/v1/inputs"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"size":7`)
	assert.Contains(t, out, `"trace_id":`)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 3, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, _ = w.Write([]byte("ok"))
	assert.Equal(t, http.StatusOK, w.status)
}

func TestIPRateLimiter(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		assert.False(t, newIPRateLimiter(0, 0).enabled())
		var nilLimiter *ipRateLimiter
		assert.False(t, nilLimiter.enabled())
	})

	t.Run("buckets are per ip", func(t *testing.T) {
		l := newIPRateLimiter(0.001, 1)
		require.True(t, l.enabled())

		assert.True(t, l.get("10.0.0.1").Allow())
		assert.False(t, l.get("10.0.0.1").Allow())
		assert.True(t, l.get("10.0.0.2").Allow())
	})

	t.Run("default burst", func(t *testing.T) {
		l := newIPRateLimiter(2.5, 0)
		assert.Equal(t, 3, l.burst)
	})

	t.Run("idle entries are pruned", func(t *testing.T) {
		l := newIPRateLimiter(1, 1)
		start := time.Now()
		l.now = func() time.Time { return start }
		for i := 0; i < limiterPruneSize; i++ {
			l.get(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
		}
		require.Len(t, l.limiters, limiterPruneSize)

		l.now = func() time.Time { return start.Add(2 * limiterIdleTTL) }
		l.get("192.168.0.1")
		assert.Len(t, l.limiters, 1)
	})
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:5123"
	assert.Equal(t, "203.0.113.7", clientIP(req))

	req.RemoteAddr = "garbage"
	assert.Equal(t, "garbage", clientIP(req))
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: eof", ErrInvalidRequestBody), http.StatusBadRequest},
		{fhe.ErrValueTooWide, http.StatusBadRequest},
		{fmt.Errorf("open input 0: %w", fhe.ErrSealedBox), http.StatusBadRequest},
		{fhe.ErrInvalidProof, http.StatusUnprocessableEntity},
		{fhe.ErrGrantExpired, http.StatusGone},
		{fmt.Errorf("%w: bad signer", fhe.ErrGrantRejected), http.StatusForbidden},
		{fhe.ErrUnknownHandle, http.StatusNotFound},
		{fhe.ErrNotReady, http.StatusServiceUnavailable},
		{store.ErrHandleExists, http.StatusConflict},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
