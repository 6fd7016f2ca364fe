package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/SaurabViena/heirloom/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx := context.WithValue(l.WithContext(r.Context()), utils.TraceIDCtxKey, traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
