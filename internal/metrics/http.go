package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMiddleware counts requests and observes their duration, labelled by
// method, chi route pattern and status code.
func HTTPMiddleware(meterProvider metric.MeterProvider) func(http.Handler) http.Handler {
	meter := meterProvider.Meter(Namespace)

	requests, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", Namespace),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return passthrough
	}
	durations, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", Namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return passthrough
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			attrs := metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.String("path", routePattern(r)),
				attribute.String("status_code", strconv.Itoa(status)),
			)
			requests.Add(r.Context(), 1, attrs)
			durations.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}
}

func passthrough(next http.Handler) http.Handler { return next }

// routePattern keeps label cardinality bounded by using the matched route.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unknown"
}
