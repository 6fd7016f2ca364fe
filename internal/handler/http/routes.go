package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/SaurabViena/heirloom/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	if h.metrics != nil {
		router.Use(metrics.HTTPMiddleware(h.metrics.MeterProvider()))
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Get("/api/version", h.getVersion)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/keys", h.keys)
		r.Post("/inputs", h.ingest)
		r.Post("/inputs/verify", h.verifyInput)

		r.With(h.rateLimit).Post("/user-decrypt", h.userDecrypt)

		// ledger only
		r.With(h.auth).Post("/acl", h.allow)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
