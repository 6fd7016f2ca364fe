// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// It answers 404 instead of chi's default 405 when the matched route has no
// handler for the requested method, so unsupported methods do not reveal
// which paths exist. Nested routers are searched by their full pattern.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !hasHandler(router, r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		router.ServeHTTP(w, r)
	}
}

func hasHandler(routes chi.Routes, path, method string) bool {
	found := false
	_ = chi.Walk(routes, func(m string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route == path && m == method {
			found = true
		}
		return nil
	})
	return found
}
