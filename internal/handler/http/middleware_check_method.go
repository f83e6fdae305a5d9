// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour: the request gets
// the same JSON 404 envelope as an unknown path.
//
// If the requested method IS registered for the path (checked with
// [chi.Mux.Match], which descends into mounted sub-routers), the request is
// forwarded to the router's normal ServeHTTP pipeline.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//	// ... register routes ...
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeNotFound(w, r)
	}
}
