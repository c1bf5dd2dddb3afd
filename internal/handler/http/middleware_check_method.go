// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod builds the router's MethodNotAllowed handler.
//
// Chi's default is to answer unmatched methods on a known path with 405.
// For a paste store that would leak which ids exist: an attacker could
// probe `POST /{id}` against a guessed id and learn from the status code
// alone whether that id is live, independent of the 404 collapse the GET
// and DELETE handlers already perform for unknown/expired/burned pastes.
// Answering 405 and 404 identically here (as 404) keeps that collapse
// consistent across every way of touching a route.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !routeHandlesMethod(router, r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		router.ServeHTTP(w, r)
	}
}

// routeHandlesMethod reports whether some route registered on router has a
// pattern matching path exactly and declares a handler for method. Only
// literal pattern equality is checked; chi's own param/wildcard expansion
// is not replicated here, which is sufficient since every route this
// handler guards (/{id} and /static/*) is registered with a fixed pattern
// chi will also report verbatim via Routes().
func routeHandlesMethod(router *chi.Mux, path, method string) bool {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
