// Package http implements the HTTP transport layer of the paste service.
// It provides middleware, route handlers, and request/response utilities
// for the upload/fetch/delete API. Tracing, access logging, and response
// compression are all handled at this layer before requests reach the
// store.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init constructs and returns a fully configured [chi.Mux] router that
// serves every endpoint of the paste API.
//
// # Global middleware
//
// Every request passes through the following middleware chain in order:
//   - [middleware.Recoverer] — catches panics in handlers, logs the stack
//     trace, and returns HTTP 500 to the client so the server stays alive.
//   - [Handler.withTraceID] — resolves or generates a trace ID and stores
//     an enriched logger in the request context for structured tracing.
//   - withLogging — emits a structured access-log entry (method, path,
//     status, duration, response size) after each request completes.
//   - withGZip — transparently decompresses gzip-encoded request bodies and
//     compresses response bodies for clients that advertise gzip support.
//
// # Routes
//
//	PUT    /{id}   — upload a ciphertext envelope; any path id is ignored.
//	GET    /{id}   — fetch a paste's ciphertext.
//	DELETE /{id}   — unconditionally remove a paste.
//
// If a static asset directory is configured, it is also mounted:
//
//	GET /           — index of the bundled web frontend.
//	GET /static/... — frontend assets.
//
// # Method-not-allowed behaviour
//
// [CheckHTTPMethod] is registered as the MethodNotAllowed handler. It
// overrides chi's default HTTP 405 response and returns HTTP 404 instead,
// preventing callers from discovering which HTTP methods are supported on
// a given route through error-code enumeration.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging, withGZip)

	router.Put("/", h.upload)
	router.Put("/{id}", h.upload)
	router.Get("/{id}", h.fetch)
	router.Delete("/{id}", h.deletePaste)

	if h.static.AssetDir != "" {
		fs := staticHandler(h.static.AssetDir)
		router.Handle("/static/*", http.StripPrefix("/static/", fs))
		router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			fs.ServeHTTP(w, r)
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
