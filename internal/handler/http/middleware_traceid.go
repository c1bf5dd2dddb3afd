// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the trace id between caller and server in both
// directions: read on the way in to continue a caller-supplied trace,
// written on the way out so the caller can correlate its own logs with
// this server's, without the response body (which may be ciphertext)
// ever being touched.
const traceIDHeader = "X-Trace-ID"

// withTraceID resolves a trace id for the request — reusing the caller's
// X-Trace-ID header if present, otherwise minting a fresh UUID — and binds
// a logger carrying that id into the request context so every later
// middleware and handler logs with it via logger.FromRequest.
//
// Must run before withLogging and before any handler that calls
// logger.FromRequest, since those rely on the context this middleware
// populates.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := resolveTraceID(r)

		scoped := h.logger.GetChildLogger()
		scoped.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(scoped.WithContext(r.Context())))
	})
}

// resolveTraceID returns the inbound X-Trace-ID header value if non-empty,
// or a freshly generated UUID otherwise.
func resolveTraceID(r *http.Request) string {
	if id := r.Header.Get(traceIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}
