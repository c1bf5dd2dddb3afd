// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/omegaupload/omegaupload/internal/logger"
)

// withLogging is an HTTP middleware that records structured access-log
// entries for every request processed by the handler chain.
//
// For each request it captures method, path, status, duration, and response
// size. It deliberately never reads or logs the request or response body:
// both may carry opaque ciphertext that this service must not be able to
// inspect.
//
// The log entry is emitted at INFO level via the context-scoped logger
// obtained from [logger.FromRequest]. The logger must have been placed in
// the request context by an earlier middleware (withTraceID) before
// withLogging runs; otherwise the global zerolog no-op logger is used and
// the entry is silently discarded.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		path := r.URL.Path
		method := r.Method

		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("path", path).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
