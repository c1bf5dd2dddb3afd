// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter], recording the status code
// and cumulative byte count written so withLogging can report them after
// the handler chain completes. It deliberately does not retain response
// bodies: those may be ciphertext, and this server must never hold or log
// paste contents outside the store itself.
type responseWriter struct {
	http.ResponseWriter
	status      int
	size        int
	wroteHeader bool
}

// WriteHeader records status on the first call and forwards it to the
// underlying writer; subsequent calls are ignored, matching the
// single-WriteHeader contract of [http.ResponseWriter].
func (w *responseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Write implicitly calls WriteHeader(http.StatusOK) if the handler wrote a
// body without first setting a status, then forwards to the underlying
// writer and accumulates size.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
