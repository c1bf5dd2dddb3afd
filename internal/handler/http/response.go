// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// writeError maps err to its HTTP status and message via responseFromError
// and writes it as the response. It never reveals the underlying error to
// the client, only the mapped public message.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.message))
}
