// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/omegaupload/omegaupload/internal/app"
	"github.com/omegaupload/omegaupload/internal/logger"
	"github.com/omegaupload/omegaupload/internal/paste"
)

// upload handles PUT /{id?}. Any client-supplied path segment is ignored:
// the server always mints its own identifier via the allocator. The request
// body is the opaque ciphertext envelope; it is streamed through
// http.MaxBytesReader so an oversized body is rejected without being fully
// buffered first.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	policy, err := h.resolvePolicy(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.storage.MaxBlobBytes)
	ciphertext, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			_, _ = io.WriteString(w, app.MsgBodyTooLarge)
			return
		}
		h.writeError(w, ErrMissingBody)
		return
	}
	if len(ciphertext) == 0 {
		h.writeError(w, ErrMissingBody)
		return
	}

	record := paste.Record{Policy: policy, Ciphertext: ciphertext}
	data := paste.Encode(record)

	id, err := h.allocator.Allocate(r.Context(), data)
	if err != nil {
		h.writeError(w, err)
		return
	}

	log.Debug().Str("id", id).Msg("upload: stored")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, id)
}

// resolvePolicy derives the upload's expiration Policy from the Expiration
// and Requires-Password headers. An absent Expiration header falls back to
// the server's configured default lifetime.
func (h *Handler) resolvePolicy(r *http.Request) (paste.Policy, error) {
	now := time.Now()

	value := r.Header.Get("Expiration")
	var policy paste.Policy
	if value == "" {
		policy = paste.Policy{Tag: paste.UnixTime, Deadline: now.Add(h.storage.DefaultExpiration)}
	} else {
		var err error
		policy, err = paste.ParseExpirationHeader(value, now)
		if err != nil {
			return paste.Policy{}, err
		}
	}

	policy.RequiresPassword = r.Header.Get("Requires-Password") == "true"
	return policy, nil
}
