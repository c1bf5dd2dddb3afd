// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/omegaupload/omegaupload/internal/logger"
	"github.com/omegaupload/omegaupload/internal/paste"
	"github.com/omegaupload/omegaupload/internal/store"
)

// fetch handles GET /{id}. Burn-variant records (BurnAfterReading and
// BurnAfterReadingWithDeadline) are removed atomically via store.Take so
// that at most one concurrent GET ever observes the ciphertext; a
// UnixTime record is read non-destructively and left for the reaper.
//
// Unknown, expired, and already-burned records all collapse to 404 so an
// observer cannot distinguish one case from another.
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := logger.FromRequest(r)

	data, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	record, err := paste.Decode(data)
	if err != nil {
		h.deleteCorrupt(r, id)
		h.writeError(w, store.ErrNotFound)
		return
	}

	if record.Policy.Tag == paste.UnixTime {
		if record.Policy.Expired(time.Now()) {
			h.writeError(w, store.ErrNotFound)
			return
		}
	} else {
		taken, err := h.store.Take(r.Context(), id)
		if err != nil {
			h.writeError(w, err)
			return
		}
		record, err = paste.Decode(taken)
		if err != nil {
			h.writeError(w, store.ErrNotFound)
			return
		}
		if record.Policy.Expired(time.Now()) {
			h.writeError(w, store.ErrNotFound)
			return
		}
	}

	status := http.StatusOK
	if record.Policy.RequiresPassword {
		status = StatusPasswordRequired
	}

	w.Header().Set("Expiration", paste.FormatExpirationHeader(record.Policy))
	w.WriteHeader(status)
	_, _ = w.Write(record.Ciphertext)

	log.Debug().Str("id", id).Int("status", status).Msg("fetch")
}

// deleteCorrupt removes a record that failed to decode, logging the id
// (never the bytes) at warn level.
func (h *Handler) deleteCorrupt(r *http.Request, id string) {
	log := logger.FromRequest(r)
	if err := h.store.Delete(r.Context(), id); err != nil {
		log.Warn().Str("id", id).Err(err).Msg("fetch: failed to delete corrupt record")
		return
	}
	log.Warn().Str("id", id).Msg("fetch: deleted corrupt record")
}
