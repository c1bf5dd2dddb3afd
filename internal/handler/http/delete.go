// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omegaupload/omegaupload/internal/logger"
)

// deletePaste handles DELETE /{id}, an operator escape hatch that removes a
// record unconditionally. Deleting an absent id is not an error: the
// operation is idempotent and always returns 204.
func (h *Handler) deletePaste(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := logger.FromRequest(r)

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	log.Debug().Str("id", id).Msg("delete")
	w.WriteHeader(http.StatusNoContent)
}
