// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/omegaupload/omegaupload/internal/allocator"
	"github.com/omegaupload/omegaupload/internal/app"
	"github.com/omegaupload/omegaupload/internal/paste"
	"github.com/omegaupload/omegaupload/internal/store"
)

type errorResponse struct {
	message string
	status  int
}

var errorStatusMap = map[error]errorResponse{
	ErrMissingBody:                 {message: app.MsgMalformedRequest, status: http.StatusBadRequest},
	paste.ErrMalformedExpiration:   {message: app.MsgMalformedRequest, status: http.StatusBadRequest},
	paste.ErrPastDeadline:          {message: app.MsgMalformedRequest, status: http.StatusBadRequest},
	paste.ErrCorruptRecord:         {message: app.MsgNotFound, status: http.StatusNotFound},
	store.ErrNotFound:              {message: app.MsgNotFound, status: http.StatusNotFound},
	store.ErrCollision:             {message: app.MsgInternalServerError, status: http.StatusInternalServerError},
	allocator.ErrAllocationFailed:  {message: app.MsgAllocationFailed, status: http.StatusInternalServerError},
}

// responseFromError maps a domain sentinel error, matched via [errors.Is],
// to the HTTP status and message the caller should receive. Unrecognised
// errors collapse to a generic 500 so internals never leak to the client.
func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{message: app.MsgInternalServerError, status: http.StatusInternalServerError}
}
