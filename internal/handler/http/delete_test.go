package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omegaupload/omegaupload/internal/paste"
)

func TestDeletePaste_ExistingID_NoContent(t *testing.T) {
	h, s := newTestHandler(t)
	putRecord(t, h, "deletemedelet", paste.Record{
		Policy:     paste.Policy{Tag: paste.UnixTime, Deadline: time.Now().Add(time.Hour)},
		Ciphertext: []byte("gone soon"),
	})

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/deletemedelet", nil), "id", "deletemedelet")
	rec := httptest.NewRecorder()

	h.deletePaste(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err := s.Get(context.Background(), "deletemedelet")
	assert.Error(t, err)
}

func TestDeletePaste_AbsentID_IsIdempotentNoContent(t *testing.T) {
	h, _ := newTestHandler(t)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/nosuchnosuch", nil), "id", "nosuchnosuch")
	rec := httptest.NewRecorder()

	h.deletePaste(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
