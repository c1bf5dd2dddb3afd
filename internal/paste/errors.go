// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paste

import "errors"

var (
	// ErrCorruptRecord is returned when a stored record is shorter than
	// HeaderSize or carries a policy tag outside the known range.
	ErrCorruptRecord = errors.New("paste: corrupt record")

	// ErrMalformedExpiration is returned when an Expiration header value
	// does not match one of the three accepted literal forms.
	ErrMalformedExpiration = errors.New("paste: malformed expiration header")

	// ErrPastDeadline is returned when a time-bounded policy's deadline is
	// not strictly in the future relative to the point of upload.
	ErrPastDeadline = errors.New("paste: deadline must be in the future")
)
