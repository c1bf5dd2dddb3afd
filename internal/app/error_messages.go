// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written
// into HTTP response bodies or log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgMalformedRequest is returned when the request cannot be parsed:
	// bad headers, an unparsable expiration policy, or an empty body.
	MsgMalformedRequest = "malformed request"

	// MsgBodyTooLarge is returned when the uploaded body exceeds the
	// configured maximum blob size.
	MsgBodyTooLarge = "request body too large"

	// MsgNotFound is returned for a paste that is unknown, expired, or
	// already burned. The three cases are deliberately indistinguishable.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgAllocationFailed is returned when the identifier allocator
	// exhausts its retries without minting a free id.
	MsgAllocationFailed = "failed to allocate paste id"
)
