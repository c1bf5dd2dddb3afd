// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fragment encodes and decodes the URL fragment that carries a
// paste's key material. The fragment is the single interop contract
// between the CLI and any browser frontend, and is never sent to the
// server: the HTTP fetch that resolves a paste URL stops at the path, with
// everything after '#' kept client-side by construction of the URL spec.
//
// Two exact shapes are accepted:
//
//	symmetric (no password):   <base64url(key_bytes)>
//	password-protected:        key:<base64url(salt_bytes)>!pw
//
// base64url is the URL-safe, no-padding variant ([encoding/base64.RawURLEncoding]).
package fragment

import (
	"encoding/base64"
	"strings"
)

const (
	passwordPrefix = "key:"
	passwordSuffix = "!pw"
)

// Material is the decoded contents of a URL fragment: the raw key or salt
// bytes, plus whether a password is required to turn them into an
// encryption key.
type Material struct {
	Bytes            []byte
	RequiresPassword bool
}

// Encode renders material back into its fragment string, without the
// leading '#'.
func Encode(m Material) string {
	encoded := base64.RawURLEncoding.EncodeToString(m.Bytes)
	if m.RequiresPassword {
		return passwordPrefix + encoded + passwordSuffix
	}
	return encoded
}

// Decode parses a fragment string (without the leading '#') into its
// Material. Returns ErrMalformedFragment if value matches neither the
// symmetric nor the password-protected shape, or if the base64url payload
// does not decode.
func Decode(value string) (Material, error) {
	if rest, ok := strings.CutPrefix(value, passwordPrefix); ok {
		encoded, ok := strings.CutSuffix(rest, passwordSuffix)
		if !ok {
			return Material{}, ErrMalformedFragment
		}
		raw, err := base64.RawURLEncoding.DecodeString(encoded)
		if err != nil {
			return Material{}, ErrMalformedFragment
		}
		return Material{Bytes: raw, RequiresPassword: true}, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Material{}, ErrMalformedFragment
	}
	return Material{Bytes: raw, RequiresPassword: false}, nil
}
