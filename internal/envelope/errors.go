// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import "errors"

var (
	// ErrIntegrity is returned when the AEAD authentication tag does not
	// verify, meaning either the wrong key was used or the ciphertext was
	// tampered with in transit or at rest.
	ErrIntegrity = errors.New("envelope: integrity check failed")

	// ErrMissingPassword is returned by Decrypt when fragmentMaterial is a
	// salt (indicating a password-protected paste) but no password was
	// supplied.
	ErrMissingPassword = errors.New("envelope: password required to derive key")

	// ErrMalformedCiphertext is returned when the ciphertext is shorter
	// than the nonce, or fragmentMaterial is neither a 32-byte key nor a
	// 16-byte salt.
	ErrMalformedCiphertext = errors.New("envelope: malformed ciphertext or fragment material")
)
