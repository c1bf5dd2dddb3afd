// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope implements the zero-knowledge cryptography layer used by
// the CLI client to encrypt and decrypt paste contents. The server never
// imports it: the reaper reads only the policy header via internal/paste.
//
// # Secret hierarchy
//
// Every paste is protected by exactly one of two secret shapes:
//
//  1. RandomKey — a fresh 32-byte key generated by a CSPRNG. The key itself
//     becomes the fragment material carried in the share URL.
//
//  2. Password — a 16-byte random salt plus a user-supplied password. The
//     salt (never the password, never the derived key) becomes the fragment
//     material; the recipient must re-supply the password and re-run the
//     KDF locally to recover the encryption key.
//
// In both cases the server only ever stores and transmits opaque ciphertext:
// the fragment material never crosses the wire to the server.
//
// # Wire format
//
// Encrypt produces a ciphertext envelope of the form:
//
//	nonce(24 bytes) || stream-ciphertext-with-AEAD-tag(remaining bytes)
//
// using XChaCha20-Poly1305. KDF parameters for Password secrets are fixed
// and not negotiable: Argon2id, version 0x13, memory 15 MiB, 2 iterations,
// parallelism 2, 16-byte salt, 32-byte output.
package envelope

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_mock.go -package=mock

// Cipher is responsible for all content cryptography in the zero-knowledge
// scheme. It has no knowledge of the network, the store, or paste metadata —
// its sole responsibility is to seal and open ciphertext envelopes.
type Cipher interface {
	// Encrypt seals plaintext under secret and returns the ciphertext
	// envelope (nonce || AEAD ciphertext) together with the fragment
	// material that the caller must embed in the share URL fragment.
	//
	// For a RandomKey secret, fragmentMaterial is the raw 32-byte key. For
	// a Password secret, fragmentMaterial is the 16-byte salt used to
	// derive the key; the password itself is never returned.
	Encrypt(plaintext []byte, secret Secret) (ciphertext, fragmentMaterial []byte, err error)

	// Decrypt reconstructs the encryption key from fragmentMaterial —
	// directly, if it is a 32-byte raw key, or via Argon2id using
	// fragmentMaterial as salt and password as the KDF input — and opens
	// ciphertext.
	//
	// Returns ErrMissingPassword if fragmentMaterial indicates a salt
	// (16 bytes) but password is empty, ErrMalformedCiphertext if
	// ciphertext is shorter than the nonce, and ErrIntegrity if
	// authentication fails (wrong key or tampered ciphertext).
	Decrypt(ciphertext, fragmentMaterial []byte, password string) ([]byte, error)
}
