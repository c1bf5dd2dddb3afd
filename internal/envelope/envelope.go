// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	saltSize = 16
	keySize  = 32

	// Argon2id parameters. Fixed and not negotiable: every client and every
	// server build must agree on these or password-protected pastes become
	// unrecoverable.
	argonTime      = 2
	argonMemoryKiB = 15 * 1024 // 15 MiB
	argonThreads   = 2
)

// cipher is the private implementation of [Cipher].
type cipher struct{}

// NewCipher constructs the XChaCha20-Poly1305 + Argon2id [Cipher] used for
// all paste content encryption.
func NewCipher() Cipher {
	return &cipher{}
}

// Encrypt implements [Cipher].
func (c *cipher) Encrypt(plaintext []byte, secret Secret) (ciphertext, fragmentMaterial []byte, err error) {
	var key []byte

	switch secret.Kind() {
	case RandomKeySecret:
		key = make([]byte, keySize)
		if _, err := io.ReadFull(rand.Reader, key); err != nil {
			return nil, nil, fmt.Errorf("generate random key: %w", err)
		}
		fragmentMaterial = append([]byte(nil), key...)

	case PasswordSecret:
		salt := make([]byte, saltSize)
		if _, err := io.ReadFull(rand.Reader, salt); err != nil {
			return nil, nil, fmt.Errorf("generate salt: %w", err)
		}
		key = deriveKey(secret.password, salt)
		fragmentMaterial = salt

	default:
		return nil, nil, fmt.Errorf("envelope: unknown secret kind %d", secret.Kind())
	}
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, nil, fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, nil)
	ciphertext = append(nonce, sealed...)
	return ciphertext, fragmentMaterial, nil
}

// Decrypt implements [Cipher].
func (c *cipher) Decrypt(ciphertext, fragmentMaterial []byte, password string) ([]byte, error) {
	var key []byte

	switch len(fragmentMaterial) {
	case keySize:
		key = make([]byte, keySize)
		copy(key, fragmentMaterial)
	case saltSize:
		if password == "" {
			return nil, ErrMissingPassword
		}
		key = deriveKey(password, fragmentMaterial)
	default:
		return nil, ErrMalformedCiphertext
	}
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	if len(ciphertext) < aead.NonceSize() {
		return nil, ErrMalformedCiphertext
	}
	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrIntegrity
	}

	return plaintext, nil
}

// deriveKey runs Argon2id over password and salt with the fixed KDF
// parameters documented on the package. The caller owns zeroing the
// returned key once it is no longer needed.
func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemoryKiB, argonThreads, keySize)
}
