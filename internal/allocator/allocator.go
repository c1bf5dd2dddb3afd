// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package allocator mints collision-free paste identifiers: 12-character
// strings sampled uniformly from a 62-character URL-safe alphabet. Because
// 62^12 is astronomically large, collisions against an existing identifier
// are vanishingly rare in practice; the bounded-retry loop in [Allocate]
// exists to defend against a misconfigured or broken random source rather
// than against expected contention.
package allocator

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/omegaupload/omegaupload/internal/store"
)

const (
	idLength = 12
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// maxAttempts bounds how many times Allocate will generate a fresh id
	// and retry the conditional insert before giving up.
	maxAttempts = 8
)

// ErrAllocationFailed is returned by Allocate once maxAttempts conditional
// inserts have all collided.
var ErrAllocationFailed = errors.New("allocator: exhausted retries allocating an id")

// Allocator mints a paste identifier and reserves it in a [store.Store] by
// writing data under it.
type Allocator struct {
	store  store.Store
	random io.Reader
}

// New constructs an Allocator backed by s, sampling ids from crypto/rand.
func New(s store.Store) *Allocator {
	return &Allocator{store: s, random: rand.Reader}
}

// NewWithRandom constructs an Allocator that samples ids from random
// instead of crypto/rand. Exists so tests can inject a source that
// deterministically reproduces a collision and exercises the retry path.
func NewWithRandom(s store.Store, random io.Reader) *Allocator {
	return &Allocator{store: s, random: random}
}

// Allocate generates a fresh 12-character id, writes data under it via
// PutIfAbsent, and returns the id. On a collision (store.ErrCollision) it
// regenerates and retries up to maxAttempts times before returning
// ErrAllocationFailed.
func (a *Allocator) Allocate(ctx context.Context, data []byte) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		id, err := a.generateID()
		if err != nil {
			return "", fmt.Errorf("allocator: generate id: %w", err)
		}

		err = a.store.PutIfAbsent(ctx, id, data)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, store.ErrCollision) {
			return "", err
		}
	}

	return "", ErrAllocationFailed
}

// generateID samples idLength characters uniformly from alphabet using
// rejection sampling, avoiding modulo bias.
func (a *Allocator) generateID() (string, error) {
	const maxByte = 256 - (256 % len(alphabet))

	id := make([]byte, 0, idLength)
	buf := make([]byte, 1)

	for len(id) < idLength {
		if _, err := io.ReadFull(a.random, buf); err != nil {
			return "", err
		}
		if int(buf[0]) >= maxByte {
			continue
		}
		id = append(id, alphabet[int(buf[0])%len(alphabet)])
	}

	return string(id), nil
}
