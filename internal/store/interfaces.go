// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store wraps an ordered, byte-keyed persistent engine used to hold
// paste records. The store is the only component that may mutate persistent
// state; every operation below is atomic with respect to concurrent calls
// on the same key.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import "context"

// Store is implemented by the embedded key-value backend holding paste
// records. Keys are paste identifiers; values are the canonical binary
// record layout produced by internal/paste.
type Store interface {
	// PutIfAbsent inserts data under id only if id is not already present.
	// Returns ErrCollision if id is already taken.
	PutIfAbsent(ctx context.Context, id string, data []byte) error

	// Get returns the record stored under id without removing it. Returns
	// ErrNotFound if id is absent.
	Get(ctx context.Context, id string) ([]byte, error)

	// Take atomically reads and deletes the record stored under id,
	// guaranteeing at-most-once delivery under concurrent callers. Returns
	// ErrNotFound if id is absent.
	Take(ctx context.Context, id string) ([]byte, error)

	// Delete removes id if present. It is idempotent: deleting an absent id
	// is not an error.
	Delete(ctx context.Context, id string) error

	// Scan calls fn once per stored (id, data) pair. Scan is restartable
	// and is not required to observe a consistent snapshot under concurrent
	// writes — callers that tolerate staleness (the reaper) may use it
	// freely. Scan stops and returns fn's error as soon as fn returns one.
	Scan(ctx context.Context, fn func(id string, data []byte) error) error

	// Flush ensures all prior writes are durable on disk.
	Flush() error

	// Close releases the underlying engine handle. The store must not be
	// used after Close returns.
	Close() error
}
