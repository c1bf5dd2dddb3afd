// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrCollision is returned by PutIfAbsent when the given id is already
	// present.
	ErrCollision = errors.New("store: id already exists")

	// ErrNotFound is returned by Get and Take when the given id is absent.
	ErrNotFound = errors.New("store: id not found")
)
