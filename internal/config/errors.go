// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid after all sources have
// been merged and defaulted.
var (
	// ErrInvalidServerConfigs indicates the HTTP listen address is empty.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates the store data directory is empty
	// or the maximum blob size is not a positive number of bytes.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidReaperConfigs indicates the expiration sweep interval is
	// not a positive duration.
	ErrInvalidReaperConfigs = errors.New("invalid reaper configuration")
)
