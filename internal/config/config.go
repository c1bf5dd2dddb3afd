// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// omegaupload server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP
	// listener.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the embedded paste store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Reaper holds configuration for the background expiration sweep.
	Reaper Reaper `envPrefix:"REAPER_"`

	// Static holds configuration for the bundled static-asset surface.
	Static Static `envPrefix:"STATIC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and its values fill only the
	// fields still left zero by environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownGrace is how long in-flight requests are given to drain once
	// a shutdown signal is received.
	// Env: SERVER_SHUTDOWN_GRACE
	ShutdownGrace time.Duration `env:"SHUTDOWN_GRACE"`
}

// Storage holds configuration for the embedded key-value paste store.
type Storage struct {
	// DataDir is the directory owned by the embedded KV engine. Its
	// on-disk layout is opaque outside the store package.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// MaxBlobBytes is the maximum accepted ciphertext size for a single
	// upload, enforced while streaming the request body.
	// Env: STORAGE_MAX_BLOB_BYTES
	MaxBlobBytes int64 `env:"MAX_BLOB_BYTES"`

	// DefaultExpiration is the policy lifetime applied when a PUT request
	// carries no Expiration header.
	// Env: STORAGE_DEFAULT_EXPIRATION
	DefaultExpiration time.Duration `env:"DEFAULT_EXPIRATION"`
}

// Reaper holds configuration for the background expiration sweep.
type Reaper struct {
	// Interval is how often the reaper scans the store for expired
	// records.
	// Env: REAPER_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Static holds configuration for the bundled static-asset surface served
// alongside the paste API (the upload/download web frontend).
type Static struct {
	// AssetDir is the directory served under "/" and "/static/". Empty
	// disables the static file server entirely, leaving only the API.
	// Env: STATIC_ASSET_DIR
	AssetDir string `env:"ASSET_DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order,
// highest first (the first source that sets a field wins; later sources only
// fill fields still left zero):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
