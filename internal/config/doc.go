// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the omegaupload server.
//
// Configuration is assembled from multiple sources in the following priority
// order, highest first (earlier sources win; later sources only fill fields
// still left zero):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults, applied only to fields still left zero
//
// The entry point is [GetStructuredConfig].
package config
