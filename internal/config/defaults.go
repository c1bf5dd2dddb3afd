// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaultConfig returns the baseline [StructuredConfig] applied after every
// other source has been merged. Values here only take effect for fields
// still left at their zero value, since [configBuilder.build] merges sources
// in append order and defaults are appended last.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
			ShutdownGrace:  10 * time.Second,
		},
		Storage: Storage{
			DataDir:           "./data",
			MaxBlobBytes:      128 << 20, // 128 MiB
			DefaultExpiration: 6 * time.Hour,
		},
		Reaper: Reaper{
			Interval: 5 * time.Minute,
		},
	}
}

// withDefaults appends [defaultConfig] to the builder. Because merging is
// first-source-wins for non-zero fields, defaults must always be the last
// source appended so env/flags/JSON values take priority over them.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}
