// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg's `env`-tagged fields (see [StructuredConfig] and
// its nested Server/Storage/Reaper/Static types) from the process
// environment, e.g. STORAGE_MAX_BLOB_BYTES.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse environment: %w", err)
	}
	return nil
}
