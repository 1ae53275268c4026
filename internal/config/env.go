// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read into [Options].
const EnvPrefix = "ENVJSON_"

// parseEnv populates opts from ENVJSON_* environment variables using the
// caarlos0/env library, applying the envDefault values of unset variables.
//
// Returns a wrapped error if a value cannot be converted to the field type
// (e.g. ENVJSON_VERBOSE=maybe).
func parseEnv(opts *Options) error {
	err := env.ParseWithOptions(opts, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env options: %w", err)
	}

	return nil
}
