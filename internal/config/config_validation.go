// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-env-json/internal/output"
)

// validate checks that the merged [Options] are usable.
func (o *Options) validate() error {
	if o.Verbose && o.Quiet {
		return fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", ErrInvalidOptions)
	}

	if _, err := output.ParseFormat(o.Output); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	if !strings.HasSuffix(o.File, ".json") {
		return fmt.Errorf("%w: data file %q must have a .json extension", ErrInvalidOptions, o.File)
	}

	return nil
}
