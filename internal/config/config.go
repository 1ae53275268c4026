// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-env-json/internal/output"
)

// Options is the configuration of one envjson invocation.
//
// Struct tags:
//   - env        — environment variable name, prefixed with ENVJSON_ (caarlos0/env).
//   - envDefault — value used when neither a flag nor the variable is set.
type Options struct {
	// Dir is the directory holding env.schema.json and the data files.
	// Env: ENVJSON_DIR
	Dir string `env:"DIR" envDefault:"."`

	// File is the name of the primary data file inside Dir. Its dist file
	// name is derived from it.
	// Env: ENVJSON_FILE
	File string `env:"FILE" envDefault:"env.json"`

	// Output names the output format, see [output.Formats].
	// Env: ENVJSON_OUTPUT
	Output string `env:"OUTPUT" envDefault:"shell"`

	// Verbose enables debug logging and a success message on stderr.
	// Env: ENVJSON_VERBOSE
	Verbose bool `env:"VERBOSE"`

	// Quiet suppresses every diagnostic on stderr.
	// Env: ENVJSON_QUIET
	Quiet bool `env:"QUIET"`
}

// Format returns the parsed output format. Options returned by [GetOptions]
// always hold a valid one.
func (o *Options) Format() output.Format {
	f, _ := output.ParseFormat(o.Output)
	return f
}

// GetOptions loads, merges and validates the options from the flags defined
// by [RegisterFlags] on fs and the ENVJSON_* environment variables.
func GetOptions(fs *pflag.FlagSet) (*Options, error) {
	return newOptionsBuilder().
		withFlags(fs).
		withEnv().
		build()
}
