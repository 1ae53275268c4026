package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-env-json/internal/output"
)

const (
	flagDir     = "dir"
	flagFile    = "file"
	flagOutput  = "output"
	flagVerbose = "verbose"
	flagQuiet   = "quiet"
)

// RegisterFlags defines the envjson flags on fs.
//
// Flags:
//
//	-d/--dir     directory containing env.schema.json (default ".")
//	-f/--file    data file name (default "env.json")
//	-o/--output  output format (default "shell")
//	-v/--verbose verbose diagnostics
//	-q/--quiet   no diagnostics
//
// Defaults are applied by [GetOptions] after the environment has been
// consulted, so the flags themselves default to zero values.
func RegisterFlags(fs *pflag.FlagSet) {
	formats := make([]string, 0, len(output.Formats))
	for _, f := range output.Formats {
		formats = append(formats, f.String())
	}

	fs.StringP(flagDir, "d", "", `directory containing env.schema.json (default ".")`)
	fs.StringP(flagFile, "f", "", `data file name (default "env.json")`)
	fs.StringP(flagOutput, "o", "", fmt.Sprintf("output format: %s (default %q)", strings.Join(formats, ", "), output.Shell))
	fs.BoolP(flagVerbose, "v", false, "print debug information and a success message to stderr")
	fs.BoolP(flagQuiet, "q", false, "suppress warnings")
}

// parseFlags reads the values of the flags defined by [RegisterFlags].
func parseFlags(fs *pflag.FlagSet) (*Options, error) {
	var (
		opts Options
		err  error
	)

	if opts.Dir, err = fs.GetString(flagDir); err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", flagDir, err)
	}
	if opts.File, err = fs.GetString(flagFile); err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", flagFile, err)
	}
	if opts.Output, err = fs.GetString(flagOutput); err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", flagOutput, err)
	}
	if opts.Verbose, err = fs.GetBool(flagVerbose); err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", flagVerbose, err)
	}
	if opts.Quiet, err = fs.GetBool(flagQuiet); err != nil {
		return nil, fmt.Errorf("error reading flag %s: %w", flagQuiet, err)
	}

	return &opts, nil
}

// applyChangedBools gives boolean flags set on the command line precedence
// over ENVJSON_* values, including an explicit false which mergo cannot
// carry. Setting one of --verbose and --quiet clears the other unless both
// were given.
func applyChangedBools(opts *Options, fs *pflag.FlagSet) error {
	verboseSet, quietSet := fs.Changed(flagVerbose), fs.Changed(flagQuiet)

	if verboseSet {
		v, err := fs.GetBool(flagVerbose)
		if err != nil {
			return fmt.Errorf("error reading flag %s: %w", flagVerbose, err)
		}
		opts.Verbose = v
		if v && !quietSet {
			opts.Quiet = false
		}
	}

	if quietSet {
		q, err := fs.GetBool(flagQuiet)
		if err != nil {
			return fmt.Errorf("error reading flag %s: %w", flagQuiet, err)
		}
		opts.Quiet = q
		if q && !verboseSet {
			opts.Verbose = false
		}
	}

	return nil
}
