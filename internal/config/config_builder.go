package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type optionsBuilder struct {
	sources []*Options
	flags   *pflag.FlagSet
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		sources: make([]*Options, 0, 2),
	}
}

// build merges the sources in the order they were added. mergo only fills
// zero fields, so earlier sources take precedence.
func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building options: %w", b.err)
	}

	opts := new(Options)
	for _, src := range b.sources {
		if err := mergo.Merge(opts, src); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	if b.flags != nil {
		if err := applyChangedBools(opts, b.flags); err != nil {
			return nil, err
		}
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envOpts)
	return b
}

func (b *optionsBuilder) withFlags(fs *pflag.FlagSet) *optionsBuilder {
	if fs == nil {
		return b
	}

	flagOpts, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, flagOpts)
	b.flags = fs
	return b
}
