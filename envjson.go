// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envjson loads environment variables described by a JSON Schema.
//
// A directory holds env.schema.json and, optionally, env.json and
// env.dist.json. [Load] first checks whether the process environment already
// satisfies the schema; only when it does not are the data files read, their
// values exported into the environment and the schema checked again. Values
// of env.dist.json override those of env.json.
//
//	env, err := envjson.Load("config")
//	if err != nil {
//		log.Fatal(err)
//	}
//	port, _ := env.Get("PORT")
package envjson

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-env-json/internal/environ"
	"github.com/MKhiriev/go-env-json/internal/iniconv"
	"github.com/MKhiriev/go-env-json/internal/logger"
	"github.com/MKhiriev/go-env-json/internal/service"
	"github.com/MKhiriev/go-env-json/internal/store"
	"github.com/MKhiriev/go-env-json/internal/validators"
	"github.com/MKhiriev/go-env-json/models"
)

type (
	// Env is a resolved set of variables in schema declaration order.
	Env = models.Env

	// ValidationError is a single schema violation.
	ValidationError = models.ValidationError

	// InvalidEnvironmentError lists the schema violations left after the
	// data files were applied. Retrieve it with errors.As.
	InvalidEnvironmentError = service.InvalidEnvironmentError

	// Environment reads and writes environment variables.
	Environment = environ.Environment
)

var (
	ErrSchemaNotFound     = store.ErrSchemaNotFound
	ErrSchemaUnreadable   = store.ErrSchemaUnreadable
	ErrSchemaMalformed    = store.ErrSchemaMalformed
	ErrFileIsDirectory    = store.ErrFileIsDirectory
	ErrFileNotReadable    = store.ErrFileNotReadable
	ErrMalformedJSON      = store.ErrMalformedJSON
	ErrInvalidFormat      = store.ErrInvalidFormat
	ErrInvalidEnvironment = service.ErrInvalidEnvironment
	ErrSetenv             = environ.ErrSetenv
	ErrInvalidINI         = iniconv.ErrInvalidINI
)

type loadOptions struct {
	file string
	env  Environment
	log  *logger.Logger
}

// Option configures [Load].
type Option func(*loadOptions)

// WithFile sets the primary data file name. The default is env.json; the
// dist file name is derived from it.
func WithFile(name string) Option {
	return func(o *loadOptions) {
		o.file = name
	}
}

// WithEnvironment replaces the process environment, e.g. with
// [NewMapEnvironment] in tests.
func WithEnvironment(env Environment) Option {
	return func(o *loadOptions) {
		o.env = env
	}
}

// WithLogger makes Load log its resolution steps at debug level. By default
// nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(o *loadOptions) {
		o.log = &logger.Logger{Logger: l}
	}
}

// Load resolves the environment described by dir/env.schema.json.
//
// An empty, non-nil Env is returned when the environment does not satisfy
// the schema and no data file exists. Loading is not safe for concurrent use
// with other code reading or writing the same environment.
func Load(dir string, opts ...Option) (*Env, error) {
	o := loadOptions{
		file: models.DefaultEnvFileName,
		env:  environ.OS(),
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := service.NewResolver(store.NewConfigStorage(), o.env, validators.NewSchemaValidator(), o.log)
	return r.Load(dir, o.file)
}

// LoadEnv is a shorthand for Load(dir, WithFile(name)).
func LoadEnv(dir, name string) (*Env, error) {
	return Load(dir, WithFile(name))
}

// NewMapEnvironment returns an in-memory [Environment] seeded with a copy of
// vars.
func NewMapEnvironment(vars map[string]string) Environment {
	return environ.NewMap(vars)
}

// ConvertINI converts the INI file at iniPath into env.schema.json and
// env.json written to dir, or to the INI file's directory when dir is empty.
// It returns the converted keys in file order.
func ConvertINI(iniPath, dir string) ([]string, error) {
	res, err := iniconv.Convert(iniPath)
	if err != nil {
		return nil, err
	}

	if dir == "" {
		dir = filepath.Dir(iniPath)
	}
	if err = res.WriteFiles(dir); err != nil {
		return nil, err
	}

	return res.Keys, nil
}
