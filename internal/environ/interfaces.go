// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environ reads and writes environment variables through an
// injectable [Environment] port.
//
// [Collect] builds the schema-scoped view of the environment that is
// validated, and [Apply] writes the scalar members of env data files back
// into the environment. Production code uses [OS]; tests use [NewMap] or the
// generated mock so that no process-wide state leaks between cases.
package environ

//go:generate mockgen -source=interfaces.go -destination=../mock/environment_mock.go -package=mock

// Environment is the process environment seen as a key/value store.
type Environment interface {
	// LookupEnv returns the value of key and whether it is set. A variable
	// set to the empty string is reported as present.
	LookupEnv(key string) (string, bool)

	// Setenv sets key to value.
	Setenv(key, value string) error
}
