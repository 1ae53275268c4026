// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environ

import (
	"os"
	"strings"
	"sync"
)

type osEnvironment struct{}

// OS returns the [Environment] backed by the process environment.
func OS() Environment {
	return osEnvironment{}
}

func (osEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnvironment) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// Map is an in-memory [Environment].
type Map struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMap returns a [Map] seeded with a copy of vars.
func NewMap(vars map[string]string) *Map {
	m := &Map{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

func (m *Map) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vars[key]
	return v, ok
}

func (m *Map) Setenv(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") || strings.ContainsRune(value, 0) {
		return ErrInvalidName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.vars[key] = value
	return nil
}

// Vars returns a copy of all variables.
func (m *Map) Vars() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	vars := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		vars[k] = v
	}
	return vars
}
