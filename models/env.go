// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// MetadataPrefix marks keys of a data document that describe the document
// itself (for example "$schema") and never represent an environment variable.
const MetadataPrefix = "$"

// Env is a resolved set of environment variables.
//
// Variables keep the order in which they were added, which for collected
// environments is the declaration order of the schema properties. The zero
// value is an empty, ready to use set.
type Env struct {
	names  []string
	values map[string]string
}

// NewEnv returns an empty [Env].
func NewEnv() *Env {
	return &Env{values: make(map[string]string)}
}

// Set adds or replaces a variable. A replaced variable keeps its position.
func (e *Env) Set(name, value string) {
	if e.values == nil {
		e.values = make(map[string]string)
	}
	if _, ok := e.values[name]; !ok {
		e.names = append(e.names, name)
	}
	e.values[name] = value
}

// Get returns the value of name and whether it is present.
func (e *Env) Get(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.values[name]
	return v, ok
}

// Names returns variable names in insertion order.
func (e *Env) Names() []string {
	if e == nil {
		return nil
	}
	names := make([]string, len(e.names))
	copy(names, e.names)
	return names
}

// Len returns the number of variables.
func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return len(e.names)
}

// Map returns a copy of the variables as a plain map.
func (e *Env) Map() map[string]string {
	m := make(map[string]string, e.Len())
	if e == nil {
		return m
	}
	for k, v := range e.values {
		m[k] = v
	}
	return m
}

// Document returns the variables as a JSON document suitable for schema
// validation.
func (e *Env) Document() map[string]any {
	doc := make(map[string]any, e.Len())
	if e == nil {
		return doc
	}
	for k, v := range e.values {
		doc[k] = v
	}
	return doc
}

// MarshalJSON encodes the variables as a JSON object preserving their order.
// '<', '>' and '&' are left unescaped.
func (e *Env) MarshalJSON() ([]byte, error) {
	var (
		buf    bytes.Buffer
		member bytes.Buffer
	)
	enc := json.NewEncoder(&member)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, name := range e.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		member.Reset()
		if err := enc.Encode(name); err != nil {
			return nil, err
		}
		buf.Write(bytes.TrimRight(member.Bytes(), "\n"))
		buf.WriteByte(':')

		member.Reset()
		if err := enc.Encode(e.values[name]); err != nil {
			return nil, err
		}
		buf.Write(bytes.TrimRight(member.Bytes(), "\n"))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EnvData is the decoded content of env data files: a JSON object whose
// scalar members are candidate environment variables.
type EnvData map[string]any
