// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package iniconv turns a flat INI file into an env.schema.json schema and
// an env.json data document.
package iniconv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/ini.v1"

	"github.com/MKhiriev/go-env-json/models"
)

const (
	schemaDraft   = "http://json-schema.org/draft-04/schema#"
	schemaRef     = "./" + models.SchemaFileName
	jsonIndent    = "    "
	filePerm      = 0o644
	propertyType  = "string"
	metadataField = models.MetadataPrefix + "schema"
)

// Result holds the encoded documents produced by [Convert].
type Result struct {
	// Keys lists the INI keys in file order.
	Keys []string

	// Schema is the encoded env.schema.json document.
	Schema []byte

	// Data is the encoded env.json document.
	Data []byte
}

// Convert reads the INI file at path.
//
// Every key becomes a required string property of the schema and a member of
// the data document, which starts with a "$schema" reference to the schema
// file. Keys of all sections are flattened into one namespace; a repeated
// key keeps its first position and its last value.
func Convert(path string) (*Result, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{}, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidINI, path, err)
	}

	values := models.NewEnv()
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			values.Set(key.Name(), key.String())
		}
	}

	keys := values.Names()
	required := append([]string{}, keys...)
	slices.Sort(required)

	properties := make(object, 0, len(keys))
	for _, k := range keys {
		properties = append(properties, member{k, object{{"type", propertyType}}})
	}
	schema := object{
		{metadataField, schemaDraft},
		{"type", "object"},
		{"required", required},
		{"properties", properties},
	}

	data := make(object, 0, len(keys)+1)
	data = append(data, member{metadataField, schemaRef})
	for _, k := range keys {
		v, _ := values.Get(k)
		data = append(data, member{k, v})
	}

	res := &Result{Keys: keys}
	if res.Schema, err = encode(schema); err != nil {
		return nil, fmt.Errorf("error encoding schema for %s: %w", path, err)
	}
	if res.Data, err = encode(data); err != nil {
		return nil, fmt.Errorf("error encoding data for %s: %w", path, err)
	}

	return res, nil
}

// WriteFiles writes the schema and data documents into dir as
// env.schema.json and env.json, replacing existing files.
func (r *Result) WriteFiles(dir string) error {
	if err := os.WriteFile(filepath.Join(dir, models.SchemaFileName), r.Schema, filePerm); err != nil {
		return fmt.Errorf("error writing schema: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, models.DefaultEnvFileName), r.Data, filePerm); err != nil {
		return fmt.Errorf("error writing data: %w", err)
	}

	return nil
}

// encode pretty-prints v with a trailing newline, leaving '<', '>' and '&'
// unescaped.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

type member struct {
	key   string
	value any
}

// object is a JSON object that keeps its member order.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(m.key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(m.value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
