package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// fileState reports what is found at a path before it is read.
type fileState int

const (
	fileAbsent fileState = iota
	fileRegular
	fileDirectory
)

// statFile inspects path. A missing file is reported as fileAbsent with a nil
// error; any other stat failure is returned as is.
func statFile(path string) (fileState, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fileAbsent, nil
	}
	if err != nil {
		return fileAbsent, err
	}
	if info.IsDir() {
		return fileDirectory, nil
	}

	return fileRegular, nil
}

// decodeObject decodes data as a single JSON object. Numbers are kept as
// [json.Number] so their literal text survives coercion to strings.
//
// Syntax errors are returned unwrapped; a valid non-object value yields
// errNotObject.
func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top level value at offset %d", dec.InputOffset())
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}

	return obj, nil
}

// objectKeys returns the member names of the JSON object in raw in document
// order. ok is false when raw is not an object.
func objectKeys(raw json.RawMessage) (keys []string, ok bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if d, isDelim := tok.(json.Delim); !isDelim || d != '{' {
		return nil, false
	}

	keys = make([]string, 0)
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, false
		}
		key, isKey := tok.(string)
		if !isKey {
			return nil, false
		}

		var skip json.RawMessage
		if err = dec.Decode(&skip); err != nil {
			return nil, false
		}

		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys, true
}
