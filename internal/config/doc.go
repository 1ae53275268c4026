// Package config assembles the options of the envjson command.
//
// Options are collected from the following sources, the first non-zero value
// of each field winning:
//  1. Command-line flags
//  2. ENVJSON_* environment variables
//  3. Defaults
//
// The main entry point is [GetOptions].
package config
