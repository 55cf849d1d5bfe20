// Package config loads and validates the YAML configuration for the
// batch CLI command: which files or glob patterns to repair, where to
// write the output, and which cache database to log to.
//
// A config file may "extends" a base config file to share common
// settings across a family of jobs; the chain is resolved and checked
// for cycles before the merged result is validated against an embedded
// CUE schema (schema.cue).
//
// This package validates only the tool's own operational settings. It
// has no opinion on the shape of the JSON documents Repair processes.
package config
