package domain

import "errors"

// ErrEmptyLine marks a zero-length line. NDJSON requires one JSON value per
// line, so blank lines are reported explicitly rather than silently skipped.
var ErrEmptyLine = errors.New("empty line")

// ErrOutputDirRequired is a configuration error: cleaning was requested
// without a directory to write cleaned files into.
var ErrOutputDirRequired = errors.New("output directory is required when cleaning is enabled")

// ErrUnknownBackend is a configuration error: the named parse backend does
// not exist.
var ErrUnknownBackend = errors.New("unknown parse backend")

// ErrNoFilesFound signals that a directory scan matched no NDJSON files.
var ErrNoFilesFound = errors.New("no NDJSON files found")
