package domain

import "errors"

// Domain errors represent indexing failures.
// Adapters wrap the underlying filesystem error alongside these.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrScanFailed indicates the thesis directory could not be listed.
	ErrScanFailed = errors.New("directory scan failed")

	// ErrNotDirectory indicates the scan target exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrIndexWrite indicates the index file could not be written.
	ErrIndexWrite = errors.New("index write failed")

	// ErrConfigUnavailable indicates the default config location cannot be
	// resolved, e.g. no home directory. Indexing proceeds on defaults.
	ErrConfigUnavailable = errors.New("config location unavailable")
)
