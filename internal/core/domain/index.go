package domain

import (
	"path/filepath"
	"strings"
)

const (
	// CandidateSuffix is the case-sensitive suffix a file name must carry.
	CandidateSuffix = ".txt"

	// DefaultDirectory is the thesis directory, relative to the working directory.
	DefaultDirectory = "RAG/theses"

	// DefaultIndexFileName is the index file written inside the thesis directory.
	DefaultIndexFileName = "indexed_files.json"
)

// IsCandidateName reports whether a directory entry name qualifies for the index.
// Only the name is checked; callers must also confirm the entry is a regular file.
func IsCandidateName(name string) bool {
	return strings.HasSuffix(name, CandidateSuffix)
}

// IndexSettings describes one indexing run.
type IndexSettings struct {
	// Directory is the thesis directory to scan.
	Directory string

	// Output is the index file path. Empty means DefaultIndexFileName
	// inside Directory.
	Output string
}

// DefaultIndexSettings returns the fixed deployment layout.
func DefaultIndexSettings() IndexSettings {
	return IndexSettings{Directory: DefaultDirectory}
}

// IndexPath returns the path the index file will be written to.
func (s IndexSettings) IndexPath() string {
	if s.Output != "" {
		return s.Output
	}
	return filepath.Join(s.Directory, DefaultIndexFileName)
}

// IndexResult is the outcome of a successful indexing run.
type IndexResult struct {
	// Directory is the absolute path of the scanned directory.
	Directory string

	// IndexPath is the absolute path of the written index file.
	IndexPath string

	// Paths are the absolute candidate paths in listing order.
	Paths []string
}

// Count returns the number of indexed files.
func (r *IndexResult) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Paths)
}
