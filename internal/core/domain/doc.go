// Package domain defines the core entities of the thesis indexer.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines:
//
//   - IndexSettings: where to scan and where to write the index
//   - IndexResult: the outcome of one indexing run
//   - Candidate rules: which directory entries belong in the index
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
