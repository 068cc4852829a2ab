package driven

import "context"

// IndexStore persists the index file.
type IndexStore interface {
	// Write creates or truncates the file at path and stores paths as a
	// JSON array. The write is not atomic: a failure midway can leave a
	// truncated file behind.
	// Returns an error wrapping domain.ErrIndexWrite on failure.
	Write(ctx context.Context, path string, paths []string) error
}
