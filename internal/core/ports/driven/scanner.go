package driven

import "context"

// DirectoryScanner lists the candidate files of a directory.
type DirectoryScanner interface {
	// Scan returns the absolute paths of every top-level regular file in dir
	// whose name carries the candidate suffix, in listing order.
	// An empty directory yields an empty, non-nil slice.
	// Returns an error wrapping domain.ErrScanFailed if dir cannot be listed.
	Scan(ctx context.Context, dir string) ([]string, error)
}
