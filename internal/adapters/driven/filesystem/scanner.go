package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/custodia-labs/thesisindex/internal/core/domain"
	"github.com/custodia-labs/thesisindex/internal/core/ports/driven"
	"github.com/custodia-labs/thesisindex/internal/logger"
)

// Ensure Scanner implements the interface.
var _ driven.DirectoryScanner = (*Scanner)(nil)

// Scanner lists top-level candidate files of a directory.
type Scanner struct {
	fs billy.Filesystem
}

// NewScanner creates a scanner over fs.
func NewScanner(fs billy.Filesystem) *Scanner {
	return &Scanner{fs: fs}
}

// Scan returns absolute paths of the regular ".txt" files directly inside dir.
// Entries keep the order the filesystem lists them in.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrScanFailed, dir, err)
	}

	info, err := s.fs.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrScanFailed, abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrScanFailed, abs, domain.ErrNotDirectory)
	}

	entries, err := s.fs.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrScanFailed, abs, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !domain.IsCandidateName(entry.Name()) {
			continue
		}

		path := filepath.Join(abs, entry.Name())
		if !s.isRegular(path, entry) {
			logger.Debug("skipping %s: not a regular file", path)
			continue
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// isRegular reports whether the entry is a regular file, following symlinks.
func (s *Scanner) isRegular(path string, entry os.FileInfo) bool {
	if entry.Mode()&os.ModeSymlink == 0 {
		return entry.Mode().IsRegular()
	}

	target, err := s.fs.Stat(path)
	if err != nil {
		logger.Warn("unresolvable symlink %s: %v", path, err)
		return false
	}
	return target.Mode().IsRegular()
}
