// Package jsonfile writes the thesis index as a JSON array of paths.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/custodia-labs/thesisindex/internal/core/domain"
	"github.com/custodia-labs/thesisindex/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

const indent = "  "

// Store writes index files through a go-billy filesystem.
type Store struct {
	fs billy.Filesystem
}

// NewStore creates a store over fs.
func NewStore(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// Encode renders paths as a two-space indented JSON array without a
// trailing newline. A nil or empty slice renders as [].
func Encode(paths []string) ([]byte, error) {
	if paths == nil {
		paths = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(paths); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write creates or truncates path and writes the encoded index.
func (s *Store) Write(ctx context.Context, path string, paths []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(paths)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrIndexWrite, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrIndexWrite, path, err)
	}

	f, err := s.fs.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrIndexWrite, abs, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %w", domain.ErrIndexWrite, abs, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrIndexWrite, abs, err)
	}
	return nil
}
