package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/thesisindex/internal/core/domain"
	"github.com/custodia-labs/thesisindex/internal/core/ports/driven"
	"github.com/custodia-labs/thesisindex/internal/core/ports/driving"
	"github.com/custodia-labs/thesisindex/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService lists the thesis directory and writes the index file.
type IndexService struct {
	scanner driven.DirectoryScanner
	store   driven.IndexStore
}

// NewIndexService creates a new index service.
func NewIndexService(scanner driven.DirectoryScanner, store driven.IndexStore) *IndexService {
	return &IndexService{
		scanner: scanner,
		store:   store,
	}
}

// Build scans the directory and overwrites the index file with the result.
// The scan runs to completion before the index file is opened, so a failed
// scan never creates or truncates it.
func (s *IndexService) Build(ctx context.Context, settings domain.IndexSettings) (*domain.IndexResult, error) {
	if s.scanner == nil || s.store == nil {
		return nil, fmt.Errorf("index service not configured: %w", domain.ErrInvalidInput)
	}
	if settings.Directory == "" {
		return nil, fmt.Errorf("directory is required: %w", domain.ErrInvalidInput)
	}

	logger.Section("Index")

	dir, err := filepath.Abs(settings.Directory)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrScanFailed, settings.Directory, err)
	}
	indexPath, err := filepath.Abs(settings.IndexPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrIndexWrite, settings.IndexPath(), err)
	}
	logger.Debug("directory: %s", dir)
	logger.Debug("index file: %s", indexPath)
	if filepath.Dir(indexPath) != dir {
		logger.Warn("index file %s is outside the scanned directory %s", indexPath, dir)
	}

	paths, err := s.scanner.Scan(ctx, dir)
	if err != nil {
		return nil, err
	}
	logger.Info("found %d candidate files", len(paths))

	if err := s.store.Write(ctx, indexPath, paths); err != nil {
		return nil, err
	}
	logger.Debug("wrote %s", indexPath)

	return &domain.IndexResult{
		Directory: dir,
		IndexPath: indexPath,
		Paths:     paths,
	}, nil
}
