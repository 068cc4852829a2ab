package driving

import (
	"context"

	"github.com/custodia-labs/thesisindex/internal/core/domain"
)

// IndexService builds the thesis index.
type IndexService interface {
	// Build scans settings.Directory and writes the index file.
	// The index file is left untouched when the scan fails.
	Build(ctx context.Context, settings domain.IndexSettings) (*domain.IndexResult, error)
}
