package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrScanFailed", ErrScanFailed},
		{"ErrNotDirectory", ErrNotDirectory},
		{"ErrIndexWrite", ErrIndexWrite},
		{"ErrConfigUnavailable", ErrConfigUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrScanFailed, ErrIndexWrite))
	assert.False(t, errors.Is(ErrNotDirectory, ErrScanFailed))
	assert.False(t, errors.Is(ErrInvalidInput, ErrScanFailed))
}

func TestErrScanFailed_Wrapped(t *testing.T) {
	cause := errors.New("permission denied")
	err := fmt.Errorf("%w: %s: %w", ErrScanFailed, "/theses", cause)

	assert.True(t, errors.Is(err, ErrScanFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "directory scan failed: /theses: permission denied", err.Error())
}
