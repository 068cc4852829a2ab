package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/thesisindex/internal/core/domain"
	"github.com/custodia-labs/thesisindex/internal/core/services"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
	assert.Contains(t, configCmd.Long, "index.directory")
	assert.Contains(t, configCmd.Long, "log.verbose")
}

func TestConfigCmd_Path(t *testing.T) {
	setupCLITest(t, nil, nil)

	out, err := execute("config", "path")

	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestConfigCmd_SetAndGet(t *testing.T) {
	store := setupCLITest(t, nil, nil)

	out, err := execute("config", "set", "index.directory", "/data/theses")
	require.NoError(t, err)
	assert.Equal(t, "index.directory = /data/theses\n", out)
	assert.Equal(t, "/data/theses", store.GetString(services.KeyIndexDirectory))

	out, err = execute("config", "get", "index.directory")
	require.NoError(t, err)
	assert.Equal(t, "/data/theses\n", out)
}

func TestConfigCmd_SetVerbose(t *testing.T) {
	store := setupCLITest(t, nil, nil)

	_, err := execute("config", "set", "log.verbose", "true")

	require.NoError(t, err)
	assert.True(t, store.GetBool(services.KeyLogVerbose))
}

func TestConfigCmd_Errors(t *testing.T) {
	setupCLITest(t, nil, nil)

	t.Run("unset key", func(t *testing.T) {
		_, err := execute("config", "get", "index.output")
		assert.EqualError(t, err, "index.output is not set")
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := execute("config", "set", "search.mode", "hybrid")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("bad bool", func(t *testing.T) {
		_, err := execute("config", "set", "log.verbose", "loud")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing args", func(t *testing.T) {
		_, err := execute("config", "set", "index.output")
		assert.Error(t, err)
	})
}

func TestConfigCmd_NotConfigured(t *testing.T) {
	setupCLITest(t, nil, nil)
	settingsLoader = nil
	settingsService = nil

	_, err := execute("config", "path")

	assert.EqualError(t, err, "settings service not configured")
}
