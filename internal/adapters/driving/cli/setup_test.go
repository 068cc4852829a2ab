package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/thesisindex/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/thesisindex/internal/core/domain"
	"github.com/custodia-labs/thesisindex/internal/core/ports/driving"
	"github.com/custodia-labs/thesisindex/internal/core/services"
	"github.com/custodia-labs/thesisindex/internal/logger"
)

// mockIndexService implements driving.IndexService for testing.
type mockIndexService struct {
	got    domain.IndexSettings
	calls  int
	result *domain.IndexResult
	err    error
}

func (m *mockIndexService) Build(_ context.Context, settings domain.IndexSettings) (*domain.IndexResult, error) {
	m.calls++
	m.got = settings
	return m.result, m.err
}

// setupCLITest wires the commands to index and an in-memory config seeded
// with values, and resets flag state afterwards.
func setupCLITest(t *testing.T, index driving.IndexService, values map[string]any) *memory.ConfigStore {
	t.Helper()

	store := memory.NewConfigStore(values)
	oldIndex, oldLoader, oldSettings := indexService, settingsLoader, settingsService
	SetServices(index, func(string) (driving.SettingsService, error) {
		return services.NewSettingsService(store), nil
	})

	t.Cleanup(func() {
		indexService, settingsLoader, settingsService = oldIndex, oldLoader, oldSettings
		flagDir, flagOutput, flagConfigDir, flagVerbose = "", "", "", false
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.Reset()
	})
	return store
}

// execute runs the root command with args and returns stdout.
func execute(args ...string) (string, error) {
	flagDir, flagOutput, flagConfigDir, flagVerbose = "", "", "", false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)

	err := Execute(context.Background())
	return buf.String(), err
}
