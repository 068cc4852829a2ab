// Package cli implements the thesisindex command line using cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/thesisindex/internal/core/domain"
	"github.com/custodia-labs/thesisindex/internal/core/ports/driving"
	"github.com/custodia-labs/thesisindex/internal/logger"
)

// SettingsLoader opens the settings backed by the config directory.
// An empty directory selects the default location.
type SettingsLoader func(configDir string) (driving.SettingsService, error)

var (
	version = "dev"

	indexService    driving.IndexService
	settingsLoader  SettingsLoader
	settingsService driving.SettingsService

	flagDir       string
	flagOutput    string
	flagConfigDir string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "thesisindex",
	Short: "Index thesis text files",
	Long: `Scans the thesis directory for top-level .txt files and writes their
absolute paths to a JSON index file.

By default the directory is RAG/theses relative to the working directory and
the index is written to indexed_files.json inside it.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runIndex,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.thesisindex)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print diagnostics to stderr")
	rootCmd.Flags().StringVarP(&flagDir, "dir", "d", "", "directory to scan (default RAG/theses)")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "index file path (default <dir>/indexed_files.json)")
}

// SetServices wires the core services used by the commands.
func SetServices(index driving.IndexService, loader SettingsLoader) {
	indexService = index
	settingsLoader = loader
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadSettings(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if settingsLoader == nil {
		return nil
	}
	svc, err := settingsLoader(flagConfigDir)
	if err != nil {
		if flagConfigDir == "" && errors.Is(err, domain.ErrConfigUnavailable) {
			logger.Warn("ignoring config: %v", err)
			settingsService = nil
			return nil
		}
		return fmt.Errorf("load config: %w", err)
	}
	settingsService = svc

	if svc.Verbose() {
		logger.SetVerbose(true)
	}
	logger.Debug("config: %s", svc.ConfigPath())
	return nil
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	overrides := domain.IndexSettings{Directory: flagDir, Output: flagOutput}
	settings := overrides
	if settingsService != nil {
		settings = settingsService.IndexSettings(overrides)
	} else if settings.Directory == "" {
		settings.Directory = domain.DefaultDirectory
	}

	result, err := indexService.Build(cmd.Context(), settings)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s created with %d %s files.\n",
		filepath.Base(result.IndexPath), result.Count(), domain.CandidateSuffix)
	return nil
}
