package services

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/custodia-labs/thesisindex/internal/core/domain"
	"github.com/custodia-labs/thesisindex/internal/core/ports/driven"
	"github.com/custodia-labs/thesisindex/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyIndexDirectory = "index.directory"
	KeyIndexOutput    = "index.output"
	KeyLogVerbose     = "log.verbose"
)

// ConfigKeys lists every key the settings service accepts.
var ConfigKeys = []string{KeyIndexDirectory, KeyIndexOutput, KeyLogVerbose}

// SettingsService resolves indexing settings from the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
// A nil config store yields the built-in defaults.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// IndexSettings resolves settings with precedence overrides > config > defaults.
func (s *SettingsService) IndexSettings(overrides domain.IndexSettings) domain.IndexSettings {
	settings := domain.DefaultIndexSettings()

	if dir := s.getString(KeyIndexDirectory); dir != "" {
		settings.Directory = dir
	}
	if out := s.getString(KeyIndexOutput); out != "" {
		settings.Output = out
	}

	if overrides.Directory != "" {
		settings.Directory = overrides.Directory
	}
	if overrides.Output != "" {
		settings.Output = overrides.Output
	}

	return settings
}

// Verbose reports whether log.verbose is set in configuration.
func (s *SettingsService) Verbose() bool {
	if s.configStore == nil {
		return false
	}
	return s.configStore.GetBool(KeyLogVerbose)
}

// Get returns the stored value for key.
func (s *SettingsService) Get(key string) (any, bool, error) {
	if !slices.Contains(ConfigKeys, key) {
		return nil, false, fmt.Errorf("unknown key %q: %w", key, domain.ErrInvalidInput)
	}
	if s.configStore == nil {
		return nil, false, nil
	}
	val, ok := s.configStore.Get(key)
	return val, ok, nil
}

// Set stores value under key. log.verbose must parse as a boolean.
func (s *SettingsService) Set(key, value string) error {
	if !slices.Contains(ConfigKeys, key) {
		return fmt.Errorf("unknown key %q: %w", key, domain.ErrInvalidInput)
	}
	if s.configStore == nil {
		return fmt.Errorf("config store not configured: %w", domain.ErrInvalidInput)
	}

	var stored any = value
	if key == KeyLogVerbose {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q: %w", key, value, domain.ErrInvalidInput)
		}
		stored = b
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// ConfigPath returns the config file location, or "" without a store.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getString(key string) string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.GetString(key)
}
