package driving

import "github.com/custodia-labs/thesisindex/internal/core/domain"

// SettingsService resolves indexing settings from configuration.
type SettingsService interface {
	// IndexSettings merges overrides over configured values over defaults.
	// Empty override fields are ignored.
	IndexSettings(overrides domain.IndexSettings) domain.IndexSettings

	// Verbose reports whether verbose logging is enabled in configuration.
	Verbose() bool

	// Get returns the configured value of a known key.
	// Returns domain.ErrInvalidInput for unknown keys.
	Get(key string) (value any, ok bool, err error)

	// Set validates and persists a value for a known key.
	// Returns domain.ErrInvalidInput for unknown keys or malformed values.
	Set(key, value string) error

	// ConfigPath returns the location of the configuration file.
	ConfigPath() string
}
