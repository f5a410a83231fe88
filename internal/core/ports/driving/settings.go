package driving

import "github.com/custodia-labs/headergen/internal/core/domain"

// SettingsService resolves generator configuration.
type SettingsService interface {
	// Get returns the resolved generator settings.
	Get() (domain.GeneratorSettings, error)

	// Target returns the configured source and target for a kind.
	Target(kind domain.ArtifactKind) domain.TargetSettings

	// CacheDir returns the stamp cache directory, empty for an in-memory cache.
	CacheDir() string

	// Validate checks the resolved settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.GeneratorSettings

	// Keys returns the keys Set accepts.
	Keys() []string

	// Set validates and persists one setting.
	Set(key string, values ...string) error

	// Source describes where configuration was loaded from.
	Source() string
}
