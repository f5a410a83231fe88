package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
	"github.com/custodia-labs/headergen/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for generator settings.
const (
	keyCertsSystemPath = "certs.system_path"
	keyCertsBuiltin    = "certs.builtin"
	keyAuthorsSections = "authors.sections"
	keyLicenseSymbol   = "license.text_symbol"
	keyCacheDir        = "cache.dir"

	keySourceSuffix = ".source"
	keyTargetSuffix = ".target"
)

// SettingsService resolves generator settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the resolved settings. Unset keys take their defaults;
// a malformed section entry is an error.
func (s *SettingsService) Get() (domain.GeneratorSettings, error) {
	defaults := domain.DefaultGeneratorSettings()

	settings := domain.GeneratorSettings{
		SystemCertsPath:   s.configStore.GetString(keyCertsSystemPath), // No default - empty is valid
		BuiltinCerts:      s.getBool(keyCertsBuiltin, defaults.BuiltinCerts),
		Sections:          defaults.Sections,
		LicenseTextSymbol: s.getString(keyLicenseSymbol, defaults.LicenseTextSymbol),
	}

	if raw := s.configStore.GetStringSlice(keyAuthorsSections); len(raw) > 0 {
		specs := make([]domain.SectionSpec, 0, len(raw))
		for _, entry := range raw {
			spec, err := domain.ParseSectionSpec(entry)
			if err != nil {
				return domain.GeneratorSettings{}, fmt.Errorf("load %s: %w", keyAuthorsSections, err)
			}
			specs = append(specs, spec)
		}
		settings.Sections = specs
	}

	return settings, nil
}

// Target returns the configured source and target for a kind.
func (s *SettingsService) Target(kind domain.ArtifactKind) domain.TargetSettings {
	return domain.TargetSettings{
		Source: s.configStore.GetString(kind.String() + keySourceSuffix),
		Target: s.configStore.GetString(kind.String() + keyTargetSuffix),
	}
}

// CacheDir returns the stamp cache directory.
func (s *SettingsService) CacheDir() string {
	return s.configStore.GetString(keyCacheDir)
}

// Validate checks the resolved settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.GeneratorSettings {
	return domain.DefaultGeneratorSettings()
}

// Keys returns every key Set accepts, in display order.
func (s *SettingsService) Keys() []string {
	keys := []string{keyCertsSystemPath, keyCertsBuiltin, keyAuthorsSections, keyLicenseSymbol, keyCacheDir}
	for _, kind := range domain.AllArtifactKinds() {
		keys = append(keys, kind.String()+keySourceSuffix, kind.String()+keyTargetSuffix)
	}
	return keys
}

// Set validates and persists one setting. authors.sections takes one or
// more Heading=ID values; every other key takes exactly one value.
func (s *SettingsService) Set(key string, values ...string) error {
	if !s.isKey(key) {
		return fmt.Errorf("set %s: %w: unknown key", key, domain.ErrInvalidInput)
	}
	if key != keyAuthorsSections && len(values) != 1 {
		return fmt.Errorf("set %s: %w: expected one value, got %d", key, domain.ErrInvalidInput, len(values))
	}

	var value any
	switch key {
	case keyAuthorsSections:
		specs, err := s.candidateSections(values)
		if err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		value = specs
	case keyCertsBuiltin:
		b, err := strconv.ParseBool(values[0])
		if err != nil {
			return fmt.Errorf("set %s: %w: %q is not a boolean", key, domain.ErrInvalidInput, values[0])
		}
		value = b
	case keyLicenseSymbol:
		symbol := strings.TrimSpace(values[0])
		if symbol == "" {
			return fmt.Errorf("set %s: %w: license text symbol is empty", key, domain.ErrInvalidInput)
		}
		value = symbol
	default:
		value = values[0]
	}

	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// candidateSections parses values and checks them the way Validate would.
func (s *SettingsService) candidateSections(values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: at least one Heading=ID is required", domain.ErrInvalidInput)
	}
	candidate := domain.DefaultGeneratorSettings()
	candidate.Sections = make([]domain.SectionSpec, 0, len(values))
	normalised := make([]string, 0, len(values))
	for _, v := range values {
		spec, err := domain.ParseSectionSpec(v)
		if err != nil {
			return nil, err
		}
		candidate.Sections = append(candidate.Sections, spec)
		normalised = append(normalised, spec.String())
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	return normalised, nil
}

func (s *SettingsService) isKey(key string) bool {
	for _, k := range s.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Source describes where configuration was loaded from.
func (s *SettingsService) Source() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
