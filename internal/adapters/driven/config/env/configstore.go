// Package env overlays environment variables on another driven.ConfigStore.
//
// A key such as "certs.system_path" is read from HEADERGEN_CERTS_SYSTEM_PATH.
// Environment values win over the wrapped store; writes go to the wrapped
// store only.
package env

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/custodia-labs/headergen/internal/core/ports/driven"
)

// Prefix is prepended to every environment variable name.
const Prefix = "HEADERGEN"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore reads keys from the environment before falling back to base.
type ConfigStore struct {
	base driven.ConfigStore
	v    *viper.Viper
}

// NewConfigStore wraps base with an environment overlay.
func NewConfigStore(base driven.ConfigStore) *ConfigStore {
	v := viper.New()
	v.SetEnvPrefix(Prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &ConfigStore{base: base, v: v}
}

// lookup returns the raw environment value for key.
func (s *ConfigStore) lookup(key string) (string, bool) {
	val := s.v.Get(key)
	if val == nil {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	if val, ok := s.lookup(key); ok {
		return val, true
	}
	return s.base.Get(key)
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	if val, ok := s.lookup(key); ok {
		return val
	}
	return s.base.GetString(key)
}

// GetBool retrieves a boolean configuration value.
// Environment values accept the forms of strconv.ParseBool.
func (s *ConfigStore) GetBool(key string) bool {
	if _, ok := s.lookup(key); ok {
		return s.v.GetBool(key)
	}
	return s.base.GetBool(key)
}

// GetStringSlice retrieves a string slice configuration value.
// Environment values are comma separated.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, ok := s.lookup(key)
	if !ok {
		return s.base.GetStringSlice(key)
	}

	var result []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// Set stores a configuration value in the wrapped store.
func (s *ConfigStore) Set(key string, value any) error {
	return s.base.Set(key, value)
}

// Path returns the wrapped store's path.
func (s *ConfigStore) Path() string {
	return s.base.Path()
}
