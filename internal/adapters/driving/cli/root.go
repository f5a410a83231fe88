// Package cli provides the cobra command tree for headergen.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/headergen/internal/core/ports/driving"
	"github.com/custodia-labs/headergen/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services are the driving ports the commands call.
type Services struct {
	Generator driving.GeneratorService
	Inspect   driving.InspectService
	Settings  driving.SettingsService
	Cache     driving.CacheService
}

// Builder constructs services once the config directory is known.
// The returned cleanup function releases resources such as the stamp database.
type Builder func(configDir string) (*Services, func(), error)

var (
	generatorService driving.GeneratorService
	inspectService   driving.InspectService
	settingsService  driving.SettingsService
	cacheService     driving.CacheService

	builder Builder
	cleanup func()

	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "headergen",
	Short: "Generate C headers from certificate, author and license assets",
	Long: `headergen turns project assets into C headers for embedding:

  certs    compressed CA certificate bundle
  authors  contributor lists from AUTHORS.md style documents
  license  license texts from a copyright manifest

Configuration is read from headergen.toml in the --config directory and
from HEADERGEN_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return buildServices()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		runCleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "directory containing headergen.toml (default: working directory)")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects ready services. Commands use them instead of the builder.
func SetServices(s *Services) {
	generatorService = s.Generator
	inspectService = s.Inspect
	settingsService = s.Settings
	cacheService = s.Cache
}

// SetBuilder registers the service constructor used when no services were injected.
func SetBuilder(b Builder) {
	builder = b
}

func buildServices() error {
	if builder == nil || settingsService != nil {
		return nil
	}
	s, done, err := builder(configFlag)
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(s)
	cleanup = done
	return nil
}

func runCleanup() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
}

// Execute runs the root command and prints any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	runCleanup()
	if err != nil {
		rootCmd.PrintErrln(errorLine(err.Error()))
	}
	return err
}

var errNotConfigured = errors.New("service not configured")
