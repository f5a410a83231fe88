// Command headergen generates C headers from certificate, author and
// license assets.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/headergen/internal/adapters/driven/compress/zlib"
	"github.com/custodia-labs/headergen/internal/adapters/driven/config/env"
	"github.com/custodia-labs/headergen/internal/adapters/driven/config/file"
	"github.com/custodia-labs/headergen/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/headergen/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/headergen/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/headergen/internal/adapters/driving/cli"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
	"github.com/custodia-labs/headergen/internal/core/services"
	"github.com/custodia-labs/headergen/internal/emitters/authors"
	"github.com/custodia-labs/headergen/internal/emitters/certs"
	"github.com/custodia-labs/headergen/internal/emitters/license"
)

// version is set at build time via -ldflags.
var version = "dev"

// Exit codes.
const (
	exitError = 1
	exitStale = 2
)

func main() {
	cli.SetVersion(version)
	cli.SetBuilder(buildServices)

	if err := cli.Execute(); err != nil {
		if cli.IsStale(err) {
			os.Exit(exitStale)
		}
		os.Exit(exitError)
	}
}

// buildServices wires adapters into services for one invocation.
func buildServices(configDir string) (*cli.Services, func(), error) {
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	configStore := env.NewConfigStore(fileStore)
	settingsService := services.NewSettingsService(configStore)

	stamps, closeStamps, err := openStampStore(settingsService.CacheDir())
	if err != nil {
		return nil, nil, err
	}

	registry := services.NewEmitterRegistry()
	registry.Register(certs.New(zlib.New()))
	registry.Register(authors.New())
	registry.Register(license.New())

	fs := filesystem.NewStore()

	return &cli.Services{
		Generator: services.NewGeneratorService(registry, settingsService, fs, fs, stamps),
		Inspect:   services.NewInspectService(fs, settingsService),
		Settings:  settingsService,
		Cache:     services.NewCacheService(stamps),
	}, closeStamps, nil
}

// openStampStore returns the sqlite cache in dir, or an in-memory cache
// when no directory is configured.
func openStampStore(dir string) (driven.StampStore, func(), error) {
	if dir == "" {
		return memory.NewStampStore(), func() {}, nil
	}
	store, err := sqlite.NewStore(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening stamp cache: %w", err)
	}
	return store.StampStore(), func() { _ = store.Close() }, nil
}
