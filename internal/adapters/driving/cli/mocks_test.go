package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

// mockGenerator implements driving.GeneratorService for testing.
type mockGenerator struct {
	requests []domain.GenerateRequest
	result   *domain.GenerateResult
	err      error

	allCheck   bool
	allForce   bool
	allResults []domain.GenerateResult
	allErr     error

	rendered []byte
}

func (m *mockGenerator) Generate(_ context.Context, req domain.GenerateRequest) (*domain.GenerateResult, error) {
	m.requests = append(m.requests, req)
	if m.result != nil {
		res := *m.result
		return &res, m.err
	}
	if m.err != nil {
		return nil, m.err
	}
	return &domain.GenerateResult{Kind: req.Kind, Target: req.Target, Size: 42}, nil
}

func (m *mockGenerator) GenerateAll(_ context.Context, check, force bool) ([]domain.GenerateResult, error) {
	m.allCheck = check
	m.allForce = force
	return m.allResults, m.allErr
}

func (m *mockGenerator) Render(_ context.Context, req domain.GenerateRequest) ([]byte, error) {
	m.requests = append(m.requests, req)
	return m.rendered, m.err
}

// mockInspect implements driving.InspectService for testing.
type mockInspect struct {
	licenses []domain.LicenseRecord
	sections domain.SectionEntries
	err      error
	path     string
}

func (m *mockInspect) Licenses(_ context.Context, path string) ([]domain.LicenseRecord, error) {
	m.path = path
	return m.licenses, m.err
}

func (m *mockInspect) Sections(_ context.Context, path string) (domain.SectionEntries, error) {
	m.path = path
	return m.sections, m.err
}

// mockSettings implements driving.SettingsService for testing.
type mockSettings struct {
	settings domain.GeneratorSettings
	targets  map[domain.ArtifactKind]domain.TargetSettings
	cacheDir string
	err      error

	setKey    string
	setValues []string
	setErr    error
}

func newMockSettings() *mockSettings {
	return &mockSettings{
		settings: domain.DefaultGeneratorSettings(),
		targets:  map[domain.ArtifactKind]domain.TargetSettings{},
	}
}

func (m *mockSettings) Get() (domain.GeneratorSettings, error) {
	return m.settings, m.err
}

func (m *mockSettings) Target(kind domain.ArtifactKind) domain.TargetSettings {
	return m.targets[kind]
}

func (m *mockSettings) CacheDir() string { return m.cacheDir }

func (m *mockSettings) Validate() error {
	if m.err != nil {
		return m.err
	}
	return m.settings.Validate()
}

func (m *mockSettings) GetDefaults() domain.GeneratorSettings {
	return domain.DefaultGeneratorSettings()
}

func (m *mockSettings) Source() string { return "test.toml" }

func (m *mockSettings) Keys() []string {
	return []string{"certs.system_path", "certs.builtin"}
}

func (m *mockSettings) Set(key string, values ...string) error {
	m.setKey = key
	m.setValues = values
	return m.setErr
}

// mockCache implements driving.CacheService for testing.
type mockCache struct {
	stamps  []domain.Stamp
	cleared []string
	removed int
	err     error
}

func (m *mockCache) List(context.Context) ([]domain.Stamp, error) {
	return m.stamps, m.err
}

func (m *mockCache) Clear(_ context.Context, targets ...string) (int, error) {
	m.cleared = targets
	return m.removed, m.err
}

// setServices injects mocks and restores the previous services on cleanup.
func setServices(t *testing.T, s *Services) {
	t.Helper()
	oldGen, oldInspect, oldSettings, oldCache := generatorService, inspectService, settingsService, cacheService
	SetServices(s)
	t.Cleanup(func() {
		generatorService, inspectService, settingsService, cacheService = oldGen, oldInspect, oldSettings, oldCache
	})
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	verboseFlag = false
	configFlag = ""
	generateCheck = false
	generateForce = false
	generateStdout = false
	for _, flags := range generateFlags {
		*flags = kindFlags{}
	}
}
