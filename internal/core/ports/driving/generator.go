package driving

import (
	"context"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

// GeneratorService turns input assets into generated header documents.
type GeneratorService interface {
	// Generate runs one request. In check mode nothing is written and
	// domain.ErrStale is returned if the target would change.
	Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerateResult, error)

	// GenerateAll runs every configured kind in order. It stops at the first
	// error other than domain.ErrStale; stale kinds are all reported.
	GenerateAll(ctx context.Context, check, force bool) ([]domain.GenerateResult, error)

	// Render returns the document a request would produce without touching the target.
	Render(ctx context.Context, req domain.GenerateRequest) ([]byte, error)
}

// InspectService exposes the parsed intermediate records.
type InspectService interface {
	// Licenses parses a manifest.
	Licenses(ctx context.Context, path string) ([]domain.LicenseRecord, error)

	// Sections parses a section document with the configured specs.
	Sections(ctx context.Context, path string) (domain.SectionEntries, error)
}
