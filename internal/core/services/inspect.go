package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
	"github.com/custodia-labs/headergen/internal/core/ports/driving"
	"github.com/custodia-labs/headergen/internal/parsers/manifest"
	"github.com/custodia-labs/headergen/internal/parsers/sections"
)

// Ensure InspectService implements the interface.
var _ driving.InspectService = (*InspectService)(nil)

// InspectService parses assets without generating anything.
type InspectService struct {
	reader   driven.SourceReader
	settings driving.SettingsService
}

// NewInspectService creates an inspect service.
func NewInspectService(reader driven.SourceReader, settings driving.SettingsService) *InspectService {
	return &InspectService{reader: reader, settings: settings}
}

// Licenses parses a manifest.
func (s *InspectService) Licenses(ctx context.Context, path string) ([]domain.LicenseRecord, error) {
	data, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("inspect licenses: %w", err)
	}
	return manifest.Parse(bytes.NewReader(data))
}

// Sections parses a section document with the configured specs.
func (s *InspectService) Sections(ctx context.Context, path string) (domain.SectionEntries, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("inspect sections: %w", err)
	}
	data, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("inspect sections: %w", err)
	}
	return sections.Parse(bytes.NewReader(data), settings.Sections)
}
