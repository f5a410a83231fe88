package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
	"github.com/custodia-labs/headergen/internal/core/ports/driving"
	"github.com/custodia-labs/headergen/internal/logger"
)

// Ensure GeneratorService implements the interface.
var _ driving.GeneratorService = (*GeneratorService)(nil)

// GeneratorService reads assets, renders documents and finalises artifacts.
type GeneratorService struct {
	registry driven.EmitterRegistry
	settings driving.SettingsService
	reader   driven.SourceReader
	writer   driven.ArtifactWriter
	stamps   driven.StampStore // optional
	now      func() time.Time
}

// NewGeneratorService creates a generator service.
// stamps may be nil, in which case every run regenerates.
func NewGeneratorService(
	registry driven.EmitterRegistry,
	settings driving.SettingsService,
	reader driven.SourceReader,
	writer driven.ArtifactWriter,
	stamps driven.StampStore,
) *GeneratorService {
	return &GeneratorService{
		registry: registry,
		settings: settings,
		reader:   reader,
		writer:   writer,
		stamps:   stamps,
		now:      time.Now,
	}
}

// Generate runs one request.
func (s *GeneratorService) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerateResult, error) {
	log := logger.With("run", uuid.NewString(), "kind", req.Kind, "target", req.Target)

	if req.Target == "" {
		return nil, fmt.Errorf("generate %s: %w: no target", req.Kind, domain.ErrInvalidInput)
	}

	rendered, err := s.render(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &domain.GenerateResult{
		Kind:   req.Kind,
		Target: req.Target,
		Size:   len(rendered.output),
	}

	if req.Check {
		stale, err := s.isStale(ctx, req.Target, rendered.output)
		if err != nil {
			return nil, err
		}
		if stale {
			result.Stale = true
			log.Debug("artifact is stale")
			return result, fmt.Errorf("check %s: %w: %s", req.Kind, domain.ErrStale, req.Target)
		}
		log.Debug("artifact is current")
		return result, nil
	}

	if !req.Force && s.isCurrent(ctx, req.Target, rendered) {
		result.Skipped = true
		log.Debug("stamp matches, skipping", "digest", rendered.digest[:12])
		return result, nil
	}

	if err := s.writer.Write(ctx, req.Target, rendered.output); err != nil {
		return nil, fmt.Errorf("generate %s: %w", req.Kind, err)
	}
	log.Info("wrote artifact", "bytes", len(rendered.output))

	s.saveStamp(ctx, req.Target, rendered.digest)
	return result, nil
}

// GenerateAll runs every kind that has both source and target configured.
func (s *GeneratorService) GenerateAll(ctx context.Context, check, force bool) ([]domain.GenerateResult, error) {
	var (
		results []domain.GenerateResult
		stale   []string
	)
	logger.Section("Generate all")

	for _, kind := range s.registry.Kinds() {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		target := s.settings.Target(kind)
		if !target.IsConfigured() {
			logger.Debug("no source or target configured, skipping", "kind", kind)
			continue
		}

		res, err := s.Generate(ctx, domain.GenerateRequest{
			Kind:    kind,
			Sources: []string{target.Source},
			Target:  target.Target,
			Check:   check,
			Force:   force,
		})
		if res != nil {
			results = append(results, *res)
		}
		if err != nil {
			if errors.Is(err, domain.ErrStale) {
				stale = append(stale, target.Target)
				continue
			}
			return results, err
		}
	}

	if len(stale) > 0 {
		return results, fmt.Errorf("%w: %d artifact(s) out of date", domain.ErrStale, len(stale))
	}
	return results, nil
}

// Render returns the document a request would produce.
func (s *GeneratorService) Render(ctx context.Context, req domain.GenerateRequest) ([]byte, error) {
	rendered, err := s.render(ctx, req)
	if err != nil {
		return nil, err
	}
	return rendered.output, nil
}

type rendering struct {
	output []byte
	digest string
}

func (s *GeneratorService) render(ctx context.Context, req domain.GenerateRequest) (*rendering, error) {
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("generate: %w: %q", domain.ErrUnsupportedType, req.Kind)
	}
	if len(req.Sources) == 0 {
		return nil, fmt.Errorf("generate %s: %w: no source", req.Kind, domain.ErrInvalidInput)
	}

	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", req.Kind, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("generate %s: %w", req.Kind, err)
	}

	emitter, err := s.registry.Get(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", req.Kind, err)
	}

	inputs := make([][]byte, 0, len(req.Sources))
	for _, path := range req.Sources {
		data, err := s.reader.Read(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", req.Kind, err)
		}
		inputs = append(inputs, data)
	}

	output, err := emitter.Emit(ctx, inputs, settings)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", req.Kind, err)
	}

	return &rendering{
		output: output,
		digest: Digest(req.Kind, settings, inputs),
	}, nil
}

func (s *GeneratorService) isStale(ctx context.Context, target string, output []byte) (bool, error) {
	existing, err := s.writer.ReadExisting(ctx, target)
	if errors.Is(err, domain.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("check %s: %w", target, err)
	}
	return !bytes.Equal(existing, output), nil
}

// isCurrent reports whether the stamp matches and the target still holds
// the rendered document. A hand-edited target is regenerated.
func (s *GeneratorService) isCurrent(ctx context.Context, target string, r *rendering) bool {
	if s.stamps == nil {
		return false
	}
	stamp, err := s.stamps.Get(ctx, target)
	if err != nil || stamp.Digest != r.digest {
		return false
	}
	existing, err := s.writer.ReadExisting(ctx, target)
	if err != nil {
		return false
	}
	if !bytes.Equal(existing, r.output) {
		logger.Debug("target differs from its stamp, regenerating", "target", target)
		return false
	}
	return true
}

// saveStamp records the digest. A failure only costs a regeneration next time.
func (s *GeneratorService) saveStamp(ctx context.Context, target, digest string) {
	if s.stamps == nil {
		return
	}
	stamp := domain.Stamp{Target: target, Digest: digest, GeneratedAt: s.now().UTC()}
	if err := s.stamps.Save(ctx, stamp); err != nil {
		logger.Warn("could not save stamp", "target", target, "error", err)
	}
}
