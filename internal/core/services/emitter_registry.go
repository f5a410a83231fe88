package services

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
)

// Ensure EmitterRegistry implements the interface.
var _ driven.EmitterRegistry = (*EmitterRegistry)(nil)

// EmitterRegistry maps artifact kinds to emitters.
type EmitterRegistry struct {
	mu       sync.RWMutex
	emitters map[domain.ArtifactKind]driven.Emitter
	order    []domain.ArtifactKind
}

// NewEmitterRegistry creates an empty registry.
func NewEmitterRegistry() *EmitterRegistry {
	return &EmitterRegistry{
		emitters: make(map[domain.ArtifactKind]driven.Emitter),
	}
}

// Register adds an emitter, replacing any emitter of the same kind.
func (r *EmitterRegistry) Register(emitter driven.Emitter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := emitter.Kind()
	if _, exists := r.emitters[kind]; !exists {
		r.order = append(r.order, kind)
	}
	r.emitters[kind] = emitter
}

// Get returns the emitter for kind.
func (r *EmitterRegistry) Get(kind domain.ArtifactKind) (driven.Emitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emitter, ok := r.emitters[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no emitter for %q", domain.ErrUnsupportedType, kind)
	}
	return emitter, nil
}

// Kinds returns the registered kinds in registration order.
func (r *EmitterRegistry) Kinds() []domain.ArtifactKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]domain.ArtifactKind, len(r.order))
	copy(kinds, r.order)
	return kinds
}
