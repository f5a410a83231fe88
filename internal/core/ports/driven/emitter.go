package driven

import (
	"context"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

// Emitter renders one kind of generated header document.
// Emitters build the whole document in memory and never touch the filesystem.
type Emitter interface {
	// Kind returns the artifact kind this emitter produces.
	Kind() domain.ArtifactKind

	// Emit renders the document from the raw input assets.
	// inputs are in the order the kind expects; every built-in kind takes one.
	Emit(ctx context.Context, inputs [][]byte, settings domain.GeneratorSettings) ([]byte, error)
}

// EmitterRegistry selects the emitter for an artifact kind.
type EmitterRegistry interface {
	// Register adds an emitter, replacing any emitter of the same kind.
	Register(emitter Emitter)

	// Get returns the emitter for kind, or domain.ErrUnsupportedType.
	Get(kind domain.ArtifactKind) (Emitter, error)

	// Kinds returns the registered kinds in registration order.
	Kinds() []domain.ArtifactKind
}
