// Package authors renders the contributors header from an AUTHORS document.
package authors

import (
	"bytes"
	"context"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
	"github.com/custodia-labs/headergen/internal/emitters"
	"github.com/custodia-labs/headergen/internal/emitters/cheader"
	"github.com/custodia-labs/headergen/internal/escape"
	"github.com/custodia-labs/headergen/internal/parsers/sections"
)

// Guard is the include guard of the authors header.
const Guard = "AUTHORS_GEN_H"

// Ensure Emitter implements the interface.
var _ driven.Emitter = (*Emitter)(nil)

// Emitter renders one null-terminated string array per matched section.
type Emitter struct{}

// New creates an authors emitter.
func New() *Emitter {
	return &Emitter{}
}

// Kind returns domain.ArtifactAuthors.
func (e *Emitter) Kind() domain.ArtifactKind {
	return domain.ArtifactAuthors
}

// Emit renders the header. Arrays follow document order.
func (e *Emitter) Emit(_ context.Context, inputs [][]byte, settings domain.GeneratorSettings) ([]byte, error) {
	doc, err := emitters.SingleInput(e.Kind(), inputs)
	if err != nil {
		return nil, err
	}

	entries, err := sections.Parse(bytes.NewReader(doc), settings.Sections)
	if err != nil {
		return nil, err
	}

	w := cheader.New(Guard)
	for _, block := range entries {
		w.NullTerminatedArray(escape.String(block.ID), block.Entries)
	}
	w.Close(true)

	return w.Bytes(), nil
}
