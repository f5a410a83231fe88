// Package certs renders the certificate bundle header.
package certs

import (
	"context"
	"fmt"

	"github.com/custodia-labs/headergen/internal/blob"
	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
	"github.com/custodia-labs/headergen/internal/emitters"
	"github.com/custodia-labs/headergen/internal/emitters/cheader"
)

// Guard is the include guard of the certs header.
const Guard = "CERTS_COMPRESSED_GEN_H"

// Ensure Emitter implements the interface.
var _ driven.Emitter = (*Emitter)(nil)

// Emitter renders the system certs path and, when builtin certs are enabled,
// the compressed bundle with its sizes.
type Emitter struct {
	compressor driven.Compressor
}

// New creates a certs emitter using c for the embedded bundle.
func New(c driven.Compressor) *Emitter {
	return &Emitter{compressor: c}
}

// Kind returns domain.ArtifactCerts.
func (e *Emitter) Kind() domain.ArtifactKind {
	return domain.ArtifactCerts
}

// Emit renders the header. The bundle is only compressed when it is embedded.
func (e *Emitter) Emit(_ context.Context, inputs [][]byte, settings domain.GeneratorSettings) ([]byte, error) {
	bundle, err := emitters.SingleInput(e.Kind(), inputs)
	if err != nil {
		return nil, err
	}

	var packaged domain.PackagedBlob
	if settings.BuiltinCerts {
		packaged, err = blob.Package(bundle, e.compressor)
		if err != nil {
			return nil, fmt.Errorf("emit certs: %w", err)
		}
	}

	w := cheader.New(Guard)
	// Path is written verbatim; packagers supply it from their own build config.
	w.Linef(`#define _SYSTEM_CERTS_PATH "%s"`, settings.SystemCertsPath)
	if settings.BuiltinCerts {
		w.Line("#define BUILTIN_CERTS_ENABLED")
		w.Linef("static const int _certs_compressed_size = %d;", packaged.CompressedSize)
		w.Linef("static const int _certs_uncompressed_size = %d;", packaged.OriginalSize)
		w.ByteArray("_certs_compressed", packaged.Compressed)
	}
	w.Close(false)

	return w.Bytes(), nil
}
