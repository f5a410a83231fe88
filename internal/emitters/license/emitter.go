// Package license renders the license header from a copyright manifest.
//
// The header carries the whole manifest as one string constant, followed by
// parallel arrays of license names and bodies.
package license

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
	"github.com/custodia-labs/headergen/internal/emitters"
	"github.com/custodia-labs/headergen/internal/emitters/cheader"
	"github.com/custodia-labs/headergen/internal/escape"
	"github.com/custodia-labs/headergen/internal/parsers/manifest"
)

// Guard is the include guard of the license header.
const Guard = "LICENSE_GEN_H"

// Ensure Emitter implements the interface.
var _ driven.Emitter = (*Emitter)(nil)

// Emitter renders the license header.
type Emitter struct{}

// New creates a license emitter.
func New() *Emitter {
	return &Emitter{}
}

// Kind returns domain.ArtifactLicense.
func (e *Emitter) Kind() domain.ArtifactKind {
	return domain.ArtifactLicense
}

// Emit renders the header.
func (e *Emitter) Emit(_ context.Context, inputs [][]byte, settings domain.GeneratorSettings) ([]byte, error) {
	doc, err := emitters.SingleInput(e.Kind(), inputs)
	if err != nil {
		return nil, err
	}

	records, err := manifest.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, err
	}

	w := cheader.New(Guard)
	if err := writeFullText(w, settings.LicenseTextSymbol, doc); err != nil {
		return nil, err
	}

	w.Linef("const int LICENSE_COUNT = %d;", len(records))

	w.Line("const char *const LICENSE_NAMES[] = {")
	for _, rec := range records {
		w.StringArrayEntry(escape.String(rec.Name))
	}
	w.Raw("};\n\n")

	w.Raw("const char *const LICENSE_BODIES[] = {\n\n")
	for _, rec := range records {
		writeBody(w, rec)
	}
	w.Raw("};\n\n")

	w.Close(true)
	return w.Bytes(), nil
}

// writeFullText emits every manifest line, comments included, trimmed and
// newline-terminated inside one concatenated literal.
func writeFullText(w *cheader.Writer, symbol string, doc []byte) error {
	w.Raw("const char *const " + symbol + " =")
	scanner := bufio.NewScanner(bytes.NewReader(doc))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		w.Raw("\n\t\t\"" + escape.String(strings.TrimSpace(scanner.Text())) + "\\n\"")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read license text: %w: %w", domain.ErrIOUnavailable, err)
	}
	w.Raw(";\n\n")
	return nil
}

// writeBody emits one body as concatenated literals ending with an empty entry.
// The "." sentinel line becomes a bare newline.
func writeBody(w *cheader.Writer, rec domain.LicenseRecord) {
	for _, line := range rec.Body {
		if line == domain.BlankLineSentinel {
			w.Raw("\t\"\\n\"\n")
			continue
		}
		w.Raw("\t\"" + escape.String(line) + "\\n\"\n")
	}
	w.Raw("\t\"\",\n\n")
}
