// Package cheader assembles generated C header documents in memory.
package cheader

import (
	"bytes"
	"fmt"
)

// GeneratedMarker is the first line of every generated document.
const GeneratedMarker = "/* THIS FILE IS GENERATED DO NOT EDIT */"

// Writer buffers a header document. New starts one with the marker and guard.
type Writer struct {
	buf   bytes.Buffer
	guard string
}

// New starts a document with the generated marker and the include guard.
func New(guard string) *Writer {
	w := &Writer{guard: guard}
	w.Line(GeneratedMarker)
	w.Linef("#ifndef %s", guard)
	w.Linef("#define %s", guard)
	return w
}

// Raw appends s unchanged.
func (w *Writer) Raw(s string) {
	w.buf.WriteString(s)
}

// Line appends s and a newline.
func (w *Writer) Line(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

// Linef appends a formatted line.
func (w *Writer) Linef(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

// StringArrayEntry appends one tab-indented array element. body must already be escaped.
func (w *Writer) StringArrayEntry(body string) {
	w.Linef("\t\"%s\",", body)
}

// NullTerminatedArray appends a string array closed by a 0 entry.
// entries must already be escaped.
func (w *Writer) NullTerminatedArray(name string, entries []string) {
	w.Linef("const char *const %s[] = {", name)
	for _, e := range entries {
		w.StringArrayEntry(e)
	}
	w.Line("\t0")
	w.Line("};")
}

// ByteArray appends an unsigned char array, one decimal byte per line.
func (w *Writer) ByteArray(name string, data []byte) {
	w.Linef("static const unsigned char %s[] = {", name)
	for _, b := range data {
		w.Linef("\t%d,", b)
	}
	w.Line("};")
}

// Close appends the guard terminator. newline controls the final line break.
func (w *Writer) Close(newline bool) {
	w.Raw("#endif // " + w.guard)
	if newline {
		w.Raw("\n")
	}
}

// Bytes returns the document so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}
