// Package zlib provides the default driven.Compressor: zlib framing at the
// highest compression level. Output is deterministic for a given input.
package zlib

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/custodia-labs/headergen/internal/core/ports/driven"
)

// Ensure Compressor implements the interface.
var _ driven.Compressor = (*Compressor)(nil)

// Compressor compresses with zlib.
type Compressor struct{}

// New creates a compressor.
func New() *Compressor {
	return &Compressor{}
}

// Compress returns data wrapped in a zlib stream.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("zlib: create writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("zlib: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib: close: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream.
func (c *Compressor) Decompress(data []byte, sizeHint int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib: open reader: %w", err)
	}
	defer r.Close()

	if sizeHint < 0 {
		sizeHint = 0
	}
	out := bytes.NewBuffer(make([]byte, 0, sizeHint))
	if _, err := io.Copy(out, r); err != nil {
		return nil, fmt.Errorf("zlib: read: %w", err)
	}
	return out.Bytes(), nil
}
