// Package blob packages binary payloads for embedding in generated sources.
package blob

import (
	"fmt"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
)

// Package compresses data and records both sizes.
// On failure no partial blob is returned.
func Package(data []byte, c driven.Compressor) (domain.PackagedBlob, error) {
	if c == nil {
		return domain.PackagedBlob{}, fmt.Errorf("package blob: %w: no compressor", domain.ErrCompressionUnavailable)
	}

	originalSize := len(data)
	compressed, err := c.Compress(data)
	if err != nil {
		return domain.PackagedBlob{}, fmt.Errorf("package blob: %w: %w", domain.ErrCompressionUnavailable, err)
	}

	return domain.PackagedBlob{
		Compressed:     compressed,
		OriginalSize:   originalSize,
		CompressedSize: len(compressed),
	}, nil
}

// Unpack reverses Package. The result must be OriginalSize bytes long.
func Unpack(b domain.PackagedBlob, c driven.Compressor) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("unpack blob: %w: no compressor", domain.ErrCompressionUnavailable)
	}
	if !b.Valid() {
		return nil, fmt.Errorf("unpack blob: %w: compressed size %d does not match payload length %d",
			domain.ErrInvalidInput, b.CompressedSize, len(b.Compressed))
	}

	data, err := c.Decompress(b.Compressed, b.OriginalSize)
	if err != nil {
		return nil, fmt.Errorf("unpack blob: %w: %w", domain.ErrCompressionUnavailable, err)
	}
	if len(data) != b.OriginalSize {
		return nil, fmt.Errorf("unpack blob: %w: got %d bytes, want %d", domain.ErrInvalidInput, len(data), b.OriginalSize)
	}
	return data, nil
}
