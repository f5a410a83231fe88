package driven

import "context"

// SourceReader reads input assets.
type SourceReader interface {
	// Read returns the whole content at path.
	// Failures wrap domain.ErrIOUnavailable.
	Read(ctx context.Context, path string) ([]byte, error)
}

// ArtifactWriter finalises generated documents.
type ArtifactWriter interface {
	// Write replaces the document at path with data.
	// Either the full document is in place afterwards or the previous
	// content is untouched. Failures wrap domain.ErrIOUnavailable.
	Write(ctx context.Context, path string, data []byte) error

	// ReadExisting returns the current document at path.
	// Returns domain.ErrNotFound if there is none.
	ReadExisting(ctx context.Context, path string) ([]byte, error)
}
