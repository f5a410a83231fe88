package domain

import "errors"

// Domain errors represent generation failures.
// Adapters wrap these so callers can match with errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown artifact kind.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrIOUnavailable indicates an input could not be read or an output could not be written.
	// Generation aborts and no partial output file is left behind.
	ErrIOUnavailable = errors.New("io unavailable")

	// ErrCompressionUnavailable indicates the injected compressor is missing or failed.
	ErrCompressionUnavailable = errors.New("compression unavailable")

	// ErrMalformedManifest indicates a manifest whose structure could not be followed.
	// The parsers close open records at end of input instead of returning it.
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrStale indicates a generated artifact differs from what would be generated now.
	// Only returned in check mode.
	ErrStale = errors.New("artifact is stale")
)
