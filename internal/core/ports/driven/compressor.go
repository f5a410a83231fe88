package driven

// Compressor is a deterministic, reversible byte transform.
// For every b, Decompress(Compress(b), len(b)) must return b.
type Compressor interface {
	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress. sizeHint is the original length,
	// used to pre-allocate the output.
	Decompress(data []byte, sizeHint int) ([]byte, error)
}
