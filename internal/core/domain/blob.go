package domain

// PackagedBlob is a compressed payload with the sizes a consumer needs to
// pre-allocate a decompression buffer.
type PackagedBlob struct {
	Compressed     []byte
	OriginalSize   int
	CompressedSize int
}

// Valid reports whether CompressedSize agrees with the payload length.
func (b PackagedBlob) Valid() bool {
	return b.CompressedSize == len(b.Compressed) && b.OriginalSize >= 0
}
