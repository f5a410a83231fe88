package services

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

// digestVersion changes whenever emitter output changes for the same inputs.
const digestVersion = "headergen/1"

// Digest returns the content signature of a generation: kind, the settings
// that affect that kind, and every input. Fields are length-prefixed.
func Digest(kind domain.ArtifactKind, settings domain.GeneratorSettings, inputs [][]byte) string {
	h := sha256.New()
	writeField := func(b []byte) {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(b)))
		h.Write(n[:])
		h.Write(b)
	}

	writeField([]byte(digestVersion))
	writeField([]byte(kind))
	writeField([]byte(settings.Fingerprint(kind)))
	for _, in := range inputs {
		writeField(in)
	}
	return hex.EncodeToString(h.Sum(nil))
}
