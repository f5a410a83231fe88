package certs

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/headergen/internal/adapters/driven/compress/zlib"
	"github.com/custodia-labs/headergen/internal/core/domain"
)

// prefixCompressor prepends a marker byte so sizes are predictable.
type prefixCompressor struct {
	calls int
}

func (c *prefixCompressor) Compress(data []byte) ([]byte, error) {
	c.calls++
	return append([]byte{7}, data...), nil
}

func (c *prefixCompressor) Decompress(data []byte, _ int) ([]byte, error) {
	return data[1:], nil
}

type brokenCompressor struct{}

func (brokenCompressor) Compress([]byte) ([]byte, error)     { return nil, errors.New("no codec") }
func (brokenCompressor) Decompress([]byte, int) ([]byte, error) { return nil, errors.New("no codec") }

func settings(builtin bool) domain.GeneratorSettings {
	s := domain.DefaultGeneratorSettings()
	s.SystemCertsPath = "/etc/ssl/certs/ca-certificates.crt"
	s.BuiltinCerts = builtin
	return s
}

func TestKind(t *testing.T) {
	assert.Equal(t, domain.ArtifactCerts, New(nil).Kind())
}

func TestEmit_Builtin(t *testing.T) {
	c := &prefixCompressor{}

	out, err := New(c).Emit(context.Background(), [][]byte{{65, 66}}, settings(true))

	require.NoError(t, err)
	want := "/* THIS FILE IS GENERATED DO NOT EDIT */\n" +
		"#ifndef CERTS_COMPRESSED_GEN_H\n" +
		"#define CERTS_COMPRESSED_GEN_H\n" +
		"#define _SYSTEM_CERTS_PATH \"/etc/ssl/certs/ca-certificates.crt\"\n" +
		"#define BUILTIN_CERTS_ENABLED\n" +
		"static const int _certs_compressed_size = 3;\n" +
		"static const int _certs_uncompressed_size = 2;\n" +
		"static const unsigned char _certs_compressed[] = {\n" +
		"\t7,\n" +
		"\t65,\n" +
		"\t66,\n" +
		"};\n" +
		"#endif // CERTS_COMPRESSED_GEN_H"
	assert.Equal(t, want, string(out))
	assert.Equal(t, 1, c.calls)
}

func TestEmit_BuiltinDisabled(t *testing.T) {
	c := &prefixCompressor{}

	out, err := New(c).Emit(context.Background(), [][]byte{[]byte("bundle")}, settings(false))

	require.NoError(t, err)
	want := "/* THIS FILE IS GENERATED DO NOT EDIT */\n" +
		"#ifndef CERTS_COMPRESSED_GEN_H\n" +
		"#define CERTS_COMPRESSED_GEN_H\n" +
		"#define _SYSTEM_CERTS_PATH \"/etc/ssl/certs/ca-certificates.crt\"\n" +
		"#endif // CERTS_COMPRESSED_GEN_H"
	assert.Equal(t, want, string(out))
	assert.Zero(t, c.calls)
}

func TestEmit_BuiltinDisabledNeedsNoCompressor(t *testing.T) {
	_, err := New(nil).Emit(context.Background(), [][]byte{[]byte("bundle")}, settings(false))
	assert.NoError(t, err)
}

func TestEmit_EmptyBundle(t *testing.T) {
	out, err := New(&prefixCompressor{}).Emit(context.Background(), [][]byte{{}}, settings(true))

	require.NoError(t, err)
	assert.Contains(t, string(out), "static const int _certs_compressed_size = 1;\n")
	assert.Contains(t, string(out), "static const int _certs_uncompressed_size = 0;\n")
}

func TestEmit_CompressionFails(t *testing.T) {
	out, err := New(brokenCompressor{}).Emit(context.Background(), [][]byte{[]byte("x")}, settings(true))

	assert.ErrorIs(t, err, domain.ErrCompressionUnavailable)
	assert.Nil(t, out)
}

func TestEmit_WrongInputCount(t *testing.T) {
	_, err := New(&prefixCompressor{}).Emit(context.Background(), nil, settings(true))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

var byteLine = regexp.MustCompile(`(?m)^\t(\d+),$`)

func TestEmit_ZlibRoundTrip(t *testing.T) {
	bundle := []byte("-----BEGIN CERTIFICATE-----\nMIIBszCCAVmgAwIBAgIU\n-----END CERTIFICATE-----\n")
	c := zlib.New()

	out, err := New(c).Emit(context.Background(), [][]byte{bundle}, settings(true))
	require.NoError(t, err)

	var compressed []byte
	for _, m := range byteLine.FindAllStringSubmatch(string(out), -1) {
		v, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		compressed = append(compressed, byte(v))
	}
	assert.Contains(t, string(out), "_certs_compressed_size = "+strconv.Itoa(len(compressed))+";")
	assert.Contains(t, string(out), "_certs_uncompressed_size = "+strconv.Itoa(len(bundle))+";")

	got, err := c.Decompress(compressed, len(bundle))
	require.NoError(t, err)
	assert.Equal(t, bundle, got)
}
