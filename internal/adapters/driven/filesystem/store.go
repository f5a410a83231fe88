// Package filesystem reads input assets and finalises generated headers on
// the local filesystem.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/core/ports/driven"
)

// Stdin is the path that reads from standard input.
const Stdin = "-"

// Ensure Store implements the interfaces.
var (
	_ driven.SourceReader   = (*Store)(nil)
	_ driven.ArtifactWriter = (*Store)(nil)
)

// Store implements driven.SourceReader and driven.ArtifactWriter.
type Store struct {
	stdin io.Reader
	perm  fs.FileMode
}

// NewStore creates a filesystem store reading "-" from os.Stdin.
func NewStore() *Store {
	return &Store{stdin: os.Stdin, perm: 0o644}
}

// WithStdin replaces the reader used for "-".
func (s *Store) WithStdin(r io.Reader) *Store {
	s.stdin = r
	return s
}

// Read returns the whole content at path.
func (s *Store) Read(_ context.Context, path string) ([]byte, error) {
	if path == Stdin {
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w: %w", domain.ErrIOUnavailable, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", path, domain.ErrIOUnavailable, err)
	}
	return data, nil
}

// Write replaces the document at path with data. The content goes to a
// temporary file in the same directory which is then renamed over path.
func (s *Store) Write(ctx context.Context, path string, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("write %s: %w: %w", path, domain.ErrIOUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w: %w", path, domain.ErrIOUnavailable, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w: %w", path, domain.ErrIOUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w: %w", path, domain.ErrIOUnavailable, err)
	}
	if err = os.Chmod(tmpPath, s.perm); err != nil {
		return fmt.Errorf("write %s: %w: %w", path, domain.ErrIOUnavailable, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("write %s: %w: %w", path, domain.ErrIOUnavailable, err)
	}
	return nil
}

// ReadExisting returns the current document at path.
func (s *Store) ReadExisting(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", path, domain.ErrIOUnavailable, err)
	}
	return data, nil
}
