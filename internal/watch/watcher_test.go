package watch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects OnChange invocations.
type recorder struct {
	mu    sync.Mutex
	calls [][]string
	ch    chan struct{}
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan struct{}, 16)}
}

func (r *recorder) onChange(_ context.Context, changed []string) error {
	r.mu.Lock()
	r.calls = append(r.calls, changed)
	r.mu.Unlock()
	r.ch <- struct{}{}
	return nil
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for OnChange")
	}
}

func startWatcher(t *testing.T, cfg Config) context.CancelFunc {
	t.Helper()
	w, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("Run did not return after cancel")
		}
	})
	return cancel
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcher_CoalescesChanges(t *testing.T) {
	dir := t.TempDir()
	authors := filepath.Join(dir, "AUTHORS.md")
	manifest := filepath.Join(dir, "COPYRIGHT")
	writeFile(t, authors, "")
	writeFile(t, manifest, "")

	rec := newRecorder()
	startWatcher(t, Config{
		Inputs:   []string{authors, manifest},
		Debounce: 150 * time.Millisecond,
		OnChange: rec.onChange,
	})

	writeFile(t, authors, "## Main authors\n")
	time.Sleep(10 * time.Millisecond)
	writeFile(t, manifest, "License: MIT\n")
	time.Sleep(10 * time.Millisecond)
	writeFile(t, authors, "## Main authors\n    Alice\n")

	rec.wait(t)
	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{authors, manifest}, calls[0])
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	authors := filepath.Join(dir, "AUTHORS.md")
	writeFile(t, authors, "")

	rec := newRecorder()
	startWatcher(t, Config{
		Inputs:   []string{authors},
		Debounce: 50 * time.Millisecond,
		OnChange: rec.onChange,
	})

	writeFile(t, filepath.Join(dir, "README.md"), "x")
	writeFile(t, filepath.Join(dir, ".AUTHORS.md.tmp-123"), "x")
	time.Sleep(300 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	writeFile(t, authors, "x")
	rec.wait(t)
	assert.Equal(t, [][]string{{authors}}, rec.snapshot())
}

func TestWatcher_ClearScreen(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in")
	writeFile(t, input, "")

	var out bytes.Buffer
	var outMu sync.Mutex
	rec := newRecorder()
	startWatcher(t, Config{
		Inputs:      []string{input},
		Debounce:    50 * time.Millisecond,
		ClearScreen: true,
		Out:         &lockedWriter{mu: &outMu, w: &out},
		OnChange:    rec.onChange,
	})

	writeFile(t, input, "x")
	rec.wait(t)

	outMu.Lock()
	defer outMu.Unlock()
	assert.Equal(t, "\033[2J\033[H", out.String())
}

func TestWatcher_RunTwice(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in")
	writeFile(t, input, "")

	w, err := New(Config{Inputs: []string{input}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, w.Run(ctx))
	assert.Error(t, w.Run(ctx))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	_, err = New(Config{Inputs: []string{filepath.Join(t.TempDir(), "missing", "file")}})
	assert.Error(t, err)

	_, err = New(Config{Inputs: []string{"x"}, Ignore: []string{"[unclosed"}})
	assert.Error(t, err)
}

func TestIsIgnored(t *testing.T) {
	w := &Watcher{ignores: append(DefaultIgnores(), "*.bak")}

	for _, path := range []string{"/a/x.swp", "/a/x.swo", "/a/x~", "/a/.#x", "/a/4913", "/a/.out.h.tmp-42", "/a/x.bak"} {
		assert.True(t, w.isIgnored(path), path)
	}
	for _, path := range []string{"/a/AUTHORS.md", "/a/COPYRIGHT", "/a/swp"} {
		assert.False(t, w.isIgnored(path), path)
	}
}

func TestDefaultIgnores_IsCopy(t *testing.T) {
	got := DefaultIgnores()
	got[0] = "changed"
	assert.NotEqual(t, "changed", DefaultIgnores()[0])
}

type lockedWriter struct {
	mu *sync.Mutex
	w  *bytes.Buffer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
