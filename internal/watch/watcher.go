// Package watch regenerates headers when their input files change.
//
// The watcher monitors the directories that contain the configured inputs,
// so editors that replace a file through rename are still observed. Events
// within the debounce window are coalesced into one callback that receives
// the changed inputs.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/headergen/internal/logger"
)

// DefaultDebounce is used when Config.Debounce is not positive.
const DefaultDebounce = 300 * time.Millisecond

// defaultIgnores are base-name globs that never trigger a run: editor swap
// and backup files, and the temporary files the filesystem writer renames
// into place.
var defaultIgnores = []string{
	"*.sw[po]",
	"*~",
	".#*",
	"4913",
	".*.tmp-*",
}

// Config holds the parameters for a Watcher.
type Config struct {
	// Inputs are the files whose changes trigger OnChange.
	Inputs []string

	// Ignore are extra base-name globs merged with the defaults.
	Ignore []string

	// Debounce is the quiet period after the last event.
	Debounce time.Duration

	// ClearScreen writes an ANSI clear sequence to Out before each run.
	ClearScreen bool

	// Out receives the clear sequence. Defaults to os.Stdout.
	Out io.Writer

	// OnChange is called with the changed inputs, as given in Inputs.
	OnChange func(ctx context.Context, changed []string) error
}

// Watcher monitors input files. Run must be called exactly once.
type Watcher struct {
	cfg      Config
	fsw      *fsnotify.Watcher
	inputs   map[string]string // absolute path -> configured path
	ignores  []string
	debounce time.Duration
	out      io.Writer
	started  atomic.Bool
}

// New validates cfg and registers the input directories.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("watch: no inputs")
	}

	ignores := append(slices.Clone(defaultIgnores), cfg.Ignore...)
	for _, pat := range ignores {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("watch: invalid ignore pattern %q", pat)
		}
	}

	inputs := make(map[string]string, len(cfg.Inputs))
	var dirs []string
	for _, in := range cfg.Inputs {
		abs, err := filepath.Abs(in)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve %s: %w", in, err)
		}
		inputs[abs] = in
		if dir := filepath.Dir(abs); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch: add directory %s: %w", dir, err)
		}
		logger.Debug("watching directory", "dir", dir)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	return &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		inputs:   inputs,
		ignores:  ignores,
		debounce: debounce,
		out:      out,
	}, nil
}

// Run blocks until ctx is cancelled, dispatching debounced callbacks.
// It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.New("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	schedule := func(fire func()) {
		if timer == nil {
			timer = time.AfterFunc(w.debounce, fire)
		} else {
			timer.Reset(w.debounce)
		}
	}

	var fire func()
	fire = func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			mu.Lock()
			schedule(fire)
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := make([]string, 0, len(pending))
		for in := range pending {
			changed = append(changed, in)
		}
		clear(pending)
		mu.Unlock()
		slices.Sort(changed)

		if w.cfg.ClearScreen {
			fmt.Fprint(w.out, "\033[2J\033[H")
		}
		logger.Section("Rebuild")
		if w.cfg.OnChange != nil {
			if err := w.cfg.OnChange(ctx, changed); err != nil {
				logger.Error("regeneration failed", "err", err)
			}
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		if err := w.fsw.Close(); err != nil {
			logger.Warn("closing watcher", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: event channel closed")
			}
			in, relevant := w.match(evt)
			if !relevant {
				continue
			}
			logger.Debug("input changed", "path", in, "op", evt.Op.String())

			mu.Lock()
			pending[in] = struct{}{}
			schedule(fire)
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: error channel closed")
			}
			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				logger.Warn("watch error", "err", err)
				continue
			}
			// Events were dropped, so any input may have changed.
			logger.Warn("watch events overflowed, regenerating everything")
			mu.Lock()
			for _, in := range w.inputs {
				pending[in] = struct{}{}
			}
			schedule(fire)
			mu.Unlock()
		}
	}
}

// match returns the configured input an event refers to.
func (w *Watcher) match(evt fsnotify.Event) (string, bool) {
	if evt.Has(fsnotify.Chmod) && !evt.Has(fsnotify.Write) {
		return "", false
	}
	name := filepath.Clean(evt.Name)
	if w.isIgnored(name) {
		return "", false
	}
	in, ok := w.inputs[name]
	return in, ok
}

// isIgnored reports whether the base name of path matches an ignore glob.
func (w *Watcher) isIgnored(path string) bool {
	base := filepath.Base(path)
	for _, pat := range w.ignores {
		if matched, err := doublestar.Match(pat, base); err == nil && matched {
			return true
		}
	}
	return false
}

// DefaultIgnores returns a copy of the built-in ignore globs.
func DefaultIgnores() []string {
	return slices.Clone(defaultIgnores)
}
