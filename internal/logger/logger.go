// Package logger provides leveled logging for headergen.
// Debug and Info messages are printed only when verbose mode is enabled via
// the --verbose flag; warnings and errors are always printed to stderr.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

const prefix = "headergen"

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	base              = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, v bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: prefix,
	})
	if v {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.WarnLevel)
	}
	return l
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	base = newLogger(output, verbose)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = newLogger(output, verbose)
}

func current() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Debug logs a message with key/value pairs if verbose mode is enabled.
func Debug(msg string, keyvals ...any) {
	current().Debug(msg, keyvals...)
}

// Info logs a message with key/value pairs if verbose mode is enabled.
func Info(msg string, keyvals ...any) {
	current().Info(msg, keyvals...)
}

// Warn logs a warning with key/value pairs.
func Warn(msg string, keyvals ...any) {
	current().Warn(msg, keyvals...)
}

// Error logs an error with key/value pairs.
func Error(msg string, keyvals ...any) {
	current().Error(msg, keyvals...)
}

// Section logs a section header if verbose mode is enabled.
func Section(name string) {
	current().Debug("=== " + name + " ===")
}

// With returns a logger that carries keyvals on every message.
func With(keyvals ...any) *log.Logger {
	return current().With(keyvals...)
}
