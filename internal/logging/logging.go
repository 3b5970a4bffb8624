// Package logging configures the process-wide slog logger. The TUI owns the
// terminal, so logs go to a file unless stderr is requested explicitly.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Component names attached to loggers.
const (
	ComponentApp    = "app"
	ComponentStore  = "store"
	ComponentLedger = "ledger"
	ComponentNav    = "nav"
	ComponentEditor = "editor"
	ComponentTUI    = "tui"
)

// FieldComponent is the attribute key For sets.
const FieldComponent = "component"

// StderrPath selects stderr as the log destination.
const StderrPath = "-"

// Setup installs a text handler writing to path at level and returns a
// closer for the log file. An empty path discards everything; "-" writes
// to stderr.
func Setup(path string, level slog.Level) (io.Closer, error) {
	w, closer, err := open(path)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return closer, nil
}

// For returns the default logger tagged with component.
func For(component string) *slog.Logger {
	return slog.Default().With(FieldComponent, component)
}

// Level maps the --verbose flag to a level.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// DefaultPath returns the log file under dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, "paycal.log")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func open(path string) (io.Writer, io.Closer, error) {
	switch path {
	case "":
		return io.Discard, nopCloser{}, nil
	case StderrPath:
		return os.Stderr, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f, nil
}
