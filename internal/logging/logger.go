package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger wraps a slog.Logger together with the file it writes to. The TUI
// owns stdout, so without a log file every record is discarded.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New opens (or creates) path for appending and returns a text logger. An
// empty path yields a logger that drops everything.
func New(path string, debug bool) (*Logger, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if path == "" {
		return &Logger{Logger: newLogger(io.Discard, level)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}

	return &Logger{Logger: newLogger(f, level), file: f}, nil
}

// NewWriter returns a logger writing to w, for tests and headless commands
func NewWriter(w io.Writer, debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return &Logger{Logger: newLogger(w, level)}
}

// Discard returns a logger that drops every record
func Discard() *Logger {
	return &Logger{Logger: newLogger(io.Discard, slog.LevelInfo)}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
