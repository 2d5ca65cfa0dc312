package vscroll

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/atomic"
)

var (
	levelVar  = &slog.LevelVar{}
	pkgLogger = atomic.NewPointer(slog.New(slog.DiscardHandler))
)

func logger() *slog.Logger {
	return pkgLogger.Load()
}

// SetLogger replaces the package logger. A nil logger discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	pkgLogger.Store(l)
}

// LogLevel returns the level shared by loggers created with NewLogger.
func LogLevel() slog.Level {
	return levelVar.Level()
}

// SetLogLevel parses a level name and applies it to loggers created with
// NewLogger. Unknown names select info.
func SetLogLevel(raw string) {
	var level slog.Level
	switch strings.ToLower(raw) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	levelVar.Set(level)
}

// NewLogger returns a JSON logger writing to the file at path, creating parent
// directories as needed. The returned closer releases the file. When the file
// cannot be opened the logger writes to fallback instead.
func NewLogger(path string, fallback io.Writer) (*slog.Logger, io.Closer) {
	var w io.Writer = fallback
	var closer io.Closer = nopCloser{}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666); err == nil {
				w, closer = f, f
			}
		}
	}
	if w == nil {
		w = io.Discard
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelVar})
	return slog.New(handler), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
