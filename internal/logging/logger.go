// Package logging defines the structured-logging interface used across
// Fundraise, with slog and zap implementations.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "project created", "project_id", id, "owner_id", owner)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// New builds a Logger for backend ("slog" or "zap") writing to w at the given
// level ("debug", "info", "warn" or "error"). slog writes text, zap writes
// JSON.
func New(backend, level string, w io.Writer) (Logger, error) {
	var (
		l   Logger
		err error
	)
	switch backend {
	case "slog", "":
		l, err = newSlogLogger(w, level)
	case "zap":
		l, err = newZapLogger(w, level)
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// OpenOutput opens path for appending log lines. "-" selects stderr, which
// is returned with a no-op Close.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	l, _ := newSlogLogger(io.Discard, "error")
	return l
}
