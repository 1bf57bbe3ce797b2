// Package logging builds the structured logger. The TUI owns stdout, so
// records go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"userdir/internal/config"
)

// New returns a logger configured from cfg and a closer for its output.
// With no LogFile configured, records are discarded.
func New(cfg *config.Config, sessionID string) (*slog.Logger, io.Closer, error) {
	if cfg == nil || cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := NewWithWriter(f, cfg.LogFormat, lvl)
	if sessionID != "" {
		logger = logger.With(slog.String("session", sessionID))
	}
	return logger, f, nil
}

// NewWithWriter returns a logger writing text or JSON records to w.
func NewWithWriter(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true, Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
