// Package logger builds the diagnostic slog.Logger. Standard output belongs
// to the interactive front end, so records go to a file or nowhere.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects level, destination and encoding.
type Options struct {
	Level  string // debug, info, warn, error
	File   string // empty or os.DevNull discards
	Format string // text or json
}

// New returns a logger for opts and a close func for its destination.
// The close func is never nil.
func New(opts Options) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, noop, err
	}

	if opts.File == "" || opts.File == os.DevNull {
		return slog.New(slog.DiscardHandler), noop, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("logger: opening %s: %w", opts.File, err)
	}

	h, err := handler(f, opts.Format, level)
	if err != nil {
		_ = f.Close()
		return nil, noop, err
	}
	return slog.New(h), f.Close, nil
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown level %q", s)
	}
}

func handler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("logger: unknown format %q", format)
	}
}
