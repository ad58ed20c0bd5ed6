// Package tlog builds the structured logger used by cmd/toon, adapted
// from the project's log-format/log-level handler factory: a [slog.Logger]
// backed by either the JSON or text slog handler, selected by name.
package tlog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format names a slog handler.
type Format string

const (
	// FormatJSON emits one JSON object per log line.
	FormatJSON Format = "json"
	// FormatText emits slog's default key=value text format.
	FormatText Format = "text"
)

// ErrUnknownLevel and ErrUnknownFormat mark an unrecognized --log-level
// or --log-format flag value.
var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown log format")
)

// ParseLevel parses a case-insensitive level name.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatText, "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// New builds a [*slog.Logger] writing to w at the given level and format.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// NewFromStrings is New with flag-string level/format values, for direct
// use by cobra command handlers.
func NewFromStrings(w io.Writer, levelStr, formatStr string) (*slog.Logger, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	format, err := ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	return New(w, level, format), nil
}
