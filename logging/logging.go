// Package logging builds the structured loggers used across parmst.
//
// Library packages never log on their own; they accept a *slog.Logger through
// their options and default to Discard. The CLI builds one logger per process
// with New.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised level names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ErrUnknownFormat is returned by New for formats other than text and json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// New returns a logger writing to w at the given minimum level.
// format is FormatText or FormatJSON; an empty format means text.
func New(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, ErrUnknownFormat
	}
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, ErrUnknownLevel
	}

	return l, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}
