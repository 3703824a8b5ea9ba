// SPDX-License-Identifier: MIT

// Package logging builds the CLI's structured logger: log/slog records
// rendered by tint, coloured only when the destination is a terminal
// unless told otherwise.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// TimeFormat is the timestamp layout of every record.
const TimeFormat = "15:04:05"

// ErrInvalid indicates an unknown level or colour mode.
var ErrInvalid = errors.New("logging: invalid setting")

// Color decides whether ANSI colour is emitted.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// ParseColor accepts "auto", "always" or "never" (case-insensitive).
func ParseColor(s string) (Color, error) {
	switch c := Color(strings.ToLower(strings.TrimSpace(s))); c {
	case ColorAuto, ColorAlways, ColorNever:
		return c, nil
	}

	return "", fmt.Errorf("color %q: %w", s, ErrInvalid)
}

// ParseLevel accepts the slog level names ("debug", "info", "warn",
// "error", with optional offsets such as "info+2").
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("level %q: %w", s, ErrInvalid)
	}

	return l, nil
}

// New returns a logger writing tint-formatted records to w.
func New(w io.Writer, level slog.Level, color Color) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: TimeFormat,
		NoColor:    !useColor(w, color),
	}))
}

// useColor resolves ColorAuto against the destination.
func useColor(w io.Writer, color Color) bool {
	switch color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
