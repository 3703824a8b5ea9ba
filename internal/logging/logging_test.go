// SPDX-License-Identifier: MIT
package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
		"info+2": slog.LevelInfo + 2,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("Always")
	require.NoError(t, err)
	require.Equal(t, ColorAlways, c)

	_, err = ParseColor("sometimes")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestNewFiltersAndRenders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, ColorAuto)
	log.Debug("hidden")
	log.Info("canonicalized", "rows", 3)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "canonicalized")
	require.Contains(t, out, "rows=3")
	require.NotContains(t, out, "\x1b[", "a buffer is never a terminal")
}

func TestUseColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.True(t, useColor(&buf, ColorAlways))
	require.False(t, useColor(&buf, ColorNever))
	require.False(t, useColor(&buf, ColorAuto))
}
