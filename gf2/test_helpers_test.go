// SPDX-License-Identifier: MIT
// Package gf2_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures for matrix and vector tests.

package gf2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstab/gf2"
)

// MustMatrix builds a matrix from rows of '0'/'1' strings or fails the test.
// All rows must have equal length.
func MustMatrix(t testing.TB, rows ...string) *gf2.Matrix {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := gf2.NewMatrix(len(rows), cols)
	require.NoError(t, err)
	for i, r := range rows {
		require.Len(t, r, cols, "row %d width", i)
		for j := 0; j < cols; j++ {
			if r[j] == '1' {
				require.NoError(t, m.Set(i, j, true))
			}
		}
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *gf2.Matrix, i, j int) bool {
	t.Helper()
	b, err := m.At(i, j)
	require.NoError(t, err)

	return b
}
