// SPDX-License-Identifier: MIT
// Package tableau_test contains unit tests for the tableau substrate.
package tableau_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstab/pauli"
	"github.com/katalvlaran/qstab/tableau"
)

func TestParseAndStrings(t *testing.T) {
	t.Parallel()

	tab, err := tableau.Parse("XXX", "ZZ_", "-_ZZ")
	require.NoError(t, err)
	require.Equal(t, 3, tab.N())
	require.Equal(t, 3, tab.Len())
	require.Equal(t, []string{"+XXX", "+ZZ_", "-_ZZ"}, tab.Strings())

	_, err = tableau.Parse("XX", "ZZZ")
	require.ErrorIs(t, err, tableau.ErrWidthMismatch)

	_, err = tableau.Parse()
	require.ErrorIs(t, err, tableau.ErrEmpty)

	_, err = tableau.Parse("XQ")
	require.ErrorIs(t, err, pauli.ErrParse)
}

func TestRead(t *testing.T) {
	t.Parallel()

	in := `# GHZ on three qubits
XXX

ZZ_
  _ZZ
`
	tab, err := tableau.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "+XXX\n+ZZ_\n+_ZZ", tab.String())

	_, err = tableau.Read(strings.NewReader("# nothing\n\n"))
	require.ErrorIs(t, err, tableau.ErrEmpty)
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	tab := tableau.MustParse("XY", "Z_")
	x, z, err := tab.At(0, 1)
	require.NoError(t, err)
	require.True(t, x)
	require.True(t, z)
	require.Equal(t, pauli.Z, tab.Entry(1, 0))

	_, _, err = tab.At(2, 0)
	require.ErrorIs(t, err, tableau.ErrOutOfRange)
	_, err = tab.Row(-1)
	require.ErrorIs(t, err, tableau.ErrOutOfRange)
}

func TestSwapMergeClone(t *testing.T) {
	t.Parallel()

	tab := tableau.MustParse("XX", "ZZ")
	cl := tab.Clone()

	tab.Swap(0, 1)
	require.Equal(t, []string{"+ZZ", "+XX"}, tab.Strings())

	// row0 ← row1 · row0 = (XX)(ZZ) = -YY
	tab.Merge(0, 1, true)
	require.Equal(t, "-YY", tab.Strings()[0])

	require.Equal(t, []string{"+XX", "+ZZ"}, cl.Strings(), "clone must be independent")
}

func TestRankAndPurity(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, tableau.MustParse("XXX", "ZZ_", "_ZZ").Rank())
	require.True(t, tableau.MustParse("XXX", "ZZ_", "_ZZ").IsPure())
	require.Equal(t, 2, tableau.MustParse("ZZ_", "_ZZ", "Z_Z").Rank())
	require.Equal(t, 2, tableau.MustParse("-ZZ", "-Z_").Rank())
	require.False(t, tableau.MustParse("Z__").IsPure())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    []string
		wantErr error
	}{
		{"ghz", []string{"XXX", "ZZ_", "_ZZ"}, nil},
		{"mixed but valid", []string{"ZZ_", "_ZZ"}, nil},
		{"imaginary phase", []string{"iXX", "ZZ"}, tableau.ErrNonHermitian},
		{"anticommuting", []string{"X_", "Z_"}, tableau.ErrAnticommuting},
		{"dependent", []string{"ZZ_", "_ZZ", "Z_Z"}, tableau.ErrRankDeficient},
		{"identity row", []string{"XX", "__"}, tableau.ErrRankDeficient},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tableau.MustParse(tc.rows...).Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			require.True(t, errors.Is(err, tableau.ErrPrecondition), "every violation is a precondition error")
		})
	}
}

func TestEquivalent(t *testing.T) {
	t.Parallel()

	ghz := tableau.MustParse("XXX", "ZZ_", "_ZZ")
	require.True(t, tableau.Equivalent(ghz, tableau.MustParse("_ZZ", "Z_Z", "XXX")))
	require.True(t, tableau.Equivalent(ghz, tableau.MustParse("-YYX", "ZZ_", "_ZZ")), "(XXX)(ZZ_) = -YYX")
	require.False(t, tableau.Equivalent(ghz, tableau.MustParse("YYX", "ZZ_", "_ZZ")), "sign differs")
	require.False(t, tableau.Equivalent(ghz, tableau.MustParse("ZZ_", "_ZZ")))
	require.False(t, tableau.Equivalent(ghz, tableau.MustParse("XX", "ZZ")))
}

func TestTraceOut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rows   []string
		traced []int
		want   int
	}{
		{"bell pair keeps nothing", []string{"XX", "ZZ"}, []int{1}, 0},
		{"product keeps local row", []string{"Z_", "_Z"}, []int{1}, 1},
		{"ghz keeps parity check", []string{"XXX", "ZZ_", "_ZZ"}, []int{2}, 1},
		{"nothing traced", []string{"XXX", "ZZ_", "_ZZ"}, nil, 3},
		{"everything traced", []string{"XXX", "ZZ_", "_ZZ"}, []int{0, 1, 2}, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			orig := tableau.MustParse(tc.rows...)
			before := orig.Strings()
			red, kept, err := tableau.TraceOut(orig, tc.traced)
			require.NoError(t, err)
			require.Equal(t, tc.want, kept)
			require.Equal(t, before, orig.Strings(), "input must not be mutated")
			require.True(t, tableau.Equivalent(orig, red), "elimination keeps the group")
			for i := 0; i < kept; i++ {
				row, err := red.Row(i)
				require.NoError(t, err)
				for _, q := range tc.traced {
					require.Equal(t, pauli.I, row.At(q), "kept row %d touches traced qubit %d", i, q)
				}
			}
		})
	}

	_, _, err := tableau.TraceOut(tableau.MustParse("XX"), []int{2})
	require.ErrorIs(t, err, tableau.ErrOutOfRange)
}
