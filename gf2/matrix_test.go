// SPDX-License-Identifier: MIT
// Package gf2_test contains unit tests for Vector and Matrix.
package gf2_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstab/gf2"
)

func TestVectorBasics(t *testing.T) {
	t.Parallel()

	v := gf2.NewVector(130)
	require.Equal(t, 130, v.Len())
	require.True(t, v.IsZero())
	require.Equal(t, -1, v.First())
	require.Equal(t, -1, v.Last())

	v.Set(3, true)
	v.Set(64, true)
	v.Set(129, true)
	require.True(t, v.Bit(64))
	require.False(t, v.Bit(63))
	require.Equal(t, 3, v.OnesCount())
	require.Equal(t, 3, v.First())
	require.Equal(t, 129, v.Last())

	w := v.Clone()
	w.Flip(3)
	require.False(t, v.Equal(&w))
	require.True(t, v.Bit(3), "clone must be independent")

	v.Xor(&w)
	require.Equal(t, 1, v.OnesCount())
	require.Equal(t, 3, v.First())
}

func TestVectorDot(t *testing.T) {
	t.Parallel()

	a := gf2.NewVector(5)
	b := gf2.NewVector(5)
	a.Set(0, true)
	a.Set(2, true)
	b.Set(2, true)
	require.True(t, a.Dot(&b))
	b.Set(0, true)
	require.False(t, a.Dot(&b))
	require.Equal(t, "10100", a.String())
}

func TestNewMatrixShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"3x4", 3, 4, nil},
		{"0x5 legal empty", 0, 5, nil},
		{"5x0 legal empty", 5, 0, nil},
		{"negative rows", -1, 2, gf2.ErrInvalidDimensions},
		{"negative cols", 2, -1, gf2.ErrInvalidDimensions},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := gf2.NewMatrix(tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
		})
	}
}

func TestMatrixAccessOutOfRange(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, "01", "10")
	_, err := m.At(2, 0)
	require.True(t, errors.Is(err, gf2.ErrOutOfRange))
	require.ErrorIs(t, m.Set(0, -1, true), gf2.ErrOutOfRange)
	require.ErrorIs(t, m.Flip(5, 5), gf2.ErrOutOfRange)

	require.NoError(t, m.Flip(0, 0))
	require.True(t, MustAt(t, m, 0, 0))
}

func TestInducedAndTranspose(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t,
		"1100",
		"0110",
		"0011",
	)
	sub, err := m.Induced([]int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	require.True(t, sub.Equal(MustMatrix(t, "10", "01")))

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, gf2.ErrOutOfRange)

	mt := m.Transpose()
	require.Equal(t, 4, mt.Rows())
	require.Equal(t, 3, mt.Cols())
	require.True(t, mt.Transpose().Equal(m))
}

func TestRankAndRowReduce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"identity", []string{"100", "010", "001"}, 3},
		{"dependent third row", []string{"110", "011", "101"}, 2},
		{"zero", []string{"000", "000"}, 0},
		{"wide", []string{"10101", "01011"}, 2},
		{"tall", []string{"1", "1", "1"}, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := MustMatrix(t, tc.rows...)
			before := m.Clone()
			require.Equal(t, tc.want, gf2.Rank(m))
			require.True(t, m.Equal(before), "Rank must not mutate its operand")

			rank, pivots := m.RowReduce()
			require.Equal(t, tc.want, rank)
			require.Len(t, pivots, rank)
			for i, p := range pivots {
				for k := 0; k < m.Rows(); k++ {
					require.Equal(t, k == i, MustAt(t, m, k, p), "pivot column %d must be a unit vector", p)
				}
			}
		})
	}

	require.Equal(t, 0, gf2.Rank(nil))
}

func TestValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       *gf2.Matrix
		check   func(*gf2.Matrix) error
		wantErr error
	}{
		{"nil square", nil, gf2.ValidateSquare, gf2.ErrNilMatrix},
		{"non square", MustMatrix(t, "01"), gf2.ValidateSquare, gf2.ErrNonSquare},
		{"symmetric", MustMatrix(t, "01", "10"), gf2.ValidateSymmetric, nil},
		{"asymmetric", MustMatrix(t, "01", "00"), gf2.ValidateSymmetric, gf2.ErrAsymmetry},
		{"zero diagonal", MustMatrix(t, "01", "10"), gf2.ValidateZeroDiagonal, nil},
		{"loop", MustMatrix(t, "11", "10"), gf2.ValidateZeroDiagonal, gf2.ErrNonZeroDiagonal},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestValidateSymmetricNamesFirstMismatch(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, "000", "001", "000")
	err := gf2.ValidateSymmetric(m)
	require.ErrorIs(t, err, gf2.ErrAsymmetry)
	require.Contains(t, err.Error(), "(1,2)")

	sym := m.Clone()
	require.NoError(t, sym.Set(2, 1, true))
	require.NoError(t, gf2.ValidateSymmetric(sym))
}
