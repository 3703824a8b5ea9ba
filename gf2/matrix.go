// SPDX-License-Identifier: MIT

// Package gf2 - dense bit matrix & safe accessors.
//
// Purpose:
//   - Row-major storage where each row is a packed Vector, so row additions
//     (the only row operation GF(2) elimination needs) are word-wide XORs.
//   - Safety at the public surface: At/Set/Flip return errors instead of panicking.
//   - Determinism: fixed loop orders, no map iteration.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c/64); At/Set/Flip: O(1); Clone: O(r*c/64); Induced: O(r'*c').

package gf2

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxFlip    = "Flip"
	ctxInduced = "Induced"
)

// Matrix is a dense r×c matrix over GF(2).
//   - r,c hold dimensions; zero-sized shapes are legal (empty cuts are common).
//   - rows[i] is a Vector of length c.
type Matrix struct {
	r, c int
	rows []Vector
}

var _ fmt.Stringer = (*Matrix)(nil)

// NewMatrix creates an r×c zero matrix.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero Vector per row.
//
// Complexity:
//   - Time O(r*c/64), Space O(r*c/64).
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Matrix{r: rows, c: cols, rows: make([]Vector, rows)}
	for i := range m.rows {
		m.rows[i] = NewVector(cols)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.rows[i].Set(i, true)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// checkIndex validates (row, col) against the shape.
func (m *Matrix) checkIndex(method string, row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// At retrieves the bit at (row, col).
// Returns ErrOutOfRange (wrapped) on invalid indices.
func (m *Matrix) At(row, col int) (bool, error) {
	if err := m.checkIndex(ctxAt, row, col); err != nil {
		return false, err
	}

	return m.rows[row].Bit(col), nil
}

// Set assigns the bit at (row, col).
func (m *Matrix) Set(row, col int, b bool) error {
	if err := m.checkIndex(ctxSet, row, col); err != nil {
		return err
	}
	m.rows[row].Set(col, b)

	return nil
}

// Flip toggles the bit at (row, col).
func (m *Matrix) Flip(row, col int) error {
	if err := m.checkIndex(ctxFlip, row, col); err != nil {
		return err
	}
	m.rows[row].Flip(col)

	return nil
}

// Row returns the i-th row for in-place access. i must be in [0, Rows()).
func (m *Matrix) Row(i int) *Vector { return &m.rows[i] }

// SwapRows exchanges rows i and j. Both must be in range.
func (m *Matrix) SwapRows(i, j int) {
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
}

// Clone returns a deep copy.
// Complexity: O(r*c/64).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{r: m.r, c: m.c, rows: make([]Vector, m.r)}
	for i := range m.rows {
		out.rows[i] = m.rows[i].Clone()
	}

	return out
}

// Induced materializes the submatrix formed by the given row and column
// indices, in the given order. Indices may repeat.
// Implementation:
//   - Stage 1: validate every index against the shape.
//   - Stage 2: copy bit by bit into a fresh |rows|×|cols| matrix.
//
// Complexity:
//   - Time O(|rows|*|cols|), Space O(|rows|*|cols|/64).
func (m *Matrix) Induced(rows, cols []int) (*Matrix, error) {
	for _, i := range rows {
		if i < 0 || i >= m.r {
			return nil, matrixErrorf(ctxInduced, i, 0, ErrOutOfRange)
		}
	}
	for _, j := range cols {
		if j < 0 || j >= m.c {
			return nil, matrixErrorf(ctxInduced, 0, j, ErrOutOfRange)
		}
	}
	out, err := NewMatrix(len(rows), len(cols))
	if err != nil {
		return nil, err
	}
	for a, i := range rows {
		src := &m.rows[i]
		dst := &out.rows[a]
		for b, j := range cols {
			if src.Bit(j) {
				dst.Set(b, true)
			}
		}
	}

	return out, nil
}

// Transpose returns a new c×r matrix mᵀ.
func (m *Matrix) Transpose() *Matrix {
	out, _ := NewMatrix(m.c, m.r) // shape is already non-negative
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.rows[i].Bit(j) {
				out.rows[j].Set(i, true)
			}
		}
	}

	return out
}

// Equal reports whether m and o have the same shape and bits.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(&o.rows[i]) {
			return false
		}
	}

	return true
}

// String renders one row per line as '0'/'1' digits.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := range m.rows {
		sb.WriteString(m.rows[i].String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
