// SPDX-License-Identifier: MIT
// Package: gf2
//
// Purpose:
//   - Single source of truth for the structural checks adjacency matrices need.
//   - Validators return sentinels wrapped with their own tag, so call sites can
//     wrap once more with operation context.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → Square → structure.

package gf2

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and has Rows() == Cols().
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric ensures m is square and m equals its transpose.
// The error names the first differing (row, col).
// Complexity: O(n²).
func ValidateSymmetric(m *Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	mt := m.Transpose()
	for i := 0; i < m.r; i++ {
		if m.rows[i].Equal(&mt.rows[i]) {
			continue
		}
		diff := m.rows[i].Clone()
		diff.Xor(&mt.rows[i])
		j := diff.First()

		return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
	}

	return nil
}

// ValidateZeroDiagonal ensures m is square with no set diagonal bit.
func ValidateZeroDiagonal(m *Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		if m.rows[i].Bit(i) {
			return validatorErrorf("ValidateZeroDiagonal", fmt.Errorf("(%d,%d): %w", i, i, ErrNonZeroDiagonal))
		}
	}

	return nil
}
