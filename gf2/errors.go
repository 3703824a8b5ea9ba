// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
// All exported routines return these sentinels (optionally wrapped with an
// operation tag via %w); tests match them with errors.Is.

package gf2

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("gf2: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("gf2: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("gf2: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not.
	ErrAsymmetry = errors.New("gf2: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a set bit on a diagonal required to be zero.
	ErrNonZeroDiagonal = errors.New("gf2: diagonal not zero")
)

// matrixErrorf attaches method context and coordinates to a sentinel.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
