// SPDX-License-Identifier: MIT
// Package tableau: sentinel error set.
// Precondition sentinels wrap ErrPrecondition so callers can match either the
// specific violation or the whole class with errors.Is.

package tableau

import (
	"errors"
	"fmt"
)

// ErrPrecondition marks input that is not a valid stabilizer generating set
// for the requested operation. It is never retried; it signals caller misuse.
var ErrPrecondition = errors.New("tableau: precondition violated")

var (
	// ErrAnticommuting indicates two rows with odd symplectic inner product.
	ErrAnticommuting = fmt.Errorf("%w: rows anticommute", ErrPrecondition)

	// ErrRankDeficient indicates dependent rows or an all-identity row.
	ErrRankDeficient = fmt.Errorf("%w: rows are not independent", ErrPrecondition)

	// ErrNonHermitian indicates a row with an imaginary phase (±i).
	ErrNonHermitian = fmt.Errorf("%w: row phase is not real", ErrPrecondition)
)

var (
	// ErrWidthMismatch indicates rows over different qubit counts.
	ErrWidthMismatch = errors.New("tableau: row width mismatch")

	// ErrEmpty indicates input without any rows or qubits.
	ErrEmpty = errors.New("tableau: empty input")

	// ErrOutOfRange indicates a row or qubit index outside bounds.
	ErrOutOfRange = errors.New("tableau: index out of range")
)
