// SPDX-License-Identifier: MIT
// Package graphstate: sentinel error set.

package graphstate

import "errors"

var (
	// ErrNilInput indicates a nil tableau or adjacency matrix.
	ErrNilInput = errors.New("graphstate: nil input")

	// ErrNotSquare indicates a tableau whose row count differs from its qubit count.
	ErrNotSquare = errors.New("graphstate: tableau is not square")

	// ErrNotSymmetric indicates an adjacency matrix with adj[i][j] != adj[j][i].
	ErrNotSymmetric = errors.New("graphstate: adjacency is not symmetric")

	// ErrSelfLoop indicates a set diagonal bit in an adjacency matrix.
	ErrSelfLoop = errors.New("graphstate: self loop")
)

var (
	// ErrTooFewQubits indicates a builder size below its minimum.
	ErrTooFewQubits = errors.New("graphstate: parameter too small")

	// ErrInvalidEdge indicates an edge endpoint out of range or a loop.
	ErrInvalidEdge = errors.New("graphstate: invalid edge")

	// ErrConstructFailed indicates a nil constructor passed to Build.
	ErrConstructFailed = errors.New("graphstate: construction failed")
)
