// SPDX-License-Identifier: MIT

// Package tableau stores stabilizer generating sets.
//
// What:
//
//   - Tableau: an ordered list of n-qubit Pauli rows. Rows are indexed 0..Len()-1,
//     qubit columns 0..N()-1.
//   - Substrate operations used by canonical-form algorithms: indexed (row, col)
//     reads, Swap, and Merge (row product with optional phase bookkeeping).
//   - Rank over GF(2), Validate (commuting, independent, Hermitian rows),
//     Equivalent (same generated group, signs included).
//   - TraceOut: the partial-trace primitive. It eliminates the traced qubits by
//     Gaussian elimination on a copy and reports how many generators survive on
//     the remaining qubits.
//   - Read/Parse: text input, one Pauli string per line.
//
// Invariants:
//
//   - Every row has exactly N() qubits (enforced at construction).
//   - Commutation, independence and real phases are NOT enforced at
//     construction; call Validate when the input is untrusted.
//
// Concurrency:
//
//   - A Tableau is not safe for concurrent mutation. Callers own it.
//
// Errors:
//
//   - ErrPrecondition and its refinements ErrAnticommuting, ErrRankDeficient,
//     ErrNonHermitian: stabilizer-group preconditions. errors.Is(err, ErrPrecondition)
//     matches all of them.
//   - ErrWidthMismatch, ErrEmpty, ErrOutOfRange: construction and indexing.
package tableau
