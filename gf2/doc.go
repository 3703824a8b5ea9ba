// SPDX-License-Identifier: MIT

// Package gf2 provides packed bit vectors and dense bit matrices over the
// two-element field GF(2).
//
// What:
//
//   - Vector: a fixed-length bit vector packed into 64-bit words. Addition is
//     XOR, so row operations cost O(n/64).
//   - Matrix: a row-major r×c matrix whose rows are Vectors. At/Set/Flip are
//     bounds-checked and return sentinel errors instead of panicking.
//   - Gaussian elimination (RowReduce) and Rank over GF(2).
//   - Induced submatrices and Transpose for block extraction.
//
// Why:
//
//   - Pauli operators are pairs of bit-planes (X, Z); tableaux, graph-state
//     adjacency matrices and their cut ranks all live in GF(2).
//
// Complexity:
//
//   - Vector.Xor: O(n/64). Matrix.At/Set/Flip: O(1).
//   - RowReduce/Rank: O(r·c·min(r,c)/64).
//   - Induced: O(|rows|·|cols|). Transpose: O(r·c).
//
// Errors:
//
//   - ErrInvalidDimensions: negative shape.
//   - ErrOutOfRange: index outside the matrix.
//   - ErrNonSquare, ErrAsymmetry, ErrNonZeroDiagonal: structural checks.
package gf2
