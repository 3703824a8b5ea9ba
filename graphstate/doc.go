// SPDX-License-Identifier: MIT

// Package graphstate maps stabilizer states to graph states and back.
//
// What:
//
//   - ToGraph: every pure stabilizer state equals a graph state up to local
//     Cliffords. ToGraph finds the graph (a symmetric GF(2) adjacency matrix
//     with zero diagonal) together with the local record needed to undo it.
//   - FromGraph: the canonical generators K_i = X_i ∏_{j∈N(i)} Z_j.
//   - Builders for common graph families (Path, Cycle, Star, Complete, Grid,
//     Edges) composed with Build, in the functional-constructor style.
//   - Components: connected components of an adjacency matrix.
//
// Why it matters here:
//
//   - Entanglement entropy is invariant under local unitaries, so for a
//     bipartition (A, Aᶜ) it equals rank_GF(2)(Adjacency[A, Aᶜ]).
//
// Errors:
//
//   - ErrNotSquare, ErrNotSymmetric, ErrSelfLoop: shape and structure.
//   - ToGraph forwards tableau.Validate failures (the tableau.ErrPrecondition family).
//   - ErrTooFewQubits, ErrInvalidEdge, ErrConstructFailed: builders.
package graphstate
