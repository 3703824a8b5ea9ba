// SPDX-License-Identifier: MIT

// Package entropy computes bipartite entanglement entropy of stabilizer
// states, in bits, and the mutual information derived from it.
//
// Three interchangeable algorithms are offered:
//
//   - Clip: contiguous ranges only. Canonicalizes into the clipped gauge
//     (package clip) and counts generators whose support lies inside the
//     range: S = |A| − #{rows with Left, Right ∈ A}. Intended for pure states.
//   - Graph: arbitrary subsets of pure states. Converts to graph form
//     (package graphstate); S = rank over GF(2) of Adjacency[A, Aᶜ].
//   - RREF: arbitrary subsets, pure or mixed. Traces qubits out with
//     tableau.TraceOut; S = n − kept − |traced|. A pure state traces the
//     smaller side.
//
// Indices are 0-based; a Range is half-open [Start, End). The empty
// subsystem has entropy 0 under every algorithm.
//
// Side effects:
//
//   - Clip canonicalizes the caller's tableau in place unless WithClip(false)
//     is given. Graph and RREF never modify their input.
//
// Errors:
//
//   - ErrInvalidSubsystem: index outside [0, n), duplicate index, or a
//     non-contiguous subsystem passed to Clip.
//   - ErrUnknownAlgorithm: an Algorithm outside {Clip, Graph, RREF}.
//   - Precondition errors from the selected algorithm pass through unchanged
//     in their wrapped form (match with errors.Is against tableau.ErrPrecondition).
package entropy
