// SPDX-License-Identifier: MIT

// Package clip brings stabilizer tableaux into the clipped gauge and extracts
// their bigrams.
//
// What:
//
//   - Canonicalize rewrites a tableau in place (row swaps and row products
//     only) so that every qubit column is hit by exactly two generator
//     endpoints: count(left == x) + count(right == x) == 2.
//   - Bigram returns the (left, right) support endpoints of every row,
//     canonicalizing first by default.
//
// Why:
//
//   - In the clipped gauge the entanglement entropy of a contiguous block
//     [a, b) is a count: (b − a) minus the number of generators whose whole
//     support lies inside the block.
//
// Algorithm:
//
//   - Sweep 1 (left → right) is an echelon pass: at most two rows keep their
//     left endpoint on each column, and when two do, their letters there differ.
//   - Sweep 2 (right → left) does the same for right endpoints over a shrinking
//     list of unfrozen rows, scanned bottom-up. Rows frozen in sweep 2 are never
//     touched again, so left endpoints fixed by sweep 1 survive.
//
// Complexity:
//
//   - O(n) columns × O(r) scans × O(n/64) row products ⇒ O(r²·n²/64) worst case.
//
// Options:
//
//   - WithPhases(false) skips sign bookkeeping; it is the dominant saving
//     when the caller only needs supports.
//   - WithValidation(true) checks the stabilizer preconditions before sweeping.
//   - WithClip(false) makes Bigram read the tableau as is.
//   - WithOnMerge observes every row product.
//
// Errors:
//
//   - ErrIdentityRow: Bigram met an all-identity row. It matches
//     tableau.ErrPrecondition with errors.Is.
package clip
