// SPDX-License-Identifier: MIT
// Package gf2 - elimination over GF(2).
//
// Purpose:
//   - Gauss–Jordan reduction with deterministic pivot choice (lowest row index
//     among the remaining rows, columns scanned left to right).
//   - Rank on a private copy so callers keep their operand intact.
//
// Notes:
//   - Over GF(2) every non-zero pivot is 1 and row addition is XOR, so no
//     scaling step or numeric tolerance exists.

package gf2

// RowReduce brings m into reduced row echelon form in place.
// Implementation:
//   - Stage 1: for each column j, find the first row at or below the cursor with bit j set.
//   - Stage 2: swap it to the cursor and XOR it into every other row that has bit j set.
//   - Stage 3: advance the cursor; stop when rows or columns are exhausted.
//
// Returns:
//   - rank: number of pivot rows (leading rows 0..rank-1 are non-zero).
//   - pivots: pivot column of each leading row, ascending.
//
// Complexity:
//   - Time O(r*c*min(r,c)/64), Space O(min(r,c)) for pivots.
func (m *Matrix) RowReduce() (rank int, pivots []int) {
	var (
		i, j, k int
		found   bool
	)
	for j = 0; j < m.c && i < m.r; j++ {
		found = false
		for k = i; k < m.r; k++ {
			if m.rows[k].Bit(j) {
				found = true
				break
			}
		}
		if !found {
			continue
		}
		m.SwapRows(i, k)
		pivot := &m.rows[i]
		for k = 0; k < m.r; k++ {
			if k != i && m.rows[k].Bit(j) {
				m.rows[k].Xor(pivot)
			}
		}
		pivots = append(pivots, j)
		i++
	}

	return i, pivots
}

// Rank returns the GF(2) rank of m without modifying it.
// A nil matrix has rank 0.
// Complexity: O(r*c*min(r,c)/64) time, O(r*c/64) space for the copy.
func Rank(m *Matrix) int {
	if m == nil || m.r == 0 || m.c == 0 {
		return 0
	}
	rank, _ := m.Clone().RowReduce()

	return rank
}
