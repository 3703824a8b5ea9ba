// SPDX-License-Identifier: MIT

// Package tableau - group-level queries.
//
// Purpose:
//   - Rank: GF(2) rank of the r×2n symplectic matrix [X | Z].
//   - Validate: the stabilizer preconditions, in a fixed order
//     (phase → commutation → independence) so the reported violation is deterministic.
//   - Equivalent: compares generated groups, signs included, through a
//     phase-tracked reduced echelon form which is unique per group.

package tableau

import (
	"fmt"

	"github.com/katalvlaran/qstab/gf2"
	"github.com/katalvlaran/qstab/pauli"
)

// Symplectic returns the r×2n bit matrix whose row i is [x_i | z_i].
func (t *Tableau) Symplectic() *gf2.Matrix {
	m, _ := gf2.NewMatrix(len(t.rows), 2*t.n) // shape is non-negative by construction
	for i := range t.rows {
		dst := m.Row(i)
		xs, zs := t.rows[i].X(), t.rows[i].Z()
		for q := 0; q < t.n; q++ {
			if xs.Bit(q) {
				dst.Set(q, true)
			}
			if zs.Bit(q) {
				dst.Set(t.n+q, true)
			}
		}
	}

	return m
}

// Rank returns the number of independent rows over GF(2), ignoring phases.
// Complexity: O(r·n·min(r,2n)/64).
func (t *Tableau) Rank() int {
	return gf2.Rank(t.Symplectic())
}

// IsPure reports whether the rows generate a maximal stabilizer group,
// i.e. Rank() == N().
func (t *Tableau) IsPure() bool {
	return t.Rank() == t.n
}

// Validate checks the stabilizer-group preconditions:
//   - every phase is ±1 (ErrNonHermitian),
//   - rows pairwise commute (ErrAnticommuting),
//   - rows are independent, which also excludes all-identity rows (ErrRankDeficient).
//
// Complexity: O(r²·n/64 + r·n·min(r,2n)/64).
func (t *Tableau) Validate() error {
	for i := range t.rows {
		if !t.rows[i].Phase().IsReal() {
			return fmt.Errorf("Validate: row %d (%s): %w", i, t.rows[i].String(), ErrNonHermitian)
		}
	}
	for i := range t.rows {
		for j := i + 1; j < len(t.rows); j++ {
			if !pauli.Commutes(&t.rows[i], &t.rows[j]) {
				return fmt.Errorf("Validate: rows %d and %d: %w", i, j, ErrAnticommuting)
			}
		}
	}
	if r := t.Rank(); r != len(t.rows) {
		return fmt.Errorf("Validate: rank %d of %d rows: %w", r, len(t.rows), ErrRankDeficient)
	}

	return nil
}

// reduce brings t into reduced echelon form over the interleaved column
// order (x₀, z₀, x₁, z₁, …) with phase tracking and returns the rank.
// Rows rank..Len()-1 end up as identities.
func (t *Tableau) reduce() int {
	var i, k, q, m int
	for q = 0; q < t.n && i < len(t.rows); q++ {
		for _, plane := range [2]bool{true, false} {
			for k = i; k < len(t.rows); k++ {
				if bitOf(&t.rows[k], q, plane) {
					break
				}
			}
			if k == len(t.rows) {
				continue
			}
			t.Swap(i, k)
			for m = 0; m < len(t.rows); m++ {
				if m != i && bitOf(&t.rows[m], q, plane) {
					t.Merge(m, i, true)
				}
			}
			i++
			if i == len(t.rows) {
				break
			}
		}
	}

	return i
}

// bitOf reads the X bit (xPlane) or Z bit of op at qubit q.
func bitOf(op *pauli.Operator, q int, xPlane bool) bool {
	if xPlane {
		return op.X().Bit(q)
	}

	return op.Z().Bit(q)
}

// Equivalent reports whether a and b generate the same group of signed
// Pauli operators. Row order, row count and the choice of generators are
// irrelevant. Both tableaux are left untouched.
func Equivalent(a, b *Tableau) bool {
	if a.n != b.n {
		return false
	}
	ra, rb := a.Clone(), b.Clone()
	na, nb := ra.reduce(), rb.reduce()
	if na != nb {
		return false
	}
	for i := 0; i < na; i++ {
		if !ra.rows[i].Equal(&rb.rows[i]) {
			return false
		}
	}

	return true
}
