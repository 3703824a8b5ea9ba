// SPDX-License-Identifier: MIT

// Package graphstate - tableau ⇄ graph transform.
//
// Implementation (ToGraph), on a working copy:
//   - Stage 1: Gauss–Jordan on the X block; r pivots P.
//   - Stage 2: the n−r X-free rows are reduced on the Z block over columns
//     outside P; their pivots Q receive a Hadamard, after which the X block
//     has full rank.
//   - Stage 3: Gauss–Jordan on the X block again, now X = I.
//   - Stage 4: a set Z diagonal bit (a Y on the diagonal) is cleared with S.
//   - The Z block is the adjacency; the row signs are Z byproducts.
//
// Complexity: O(n³/64) word operations.

package graphstate

import (
	"fmt"

	"github.com/katalvlaran/qstab/gf2"
	"github.com/katalvlaran/qstab/pauli"
	"github.com/katalvlaran/qstab/tableau"
)

// State is a graph state plus the local Cliffords relating it to the input:
//
//	|ψ⟩ = (∏_{q∈Hadamard} H_q)(∏_{q∈Phase} S†_q)(∏_{i: Signs[i]} Z_i)|G⟩
//
// where |G⟩ is the graph state of Adjacency.
type State struct {
	Adjacency *gf2.Matrix
	Hadamard  []int
	Phase     []int
	Signs     []bool
}

// ToGraph converts a pure stabilizer state (N() rows on N() qubits) to
// graph form. t is left untouched.
// Errors: ErrNilInput; ErrNotSquare; tableau.Validate failures.
func ToGraph(t *tableau.Tableau) (*State, error) {
	if t == nil {
		return nil, fmt.Errorf("ToGraph: %w", ErrNilInput)
	}
	n := t.N()
	if t.Len() != n {
		return nil, fmt.Errorf("ToGraph: %d rows on %d qubits: %w", t.Len(), n, ErrNotSquare)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("ToGraph: %w", err)
	}

	w := t.Clone()
	all := make([]int, n)
	for q := range all {
		all[q] = q
	}

	// Stage 1
	pivots := gaussJordan(w, 0, all, true)
	r := len(pivots)

	// Stage 2
	inP := make([]bool, n)
	for _, q := range pivots {
		inP[q] = true
	}
	free := make([]int, 0, n-r)
	for q := 0; q < n; q++ {
		if !inP[q] {
			free = append(free, q)
		}
	}
	st := &State{}
	st.Hadamard = gaussJordan(w, r, free, false)
	if r+len(st.Hadamard) != n {
		// unreachable for a validated tableau
		return nil, fmt.Errorf("ToGraph: X rank %d + Z rank %d < %d: %w",
			r, len(st.Hadamard), n, tableau.ErrRankDeficient)
	}
	for _, q := range st.Hadamard {
		ApplyHadamard(w, q)
	}

	// Stage 3
	gaussJordan(w, 0, all, true)

	// Stage 4
	for q := 0; q < n; q++ {
		if w.Entry(q, q) == pauli.Y {
			ApplyPhase(w, q)
			st.Phase = append(st.Phase, q)
		}
	}

	st.Adjacency, _ = gf2.NewMatrix(n, n)
	st.Signs = make([]bool, n)
	for i := 0; i < n; i++ {
		row, _ := w.Row(i)
		dst := st.Adjacency.Row(i)
		for q := 0; q < n; q++ {
			if row.Z().Bit(q) {
				dst.Set(q, true)
			}
		}
		st.Signs[i] = row.Phase() == pauli.PhaseMinus
	}

	return st, nil
}

// Tableau rebuilds a generating set for the state described by s.
func (s *State) Tableau() (*tableau.Tableau, error) {
	t, err := FromGraph(s.Adjacency)
	if err != nil {
		return nil, fmt.Errorf("State.Tableau: %w", err)
	}
	for i, neg := range s.Signs {
		if neg && i < t.Len() {
			row, _ := t.Row(i)
			flipSign(row)
		}
	}
	for _, q := range s.Phase {
		ApplyPhaseDagger(t, q)
	}
	for _, q := range s.Hadamard {
		ApplyHadamard(t, q)
	}

	return t, nil
}

// FromGraph returns the generators K_i = X_i ∏_{j∈N(i)} Z_j of the graph
// state of adj, row i for vertex i.
// Errors: ErrNilInput; ErrNotSymmetric; ErrSelfLoop; tableau.ErrEmpty for 0×0.
func FromGraph(adj *gf2.Matrix) (*tableau.Tableau, error) {
	if adj == nil {
		return nil, fmt.Errorf("FromGraph: %w", ErrNilInput)
	}
	if err := gf2.ValidateSymmetric(adj); err != nil {
		return nil, fmt.Errorf("FromGraph: %w: %w", ErrNotSymmetric, err)
	}
	if err := gf2.ValidateZeroDiagonal(adj); err != nil {
		return nil, fmt.Errorf("FromGraph: %w: %w", ErrSelfLoop, err)
	}
	n := adj.Rows()
	rows := make([]pauli.Operator, n)
	for i := range rows {
		rows[i] = pauli.New(n)
		rows[i].X().Set(i, true)
		rows[i].Z().Xor(adj.Row(i))
	}
	t, err := tableau.New(n, rows...)
	if err != nil {
		return nil, fmt.Errorf("FromGraph: %w", err)
	}

	return t, nil
}

// gaussJordan reduces rows [from, Len()) of w over cols on the X (xPlane)
// or Z plane and returns the pivot columns; the k-th pivot sits at row from+k.
func gaussJordan(w *tableau.Tableau, from int, cols []int, xPlane bool) []int {
	rows := w.Len()
	var pivots []int
	next := from
	for _, c := range cols {
		if next == rows {
			break
		}
		k := next
		for ; k < rows && !bit(w, k, c, xPlane); k++ {
		}
		if k == rows {
			continue
		}
		w.Swap(next, k)
		for m := from; m < rows; m++ {
			if m != next && bit(w, m, c, xPlane) {
				w.Merge(m, next, true)
			}
		}
		pivots = append(pivots, c)
		next++
	}

	return pivots
}

func bit(w *tableau.Tableau, row, col int, xPlane bool) bool {
	x, z, _ := w.At(row, col)
	if xPlane {
		return x
	}

	return z
}
