// SPDX-License-Identifier: MIT

// Package clip - clipped-gauge canonicalization.
//
// Implementation:
//   - Stage 1 (pushLeft): echelon sweep over columns 0..n-1 with a row cursor.
//   - Stage 2 (pushRight): sweep over columns n-1..0 with a linked list of
//     unfrozen rows, initially ordered last row first.
//
// Behavior highlights:
//   - Only Swap and Merge touch the tableau: row count and generated group
//     are preserved.
//   - Ties are broken by scan order: the first non-identity row becomes k1,
//     the first later row with a different non-identity letter becomes k2.
//   - The output gauge is not unique; only the endpoint balance is guaranteed.

package clip

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qstab/pauli"
	"github.com/katalvlaran/qstab/tableau"
)

// ErrNilTableau indicates a nil *tableau.Tableau argument.
var ErrNilTableau = errors.New("clip: tableau is nil")

// Canonicalize rewrites t in place into the clipped gauge and returns it.
// Preconditions (full rank, commuting rows, real phases) are not checked
// unless WithValidation(true) is given; a rank-deficient input then only
// surfaces later, in Bigram.
// Errors: ErrNilTableau; with validation, the tableau.ErrPrecondition family.
func Canonicalize(t *tableau.Tableau, opts ...Option) (*tableau.Tableau, error) {
	if t == nil {
		return nil, ErrNilTableau
	}
	o := gatherOptions(opts)
	if o.Validate {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("Canonicalize: %w", err)
		}
	}
	s := sweeper{t: t, phases: o.Phases, onMerge: o.OnMerge}
	s.pushLeft()
	s.pushRight()

	return t, nil
}

// sweeper carries the per-call state shared by both sweeps.
type sweeper struct {
	t       *tableau.Tableau
	phases  bool
	onMerge func(target, source int)
}

// merge replaces row target with source·target and notifies the hook.
func (s *sweeper) merge(target, source int) {
	s.t.Merge(target, source, s.phases)
	s.onMerge(target, source)
}

// eliminate clears column j of row m using pivots p (letter a) and q (letter b),
// a != b, both non-identity. Row m is multiplied by p, q or both, whichever
// reproduces its letter; a row carrying I is left alone.
func (s *sweeper) eliminate(m, j, p, q int, a, b pauli.Pauli) {
	switch s.t.Entry(m, j) {
	case a:
		s.merge(m, p)
	case b:
		s.merge(m, q)
	case a ^ b:
		s.merge(m, p)
		s.merge(m, q)
	}
}

// pushLeft is the left→right echelon sweep.
func (s *sweeper) pushLeft() {
	t := s.t
	rows, cols := t.Len(), t.N()
	var (
		i, j, k1, k2, m int
		a, b, e         pauli.Pauli
	)
	for j = 0; j < cols && i < rows; j++ {
		// first non-identity row at or below the cursor
		for k1 = i; k1 < rows && t.Entry(k1, j) == pauli.I; k1++ {
		}
		if k1 == rows {
			continue
		}
		a = t.Entry(k1, j)

		// first later row with a different non-identity letter
		for k2 = k1 + 1; k2 < rows; k2++ {
			if e = t.Entry(k2, j); e != pauli.I && e != a {
				break
			}
		}

		if k2 == rows {
			t.Swap(i, k1)
			for m = i + 1; m < rows; m++ {
				if t.Entry(m, j) == a {
					s.merge(m, i)
				}
			}
			i++
			continue
		}

		b = t.Entry(k2, j)
		t.Swap(i, k1)
		t.Swap(i+1, k2)
		for m = i + 2; m < rows; m++ {
			s.eliminate(m, j, i, i+1, a, b)
		}
		i += 2
	}
}

// pushRight is the right→left sweep over unfrozen rows.
func (s *sweeper) pushRight() {
	t := s.t
	rows, cols := t.Len(), t.N()
	live := newRowList(rows)
	var (
		j, k1, k2, r int
		a, b, e      pauli.Pauli
	)
	for j = cols - 1; j >= 0 && !live.empty(); j-- {
		for k1 = live.head; k1 != none && t.Entry(k1, j) == pauli.I; k1 = live.next[k1] {
		}
		if k1 == none {
			continue
		}
		a = t.Entry(k1, j)

		for k2 = live.next[k1]; k2 != none; k2 = live.next[k2] {
			if e = t.Entry(k2, j); e != pauli.I && e != a {
				break
			}
		}

		if k2 == none {
			for r = live.next[k1]; r != none; r = live.next[r] {
				if t.Entry(r, j) == a {
					s.merge(r, k1)
				}
			}
			live.remove(k1)
			continue
		}

		b = t.Entry(k2, j)
		// rows strictly between k1 and k2 carry I or a on column j
		for r = live.next[k1]; r != k2; r = live.next[r] {
			if t.Entry(r, j) == a {
				s.merge(r, k1)
			}
		}
		for r = live.next[k2]; r != none; r = live.next[r] {
			s.eliminate(r, j, k1, k2, a, b)
		}
		live.remove(k1)
		live.remove(k2)
	}
}
