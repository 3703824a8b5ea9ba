// SPDX-License-Identifier: MIT

package tableau

import "fmt"

// TraceOut is the partial-trace primitive. It works on a clone of t: for each
// traced qubit (last to first) it picks an X pivot and then a Z pivot among
// the rows not yet used as pivots, moves each pivot to the bottom of the free
// window and clears that bit from every other row.
//
// Afterwards rows 0..kept-1 of the returned tableau have no support on the
// traced qubits; they generate the stabilizer group of the reduced state on
// the remaining qubits. For independent rows, kept is that group's rank.
//
// Errors: ErrOutOfRange for a qubit outside [0, N()).
// Complexity: O(|qubits|·r·n/64).
func TraceOut(t *Tableau, qubits []int) (reduced *Tableau, kept int, err error) {
	for _, q := range qubits {
		if q < 0 || q >= t.n {
			return nil, 0, fmt.Errorf("TraceOut: qubit %d of %d: %w", q, t.n, ErrOutOfRange)
		}
	}
	reduced = t.Clone()
	kept = len(reduced.rows)
	for c := len(qubits) - 1; c >= 0; c-- {
		q := qubits[c]
		for _, plane := range [2]bool{true, false} {
			if kept == 0 {
				return reduced, 0, nil
			}
			k := reduced.firstWithBit(q, plane, kept)
			if k < 0 {
				continue
			}
			pivot := kept - 1
			reduced.Swap(k, pivot)
			for m := range reduced.rows {
				if m != pivot && bitOf(&reduced.rows[m], q, plane) {
					reduced.Merge(m, pivot, true)
				}
			}
			kept--
		}
	}

	return reduced, kept, nil
}

// firstWithBit returns the first row in [0, limit) with the requested bit at q, or -1.
func (t *Tableau) firstWithBit(q int, xPlane bool, limit int) int {
	for k := 0; k < limit; k++ {
		if bitOf(&t.rows[k], q, xPlane) {
			return k
		}
	}

	return -1
}
