// SPDX-License-Identifier: MIT

package clip

import (
	"fmt"

	"github.com/katalvlaran/qstab/tableau"
)

// Bigram returns the (left, right) support endpoints of every row of t.
// By default t is canonicalized in place first (WithClip(false) reads it as
// is); the remaining options are passed through to Canonicalize.
// Errors: ErrNilTableau; ErrIdentityRow (wrapped with the row index) when a
// row has no non-identity entry; Canonicalize errors when validating.
// Complexity: O(canonicalize) + O(r·n/64).
func Bigram(t *tableau.Tableau, opts ...Option) ([]Pair, error) {
	if t == nil {
		return nil, ErrNilTableau
	}
	if gatherOptions(opts).Clip {
		if _, err := Canonicalize(t, opts...); err != nil {
			return nil, fmt.Errorf("Bigram: %w", err)
		}
	}
	pairs := make([]Pair, t.Len())
	for i := range pairs {
		row, _ := t.Row(i) // i < t.Len()
		first, last := row.Support()
		if first < 0 {
			return nil, fmt.Errorf("Bigram: row %d: %w", i, ErrIdentityRow)
		}
		pairs[i] = Pair{Left: first, Right: last}
	}

	return pairs, nil
}

// EndpointCounts returns, for every column x in [0, n), the number of pairs
// with Left == x plus the number with Right == x. Pairs outside [0, n) are ignored.
func EndpointCounts(pairs []Pair, n int) []int {
	counts := make([]int, n)
	for _, p := range pairs {
		if p.Left >= 0 && p.Left < n {
			counts[p.Left]++
		}
		if p.Right >= 0 && p.Right < n {
			counts[p.Right]++
		}
	}

	return counts
}

// IsClipped reports whether pairs satisfy the clipped-gauge balance:
// every column in [0, n) is an endpoint exactly twice.
func IsClipped(pairs []Pair, n int) bool {
	for _, c := range EndpointCounts(pairs, n) {
		if c != 2 {
			return false
		}
	}

	return true
}
