// SPDX-License-Identifier: MIT

package graphstate

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qstab/gf2"
)

// Components returns the connected components of the undirected graph adj,
// each sorted ascending, ordered by smallest vertex. Isolated vertices form
// singleton components. A graph state is a product over its components.
//
// Errors: ErrNilInput; ErrNotSymmetric.
// Time: O(n²). Memory: O(n).
func Components(adj *gf2.Matrix) ([][]int, error) {
	if adj == nil {
		return nil, fmt.Errorf("Components: %w", ErrNilInput)
	}
	if err := gf2.ValidateSymmetric(adj); err != nil {
		return nil, fmt.Errorf("Components: %w: %w", ErrNotSymmetric, err)
	}
	n := adj.Rows()
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		// BFS to collect component
		queue := []int{s}
		seen[s] = true
		for qi := 0; qi < len(queue); qi++ {
			row := adj.Row(queue[qi])
			for v := 0; v < n; v++ {
				if row.Bit(v) && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}

	return comps, nil
}
