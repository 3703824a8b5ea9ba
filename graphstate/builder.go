// SPDX-License-Identifier: MIT
// Package: graphstate
//
// builder.go - graph families for graph-state fixtures.
//
// Contract:
//   - A Constructor records vertices and edges into a shared draft; Build
//     runs constructors in order and emits one symmetric adjacency matrix
//     sized to the largest vertex touched.
//   - Re-adding an existing edge is a no-op, so constructors compose.
//   - Parameters are validated before any edge is recorded; failures return
//     ErrTooFewQubits or ErrInvalidEdge wrapped with the family name.
//
// Determinism:
//   - Vertex k of every family is qubit k; Grid uses row-major r*cols+c.
//   - Star uses qubit 0 as the hub.

package graphstate

import (
	"fmt"

	"github.com/katalvlaran/qstab/gf2"
)

// Family tags and minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodGrid     = "Grid"
	methodEdges    = "Edges"

	minPathQubits     = 2
	minCycleQubits    = 3
	minStarQubits     = 2
	minCompleteQubits = 1
	minGridDim        = 1
	minEdgesQubits    = 1
)

// Constructor records one graph family into a draft.
type Constructor func(d *draft) error

// draft accumulates an undirected simple graph.
type draft struct {
	n     int
	edges map[[2]int]struct{}
}

// touch makes sure vertices 0..n-1 exist.
func (d *draft) touch(n int) {
	if n > d.n {
		d.n = n
	}
}

func (d *draft) link(u, v int) {
	if u > v {
		u, v = v, u
	}
	d.edges[[2]int{u, v}] = struct{}{}
	d.touch(v + 1)
}

// Build runs cons in order and returns the adjacency matrix of the union.
// A nil constructor fails with ErrConstructFailed.
// Complexity: O(Σ family sizes + n²/64).
func Build(cons ...Constructor) (*gf2.Matrix, error) {
	d := &draft{edges: make(map[[2]int]struct{})}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	adj, err := gf2.NewMatrix(d.n, d.n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for e := range d.edges {
		adj.Row(e[0]).Set(e[1], true)
		adj.Row(e[1]).Set(e[0], true)
	}

	return adj, nil
}

// Path links i-1 and i for i = 1..n-1.
func Path(n int) Constructor {
	return func(d *draft) error {
		if n < minPathQubits {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathQubits, ErrTooFewQubits)
		}
		d.touch(n)
		for i := 1; i < n; i++ {
			d.link(i-1, i)
		}

		return nil
	}
}

// Cycle is Path(n) closed by the edge (n-1, 0).
func Cycle(n int) Constructor {
	return func(d *draft) error {
		if n < minCycleQubits {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleQubits, ErrTooFewQubits)
		}
		d.touch(n)
		for i := 0; i < n; i++ {
			d.link(i, (i+1)%n)
		}

		return nil
	}
}

// Star links hub 0 to every leaf 1..n-1. Its graph state is LC-equivalent to GHZ.
func Star(n int) Constructor {
	return func(d *draft) error {
		if n < minStarQubits {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarQubits, ErrTooFewQubits)
		}
		d.touch(n)
		for i := 1; i < n; i++ {
			d.link(0, i)
		}

		return nil
	}
}

// Complete links every pair i < j.
func Complete(n int) Constructor {
	return func(d *draft) error {
		if n < minCompleteQubits {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteQubits, ErrTooFewQubits)
		}
		d.touch(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.link(i, j)
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbour lattice (the 2D cluster state).
func Grid(rows, cols int) Constructor {
	return func(d *draft) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewQubits)
		}
		d.touch(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					d.link(u, u+1)
				}
				if r+1 < rows {
					d.link(u, u+cols)
				}
			}
		}

		return nil
	}
}

// Edges links the given pairs on n qubits.
func Edges(n int, pairs ...[2]int) Constructor {
	return func(d *draft) error {
		if n < minEdgesQubits {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEdges, n, minEdgesQubits, ErrTooFewQubits)
		}
		for _, p := range pairs {
			if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n || p[0] == p[1] {
				return fmt.Errorf("%s: (%d,%d) on %d qubits: %w", methodEdges, p[0], p[1], n, ErrInvalidEdge)
			}
		}
		d.touch(n)
		for _, p := range pairs {
			d.link(p[0], p[1])
		}

		return nil
	}
}
