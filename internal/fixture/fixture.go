// SPDX-License-Identifier: MIT

// Package fixture builds deterministic stabilizer tableaux for tests,
// examples and benchmarks.
//
// Random states are produced by conjugating the all-zero state's stabilizers
// (Z on every qubit) with random H, S and CNOT layers and then scrambling the
// generators with random row products, so the result is a generic generating
// set rather than an echelon one. Signs follow the usual conjugation rules;
// any sign assignment of independent commuting generators is a valid state.
package fixture

import (
	"math/rand"

	"github.com/katalvlaran/qstab/graphstate"
	"github.com/katalvlaran/qstab/pauli"
	"github.com/katalvlaran/qstab/tableau"
)

// layersPerQubit controls circuit depth relative to the qubit count.
const layersPerQubit = 3

// Zero returns the stabilizers Z₀, Z₁, … of |0…0⟩ on n qubits.
func Zero(n int) *tableau.Tableau {
	rows := make([]pauli.Operator, n)
	for q := range rows {
		rows[q] = pauli.New(n)
		_ = rows[q].Set(q, pauli.Z)
	}
	t, err := tableau.New(n, rows...)
	if err != nil {
		panic(err) // n <= 0 is a programmer error in a fixture
	}

	return t
}

// GHZ returns {X…X, Z₀Z₁, Z₁Z₂, …} on n qubits.
func GHZ(n int) *tableau.Tableau {
	rows := make([]pauli.Operator, n)
	rows[0] = pauli.New(n)
	for q := 0; q < n; q++ {
		_ = rows[0].Set(q, pauli.X)
	}
	for q := 1; q < n; q++ {
		rows[q] = pauli.New(n)
		_ = rows[q].Set(q-1, pauli.Z)
		_ = rows[q].Set(q, pauli.Z)
	}
	t, err := tableau.New(n, rows...)
	if err != nil {
		panic(err)
	}

	return t
}

// Random returns a random pure n-qubit stabilizer state with a scrambled
// generating set. The result is deterministic for a given rng state.
func Random(rng *rand.Rand, n int) *tableau.Tableau {
	t := Zero(n)
	for layer := 0; layer < layersPerQubit*n; layer++ {
		for q := 0; q < n; q++ {
			switch rng.Intn(3) {
			case 0:
				graphstate.ApplyHadamard(t, q)
			case 1:
				graphstate.ApplyPhase(t, q)
			}
		}
		if n > 1 {
			c := rng.Intn(n)
			tg := rng.Intn(n - 1)
			if tg >= c {
				tg++
			}
			CNOT(t, c, tg)
		}
	}
	Scramble(rng, t)

	return t
}

// Scramble applies random row products and swaps; the group is unchanged.
func Scramble(rng *rand.Rand, t *tableau.Tableau) {
	r := t.Len()
	if r < 2 {
		return
	}
	for k := 0; k < 2*r*r; k++ {
		i, j := rng.Intn(r), rng.Intn(r)
		if i == j {
			continue
		}
		if rng.Intn(2) == 0 {
			t.Merge(i, j, true)
		} else {
			t.Swap(i, j)
		}
	}
}

// CNOT conjugates every row by CNOT with control c and target tg:
// x_t ^= x_c, z_c ^= z_t, sign flips when x_c·z_t·(x_t ⊕ z_c ⊕ 1).
func CNOT(t *tableau.Tableau, c, tg int) {
	for i := 0; i < t.Len(); i++ {
		row, _ := t.Row(i)
		xc, zc := row.At(c).XZ()
		xt, zt := row.At(tg).XZ()
		if xc && zt && (xt == zc) {
			row.SetPhase(row.Phase().Add(pauli.PhaseMinus))
		}
		xt = xt != xc
		zc = zc != zt
		_ = row.Set(c, letter(xc, zc))
		_ = row.Set(tg, letter(xt, zt))
	}
}

func letter(x, z bool) pauli.Pauli {
	var p pauli.Pauli
	if x {
		p |= pauli.X
	}
	if z {
		p |= pauli.Z
	}

	return p
}
