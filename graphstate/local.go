// SPDX-License-Identifier: MIT

package graphstate

import (
	"github.com/katalvlaran/qstab/pauli"
	"github.com/katalvlaran/qstab/tableau"
)

// ApplyHadamard conjugates every row of t by H on qubit q: X↔Z, Y→−Y.
// q must be in [0, t.N()).
func ApplyHadamard(t *tableau.Tableau, q int) {
	for i := 0; i < t.Len(); i++ {
		row, _ := t.Row(i)
		switch row.At(q) {
		case pauli.X:
			_ = row.Set(q, pauli.Z)
		case pauli.Z:
			_ = row.Set(q, pauli.X)
		case pauli.Y:
			flipSign(row)
		}
	}
}

// ApplyPhase conjugates every row of t by S on qubit q: X→Y, Y→−X.
func ApplyPhase(t *tableau.Tableau, q int) {
	for i := 0; i < t.Len(); i++ {
		row, _ := t.Row(i)
		switch row.At(q) {
		case pauli.X:
			_ = row.Set(q, pauli.Y)
		case pauli.Y:
			_ = row.Set(q, pauli.X)
			flipSign(row)
		}
	}
}

// ApplyPhaseDagger conjugates every row of t by S† on qubit q: X→−Y, Y→X.
func ApplyPhaseDagger(t *tableau.Tableau, q int) {
	for i := 0; i < t.Len(); i++ {
		row, _ := t.Row(i)
		switch row.At(q) {
		case pauli.X:
			_ = row.Set(q, pauli.Y)
			flipSign(row)
		case pauli.Y:
			_ = row.Set(q, pauli.X)
		}
	}
}

func flipSign(op *pauli.Operator) {
	op.SetPhase(op.Phase().Add(pauli.PhaseMinus))
}
