// SPDX-License-Identifier: MIT

package pauli

import "errors"

// Sentinel errors for operator parsing and arithmetic.
var (
	// ErrParse indicates malformed Pauli text.
	ErrParse = errors.New("pauli: malformed operator string")
	// ErrLengthMismatch indicates operators over different qubit counts.
	ErrLengthMismatch = errors.New("pauli: qubit count mismatch")
	// ErrOutOfRange indicates a qubit index outside [0, n).
	ErrOutOfRange = errors.New("pauli: qubit index out of range")
)

// Pauli is a single-qubit Pauli letter encoded as x | z<<1.
// The encoding makes XOR of two letters equal the letter of their product
// (up to phase): X^Z == Y, Y^X == Z, and so on.
type Pauli uint8

const (
	I Pauli = 0 // (x=0, z=0)
	X Pauli = 1 // (x=1, z=0)
	Z Pauli = 2 // (x=0, z=1)
	Y Pauli = 3 // (x=1, z=1)
)

// String returns the single-letter name; identity prints as "_".
func (p Pauli) String() string {
	switch p & 3 {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "_"
	}
}

// XZ splits a letter into its bit pair.
func (p Pauli) XZ() (x, z bool) {
	return p&X != 0, p&Z != 0
}

// Phase is a power of i: the operator carries the factor i^Phase.
type Phase uint8

const (
	PhasePlus       Phase = 0 // +1
	PhasePlusI      Phase = 1 // +i
	PhaseMinus      Phase = 2 // -1
	PhaseMinusI     Phase = 3 // -i
	phaseModulus          = 4
	hermitianParity       = 1 // odd phases are anti-Hermitian
)

// Add returns (p + q) mod 4.
func (p Phase) Add(q Phase) Phase {
	return (p + q) & 3
}

// IsReal reports whether the phase is ±1.
func (p Phase) IsReal() bool {
	return p&hermitianParity == 0
}

// String returns the sign prefix used by Operator.String.
func (p Phase) String() string {
	switch p & 3 {
	case PhasePlusI:
		return "+i"
	case PhaseMinus:
		return "-"
	case PhaseMinusI:
		return "-i"
	default:
		return "+"
	}
}
