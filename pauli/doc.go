// SPDX-License-Identifier: MIT

// Package pauli implements n-qubit Pauli operators in the binary symplectic
// representation.
//
// An Operator is i^p · P₀⊗P₁⊗…⊗Pₙ₋₁ where each Pₖ ∈ {I, X, Y, Z} is stored as
// a bit pair (xₖ, zₖ): I=(0,0), X=(1,0), Z=(0,1), Y=(1,1). Y is the Hermitian
// Pauli matrix, i.e. Y = iXZ; the phase exponent p ∈ {0,1,2,3} is kept apart.
//
// Products are computed word-wide: the bit-planes XOR, and ProductPhase adds
// the per-qubit phase contributions of the Pauli multiplication table modulo 4.
// Every product in this module goes through ProductPhase so the sign rule lives
// in exactly one place.
//
// Text form: an optional sign prefix ("+", "-", "i", "+i", "-i") followed by
// one letter per qubit from "IXYZ" ('_' is accepted for I and used when
// printing), e.g. "-XYZ_", "+iZZ".
package pauli
