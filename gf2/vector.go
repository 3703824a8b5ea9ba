// SPDX-License-Identifier: MIT

// Package gf2 - packed bit vector.
//
// Purpose:
//   - Word-aligned storage ([]uint64) so that XOR, AND and population counts
//     run one machine word at a time.
//   - Bits beyond Len() in the last word are always zero; every mutator keeps
//     that invariant so OnesCount and Equal can work on whole words.

package gf2

import (
	"math/bits"
	"strings"
)

const wordBits = 64

// Vector is a fixed-length bit vector over GF(2).
// The zero value is a valid empty vector.
type Vector struct {
	n     int      // logical length in bits
	words []uint64 // packed storage, len == (n+63)/64
}

// NewVector returns an all-zero vector of n bits. Negative n yields an empty vector.
// Complexity: O(n/64).
func NewVector(n int) Vector {
	if n <= 0 {
		return Vector{}
	}

	return Vector{n: n, words: make([]uint64, wordCount(n))}
}

// wordCount returns the number of 64-bit words needed for n bits.
func wordCount(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Len returns the logical number of bits.
func (v *Vector) Len() int { return v.n }

// Words exposes the packed storage. Callers may read and XOR words but must
// keep the tail bits beyond Len() cleared.
func (v *Vector) Words() []uint64 { return v.words }

// Bit reports whether bit i is set. i must be in [0, Len()).
func (v *Vector) Bit(i int) bool {
	return v.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// Set assigns bit i. i must be in [0, Len()).
func (v *Vector) Set(i int, b bool) {
	mask := uint64(1) << (uint(i) & 63)
	if b {
		v.words[i>>6] |= mask
	} else {
		v.words[i>>6] &^= mask
	}
}

// Flip toggles bit i. i must be in [0, Len()).
func (v *Vector) Flip(i int) {
	v.words[i>>6] ^= 1 << (uint(i) & 63)
}

// Xor adds w into v (v ← v ⊕ w). Both vectors must have the same length.
// Complexity: O(n/64).
func (v *Vector) Xor(w *Vector) {
	for k := range v.words {
		v.words[k] ^= w.words[k]
	}
}

// Clone returns an independent copy.
func (v *Vector) Clone() Vector {
	if v.n == 0 {
		return Vector{}
	}
	out := Vector{n: v.n, words: make([]uint64, len(v.words))}
	copy(out.words, v.words)

	return out
}

// IsZero reports whether no bits are set.
func (v *Vector) IsZero() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// OnesCount returns the number of set bits.
func (v *Vector) OnesCount() int {
	var c int
	for _, w := range v.words {
		c += bits.OnesCount64(w)
	}

	return c
}

// First returns the index of the lowest set bit, or -1 when the vector is zero.
func (v *Vector) First() int {
	for k, w := range v.words {
		if w != 0 {
			return k*wordBits + bits.TrailingZeros64(w)
		}
	}

	return -1
}

// Last returns the index of the highest set bit, or -1 when the vector is zero.
func (v *Vector) Last() int {
	for k := len(v.words) - 1; k >= 0; k-- {
		if w := v.words[k]; w != 0 {
			return k*wordBits + wordBits - 1 - bits.LeadingZeros64(w)
		}
	}

	return -1
}

// Equal reports whether v and w have the same length and bits.
func (v *Vector) Equal(w *Vector) bool {
	if v.n != w.n {
		return false
	}
	for k := range v.words {
		if v.words[k] != w.words[k] {
			return false
		}
	}

	return true
}

// Dot returns the GF(2) inner product of v and w (parity of v AND w).
func (v *Vector) Dot(w *Vector) bool {
	var acc uint64
	for k := range v.words {
		acc ^= v.words[k] & w.words[k]
	}

	return bits.OnesCount64(acc)&1 == 1
}

// String renders the vector as a string of '0' and '1', bit 0 first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
