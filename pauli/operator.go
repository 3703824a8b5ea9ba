// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/qstab/gf2"
)

// Operator is an n-qubit Pauli operator with a phase.
// The zero value is the 0-qubit identity.
type Operator struct {
	xs, zs gf2.Vector // X and Z bit-planes, both of length n
	phase  Phase
}

// New returns the n-qubit identity with phase +1.
func New(n int) Operator {
	return Operator{xs: gf2.NewVector(n), zs: gf2.NewVector(n)}
}

// FromLetters builds an operator from per-qubit letters and a phase.
func FromLetters(phase Phase, letters ...Pauli) Operator {
	op := New(len(letters))
	for q, p := range letters {
		op.setUnchecked(q, p)
	}
	op.phase = phase & 3

	return op
}

// Parse reads the text form described in the package documentation.
func Parse(s string) (Operator, error) {
	s = strings.TrimSpace(s)
	phase, body := splitSign(s)
	if body == "" {
		return Operator{}, fmt.Errorf("Parse(%q): empty body: %w", s, ErrParse)
	}
	op := New(len(body))
	for q := 0; q < len(body); q++ {
		switch body[q] {
		case 'I', '_':
		case 'X':
			op.xs.Set(q, true)
		case 'Y':
			op.xs.Set(q, true)
			op.zs.Set(q, true)
		case 'Z':
			op.zs.Set(q, true)
		default:
			return Operator{}, fmt.Errorf("Parse(%q): letter %q at %d: %w", s, body[q], q, ErrParse)
		}
	}
	op.phase = phase

	return op, nil
}

// MustParse is Parse that panics on error. Intended for fixtures and examples.
func MustParse(s string) Operator {
	op, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return op
}

// splitSign strips an optional "+", "-", "i", "+i" or "-i" prefix.
func splitSign(s string) (Phase, string) {
	var p Phase
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		p = PhaseMinus
		s = s[1:]
	}
	if strings.HasPrefix(s, "i") {
		p = p.Add(PhasePlusI)
		s = s[1:]
	}

	return p, s
}

// N returns the number of qubits.
func (o *Operator) N() int { return o.xs.Len() }

// Phase returns the phase exponent.
func (o *Operator) Phase() Phase { return o.phase }

// SetPhase overwrites the phase exponent (taken mod 4).
func (o *Operator) SetPhase(p Phase) { o.phase = p & 3 }

// X exposes the X bit-plane.
func (o *Operator) X() *gf2.Vector { return &o.xs }

// Z exposes the Z bit-plane.
func (o *Operator) Z() *gf2.Vector { return &o.zs }

// At returns the letter on qubit q. q must be in [0, N()).
func (o *Operator) At(q int) Pauli {
	var p Pauli
	if o.xs.Bit(q) {
		p |= X
	}
	if o.zs.Bit(q) {
		p |= Z
	}

	return p
}

// Set writes letter p on qubit q.
func (o *Operator) Set(q int, p Pauli) error {
	if q < 0 || q >= o.N() {
		return fmt.Errorf("Operator.Set(%d): %w", q, ErrOutOfRange)
	}
	o.setUnchecked(q, p)

	return nil
}

func (o *Operator) setUnchecked(q int, p Pauli) {
	x, z := p.XZ()
	o.xs.Set(q, x)
	o.zs.Set(q, z)
}

// Clone returns an independent copy.
func (o *Operator) Clone() Operator {
	return Operator{xs: o.xs.Clone(), zs: o.zs.Clone(), phase: o.phase}
}

// IsIdentity reports whether every qubit carries I (the phase is ignored).
func (o *Operator) IsIdentity() bool {
	return o.xs.IsZero() && o.zs.IsZero()
}

// Weight returns the number of non-identity qubits.
func (o *Operator) Weight() int {
	var c int
	xw, zw := o.xs.Words(), o.zs.Words()
	for k := range xw {
		c += bits.OnesCount64(xw[k] | zw[k])
	}

	return c
}

// Support returns the first and last non-identity qubit, or (-1, -1) for the identity.
func (o *Operator) Support() (first, last int) {
	fx, fz := o.xs.First(), o.zs.First()
	lx, lz := o.xs.Last(), o.zs.Last()
	first = minSet(fx, fz)
	last = max(lx, lz)

	return first, last
}

// minSet returns the smaller of two indices where -1 means "absent".
func minSet(a, b int) int {
	switch {
	case a < 0:
		return b
	case b < 0:
		return a
	default:
		return min(a, b)
	}
}

// Equal reports whether both operators have the same letters and phase.
func (o *Operator) Equal(p *Operator) bool {
	return o.phase == p.phase && o.xs.Equal(&p.xs) && o.zs.Equal(&p.zs)
}

// String renders the operator as sign prefix plus letters, e.g. "-XZ_Y".
func (o *Operator) String() string {
	var sb strings.Builder
	sb.WriteString(o.phase.String())
	for q := 0; q < o.N(); q++ {
		sb.WriteString(o.At(q).String())
	}

	return sb.String()
}
