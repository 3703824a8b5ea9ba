// SPDX-License-Identifier: MIT

package entropy

import (
	"fmt"

	"github.com/katalvlaran/qstab/clip"
	"github.com/katalvlaran/qstab/tableau"
)

// MutualInformation returns I(A:B) = S(A) + S(B) − S(A∪B).
//
// For Clip, a, b and their union must each be contiguous; this is checked
// before any entropy is computed. The tableau is canonicalized at most once
// and the three entropies are read from the same gauge. Options are passed
// to all three evaluations.
func MutualInformation(t *tableau.Tableau, a, b Subsystem, alg Algorithm, opts ...Option) (int, error) {
	if t == nil {
		return 0, ErrNilTableau
	}
	n := t.N()
	if err := a.check(n); err != nil {
		return 0, fmt.Errorf("MutualInformation: A: %w", err)
	}
	if err := b.check(n); err != nil {
		return 0, fmt.Errorf("MutualInformation: B: %w", err)
	}
	ab := union(a, b)

	if alg == Clip {
		for _, s := range []struct {
			name string
			sub  Subsystem
		}{{"A", a}, {"B", b}, {"A∪B", ab}} {
			if _, ok := s.sub.AsRange(); !ok {
				return 0, fmt.Errorf("MutualInformation: %s=%v is not contiguous: %w", s.name, []int(s.sub), ErrInvalidSubsystem)
			}
		}
		o := gatherOptions(opts)
		if o.Clip {
			if _, err := clip.Canonicalize(t, o.clipOptions()...); err != nil {
				return 0, fmt.Errorf("MutualInformation: %w", err)
			}
		}
		opts = append(opts[:len(opts):len(opts)], WithClip(false))
	}

	sa, err := Entropy(t, a, alg, opts...)
	if err != nil {
		return 0, fmt.Errorf("MutualInformation: S(A): %w", err)
	}
	sb, err := Entropy(t, b, alg, opts...)
	if err != nil {
		return 0, fmt.Errorf("MutualInformation: S(B): %w", err)
	}
	sab, err := Entropy(t, ab, alg, opts...)
	if err != nil {
		return 0, fmt.Errorf("MutualInformation: S(A∪B): %w", err)
	}

	return sa + sb - sab, nil
}

// Profile returns S([0, x)) for every cut x = 0..N() using one clipped
// gauge. Entry 0 and, for pure states, entry N() are 0.
// t is canonicalized in place unless WithClip(false) is given.
// Complexity: O(canonicalize) + O(r + n).
func Profile(t *tableau.Tableau, opts ...Option) ([]int, error) {
	if t == nil {
		return nil, ErrNilTableau
	}
	o := gatherOptions(opts)
	pairs, err := clip.Bigram(t, o.clipOptions()...)
	if err != nil {
		return nil, fmt.Errorf("Profile: %w", err)
	}
	n := t.N()
	// rows fully inside [0, x) are those with Right < x
	closing := make([]int, n+1)
	for _, p := range pairs {
		closing[p.Right+1]++
	}
	out := make([]int, n+1)
	inside := 0
	for x := 1; x <= n; x++ {
		inside += closing[x]
		out[x] = x - inside
	}

	return out, nil
}
