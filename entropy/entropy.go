// SPDX-License-Identifier: MIT

package entropy

import (
	"fmt"

	"github.com/katalvlaran/qstab/clip"
	"github.com/katalvlaran/qstab/gf2"
	"github.com/katalvlaran/qstab/graphstate"
	"github.com/katalvlaran/qstab/tableau"
)

// Entropy returns the entanglement entropy S(sub) of the state generated by
// t, in bits. For pure states 0 <= S <= min(|sub|, n-|sub|).
//
// The subsystem is checked before any work: indices must lie in [0, N())
// without repeats, and Clip additionally requires a contiguous run.
// Clip modifies t in place unless WithClip(false) is given.
func Entropy(t *tableau.Tableau, sub Subsystem, alg Algorithm, opts ...Option) (int, error) {
	if t == nil {
		return 0, ErrNilTableau
	}
	if err := sub.check(t.N()); err != nil {
		return 0, fmt.Errorf("Entropy: %w", err)
	}
	o := gatherOptions(opts)

	switch alg {
	case Clip:
		r, ok := sub.AsRange()
		if !ok {
			return 0, fmt.Errorf("Entropy: %v is not contiguous: %w", []int(sub), ErrInvalidSubsystem)
		}
		if r.Len() == 0 {
			return 0, nil
		}

		return entropyClip(t, r, o)
	case Graph:
		if len(sub) == 0 {
			return 0, nil
		}

		return entropyGraph(t, sub)
	case RREF:
		if len(sub) == 0 {
			return 0, nil
		}

		return entropyRREF(t, sub, o)
	default:
		return 0, fmt.Errorf("Entropy: %v: %w", alg, ErrUnknownAlgorithm)
	}
}

// EntropyRange is Entropy with the Clip algorithm over r.
func EntropyRange(t *tableau.Tableau, r Range, opts ...Option) (int, error) {
	if r.End < r.Start {
		return 0, fmt.Errorf("EntropyRange: %v: %w", r, ErrInvalidSubsystem)
	}

	return Entropy(t, r.Subsystem(), Clip, opts...)
}

// entropyClip counts rows of the clipped gauge that live inside r.
func entropyClip(t *tableau.Tableau, r Range, o Options) (int, error) {
	pairs, err := clip.Bigram(t, o.clipOptions()...)
	if err != nil {
		return 0, fmt.Errorf("Entropy(clip): %w", err)
	}

	return r.Len() - inside(pairs, r), nil
}

func inside(pairs []clip.Pair, r Range) int {
	k := 0
	for _, p := range pairs {
		if r.Contains(p.Left) && r.Contains(p.Right) {
			k++
		}
	}

	return k
}

// entropyGraph is the GF(2) rank of the cut block of the adjacency matrix.
func entropyGraph(t *tableau.Tableau, sub Subsystem) (int, error) {
	st, err := graphstate.ToGraph(t)
	if err != nil {
		return 0, fmt.Errorf("Entropy(graph): %w", err)
	}

	return cutRank(st.Adjacency, sub)
}

func cutRank(adj *gf2.Matrix, sub Subsystem) (int, error) {
	block, err := adj.Induced(sub, sub.complement(adj.Rows()))
	if err != nil {
		return 0, fmt.Errorf("Entropy(graph): %w", err)
	}

	return gf2.Rank(block), nil
}

// entropyRREF traces out one side and counts surviving generators.
func entropyRREF(t *tableau.Tableau, sub Subsystem, o Options) (int, error) {
	n := t.N()
	pure := o.Purity == PurityPure
	if o.Purity == PurityInfer {
		pure = t.IsPure()
	}
	traced := sub.complement(n)
	if pure && len(sub) < len(traced) {
		traced = sub
	}
	_, kept, err := tableau.TraceOut(t, traced)
	if err != nil {
		return 0, fmt.Errorf("Entropy(rref): %w", err)
	}

	return n - kept - len(traced), nil
}
