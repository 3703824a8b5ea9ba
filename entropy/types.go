// SPDX-License-Identifier: MIT

package entropy

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/qstab/clip"
)

// Algorithm selects the entropy method.
type Algorithm int

const (
	// Clip uses the clipped gauge; contiguous ranges only.
	Clip Algorithm = iota
	// Graph uses the graph-state adjacency; pure states only.
	Graph
	// RREF uses the partial trace; any state.
	RREF
)

var algorithmNames = [...]string{Clip: "clip", Graph: "graph", RREF: "rref"}

// String returns "clip", "graph", "rref" or "Algorithm(k)".
func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return "Algorithm(" + strconv.Itoa(int(a)) + ")"
}

// ParseAlgorithm maps a case-insensitive name to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
}

// Subsystem is a set of 0-based qubit indices. Order is irrelevant.
type Subsystem []int

// Range is the half-open qubit interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns End-Start, or 0 for an inverted range.
func (r Range) Len() int {
	return max(r.End-r.Start, 0)
}

// Contains reports whether Start <= q < End.
func (r Range) Contains(q int) bool {
	return q >= r.Start && q < r.End
}

// Subsystem lists the qubits of r in ascending order.
func (r Range) Subsystem() Subsystem {
	out := make(Subsystem, 0, r.Len())
	for q := r.Start; q < r.End; q++ {
		out = append(out, q)
	}

	return out
}

// String renders r as "start:end".
func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// Span is shorthand for Range{start, end}.Subsystem().
func Span(start, end int) Subsystem {
	return Range{Start: start, End: end}.Subsystem()
}

// AsRange reports whether s is a run of consecutive qubits and returns it.
// The empty subsystem is the empty range at 0.
func (s Subsystem) AsRange() (Range, bool) {
	if len(s) == 0 {
		return Range{}, true
	}
	sorted := slices.Clone(s)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return Range{}, false
		}
	}

	return Range{Start: sorted[0], End: sorted[len(sorted)-1] + 1}, true
}

// check verifies every index lies in [0, n) with no repeats.
func (s Subsystem) check(n int) error {
	seen := make([]bool, n)
	for _, q := range s {
		if q < 0 || q >= n {
			return fmt.Errorf("qubit %d outside [0,%d): %w", q, n, ErrInvalidSubsystem)
		}
		if seen[q] {
			return fmt.Errorf("qubit %d repeated: %w", q, ErrInvalidSubsystem)
		}
		seen[q] = true
	}

	return nil
}

// complement returns [0, n) \ s in ascending order; s must pass check.
func (s Subsystem) complement(n int) Subsystem {
	in := make([]bool, n)
	for _, q := range s {
		in[q] = true
	}
	out := make(Subsystem, 0, n-len(s))
	for q := 0; q < n; q++ {
		if !in[q] {
			out = append(out, q)
		}
	}

	return out
}

// union returns the sorted set union of a and b.
func union(a, b Subsystem) Subsystem {
	out := make(Subsystem, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)

	return slices.Compact(out)
}

// ParseSubsystem reads "start:end" (half-open), a comma list "0,2,5", or
// the empty string. Whitespace around tokens is ignored.
func ParseSubsystem(s string) (Subsystem, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Subsystem{}, nil
	}
	if lo, hi, ok := strings.Cut(s, ":"); ok {
		start, err1 := strconv.Atoi(strings.TrimSpace(lo))
		end, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil || start < 0 || end < start {
			return nil, fmt.Errorf("ParseSubsystem(%q): bad range: %w", s, ErrInvalidSubsystem)
		}

		return Span(start, end), nil
	}
	fields := strings.Split(s, ",")
	out := make(Subsystem, 0, len(fields))
	for _, f := range fields {
		q, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("ParseSubsystem(%q): %q: %w", s, f, ErrInvalidSubsystem)
		}
		out = append(out, q)
	}

	return out, nil
}

// Purity tells RREF whether the state is known to be pure.
type Purity uint8

const (
	// PurityInfer decides from the tableau: pure iff Rank() == N().
	PurityInfer Purity = iota
	// PurityPure asserts a pure state.
	PurityPure
	// PurityMixed asserts a mixed state; the complement is always traced.
	PurityMixed
)

// Option configures Entropy, MutualInformation and Profile.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// Clip canonicalizes before the clip algorithm reads endpoints.
	Clip bool
	// Phases enables sign tracking during canonicalization. Entropy does
	// not depend on signs; turning it off saves work.
	Phases bool
	// Purity selects the RREF tracing side.
	Purity Purity
	// OnMerge observes every row product of the canonicalization. Nil means none.
	OnMerge func(target, source int)
}

// Defaults.
const (
	DefaultClip   = true
	DefaultPhases = true
)

// DefaultOptions returns Options with documented defaults.
func DefaultOptions() Options {
	return Options{Clip: DefaultClip, Phases: DefaultPhases, Purity: PurityInfer}
}

// WithClip toggles canonicalization for the Clip algorithm.
func WithClip(on bool) Option {
	return func(o *Options) { o.Clip = on }
}

// WithPhases toggles sign tracking during canonicalization.
func WithPhases(on bool) Option {
	return func(o *Options) { o.Phases = on }
}

// WithPure asserts the state is pure (true) or mixed (false) for RREF,
// instead of inferring it from the rank.
func WithPure(pure bool) Option {
	return func(o *Options) {
		if pure {
			o.Purity = PurityPure
		} else {
			o.Purity = PurityMixed
		}
	}
}

// WithOnMerge installs a hook called with (target, source) for every row
// product made while canonicalizing. It fires only after the subsystem
// checks have passed.
func WithOnMerge(fn func(target, source int)) Option {
	return func(o *Options) { o.OnMerge = fn }
}

// clipOptions maps o onto the clip options of one Bigram or Canonicalize call.
func (o Options) clipOptions() []clip.Option {
	return []clip.Option{clip.WithClip(o.Clip), clip.WithPhases(o.Phases), clip.WithOnMerge(o.OnMerge)}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
