// SPDX-License-Identifier: MIT

package clip

import (
	"fmt"

	"github.com/katalvlaran/qstab/tableau"
)

// ErrIdentityRow is returned by Bigram for a row without non-identity
// entries. The tableau is then rank deficient, not clipped or not Hermitian.
var ErrIdentityRow = fmt.Errorf("clip: all-identity row: %w", tableau.ErrPrecondition)

// Pair holds the 0-based leftmost and rightmost non-identity columns of a row.
type Pair struct {
	Left, Right int
}

// String renders the pair as "(left,right)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.Left, p.Right)
}

// Option configures Canonicalize and Bigram.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// Phases enables sign bookkeeping during row products.
	Phases bool
	// Clip makes Bigram canonicalize before reading endpoints.
	Clip bool
	// Validate runs tableau.Validate before canonicalizing.
	Validate bool
	// OnMerge is called after row target has been replaced by source·target.
	OnMerge func(target, source int)
}

// Defaults (single source of truth).
const (
	DefaultPhases   = true
	DefaultClip     = true
	DefaultValidate = false
)

// DefaultOptions returns Options with documented defaults and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Phases:   DefaultPhases,
		Clip:     DefaultClip,
		Validate: DefaultValidate,
		OnMerge:  func(int, int) {},
	}
}

// WithPhases toggles sign bookkeeping.
func WithPhases(on bool) Option {
	return func(o *Options) { o.Phases = on }
}

// WithClip toggles canonicalization inside Bigram.
func WithClip(on bool) Option {
	return func(o *Options) { o.Clip = on }
}

// WithValidation toggles eager precondition checks.
func WithValidation(on bool) Option {
	return func(o *Options) { o.Validate = on }
}

// WithOnMerge registers a hook observing every row product. A nil fn is ignored.
func WithOnMerge(fn func(target, source int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
