// SPDX-License-Identifier: MIT
// Package entropy: sentinel error set.

package entropy

import "errors"

var (
	// ErrNilTableau indicates a nil *tableau.Tableau argument.
	ErrNilTableau = errors.New("entropy: tableau is nil")

	// ErrInvalidSubsystem indicates a subsystem the chosen algorithm cannot accept.
	ErrInvalidSubsystem = errors.New("entropy: invalid subsystem")

	// ErrUnknownAlgorithm indicates an unsupported algorithm tag.
	ErrUnknownAlgorithm = errors.New("entropy: unknown algorithm")
)
