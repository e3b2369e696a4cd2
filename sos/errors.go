// SPDX-License-Identifier: MIT
// Package sos: sentinel error set.

package sos

import "errors"

var (
	// ErrBadDegree is returned by OnSet for a degree that is not a
	// positive even number. (The relaxation layer bumps odd degrees with
	// a warning before reaching the container; the container is strict.)
	ErrBadDegree = errors.New("sos: degree must be positive and even")

	// ErrEmptyScope is returned by OnSet when the constraint scope lists
	// no indeterminates.
	ErrEmptyScope = errors.New("sos: empty constraint scope")

	// ErrGramIndex indicates a Gram/dual lookup outside the solution's
	// constraint or multiplier range.
	ErrGramIndex = errors.New("sos: gram index out of range")

	// ErrIncompleteSolution indicates a Solution missing data the
	// diagnostics need (no parameter assignment, or Gram/dual lists whose
	// shape disagrees with the program).
	ErrIncompleteSolution = errors.New("sos: incomplete solver solution")
)
