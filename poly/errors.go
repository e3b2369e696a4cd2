// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.
//
// Only package-level sentinels are exposed; callers branch with errors.Is.
// Context may be attached at call boundaries via fmt.Errorf("...: %w", err).
// Ring mismatches are programmer errors and panic instead (see doc.go).

package poly

import "errors"

var (
	// ErrNonlinear is returned when a product would make a monomial
	// coefficient non-affine in the decision parameters (both operands
	// carry Params). The SOS program must stay linear in its unknowns.
	ErrNonlinear = errors.New("poly: product of two parametric polynomials")

	// ErrUnboundVar is returned by EvalCoeff when a monomial references a
	// Var missing from the assignment.
	ErrUnboundVar = errors.New("poly: unbound indeterminate in evaluation")

	// ErrUnboundParam is returned by Resolve and Coeff.Value when a Param
	// is missing from the solved assignment.
	ErrUnboundParam = errors.New("poly: unbound parameter in resolution")

	// ErrParametric is returned by numeric accessors (MaxAbsCoeff,
	// SumAbsCoeff) invoked on a polynomial that still carries Params.
	ErrParametric = errors.New("poly: polynomial is parametric")

	// ErrNegativePower is returned by Pow for a negative exponent.
	ErrNegativePower = errors.New("poly: negative power")
)
