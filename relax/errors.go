// SPDX-License-Identifier: MIT
// Package relax: sentinel error set.
//
// Configuration sentinels surface before any symbolic or solver work;
// ErrSolveFailed surfaces after the (expensive) solve attempt and always
// wraps the backend's own error, so errors.Is finds both.

package relax

import "errors"

var (
	// ErrNilSystem indicates a Problem without a hybrid system.
	ErrNilSystem = errors.New("relax: nil system")

	// ErrBadDegree indicates a non-positive relaxation degree. (Odd
	// degrees are not an error: they are bumped by one with a warning.)
	ErrBadDegree = errors.New("relax: relaxation degree must be positive")

	// ErrFreeFinalTime marks the free-final-time terminal constraint as
	// an unsupported configuration. The path fails fast by design: the
	// alternative formulation was never verified, and silently
	// approximating it would yield an uncertified bound.
	ErrFreeFinalTime = errors.New("relax: free final time is not supported")

	// ErrNilSolver indicates Solve was handed a nil backend.
	ErrNilSolver = errors.New("relax: nil solver backend")

	// ErrSolveFailed indicates the external backend reported infeasibility
	// or a solver error. The backend's raw error is wrapped alongside for
	// diagnosis; this is never a configuration error.
	ErrSolveFailed = errors.New("relax: solver failed")
)
