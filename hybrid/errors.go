// SPDX-License-Identifier: MIT
// Package hybrid: sentinel error set.
//
// All validation failures are configuration errors: they abort before any
// indeterminate-heavy or solver work. Callers branch
// with errors.Is; Validate wraps sentinels with mode/pair context via %w.

package hybrid

import "errors"

var (
	// ErrNoModes indicates a system with no declared modes.
	ErrNoModes = errors.New("hybrid: system has no modes")

	// ErrDimensionMismatch indicates per-mode dynamics dimensions that
	// disagree with the declared state/control sizes: len(F) != len(X),
	// len(G) != len(X), len(G[r]) != len(U), or len(X0) ∉ {0, len(X)}.
	ErrDimensionMismatch = errors.New("hybrid: dynamics dimension mismatch")

	// ErrUnknownMode indicates a transition endpoint outside the declared
	// mode set. A guard towards a mode that owns no value function cannot
	// be encoded, so this is a configuration error, not a no-op.
	ErrUnknownMode = errors.New("hybrid: transition references unknown mode")

	// ErrResetDimension indicates a reset map whose length differs from
	// the target mode's state dimension — including the implicit identity
	// reset between modes of different state dimension.
	ErrResetDimension = errors.New("hybrid: reset map dimension mismatch")
)
