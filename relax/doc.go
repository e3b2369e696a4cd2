// SPDX-License-Identifier: MIT

// Package relax assembles and diagnoses the SOS relaxation of a hybrid
// optimal control problem.
//
// Given a hybrid.System and an even relaxation degree d, Build constructs
// one value-function template v_i(t,x_i) of degree ≤ d per mode and emits
// three constraint families into an sos.Program:
//
//  1. Liouville/dynamics — L v_i + h_i ≥ 0 on t∈[0,T] × X_i × U_i, where
//     L v = ∂v/∂t + ∇v·f + ∇v·g·u. The HJB-type core of the relaxation.
//  2. Terminal — H_i − v_i(T,·) ≥ 0 on the target set XT_i (only for
//     modes that declare one).
//  3. Transition — v_j(t, R_ij(x)) − v_i(t, x) ≥ 0 on t∈[0,T] × S_ij, for
//     every ordered pair with a live guard. The cross-mode coupling that
//     makes the relaxation hybrid.
//
// The objective maximizes Σ v_i(0, x0_i) over modes with an initial point;
// its optimum lower-bounds the true optimal cost, tightening as d grows.
//
// Emission order is load-bearing: mode by mode ascending, within a mode
// Liouville → terminal → transitions by target ascending. Post-solve
// diagnostics re-associate solver output with constraints purely by
// position in this order.
//
// Solve performs exactly one blocking call into an external sos.Solver,
// then audits the solution per constraint: minimum eigenvalue of every
// Gram matrix (a negative value voids that certificate), the coefficient
// residual of the declared identity p = σ₀ + Σ σₖ·gₖ against the solved
// multipliers, and a per-multiplier sub-residual between the solver's
// expressed σ and its Gram reconstruction zᵀGz. Residuals are data, never
// errors — thresholds belong to the caller.
//
// Failure taxonomy: configuration defects (hybrid sentinels, ErrBadDegree)
// abort before any symbolic work; the unsupported free-final-time path
// aborts with ErrFreeFinalTime rather than guessing an unverified
// formulation; backend failures wrap ErrSolveFailed and preserve the
// backend's own error for diagnosis. An odd degree is bumped to d+1 with a
// warning on the result, never an error.
package relax
