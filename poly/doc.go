// SPDX-License-Identifier: MIT

// Package poly implements the multivariate polynomial ring underlying the
// SOS relaxation engine.
//
// Two kinds of symbols live in a Ring:
//
//   - Var    — an indeterminate (state, control, or time variable). Polys
//     are sparse sums of monomials over Vars.
//   - Param  — a free decision parameter. Every monomial coefficient is an
//     affine expression c₀ + Σ cₖ·θₖ over Params (a Coeff). Plain numeric
//     polynomials are the special case with no Params.
//
// The affine-coefficient restriction is load-bearing: it is exactly what
// keeps an SOS feasibility program a semidefinite program. Multiplying two
// parametric polynomials would make coefficients quadratic in the decision
// parameters and is rejected with ErrNonlinear.
//
// Supported operations: Add/Sub/Scale/Mul/Pow, partial differentiation
// (Diff), capture-free substitution of a polynomial for a Var (Substitute),
// numeric evaluation (EvalCoeff), resolution of Params against a solved
// assignment (Resolve), degree-bounded monomial bases (MonomialBasis), and
// free polynomial templates with one fresh Param per basis monomial
// (NewFree).
//
// Determinism:
//   - Monomial bases are emitted in graded order (total degree ascending,
//     lexicographic within a degree), and the order is part of the API
//     contract — Gram matrices produced by solvers are indexed against it.
//   - String renderings sort terms in the same order.
//
// Error policy (lvlath rules): mixing polynomials from different Rings is a
// programmer error and panics; all user-triggerable conditions (nonlinear
// products, unbound Vars/Params, negative powers) return sentinel errors
// checked via errors.Is.
package poly
