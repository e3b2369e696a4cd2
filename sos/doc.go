// SPDX-License-Identifier: MIT

// Package sos is the sum-of-squares program container: it accumulates
// "polynomial ≥ 0 on a semialgebraic set" constraints, each decomposed
// Positivstellensatz-style, and hands the assembled program to an external
// conic solver through the Solver interface.
//
// A constraint OnSet(p, scope, {g₁..gₘ}, d) declares the certificate
//
//	p = σ₀ + Σₖ σₖ·gₖ        with every σ a sum of squares,
//
// which proves p ≥ 0 wherever all gₖ ≥ 0. Each multiplier σ is a free
// polynomial template of degree ≤ d over the scope, carried together with
// the graded monomial basis z of degree ≤ d/2 that a solver must index the
// multiplier's Gram matrix against (σ = zᵀ·G·z, G ⪰ 0).
//
// The container is purely symbolic bookkeeping: it owns the ordered
// constraint list (registration order is never changed — downstream
// diagnostics slice solver output positionally) and the linear objective
// over the program's decision parameters. Solving is delegated: any
// SDP/conic backend that can maximize a linear functional subject to the
// registered certificates implements Solver and returns a Solution with
// parameter values, per-multiplier Gram matrices, and per-constraint dual
// data. Infeasibility and solver errors stay inside the backend's error;
// the engine wraps them without interpretation.
package sos
