// SPDX-License-Identifier: MIT

// Package hybrid describes hybrid control systems: a finite ordered set of
// modes, each carrying its own continuous state, controlled polynomial
// dynamics ẋ = f(x) + g(x)·u, semialgebraic domain / control / target
// sets, running and terminal costs, and an optional initial point. Ordered
// mode pairs may be linked by a guarded transition with a polynomial reset
// map; an omitted reset defaults to the identity.
//
// A System owns a single poly.Ring and the shared time indeterminate t.
// Each call to NewMode declares that mode's state and control
// indeterminates on the ring, so polynomials from different modes can meet
// inside one SOS program (transition constraints substitute one mode's
// state into another mode's value function).
//
// Validation is eager and fail-fast: Validate reports the first
// configuration defect (dimension mismatches, transitions to undeclared
// modes, reset maps of the wrong length) before any relaxation work
// happens — cheap failure before the expensive solver call.
//
// Reachable performs a queue sweep over the guard graph from every mode
// with an initial point. Unreachable modes are legal (their value function
// is constrained but not optimized); the sweep exists so callers can warn
// about likely misconfigurations.
//
// Semialgebraic set convention: every inequality list {g₁,...,gₘ} denotes
// the set {z : gₖ(z) ≥ 0 for all k}. Empty lists mean "no constraint"
// (Target: no terminal constraint; Guard: no transition).
package hybrid
