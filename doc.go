// Package hocp computes certified lower bounds for hybrid optimal control
// problems via sum-of-squares (SOS) relaxations.
//
// 🚀 What is hocp?
//
//	A deterministic, almost-zero-dependency engine that turns a hybrid
//	control problem into a convex SOS program:
//		• Modes: per-mode state/control indeterminates & polynomial dynamics
//		• Guards & resets: cross-mode transition coupling
//		• Value templates: one degree-bounded polynomial candidate per mode
//		• Certificates: Positivstellensatz-style SOS multiplier decompositions
//		• Diagnostics: residual & Gram-eigenvalue audits of the solved program
//
// A hybrid optimal control problem has a finite set of discrete modes, each
// with its own continuous state, controlled polynomial dynamics, domain and
// control sets, running and terminal costs. Guarded transitions move the
// state between modes through polynomial reset maps. The engine searches,
// per mode, for a polynomial value-function candidate v_i(t,x) of bounded
// degree that is consistent with the dynamics (a Hamilton–Jacobi–Bellman
// type inequality), the terminal cost, and every declared transition. The
// search is convex: each requirement becomes a "polynomial nonnegative on a
// semialgebraic set" constraint certified by SOS multipliers, and the sum of
// v_i at the initial conditions is maximized. The optimum is a lower bound
// on the true optimal cost that tightens as the relaxation degree grows.
//
// Under the hood, everything is organized under five subpackages:
//
//	poly/   — multivariate polynomial ring with affine decision-parameter
//	          coefficients (differentiation, substitution, free templates)
//	matrix/ — dense symmetric matrices + Jacobi eigen sweep (Gram audits)
//	hybrid/ — the system description: modes, guarded transitions, resets,
//	          eager validation, mode-graph reachability
//	sos/    — SOS program container + the Solver interface an external
//	          conic/SDP backend implements
//	relax/  — the engine: mode setup, constraint assembly in a fixed
//	          emission order, solve invocation, post-solve diagnostics
//
// Everything is deterministic: identical inputs produce identical constraint
// scopes, domain lists, and emission order. The only external nondeterminism
// enters through the solver backend.
//
// Entry point: build a hybrid.System, wrap it in a relax.Problem, call
// relax.Build, then Solve against any sos.Solver implementation.
//
//	go get github.com/katalvlaran/hocp
package hocp
