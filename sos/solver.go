// SPDX-License-Identifier: MIT
// Package sos: the external solver boundary.
//
// The engine never numerically solves anything itself; it assembles a
// Program plus an Objective and hands both to a Solver. Backends are free
// to translate the certificates into any conic form they like, as long as
// the returned Solution is indexed by registration order.

package sos

import (
	"fmt"

	"github.com/katalvlaran/hocp/matrix"
	"github.com/katalvlaran/hocp/poly"
)

// Sense fixes the optimization direction of an Objective.
type Sense int

const (
	// Maximize the objective (the relaxation's default: push the value
	// functions up against the certificates).
	Maximize Sense = iota
	// Minimize the objective.
	Minimize
)

// Objective is a linear functional over the program's decision parameters.
type Objective struct {
	Expr  poly.Coeff
	Sense Sense
}

// Max builds a maximization objective.
func Max(c poly.Coeff) Objective { return Objective{Expr: c, Sense: Maximize} }

// Min builds a minimization objective.
func Min(c poly.Coeff) Objective { return Objective{Expr: c, Sense: Minimize} }

// Solver is the external conic/SDP backend. Solve blocks until the backend
// returns; there is no cancellation or streaming (single-shot model).
// Infeasibility and numerical failure are reported through the error; the
// caller preserves it verbatim for diagnosis.
//
// opts is an opaque passthrough of backend-specific options.
type Solver interface {
	Solve(prog *Program, obj Objective, opts map[string]any) (*Solution, error)
}

// Solution is a solved program, indexed everywhere by registration order:
// slot k of Grams/Duals/DualBasis belongs to constraint k.
type Solution struct {
	// Status is the backend's raw status string (e.g. "optimal").
	Status string

	// Objective is the attained objective value.
	Objective float64

	// Params assigns a value to every decision parameter of the program.
	Params map[poly.Param]float64

	// Grams holds one symmetric Gram matrix per multiplier:
	// Grams[k][j] certifies multiplier j of constraint k against its
	// GramBasis.
	Grams [][]*matrix.Dense

	// Duals holds the backend's dual vector per constraint.
	Duals [][]float64

	// DualBasis holds, per constraint, the monomial basis the dual vector
	// is expressed against (needed by downstream control synthesis).
	DualBasis [][]poly.Poly
}

// Value resolves one decision parameter. Missing parameters surface as
// poly.ErrUnboundParam, consistent with Resolve.
func (s *Solution) Value(p poly.Param) (float64, error) {
	v, ok := s.Params[p]
	if !ok {
		return 0, fmt.Errorf("θ%d: %w", p, poly.ErrUnboundParam)
	}
	return v, nil
}

// Resolve substitutes the solved parameter assignment into q, producing a
// numeric polynomial.
func (s *Solution) Resolve(q poly.Poly) (poly.Poly, error) {
	return q.Resolve(s.Params)
}

// Gram returns the Gram matrix of multiplier j of constraint k with bounds
// checking (ErrGramIndex).
func (s *Solution) Gram(k, j int) (*matrix.Dense, error) {
	if k < 0 || k >= len(s.Grams) || j < 0 || j >= len(s.Grams[k]) {
		return nil, fmt.Errorf("gram(%d,%d): %w", k, j, ErrGramIndex)
	}
	return s.Grams[k][j], nil
}

// ValidateAgainst checks that the solution's per-constraint slices match
// the program shape (one Gram list per constraint, one Gram per
// multiplier, a parameter assignment present). Diagnostics call this once
// before slicing positionally.
func (s *Solution) ValidateAgainst(prog *Program) error {
	if s.Params == nil {
		return fmt.Errorf("no parameter assignment: %w", ErrIncompleteSolution)
	}
	if len(s.Grams) != prog.NumConstraints() {
		return fmt.Errorf("grams for %d of %d constraints: %w",
			len(s.Grams), prog.NumConstraints(), ErrIncompleteSolution)
	}
	for k, c := range prog.Constraints() {
		if len(s.Grams[k]) != len(c.Multipliers) {
			return fmt.Errorf("constraint %d: %d grams for %d multipliers: %w",
				k, len(s.Grams[k]), len(c.Multipliers), ErrIncompleteSolution)
		}
	}
	return nil
}

// ValidateDuals checks that the solution carries one dual vector and one
// dual basis per constraint. Dual data is optional for plain diagnostics;
// callers that index it positionally (the control-synthesis bundle) must
// run this before slicing.
func (s *Solution) ValidateDuals(prog *Program) error {
	if len(s.Duals) != prog.NumConstraints() {
		return fmt.Errorf("duals for %d of %d constraints: %w",
			len(s.Duals), prog.NumConstraints(), ErrIncompleteSolution)
	}
	if len(s.DualBasis) != prog.NumConstraints() {
		return fmt.Errorf("dual basis for %d of %d constraints: %w",
			len(s.DualBasis), prog.NumConstraints(), ErrIncompleteSolution)
	}
	return nil
}
