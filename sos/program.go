// SPDX-License-Identifier: MIT
// Package sos: the program container.
//
// Registration order is the program's spine: constraint k of the program
// is constraint k of every Solution slice, and multiplier j of constraint
// k is Gram j of that constraint. Nothing here may reorder, merge, or
// deduplicate.

package sos

import (
	"fmt"

	"github.com/katalvlaran/hocp/poly"
)

// Multiplier is one SOS factor σ of a certificate: a free polynomial
// template over the constraint scope plus the Gram basis z (degree ≤ d/2)
// the solver must certify it against.
type Multiplier struct {
	// Poly is the free template of σ, degree ≤ d over the scope.
	Poly poly.Poly

	// Params are the template's decision parameters in basis order.
	Params []poly.Param

	// GramBasis is the graded monomial basis z with σ = zᵀ·G·z.
	GramBasis []poly.Poly
}

// Constraint is one registered positivity certificate
// p = σ₀ + Σₖ σₖ·gₖ on {z : gₖ(z) ≥ 0}.
type Constraint struct {
	// Index is the registration position; it equals the constraint's slot
	// in every per-constraint Solution slice.
	Index int

	// Expr is the declared polynomial p (usually parametric).
	Expr poly.Poly

	// Scope lists the indeterminates the certificate ranges over.
	Scope []poly.Var

	// Domain is the ≥0 inequality list {g₁..gₘ}.
	Domain []poly.Poly

	// Multipliers holds σ₀ first, then one σₖ per Domain entry, in Domain
	// order. len(Multipliers) == 1 + len(Domain).
	Multipliers []Multiplier

	// Degree is the multiplier degree bound d (even).
	Degree int
}

// Program accumulates free polynomials and positivity constraints over a
// single ring. Single-shot: one relaxation call owns one Program.
type Program struct {
	ring        *poly.Ring
	constraints []*Constraint
}

// NewProgram creates an empty program over ring. Panics on nil ring
// (programmer error).
func NewProgram(ring *poly.Ring) *Program {
	if ring == nil {
		panic("sos: NewProgram(nil ring)")
	}
	return &Program{ring: ring}
}

// Ring returns the program's ring.
func (p *Program) Ring() *poly.Ring { return p.ring }

// Constraints returns the registered constraints in registration order.
// The slice is shared; treat it as read-only.
func (p *Program) Constraints() []*Constraint { return p.constraints }

// NumConstraints returns the number of registered constraints.
func (p *Program) NumConstraints() int { return len(p.constraints) }

// NewFree declares a free polynomial template of degree ≤ d over vars,
// registering one decision parameter per basis monomial on the program's
// ring. Thin delegation to poly.NewFree, kept on the Program so every
// decision parameter of a relaxation flows through one place.
func (p *Program) NewFree(prefix string, vars []poly.Var, d int) (poly.Poly, []poly.Param) {
	return poly.NewFree(p.ring, prefix, vars, d)
}

// OnSet registers the certificate "expr ≥ 0 on {gₖ ≥ 0}" with multiplier
// degree bound d: a base SOS multiplier plus one SOS multiplier per domain
// inequality. Returns the constraint record (also retained, in order, in
// the program).
//
// Errors: ErrEmptyScope, ErrBadDegree (d must be positive and even).
// A foreign-ring expr panics (programmer error, poly package policy).
func (p *Program) OnSet(expr poly.Poly, scope []poly.Var, domain []poly.Poly, d int) (*Constraint, error) {
	if len(scope) == 0 {
		return nil, ErrEmptyScope
	}
	if d <= 0 || d%2 != 0 {
		return nil, fmt.Errorf("OnSet(d=%d): %w", d, ErrBadDegree)
	}

	idx := len(p.constraints)
	c := &Constraint{
		Index:       idx,
		Expr:        expr,
		Scope:       scope,
		Domain:      domain,
		Multipliers: make([]Multiplier, 0, 1+len(domain)),
		Degree:      d,
	}
	gram := poly.MonomialBasis(p.ring, scope, d/2)
	for k := 0; k <= len(domain); k++ {
		tmpl, params := poly.NewFree(p.ring, fmt.Sprintf("s%d_%d", idx, k), scope, d)
		c.Multipliers = append(c.Multipliers, Multiplier{
			Poly:      tmpl,
			Params:    params,
			GramBasis: gram,
		})
	}
	p.constraints = append(p.constraints, c)
	return c, nil
}
