// SPDX-License-Identifier: MIT
// Package poly: monomial bases and free polynomial templates.
//
// Basis order is part of the API contract: solvers index Gram matrices
// against it, and the residual diagnostics rebuild quadratic forms from it.
// The order is graded — total degree 0..d ascending, and within one degree
// the first listed Var takes the highest exponent first. Deterministic for
// identical inputs by construction (no map iteration anywhere).

package poly

import "fmt"

// MonomialBasis returns every monomial over vars with total degree ≤ d as
// a slice of unit-coefficient polynomials, in graded order. With no vars
// the basis is the single constant monomial 1. Panics on d < 0 or a
// duplicated Var (programmer error).
func MonomialBasis(r *Ring, vars []Var, d int) []Poly {
	if d < 0 {
		panic(fmt.Sprintf("poly: MonomialBasis(d=%d)", d))
	}
	seen := make(map[Var]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			panic(fmt.Sprintf("poly: MonomialBasis: duplicated var %s", r.VarName(v)))
		}
		seen[v] = true
	}
	var out []Poly
	exps := make([]int, len(vars))
	for deg := 0; deg <= d; deg++ {
		emitExponents(r, vars, exps, 0, deg, &out)
	}
	return out
}

// emitExponents fills exps[idx:] with every composition of rem and appends
// the corresponding monomial. First position takes the largest share first.
func emitExponents(r *Ring, vars []Var, exps []int, idx, rem int, out *[]Poly) {
	if idx == len(exps) {
		if rem == 0 {
			*out = append(*out, monomialOf(r, vars, exps))
		}
		return
	}
	if idx == len(exps)-1 {
		exps[idx] = rem
		*out = append(*out, monomialOf(r, vars, exps))
		exps[idx] = 0
		return
	}
	for e := rem; e >= 0; e-- {
		exps[idx] = e
		emitExponents(r, vars, exps, idx+1, rem-e, out)
		exps[idx] = 0
	}
}

// monomialOf builds the unit monomial Π vars[i]^exps[i].
func monomialOf(r *Ring, vars []Var, exps []int) Poly {
	if len(vars) == 0 {
		return NewConst(r, 1)
	}
	mono := make([]factor, 0, len(vars))
	for i, v := range vars {
		if exps[i] > 0 {
			mono = append(mono, factor{v: v, e: exps[i]})
		}
	}
	// Canonical monomials are sorted by Var ascending; vars arrive in
	// declaration groups, so a single sort pass keeps this honest.
	for i := 1; i < len(mono); i++ {
		for j := i; j > 0 && mono[j-1].v > mono[j].v; j-- {
			mono[j-1], mono[j] = mono[j], mono[j-1]
		}
	}
	p := newPoly(r)
	p.insert(mono, Const(1))
	return p
}

// BasisSize returns C(n+d, d): the number of monomials over n vars with
// total degree ≤ d.
func BasisSize(n, d int) int {
	// Multiplicative binomial; exact for the sizes this engine meets.
	size := 1
	for i := 1; i <= n; i++ {
		size = size * (d + i) / i
	}
	return size
}

// NewFree builds a free polynomial template over the degree-≤d monomial
// basis of vars: one fresh Param per basis monomial, named
// "prefix[k]" in basis order. Returns the template and its Params (same
// order as the basis).
func NewFree(r *Ring, prefix string, vars []Var, d int) (Poly, []Param) {
	basis := MonomialBasis(r, vars, d)
	params := make([]Param, len(basis))
	out := newPoly(r)
	for k, m := range basis {
		params[k] = r.NewParam(fmt.Sprintf("%s[%d]", prefix, k))
		for _, t := range m.terms {
			out.insert(t.mono, FromParam(params[k]))
		}
	}
	return out, params
}
