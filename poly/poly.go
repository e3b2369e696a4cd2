// SPDX-License-Identifier: MIT
// Package poly: the sparse polynomial representation.
//
// A Poly maps canonical monomial keys to Coeff values. Polys are immutable
// by convention: every operation allocates a fresh term map and never
// mutates an operand. Terms with a structurally-zero Coeff are dropped at
// insertion so the representation stays canonical.

package poly

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// factor is one v^e entry of a monomial, e ≥ 1.
type factor struct {
	v Var
	e int
}

// term is one monomial with its (possibly parametric) coefficient.
// mono is sorted by Var ascending and contains no zero exponents.
type term struct {
	mono  []factor
	coeff Coeff
}

// Poly is a sparse multivariate polynomial over a single Ring.
// Construct via NewConst, FromVar, MonomialBasis, NewFree, or arithmetic.
type Poly struct {
	ring  *Ring
	terms map[string]term
}

// monoKey encodes a sorted monomial canonically, e.g. "0^2.3^1".
// The empty monomial (the constant term) encodes as "".
func monoKey(m []factor) string {
	if len(m) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range m {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(f.v)))
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(f.e))
	}
	return b.String()
}

// monoDegree is the total degree of a monomial.
func monoDegree(m []factor) int {
	d := 0
	for _, f := range m {
		d += f.e
	}
	return d
}

// newPoly allocates an empty polynomial over r.
func newPoly(r *Ring) Poly {
	if r == nil {
		panic("poly: nil ring")
	}
	return Poly{ring: r, terms: make(map[string]term)}
}

// insert adds coeff·mono into p, merging with an existing term and
// dropping structural zeros. mono must be canonical; p must own its map.
func (p Poly) insert(mono []factor, coeff Coeff) {
	if coeff.IsZero() {
		return
	}
	key := monoKey(mono)
	if old, ok := p.terms[key]; ok {
		merged := old.coeff.Add(coeff)
		if merged.IsZero() {
			delete(p.terms, key)
			return
		}
		p.terms[key] = term{mono: old.mono, coeff: merged}
		return
	}
	cp := make([]factor, len(mono))
	copy(cp, mono)
	p.terms[key] = term{mono: cp, coeff: coeff}
}

// Zero returns the zero polynomial over r.
func Zero(r *Ring) Poly { return newPoly(r) }

// NewConst returns the constant polynomial c over r.
func NewConst(r *Ring, c float64) Poly {
	return NewCoeff(r, Const(c))
}

// NewCoeff returns the degree-0 polynomial whose constant term is c
// (possibly parametric).
func NewCoeff(r *Ring, c Coeff) Poly {
	p := newPoly(r)
	p.insert(nil, c)
	return p
}

// FromVar returns the polynomial v over r. Panics on a foreign handle.
func FromVar(r *Ring, v Var) Poly {
	if v < 0 || int(v) >= r.NumVars() {
		panic(fmt.Sprintf("poly: FromVar(%d): handle not from this ring", v))
	}
	p := newPoly(r)
	p.insert([]factor{{v: v, e: 1}}, Const(1))
	return p
}

// Ring returns the Ring p belongs to (nil for the zero value).
func (p Poly) Ring() *Ring { return p.ring }

// IsZero reports whether p is structurally the zero polynomial.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// IsParametric reports whether any coefficient carries a Param.
func (p Poly) IsParametric() bool {
	for _, t := range p.terms {
		if !t.coeff.IsConst() {
			return true
		}
	}
	return false
}

// Degree returns the total degree of p; the zero polynomial has degree 0.
func (p Poly) Degree() int {
	d := 0
	for _, t := range p.terms {
		if td := monoDegree(t.mono); td > d {
			d = td
		}
	}
	return d
}

// NumTerms returns the number of (nonzero) terms.
func (p Poly) NumTerms() int { return len(p.terms) }

// sortedTerms returns the terms in graded order: total degree ascending,
// then canonical key ascending. This is the deterministic iteration order
// used by String and the residual diagnostics.
func (p Poly) sortedTerms() []term {
	ts := make([]term, 0, len(p.terms))
	for _, t := range p.terms {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool {
		di, dj := monoDegree(ts[i].mono), monoDegree(ts[j].mono)
		if di != dj {
			return di < dj
		}
		return monoKey(ts[i].mono) < monoKey(ts[j].mono)
	})
	return ts
}

// Vars returns the indeterminates that actually occur in p, ascending.
func (p Poly) Vars() []Var {
	seen := make(map[Var]bool)
	for _, t := range p.terms {
		for _, f := range t.mono {
			seen[f.v] = true
		}
	}
	vs := make([]Var, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Equal reports structural equality (same monomials, same Coeffs).
func (p Poly) Equal(q Poly) bool {
	sameRing(p.ring, q.ring)
	if len(p.terms) != len(q.terms) {
		return false
	}
	for key, t := range p.terms {
		o, ok := q.terms[key]
		if !ok {
			return false
		}
		if !t.coeff.Add(o.coeff.Scale(-1)).IsZero() {
			return false
		}
	}
	return true
}

// String renders p in graded term order with named indeterminates.
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.sortedTerms() {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteByte('(')
		b.WriteString(t.coeff.String())
		b.WriteByte(')')
		for _, f := range t.mono {
			b.WriteRune('·')
			b.WriteString(p.ring.VarName(f.v))
			if f.e > 1 {
				b.WriteByte('^')
				b.WriteString(strconv.Itoa(f.e))
			}
		}
	}
	return b.String()
}
