// SPDX-License-Identifier: MIT
// Package poly: arithmetic, calculus and evaluation kernels.
//
// All kernels are non-mutating and deterministic. Ring mismatches panic
// (programmer error); user-triggerable conditions return sentinels.

package poly

import (
	"fmt"
	"math"
)

// mulMono merges two canonical monomials into one (sorted, no zero
// exponents). Two-pointer merge over Var order.
func mulMono(a, b []factor) []factor {
	out := make([]factor, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].v == b[j].v:
			out = append(out, factor{v: a[i].v, e: a[i].e + b[j].e})
			i++
			j++
		case a[i].v < b[j].v:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	sameRing(p.ring, q.ring)
	out := newPoly(p.ring)
	for _, t := range p.terms {
		out.insert(t.mono, t.coeff)
	}
	for _, t := range q.terms {
		out.insert(t.mono, t.coeff)
	}
	return out
}

// Sub returns p − q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Scale(-1))
}

// Scale returns s·p.
func (p Poly) Scale(s float64) Poly {
	out := newPoly(p.ring)
	for _, t := range p.terms {
		out.insert(t.mono, t.coeff.Scale(s))
	}
	return out
}

// Mul returns p·q. At most one operand may be parametric; otherwise the
// product would leave the affine coefficient model (ErrNonlinear).
func (p Poly) Mul(q Poly) (Poly, error) {
	sameRing(p.ring, q.ring)
	out := newPoly(p.ring)
	for _, tp := range p.terms {
		for _, tq := range q.terms {
			c, err := tp.coeff.mul(tq.coeff)
			if err != nil {
				return Poly{}, err
			}
			out.insert(mulMono(tp.mono, tq.mono), c)
		}
	}
	return out, nil
}

// Pow returns p^k for k ≥ 0 (p⁰ = 1). Inherits Mul's linearity rule.
func (p Poly) Pow(k int) (Poly, error) {
	if k < 0 {
		return Poly{}, fmt.Errorf("Pow(%d): %w", k, ErrNegativePower)
	}
	out := NewConst(p.ring, 1)
	var err error
	for i := 0; i < k; i++ {
		if out, err = out.Mul(p); err != nil {
			return Poly{}, err
		}
	}
	return out, nil
}

// Diff returns ∂p/∂v. Terms not containing v vanish.
func (p Poly) Diff(v Var) Poly {
	out := newPoly(p.ring)
	for _, t := range p.terms {
		for i, f := range t.mono {
			if f.v != v {
				continue
			}
			// d/dv (c · v^e · rest) = c·e · v^(e-1) · rest
			mono := make([]factor, 0, len(t.mono))
			mono = append(mono, t.mono[:i]...)
			if f.e > 1 {
				mono = append(mono, factor{v: v, e: f.e - 1})
			}
			mono = append(mono, t.mono[i+1:]...)
			out.insert(mono, t.coeff.Scale(float64(f.e)))
			break
		}
	}
	return out
}

// Substitute returns p with every occurrence of v replaced by q
// (capture-free: q is over the same ring and is substituted as a whole).
// Inherits Mul's linearity rule when both p and q are parametric.
func (p Poly) Substitute(v Var, q Poly) (Poly, error) {
	sameRing(p.ring, q.ring)
	out := newPoly(p.ring)
	// powers caches q^e across terms; exponents repeat often.
	powers := map[int]Poly{0: NewConst(p.ring, 1)}
	for _, t := range p.terms {
		idx := -1
		for i, f := range t.mono {
			if f.v == v {
				idx = i
				break
			}
		}
		if idx < 0 {
			out.insert(t.mono, t.coeff)
			continue
		}
		e := t.mono[idx].e
		qe, ok := powers[e]
		if !ok {
			var err error
			if qe, err = q.Pow(e); err != nil {
				return Poly{}, err
			}
			powers[e] = qe
		}
		rest := make([]factor, 0, len(t.mono)-1)
		rest = append(rest, t.mono[:idx]...)
		rest = append(rest, t.mono[idx+1:]...)
		base := newPoly(p.ring)
		base.insert(rest, t.coeff)
		prod, err := base.Mul(qe)
		if err != nil {
			return Poly{}, err
		}
		for _, pt := range prod.terms {
			out.insert(pt.mono, pt.coeff)
		}
	}
	return out, nil
}

// SubstituteAll simultaneously replaces each vs[i] with qs[i]: every
// occurrence in p refers to the original indeterminates, so replacement
// polynomials may themselves contain substituted Vars. Self-transition
// reset maps (source and target states are the same variables) depend on
// this; a sequential Substitute chain would corrupt them.
func (p Poly) SubstituteAll(vs []Var, qs []Poly) (Poly, error) {
	if len(vs) != len(qs) {
		panic("poly: SubstituteAll length mismatch")
	}
	idx := make(map[Var]int, len(vs))
	for i, v := range vs {
		sameRing(p.ring, qs[i].ring)
		idx[v] = i
	}
	out := newPoly(p.ring)
	// powers caches qs[i]^e across terms; exponents repeat often.
	powers := make(map[[2]int]Poly)
	for _, t := range p.terms {
		rest := make([]factor, 0, len(t.mono))
		var prod Poly
		started := false
		for _, f := range t.mono {
			i, ok := idx[f.v]
			if !ok {
				rest = append(rest, f)
				continue
			}
			qe, ok := powers[[2]int{i, f.e}]
			if !ok {
				var err error
				if qe, err = qs[i].Pow(f.e); err != nil {
					return Poly{}, err
				}
				powers[[2]int{i, f.e}] = qe
			}
			if !started {
				prod, started = qe, true
				continue
			}
			var err error
			if prod, err = prod.Mul(qe); err != nil {
				return Poly{}, err
			}
		}
		if !started {
			out.insert(t.mono, t.coeff)
			continue
		}
		base := newPoly(p.ring)
		base.insert(rest, t.coeff)
		full, err := base.Mul(prod)
		if err != nil {
			return Poly{}, err
		}
		for _, ft := range full.terms {
			out.insert(ft.mono, ft.coeff)
		}
	}
	return out, nil
}

// EvalCoeff evaluates p at a full numeric assignment of its
// indeterminates, returning the resulting (possibly parametric) Coeff.
// Missing indeterminates yield ErrUnboundVar.
func (p Poly) EvalCoeff(assign map[Var]float64) (Coeff, error) {
	out := Coeff{}
	for _, t := range p.terms {
		w := 1.0
		for _, f := range t.mono {
			xv, ok := assign[f.v]
			if !ok {
				return Coeff{}, fmt.Errorf("%s: %w", p.ring.VarName(f.v), ErrUnboundVar)
			}
			w *= math.Pow(xv, float64(f.e))
		}
		out = out.Add(t.coeff.Scale(w))
	}
	return out, nil
}

// Resolve substitutes solved parameter values into every coefficient,
// producing a numeric polynomial. Missing Params yield ErrUnboundParam.
func (p Poly) Resolve(vals map[Param]float64) (Poly, error) {
	out := newPoly(p.ring)
	for _, t := range p.terms {
		v, err := t.coeff.Value(vals)
		if err != nil {
			return Poly{}, err
		}
		out.insert(t.mono, Const(v))
	}
	return out, nil
}

// MaxAbsCoeff returns the largest |coefficient| of a numeric polynomial.
// Parametric input yields ErrParametric; the zero polynomial yields 0.
func (p Poly) MaxAbsCoeff() (float64, error) {
	maxAbs := 0.0
	for _, t := range p.terms {
		if !t.coeff.IsConst() {
			return 0, ErrParametric
		}
		if a := t.coeff.AbsConst(); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs, nil
}

// SumAbsCoeff returns the sum of |coefficient| of a numeric polynomial.
// Parametric input yields ErrParametric. Accumulation follows the graded
// term order for reproducible rounding.
func (p Poly) SumAbsCoeff() (float64, error) {
	sum := 0.0
	for _, t := range p.sortedTerms() {
		if !t.coeff.IsConst() {
			return 0, ErrParametric
		}
		sum += t.coeff.AbsConst()
	}
	return sum, nil
}
