// SPDX-License-Identifier: MIT
// Package poly: Coeff — affine expressions over decision parameters.
//
// A Coeff is c₀ + Σ cₖ·θₖ with float64 weights. Coeffs are immutable
// values; every operation returns a fresh Coeff and never aliases the
// operand maps. Exactly-zero entries are dropped so that IsZero is a
// structural check, not a numeric tolerance.

package poly

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Coeff is an affine expression over Params: Const() + Σ w(θ)·θ.
// The zero value is the number 0.
type Coeff struct {
	c   float64
	lin map[Param]float64
}

// Const builds a constant Coeff.
func Const(v float64) Coeff { return Coeff{c: v} }

// FromParam builds the Coeff 1·p.
func FromParam(p Param) Coeff {
	return Coeff{lin: map[Param]float64{p: 1}}
}

// ConstPart returns the constant term c₀.
func (c Coeff) ConstPart() float64 { return c.c }

// Weight returns the weight of p (0 when absent).
func (c Coeff) Weight(p Param) float64 { return c.lin[p] }

// Params returns the parameters with nonzero weight, ascending.
func (c Coeff) Params() []Param {
	ps := make([]Param, 0, len(c.lin))
	for p := range c.lin {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	return ps
}

// IsZero reports whether c is structurally the number 0.
func (c Coeff) IsZero() bool { return c.c == 0 && len(c.lin) == 0 }

// IsConst reports whether c carries no parameters.
func (c Coeff) IsConst() bool { return len(c.lin) == 0 }

// Add returns c + o.
func (c Coeff) Add(o Coeff) Coeff {
	out := Coeff{c: c.c + o.c}
	if len(c.lin)+len(o.lin) > 0 {
		out.lin = make(map[Param]float64, len(c.lin)+len(o.lin))
		for p, w := range c.lin {
			out.lin[p] = w
		}
		for p, w := range o.lin {
			if nw := out.lin[p] + w; nw != 0 {
				out.lin[p] = nw
			} else {
				delete(out.lin, p)
			}
		}
		if len(out.lin) == 0 {
			out.lin = nil
		}
	}
	return out
}

// Scale returns s·c. Scaling by exactly 0 yields the zero Coeff.
func (c Coeff) Scale(s float64) Coeff {
	if s == 0 {
		return Coeff{}
	}
	out := Coeff{c: c.c * s}
	if len(c.lin) > 0 {
		out.lin = make(map[Param]float64, len(c.lin))
		for p, w := range c.lin {
			out.lin[p] = w * s
		}
	}
	return out
}

// mul returns c·o, rejecting the parametric×parametric case: coefficients
// must stay affine in the decision parameters (ErrNonlinear).
func (c Coeff) mul(o Coeff) (Coeff, error) {
	if len(c.lin) > 0 && len(o.lin) > 0 {
		return Coeff{}, ErrNonlinear
	}
	if len(o.lin) > 0 {
		// Exactly one operand is parametric; normalize it to c.
		c, o = o, c
	}
	return c.Scale(o.c), nil
}

// Value resolves c against a solved parameter assignment.
// Returns ErrUnboundParam when a referenced parameter is absent.
func (c Coeff) Value(vals map[Param]float64) (float64, error) {
	v := c.c
	for p, w := range c.lin {
		pv, ok := vals[p]
		if !ok {
			return 0, fmt.Errorf("θ%d: %w", p, ErrUnboundParam)
		}
		v += w * pv
	}
	return v, nil
}

// AbsConst returns |c₀|; used by coefficient-residual diagnostics on
// numeric polynomials.
func (c Coeff) AbsConst() float64 { return math.Abs(c.c) }

// String renders c deterministically: constant first, then parameters in
// ascending handle order.
func (c Coeff) String() string {
	if c.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	if c.c != 0 || len(c.lin) == 0 {
		fmt.Fprintf(&b, "%g", c.c)
		first = false
	}
	for _, p := range c.Params() {
		w := c.lin[p]
		if first {
			fmt.Fprintf(&b, "%g·θ%d", w, p)
			first = false
			continue
		}
		if w >= 0 {
			fmt.Fprintf(&b, "+%g·θ%d", w, p)
		} else {
			fmt.Fprintf(&b, "%g·θ%d", w, p)
		}
	}
	return b.String()
}
