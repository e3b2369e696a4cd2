// SPDX-License-Identifier: MIT
// Package matrix: Gram quadratic-form reconstruction.

package matrix

import (
	"github.com/katalvlaran/hocp/poly"
)

// QuadForm rebuilds zᵀ·G·z as a polynomial, where z is the monomial basis
// a solver indexed its Gram matrix against. The result is the polynomial
// the Gram certificate actually represents; diagnostics compare it against
// the solver's reported multiplier expression (sub-residual check).
//
// Requirements: basis non-empty and numeric (basis monomials never carry
// Params), G square of order len(basis).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func QuadForm(basis []poly.Poly, g *Dense) (poly.Poly, error) {
	if g == nil {
		return poly.Poly{}, ErrNilMatrix
	}
	if err := ValidateSquare(g); err != nil {
		return poly.Poly{}, err
	}
	if g.rows != len(basis) || len(basis) == 0 {
		return poly.Poly{}, ErrDimensionMismatch
	}
	ring := basis[0].Ring()
	out := poly.Zero(ring)
	n := g.rows
	// Fixed i→j accumulation order for reproducible rounding.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := g.data[i*n+j]
			if w == 0 {
				continue
			}
			zz, err := basis[i].Mul(basis[j])
			if err != nil {
				// Basis monomials are numeric; a parametric entry is a
				// programmer error surfaced as-is.
				return poly.Poly{}, err
			}
			out = out.Add(zz.Scale(w))
		}
	}
	return out, nil
}
