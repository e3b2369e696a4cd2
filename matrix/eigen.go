// SPDX-License-Identifier: MIT
// Package matrix: Jacobi eigen sweep for symmetric matrices.
//
// Classical Jacobi rotations with a deterministic pivot scan: the pivot is
// the entry with the largest |A[p,q]| found in fixed i→j order, rotations
// zero it, and the sweep stops once every off-diagonal entry is below tol.
// Deterministic scan plus fixed update order give stable results across
// runs, which the certificate diagnostics rely on.

package matrix

import (
	"math"
	"sort"
)

// Default numerical policy for certificate audits.
const (
	// DefaultEigenTol is the off-diagonal convergence threshold.
	DefaultEigenTol = 1e-10

	// DefaultEigenMaxIter caps the number of rotations; generous for the
	// Gram sizes this engine produces (basis lengths ≤ a few hundred).
	DefaultEigenMaxIter = 10000
)

// Eigen computes the eigenvalues of a symmetric matrix via Jacobi sweeps.
// Returns the eigenvalues sorted ascending.
//
// Errors: ErrNilMatrix / ErrNonSquare / ErrAsymmetry from validation,
// ErrEigenFailed when the off-diagonal mass is still ≥ tol after maxIter
// rotations.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, err
	}
	n := m.rows
	a := m.Clone().data

	for iter := 0; iter < maxIter; iter++ {
		// Pivot: largest |a[p,q]|, fixed i→j scan order.
		p, q, maxOff := 0, 0, 0.0
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a[base+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			diag := make([]float64, n)
			for i := 0; i < n; i++ {
				diag[i] = a[i*n+i]
			}
			sort.Float64s(diag)
			return diag, nil
		}

		app, aqq, apq := a[p*n+p], a[q*n+q], a[p*n+q]
		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c,s from t.
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq := a[i*n+p], a[i*n+q]
			nip := c*aip - s*aiq
			niq := s*aip + c*aiq
			a[i*n+p], a[p*n+i] = nip, nip
			a[i*n+q], a[q*n+i] = niq, niq
		}
		a[p*n+p] = app - t*apq
		a[q*n+q] = aqq + t*apq
		a[p*n+q], a[q*n+p] = 0, 0
	}
	return nil, ErrEigenFailed
}

// MinEigenvalue returns the smallest eigenvalue of a symmetric matrix
// under the default numerical policy. This is the PSD certificate check:
// a Gram matrix with MinEigenvalue < 0 is not a valid SOS certificate.
func MinEigenvalue(m *Dense) (float64, error) {
	eig, err := Eigen(m, DefaultEigenTol, DefaultEigenMaxIter)
	if err != nil {
		return 0, err
	}
	return eig[0], nil
}
