// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel the SOS
// relaxation engine needs to audit solver output.
//
// A conic solver certifies every SOS multiplier through a symmetric Gram
// matrix G: the multiplier equals zᵀ·G·z over a monomial basis z, and the
// certificate is genuine exactly when G is positive semidefinite. This
// package supplies:
//
//   - Dense         — row-major dense matrix with checked At/Set.
//   - Validators    — square/symmetry checks under an explicit epsilon.
//   - Eigen         — deterministic Jacobi sweeps for symmetric matrices.
//   - MinEigenvalue — the PSD certificate check (λmin < 0 ⇒ invalid Gram).
//   - QuadForm      — zᵀ·G·z rebuilt as a poly.Poly for comparison against
//     the solver's own expression of the same multiplier.
//
// Design rules (lvlath style): fail-fast validation with sentinel errors,
// no panics on user data, deterministic pivot scans and loop orders, and
// flat-slice fast paths on the concrete *Dense representation.
package matrix
