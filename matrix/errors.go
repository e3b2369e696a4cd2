// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Only package-level sentinels are exposed; algorithms return these (or a
// fmt.Errorf("ctx: %w", ErrX) wrap at an outer boundary) and tests match
// them via errors.Is. No algorithm panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Creation validates before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrEigenFailed indicates the Jacobi sweep did not converge under the
	// given tolerance/iteration cap.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. a Gram matrix whose order differs from the basis length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
