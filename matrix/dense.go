// SPDX-License-Identifier: MIT
// Package matrix: Dense — the flat row-major matrix representation.
//
// Storage layout: data[i*cols+j] holds entry (i,j). Public indexers are
// bounds-checked and return sentinels; internal kernels index the flat
// slice directly after validating once up front.

package matrix

import "math"

// Dense is a dense row-major matrix. The zero value is unusable; create
// via NewDense or NewSymmetric.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a zeroed r×c matrix. Shape is validated before
// allocation (ErrBadShape).
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}
	return &Dense{rows: r, cols: c, data: make([]float64, r*c)}, nil
}

// NewSymmetric builds an n×n matrix from row-major data and validates
// symmetry within eps. The data slice is copied, never aliased.
func NewSymmetric(n int, data []float64, eps float64) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != n*n {
		return nil, ErrDimensionMismatch
	}
	m := &Dense{rows: n, cols: n, data: make([]float64, n*n)}
	copy(m.data, data)
	if err := ValidateSymmetric(m, eps); err != nil {
		return nil, err
	}
	return m, nil
}

// Rows returns the number of rows (0 for a nil receiver).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Cols returns the number of columns (0 for a nil receiver).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// At returns entry (i,j) with bounds checking.
func (m *Dense) At(i, j int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ErrOutOfRange
	}
	return m.data[i*m.cols+j], nil
}

// Set stores v at entry (i,j) with bounds checking.
func (m *Dense) Set(i, j int, v float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	m.data[i*m.cols+j] = v
	return nil
}

// Clone returns a deep copy of m (nil in, nil out).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	cp := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)
	return cp
}

// ValidateSquare checks that m is non-nil and square.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.rows != m.cols {
		return ErrNonSquare
	}
	return nil
}

// ValidateSymmetric checks that m is square and |m[i,j]-m[j,i]| ≤ eps for
// every pair. eps must be non-negative; NaN entries always fail.
func ValidateSymmetric(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.rows
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := m.data[i*n+j] - m.data[j*n+i]
			if math.IsNaN(d) || math.Abs(d) > eps {
				return ErrAsymmetry
			}
		}
	}
	return nil
}
