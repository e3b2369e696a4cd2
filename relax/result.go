// SPDX-License-Identifier: MIT
// Package relax: result and per-constraint diagnostic records.

package relax

import (
	"time"

	"github.com/katalvlaran/hocp/poly"
	"github.com/katalvlaran/hocp/sos"
)

// Kind identifies the constraint family of a record.
type Kind int

const (
	// Liouville is the per-mode dynamics/HJB constraint.
	Liouville Kind = iota
	// Terminal is the fixed-final-time terminal-cost constraint.
	Terminal
	// Transition is a cross-mode consistency constraint.
	Transition
)

// String renders the family name.
func (k Kind) String() string {
	switch k {
	case Liouville:
		return "liouville"
	case Terminal:
		return "terminal"
	case Transition:
		return "transition"
	default:
		return "unknown"
	}
}

// ConstraintRecord describes one emitted constraint and, after a solve,
// its numerical diagnostics. Records live in emission order; the record at
// position k corresponds to program constraint k.
//
// Lifecycle: created at assembly time with diagnostics zeroed, filled
// exactly once after a successful solve.
type ConstraintRecord struct {
	// Kind, Mode and To locate the constraint: To is the transition
	// target mode, -1 for the other families.
	Kind Kind
	Mode int
	To   int

	// Scope lists the indeterminates the certificate ranges over.
	Scope []poly.Var

	// DomainSize is the number of set-defining inequalities and
	// Multipliers the SOS multiplier count (1 + DomainSize).
	DomainSize  int
	Multipliers int

	// MaxResidual / SumResidual quantify the coefficient-wise violation
	// of the declared identity p = σ₀ + Σ σₖ·gₖ at the solved values.
	MaxResidual float64
	SumResidual float64

	// SubResiduals holds, per multiplier, the max |coefficient| gap
	// between the solver's expressed σ and its Gram reconstruction zᵀGz.
	SubResiduals []float64

	// MinEigen holds the minimum eigenvalue of each multiplier's Gram
	// matrix; InvalidGrams indexes those with λmin < 0 (or no usable
	// Gram), i.e. multipliers whose SOS certificate is numerically void.
	MinEigen     []float64
	InvalidGrams []int
}

// SynthesisData is the bundle a downstream control-synthesis stage needs.
// Present on the result only when WithInputs was requested.
type SynthesisData struct {
	// Modes is the mode count; ControlSlots[i][c] is mode i's solved
	// control-influence derivative (∇v_i·g_i)ₖ for channel c.
	Modes        int
	ControlSlots [][]poly.Poly

	// DualIndex[i] is the emission-order index of mode i's Liouville
	// constraint, locating its dual data in Duals/DualBasis.
	DualIndex []int

	// SVDEps is the numerical rank threshold for the synthesis stage.
	SVDEps float64

	// DualBasis and Duals mirror the backend's per-constraint dual data.
	DualBasis [][]poly.Poly
	Duals     [][]float64
}

// Result is the outcome of one relaxation solve.
type Result struct {
	// Elapsed is total wall time for the solve including diagnostics.
	Elapsed time.Duration

	// Objective is the attained bound: Σ v_i(0, x0_i) at the optimum.
	Objective float64

	// Solution is the raw backend solution handle.
	Solution *sos.Solution

	// Reports holds one diagnostic record per constraint, emission order.
	Reports []ConstraintRecord

	// Warnings collects non-fatal conditions (odd-degree bump,
	// unreachable modes). Never treated as errors by the engine.
	Warnings []string

	// Synthesis is nil unless WithInputs was requested.
	Synthesis *SynthesisData
}
