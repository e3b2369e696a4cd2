// SPDX-License-Identifier: MIT
// Package relax: solver invocation and post-solve diagnostics.
//
// Exactly one blocking backend call per Solve. Diagnostics walk the
// constraint records in emission order and only ever record numbers —
// large residuals and void certificates are data for the caller to
// threshold, never errors.

package relax

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/hocp/matrix"
	"github.com/katalvlaran/hocp/poly"
	"github.com/katalvlaran/hocp/sos"
)

// Solve submits the assembled program with the accumulated objective to
// backend, then audits the solution per constraint.
//
// Backend infeasibility or error wraps ErrSolveFailed together with the
// backend's own error (both reachable via errors.Is / errors.As); it is
// never conflated with a configuration error. A structurally incomplete
// solution (missing parameters or Gram lists) is treated the same way.
func (r *Relaxation) Solve(backend sos.Solver) (*Result, error) {
	if backend == nil {
		return nil, ErrNilSolver
	}

	start := time.Now()
	sol, err := backend.Solve(r.prog, sos.Max(r.objective), r.cfg.solverOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolveFailed, err)
	}
	if err = sol.ValidateAgainst(r.prog); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolveFailed, err)
	}

	res := &Result{
		Objective: sol.Objective,
		Solution:  sol,
		Reports:   make([]ConstraintRecord, len(r.records)),
		Warnings:  append([]string(nil), r.warnings...),
	}
	copy(res.Reports, r.records)

	for k, c := range r.prog.Constraints() {
		if err = r.diagnose(&res.Reports[k], c, sol); err != nil {
			return nil, fmt.Errorf("%w: constraint %d: %w", ErrSolveFailed, k, err)
		}
	}
	if r.cfg.withInputs {
		if res.Synthesis, err = r.synthesisBundle(sol); err != nil {
			return nil, fmt.Errorf("%w: synthesis bundle: %w", ErrSolveFailed, err)
		}
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// diagnose fills one record: Gram eigenvalue checks, the residual of the
// declared identity p = σ₀ + Σ σₖ·gₖ, and per-multiplier sub-residuals.
// Only structural defects (unresolvable parameters) return an error;
// numerical badness is recorded, never raised.
func (r *Relaxation) diagnose(rec *ConstraintRecord, c *sos.Constraint, sol *sos.Solution) error {
	declared, err := sol.Resolve(c.Expr)
	if err != nil {
		return err
	}
	rhs := poly.Zero(r.prog.Ring())
	rec.SubResiduals = make([]float64, len(c.Multipliers))
	rec.MinEigen = make([]float64, len(c.Multipliers))

	for j, m := range c.Multipliers {
		sigma, err := sol.Resolve(m.Poly)
		if err != nil {
			return err
		}
		if j == 0 {
			rhs = rhs.Add(sigma)
		} else {
			prod, err := sigma.Mul(c.Domain[j-1])
			if err != nil {
				return err
			}
			rhs = rhs.Add(prod)
		}

		g := sol.Grams[c.Index][j]
		lmin, lerr := matrix.MinEigenvalue(g)
		if lerr != nil {
			// No usable certificate for this multiplier: record NaN and
			// flag it rather than failing the whole diagnosis.
			rec.MinEigen[j] = math.NaN()
			rec.SubResiduals[j] = math.NaN()
			rec.InvalidGrams = append(rec.InvalidGrams, j)
			continue
		}
		rec.MinEigen[j] = lmin
		if lmin < 0 {
			rec.InvalidGrams = append(rec.InvalidGrams, j)
		}

		qf, qerr := matrix.QuadForm(m.GramBasis, g)
		if qerr != nil {
			rec.SubResiduals[j] = math.NaN()
			continue
		}
		sub, serr := sigma.Sub(qf).MaxAbsCoeff()
		if serr != nil {
			return serr
		}
		rec.SubResiduals[j] = sub
	}

	residual := declared.Sub(rhs)
	if rec.MaxResidual, err = residual.MaxAbsCoeff(); err != nil {
		return err
	}
	if rec.SumResidual, err = residual.SumAbsCoeff(); err != nil {
		return err
	}
	return nil
}

// synthesisBundle packages the data a downstream control-synthesis stage
// consumes: solved Lgv slots per mode/channel, the emission-order dual
// index of each mode's Liouville constraint, the SVD threshold, and the
// backend's dual data.
func (r *Relaxation) synthesisBundle(sol *sos.Solution) (*SynthesisData, error) {
	if err := sol.ValidateDuals(r.prog); err != nil {
		return nil, err
	}
	slots := make([][]poly.Poly, len(r.modes))
	for i, ms := range r.modes {
		slots[i] = make([]poly.Poly, len(ms.lgv))
		for c, lg := range ms.lgv {
			solved, err := sol.Resolve(lg)
			if err != nil {
				return nil, err
			}
			slots[i][c] = solved
		}
	}
	return &SynthesisData{
		Modes:        len(r.modes),
		ControlSlots: slots,
		DualIndex:    append([]int(nil), r.liouville...),
		SVDEps:       r.cfg.svdEps,
		DualBasis:    sol.DualBasis,
		Duals:        sol.Duals,
	}, nil
}
