// SPDX-License-Identifier: MIT
// Package relax: mode setup and constraint assembly.
//
// Build is pure and deterministic: identical inputs yield identical
// constraint scopes, domain lists, and emission order. All configuration
// errors surface here, before any solver work.

package relax

import (
	"fmt"

	"github.com/katalvlaran/hocp/hybrid"
	"github.com/katalvlaran/hocp/poly"
	"github.com/katalvlaran/hocp/sos"
)

// Problem pairs a validated hybrid system with a relaxation degree.
type Problem struct {
	// System describes modes, transitions and costs. Build validates it
	// eagerly via System.Validate.
	System *hybrid.System

	// Degree is the relaxation degree d bounding every value-function
	// template and SOS multiplier. Must be positive; an odd value is
	// bumped to d+1 with a warning.
	Degree int
}

// modeSetup holds one mode's value template and its derived expressions.
type modeSetup struct {
	v       poly.Poly   // v_i(t, x_i), free template of degree ≤ d
	vParams []poly.Param
	vT      poly.Poly   // v_i with t ← T
	lfv     poly.Poly   // ∂v/∂t + ∇v·f
	lgv     []poly.Poly // (∇v·g)_c per control channel
	lv      poly.Poly   // lfv + Σ_c lgv_c·u_c
}

// Relaxation is an assembled, not-yet-solved SOS relaxation. Single-shot:
// assemble once with Build, solve once with Solve.
type Relaxation struct {
	sys       *hybrid.System
	cfg       config
	degree    int
	prog      *sos.Program
	objective poly.Coeff
	modes     []modeSetup
	records   []ConstraintRecord
	liouville []int // emission index of each mode's Liouville constraint
	warnings  []string
}

// Build validates the problem, sets up every mode's value template and
// Lie derivatives, and emits the full constraint set in the fixed order:
// per mode ascending — Liouville, terminal (if the mode has a target),
// transitions by target ascending. The objective accumulates v_i(0, x0_i)
// over modes with an initial point.
//
// Errors: ErrNilSystem, hybrid validation sentinels, ErrBadDegree, and
// ErrFreeFinalTime when the unsupported path would be exercised — all
// before any solver work.
func Build(p Problem, opts ...Option) (*Relaxation, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if p.System == nil {
		return nil, ErrNilSystem
	}
	if err := p.System.Validate(); err != nil {
		return nil, err
	}
	if p.Degree <= 0 {
		return nil, fmt.Errorf("degree %d: %w", p.Degree, ErrBadDegree)
	}
	if cfg.freeFinalTime {
		// Fail before any symbolic work if a terminal constraint would
		// take the unsupported path.
		for i := 0; i < p.System.NumModes(); i++ {
			if len(p.System.Mode(i).Target) > 0 {
				return nil, fmt.Errorf("mode %d has a target set: %w", i, ErrFreeFinalTime)
			}
		}
	}

	r := &Relaxation{sys: p.System, cfg: cfg, degree: p.Degree}
	if r.degree%2 != 0 {
		r.degree++
		r.warnings = append(r.warnings,
			fmt.Sprintf("relaxation degree %d is odd; using %d", p.Degree, r.degree))
	}
	r.noteUnreachable()

	r.prog = sos.NewProgram(p.System.Ring())
	if err := r.setupModes(); err != nil {
		return nil, err
	}
	if err := r.assemble(); err != nil {
		return nil, err
	}
	return r, nil
}

// noteUnreachable warns about modes the guard graph cannot reach from any
// initial point. Legal, but usually a misconfiguration.
func (r *Relaxation) noteUnreachable() {
	hasInit := false
	for i := 0; i < r.sys.NumModes(); i++ {
		if len(r.sys.Mode(i).X0) > 0 {
			hasInit = true
			break
		}
	}
	if !hasInit {
		return
	}
	reach := r.sys.Reachable()
	if len(reach) == r.sys.NumModes() {
		return
	}
	in := make(map[int]bool, len(reach))
	for _, i := range reach {
		in[i] = true
	}
	for i := 0; i < r.sys.NumModes(); i++ {
		if !in[i] {
			r.warnings = append(r.warnings,
				fmt.Sprintf("mode %d is unreachable from every initial point", i))
		}
	}
}

// setupModes creates v_i over (t, x_i) and derives vT_i, Lfv_i, Lgv_i and
// the full Lie derivative Lv_i = Lfv_i + Lgv_i·u_i per mode.
func (r *Relaxation) setupModes() error {
	ring := r.sys.Ring()
	t := r.sys.Time()
	r.modes = make([]modeSetup, r.sys.NumModes())

	for i := range r.modes {
		m := r.sys.Mode(i)
		scope := append([]poly.Var{t}, m.X...)
		v, params := r.prog.NewFree(fmt.Sprintf("v%d", i), scope, r.degree)

		vT, err := v.Substitute(t, poly.NewConst(ring, r.cfg.horizon))
		if err != nil {
			return fmt.Errorf("mode %d: v(T,·): %w", i, err)
		}

		// Lfv = ∂v/∂t + Σ_k ∂v/∂x_k · f_k
		lfv := v.Diff(t)
		grad := make([]poly.Poly, len(m.X))
		for k, x := range m.X {
			grad[k] = v.Diff(x)
			df, err := grad[k].Mul(m.F[k])
			if err != nil {
				return fmt.Errorf("mode %d: ∇v·f[%d]: %w", i, k, err)
			}
			lfv = lfv.Add(df)
		}

		// Lgv_c = Σ_k ∂v/∂x_k · g_{k,c}; Lv = Lfv + Σ_c Lgv_c·u_c
		lgv := make([]poly.Poly, len(m.U))
		lv := lfv
		for c, u := range m.U {
			acc := poly.Zero(ring)
			for k := range m.X {
				dg, err := grad[k].Mul(m.G[k][c])
				if err != nil {
					return fmt.Errorf("mode %d: ∇v·g[%d][%d]: %w", i, k, c, err)
				}
				acc = acc.Add(dg)
			}
			lgv[c] = acc
			du, err := acc.Mul(poly.FromVar(ring, u))
			if err != nil {
				return fmt.Errorf("mode %d: Lgv·u[%d]: %w", i, c, err)
			}
			lv = lv.Add(du)
		}

		r.modes[i] = modeSetup{v: v, vParams: params, vT: vT, lfv: lfv, lgv: lgv, lv: lv}
	}
	return nil
}

// timeBox returns hT = t·(T−t), encoding t ∈ [0, T] as an inequality.
func (r *Relaxation) timeBox() poly.Poly {
	ring := r.sys.Ring()
	t := poly.FromVar(ring, r.sys.Time())
	hT, err := t.Mul(poly.NewConst(ring, r.cfg.horizon).Sub(t))
	if err != nil {
		// t·(T−t) is numeric×numeric; failure is unreachable.
		panic(fmt.Sprintf("relax: timeBox: %v", err))
	}
	return hT
}

// assemble emits the three constraint families and accumulates the
// objective. Emission order is the contract every diagnostic slice
// depends on; do not reorder.
func (r *Relaxation) assemble() error {
	t := r.sys.Time()
	hT := r.timeBox()

	for i := 0; i < r.sys.NumModes(); i++ {
		m := r.sys.Mode(i)
		ms := &r.modes[i]

		// 1. Liouville: Lv + h ≥ 0 on [0,T] × X × U.
		expr := ms.lv.Add(r.sys.CostOrZero(m.RunningCost))
		scope := append(append([]poly.Var{t}, m.X...), m.U...)
		domain := append([]poly.Poly{hT}, m.Domain...)
		domain = append(domain, m.Controls...)
		r.liouville = append(r.liouville, len(r.records))
		if err := r.emit(Liouville, i, -1, expr, scope, domain); err != nil {
			return err
		}

		// 2. Terminal: H − v(T,·) ≥ 0 on XT (fixed final time only; the
		// free-final-time path was rejected by Build).
		if len(m.Target) > 0 {
			texpr := r.sys.CostOrZero(m.TerminalCost).Sub(ms.vT)
			if err := r.emit(Terminal, i, -1, texpr, m.X, m.Target); err != nil {
				return err
			}
		}

		// 3. Transitions: v_j∘R − v_i ≥ 0 on [0,T] × S_ij, j ascending.
		for _, j := range r.sys.Successors(i) {
			vjR, err := r.modes[j].v.SubstituteAll(r.sys.Mode(j).X, r.sys.EffectiveReset(i, j))
			if err != nil {
				return fmt.Errorf("transition (%d,%d): v_j∘R: %w", i, j, err)
			}
			jexpr := vjR.Sub(ms.v)
			jscope := append([]poly.Var{t}, m.X...)
			jdomain := append([]poly.Poly{hT}, r.sys.TransitionGuard(i, j)...)
			if err := r.emit(Transition, i, j, jexpr, jscope, jdomain); err != nil {
				return err
			}
		}

		// Objective: v_i(0, x0_i) for modes with an initial point.
		if len(m.X0) > 0 {
			assign := map[poly.Var]float64{t: 0}
			for k, x := range m.X {
				assign[x] = m.X0[k]
			}
			c, err := ms.v.EvalCoeff(assign)
			if err != nil {
				return fmt.Errorf("mode %d: v(0,x0): %w", i, err)
			}
			r.objective = r.objective.Add(c)
		}
	}
	return nil
}

// emit registers one constraint and its zeroed diagnostic record.
func (r *Relaxation) emit(kind Kind, mode, to int, expr poly.Poly, scope []poly.Var, domain []poly.Poly) error {
	if _, err := r.prog.OnSet(expr, scope, domain, r.degree); err != nil {
		return fmt.Errorf("%s constraint, mode %d: %w", kind, mode, err)
	}
	r.records = append(r.records, ConstraintRecord{
		Kind:        kind,
		Mode:        mode,
		To:          to,
		Scope:       scope,
		DomainSize:  len(domain),
		Multipliers: 1 + len(domain),
	})
	return nil
}

// Degree returns the effective (even) relaxation degree.
func (r *Relaxation) Degree() int { return r.degree }

// Program exposes the assembled SOS program (for solver backends and
// inspection). Treat as read-only.
func (r *Relaxation) Program() *sos.Program { return r.prog }

// Objective returns the accumulated linear objective Σ v_i(0, x0_i).
func (r *Relaxation) Objective() poly.Coeff { return r.objective }

// Records returns the pre-solve constraint records in emission order.
// The slice is shared; treat as read-only.
func (r *Relaxation) Records() []ConstraintRecord { return r.records }

// Warnings returns the non-fatal conditions gathered during Build.
func (r *Relaxation) Warnings() []string { return r.warnings }
