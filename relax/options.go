// SPDX-License-Identifier: MIT
// Package relax: functional options.
//
// Contract (lvlath rules): options are functional, constructors validate
// and panic on meaningless programmer input; Build itself never panics on
// user data. Defaults are package constants, resolved once at Build entry.

package relax

// Documented defaults, single source of truth.
const (
	// DefaultHorizon is the fixed time horizon T.
	DefaultHorizon = 1.0

	// DefaultSVDEps is the numerical SVD threshold packaged for the
	// downstream control-synthesis stage.
	DefaultSVDEps = 1000.0
)

// Option customizes a relaxation before Build assembles anything.
type Option func(*config)

// config is the resolved option state; internal by design.
type config struct {
	withInputs    bool
	freeFinalTime bool
	solverOpts    map[string]any
	svdEps        float64
	horizon       float64
}

func defaultConfig() config {
	return config{svdEps: DefaultSVDEps, horizon: DefaultHorizon}
}

// WithInputs requests the control-synthesis data bundle on the result
// (mode count, Lgv slots, dual indices, dual basis, raw duals).
func WithInputs() Option {
	return func(c *config) { c.withInputs = true }
}

// WithFreeFinalTime requests free-final-time terminal constraints. The
// option is accepted here and rejected by Build with ErrFreeFinalTime as
// soon as a mode with a target set would exercise it — an explicit
// unsupported configuration, not a silent fallback.
func WithFreeFinalTime() Option {
	return func(c *config) { c.freeFinalTime = true }
}

// WithSolverOptions attaches backend-specific options passed through to
// sos.Solver.Solve verbatim. Panics on nil (programmer error; pass no
// option instead).
func WithSolverOptions(opts map[string]any) Option {
	if opts == nil {
		panic("relax: WithSolverOptions(nil)")
	}
	return func(c *config) { c.solverOpts = opts }
}

// WithSVDEps overrides the SVD threshold handed to control synthesis.
// Panics on eps <= 0.
func WithSVDEps(eps float64) Option {
	if eps <= 0 {
		panic("relax: WithSVDEps(eps<=0)")
	}
	return func(c *config) { c.svdEps = eps }
}

// WithHorizon overrides the fixed time horizon T. Panics on T <= 0.
func WithHorizon(t float64) Option {
	if t <= 0 {
		panic("relax: WithHorizon(T<=0)")
	}
	return func(c *config) { c.horizon = t }
}
