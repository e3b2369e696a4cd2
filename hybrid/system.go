// SPDX-License-Identifier: MIT
// Package hybrid: Mode, Transition and System containers.
//
// Iteration orders are fixed everywhere: modes by declaration index,
// transition successors by target index ascending. The relaxation engine's
// constraint emission order (and therefore its post-solve index
// bookkeeping) inherits this determinism.

package hybrid

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hocp/poly"
)

// Mode is one discrete operating regime. NewMode declares X and U; the
// caller fills in dynamics, sets and costs before Validate.
//
// Dynamics: ẋ = F(x) + G(x)·u with len(F) == len(X) and G shaped
// len(X) × len(U). Zero-value costs are treated as the zero polynomial.
type Mode struct {
	// X and U are the state and control indeterminates, declared on the
	// owning System's ring by NewMode. Do not replace them.
	X []poly.Var
	U []poly.Var

	// F is the drift vector field, one polynomial per state coordinate.
	F []poly.Poly

	// G is the control input map: G[r][c] multiplies control c in the
	// dynamics of state coordinate r.
	G [][]poly.Poly

	// Domain, Controls and Target are ≥0 inequality lists describing the
	// mode's state domain X, control set U and terminal target set XT.
	// An empty Target means the mode has no terminal constraint.
	Domain   []poly.Poly
	Controls []poly.Poly
	Target   []poly.Poly

	// RunningCost h(t,x,u) and TerminalCost H(x). Zero values mean 0.
	RunningCost  poly.Poly
	TerminalCost poly.Poly

	// X0 is the mode's initial point. Empty means the mode contributes
	// nothing to the relaxation objective.
	X0 []float64
}

// Transition links an ordered mode pair (i, j).
type Transition struct {
	// Guard is the ≥0 inequality list on mode i's state at which the jump
	// may fire. An empty Guard means the transition does not exist.
	Guard []poly.Poly

	// Reset maps mode i's state to mode j's state, one polynomial (over
	// mode i's X) per coordinate of mode j. Nil means the identity map,
	// which requires equal state dimensions.
	Reset []poly.Poly
}

// System is an ordered collection of modes plus guarded transitions,
// sharing one polynomial ring and one time indeterminate. Not safe for
// concurrent mutation; one relaxation call owns one System.
type System struct {
	ring  *poly.Ring
	time  poly.Var
	modes []*Mode
	trans map[[2]int]Transition
}

// NewSystem creates an empty System with a fresh ring and the shared time
// indeterminate t.
func NewSystem() *System {
	r := poly.NewRing()
	return &System{
		ring:  r,
		time:  r.NewVar("t"),
		trans: make(map[[2]int]Transition),
	}
}

// Ring returns the system's polynomial ring.
func (s *System) Ring() *poly.Ring { return s.ring }

// Time returns the shared time indeterminate t.
func (s *System) Time() poly.Var { return s.time }

// NewMode declares a mode with n state and m control coordinates, naming
// the indeterminates x<i>_<k> and u<i>_<k> after the mode index. Panics on
// n <= 0 or m < 0 (programmer error, per option-constructor rules).
func (s *System) NewMode(n, m int) (*Mode, int) {
	if n <= 0 || m < 0 {
		panic(fmt.Sprintf("hybrid: NewMode(n=%d, m=%d)", n, m))
	}
	i := len(s.modes)
	mode := &Mode{
		X: s.ring.NewVars(fmt.Sprintf("x%d_", i), n),
		U: s.ring.NewVars(fmt.Sprintf("u%d_", i), m),
	}
	s.modes = append(s.modes, mode)
	return mode, i
}

// NumModes returns the number of declared modes.
func (s *System) NumModes() int { return len(s.modes) }

// Mode returns mode i. Panics on an out-of-range index (programmer error).
func (s *System) Mode(i int) *Mode {
	if i < 0 || i >= len(s.modes) {
		panic(fmt.Sprintf("hybrid: Mode(%d) of %d", i, len(s.modes)))
	}
	return s.modes[i]
}

// SetTransition installs (or replaces) the transition for the ordered pair
// (i, j). Endpoints are validated later by Validate, so systems can be
// assembled in any order.
func (s *System) SetTransition(i, j int, tr Transition) {
	s.trans[[2]int{i, j}] = tr
}

// TransitionBetween returns the declared transition for (i, j), if any.
func (s *System) TransitionBetween(i, j int) (Transition, bool) {
	tr, ok := s.trans[[2]int{i, j}]
	return tr, ok
}

// TransitionGuard returns the guard list for (i, j); nil when the pair
// has no declared transition.
func (s *System) TransitionGuard(i, j int) []poly.Poly {
	return s.trans[[2]int{i, j}].Guard
}

// Successors returns the targets j of every live transition out of mode i
// (nonempty guard), ascending. This is the emission order for transition
// constraints.
func (s *System) Successors(i int) []int {
	var out []int
	for key, tr := range s.trans {
		if key[0] == i && len(tr.Guard) > 0 {
			out = append(out, key[1])
		}
	}
	sort.Ints(out)
	return out
}

// EffectiveReset resolves the reset map for (i, j): the declared Reset, or
// the identity when none was given. Callers must have validated the pair;
// the identity path re-checks dimensions defensively via Validate.
func (s *System) EffectiveReset(i, j int) []poly.Poly {
	tr := s.trans[[2]int{i, j}]
	if tr.Reset != nil {
		return tr.Reset
	}
	src := s.modes[i]
	id := make([]poly.Poly, len(src.X))
	for k, v := range src.X {
		id[k] = poly.FromVar(s.ring, v)
	}
	return id
}

// CostOrZero normalizes a possibly zero-valued cost polynomial to the zero
// polynomial over the system ring.
func (s *System) CostOrZero(p poly.Poly) poly.Poly {
	if p.Ring() == nil {
		return poly.Zero(s.ring)
	}
	return p
}
