package relax_test

import (
	"testing"

	"github.com/katalvlaran/hocp/hybrid"
	"github.com/katalvlaran/hocp/poly"
	"github.com/katalvlaran/hocp/relax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxPoly returns 1 - v² (the inequality for v ∈ [-1, 1]).
func boxPoly(r *poly.Ring, v poly.Var) poly.Poly {
	v2, err := poly.FromVar(r, v).Pow(2)
	if err != nil {
		panic(err)
	}
	return poly.NewConst(r, 1).Sub(v2)
}

// scalarMode builds one mode with ẋ = -x + u on the unit boxes, running
// cost x², optional target {x² ≤ 0.01} and initial point x0.
func scalarMode(s *hybrid.System, withTarget bool, x0 []float64) *hybrid.Mode {
	m, _ := s.NewMode(1, 1)
	r := s.Ring()
	x, u := m.X[0], m.U[0]
	m.F = []poly.Poly{poly.FromVar(r, x).Scale(-1)}
	m.G = [][]poly.Poly{{poly.NewConst(r, 1)}}
	m.Domain = []poly.Poly{boxPoly(r, x)}
	m.Controls = []poly.Poly{boxPoly(r, u)}
	x2, err := poly.FromVar(r, x).Pow(2)
	if err != nil {
		panic(err)
	}
	m.RunningCost = x2
	if withTarget {
		m.Target = []poly.Poly{poly.NewConst(r, 0.01).Sub(x2)}
	}
	m.X0 = x0
	return m
}

// TestBuild_SingleModeConstraintCount pins the family counts for a system
// without transitions: Liouville always, terminal iff a target exists.
func TestBuild_SingleModeConstraintCount(t *testing.T) {
	s := hybrid.NewSystem()
	scalarMode(s, false, []float64{0.5})
	rx, err := relax.Build(relax.Problem{System: s, Degree: 2})
	require.NoError(t, err, "build without target")
	require.Len(t, rx.Records(), 1, "Liouville only")
	assert.Equal(t, relax.Liouville, rx.Records()[0].Kind, "first family is Liouville")

	s = hybrid.NewSystem()
	scalarMode(s, true, []float64{0.5})
	rx, err = relax.Build(relax.Problem{System: s, Degree: 2})
	require.NoError(t, err, "build with target")
	require.Len(t, rx.Records(), 2, "Liouville + terminal")
	assert.Equal(t, relax.Terminal, rx.Records()[1].Kind, "terminal follows Liouville")
	assert.Equal(t, 1, rx.Records()[1].DomainSize, "terminal domain is the target list")
}

// TestBuild_ScopesAndDomains pins the variable scopes and domain sizes of
// each family for a scalar mode.
func TestBuild_ScopesAndDomains(t *testing.T) {
	s := hybrid.NewSystem()
	m := scalarMode(s, true, nil)
	rx, err := relax.Build(relax.Problem{System: s, Degree: 2})
	require.NoError(t, err, "build")

	liou := rx.Records()[0]
	assert.Equal(t, []poly.Var{s.Time(), m.X[0], m.U[0]}, liou.Scope, "Liouville scope is (t,x,u)")
	assert.Equal(t, 3, liou.DomainSize, "Liouville domain is [hT; hX; hU]")
	assert.Equal(t, 4, liou.Multipliers, "σ₀ + one per inequality")

	term := rx.Records()[1]
	assert.Equal(t, []poly.Var{m.X[0]}, term.Scope, "terminal scope is x only")
}

// TestBuild_OneDirectionalTransition: a guard on (0,1) with (1,0) empty
// emits exactly one transition constraint, scoped to (t, x_0).
func TestBuild_OneDirectionalTransition(t *testing.T) {
	s := hybrid.NewSystem()
	a := scalarMode(s, false, []float64{0.5})
	scalarMode(s, false, nil)
	s.SetTransition(0, 1, hybrid.Transition{Guard: []poly.Poly{poly.FromVar(s.Ring(), a.X[0])}})

	rx, err := relax.Build(relax.Problem{System: s, Degree: 2})
	require.NoError(t, err, "build")
	require.Len(t, rx.Records(), 3, "two Liouville + one transition")

	tr := rx.Records()[1] // mode 0: Liouville, then its transitions; mode 1: Liouville
	assert.Equal(t, relax.Transition, tr.Kind, "transition emitted inside mode 0's block")
	assert.Equal(t, 0, tr.Mode, "source mode")
	assert.Equal(t, 1, tr.To, "target mode")
	assert.Equal(t, []poly.Var{s.Time(), a.X[0]}, tr.Scope, "transition scope is (t, x_source)")
	assert.Equal(t, 2, tr.DomainSize, "transition domain is [hT; guard]")
	assert.Equal(t, relax.Liouville, rx.Records()[2].Kind, "mode 1's Liouville follows")
}

// resolveExpr resolves constraint k's declared expression with every ring
// parameter at zero except the given pins, turning a parametric constraint
// into the concrete polynomial it certifies for that value function.
func resolveExpr(t *testing.T, rx *relax.Relaxation, k int, pins map[poly.Param]float64) poly.Poly {
	t.Helper()
	ring := rx.Program().Ring()
	vals := make(map[poly.Param]float64, ring.NumParams())
	for p := 0; p < ring.NumParams(); p++ {
		vals[poly.Param(p)] = 0
	}
	for p, v := range pins {
		vals[p] = v
	}
	got, err := rx.Program().Constraints()[k].Expr.Resolve(vals)
	require.NoError(t, err, "resolve constraint %d expression", k)
	return got
}

// TestBuild_TransitionExprDeclaredReset resolves the emitted transition
// expression against pinned value functions: with v1 = x1_0, v0 = 0 and the
// reset R(x) = 0.5·x, the constraint polynomial must be v1∘R − v0 = 0.5·x.
//
// Value templates are declared first, mode ascending, so over (t,x) at
// degree 2 (basis 1, t, x, ...) v0 owns params 0..5 and v1 params 6..11;
// the x monomial sits at basis slot 2.
func TestBuild_TransitionExprDeclaredReset(t *testing.T) {
	s := hybrid.NewSystem()
	a := scalarMode(s, false, []float64{0.5})
	scalarMode(s, false, nil)
	r := s.Ring()
	s.SetTransition(0, 1, hybrid.Transition{
		Guard: []poly.Poly{poly.FromVar(r, a.X[0])},
		Reset: []poly.Poly{poly.FromVar(r, a.X[0]).Scale(0.5)},
	})

	rx, err := relax.Build(relax.Problem{System: s, Degree: 2})
	require.NoError(t, err, "build")
	require.Equal(t, relax.Transition, rx.Records()[1].Kind, "transition at emission slot 1")

	got := resolveExpr(t, rx, 1, map[poly.Param]float64{poly.Param(8): 1})
	want := poly.FromVar(r, a.X[0]).Scale(0.5)
	assert.True(t, got.Sub(want).IsZero(), "v1∘R − v0 must be 0.5·x, got %s", got)
}

// TestBuild_TransitionExprIdentityReset checks that an omitted reset flows
// through as the identity map inside the emitted polynomial.
func TestBuild_TransitionExprIdentityReset(t *testing.T) {
	s := hybrid.NewSystem()
	a := scalarMode(s, false, []float64{0.5})
	scalarMode(s, false, nil)
	r := s.Ring()
	s.SetTransition(0, 1, hybrid.Transition{Guard: []poly.Poly{poly.FromVar(r, a.X[0])}})

	rx, err := relax.Build(relax.Problem{System: s, Degree: 2})
	require.NoError(t, err, "build")
	require.Equal(t, relax.Transition, rx.Records()[1].Kind, "transition at emission slot 1")

	// v1 = x1_0, v0 = 0: the identity reset reads the source state, so the
	// constraint polynomial is x0_0 itself.
	got := resolveExpr(t, rx, 1, map[poly.Param]float64{poly.Param(8): 1})
	assert.True(t, got.Sub(poly.FromVar(r, a.X[0])).IsZero(),
		"identity reset must substitute the source state, got %s", got)

	// Matching value functions cancel exactly under the identity reset.
	both := resolveExpr(t, rx, 1, map[poly.Param]float64{poly.Param(2): 1, poly.Param(8): 1})
	assert.True(t, both.IsZero(), "v1 = v0 under identity reset must cancel, got %s", both)
}

// TestBuild_SelfTransitionSwapReset pins simultaneous reset substitution on
// a self-loop: with the swap reset R = (x2, x1) and v = x1 the emitted
// polynomial is v∘R − v = x2 − x1. A variable-by-variable substitution
// would collapse it to zero and certify nothing.
func TestBuild_SelfTransitionSwapReset(t *testing.T) {
	s := hybrid.NewSystem()
	m, _ := s.NewMode(2, 0)
	r := s.Ring()
	x1, x2 := m.X[0], m.X[1]
	m.F = []poly.Poly{poly.FromVar(r, x2), poly.FromVar(r, x1).Scale(-1)}
	m.G = [][]poly.Poly{{}, {}}
	m.Domain = []poly.Poly{boxPoly(r, x1), boxPoly(r, x2)}
	m.X0 = []float64{0.5, 0}
	s.SetTransition(0, 0, hybrid.Transition{
		Guard: []poly.Poly{poly.FromVar(r, x1)},
		Reset: []poly.Poly{poly.FromVar(r, x2), poly.FromVar(r, x1)},
	})

	rx, err := relax.Build(relax.Problem{System: s, Degree: 2})
	require.NoError(t, err, "self-transitions are legal configuration")
	require.Len(t, rx.Records(), 2, "Liouville + self-transition")
	require.Equal(t, relax.Transition, rx.Records()[1].Kind, "self-loop emitted")
	assert.Equal(t, 0, rx.Records()[1].To, "self-loop targets its own mode")

	// v over (t, x1, x2), basis 1, t, x1, x2, ...: pin v = x1 (slot 2).
	got := resolveExpr(t, rx, 1, map[poly.Param]float64{poly.Param(2): 1})
	want := poly.FromVar(r, x2).Sub(poly.FromVar(r, x1))
	assert.True(t, got.Sub(want).IsZero(),
		"v∘R − v with v=x1 must be x2 − x1, got %s", got)
}

// TestBuild_OddDegreeBumped pins the documented quirk: odd d runs at d+1
// with a warning, never an error.
func TestBuild_OddDegreeBumped(t *testing.T) {
	s := hybrid.NewSystem()
	scalarMode(s, false, []float64{0.5})

	rx, err := relax.Build(relax.Problem{System: s, Degree: 3})
	require.NoError(t, err, "odd degree is not an error")
	assert.Equal(t, 4, rx.Degree(), "effective degree is d+1")
	require.NotEmpty(t, rx.Warnings(), "bump must be surfaced")
	assert.Contains(t, rx.Warnings()[0], "odd", "warning names the quirk")
}

// TestBuild_ConfigurationErrors: dimension defects and bad degrees abort
// before any assembly.
func TestBuild_ConfigurationErrors(t *testing.T) {
	_, err := relax.Build(relax.Problem{Degree: 2})
	assert.ErrorIs(t, err, relax.ErrNilSystem, "nil system")

	s := hybrid.NewSystem()
	m := scalarMode(s, false, nil)
	m.F = nil // break len(F) == len(X)
	_, err = relax.Build(relax.Problem{System: s, Degree: 2})
	assert.ErrorIs(t, err, hybrid.ErrDimensionMismatch, "dimension mismatch surfaces eagerly")

	s = hybrid.NewSystem()
	scalarMode(s, false, nil)
	_, err = relax.Build(relax.Problem{System: s, Degree: 0})
	assert.ErrorIs(t, err, relax.ErrBadDegree, "non-positive degree")
}

// TestBuild_FreeFinalTimeUnsupported: the unsupported path fails fast
// exactly when a target set would exercise it.
func TestBuild_FreeFinalTimeUnsupported(t *testing.T) {
	s := hybrid.NewSystem()
	scalarMode(s, true, nil)
	_, err := relax.Build(relax.Problem{System: s, Degree: 2}, relax.WithFreeFinalTime())
	assert.ErrorIs(t, err, relax.ErrFreeFinalTime, "free final time + target must abort")

	s = hybrid.NewSystem()
	scalarMode(s, false, nil)
	_, err = relax.Build(relax.Problem{System: s, Degree: 2}, relax.WithFreeFinalTime())
	assert.NoError(t, err, "without targets the path is never taken")
}

// TestBuild_ObjectiveAccumulation checks v(0,x0) weights against the
// graded basis order over (t,x): 1, t, x, t², t·x, x².
func TestBuild_ObjectiveAccumulation(t *testing.T) {
	s := hybrid.NewSystem()
	scalarMode(s, false, []float64{2})
	rx, err := relax.Build(relax.Problem{System: s, Degree: 2})
	require.NoError(t, err, "build")

	obj := rx.Objective()
	assert.Equal(t, 0.0, obj.ConstPart(), "objective is purely parametric")
	// v's params are the ring's first six (declared before any multiplier).
	want := []float64{1, 0, 2, 0, 0, 4}
	for k, w := range want {
		assert.Equal(t, w, obj.Weight(poly.Param(k)), "weight of v coefficient %d at (t,x)=(0,2)", k)
	}

	// No initial point anywhere ⇒ zero objective.
	s = hybrid.NewSystem()
	scalarMode(s, false, nil)
	rx, err = relax.Build(relax.Problem{System: s, Degree: 2})
	require.NoError(t, err, "build without x0")
	assert.True(t, rx.Objective().IsZero(), "no x0 ⇒ nothing to optimize")
}

// TestBuild_Deterministic: two identical builds emit identical records.
func TestBuild_Deterministic(t *testing.T) {
	build := func() *relax.Relaxation {
		s := hybrid.NewSystem()
		a := scalarMode(s, true, []float64{0.5})
		scalarMode(s, false, nil)
		s.SetTransition(0, 1, hybrid.Transition{Guard: []poly.Poly{poly.FromVar(s.Ring(), a.X[0])}})
		rx, err := relax.Build(relax.Problem{System: s, Degree: 4})
		require.NoError(t, err, "build")
		return rx
	}
	r1, r2 := build(), build()
	require.Equal(t, len(r1.Records()), len(r2.Records()), "same emission length")
	for k := range r1.Records() {
		assert.Equal(t, r1.Records()[k], r2.Records()[k], "record %d must match byte for byte", k)
	}
}

// TestBuild_UnreachableModeWarning: declared-but-unreachable modes warn.
func TestBuild_UnreachableModeWarning(t *testing.T) {
	s := hybrid.NewSystem()
	scalarMode(s, false, []float64{0.5})
	scalarMode(s, false, nil) // never linked

	rx, err := relax.Build(relax.Problem{System: s, Degree: 2})
	require.NoError(t, err, "unreachable modes are legal")
	require.NotEmpty(t, rx.Warnings(), "but they warn")
	assert.Contains(t, rx.Warnings()[0], "unreachable", "warning names the condition")
}

// TestOptions_PanicOnNonsense pins the option-constructor contract.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { relax.WithSolverOptions(nil) }, "nil solver options")
	assert.Panics(t, func() { relax.WithSVDEps(0) }, "non-positive svd eps")
	assert.Panics(t, func() { relax.WithHorizon(-1) }, "non-positive horizon")
}
