package relax_test

import (
	"fmt"

	"github.com/katalvlaran/hocp/hybrid"
	"github.com/katalvlaran/hocp/poly"
	"github.com/katalvlaran/hocp/relax"
)

// ExampleBuild assembles the relaxation of a two-regime scalar system:
// mode 0 decays under control toward the guard x ≥ 0.6, jumps to mode 1
// through the identity reset, and mode 1 carries the terminal set.
func ExampleBuild() {
	s := hybrid.NewSystem()
	r := s.Ring()

	cool, _ := s.NewMode(1, 1)
	x0, u0 := cool.X[0], cool.U[0]
	x0sq, _ := poly.FromVar(r, x0).Pow(2)
	u0sq, _ := poly.FromVar(r, u0).Pow(2)
	cool.F = []poly.Poly{poly.FromVar(r, x0).Scale(-1)}
	cool.G = [][]poly.Poly{{poly.NewConst(r, 1)}}
	cool.Domain = []poly.Poly{poly.NewConst(r, 1).Sub(x0sq)}
	cool.Controls = []poly.Poly{poly.NewConst(r, 1).Sub(u0sq)}
	cool.RunningCost = x0sq
	cool.X0 = []float64{0.2}

	heat, _ := s.NewMode(1, 1)
	x1, u1 := heat.X[0], heat.U[0]
	x1sq, _ := poly.FromVar(r, x1).Pow(2)
	u1sq, _ := poly.FromVar(r, u1).Pow(2)
	heat.F = []poly.Poly{poly.NewConst(r, 1).Sub(poly.FromVar(r, x1))}
	heat.G = [][]poly.Poly{{poly.NewConst(r, 1)}}
	heat.Domain = []poly.Poly{poly.NewConst(r, 1).Sub(x1sq)}
	heat.Controls = []poly.Poly{poly.NewConst(r, 1).Sub(u1sq)}
	heat.RunningCost = x1sq
	heat.Target = []poly.Poly{poly.NewConst(r, 0.01).Sub(x1sq)}

	// Jump when x ≥ 0.6, keeping the state (identity reset).
	s.SetTransition(0, 1, hybrid.Transition{
		Guard: []poly.Poly{poly.FromVar(r, x0).Sub(poly.NewConst(r, 0.6))},
	})

	rx, err := relax.Build(relax.Problem{System: s, Degree: 2})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	fmt.Printf("degree %d, %d constraints\n", rx.Degree(), len(rx.Records()))
	for k, rec := range rx.Records() {
		switch rec.Kind {
		case relax.Transition:
			fmt.Printf("%d: %s mode %d -> %d\n", k, rec.Kind, rec.Mode, rec.To)
		default:
			fmt.Printf("%d: %s mode %d (%d multipliers)\n", k, rec.Kind, rec.Mode, rec.Multipliers)
		}
	}
	// Output:
	// degree 2, 4 constraints
	// 0: liouville mode 0 (4 multipliers)
	// 1: transition mode 0 -> 1
	// 2: liouville mode 1 (4 multipliers)
	// 3: terminal mode 1 (2 multipliers)
}
