package grad_test

import (
	"fmt"

	"github.com/grad-ml/grad"
	"github.com/grad-ml/grad/forward"
	"github.com/grad-ml/grad/reverse"
)

func ExampleSin() {
	// The catalogue returns the type it is given: a plain float64 stays a
	// plain float64, a dual number carries its derivative along.
	fmt.Printf("%.4f\n", grad.Sin(1.0))

	x := forward.New(1.0)
	d := grad.Sin(x)
	fmt.Printf("%.4f %.4f\n", d.Value(), d.Deriv()[0])
	// Output:
	// 0.8415
	// 0.8415 0.5403
}

func Example_forwardMode() {
	// f(x, y, z) = (x*y)/z at (1, 2, 4); one sweep yields all partials.
	vars, _ := forward.FromSlice([]float64{1, 2, 4})
	x, y, z := vars[0], vars[1], vars[2]

	f := x.Mul(y).Div(z)
	fmt.Printf("f=%.3f df=%v\n", f.Value(), f.Deriv())
	// Output:
	// f=0.500 df=[0.5 0.25 -0.125]
}

func Example_reverseMode() {
	// Same function, reverse mode: one backward pass serves every input.
	g := reverse.NewGraph()
	nodes, _ := g.FromSlice([]float64{1, 2, 4})
	x, y, z := nodes[0], nodes[1], nodes[2]

	f := x.Mul(y).Div(z)
	fmt.Printf("f=%.3f df=[%.3g %.3g %.3g]\n", f.Value(), x.Grad(), y.Grad(), z.Grad())
	// Output:
	// f=0.500 df=[0.5 0.25 -0.125]
}
