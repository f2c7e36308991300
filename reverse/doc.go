// Package reverse implements reverse-mode automatic differentiation over an
// explicit computation graph.
//
// A Graph is an arena owning every node created for a computation; a Node is
// a cheap handle into that arena. Arithmetic on Nodes runs eagerly and
// records, on each operand, an edge (weight, result) whose weight is the
// local partial derivative of the result with respect to that operand. After
// the forward evaluation, Grad on any node reduces the recorded edges with
// memoization, so the derivative of the final output with respect to every
// input is available in one backward sweep regardless of how many inputs
// there are.
//
// Usage:
//
//	g := reverse.NewGraph()
//	x, y := g.Var(2), g.Var(5)
//
//	f := reverse.Sin(x).Mul(y).AddScalar(3) // f = sin(x)*y + 3
//	f.Value()  // sin(2)*5 + 3
//	x.Grad()   // 5*cos(2)
//	y.Grad()   // sin(2)
//
//	g.ZeroGrad(x, y) // reset the variables for a new computation
//
// Grad memoizes per node and gives correct results for the inputs of the
// single most recently built output; reusing variables without ZeroGrad, or
// reading Grad on a node that never fed into an output, yields stale or
// identity values. The traversal is iterative, so graphs deeper than the
// goroutine stack are safe.
//
// Graphs are not safe for concurrent use; callers must serialize access.
package reverse
