package reverse

import (
	"fmt"
	"math"

	"github.com/grad-ml/grad/scalar"
)

// Node is a handle to one vertex of a Graph: a variable, a constant, or an
// intermediate result. Nodes are cheap to copy; all state lives in the
// Graph's arena.
type Node struct {
	g  *Graph
	id int
}

// Value returns the value computed for n during the forward pass.
func (n Node) Value() float64 { return n.g.nodes[n.id].val }

// IsConstant reports whether n is a frozen constant.
func (n Node) IsConstant() bool { return n.g.nodes[n.id].frozen }

func (n Node) String() string {
	return fmt.Sprintf("Node(%v)", n.Value())
}

// Grad returns the derivative of the most recently built output with respect
// to n, reducing the recorded edges with memoization. The reduction walks an
// explicit stack, so arbitrarily deep graphs cannot overflow the goroutine
// stack, and each edge is visited once across all Grad calls until the next
// ZeroGrad.
func (n Node) Grad() float64 {
	g := n.g
	stack := []int{n.id}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		nd := &g.nodes[id]
		if nd.hasGrad {
			stack = stack[:len(stack)-1]
			continue
		}
		if len(nd.children) == 0 {
			// A leaf with no dependents: dx/dx = 1.
			nd.grad, nd.hasGrad = 1, true
			stack = stack[:len(stack)-1]
			continue
		}
		ready := true
		for _, e := range nd.children {
			if !g.nodes[e.child].hasGrad {
				stack = append(stack, e.child)
				ready = false
			}
		}
		if !ready {
			continue
		}
		var sum float64
		for _, e := range nd.children {
			sum += e.weight * g.nodes[e.child].grad
		}
		nd.grad, nd.hasGrad = sum, true
		stack = stack[:len(stack)-1]
	}
	return g.nodes[n.id].grad
}

// binary allocates the result of a binary operation and registers the local
// partial derivatives on both operands.
func (n Node) binary(o Node, val, wSelf, wOther float64) Node {
	if n.g != o.g {
		panic(ErrGraphMismatch)
	}
	child := n.g.alloc(val, false)
	n.g.addChild(n.id, wSelf, child.id)
	n.g.addChild(o.id, wOther, child.id)
	return child
}

// unary allocates the result of a unary operation and registers its local
// derivative on the operand.
func (n Node) unary(val, weight float64) Node {
	child := n.g.alloc(val, false)
	n.g.addChild(n.id, weight, child.id)
	return child
}

// Add returns n + o.
func (n Node) Add(o Node) Node {
	return n.binary(o, n.Value()+o.Value(), 1, 1)
}

// AddScalar returns n + c.
func (n Node) AddScalar(c float64) Node {
	return n.Add(n.g.Constant(c))
}

// Sub returns n - o.
func (n Node) Sub(o Node) Node {
	return n.binary(o, n.Value()-o.Value(), 1, -1)
}

// SubScalar returns n - c.
func (n Node) SubScalar(c float64) Node {
	return n.Sub(n.g.Constant(c))
}

// ScalarSub returns c - n.
func ScalarSub(c float64, n Node) Node {
	return n.g.Constant(c).Sub(n)
}

// Mul returns n * o; each operand registers the other's value as its local
// derivative (the product rule, seen from either side).
func (n Node) Mul(o Node) Node {
	return n.binary(o, n.Value()*o.Value(), o.Value(), n.Value())
}

// MulScalar returns n * c.
func (n Node) MulScalar(c float64) Node {
	return n.Mul(n.g.Constant(c))
}

// Div returns n / o with the quotient-rule weights 1/o and -n/o². Division
// by a zero value is not guarded; IEEE infinities and NaNs propagate.
func (n Node) Div(o Node) Node {
	nv, ov := n.Value(), o.Value()
	return n.binary(o, nv/ov, 1/ov, -nv/(ov*ov))
}

// DivScalar returns n / c.
func (n Node) DivScalar(c float64) Node {
	return n.Div(n.g.Constant(c))
}

// ScalarDiv returns c / n.
func ScalarDiv(c float64, n Node) Node {
	return n.g.Constant(c).Div(n)
}

// Pow returns n ** o. The base must be strictly positive, since the weight
// registered on the exponent is n^o * ln(n); Pow panics with a
// *scalar.DomainError otherwise.
func (n Node) Pow(o Node) Node {
	x, y := n.Value(), o.Value()
	lnx := scalar.Log(x)
	val := math.Pow(x, y)
	return n.binary(o, val, val*y/x, val*lnx)
}

// PowScalar returns n ** p for a constant exponent by the ordinary power
// rule. Negative bases allow only integer exponents and a zero base allows
// only exponents >= 1; PowScalar panics with a *scalar.DomainError otherwise.
func (n Node) PowScalar(p float64) Node {
	x := n.Value()
	val := scalar.Pow(x, p)
	return n.unary(val, p*math.Pow(x, p-1))
}

// ScalarPow returns c ** n for a constant base, which must be strictly
// positive since the registered weight is c^n * ln(c).
func ScalarPow(c float64, n Node) Node {
	lnc := scalar.Log(c)
	val := math.Pow(c, n.Value())
	return n.unary(val, val*lnc)
}

// Neg returns -n. Negating a constant yields another constant.
func (n Node) Neg() Node {
	if n.IsConstant() {
		return n.g.Constant(-n.Value())
	}
	return n.unary(-n.Value(), -1)
}
