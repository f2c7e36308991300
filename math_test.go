package grad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grad-ml/grad"
	"github.com/grad-ml/grad/forward"
	"github.com/grad-ml/grad/reverse"
)

// compose is a generic expression usable with every Number type, so the same
// code path can be evaluated plainly, in forward mode, and in reverse mode.
func compose[T grad.Number](x T) T {
	return grad.Logistic(grad.Tanh(grad.Exp(grad.Sin(x))))
}

func TestDispatchReturnsMatchingType(t *testing.T) {
	assert.Equal(t, math.Sin(0.5), grad.Sin(0.5))

	d := grad.Sin(forward.New(0.5))
	assert.InDelta(t, math.Sin(0.5), d.Value(), 1e-15)
	assert.InDelta(t, math.Cos(0.5), d.Deriv()[0], 1e-15)

	g := reverse.NewGraph()
	x := g.Var(0.5)
	n := grad.Sin(x)
	assert.InDelta(t, math.Sin(0.5), n.Value(), 1e-15)
	assert.InDelta(t, math.Cos(0.5), x.Grad(), 1e-15)
}

func TestCatalogueMatchesScalarPath(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 0.9} {
		assert.Equal(t, math.Tan(x), grad.Tan(x))
		assert.Equal(t, math.Asin(x), grad.Asin(x))
		assert.Equal(t, math.Acos(x), grad.Acos(x))
		assert.Equal(t, math.Atan(x), grad.Atan(x))
		assert.Equal(t, math.Sinh(x), grad.Sinh(x))
		assert.Equal(t, math.Cosh(x), grad.Cosh(x))
		assert.Equal(t, math.Log(x), grad.Log(x))
		assert.Equal(t, math.Sqrt(x), grad.Sqrt(x))
		assert.Equal(t, math.Log(x)/math.Log(10), grad.LogBase(x, 10))
	}
}

func TestForwardReverseAgreementUnaryChain(t *testing.T) {
	for _, x := range []float64{-1.2, 0.3, 0.8, 2.5} {
		fd := compose(forward.New(x))

		g := reverse.NewGraph()
		v := g.Var(x)
		nd := compose(v)

		assert.InDelta(t, fd.Value(), nd.Value(), 1e-12)
		assert.InDelta(t, fd.Deriv()[0], v.Grad(), 1e-12)

		// Both must also agree with a central finite difference of the
		// plain-scalar path.
		const h = 1e-6
		numeric := (compose(x+h) - compose(x-h)) / (2 * h)
		assert.InDelta(t, numeric, fd.Deriv()[0], 1e-6)
	}
}

func TestForwardReverseAgreementMultivariate(t *testing.T) {
	// f(x, y) = exp(sin(x)) * tanh(y) / sqrt(x + y²) + x^y
	const xv, yv = 1.5, 0.5

	duals, err := forward.FromSlice([]float64{xv, yv})
	require.NoError(t, err)
	dx, dy := duals[0], duals[1]
	fd := grad.Exp(grad.Sin(dx)).
		Mul(grad.Tanh(dy)).
		Div(grad.Sqrt(dx.Add(dy.Mul(dy)))).
		Add(dx.Pow(dy))

	g := reverse.NewGraph()
	nodes, err := g.FromSlice([]float64{xv, yv})
	require.NoError(t, err)
	nx, ny := nodes[0], nodes[1]
	fn := grad.Exp(grad.Sin(nx)).
		Mul(grad.Tanh(ny)).
		Div(grad.Sqrt(nx.Add(ny.Mul(ny)))).
		Add(nx.Pow(ny))

	assert.InDelta(t, fd.Value(), fn.Value(), 1e-12)
	assert.InDelta(t, fd.Deriv()[0], nx.Grad(), 1e-12)
	assert.InDelta(t, fd.Deriv()[1], ny.Grad(), 1e-12)
}

func TestForwardReverseAgreementQuotient(t *testing.T) {
	// f(x, y, z) = (x*y)/z
	vals := []float64{1, 2, 4}

	duals, _ := forward.FromSlice(vals)
	fd := duals[0].Mul(duals[1]).Div(duals[2])
	assert.InDelta(t, 0.5, fd.Value(), 1e-15)
	assert.InDelta(t, 0.5, fd.Deriv()[0], 1e-15)
	assert.InDelta(t, 0.25, fd.Deriv()[1], 1e-15)
	assert.InDelta(t, -0.125, fd.Deriv()[2], 1e-15)

	g := reverse.NewGraph()
	nodes, _ := g.FromSlice(vals)
	fn := nodes[0].Mul(nodes[1]).Div(nodes[2])
	assert.InDelta(t, 0.5, fn.Value(), 1e-15)
	for i, want := range []float64{0.5, 0.25, -0.125} {
		assert.InDelta(t, want, nodes[i].Grad(), 1e-15)
	}
}
