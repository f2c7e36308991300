package reverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/grad-ml/grad/reverse"
)

func TestCompareBeforeGradIsUnknown(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	reverse.SetLogger(zap.New(core))
	defer reverse.SetLogger(zap.NewNop())

	g := reverse.NewGraph()
	x, y := g.Var(1), g.Var(2)

	c := x.Less(y)
	assert.True(t, c.Value)
	assert.Equal(t, reverse.Unknown, c.Deriv)
	assert.Equal(t, 1, logs.Len(), "stale-gradient comparison must log a warning")
}

func TestCompareAfterGrad(t *testing.T) {
	g := reverse.NewGraph()
	x, y := g.Var(1), g.Var(2)
	f := x.Mul(y) // dx = 2, dy = 1
	_ = f
	x.Grad()
	y.Grad()

	c := x.Less(y)
	assert.True(t, c.Value)
	assert.Equal(t, reverse.False, c.Deriv) // 2 < 1 is false

	c = x.Greater(y)
	assert.False(t, c.Value)
	assert.Equal(t, reverse.True, c.Deriv)
}

func TestCompareConstants(t *testing.T) {
	// Constants carry a pinned zero gradient, so their derivative
	// comparison is determinate without any Grad pass.
	g := reverse.NewGraph()
	x := g.Constant(2)
	y := g.Constant(-2)

	c := x.Neg().Equal(y)
	assert.True(t, c.Value)
	assert.Equal(t, reverse.True, c.Deriv)
}

func TestCompareEquality(t *testing.T) {
	g := reverse.NewGraph()
	x, y := g.Var(5), g.Var(5)
	x.Add(y)
	x.Grad()
	y.Grad()

	assert.Equal(t, reverse.True, x.Equal(y).Deriv)
	assert.True(t, x.LessEqual(y).Value)
	assert.True(t, x.GreaterEqual(y).Value)
	assert.False(t, x.NotEqual(y).Value)
}

func TestCompareGraphMismatch(t *testing.T) {
	a := reverse.NewGraph().Var(1)
	b := reverse.NewGraph().Var(2)
	assert.PanicsWithValue(t, reverse.ErrGraphMismatch, func() { a.Less(b) })
}

func TestTruthString(t *testing.T) {
	assert.Equal(t, "unknown", reverse.Unknown.String())
	assert.Equal(t, "true", reverse.True.String())
	assert.Equal(t, "false", reverse.False.String())
}
