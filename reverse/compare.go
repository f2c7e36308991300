package reverse

import "go.uber.org/zap"

// logger receives the package's diagnostics. Silent by default.
var logger = zap.NewNop()

// SetLogger routes diagnostics, such as stale-gradient warnings, to l.
func SetLogger(l *zap.Logger) { logger = l }

// Truth is a three-valued comparison result. Comparing the gradients of two
// nodes is only meaningful once a Grad pass has evaluated both; before that
// the comparison is Unknown.
type Truth int8

const (
	Unknown Truth = iota
	False
	True
)

func (t Truth) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "unknown"
	}
}

// Comparison is the result of comparing two Nodes: the values compared
// against each other, and the cached gradients compared against each other.
// It is a diagnostic record, not an ordering.
type Comparison struct {
	Value bool
	Deriv Truth
}

func (n Node) compare(o Node, op string, cmp func(a, b float64) bool) Comparison {
	if n.g != o.g {
		panic(ErrGraphMismatch)
	}
	c := Comparison{Value: cmp(n.Value(), o.Value())}
	a, b := n.g.nodes[n.id], o.g.nodes[o.id]
	if !a.hasGrad || !b.hasGrad {
		logger.Warn("comparing node gradients before any Grad pass; derivative comparison is unknown",
			zap.String("op", op))
		return c
	}
	if cmp(a.grad, b.grad) {
		c.Deriv = True
	} else {
		c.Deriv = False
	}
	return c
}

// Less compares n < o by value and by cached gradient.
func (n Node) Less(o Node) Comparison {
	return n.compare(o, "Less", func(a, b float64) bool { return a < b })
}

// Greater compares n > o by value and by cached gradient.
func (n Node) Greater(o Node) Comparison {
	return n.compare(o, "Greater", func(a, b float64) bool { return a > b })
}

// LessEqual compares n <= o by value and by cached gradient.
func (n Node) LessEqual(o Node) Comparison {
	return n.compare(o, "LessEqual", func(a, b float64) bool { return a <= b })
}

// GreaterEqual compares n >= o by value and by cached gradient.
func (n Node) GreaterEqual(o Node) Comparison {
	return n.compare(o, "GreaterEqual", func(a, b float64) bool { return a >= b })
}

// Equal compares n == o by value and by cached gradient.
func (n Node) Equal(o Node) Comparison {
	return n.compare(o, "Equal", func(a, b float64) bool { return a == b })
}

// NotEqual compares n != o by value and by cached gradient.
func (n Node) NotEqual(o Node) Comparison {
	return n.compare(o, "NotEqual", func(a, b float64) bool { return a != b })
}
