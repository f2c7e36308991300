package forward

// Comparison is the element-wise result of comparing two Duals: the value
// parts compared against each other, and each derivative component compared
// against its counterpart. It is a diagnostic record, not an ordering; Duals
// have no total order.
type Comparison struct {
	Value bool
	Deriv []bool
}

func (d Dual) compare(o Dual, op string, cmp func(a, b float64) bool) Comparison {
	d.mustMatch(o, op)
	deriv := make([]bool, len(d.der))
	for i := range d.der {
		deriv[i] = cmp(d.der[i], o.der[i])
	}
	return Comparison{Value: cmp(d.val, o.val), Deriv: deriv}
}

// Less compares d < o element-wise.
func (d Dual) Less(o Dual) Comparison {
	return d.compare(o, "Less", func(a, b float64) bool { return a < b })
}

// Greater compares d > o element-wise.
func (d Dual) Greater(o Dual) Comparison {
	return d.compare(o, "Greater", func(a, b float64) bool { return a > b })
}

// LessEqual compares d <= o element-wise.
func (d Dual) LessEqual(o Dual) Comparison {
	return d.compare(o, "LessEqual", func(a, b float64) bool { return a <= b })
}

// GreaterEqual compares d >= o element-wise.
func (d Dual) GreaterEqual(o Dual) Comparison {
	return d.compare(o, "GreaterEqual", func(a, b float64) bool { return a >= b })
}

// Equal compares d == o element-wise.
func (d Dual) Equal(o Dual) Comparison {
	return d.compare(o, "Equal", func(a, b float64) bool { return a == b })
}

// NotEqual compares d != o element-wise.
func (d Dual) NotEqual(o Dual) Comparison {
	return d.compare(o, "NotEqual", func(a, b float64) bool { return a != b })
}

// LessScalar compares d < c, promoting c to a constant.
func (d Dual) LessScalar(c float64) Comparison { return d.Less(Constant(c, len(d.der))) }

// GreaterScalar compares d > c, promoting c to a constant.
func (d Dual) GreaterScalar(c float64) Comparison { return d.Greater(Constant(c, len(d.der))) }

// EqualScalar compares d == c, promoting c to a constant.
func (d Dual) EqualScalar(c float64) Comparison { return d.Equal(Constant(c, len(d.der))) }
