package forward

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/grad-ml/grad/scalar"
)

// Dual is a value paired with a derivative vector. The i-th component of the
// vector is the partial derivative with respect to the i-th tracked
// independent variable.
//
// The zero value is a zero-dimensional constant; construct Duals with New,
// Constant or FromSlice.
type Dual struct {
	val float64
	der []float64
}

// DimensionError reports an attempt to combine two Duals whose derivative
// vectors have different lengths.
type DimensionError struct {
	Op   string // Operation that was attempted, e.g. "Add".
	A, B int    // Derivative lengths of the two operands.
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("forward: %s: derivative dimension mismatch: %d != %d", e.Op, e.A, e.B)
}

// New returns a Dual with the given value and derivative vector. With no
// derivative components, the Dual is seeded as a single independent variable
// with unit derivative [1].
func New(val float64, der ...float64) Dual {
	if len(der) == 0 {
		return Dual{val: val, der: []float64{1}}
	}
	d := make([]float64, len(der))
	copy(d, der)
	return Dual{val: val, der: d}
}

// Constant returns a Dual representing a constant: its derivative vector of
// length ndim is all zeros.
func Constant(val float64, ndim int) Dual {
	return Dual{val: val, der: make([]float64, ndim)}
}

// FromSlice seeds one independent variable per element of vals. The returned
// Duals have derivative vectors forming the rows of the identity matrix, so
// each variable starts independent of the others. A single-element input
// yields one Dual with the length-1 vector [1].
func FromSlice(vals []float64) ([]Dual, error) {
	if len(vals) == 0 {
		return nil, errors.New("forward: FromSlice: empty input")
	}
	duals := make([]Dual, len(vals))
	for i, v := range vals {
		der := make([]float64, len(vals))
		der[i] = 1
		duals[i] = Dual{val: v, der: der}
	}
	return duals, nil
}

// Value returns the value part of d.
func (d Dual) Value() float64 { return d.val }

// Deriv returns a copy of the derivative vector of d.
func (d Dual) Deriv() []float64 {
	der := make([]float64, len(d.der))
	copy(der, d.der)
	return der
}

// Ndim returns the number of tracked independent variables.
func (d Dual) Ndim() int { return len(d.der) }

func (d Dual) String() string {
	return fmt.Sprintf("Dual(%v, %v)", d.val, d.der)
}

// mustMatch panics unless o tracks the same number of variables as d.
func (d Dual) mustMatch(o Dual, op string) {
	if len(d.der) != len(o.der) {
		panic(&DimensionError{Op: op, A: len(d.der), B: len(o.der)})
	}
}

// Add returns d + o.
func (d Dual) Add(o Dual) Dual {
	d.mustMatch(o, "Add")
	der := make([]float64, len(d.der))
	floats.AddTo(der, d.der, o.der)
	return Dual{val: d.val + o.val, der: der}
}

// AddScalar returns d + c.
func (d Dual) AddScalar(c float64) Dual {
	return Dual{val: d.val + c, der: d.Deriv()}
}

// Sub returns d - o.
func (d Dual) Sub(o Dual) Dual {
	d.mustMatch(o, "Sub")
	der := make([]float64, len(d.der))
	floats.SubTo(der, d.der, o.der)
	return Dual{val: d.val - o.val, der: der}
}

// SubScalar returns d - c.
func (d Dual) SubScalar(c float64) Dual {
	return Dual{val: d.val - c, der: d.Deriv()}
}

// ScalarSub returns c - d.
func ScalarSub(c float64, d Dual) Dual {
	return d.Neg().AddScalar(c)
}

// Mul returns d * o using the product rule.
func (d Dual) Mul(o Dual) Dual {
	d.mustMatch(o, "Mul")
	der := floats.ScaleTo(make([]float64, len(d.der)), d.val, o.der)
	floats.AddScaled(der, o.val, d.der)
	return Dual{val: d.val * o.val, der: der}
}

// MulScalar returns d * c.
func (d Dual) MulScalar(c float64) Dual {
	return Dual{val: d.val * c, der: floats.ScaleTo(make([]float64, len(d.der)), c, d.der)}
}

// Div returns d / o using the quotient rule. Division by a zero value is not
// guarded; IEEE infinities and NaNs propagate as usual.
func (d Dual) Div(o Dual) Dual {
	d.mustMatch(o, "Div")
	der := floats.ScaleTo(make([]float64, len(d.der)), o.val, d.der)
	floats.AddScaled(der, -d.val, o.der)
	floats.Scale(1/(o.val*o.val), der)
	return Dual{val: d.val / o.val, der: der}
}

// DivScalar returns d / c.
func (d Dual) DivScalar(c float64) Dual {
	return d.MulScalar(1 / c)
}

// ScalarDiv returns c / d.
func ScalarDiv(c float64, d Dual) Dual {
	der := floats.ScaleTo(make([]float64, len(d.der)), -c/(d.val*d.val), d.der)
	return Dual{val: c / d.val, der: der}
}

// Pow returns d ** o by the generalized power rule
//
//	d/dx[u^v] = u^v * (v'*ln(u) + v*u'/u)
//
// which requires a strictly positive base; Pow panics with a
// *scalar.DomainError otherwise.
func (d Dual) Pow(o Dual) Dual {
	d.mustMatch(o, "Pow")
	lnBase := scalar.Log(d.val)
	val := math.Pow(d.val, o.val)
	der := floats.ScaleTo(make([]float64, len(d.der)), lnBase, o.der)
	floats.AddScaled(der, o.val/d.val, d.der)
	floats.Scale(val, der)
	return Dual{val: val, der: der}
}

// PowScalar returns d ** p for a constant exponent by the ordinary power
// rule. Negative bases allow only integer exponents and a zero base allows
// only exponents >= 1; PowScalar panics with a *scalar.DomainError otherwise.
func (d Dual) PowScalar(p float64) Dual {
	val := scalar.Pow(d.val, p)
	der := floats.ScaleTo(make([]float64, len(d.der)), p*math.Pow(d.val, p-1), d.der)
	return Dual{val: val, der: der}
}

// ScalarPow returns c ** d for a constant base, which must be strictly
// positive since d/dx[c^u] = c^u * ln(c) * u'.
func ScalarPow(c float64, d Dual) Dual {
	lnc := scalar.Log(c)
	val := math.Pow(c, d.val)
	der := floats.ScaleTo(make([]float64, len(d.der)), val*lnc, d.der)
	return Dual{val: val, der: der}
}

// Neg returns -d.
func (d Dual) Neg() Dual {
	return Dual{val: -d.val, der: floats.ScaleTo(make([]float64, len(d.der)), -1, d.der)}
}
