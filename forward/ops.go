package forward

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/grad-ml/grad/scalar"
)

// chain returns a Dual with the given value whose derivative vector is
// coeff times d's: the single-variable chain rule.
func (d Dual) chain(val, coeff float64) Dual {
	return Dual{val: val, der: floats.ScaleTo(make([]float64, len(d.der)), coeff, d.der)}
}

// Sin returns the sine of x.
func Sin(x Dual) Dual {
	return x.chain(scalar.Sin(x.val), math.Cos(x.val))
}

// Cos returns the cosine of x.
func Cos(x Dual) Dual {
	return x.chain(scalar.Cos(x.val), -math.Sin(x.val))
}

// Tan returns the tangent of x. It panics with a *scalar.DomainError where
// cos(x) vanishes.
func Tan(x Dual) Dual {
	val := scalar.Tan(x.val)
	c := math.Cos(x.val)
	return x.chain(val, 1/(c*c))
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x Dual) Dual {
	return x.chain(scalar.Sinh(x.val), math.Cosh(x.val))
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x Dual) Dual {
	return x.chain(scalar.Cosh(x.val), math.Sinh(x.val))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Dual) Dual {
	val := scalar.Tanh(x.val)
	return x.chain(val, 1-val*val)
}

// Asin returns the inverse sine of x for |x| < 1.
func Asin(x Dual) Dual {
	val := scalar.Asin(x.val)
	return x.chain(val, 1/math.Sqrt(1-x.val*x.val))
}

// Acos returns the inverse cosine of x for |x| < 1.
func Acos(x Dual) Dual {
	val := scalar.Acos(x.val)
	return x.chain(val, -1/math.Sqrt(1-x.val*x.val))
}

// Atan returns the inverse tangent of x.
func Atan(x Dual) Dual {
	return x.chain(scalar.Atan(x.val), 1/(1+x.val*x.val))
}

// Exp returns e**x.
func Exp(x Dual) Dual {
	val := scalar.Exp(x.val)
	return x.chain(val, val)
}

// Log returns the natural logarithm of x. It panics with a
// *scalar.DomainError for a non-positive value.
func Log(x Dual) Dual {
	return x.chain(scalar.Log(x.val), 1/x.val)
}

// LogBase returns the logarithm of x in the given base, which must be
// positive.
func LogBase(x Dual, base float64) Dual {
	val := scalar.LogBase(x.val, base)
	return x.chain(val, 1/(x.val*math.Log(base)))
}

// Sqrt returns the square root of x. It panics with a *scalar.DomainError
// for a negative value.
func Sqrt(x Dual) Dual {
	val := scalar.Sqrt(x.val)
	return x.chain(val, 0.5/val)
}

// Logistic returns 1/(1+e**-x).
func Logistic(x Dual) Dual {
	val := scalar.Logistic(x.val)
	return x.chain(val, val*(1-val))
}
