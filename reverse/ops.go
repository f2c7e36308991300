package reverse

import (
	"math"

	"github.com/grad-ml/grad/scalar"
)

// Sin returns the sine of x, registering weight cos(x).
func Sin(x Node) Node {
	return x.unary(scalar.Sin(x.Value()), math.Cos(x.Value()))
}

// Cos returns the cosine of x, registering weight -sin(x).
func Cos(x Node) Node {
	return x.unary(scalar.Cos(x.Value()), -math.Sin(x.Value()))
}

// Tan returns the tangent of x, registering weight 1/cos²(x). It panics with
// a *scalar.DomainError where cos(x) vanishes.
func Tan(x Node) Node {
	val := scalar.Tan(x.Value())
	c := math.Cos(x.Value())
	return x.unary(val, 1/(c*c))
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x Node) Node {
	return x.unary(scalar.Sinh(x.Value()), math.Cosh(x.Value()))
}

// Cosh returns the hyperbolic cosine of x.
func Cosh(x Node) Node {
	return x.unary(scalar.Cosh(x.Value()), math.Sinh(x.Value()))
}

// Tanh returns the hyperbolic tangent of x, registering weight 1-tanh²(x).
func Tanh(x Node) Node {
	val := scalar.Tanh(x.Value())
	return x.unary(val, 1-val*val)
}

// Asin returns the inverse sine of x for |x| < 1.
func Asin(x Node) Node {
	val := scalar.Asin(x.Value())
	return x.unary(val, 1/math.Sqrt(1-x.Value()*x.Value()))
}

// Acos returns the inverse cosine of x for |x| < 1.
func Acos(x Node) Node {
	val := scalar.Acos(x.Value())
	return x.unary(val, -1/math.Sqrt(1-x.Value()*x.Value()))
}

// Atan returns the inverse tangent of x.
func Atan(x Node) Node {
	return x.unary(scalar.Atan(x.Value()), 1/(1+x.Value()*x.Value()))
}

// Exp returns e**x; the registered weight equals the value.
func Exp(x Node) Node {
	val := scalar.Exp(x.Value())
	return x.unary(val, val)
}

// Log returns the natural logarithm of x, registering weight 1/x. It panics
// with a *scalar.DomainError for a non-positive value.
func Log(x Node) Node {
	return x.unary(scalar.Log(x.Value()), 1/x.Value())
}

// LogBase returns the logarithm of x in the given base, which must be
// positive.
func LogBase(x Node, base float64) Node {
	val := scalar.LogBase(x.Value(), base)
	return x.unary(val, 1/(x.Value()*math.Log(base)))
}

// Sqrt returns the square root of x, registering weight 0.5/sqrt(x). It
// panics with a *scalar.DomainError for a negative value.
func Sqrt(x Node) Node {
	val := scalar.Sqrt(x.Value())
	return x.unary(val, 0.5/val)
}

// Logistic returns 1/(1+e**-x), registering weight g(x)*(1-g(x)).
func Logistic(x Node) Node {
	val := scalar.Logistic(x.Value())
	return x.unary(val, val*(1-val))
}
