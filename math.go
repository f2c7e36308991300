package grad

import (
	"github.com/grad-ml/grad/forward"
	"github.com/grad-ml/grad/reverse"
	"github.com/grad-ml/grad/scalar"
)

// Number is the set of types the catalogue differentiates: a plain scalar,
// a forward-mode dual number, or a reverse-mode graph node.
type Number interface {
	float64 | forward.Dual | reverse.Node
}

// apply dispatches x to the implementation matching its concrete type.
func apply[T Number](x T,
	s func(float64) float64,
	f func(forward.Dual) forward.Dual,
	r func(reverse.Node) reverse.Node,
) T {
	switch v := any(x).(type) {
	case float64:
		return any(s(v)).(T)
	case forward.Dual:
		return any(f(v)).(T)
	case reverse.Node:
		return any(r(v)).(T)
	}
	panic("grad: unreachable")
}

// Sin returns the sine of x.
func Sin[T Number](x T) T { return apply(x, scalar.Sin, forward.Sin, reverse.Sin) }

// Cos returns the cosine of x.
func Cos[T Number](x T) T { return apply(x, scalar.Cos, forward.Cos, reverse.Cos) }

// Tan returns the tangent of x. It panics with a *scalar.DomainError where
// cos(x) vanishes.
func Tan[T Number](x T) T { return apply(x, scalar.Tan, forward.Tan, reverse.Tan) }

// Sinh returns the hyperbolic sine of x.
func Sinh[T Number](x T) T { return apply(x, scalar.Sinh, forward.Sinh, reverse.Sinh) }

// Cosh returns the hyperbolic cosine of x.
func Cosh[T Number](x T) T { return apply(x, scalar.Cosh, forward.Cosh, reverse.Cosh) }

// Tanh returns the hyperbolic tangent of x.
func Tanh[T Number](x T) T { return apply(x, scalar.Tanh, forward.Tanh, reverse.Tanh) }

// Asin returns the inverse sine of x for |x| < 1.
func Asin[T Number](x T) T { return apply(x, scalar.Asin, forward.Asin, reverse.Asin) }

// Acos returns the inverse cosine of x for |x| < 1.
func Acos[T Number](x T) T { return apply(x, scalar.Acos, forward.Acos, reverse.Acos) }

// Atan returns the inverse tangent of x.
func Atan[T Number](x T) T { return apply(x, scalar.Atan, forward.Atan, reverse.Atan) }

// Exp returns e**x.
func Exp[T Number](x T) T { return apply(x, scalar.Exp, forward.Exp, reverse.Exp) }

// Log returns the natural logarithm of x, which must be positive.
func Log[T Number](x T) T { return apply(x, scalar.Log, forward.Log, reverse.Log) }

// LogBase returns the logarithm of x in the given base; both must be
// positive.
func LogBase[T Number](x T, base float64) T {
	return apply(x,
		func(v float64) float64 { return scalar.LogBase(v, base) },
		func(d forward.Dual) forward.Dual { return forward.LogBase(d, base) },
		func(n reverse.Node) reverse.Node { return reverse.LogBase(n, base) })
}

// Sqrt returns the square root of x, which must be non-negative.
func Sqrt[T Number](x T) T { return apply(x, scalar.Sqrt, forward.Sqrt, reverse.Sqrt) }

// Logistic returns 1/(1+e**-x).
func Logistic[T Number](x T) T {
	return apply(x, scalar.Logistic, forward.Logistic, reverse.Logistic)
}
