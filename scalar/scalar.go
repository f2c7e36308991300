// Package scalar provides the elementary math primitives shared by both
// differentiation engines.
//
// Every function operates on plain float64 values and enforces the domain
// preconditions of the corresponding derivative in one place, so the forward
// and reverse engines inherit an identical precondition set. Violations are
// programming errors in the expression being differentiated and panic with a
// *DomainError.
package scalar

import (
	"fmt"
	"math"
)

// cosEps bounds |cos(x)| below which 1/cos²(x) is treated as undefined.
const cosEps = 1e-8

// DomainError reports a mathematically undefined operation, such as the
// logarithm of a non-positive number.
type DomainError struct {
	Op     string  // Operation that was attempted, e.g. "Log".
	Arg    float64 // Offending argument value.
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("scalar: %s undefined for %v: %s", e.Op, e.Arg, e.Reason)
}

// Sin returns the sine of x.
func Sin(x float64) float64 { return math.Sin(x) }

// Cos returns the cosine of x.
func Cos(x float64) float64 { return math.Cos(x) }

// Tan returns the tangent of x.
//
// Tan panics with a *DomainError when cos(x) is numerically indistinguishable
// from zero, since the derivative 1/cos²(x) is undefined there.
func Tan(x float64) float64 {
	if math.Abs(math.Cos(x)) < cosEps {
		panic(&DomainError{Op: "Tan", Arg: x, Reason: "cos(x) vanishes"})
	}
	return math.Tan(x)
}

// Sinh returns the hyperbolic sine of x.
func Sinh(x float64) float64 { return math.Sinh(x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x float64) float64 { return math.Cosh(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 { return math.Tanh(x) }

// Asin returns the inverse sine of x.
//
// Asin panics with a *DomainError unless |x| < 1; the derivative
// 1/sqrt(1-x²) is undefined at the endpoints.
func Asin(x float64) float64 {
	if math.Abs(x) >= 1 {
		panic(&DomainError{Op: "Asin", Arg: x, Reason: "|x| must be < 1"})
	}
	return math.Asin(x)
}

// Acos returns the inverse cosine of x.
//
// Acos panics with a *DomainError unless |x| < 1.
func Acos(x float64) float64 {
	if math.Abs(x) >= 1 {
		panic(&DomainError{Op: "Acos", Arg: x, Reason: "|x| must be < 1"})
	}
	return math.Acos(x)
}

// Atan returns the inverse tangent of x.
func Atan(x float64) float64 { return math.Atan(x) }

// Exp returns e**x.
func Exp(x float64) float64 { return math.Exp(x) }

// Log returns the natural logarithm of x.
//
// Log panics with a *DomainError for x <= 0.
func Log(x float64) float64 {
	if x <= 0 {
		panic(&DomainError{Op: "Log", Arg: x, Reason: "x must be positive"})
	}
	return math.Log(x)
}

// LogBase returns the logarithm of x in the given base.
//
// LogBase panics with a *DomainError for x <= 0 or base <= 0.
func LogBase(x, base float64) float64 {
	if base <= 0 {
		panic(&DomainError{Op: "LogBase", Arg: base, Reason: "base must be positive"})
	}
	return Log(x) / math.Log(base)
}

// Sqrt returns the square root of x.
//
// Sqrt panics with a *DomainError for x < 0.
func Sqrt(x float64) float64 {
	if x < 0 {
		panic(&DomainError{Op: "Sqrt", Arg: x, Reason: "x must be non-negative"})
	}
	return math.Sqrt(x)
}

// Logistic returns 1/(1+e**-x).
func Logistic(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Pow returns x**p for a constant exponent p.
//
// Pow panics with a *DomainError for a negative base with a fractional
// exponent (the result would be complex) and for a zero base with p < 1
// (the derivative p*x**(p-1) divides by zero).
func Pow(x, p float64) float64 {
	if x < 0 && p != math.Trunc(p) {
		panic(&DomainError{Op: "Pow", Arg: x, Reason: fmt.Sprintf("fractional power %v of a negative base", p)})
	}
	if x == 0 && p < 1 {
		panic(&DomainError{Op: "Pow", Arg: x, Reason: fmt.Sprintf("zero base raised to power %v < 1", p)})
	}
	return math.Pow(x, p)
}
