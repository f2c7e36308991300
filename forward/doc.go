// Package forward implements forward-mode automatic differentiation with
// dual numbers.
//
// A Dual carries a value together with a derivative vector holding the
// partial derivatives with respect to each tracked independent variable.
// Every arithmetic operation returns a new Dual whose derivative vector is
// computed from the operands' vectors by the usual differentiation rules, so
// a single forward evaluation of an expression yields both its value and its
// exact gradient. The cost grows with the number of tracked variables, which
// makes forward mode the right tool for functions of few inputs.
//
// Usage:
//
//	// Seed two independent variables: x tracks axis 0, y tracks axis 1.
//	vars, _ := forward.FromSlice([]float64{2, 5})
//	x, y := vars[0], vars[1]
//
//	f := forward.Sin(x).Mul(y).AddScalar(3) // f = sin(x)*y + 3
//	f.Value() // sin(2)*5 + 3
//	f.Deriv() // [5*cos(2), sin(2)]
//
// Duals are immutable value objects; operations never mutate their operands.
// Combining two Duals with different derivative lengths is a programming
// error and panics with a *DimensionError. Mathematically undefined
// operations panic with a *scalar.DomainError.
package forward
