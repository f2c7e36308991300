// Package grad computes exact derivatives of scalar functions by automatic
// differentiation.
//
// Two engines are provided:
//
//   - grad/forward propagates a value together with a derivative vector
//     through every operation (dual numbers); cost scales with the number of
//     inputs.
//   - grad/reverse records a computation graph during the forward evaluation
//     and computes every input's gradient in one memoized backward sweep;
//     cost scales with the number of outputs.
//
// This package holds the elementary function catalogue shared by both. Each
// function is generic over plain float64, forward.Dual and reverse.Node and
// returns the same type it was given, so numeric code can be written once
// and differentiated with either engine:
//
//	func rosenbrockTerm[T grad.Number](x T) T {
//		return grad.Exp(grad.Sin(x))
//	}
//
//	rosenbrockTerm(1.5)                  // plain evaluation
//	rosenbrockTerm(forward.New(1.5))     // value + derivative
//	rosenbrockTerm(g.Var(1.5))           // graph node for a backward pass
package grad
