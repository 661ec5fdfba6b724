// Package integrators provides numerical ODE stepping for initial value
// problems of the form dy/dt = f(t, y).
//
// The solver core depends only on [Solve]; the concrete steppers ([RK4],
// [Dopri]) are interchangeable behind it.
package integrators

import "errors"

// DerivFunc evaluates the time-derivative of the state vector. It must be
// stateless: the adaptive driver calls it at arbitrary, non-monotonic
// times while searching for an acceptable step size.
type DerivFunc func(t float64, y []float64) []float64

var (
	// ErrTooFewPoints indicates an output grid with fewer than two points.
	ErrTooFewPoints = errors.New("integrators: need at least two output time points")

	// ErrNonMonotonic indicates an output grid that is not strictly increasing.
	ErrNonMonotonic = errors.New("integrators: output times must be strictly increasing")

	// ErrStepLimit indicates the adaptive driver exceeded its step budget.
	ErrStepLimit = errors.New("integrators: step limit exceeded")
)
