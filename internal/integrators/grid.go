package integrators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Options bounds the adaptive grid driver.
type Options struct {
	Tolerance   float64 // scaled local error tolerance
	InitialStep float64 // first trial step; 0 picks one from the grid spacing
	MinStep     float64 // floor below which steps are accepted regardless of error
	MaxStep     float64 // ceiling on the step size; 0 means unbounded
	MaxSteps    int     // derivative-evaluation step budget; 0 means unbounded
}

func DefaultOptions() Options {
	return Options{
		Tolerance: 1e-8,
		MinStep:   1e-12,
		MaxSteps:  5_000_000,
	}
}

// Solve integrates dy/dt = f(t, y) from ts[0] and returns the state at
// every requested output time, one row per time point. Steps are chosen
// adaptively between output times and clamped so each grid point is hit
// exactly.
//
// Non-finite error estimates (a NaN or Inf state) are accepted with the
// current step size so that poisoned values propagate into the output
// instead of stalling the step controller.
func Solve(f DerivFunc, y0 []float64, ts []float64, opts Options) (*mat.Dense, error) {
	if len(ts) < 2 {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			return nil, ErrNonMonotonic
		}
	}

	grid := mat.NewDense(len(ts), len(y0), nil)
	grid.SetRow(0, y0)

	y := append([]float64(nil), y0...)
	t := ts[0]

	dt := opts.InitialStep
	if dt <= 0 {
		dt = (ts[1] - ts[0]) / 100
	}

	stepper := NewDopri()
	steps := 0

	for i := 1; i < len(ts); i++ {
		target := ts[i]

		for t < target {
			if opts.MaxSteps > 0 && steps >= opts.MaxSteps {
				return nil, fmt.Errorf("%w after %d steps at t=%g", ErrStepLimit, steps, t)
			}

			h := dt
			if opts.MaxStep > 0 && h > opts.MaxStep {
				h = opts.MaxStep
			}
			clamped := false
			if t+h >= target {
				h = target - t
				clamped = true
			}

			yNew, errMax := stepper.attempt(f, y, t, h)
			steps++

			errRatio := errMax / opts.Tolerance
			if isFinite(errRatio) && errRatio > 1 && h > opts.MinStep {
				dt = math.Max(stepper.nextStep(h, errRatio), opts.MinStep)
				continue
			}

			y = yNew
			if clamped {
				t = target
				// Keep the pre-clamp step size; the short landing
				// step says nothing about the error behavior.
			} else {
				t += h
				if isFinite(errRatio) {
					dt = math.Max(stepper.nextStep(h, errRatio), opts.MinStep)
				}
			}
		}

		grid.SetRow(i, y)
	}

	return grid, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
