package integrators

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/floats"
)

func TestSolveExponentialDecay(t *testing.T) {
	g := NewWithT(t)

	f := func(t float64, y []float64) []float64 {
		return []float64{-y[0]}
	}

	ts := make([]float64, 11)
	floats.Span(ts, 0, 5)

	grid, err := Solve(f, []float64{1.0}, ts, DefaultOptions())
	g.Expect(err).NotTo(HaveOccurred())

	rows, cols := grid.Dims()
	g.Expect(rows).To(Equal(len(ts)))
	g.Expect(cols).To(Equal(1))

	for i, ti := range ts {
		g.Expect(grid.At(i, 0)).To(BeNumerically("~", math.Exp(-ti), 1e-6), "t=%g", ti)
	}
}

func TestSolveFirstRowIsInitialState(t *testing.T) {
	f := func(t float64, y []float64) []float64 {
		return []float64{y[1], -y[0]}
	}

	y0 := []float64{0.3, -1.7}
	grid, err := Solve(f, y0, []float64{0, 1, 2}, DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if grid.At(0, 0) != y0[0] || grid.At(0, 1) != y0[1] {
		t.Errorf("first row should equal initial state, got [%v %v]", grid.At(0, 0), grid.At(0, 1))
	}
}

func TestSolveGridValidation(t *testing.T) {
	f := func(t float64, y []float64) []float64 { return []float64{0} }

	_, err := Solve(f, []float64{1}, []float64{0}, DefaultOptions())
	if !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}

	_, err = Solve(f, []float64{1}, []float64{0, 2, 1}, DefaultOptions())
	if !errors.Is(err, ErrNonMonotonic) {
		t.Errorf("expected ErrNonMonotonic, got %v", err)
	}
}

func TestSolveStepLimit(t *testing.T) {
	f := func(t float64, y []float64) []float64 { return []float64{-y[0]} }

	opts := DefaultOptions()
	opts.MaxSteps = 3

	_, err := Solve(f, []float64{1}, []float64{0, 100}, opts)
	if !errors.Is(err, ErrStepLimit) {
		t.Errorf("expected ErrStepLimit, got %v", err)
	}
}

func TestSolvePropagatesNaN(t *testing.T) {
	// Division blowing up mid-span must poison the tail of the grid, not
	// hang the step controller or raise an error.
	zero := 0.0
	f := func(t float64, y []float64) []float64 {
		return []float64{y[0] / zero * zero}
	}

	grid, err := Solve(f, []float64{1}, []float64{0, 1, 2}, DefaultOptions())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !math.IsNaN(grid.At(2, 0)) {
		t.Errorf("expected NaN to propagate, got %v", grid.At(2, 0))
	}
}
