// Package metrics computes summary figures over a finished solution.
package metrics

import (
	"math"

	"github.com/san-kum/reaktor/internal/solver"
)

// Summarize reduces a trajectory to its headline numbers: power extremes,
// deposited energy, peak temperatures and the final net reactivity.
func Summarize(sol *solver.Solution) map[string]float64 {
	ts := sol.T()
	power := sol.NeutronPopulation()

	m := map[string]float64{
		"peak_power":     maxOf(power),
		"avg_power":      meanOf(power),
		"energy":         trapezoid(ts, power),
		"peak_temp_fuel": maxOf(sol.TempFuel()),
		"peak_temp_mod":  maxOf(sol.TempMod()),
	}

	final := sol.At(sol.Len() - 1)
	m["final_power"] = final.NeutronPopulation
	m["final_reactivity"] = final.TotalReactivity()
	m["final_drum_angle"] = final.DrumAngle
	return m
}

func maxOf(xs []float64) float64 {
	max := math.Inf(-1)
	for _, x := range xs {
		max = math.Max(max, x)
	}
	return max
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// trapezoid integrates y over t with the trapezoidal rule.
func trapezoid(t, y []float64) float64 {
	sum := 0.0
	for i := 1; i < len(t); i++ {
		sum += 0.5 * (y[i] + y[i-1]) * (t[i] - t[i-1])
	}
	return sum
}
