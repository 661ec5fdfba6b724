// Package control provides drum speed policies for the reactor solver.
//
// A [Rule] is consulted once per derivative evaluation and returns the
// control-drum angular speed in degrees per second. The solver holds only
// the interface, so policies can be swapped freely (including in tests).
package control

import "github.com/san-kum/reaktor/internal/reactor"

type Rule interface {
	DrumSpeed(t float64, s reactor.State) float64
}

// None keeps the drums static.
type None struct{}

func (None) DrumSpeed(t float64, s reactor.State) float64 { return 0 }
