package control

import (
	"testing"

	"github.com/san-kum/reaktor/internal/reactor"
)

func TestNone(t *testing.T) {
	var r None
	if got := r.DrumSpeed(1.5, reactor.State{NeutronPopulation: 4000}); got != 0 {
		t.Errorf("expected zero speed, got %f", got)
	}
}

func TestConstant(t *testing.T) {
	r := NewConstant(-2.5)
	if got := r.DrumSpeed(0, reactor.State{}); got != -2.5 {
		t.Errorf("expected -2.5, got %f", got)
	}
	if got := r.DrumSpeed(100, reactor.State{}); got != -2.5 {
		t.Errorf("speed should not depend on time, got %f", got)
	}
}

func TestSchedule(t *testing.T) {
	r := NewSchedule(
		Segment{Until: 1.0, Speed: 2.0},
		Segment{Until: 3.0, Speed: -1.0},
	)

	cases := []struct {
		t    float64
		want float64
	}{
		{0.0, 2.0},
		{0.99, 2.0},
		{1.0, -1.0},
		{2.5, -1.0},
		{3.0, 0.0},
		{10.0, 0.0},
	}
	for _, c := range cases {
		if got := r.DrumSpeed(c.t, reactor.State{}); got != c.want {
			t.Errorf("t=%.2f: expected %f, got %f", c.t, c.want, got)
		}
	}
}

func TestPowerPIDSign(t *testing.T) {
	r := NewPowerPID(10.0, 0.1, 0.0, 4000, 5.0)

	// Below target: drums rotate outward (positive speed, adds worth).
	if got := r.DrumSpeed(0, reactor.State{NeutronPopulation: 3000}); got <= 0 {
		t.Errorf("expected positive speed below target, got %f", got)
	}

	r = NewPowerPID(10.0, 0.1, 0.0, 4000, 5.0)
	if got := r.DrumSpeed(0, reactor.State{NeutronPopulation: 5000}); got >= 0 {
		t.Errorf("expected negative speed above target, got %f", got)
	}
}

func TestPowerPIDClamp(t *testing.T) {
	r := NewPowerPID(1e6, 0, 0, 4000, 5.0)
	if got := r.DrumSpeed(0, reactor.State{NeutronPopulation: 0}); got != 5.0 {
		t.Errorf("expected clamp at 5.0, got %f", got)
	}
}

func TestPowerPIDAtTarget(t *testing.T) {
	r := NewPowerPID(10.0, 0.1, 5.0, 4000, 5.0)
	if got := r.DrumSpeed(0, reactor.State{NeutronPopulation: 4000}); got != 0 {
		t.Errorf("expected zero speed at target, got %f", got)
	}
}
