package control

import (
	"math"

	"github.com/san-kum/reaktor/internal/reactor"
)

// PowerPID drives the neutron population toward Target by modulating drum
// speed. The output is clamped to +-MaxSpeed so the drums stay within
// mechanical limits. The error signal is normalized by Target to keep the
// gains unit-free across power levels.
type PowerPID struct {
	Kp       float64
	Ki       float64
	Kd       float64
	Target   float64
	MaxSpeed float64
	integral float64
	prevErr  float64
	prevT    float64
	first    bool
}

func NewPowerPID(kp, ki, kd, target, maxSpeed float64) *PowerPID {
	return &PowerPID{
		Kp:       kp,
		Ki:       ki,
		Kd:       kd,
		Target:   target,
		MaxSpeed: maxSpeed,
		first:    true,
	}
}

func (p *PowerPID) DrumSpeed(t float64, s reactor.State) float64 {
	err := (p.Target - s.NeutronPopulation) / p.Target

	if p.first {
		p.prevErr = err
		p.prevT = t
		p.first = false
		return p.clamp(p.Kp * err)
	}

	dt := t - p.prevT
	if dt <= 0 {
		// The adaptive integrator may re-evaluate at earlier times
		// after a rejected step; fall back to the proportional term.
		return p.clamp(p.Kp * err)
	}

	p.integral += err * dt
	derivative := (err - p.prevErr) / dt

	p.prevErr = err
	p.prevT = t

	return p.clamp(p.Kp*err + p.Ki*p.integral + p.Kd*derivative)
}

func (p *PowerPID) clamp(speed float64) float64 {
	if p.MaxSpeed <= 0 {
		return speed
	}
	return math.Max(-p.MaxSpeed, math.Min(p.MaxSpeed, speed))
}
