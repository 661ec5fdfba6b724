// Package solver integrates the coupled point-kinetics and thermal
// feedback equations over a time span and packages the result.
package solver

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/reaktor/internal/control"
	"github.com/san-kum/reaktor/internal/integrators"
	"github.com/san-kum/reaktor/internal/reactor"
)

// Problem describes one simulation run: the constants bundle, the initial
// physical conditions, the drum control rule and the requested time grid.
//
// Physical validity of the coefficients (non-zero period, masses, heat
// capacities) is the caller's responsibility; invalid values propagate as
// IEEE Inf/NaN through the output rather than raising errors.
type Problem struct {
	Coefficients reactor.Coefficients

	PowerInitial            float64
	PrecursorDensityInitial [reactor.PrecursorGroups]float64
	TempModInitial          float64
	TempFuelInitial         float64
	DrumAngleInitial        float64

	Rule control.Rule

	TStart   float64
	TMax     float64
	NumIters int
}

func (p Problem) validate() error {
	if p.TMax <= p.TStart {
		return fmt.Errorf("%w: [%g, %g]", ErrTimeSpan, p.TStart, p.TMax)
	}
	if p.NumIters < 2 {
		return fmt.Errorf("%w: got %d", ErrSampleCount, p.NumIters)
	}
	return nil
}

func (p Problem) rule() control.Rule {
	if p.Rule == nil {
		return control.None{}
	}
	return p.Rule
}

// InitialState assembles the full initial state, computing the three
// initial reactivities from the feedback laws.
func (p Problem) InitialState() reactor.State {
	c := p.Coefficients
	return reactor.State{
		NeutronPopulation:  p.PowerInitial,
		PrecursorDensities: p.PrecursorDensityInitial,
		TempMod:            p.TempModInitial,
		TempFuel:           p.TempFuelInitial,
		RhoFuelTemp:        reactor.TempFuelReactivity(c.TotalBeta, p.TempFuelInitial),
		RhoModTemp:         reactor.TempModReactivity(c.TotalBeta, p.TempModInitial),
		DrumAngle:          p.DrumAngleInitial,
		RhoConDrum:         reactor.ConDrumReactivity(c.TotalBeta, p.DrumAngleInitial),
	}
}

// Deriv returns the assembled state-derivative closure consumed by the
// integrator. The closure keeps no state of its own; the control rule is
// consulted exactly once per evaluation.
func (p Problem) Deriv() integrators.DerivFunc {
	c := p.Coefficients
	rule := p.rule()

	return func(t float64, y []float64) []float64 {
		s := reactor.FromArray(y)

		dndt := reactor.TotalNeutronDeriv(c.TotalBeta, c.Period, s.NeutronPopulation,
			c.PrecursorConstants, s.PrecursorDensities,
			s.RhoFuelTemp, s.RhoModTemp, s.RhoConDrum)

		dcdt := reactor.DelayNeutronDeriv(c.BetaVector, c.Period, s.NeutronPopulation,
			c.PrecursorConstants, s.PrecursorDensities)

		dTmod := reactor.ModTempDeriv(c.HeatCoeff, c.MassMod, c.HeatCapMod, c.MassFlow,
			s.TempFuel, s.TempMod, c.TempIn)

		dTfuel := reactor.FuelTempDeriv(s.NeutronPopulation, c.MassFuel, c.HeatCapFuel,
			c.HeatCoeff, s.TempFuel, s.TempMod)

		dRhoFuel := reactor.TempFuelReactivityDeriv(s.NeutronPopulation, c.TotalBeta,
			c.MassFuel, c.HeatCapFuel, c.HeatCoeff, s.TempFuel, s.TempMod)

		dRhoMod := reactor.TempModReactivityDeriv(c.TotalBeta, c.HeatCoeff, c.MassMod,
			c.HeatCapMod, c.MassFlow, s.TempFuel, s.TempMod, c.TempIn)

		drumSpeed := rule.DrumSpeed(t, s)

		dRhoDrum := reactor.ConDrumReactivityDeriv(c.TotalBeta, drumSpeed, s.DrumAngle)

		deriv := reactor.State{
			NeutronPopulation:  dndt,
			PrecursorDensities: dcdt,
			TempMod:            dTmod,
			TempFuel:           dTfuel,
			RhoFuelTemp:        dRhoFuel,
			RhoModTemp:         dRhoMod,
			DrumAngle:          drumSpeed,
			RhoConDrum:         dRhoDrum,
		}
		return deriv.ToArray()
	}
}

// Solve integrates the problem and returns the sampled trajectory. The
// single evenly spaced time grid built here is both handed to the
// integrator and stored in the Solution, so the two can never disagree.
func Solve(p Problem) (*Solution, error) {
	return SolveWithOptions(p, integrators.DefaultOptions())
}

// SolveWithOptions is Solve with explicit integrator options.
func SolveWithOptions(p Problem, opts integrators.Options) (*Solution, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	ts := make([]float64, p.NumIters)
	floats.Span(ts, p.TStart, p.TMax)

	grid, err := integrators.Solve(p.Deriv(), p.InitialState().ToArray(), ts, opts)
	if err != nil {
		return nil, fmt.Errorf("solver: integration failed: %w", err)
	}

	return NewSolution(ts, grid), nil
}
