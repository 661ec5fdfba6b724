package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/reaktor/internal/reactor"
)

// Solution is a read-only view over the sampled trajectory: one row per
// output time, columns in reactor.State component order. Every accessor
// returns a copy; the underlying grid cannot be mutated through a Solution.
type Solution struct {
	t    []float64
	grid *mat.Dense
}

func NewSolution(t []float64, grid *mat.Dense) *Solution {
	return &Solution{t: t, grid: grid}
}

// Len is the number of sampled time points.
func (s *Solution) Len() int { return len(s.t) }

// T returns the output time grid.
func (s *Solution) T() []float64 {
	return append([]float64(nil), s.t...)
}

// Array returns a copy of the rows x StateDim result grid.
func (s *Solution) Array() *mat.Dense {
	return mat.DenseCopyOf(s.grid)
}

// At returns the full state at sample index i.
func (s *Solution) At(i int) reactor.State {
	return reactor.FromArray(mat.Row(nil, i, s.grid))
}

func (s *Solution) column(j int) []float64 {
	return mat.Col(nil, j, s.grid)
}

// NeutronPopulation is the total power series.
func (s *Solution) NeutronPopulation() []float64 {
	return s.column(reactor.CompNeutronPopulation)
}

// PrecursorDensity returns the time series of the ith precursor group.
// Groups are 1-indexed to match the usual c_i notation.
func (s *Solution) PrecursorDensity(i int) ([]float64, error) {
	if i < 1 || i > reactor.PrecursorGroups {
		return nil, fmt.Errorf("%w: %d", ErrPrecursorIndex, i)
	}
	return s.column(reactor.CompPrecursorDensity1 + i - 1), nil
}

// PrecursorDensities returns all six precursor group series as a
// rows x PrecursorGroups block, groups in column order c1..c6.
func (s *Solution) PrecursorDensities() *mat.Dense {
	rows, _ := s.grid.Dims()
	block := s.grid.Slice(0, rows, reactor.CompPrecursorDensity1,
		reactor.CompPrecursorDensity1+reactor.PrecursorGroups)
	return mat.DenseCopyOf(block)
}

func (s *Solution) TempMod() []float64     { return s.column(reactor.CompTempMod) }
func (s *Solution) TempFuel() []float64    { return s.column(reactor.CompTempFuel) }
func (s *Solution) RhoFuelTemp() []float64 { return s.column(reactor.CompRhoFuelTemp) }
func (s *Solution) RhoModTemp() []float64  { return s.column(reactor.CompRhoModTemp) }
func (s *Solution) DrumAngle() []float64   { return s.column(reactor.CompDrumAngle) }
func (s *Solution) RhoConDrum() []float64  { return s.column(reactor.CompRhoConDrum) }

// Series returns a named series by its CSV column name. Unknown names
// return an error; precursor groups are addressed as c1..c6.
func (s *Solution) Series(name string) ([]float64, error) {
	switch name {
	case "power":
		return s.NeutronPopulation(), nil
	case "c1", "c2", "c3", "c4", "c5", "c6":
		return s.PrecursorDensity(int(name[1] - '0'))
	case "temp_mod":
		return s.TempMod(), nil
	case "temp_fuel":
		return s.TempFuel(), nil
	case "rho_fuel_temp":
		return s.RhoFuelTemp(), nil
	case "rho_mod_temp":
		return s.RhoModTemp(), nil
	case "drum_angle":
		return s.DrumAngle(), nil
	case "rho_con_drum":
		return s.RhoConDrum(), nil
	}
	return nil, fmt.Errorf("solver: unknown series %q", name)
}

// SeriesNames lists the series understood by Series, in column order.
func SeriesNames() []string {
	return []string{"power", "c1", "c2", "c3", "c4", "c5", "c6",
		"temp_mod", "temp_fuel", "rho_fuel_temp", "rho_mod_temp",
		"drum_angle", "rho_con_drum"}
}
