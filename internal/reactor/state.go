package reactor

// Component indices into the flattened state array. The order is fixed:
// the integrator, the Solution grid and the CSV store all share it.
const (
	CompNeutronPopulation = iota
	CompPrecursorDensity1
	CompPrecursorDensity2
	CompPrecursorDensity3
	CompPrecursorDensity4
	CompPrecursorDensity5
	CompPrecursorDensity6
	CompTempMod
	CompTempFuel
	CompRhoFuelTemp
	CompRhoModTemp
	CompDrumAngle
	CompRhoConDrum

	StateDim = 13
)

// PrecursorGroups is the number of delayed-neutron precursor groups.
const PrecursorGroups = 6

// State is the instantaneous condition of the reactor. It is a value
// type: every integration step produces a new State.
type State struct {
	NeutronPopulation  float64
	PrecursorDensities [PrecursorGroups]float64
	TempMod            float64
	TempFuel           float64
	RhoFuelTemp        float64
	RhoModTemp         float64
	DrumAngle          float64
	RhoConDrum         float64
}

// ToArray flattens the state in component order for the integrator.
func (s State) ToArray() []float64 {
	a := make([]float64, StateDim)
	a[CompNeutronPopulation] = s.NeutronPopulation
	copy(a[CompPrecursorDensity1:CompTempMod], s.PrecursorDensities[:])
	a[CompTempMod] = s.TempMod
	a[CompTempFuel] = s.TempFuel
	a[CompRhoFuelTemp] = s.RhoFuelTemp
	a[CompRhoModTemp] = s.RhoModTemp
	a[CompDrumAngle] = s.DrumAngle
	a[CompRhoConDrum] = s.RhoConDrum
	return a
}

// FromArray is the inverse of ToArray.
func FromArray(a []float64) State {
	var s State
	s.NeutronPopulation = a[CompNeutronPopulation]
	copy(s.PrecursorDensities[:], a[CompPrecursorDensity1:CompTempMod])
	s.TempMod = a[CompTempMod]
	s.TempFuel = a[CompTempFuel]
	s.RhoFuelTemp = a[CompRhoFuelTemp]
	s.RhoModTemp = a[CompRhoModTemp]
	s.DrumAngle = a[CompDrumAngle]
	s.RhoConDrum = a[CompRhoConDrum]
	return s
}

// TotalReactivity is the sum of the three feedback contributions.
func (s State) TotalReactivity() float64 {
	return s.RhoFuelTemp + s.RhoModTemp + s.RhoConDrum
}
