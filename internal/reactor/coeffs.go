package reactor

// Coefficients is the constants bundle for one simulation run: kinetics
// parameters and thermal-hydraulic properties. It is passed by value and
// never changes while the solver is running.
type Coefficients struct {
	// BetaVector holds the delayed-neutron fraction of each precursor
	// group; PrecursorConstants the matching decay constants [1/s].
	BetaVector         [PrecursorGroups]float64
	PrecursorConstants [PrecursorGroups]float64

	TotalBeta float64 // total delayed-neutron fraction
	Period    float64 // effective neutron generation time [s]

	HeatCoeff   float64 // fuel-to-moderator heat transfer coefficient [J/K/s]
	MassMod     float64 // moderator mass [kg]
	HeatCapMod  float64 // moderator specific heat capacity [J/kg/K]
	MassFlow    float64 // coolant mass flow rate [kg/s]
	MassFuel    float64 // fuel mass [kg]
	HeatCapFuel float64 // fuel specific heat capacity [J/kg/K]
	TempIn      float64 // inlet coolant temperature [K]
}
