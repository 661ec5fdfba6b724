package reactor

import "math"

// Calibrated feedback coefficients. Reactivities are expressed in dollars
// and scaled by the total delayed-neutron fraction so that the returned
// values carry units of dk.
const (
	// Fuel (Doppler) feedback: quadratic fit around the reference
	// temperature, dollars per K and per K^2.
	fuelTempRef       = 500.0
	fuelTempCoeff     = -1.2e-3
	fuelTempCoeffQuad = -8.0e-7

	// Moderator feedback: linear fit, dollars per K.
	modTempRef   = 350.0
	modTempCoeff = -5.0e-4

	// Control drum: integral worth over the full 180 degree swing,
	// dollars. Worth follows the usual (1 - cos) insertion curve.
	drumWorth = 6.0

	degToRad = math.Pi / 180.0
)

// TotalNeutronDeriv computes dn/dt of the point-kinetics equation:
//
//	dn/dt = ((rho - beta) / period) * n + sum_i lambda_i * c_i
//
// where rho is the sum of the three reactivity feedback terms. The caller
// is responsible for period != 0; a zero period yields Inf/NaN, which is
// propagated, not trapped.
func TotalNeutronDeriv(beta, period, power float64, precursorConstants, precursorDensity [PrecursorGroups]float64, rhoFuelTemp, rhoModTemp, rhoConDrum float64) float64 {
	rho := rhoFuelTemp + rhoModTemp + rhoConDrum
	d := ((rho - beta) / period) * power
	for i := 0; i < PrecursorGroups; i++ {
		d += precursorConstants[i] * precursorDensity[i]
	}
	return d
}

// DelayNeutronDeriv computes dc_i/dt = beta_i * n / period - lambda_i * c_i
// elementwise over the six precursor groups.
func DelayNeutronDeriv(betaVector [PrecursorGroups]float64, period, power float64, precursorConstants, precursorDensity [PrecursorGroups]float64) [PrecursorGroups]float64 {
	var d [PrecursorGroups]float64
	for i := 0; i < PrecursorGroups; i++ {
		d[i] = betaVector[i]*power/period - precursorConstants[i]*precursorDensity[i]
	}
	return d
}

// ModTempDeriv computes the moderator temperature rate:
//
//	dT_mod/dt = (h/(M*C)) * (T_fuel - T_mod) - (2*W/M) * (T_mod - T_in)
//
// The factor 2 on the flow term is a fixed modeling constant.
func ModTempDeriv(heatCoeff, massMod, heatCapMod, massFlow, tempFuel, tempMod, tempIn float64) float64 {
	return (heatCoeff/(massMod*heatCapMod))*(tempFuel-tempMod) - (2*massFlow/massMod)*(tempMod-tempIn)
}

// FuelTempDeriv computes the fuel temperature rate:
//
//	dT_fuel/dt = n/(M*C) - (h/(M*C)) * (T_fuel - T_mod)
func FuelTempDeriv(power, massFuel, heatCapFuel, heatCoeff, tempFuel, tempMod float64) float64 {
	return power/(massFuel*heatCapFuel) - (heatCoeff/(massFuel*heatCapFuel))*(tempFuel-tempMod)
}

// TempFuelReactivity is the fuel-temperature (Doppler) feedback law.
func TempFuelReactivity(beta, tempFuel float64) float64 {
	dT := tempFuel - fuelTempRef
	return beta * (fuelTempCoeff*dT + fuelTempCoeffQuad*dT*dT)
}

// TempFuelReactivityDeriv is the analytic time-derivative of
// TempFuelReactivity: d(rho)/dT_fuel chained through FuelTempDeriv.
func TempFuelReactivityDeriv(power, beta, massFuel, heatCapFuel, heatCoeff, tempFuel, tempMod float64) float64 {
	dT := tempFuel - fuelTempRef
	slope := beta * (fuelTempCoeff + 2*fuelTempCoeffQuad*dT)
	return slope * FuelTempDeriv(power, massFuel, heatCapFuel, heatCoeff, tempFuel, tempMod)
}

// TempModReactivity is the moderator-temperature feedback law.
func TempModReactivity(beta, tempMod float64) float64 {
	return beta * modTempCoeff * (tempMod - modTempRef)
}

// TempModReactivityDeriv chains the moderator law through ModTempDeriv.
func TempModReactivityDeriv(beta, heatCoeff, massMod, heatCapMod, massFlow, tempFuel, tempMod, tempIn float64) float64 {
	return beta * modTempCoeff * ModTempDeriv(heatCoeff, massMod, heatCapMod, massFlow, tempFuel, tempMod, tempIn)
}

// ConDrumReactivity is the integral drum worth at the given angle
// [degrees]. Zero at full insertion, beta*drumWorth at 180 degrees.
func ConDrumReactivity(beta, drumAngle float64) float64 {
	return beta * (drumWorth / 2) * (1 - math.Cos(drumAngle*degToRad))
}

// ConDrumReactivityDeriv is the drum worth rate for the given drum speed
// [degrees/s].
func ConDrumReactivityDeriv(beta, drumSpeed, drumAngle float64) float64 {
	return beta * (drumWorth / 2) * math.Sin(drumAngle*degToRad) * degToRad * drumSpeed
}
