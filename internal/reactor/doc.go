// Package reactor defines the reactor state model and the physics that
// drives it.
//
//   - [State]: the instantaneous reactor condition (neutron population,
//     six delayed-neutron precursor groups, fuel/moderator temperatures,
//     reactivity feedback components, control-drum angle), with exact
//     to/from flat-array conversion for the integrator
//   - [Coefficients]: the immutable constants bundle for one run
//   - derivative functions: point kinetics ([TotalNeutronDeriv],
//     [DelayNeutronDeriv]), lumped thermal transport ([ModTempDeriv],
//     [FuelTempDeriv]) and the reactivity feedback laws with their
//     analytic time-derivatives
//
// All functions are pure: identical inputs give identical outputs, which
// the correctness tests rely on. Invalid physical inputs (zero period,
// zero mass) are not validated; they produce IEEE Inf/NaN that propagate
// through the integration rather than raising errors.
package reactor
