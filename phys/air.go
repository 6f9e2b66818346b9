// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phys implements closed-form formulae and unit conversions used to reduce flow-bench
// data. All functions work in SI units (m, m², m³/s, Pa, K) unless the name says otherwise.
package phys

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	Gamma = 1.4     // ratio of specific heats of air (kappa)
	Rair  = 287.058 // specific gas constant of dry air [J/(kg・K)]
)

// Air holds the state of the air used for density and speed of sound corrections
type Air struct {
	Θ    float64 // temperature [K]
	Patm float64 // absolute (total) pressure [Pa]
	RH   float64 // relative humidity [0..1]; 0 skips water vapour
}

// Init initialises data with the standard bench reference: 20°C and 1 atm, dry
func (o *Air) Init() {
	o.Θ = 293.15     // [K]  20°C
	o.Patm = 101325. // [Pa]
	o.RH = 0         // [-]
}

// Rho returns the density of this air state
func (o Air) Rho() float64 {
	return AirDensity(o.Patm, o.Θ, o.RH)
}

// SoundSpeed returns the speed of sound at this air state
func (o Air) SoundSpeed() float64 {
	return SpeedOfSound(o.Θ)
}

// PsatWater computes the saturation pressure of water vapour [Pa] using the Tetens formula.
// Note: valid for about 0..50°C which is more than enough for flow-bench rooms
func PsatWater(T float64) float64 {
	Tc := T - 273.15
	return 610.78 * math.Exp((17.27*Tc)/(Tc+237.3))
}

// AirDensity computes the density of moist air [kg/m³]
//
//	ρ = (p_tot - RH・psat(T)) / (R・T)
//
// Note: the dry-air partial pressure is clamped to 1 Pa to avoid negative densities
func AirDensity(pTot, T, RH float64) float64 {
	pv := RH * PsatWater(T)
	pdry := math.Max(1.0, pTot-pv)
	return pdry / (Rair * T)
}

// SpeedOfSound computes a = sqrt(γ・R・T) [m/s]
func SpeedOfSound(T float64) float64 {
	return math.Sqrt(Gamma * Rair * T)
}

// checkTemp checks that the absolute temperature is physical
func checkTemp(T float64) error {
	if T <= 0 {
		return chk.Err("temperature must be positive (T > 0 K). T = %g is invalid", T)
	}
	return nil
}
