// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// FlowReferenced converts a measured flow to reference conditions
//
//	Q* = Q・sqrt(Δp*/Δp)・sqrt(ρ/ρ*)
func FlowReferenced(q, dpMeas, rhoMeas, dpRef, rhoRef float64) (float64, error) {
	if dpMeas <= 0 || dpRef <= 0 || rhoMeas <= 0 || rhoRef <= 0 {
		return 0, chk.Err("pressure drops and densities must be positive. Δp = %g, ρ = %g, Δp* = %g, ρ* = %g", dpMeas, rhoMeas, dpRef, rhoRef)
	}
	return q * math.Sqrt(dpRef/dpMeas) * math.Sqrt(rhoMeas/rhoRef), nil
}

// FlowTo28 converts a measured flow to the 28" H₂O depression.
// Note: the reference air equals the measured air if ref == nil
func FlowTo28(q, dpMeasInH2O float64, meas Air, ref *Air) (float64, error) {
	rhoMeas := meas.Rho()
	rhoRef := rhoMeas
	if ref != nil {
		rhoRef = ref.Rho()
	}
	return FlowReferenced(q, InH2OToPa(dpMeasInH2O), rhoMeas, InH2OToPa(StdDpInH2O), rhoRef)
}

// Cd computes the discharge coefficient
//
//	Cd = Q / (A・sqrt(2Δp/ρ))
func Cd(q, aRef, dp, rho float64) (float64, error) {
	if q < 0 || aRef <= 0 || dp <= 0 || rho <= 0 {
		return 0, chk.Err("Cd requires Q ≥ 0, A > 0, Δp > 0 and ρ > 0. Q = %g, A = %g, Δp = %g, ρ = %g", q, aRef, dp, rho)
	}
	return q / (aRef * math.Sqrt(2.0*dp/rho)), nil
}

// CdSAE computes the SAE discharge coefficient, i.e. Cd evaluated at reference conditions
func CdSAE(qMeas, dpMeas, rhoMeas, aRef, dpRef, rhoRef float64) (float64, error) {
	qRef, err := FlowReferenced(qMeas, dpMeas, rhoMeas, dpRef, rhoRef)
	if err != nil {
		return 0, err
	}
	return Cd(qRef, aRef, dpRef, rhoRef)
}

// VelocityFromFlow computes the mean velocity across a section: V = Q/A
func VelocityFromFlow(q, area float64) (float64, error) {
	if area <= 0 {
		return 0, chk.Err("velocity requires a positive area. A = %g", area)
	}
	if q < 0 {
		return 0, chk.Err("velocity requires a non-negative flow. Q = %g", q)
	}
	return q / area, nil
}

// MachFromVelocity computes M = V / a(T)
func MachFromVelocity(v, T float64) (float64, error) {
	if err := checkTemp(T); err != nil {
		return 0, err
	}
	return v / SpeedOfSound(T), nil
}

// VelocityPitot computes the local velocity from a Pitot probe: V = C・sqrt(2Δp/ρ)
func VelocityPitot(dpPitot, rho, cProbe float64) (float64, error) {
	if dpPitot < 0 || rho <= 0 || cProbe <= 0 {
		return 0, chk.Err("Pitot velocity requires Δp ≥ 0, ρ > 0 and C > 0. Δp = %g, ρ = %g, C = %g", dpPitot, rho, cProbe)
	}
	return cProbe * math.Sqrt(2.0*dpPitot/rho), nil
}

// EIRatio computes the exhaust over intake flow ratio
func EIRatio(qExh, qInt float64) (float64, error) {
	if qInt <= 0 {
		return 0, chk.Err("E/I requires a positive intake flow. Q_int = %g", qInt)
	}
	return qExh / qInt, nil
}

// PercentChange computes 100・(after - before)/before
func PercentChange(after, before float64) (float64, error) {
	if before == 0 {
		return 0, chk.Err("percent change requires before ≠ 0")
	}
	return 100.0 * (after - before) / before, nil
}
