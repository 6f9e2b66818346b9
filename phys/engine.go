// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import "github.com/cpmech/gosl/chk"

// EngineVolumetricFlow computes the 4-stroke engine air demand [m³/s]
//
//	Q = (Vd・RPM/2)/60・VE     Vd in m³
func EngineVolumetricFlow(displL, rpm, ve float64) (float64, error) {
	if displL <= 0 || rpm < 0 || ve < 0 {
		return 0, chk.Err("engine flow requires displ > 0, rpm ≥ 0 and VE ≥ 0. displ = %g L, rpm = %g, VE = %g", displL, rpm, ve)
	}
	vd := displL * LitreToM3
	return (vd * rpm / 2.0) / 60.0 * ve, nil
}

// RpmLimitedByFlow inverts EngineVolumetricFlow for the speed at which the engine demands q
//
//	RPM = (Q・60・2) / (Vd・VE)
func RpmLimitedByFlow(q, displL, ve float64) (float64, error) {
	if q <= 0 || displL <= 0 || ve <= 0 {
		return 0, chk.Err("flow-limited rpm requires Q > 0, displ > 0 and VE > 0. Q = %g, displ = %g L, VE = %g", q, displL, ve)
	}
	vd := displL * LitreToM3
	return (q * 60.0 * 2.0) / (vd * ve), nil
}

// RpmFromCSA computes the speed implied by a cross-section and a target mean velocity
//
//	Q = A・v   =>   RPM = (Q・60・2) / (Vd・VE)
func RpmFromCSA(aAvg, displL, ve, vTarget float64) (float64, error) {
	if aAvg <= 0 || displL <= 0 || ve <= 0 || vTarget <= 0 {
		return 0, chk.Err("CSA rpm requires A > 0, displ > 0, VE > 0 and v > 0. A = %g, displ = %g L, VE = %g, v = %g", aAvg, displL, ve, vTarget)
	}
	return RpmLimitedByFlow(aAvg*vTarget, displL, ve)
}

// MachAtMinCSA computes the Mach number at the minimum cross-section for flow q
func MachAtMinCSA(q, aMin, T float64) (float64, error) {
	v, err := VelocityFromFlow(q, aMin)
	if err != nil {
		return 0, err
	}
	return MachFromVelocity(v, T)
}

// HeaderCSARequired computes the exhaust header cross-section for a target gas velocity
func HeaderCSARequired(qExh, vTarget float64) (float64, error) {
	if vTarget <= 0 {
		return 0, chk.Err("header CSA requires a positive target velocity. v = %g", vTarget)
	}
	return qExh / vTarget, nil
}
