// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tune implements closed-form acoustic calculators for sizing intake and exhaust runners
// and plenums of 4-stroke engines
package tune

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/phys"
)

// DefaultEndCorr is the unflanged open-end correction factor: ΔL = 0.6・r
const DefaultEndCorr = 0.6

// EventFreq computes the intake event frequency of a 4-stroke cylinder: one event per 720°
//
//	f = rpm / 120
func EventFreq(rpm float64) (float64, error) {
	if rpm <= 0 {
		return 0, chk.Err("event frequency requires rpm > 0. rpm = %g", rpm)
	}
	return rpm / 120.0, nil
}

// QuarterWaveLength computes the physical pipe length tuned to frequency f at odd harmonic
// (2・order - 1)
//
//	L_eff = a・(2k-1) / (4f)
//	L     = max(0, L_eff - endCorr・r)
func QuarterWaveLength(a, f float64, order int, endCorr, r float64) (float64, error) {
	if a <= 0 || f <= 0 {
		return 0, chk.Err("quarter-wave length requires a > 0 and f > 0. a = %g, f = %g", a, f)
	}
	if order < 1 {
		return 0, chk.Err("harmonic order must be ≥ 1. order = %d", order)
	}
	Leff := a * float64(2*order-1) / (4.0 * f)
	return math.Max(0, Leff-endCorr*r), nil
}

// RpmFromQuarterWave inverts QuarterWaveLength
//
//	L_eff = L + endCorr・r
//	rpm   = 120・a・(2k-1) / (4・L_eff)
func RpmFromQuarterWave(a, L float64, order int, r, endCorr float64) (float64, error) {
	if a <= 0 || L <= 0 {
		return 0, chk.Err("quarter-wave rpm requires a > 0 and L > 0. a = %g, L = %g", a, L)
	}
	if order < 1 {
		return 0, chk.Err("harmonic order must be ≥ 1. order = %d", order)
	}
	Leff := L + endCorr*r
	f := a * float64(2*order-1) / (4.0 * Leff)
	return f * 120.0, nil
}

// QuarterWaveLPhys computes the runner length tuned to rpm at harmonic nHarm for a pipe of
// diameter D filled with gas at temperature T
//
//	f = (2n-1)・rpm/120    L = max(a/(4f) - 0.6・D, 0)
//
// Note: for exhaust primaries use the exhaust gas temperature
func QuarterWaveLPhys(rpm float64, nHarm int, D, T float64) (float64, error) {
	a, err := soundSpeed(T)
	if err != nil {
		return 0, err
	}
	if rpm <= 0 || nHarm < 1 || D < 0 {
		return 0, chk.Err("runner length requires rpm > 0, n ≥ 1 and D ≥ 0. rpm = %g, n = %d, D = %g", rpm, nHarm, D)
	}
	fTune := float64(2*nHarm-1) * rpm / 120.0
	return math.Max(a/(4.0*fTune)-DefaultEndCorr*D, 0), nil
}

// QuarterWaveRpmForL inverts QuarterWaveLPhys
//
//	L_eff = L + 0.6・D    rpm = 120・a / (4・L_eff・(2n-1))
func QuarterWaveRpmForL(L float64, nHarm int, D, T float64) (float64, error) {
	a, err := soundSpeed(T)
	if err != nil {
		return 0, err
	}
	Leff := L + DefaultEndCorr*D
	if Leff <= 0 || nHarm < 1 {
		return 0, chk.Err("runner rpm requires L + 0.6D > 0 and n ≥ 1. L_eff = %g, n = %d", Leff, nHarm)
	}
	fTune := a / (4.0 * Leff)
	return fTune / float64(2*nHarm-1) * 120.0, nil
}

// RunnerLengthPhase computes the intake runner length from the wave travel time over a crank
// angle phi at harmonic h
//
//	L = a・(φ/360)・(60/rpm) / 2 / h
func RunnerLengthPhase(rpm, T, phiDeg float64, harmonic int) (float64, error) {
	a, err := soundSpeed(T)
	if err != nil {
		return 0, err
	}
	if rpm <= 0 {
		return 0, chk.Err("runner length requires rpm > 0. rpm = %g", rpm)
	}
	if phiDeg <= 0 || phiDeg > 360 {
		return 0, chk.Err("crank angle must be in (0, 360]. φ = %g", phiDeg)
	}
	if harmonic < 1 {
		return 0, chk.Err("harmonic must be ≥ 1. h = %d", harmonic)
	}
	return a * (phiDeg / 360.0) * (60.0 / rpm) / 2.0 / float64(harmonic), nil
}

// soundSpeed computes the speed of sound after checking T
func soundSpeed(T float64) (float64, error) {
	if T <= 0 {
		return 0, chk.Err("temperature must be > 0 K. T = %g", T)
	}
	return phys.SpeedOfSound(T), nil
}
