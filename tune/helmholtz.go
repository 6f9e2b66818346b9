// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tune

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/phys"
)

// HelmholtzVolume computes the plenum volume resonating at f through a neck of area aNeck and
// length lNeck
//
//	V = (A/L)・(a/(2πf))²
func HelmholtzVolume(a, aNeck, lNeck, f float64) (float64, error) {
	if a <= 0 || aNeck <= 0 || lNeck <= 0 || f <= 0 {
		return 0, chk.Err("Helmholtz volume requires a, A, L and f > 0. a = %g, A = %g, L = %g, f = %g", a, aNeck, lNeck, f)
	}
	w := a / (2.0 * math.Pi * f)
	return (aNeck / lNeck) * w * w, nil
}

// HelmholtzFreq computes the resonance frequency of volume V coupled through a neck
//
//	f = (a/2π)・sqrt(A/(V・L))
func HelmholtzFreq(a, aNeck, lNeck, V float64) (float64, error) {
	if a <= 0 || aNeck <= 0 || lNeck <= 0 || V <= 0 {
		return 0, chk.Err("Helmholtz frequency requires a, A, L and V > 0. a = %g, A = %g, L = %g, V = %g", a, aNeck, lNeck, V)
	}
	return a / (2.0 * math.Pi) * math.Sqrt(aNeck/(V*lNeck)), nil
}

// HelmholtzFAndRpm computes the resonance frequency of a plenum of volume V fed by a runner of
// diameter D and length L (end corrected by 0.6・D), and the rpm tuned to it at harmonic nHarm
//
//	rpm = 120・f / n
func HelmholtzFAndRpm(D, L, V float64, nHarm int, T float64) (f, rpm float64, err error) {
	a, err := soundSpeed(T)
	if err != nil {
		return
	}
	if D <= 0 || nHarm < 1 {
		return 0, 0, chk.Err("Helmholtz rpm requires D > 0 and n ≥ 1. D = %g, n = %d", D, nHarm)
	}
	f, err = HelmholtzFreq(a, phys.AreaCircle(D), L+DefaultEndCorr*D, V)
	if err != nil {
		return
	}
	rpm = f * 120.0 / float64(nHarm)
	return
}

// PlenumVolumeHint suggests a plenum volume from the engine displacement
//
//	V = k・V_d     (k ≈ 1.5)
func PlenumVolumeHint(displL float64, cylinders int, k float64) (float64, error) {
	if displL <= 0 || cylinders < 1 || k <= 0 {
		return 0, chk.Err("plenum hint requires displ > 0, cylinders ≥ 1 and k > 0. displ = %g L, cylinders = %d, k = %g", displL, cylinders, k)
	}
	return k * displL * phys.LitreToM3, nil
}
