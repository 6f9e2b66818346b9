// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// AreaThroat computes the throat (annulus) area corrected for the valve stem
//
//	A = π・(d_throat² - d_stem²) / 4
func AreaThroat(dThroat, dStem float64) (float64, error) {
	if dThroat <= 0 || dStem < 0 || dStem >= dThroat {
		return 0, chk.Err("diameters must satisfy d_throat > 0 and 0 ≤ d_stem < d_throat. d_throat = %g, d_stem = %g", dThroat, dStem)
	}
	return math.Pi * (dThroat*dThroat - dStem*dStem) / 4.0, nil
}

// AreaCurtain computes the valve curtain area: circumference times lift
//
//	A = π・d_valve・L
func AreaCurtain(dValve, lift float64) (float64, error) {
	if dValve <= 0 || lift < 0 {
		return 0, chk.Err("curtain area requires d_valve > 0 and lift ≥ 0. d_valve = %g, lift = %g", dValve, lift)
	}
	return math.Pi * dValve * lift, nil
}

// LdRatio computes the lift over valve diameter ratio L/D
func LdRatio(lift, dValve float64) (float64, error) {
	if dValve <= 0 {
		return 0, chk.Err("L/D requires d_valve > 0. d_valve = %g", dValve)
	}
	return lift / dValve, nil
}

// AreaEffSmoothMin computes a smooth approximation of min(A_curtain, A_throat) by the power mean
//
//	A_eff = 1 / (A_c⁻ⁿ + A_t⁻ⁿ)^(1/n)
//
// Note: A_eff → min(A_c, A_t) as n grows; the blend has no corner
func AreaEffSmoothMin(aCurtain, aThroat float64, n int) (float64, error) {
	if aCurtain <= 0 || aThroat <= 0 {
		return 0, chk.Err("smooth-min blend requires positive areas. A_curtain = %g, A_throat = %g", aCurtain, aThroat)
	}
	if n < 1 {
		return 0, chk.Err("smooth-min exponent must be n ≥ 1. n = %d", n)
	}
	fn := float64(n)
	return 1.0 / math.Pow(math.Pow(aCurtain, -fn)+math.Pow(aThroat, -fn), 1.0/fn), nil
}

// AreaEffLogistic blends curtain and throat areas with a logistic weight in L/D
//
//	w     = 1 / (1 + exp(-k・(L/D - L/D₀)))
//	A_eff = (1 - w)・A_c + w・A_t
func AreaEffLogistic(aCurtain, aThroat, ld, ld0, k float64) (float64, error) {
	if aCurtain <= 0 || aThroat <= 0 {
		return 0, chk.Err("logistic blend requires positive areas. A_curtain = %g, A_throat = %g", aCurtain, aThroat)
	}
	w := 1.0 / (1.0 + math.Exp(-k*(ld-ld0)))
	return (1.0-w)*aCurtain + w*aThroat, nil
}

// AreaCircle computes the area of a circle with diameter d
func AreaCircle(d float64) float64 {
	return math.Pi * d * d / 4.0
}
