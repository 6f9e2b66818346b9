// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SwirlRatioFromWheelRpm computes the non-dimensional swirl ratio from a paddle-wheel meter
//
//	SR = ω・(B/2) / V̄   with   V̄ = Q / A_cyl
func SwirlRatioFromWheelRpm(rpmWheel, bore, q float64) (float64, error) {
	if bore <= 0 {
		return 0, chk.Err("swirl ratio requires bore > 0. bore = %g", bore)
	}
	if rpmWheel < 0 {
		return 0, chk.Err("swirl meter reading must be non-negative. rpm = %g", rpmWheel)
	}
	vbar, err := VelocityFromFlow(q, AreaCircle(bore))
	if err != nil {
		return 0, err
	}
	ω := 2.0 * math.Pi * rpmWheel / 60.0
	return ω * bore * 0.5 / math.Max(1e-12, vbar), nil
}

// FieldSample holds one discrete sample of a measured velocity field
type FieldSample struct {
	Ut float64 // tangential (swirl) or transverse (tumble) velocity component
	Uz float64 // axial velocity component
	R  float64 // lever arm: radius (swirl) or transverse coordinate (tumble)
	DA float64 // area weight
}

// SwirlNumber computes the swirl number of a discrete velocity field
//
//	S = Σ uθ・uz・r・dA / (R・Σ uz²・dA)
//
// Note: density cancels out if constant over the section
func SwirlNumber(samples []FieldSample, R float64) (float64, error) {
	return momentRatio(samples, R, "swirl")
}

// TumbleNumber computes the tumble number of a discrete velocity field with samples holding
// (u_y, u_z, x, dA)
func TumbleNumber(samples []FieldSample, R float64) (float64, error) {
	return momentRatio(samples, R, "tumble")
}

func momentRatio(samples []FieldSample, R float64, name string) (float64, error) {
	var num, den float64
	for _, s := range samples {
		num += s.Ut * s.Uz * s.R * s.DA
		den += s.Uz * s.Uz * s.DA
	}
	if R <= 0 || den <= 0 {
		return 0, chk.Err("%s number requires R > 0 and a positive axial momentum. R = %g, den = %g", name, R, den)
	}
	return num / (R * den), nil
}
