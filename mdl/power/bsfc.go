// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package power

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BsfcModel implements the fuel-flow model
//
//	ṁ_air  = ρ・Q
//	ṁ_fuel = (ṁ_air / AFR) / max(1e-9, λ)
//	hp     = ṁ_fuel [lb/h] / BSFC
type BsfcModel struct {
	Afr    float64 // air-fuel ratio; default = 12.8
	Lambda float64 // lambda correction; default = 1
	Bsfc   float64 // brake specific fuel consumption [lb/(hp・h)]; default = 0.5
}

// add model to factory
func init() {
	allocators[BSFC] = func() Model { return new(BsfcModel) }
}

// Init initialises model
func (o *BsfcModel) Init(prms dbf.Params) error {
	o.Afr, o.Lambda, o.Bsfc = 12.8, 1.0, 0.5
	for _, p := range prms {
		switch p.N {
		case "afr":
			o.Afr = p.V
		case "lambda":
			o.Lambda = p.V
		case "bsfc":
			o.Bsfc = p.V
		default:
			return chk.Err("bsfc: parameter named %q is incorrect", p.N)
		}
	}
	if o.Afr <= 0 || o.Bsfc <= 0 {
		return chk.Err("bsfc: AFR and BSFC must be > 0. AFR = %g, BSFC = %g", o.Afr, o.Bsfc)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o BsfcModel) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "afr", V: 12.8},
			&dbf.P{N: "lambda", V: 1.0},
			&dbf.P{N: "bsfc", V: 0.5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "afr", V: o.Afr},
		&dbf.P{N: "lambda", V: o.Lambda},
		&dbf.P{N: "bsfc", V: o.Bsfc},
	}
}

// Power computes power
func (o BsfcModel) Power(qEng, rho float64) (float64, error) {
	if rho <= 0 {
		return 0, chk.Err("bsfc: density must be > 0. ρ = %g", rho)
	}
	return HpFromMassAir(rho*qEng, o.Afr*math.Max(1e-9, o.Lambda), o.Bsfc)
}
