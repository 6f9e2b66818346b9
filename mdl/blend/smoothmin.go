// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blend

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/iopflow/flowbench/phys"
)

// SmoothMinModel implements the power-mean smooth minimum
//
//	A_eff = 1 / (A_c⁻ⁿ + A_t⁻ⁿ)^(1/n)
type SmoothMinModel struct {
	N int // exponent; default = 6
}

// add model to factory
func init() {
	allocators[SmoothMin] = func() Model { return new(SmoothMinModel) }
}

// Init initialises model
func (o *SmoothMinModel) Init(prms dbf.Params) error {
	o.N = 6
	for _, p := range prms {
		switch p.N {
		case "n":
			if p.V != math.Trunc(p.V) {
				return chk.Err("smoothmin: exponent n must be an integer. n = %g is invalid", p.V)
			}
			o.N = int(p.V)
		default:
			return chk.Err("smoothmin: parameter named %q is incorrect", p.N)
		}
	}
	if o.N < 1 {
		return chk.Err("smoothmin: exponent must be n ≥ 1. n = %d is invalid", o.N)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o SmoothMinModel) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "n", V: 6}}
	}
	return dbf.Params{&dbf.P{N: "n", V: float64(o.N)}}
}

// Area computes the effective area. L/D is not used
func (o SmoothMinModel) Area(aCurtain, aThroat, ld float64) (float64, error) {
	return phys.AreaEffSmoothMin(aCurtain, aThroat, o.N)
}
