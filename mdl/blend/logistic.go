// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blend

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/iopflow/flowbench/phys"
)

// LogisticModel implements a logistic weight between curtain and throat in terms of L/D
//
//	w     = 1 / (1 + exp(-k・(L/D - L/D₀)))
//	A_eff = (1 - w)・A_c + w・A_t
type LogisticModel struct {
	Ld0 float64 // midpoint L/D₀; default = 0.30
	K   float64 // steepness k; default = 12
}

// add model to factory
func init() {
	allocators[Logistic] = func() Model { return new(LogisticModel) }
}

// Init initialises model
func (o *LogisticModel) Init(prms dbf.Params) error {
	o.Ld0, o.K = 0.30, 12.0
	for _, p := range prms {
		switch p.N {
		case "ld0":
			o.Ld0 = p.V
		case "k":
			o.K = p.V
		default:
			return chk.Err("logistic: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o LogisticModel) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "ld0", V: 0.30},
			&dbf.P{N: "k", V: 12},
		}
	}
	return dbf.Params{
		&dbf.P{N: "ld0", V: o.Ld0},
		&dbf.P{N: "k", V: o.K},
	}
}

// Area computes the effective area
func (o LogisticModel) Area(aCurtain, aThroat, ld float64) (float64, error) {
	return phys.AreaEffLogistic(aCurtain, aThroat, ld, o.Ld0, o.K)
}
