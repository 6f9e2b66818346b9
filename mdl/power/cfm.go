// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package power

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/iopflow/flowbench/phys"
)

// CfmModel implements the bench rule of thumb
//
//	hp = CFM / cfm_per_hp
type CfmModel struct {
	CfmPerHp float64 // CFM needed per hp; default = 1.67
}

// add model to factory
func init() {
	allocators[CFM] = func() Model { return new(CfmModel) }
}

// Init initialises model
func (o *CfmModel) Init(prms dbf.Params) error {
	o.CfmPerHp = 1.67
	for _, p := range prms {
		switch p.N {
		case "cfm_per_hp":
			o.CfmPerHp = p.V
		default:
			return chk.Err("cfm: parameter named %q is incorrect", p.N)
		}
	}
	if o.CfmPerHp <= 0 {
		return chk.Err("cfm: cfm_per_hp must be > 0. cfm_per_hp = %g is invalid", o.CfmPerHp)
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o CfmModel) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "cfm_per_hp", V: 1.67}}
	}
	return dbf.Params{&dbf.P{N: "cfm_per_hp", V: o.CfmPerHp}}
}

// Power computes power. The density is not used
func (o CfmModel) Power(qEng, rho float64) (float64, error) {
	return HpFromCFM(phys.M3sToCfm(qEng), o.CfmPerHp)
}
