// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package power implements models estimating engine power from the air the engine ingests
package power

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Kind names a power model
type Kind string

// available models
const (
	CFM  Kind = "cfm"  // rule of thumb: CFM per hp
	BSFC Kind = "bsfc" // fuel flow over brake specific fuel consumption
)

// Validate checks that a model of this kind exists
func (o Kind) Validate() error {
	if _, ok := allocators[o]; !ok {
		return chk.Err("power model %q is not available; use %q or %q", string(o), CFM, BSFC)
	}
	return nil
}

// Model defines power models
type Model interface {
	Init(prms dbf.Params) error                      // initialises model
	GetPrms(example bool) dbf.Params                 // gets (an example) of parameters
	Power(qEng, rho float64) (hp float64, err error) // computes power [hp] from the engine air flow [m³/s] and density [kg/m³]
}

// New returns a new power model initialised with prms. Missing parameters take default values
func New(kind Kind, prms dbf.Params) (model Model, err error) {
	allocator, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("model %q is not available in 'power' database", string(kind))
	}
	model = allocator()
	err = model.Init(prms)
	return
}

// allocators holds all available models
var allocators = map[Kind]func() Model{}
