// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package blend implements models for the effective valve flow area, i.e. blends between the
// curtain area (limiting at low lift) and the throat area (limiting at high lift)
package blend

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Kind names an area-blend model
type Kind string

// available blends
const (
	SmoothMin Kind = "smoothmin" // power-mean smooth minimum
	Logistic  Kind = "logistic"  // logistic weight in L/D
)

// Validate checks that a model of this kind exists
func (o Kind) Validate() error {
	if _, ok := allocators[o]; !ok {
		return chk.Err("area blend %q is not available; use %q or %q", string(o), SmoothMin, Logistic)
	}
	return nil
}

// Model defines area-blend models
type Model interface {
	Init(prms dbf.Params) error                          // initialises model
	GetPrms(example bool) dbf.Params                     // gets (an example) of parameters
	Area(aCurtain, aThroat, ld float64) (float64, error) // computes the effective area
}

// New returns a new blend model initialised with prms. Missing parameters take default values
func New(kind Kind, prms dbf.Params) (model Model, err error) {
	allocator, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("model %q is not available in 'blend' database", string(kind))
	}
	model = allocator()
	err = model.Init(prms)
	return
}

// allocators holds all available models
var allocators = map[Kind]func() Model{}
