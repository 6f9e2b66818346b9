// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/iopflow/flowbench/inp"
	"github.com/iopflow/flowbench/mdl/blend"
	"github.com/iopflow/flowbench/phys"
)

// ARefMode selects the area used as reference for Cd, velocity and Mach
type ARefMode string

// reference areas
const (
	ARefThroat  ARefMode = "throat"
	ARefCurtain ARefMode = "curtain"
	ARefEff     ARefMode = "eff"
)

// Validate checks that the mode is known
func (o ARefMode) Validate() error {
	switch o {
	case ARefThroat, ARefCurtain, ARefEff:
		return nil
	}
	return chk.Err("reference area mode %q is invalid; use %q, %q or %q", string(o), ARefThroat, ARefCurtain, ARefEff)
}

// Options holds the knobs of the point and series computations
type Options struct {
	DpRefInH2O  float64            // reference pressure drop [inH₂O]
	ARef        ARefMode           // reference area
	Eff         blend.Kind         // effective area blend
	SmoothN     int                // smooth-min exponent
	LogisticLd0 float64            // logistic midpoint L/D₀
	LogisticK   float64            // logistic steepness
	AirRef      *inp.AirConditions // reference air; nil => measured air
}

// SetDefault sets default values
func (o *Options) SetDefault() {
	o.DpRefInH2O = phys.StdDpInH2O
	o.ARef = ARefEff
	o.Eff = blend.SmoothMin
	o.SmoothN = 6
	o.LogisticLd0 = 0.30
	o.LogisticK = 12.0
	o.AirRef = nil
}

// NewOptions returns options with default values
func NewOptions() (o Options) {
	o.SetDefault()
	return
}

// Blender allocates the area-blend model selected by these options
func (o Options) Blender() (blend.Model, error) {
	var prms dbf.Params
	switch o.Eff {
	case blend.SmoothMin:
		prms = dbf.Params{&dbf.P{N: "n", V: float64(o.SmoothN)}}
	case blend.Logistic:
		prms = dbf.Params{&dbf.P{N: "ld0", V: o.LogisticLd0}, &dbf.P{N: "k", V: o.LogisticK}}
	}
	return blend.New(o.Eff, prms)
}
