// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out runs complete sessions and comparisons and assembles their results
package out

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/compare"
	"github.com/iopflow/flowbench/eng"
	"github.com/iopflow/flowbench/flow"
	"github.com/iopflow/flowbench/mdl/blend"
	"github.com/iopflow/flowbench/phys"
)

// Config holds the settings of runs and comparisons
type Config struct {
	DpRefInH2O    float64       `json:"dp_ref_inH2O"`    // reference pressure drop [inH₂O]
	ARefMode      flow.ARefMode `json:"a_ref_mode"`      // reference area
	EffMode       blend.Kind    `json:"eff_mode"`        // effective area blend
	SmoothN       int           `json:"smooth_n"`        // smooth-min exponent
	LogisticLd0   float64       `json:"logistic_ld0"`    // logistic midpoint
	LogisticK     float64       `json:"logistic_k"`      // logistic steepness
	EITol         float64       `json:"ei_tol"`          // lift tolerance for E/I [m]
	EngineVTarget float64       `json:"engine_v_target"` // target runner velocity [m/s]
	VEFallback    float64       `json:"ve_fallback"`     // VE if the engine has none
	Keys          []compare.Key `json:"keys"`            // compared metrics
	Tol           float64       `json:"tol"`             // lift tolerance for comparisons [m]
	QHead         eng.QHead     `json:"q_head"`          // head flow strategy of the flow-limited rpm
	Verbose       bool          `json:"verbose"`         // show messages
}

// SetDefault sets default values
func (o *Config) SetDefault() {
	o.DpRefInH2O = phys.StdDpInH2O
	o.ARefMode = flow.ARefEff
	o.EffMode = blend.SmoothMin
	o.SmoothN = 6
	o.LogisticLd0 = 0.30
	o.LogisticK = 12.0
	o.EITol = flow.DefaultTol
	o.EngineVTarget = eng.DefaultVTarget
	o.VEFallback = eng.DefaultVEFallback
	o.Keys = append([]compare.Key{}, compare.DefaultKeys...)
	o.Tol = flow.DefaultTol
	o.QHead = eng.QHeadMax
	o.Verbose = false
}

// NewConfig returns a configuration with default values
func NewConfig() (o *Config) {
	o = new(Config)
	o.SetDefault()
	return
}

// ReadConfig reads a configuration file. Fields absent from the file keep their default values
func ReadConfig(fn string) (o *Config, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read config file %q:\n%v", fn, err)
	}
	o = NewConfig()
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot unmarshal config file %q:\n%v", fn, err)
	}
	if err = o.Validate(); err != nil {
		return nil, chk.Err("config file %q: %v", fn, err)
	}
	return
}

// Validate checks the configuration
func (o Config) Validate() error {
	if o.DpRefInH2O <= 0 {
		return chk.Err("dp_ref_inH2O must be > 0. %g is invalid", o.DpRefInH2O)
	}
	if err := o.ARefMode.Validate(); err != nil {
		return err
	}
	if err := o.EffMode.Validate(); err != nil {
		return err
	}
	if o.EITol < 0 || o.Tol < 0 {
		return chk.Err("tolerances must be ≥ 0. ei_tol = %g, tol = %g", o.EITol, o.Tol)
	}
	if o.EngineVTarget <= 0 {
		return chk.Err("engine_v_target must be > 0. %g is invalid", o.EngineVTarget)
	}
	if o.VEFallback <= 0 {
		return chk.Err("ve_fallback must be > 0. %g is invalid", o.VEFallback)
	}
	if o.SmoothN < 1 {
		return chk.Err("smooth_n must be ≥ 1. %d is invalid", o.SmoothN)
	}
	for _, k := range o.Keys {
		if err := k.Validate(); err != nil {
			return err
		}
	}
	return o.QHead.Validate()
}

// Options returns the series options corresponding to this configuration
func (o Config) Options() (opts flow.Options) {
	opts.SetDefault()
	opts.DpRefInH2O = o.DpRefInH2O
	opts.ARef = o.ARefMode
	opts.Eff = o.EffMode
	opts.SmoothN = o.SmoothN
	opts.LogisticLd0 = o.LogisticLd0
	opts.LogisticK = o.LogisticK
	return
}

// Params holds the settings echoed in results
type Params struct {
	DpRefInH2O    float64       `json:"dp_ref_inH2O"`
	ARefMode      flow.ARefMode `json:"a_ref_mode"`
	EffMode       blend.Kind    `json:"eff_mode"`
	LogisticLd0   float64       `json:"logistic_ld0"`
	LogisticK     float64       `json:"logistic_k"`
	EngineVTarget *float64      `json:"engine_v_target,omitempty"`
	Keys          []compare.Key `json:"keys,omitempty"`
}

// params returns the common part of Params
func (o Config) params() Params {
	return Params{
		DpRefInH2O:  o.DpRefInH2O,
		ARefMode:    o.ARefMode,
		EffMode:     o.EffMode,
		LogisticLd0: o.LogisticLd0,
		LogisticK:   o.LogisticK,
	}
}
