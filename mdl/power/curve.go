// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package power

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/inp"
	"github.com/iopflow/flowbench/phys"
)

// RhoMode selects the air density used by power curves
type RhoMode string

// density modes
const (
	RhoBench RhoMode = "bench" // density of the bench air
	RhoFixed RhoMode = "fixed" // fixed value
)

// DefaultRho is the fixed density [kg/m³] of standard air
const DefaultRho = 1.204

// RhoFor returns the density selected by mode
func RhoFor(s inp.Session, mode RhoMode, fixed float64) (float64, error) {
	switch mode {
	case RhoBench:
		return s.Air.Rho(), nil
	case RhoFixed:
		if fixed <= 0 {
			return 0, chk.Err("fixed density must be > 0. ρ = %g", fixed)
		}
		return fixed, nil
	}
	return 0, chk.Err("density mode %q is invalid; use %q or %q", string(mode), RhoBench, RhoFixed)
}

// Curve holds power against engine speed
type Curve struct {
	Rpm     []float64 // engine speeds
	Hp      []float64 // power [hp]; NaN above the rpm cap
	PeakHp  float64   // largest finite power
	PeakRpm float64   // speed of the largest finite power
}

// NewCurve computes the power curve of the session engine over rpmGrid. Engines without VE use
// VE = 1. Values above rpmCap (if not nil) are NaN and do not count for the peak
func NewCurve(model Model, s inp.Session, rpmGrid []float64, rho float64, rpmCap *float64) (c *Curve, err error) {
	if model == nil {
		return nil, chk.Err("power model is missing")
	}
	ve := s.Engine.VEor(1.0)
	c = &Curve{Rpm: make([]float64, len(rpmGrid)), Hp: make([]float64, len(rpmGrid))}
	for i, rpm := range rpmGrid {
		q, err := phys.EngineVolumetricFlow(s.Engine.DisplL, rpm, ve)
		if err != nil {
			return nil, err
		}
		hp, err := model.Power(q, rho)
		if err != nil {
			return nil, err
		}
		if rpmCap != nil && rpm > *rpmCap {
			hp = math.NaN()
		}
		c.Rpm[i], c.Hp[i] = rpm, hp
		if !math.IsNaN(hp) && hp > c.PeakHp {
			c.PeakHp, c.PeakRpm = hp, rpm
		}
	}
	return
}
