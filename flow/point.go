// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/inp"
	"github.com/iopflow/flowbench/mdl/blend"
	"github.com/iopflow/flowbench/phys"
)

// PointMetrics holds the aerodynamic metrics of one lift point at the reference condition
type PointMetrics struct {
	LiftM       float64  `json:"lift_m"`        // lift [m]
	QRefM3s     float64  `json:"q_m3s_ref"`     // referenced flow [m³/s]
	DpRefPa     float64  `json:"dp_Pa_ref"`     // reference pressure drop [Pa]
	ACurtain    float64  `json:"A_curtain"`     // curtain area [m²]
	AThroat     float64  `json:"A_throat"`      // throat area net of stem [m²]
	ThroatUsedM float64  `json:"throat_used_m"` // effective throat diameter [m]
	AEff        float64  `json:"A_eff"`         // blended effective area [m²]
	ARefKey     ARefMode `json:"A_ref_key"`     // area used as reference
	LOverD      float64  `json:"L_over_D"`      // lift over valve diameter
	CdRef       float64  `json:"Cd_ref"`        // discharge coefficient
	VRef        float64  `json:"V_ref"`         // mean velocity at the reference area [m/s]
	MachRef     float64  `json:"Mach_ref"`      // Mach number at the reference area
	SR          *float64 `json:"SR,omitempty"`  // swirl ratio; only if the reading had swirl
}

// Value returns the numeric field named key (JSON name). ok is false if key is unknown or the
// field is absent
func (o PointMetrics) Value(key string) (v float64, ok bool) {
	switch key {
	case "lift_m":
		return o.LiftM, true
	case "q_m3s_ref":
		return o.QRefM3s, true
	case "dp_Pa_ref":
		return o.DpRefPa, true
	case "A_curtain":
		return o.ACurtain, true
	case "A_throat":
		return o.AThroat, true
	case "throat_used_m":
		return o.ThroatUsedM, true
	case "A_eff":
		return o.AEff, true
	case "L_over_D":
		return o.LOverD, true
	case "Cd_ref":
		return o.CdRef, true
	case "V_ref":
		return o.VRef, true
	case "Mach_ref":
		return o.MachRef, true
	case "SR":
		if o.SR == nil {
			return 0, false
		}
		return *o.SR, true
	}
	return 0, false
}

// ComputePoint computes the metrics of a normalised point.
//
//	Input:
//	np      -- normalised point
//	geom    -- head geometry
//	airRef  -- reference air (density for Cd; temperature for Mach)
//	side    -- selects valve and throat diameters
//	aRef    -- reference area
//	blender -- effective area model
func ComputePoint(np NormalizedPoint, geom inp.Geometry, airRef inp.AirConditions, side inp.Side, aRef ARefMode, blender blend.Model) (m PointMetrics, err error) {

	// diameters
	if err = side.Validate(); err != nil {
		return
	}
	dValve := geom.Valve(side)
	dThroat := geom.Throat(side)

	// areas
	m.ACurtain, err = phys.AreaCurtain(dValve, np.LiftM)
	if err != nil {
		return
	}
	m.AThroat, err = phys.AreaThroat(dThroat, geom.StemM)
	if err != nil {
		return
	}
	m.LOverD, err = phys.LdRatio(np.LiftM, dValve)
	if err != nil {
		return
	}
	if blender == nil {
		return m, chk.Err("effective area model is missing")
	}
	m.AEff, err = blender.Area(m.ACurtain, m.AThroat, m.LOverD)
	if err != nil {
		return
	}

	// reference area
	var area float64
	switch aRef {
	case ARefThroat:
		area = m.AThroat
	case ARefCurtain:
		area = m.ACurtain
	case ARefEff:
		area = m.AEff
	default:
		return m, aRef.Validate()
	}
	if area <= 0 {
		return m, chk.Err("reference area (%s) must be > 0. A_ref = %g at lift = %g m", aRef, area, np.LiftM)
	}

	// metrics
	m.LiftM = np.LiftM
	m.QRefM3s = np.QRefM3s
	m.DpRefPa = np.DpRefPa
	m.ThroatUsedM = dThroat
	m.ARefKey = aRef
	m.CdRef, err = phys.Cd(np.QRefM3s, area, np.DpRefPa, airRef.Rho())
	if err != nil {
		return
	}
	m.VRef, err = phys.VelocityFromFlow(np.QRefM3s, area)
	if err != nil {
		return
	}
	m.MachRef, err = phys.MachFromVelocity(m.VRef, airRef.T)
	return
}

// SwirlForPoint computes the swirl ratio if the point carries a swirl reading; otherwise it
// returns nil
func SwirlForPoint(np NormalizedPoint, geom inp.Geometry) (*float64, error) {
	if np.SwirlRpm == nil {
		return nil, nil
	}
	sr, err := phys.SwirlRatioFromWheelRpm(*np.SwirlRpm, geom.BoreM, np.QRefM3s)
	if err != nil {
		return nil, err
	}
	return &sr, nil
}
