// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements the reduction of flow-bench readings: normalisation to reference
// conditions, per-point metrics and per-series pipelines
package flow

import (
	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/inp"
	"github.com/iopflow/flowbench/phys"
)

// NormalizedPoint holds one reading converted to SI units and to the reference condition
type NormalizedPoint struct {
	LiftM    float64  // lift [m]
	QMeasM3s float64  // measured flow [m³/s]
	DpMeasPa *float64 // measured pressure drop [Pa]; nil if the reading had none
	QRefM3s  float64  // flow at the reference condition [m³/s]
	DpRefPa  float64  // reference pressure drop [Pa]
	RhoMeas  float64  // density during the measurement [kg/m³]
	RhoRef   float64  // reference density [kg/m³]
	SwirlRpm *float64 // swirl meter reading, passed through
}

// NormalizePoint converts a reading to SI units and rescales its flow to the reference pressure
// drop and density. airRef == nil means the reference air equals the measured air.
// Note: a reading without pressure drop is taken at the reference drop, i.e. only the density
// correction applies
func NormalizePoint(lp inp.LiftPoint, airMeas inp.AirConditions, dpRefInH2O float64, airRef *inp.AirConditions) (np NormalizedPoint, err error) {
	if dpRefInH2O <= 0 {
		return np, chk.Err("reference pressure drop must be > 0. dp_ref = %g inH₂O is invalid", dpRefInH2O)
	}
	np.LiftM = lp.LiftMm / 1000.0
	np.QMeasM3s = phys.CfmToM3s(lp.QCfm)
	np.DpRefPa = phys.InH2OToPa(dpRefInH2O)
	np.RhoMeas = airMeas.Rho()
	np.RhoRef = np.RhoMeas
	if airRef != nil {
		np.RhoRef = airRef.Rho()
	}
	dpCalc := np.DpRefPa
	if lp.DpInH2O != nil {
		dp := phys.InH2OToPa(*lp.DpInH2O)
		np.DpMeasPa = &dp
		dpCalc = dp
	}
	np.QRefM3s, err = phys.FlowReferenced(np.QMeasM3s, dpCalc, np.RhoMeas, np.DpRefPa, np.RhoRef)
	if err != nil {
		return
	}
	np.SwirlRpm = lp.SwirlRpm
	return
}

// NormalizeSeries normalises all readings. The output has the same length and order as the
// input. The first failure aborts the whole series
func NormalizeSeries(pts []inp.LiftPoint, airMeas inp.AirConditions, dpRefInH2O float64, airRef *inp.AirConditions) ([]NormalizedPoint, error) {
	res := make([]NormalizedPoint, len(pts))
	for i, lp := range pts {
		np, err := NormalizePoint(lp, airMeas, dpRefInH2O, airRef)
		if err != nil {
			return nil, chk.Err("point %d (lift = %g mm): %v", i, lp.LiftMm, err)
		}
		res[i] = np
	}
	return res, nil
}
