// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eng links head flow capacity to engine speed
package eng

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/flow"
	"github.com/iopflow/flowbench/inp"
	"github.com/iopflow/flowbench/phys"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// default values
const (
	DefaultVTarget    = 100.0 // target mean velocity in runners [m/s]
	DefaultVEFallback = 0.95  // VE used when the engine has none
)

// QHead selects the representative head flow of a series
type QHead string

// strategies
const (
	QHeadMax          QHead = "max"            // largest flow
	QHeadMeanTopThird QHead = "mean_top_third" // mean of the ceil(n/3) largest flows
)

// Validate checks that the strategy is known
func (o QHead) Validate() error {
	switch o {
	case QHeadMax, QHeadMeanTopThird:
		return nil
	}
	return chk.Err("head flow strategy %q is invalid; use %q or %q", string(o), QHeadMax, QHeadMeanTopThird)
}

// Select computes the representative flow of values. All values must be positive
func (o QHead) Select(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, chk.Err("cannot select head flow of an empty series")
	}
	for i, v := range values {
		if v <= 0 {
			return 0, chk.Err("q_m3s_ref must be > 0 for all points. q[%d] = %g", i, v)
		}
	}
	switch o {
	case QHeadMax:
		return floats.Max(values), nil
	case QHeadMeanTopThird:
		k := int(math.Ceil(float64(len(values)) / 3.0))
		if k < 1 {
			k = 1
		}
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)
		return stat.Mean(sorted[len(sorted)-k:], nil), nil
	}
	return 0, o.Validate()
}

// Metrics holds the engine figures derived from a session
type Metrics struct {
	RpmFlowLimit *float64  `json:"rpm_flow_limit"` // rpm at which the engine demands the head flow
	RpmFromCSA   *float64  `json:"rpm_from_csa"`   // rpm supported by the average cross-section
	MachMinCSA   []float64 `json:"mach_min_csa"`   // Mach at the minimum cross-section per row
}

// ResolveVE returns the engine VE or fallback if the engine has none. The result must be positive
func ResolveVE(engine inp.Engine, fallback float64) (float64, error) {
	ve := engine.VEor(fallback)
	if ve <= 0 {
		return 0, chk.Err("VE must be > 0. VE = %g is invalid", ve)
	}
	return ve, nil
}

// RpmLimitedByFlow computes the engine speed at which the engine air demand equals the
// representative head flow of series
func RpmLimitedByFlow(series []flow.PointMetrics, engine inp.Engine, veFallback float64, strategy QHead) (float64, error) {
	if len(series) == 0 {
		return 0, chk.Err("flow-limited rpm requires a non-empty series")
	}
	q := make([]float64, len(series))
	for i, m := range series {
		q[i] = m.QRefM3s
	}
	qHead, err := strategy.Select(q)
	if err != nil {
		return 0, err
	}
	ve, err := ResolveVE(engine, veFallback)
	if err != nil {
		return 0, err
	}
	return phys.RpmLimitedByFlow(qHead, engine.DisplL, ve)
}

// RpmFromCSA computes the engine speed supported by the average cross-section at the target
// velocity. It returns nil if aAvg is nil
func RpmFromCSA(aAvg *float64, engine inp.Engine, vTarget, veFallback float64) (*float64, error) {
	if aAvg == nil {
		return nil, nil
	}
	if *aAvg <= 0 {
		return nil, chk.Err("average CSA must be > 0. A = %g is invalid", *aAvg)
	}
	if vTarget <= 0 {
		return nil, chk.Err("target velocity must be > 0. v = %g is invalid", vTarget)
	}
	ve, err := ResolveVE(engine, veFallback)
	if err != nil {
		return nil, err
	}
	rpm, err := phys.RpmFromCSA(*aAvg, engine.DisplL, ve, vTarget)
	if err != nil {
		return nil, err
	}
	return &rpm, nil
}

// MachAtMinCSA computes the Mach number at the minimum cross-section for each row of series,
// in series order
func MachAtMinCSA(series []flow.PointMetrics, minCSA float64, air inp.AirConditions) ([]float64, error) {
	if minCSA <= 0 {
		return nil, chk.Err("minimum CSA must be > 0. A = %g is invalid", minCSA)
	}
	res := make([]float64, len(series))
	for i, m := range series {
		if m.QRefM3s <= 0 {
			return nil, chk.Err("q_m3s_ref must be > 0 for all points. q[%d] = %g", i, m.QRefM3s)
		}
		M, err := phys.MachAtMinCSA(m.QRefM3s, minCSA, air.T)
		if err != nil {
			return nil, err
		}
		res[i] = M
	}
	return res, nil
}
