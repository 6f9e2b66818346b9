// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package compare implements before/after comparisons of computed series
package compare

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/flow"
)

// Key names a metric of flow.PointMetrics
type Key string

// comparable metrics
const (
	QRef     Key = "q_m3s_ref"
	CdRef    Key = "Cd_ref"
	VRef     Key = "V_ref"
	MachRef  Key = "Mach_ref"
	AEff     Key = "A_eff"
	ACurtain Key = "A_curtain"
	AThroat  Key = "A_throat"
	LOverD   Key = "L_over_D"
	DpRef    Key = "dp_Pa_ref"
	SR       Key = "SR"
)

// DefaultKeys are the metrics compared by default
var DefaultKeys = []Key{QRef, CdRef, VRef, MachRef}

// Validate checks that the key names a numeric metric
func (o Key) Validate() error {
	switch o {
	case QRef, CdRef, VRef, MachRef, AEff, ACurtain, AThroat, LOverD, DpRef, SR:
		return nil
	}
	return chk.Err("metric key %q is not available", string(o))
}

// scaledByFlow tells whether the after value is derived from the before value and the flow ratio
func (o Key) scaledByFlow() bool {
	return o == CdRef || o == VRef || o == MachRef
}

// value gets the metric of a row
func (o Key) value(m flow.PointMetrics) (float64, error) {
	v, ok := m.Value(string(o))
	if !ok {
		return 0, chk.Err("metric %q is missing at lift = %g m", string(o), m.LiftM)
	}
	return v, nil
}

// AlignByLift matches rows of the before and after series sorted by ascending lift
func AlignByLift(before, after []flow.PointMetrics, tol float64) []flow.Pair {
	return flow.AlignByLift(before, after, tol)
}

// DiffRow holds the change of one metric at one lift
type DiffRow struct {
	LiftM    float64 `json:"lift_m"`    // lift [m]
	Before   float64 `json:"before"`    // value before
	After    float64 `json:"after"`     // value after
	DeltaPct float64 `json:"delta_pct"` // 100・(after - before)/before
}

// DiffPercent computes the percent change of key for each aligned pair. Pairs with before ≤ 0
// are skipped.
// Note: for Cd_ref, V_ref and Mach_ref the after value is before・(Q_after/Q_before), i.e. the
//
//	reference area, pressure drop and density of both rows are taken as equal
func DiffPercent(aligned []flow.Pair, key Key) ([]DiffRow, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	res := []DiffRow{}
	for _, p := range aligned {
		before, err := key.value(p.A)
		if err != nil {
			return nil, err
		}
		if before <= 0 {
			continue
		}
		var after float64
		if key.scaledByFlow() {
			ratio := 0.0
			if p.A.QRefM3s != 0 {
				ratio = p.B.QRefM3s / p.A.QRefM3s
			}
			after = before * ratio
		} else {
			after, err = key.value(p.B)
			if err != nil {
				return nil, err
			}
		}
		res = append(res, DiffRow{
			LiftM:    p.A.LiftM,
			Before:   before,
			After:    after,
			DeltaPct: 100.0 * (after - before) / before,
		})
	}
	return res, nil
}

// OverlayRow holds one row of a multi-series overlay
type OverlayRow struct {
	SeriesIdx int             // index of series in the input list
	LiftM     float64         // lift [m]
	Keys      []Key           // selected metrics
	Values    map[Key]float64 // metric values
}

// MarshalJSON writes the row as a flat object {series_idx, lift_m, <key>: value, ...}
func (o OverlayRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(o.Keys)+2)
	flat["series_idx"] = o.SeriesIdx
	flat["lift_m"] = o.LiftM
	for _, k := range o.Keys {
		flat[string(k)] = o.Values[k]
	}
	return json.Marshal(flat)
}

// Overlay flattens many series into tagged rows, in input order
func Overlay(seriesList [][]flow.PointMetrics, keys []Key) ([]OverlayRow, error) {
	for _, k := range keys {
		if err := k.Validate(); err != nil {
			return nil, err
		}
	}
	res := []OverlayRow{}
	for idx, series := range seriesList {
		for _, m := range series {
			row := OverlayRow{SeriesIdx: idx, LiftM: m.LiftM, Keys: keys, Values: make(map[Key]float64, len(keys))}
			for _, k := range keys {
				v, err := k.value(m)
				if err != nil {
					return nil, chk.Err("series %d: %v", idx, err)
				}
				row.Values[k] = v
			}
			res = append(res, row)
		}
	}
	return res, nil
}
