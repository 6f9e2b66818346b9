// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/inp"
	"gonum.org/v1/gonum/stat"
)

// DefaultTol is the default tolerance [m] for matching lifts of two series
const DefaultTol = 5e-7

// ComputeSeries computes the metrics of all readings of one side of a session. The output has
// one row per reading in input order; it is empty if the side has no readings. Any failing
// point aborts the whole series
func ComputeSeries(s inp.Session, side inp.Side, opts Options) ([]PointMetrics, error) {
	if err := side.Validate(); err != nil {
		return nil, err
	}
	pts := s.Points(side)
	if len(pts) == 0 {
		return []PointMetrics{}, nil
	}
	if err := opts.ARef.Validate(); err != nil {
		return nil, err
	}
	blender, err := opts.Blender()
	if err != nil {
		return nil, err
	}
	airRef := s.Air
	if opts.AirRef != nil {
		airRef = *opts.AirRef
	}
	nps, err := NormalizeSeries(pts, s.Air, opts.DpRefInH2O, &airRef)
	if err != nil {
		return nil, chk.Err("%s series: %v", side, err)
	}
	res := make([]PointMetrics, len(nps))
	for i, np := range nps {
		m, err := ComputePoint(np, s.Geom, airRef, side, opts.ARef, blender)
		if err != nil {
			return nil, chk.Err("%s series: point %d (lift = %g m): %v", side, i, np.LiftM, err)
		}
		m.SR, err = SwirlForPoint(np, s.Geom)
		if err != nil {
			return nil, chk.Err("%s series: point %d (lift = %g m): %v", side, i, np.LiftM, err)
		}
		res[i] = m
	}
	return res, nil
}

// Pair holds two rows matched by lift
type Pair struct {
	A, B PointMetrics
}

// AlignByLift matches rows of two series sorted by ascending lift. Two rows match if their lifts
// differ by at most tol; otherwise the row with the smaller lift is skipped
func AlignByLift(a, b []PointMetrics, tol float64) (pairs []Pair) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		la, lb := a[i].LiftM, b[j].LiftM
		switch {
		case math.Abs(la-lb) <= tol:
			pairs = append(pairs, Pair{a[i], b[j]})
			i++
			j++
		case la < lb:
			i++
		default:
			j++
		}
	}
	return
}

// EIRow holds the exhaust over intake ratio at one lift
type EIRow struct {
	LiftM   float64 `json:"lift_m"`    // lift [m]
	QIntM3s float64 `json:"q_int_m3s"` // intake referenced flow [m³/s]
	QExhM3s float64 `json:"q_exh_m3s"` // exhaust referenced flow [m³/s]
	EI      float64 `json:"EI"`        // Q_exh / Q_int
}

// ComputeEI computes E/I at matching lifts. Pairs with non-positive intake flow are dropped
func ComputeEI(intake, exhaust []PointMetrics, tol float64) []EIRow {
	res := []EIRow{}
	for _, p := range AlignByLift(intake, exhaust, tol) {
		if p.A.QRefM3s <= 0 {
			continue
		}
		res = append(res, EIRow{
			LiftM:   p.A.LiftM,
			QIntM3s: p.A.QRefM3s,
			QExhM3s: p.B.QRefM3s,
			EI:      p.B.QRefM3s / p.A.QRefM3s,
		})
	}
	return res
}

// healthy E/I band
const (
	EIHealthyMin = 0.70
	EIHealthyMax = 0.85
)

// MeanEI computes the mean E/I of rows. ok is false if rows is empty
func MeanEI(rows []EIRow) (mean float64, ok bool) {
	if len(rows) == 0 {
		return 0, false
	}
	ei := make([]float64, len(rows))
	for i, r := range rows {
		ei[i] = r.EI
	}
	return stat.Mean(ei, nil), true
}

// Healthy tells whether the mean E/I falls within the healthy band
func Healthy(meanEI float64) bool {
	return meanEI >= EIHealthyMin && meanEI <= EIHealthyMax
}
