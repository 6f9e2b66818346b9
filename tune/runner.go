// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tune

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/iopflow/flowbench/phys"
)

// Runner holds a candidate runner
type Runner struct {
	LM    float64 `json:"L_m"`   // physical length [m]
	DM    float64 `json:"d_m"`   // inner diameter [m]
	AM2   float64 `json:"A_m2"`  // cross-section [m²]
	Order int     `json:"order"` // harmonic order
	Note  string  `json:"note"`  // mean velocity and estimated rpm
}

// Bounds holds the search box of the runner grid
type Bounds struct {
	LMin float64 `json:"L_min_m"` // min length [m]
	LMax float64 `json:"L_max_m"` // max length [m]
	DMin float64 `json:"d_min_m"` // min diameter [m]
	DMax float64 `json:"d_max_m"` // max diameter [m]
}

// SetDefault sets default values: 0.20 to 0.60 m long, 30 to 50 mm wide
func (o *Bounds) SetDefault() {
	o.LMin, o.LMax = 0.20, 0.60
	o.DMin, o.DMax = 0.030, 0.050
}

// GridOptions holds the resolution of the runner grid
type GridOptions struct {
	Orders  []int   // harmonic orders; orders < 1 are skipped
	NL      int     // number of lengths
	ND      int     // number of diameters
	EndCorr float64 // open-end correction factor
}

// SetDefault sets default values
func (o *GridOptions) SetDefault() {
	o.Orders = []int{1, 3, 5}
	o.NL, o.ND = 25, 25
	o.EndCorr = DefaultEndCorr
}

// velocity penalty factor [rpm/(m/s)]
const penaltyV = 10.0

// GridSearchRunner searches the (order, length, diameter) grid for the runner whose quarter-wave
// rpm best matches targetRpm, penalising mean velocities above vTarget
//
//	score = |target - rpm_est| + max(0, v_mean - vTarget)・10
//
// Note: loops nest as order → length → diameter; the first minimum wins
func GridSearchRunner(a, targetRpm, qPeak, vTarget float64, bounds Bounds, grid GridOptions) (best Runner, score float64, err error) {
	if a <= 0 || targetRpm <= 0 || qPeak <= 0 || vTarget <= 0 || bounds.LMin <= 0 || bounds.DMin <= 0 {
		err = chk.Err("runner search requires a, target rpm, q, v, L_min and d_min > 0. a = %g, rpm = %g, q = %g, v = %g, L_min = %g, d_min = %g",
			a, targetRpm, qPeak, vTarget, bounds.LMin, bounds.DMin)
		return
	}
	if !(bounds.LMin < bounds.LMax && bounds.DMin < bounds.DMax) {
		err = chk.Err("runner bounds are invalid: need L_min < L_max and d_min < d_max. %+v", bounds)
		return
	}
	if grid.NL < 1 || grid.ND < 1 {
		err = chk.Err("runner grid requires at least one length and one diameter. nL = %d, nD = %d", grid.NL, grid.ND)
		return
	}
	found := false
	for _, order := range grid.Orders {
		if order < 1 {
			continue
		}
		for i := 0; i < grid.NL; i++ {
			L := gridValue(bounds.LMin, bounds.LMax, i, grid.NL)
			for j := 0; j < grid.ND; j++ {
				d := gridValue(bounds.DMin, bounds.DMax, j, grid.ND)
				A := phys.AreaCircle(d)
				v := qPeak / math.Max(A, 1e-12)
				rpm, e := RpmFromQuarterWave(a, L, order, d*0.5, grid.EndCorr)
				if e != nil {
					err = e
					return
				}
				s := math.Abs(targetRpm-rpm) + math.Max(0, v-vTarget)*penaltyV
				if !found || s < score {
					found = true
					score = s
					best = Runner{L, d, A, order, io.Sf("v_mean=%.1f m/s, rpm≈%.0f", v, rpm)}
				}
			}
		}
	}
	if !found {
		err = chk.Err("runner search requires at least one harmonic order ≥ 1. orders = %v", grid.Orders)
	}
	return
}

// gridValue returns the i-th of n evenly spaced values in [lo, hi]
func gridValue(lo, hi float64, i, n int) float64 {
	den := n - 1
	if den < 1 {
		den = 1
	}
	return lo + (hi-lo)*float64(i)/float64(den)
}
