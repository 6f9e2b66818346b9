// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tune

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CSAFromFlowAndVelocity computes the cross-section carrying q at mean velocity v
func CSAFromFlowAndVelocity(q, v float64) (float64, error) {
	if q <= 0 || v <= 0 {
		return 0, chk.Err("CSA requires q > 0 and v > 0. q = %g, v = %g", q, v)
	}
	return q / v, nil
}

// DiameterFromCSA computes the diameter of a circle with area A
func DiameterFromCSA(A float64) (float64, error) {
	if A <= 0 {
		return 0, chk.Err("diameter requires A > 0. A = %g", A)
	}
	return math.Sqrt(4.0 * A / math.Pi), nil
}

// CollectorCSA computes the exhaust collector cross-section in m² and mm²
func CollectorCSA(q, v float64) (m2, mm2 float64, err error) {
	m2, err = CSAFromFlowAndVelocity(q, v)
	if err != nil {
		return
	}
	mm2 = m2 * 1e6
	return
}
