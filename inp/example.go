// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/google/uuid"
	"github.com/iopflow/flowbench/phys"
)

// ExampleSession returns an intake-only baseline session of a 2.0 L four-cylinder head tested
// at 28" H₂O and 20°C. Each call gets a fresh meta "id"
func ExampleSession() Session {
	var std phys.Air
	std.Init()
	ve := 0.95
	volume, length, angle, width := 180.0, 0.110, 45.0, 0.0015
	return Session{
		Meta:   map[string]interface{}{"project": "example", "id": uuid.NewString()},
		Mode:   Baseline,
		Air:    AirConditions{PTot: std.Patm, T: std.Θ, RH: std.RH},
		Engine: Engine{DisplL: 2.0, Cylinders: 4, VE: &ve},
		Geom: Geometry{
			BoreM:        0.086,
			ValveIntM:    0.046,
			ValveExhM:    0.040,
			ThroatM:      0.034,
			StemM:        0.007,
			PortVolumeCC: &volume,
			PortLengthM:  &length,
			SeatAngleDeg: &angle,
			SeatWidthM:   &width,
		},
		Lifts: FlowSeries{
			Intake: []LiftPoint{
				NewLiftPoint(1, 120),
				NewLiftPoint(2, 175),
				NewLiftPoint(3, 220),
				NewLiftPoint(4, 260),
				NewLiftPoint(5, 290),
			},
		},
	}
}
