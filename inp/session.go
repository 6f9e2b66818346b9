// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the flow-bench session data read from (and written to) JSON files
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/phys"
)

// Mode tags a session as the baseline or the after-work measurement
type Mode string

// session modes
const (
	Baseline Mode = "baseline"
	After    Mode = "after"
)

// Validate checks that the mode is one of the known tags
func (o Mode) Validate() error {
	switch o {
	case Baseline, After:
		return nil
	}
	return chk.Err("mode %q is invalid; use %q or %q", string(o), Baseline, After)
}

// Side selects the intake or exhaust port
type Side string

// port sides
const (
	Intake  Side = "intake"
	Exhaust Side = "exhaust"
)

// Validate checks that the side is one of the known tags
func (o Side) Validate() error {
	switch o {
	case Intake, Exhaust:
		return nil
	}
	return chk.Err("side %q is invalid; use %q or %q", string(o), Intake, Exhaust)
}

// AirConditions holds the state of the air during the test
type AirConditions struct {
	PTot float64 `json:"p_tot"` // total pressure [Pa]
	T    float64 `json:"T"`     // temperature [K]
	RH   float64 `json:"RH"`    // relative humidity [0..1]
}

// NewAir returns validated air conditions
func NewAir(pTot, T, RH float64) (o AirConditions, err error) {
	o = AirConditions{PTot: pTot, T: T, RH: RH}
	err = o.Validate()
	return
}

// Validate checks p_tot > 0, T > 0 and 0 ≤ RH ≤ 1
func (o AirConditions) Validate() error {
	if err := positive("p_tot", o.PTot); err != nil {
		return err
	}
	if err := positive("T", o.T); err != nil {
		return err
	}
	if o.RH < 0 || o.RH > 1 {
		return chk.Err("RH must be in [0,1]. RH = %g is invalid", o.RH)
	}
	return nil
}

// Phys returns the air state used by the physics library
func (o AirConditions) Phys() phys.Air {
	return phys.Air{Θ: o.T, Patm: o.PTot, RH: o.RH}
}

// Rho returns the density of this air
func (o AirConditions) Rho() float64 {
	return o.Phys().Rho()
}

// Engine holds the engine data
type Engine struct {
	DisplL    float64  `json:"displ_L"`      // displacement of the whole engine [L]
	Cylinders int      `json:"cylinders"`    // number of cylinders
	VE        *float64 `json:"ve,omitempty"` // volumetric efficiency [0..1+]; optional
}

// NewEngine returns validated engine data
func NewEngine(displL float64, cylinders int, ve *float64) (o Engine, err error) {
	o = Engine{DisplL: displL, Cylinders: cylinders, VE: ve}
	err = o.Validate()
	return
}

// Validate checks displ_L > 0, cylinders > 0 and VE ≥ 0
func (o Engine) Validate() error {
	if err := positive("displ_L", o.DisplL); err != nil {
		return err
	}
	if o.Cylinders <= 0 {
		return chk.Err("cylinders must be > 0. cylinders = %d is invalid", o.Cylinders)
	}
	if o.VE != nil && *o.VE < 0 {
		return chk.Err("ve must be ≥ 0. ve = %g is invalid", *o.VE)
	}
	return nil
}

// VEor returns the volumetric efficiency or the fallback value if absent
func (o Engine) VEor(fallback float64) float64 {
	if o.VE != nil {
		return *o.VE
	}
	return fallback
}

// Geometry holds the cylinder head geometry. All lengths in metres
type Geometry struct {
	BoreM        float64  `json:"bore_m"`                   // cylinder bore
	ValveIntM    float64  `json:"valve_int_m"`              // intake valve diameter
	ValveExhM    float64  `json:"valve_exh_m"`              // exhaust valve diameter
	ThroatM      float64  `json:"throat_m"`                 // shared throat diameter
	ThroatIntM   *float64 `json:"throat_int_m,omitempty"`   // intake throat override
	ThroatExhM   *float64 `json:"throat_exh_m,omitempty"`   // exhaust throat override
	StemM        float64  `json:"stem_m"`                   // valve stem diameter
	PortVolumeCC *float64 `json:"port_volume_cc,omitempty"` // port volume [cm³]
	PortLengthM  *float64 `json:"port_length_m,omitempty"`  // port length
	SeatAngleDeg *float64 `json:"seat_angle_deg,omitempty"` // seat angle [deg]
	SeatWidthM   *float64 `json:"seat_width_m,omitempty"`   // seat width
}

// Valve returns the valve diameter of the given side
func (o Geometry) Valve(side Side) float64 {
	if side == Exhaust {
		return o.ValveExhM
	}
	return o.ValveIntM
}

// Throat returns the effective throat diameter of the given side: the per-side override if
// present, otherwise the shared throat
func (o Geometry) Throat(side Side) float64 {
	over := o.ThroatIntM
	if side == Exhaust {
		over = o.ThroatExhM
	}
	if over != nil {
		return *over
	}
	return o.ThroatM
}

// Validate checks positive lengths, stem < effective throat < valve on both sides
func (o Geometry) Validate() error {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"bore_m", o.BoreM},
		{"valve_int_m", o.ValveIntM},
		{"valve_exh_m", o.ValveExhM},
		{"throat_m", o.ThroatM},
	} {
		if err := positive(p.name, p.v); err != nil {
			return err
		}
	}
	for _, p := range []struct {
		name string
		v    *float64
	}{
		{"throat_int_m", o.ThroatIntM},
		{"throat_exh_m", o.ThroatExhM},
		{"port_volume_cc", o.PortVolumeCC},
		{"port_length_m", o.PortLengthM},
		{"seat_width_m", o.SeatWidthM},
	} {
		if p.v == nil {
			continue
		}
		if err := positive(p.name, *p.v); err != nil {
			return err
		}
	}
	if o.StemM < 0 {
		return chk.Err("stem_m must be ≥ 0. stem_m = %g is invalid", o.StemM)
	}
	if o.StemM >= o.ThroatM {
		return chk.Err("stem_m must be < throat_m. stem_m = %g, throat_m = %g", o.StemM, o.ThroatM)
	}
	for _, side := range []Side{Intake, Exhaust} {
		dt := o.Throat(side)
		if o.StemM >= dt {
			return chk.Err("stem_m must be < %s throat. stem_m = %g, throat = %g", side, o.StemM, dt)
		}
		if o.Valve(side) <= dt {
			return chk.Err("%s valve must be larger than its throat. valve = %g, throat = %g", side, o.Valve(side), dt)
		}
	}
	return nil
}

// LiftPoint holds one raw flow-bench reading
type LiftPoint struct {
	LiftMm   float64  `json:"lift_mm"`             // valve lift [mm]
	QCfm     float64  `json:"q_cfm"`               // measured flow [CFM]
	DpInH2O  *float64 `json:"dp_inH2O"`            // measured pressure drop [inH₂O]; null if unknown
	SwirlRpm *float64 `json:"swirl_rpm,omitempty"` // swirl meter reading [RPM]; optional
}

// NewLiftPoint returns a reading taken at the conventional 28" H₂O depression
func NewLiftPoint(liftMm, qCfm float64) LiftPoint {
	dp := phys.StdDpInH2O
	return LiftPoint{LiftMm: liftMm, QCfm: qCfm, DpInH2O: &dp}
}

// UnmarshalJSON reads a reading. An absent dp_inH2O means 28" H₂O; an explicit null means unknown
func (o *LiftPoint) UnmarshalJSON(b []byte) error {
	type plain LiftPoint
	dp := phys.StdDpInH2O
	p := plain{DpInH2O: &dp}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*o = LiftPoint(p)
	return nil
}

// Validate checks lift ≥ 0, flow ≥ 0, dp > 0 and swirl ≥ 0
func (o LiftPoint) Validate() error {
	if o.LiftMm < 0 {
		return chk.Err("lift_mm must be ≥ 0. lift_mm = %g is invalid", o.LiftMm)
	}
	if o.QCfm < 0 {
		return chk.Err("q_cfm must be ≥ 0. q_cfm = %g is invalid", o.QCfm)
	}
	if o.DpInH2O != nil {
		if err := positive("dp_inH2O", *o.DpInH2O); err != nil {
			return err
		}
	}
	if o.SwirlRpm != nil && *o.SwirlRpm < 0 {
		return chk.Err("swirl_rpm must be ≥ 0. swirl_rpm = %g is invalid", *o.SwirlRpm)
	}
	return nil
}

// FlowSeries holds the readings of both ports in measurement order
type FlowSeries struct {
	Intake  []LiftPoint `json:"intake"`
	Exhaust []LiftPoint `json:"exhaust"`
}

// CSAProfile holds cross-sectional areas of the port [m²]
type CSAProfile struct {
	MinCSAM2 *float64 `json:"min_csa_m2,omitempty"` // minimum cross-section
	AvgCSAM2 *float64 `json:"avg_csa_m2,omitempty"` // average cross-section
}

// Validate checks that given areas are positive
func (o CSAProfile) Validate() error {
	if o.MinCSAM2 != nil {
		if err := positive("min_csa_m2", *o.MinCSAM2); err != nil {
			return err
		}
	}
	if o.AvgCSAM2 != nil {
		if err := positive("avg_csa_m2", *o.AvgCSAM2); err != nil {
			return err
		}
	}
	return nil
}

// Session holds a complete raw measurement session. Sessions are never modified by the
// computations
type Session struct {
	Meta   map[string]interface{} // free-form metadata
	Mode   Mode                   // baseline or after
	Air    AirConditions          // air during the test
	Engine Engine                 // engine data
	Geom   Geometry               // head geometry
	Lifts  FlowSeries             // readings
	CSA    *CSAProfile            // optional cross-sections
	Tuning map[string]interface{} // optional free-form tuning data
}

// Validate checks all session data
func (o Session) Validate() error {
	if err := o.Mode.Validate(); err != nil {
		return err
	}
	if err := o.Air.Validate(); err != nil {
		return chk.Err("air: %v", err)
	}
	if err := o.Engine.Validate(); err != nil {
		return chk.Err("engine: %v", err)
	}
	if err := o.Geom.Validate(); err != nil {
		return chk.Err("geom: %v", err)
	}
	for _, side := range []Side{Intake, Exhaust} {
		for i, lp := range o.Points(side) {
			if err := lp.Validate(); err != nil {
				return chk.Err("lifts.%s[%d]: %v", side, i, err)
			}
		}
	}
	if o.CSA != nil {
		if err := o.CSA.Validate(); err != nil {
			return chk.Err("csa: %v", err)
		}
	}
	return nil
}

// Points returns the readings of the given side
func (o Session) Points(side Side) []LiftPoint {
	if side == Exhaust {
		return o.Lifts.Exhaust
	}
	return o.Lifts.Intake
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func positive(name string, v float64) error {
	if v <= 0 {
		return chk.Err("%s must be > 0. %s = %g is invalid", name, name, v)
	}
	return nil
}
