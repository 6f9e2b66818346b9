// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/iopflow/flowbench/inp"
	"github.com/iopflow/flowbench/mdl/blend"
	"github.com/iopflow/flowbench/phys"
)

func fptr(v float64) *float64 { return &v }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// withExhaust returns the example session with an exhaust series flowing frac of the intake
func withExhaust(frac float64) inp.Session {
	s := inp.ExampleSession()
	for _, lp := range s.Lifts.Intake {
		s.Lifts.Exhaust = append(s.Lifts.Exhaust, inp.NewLiftPoint(lp.LiftMm, frac*lp.QCfm))
	}
	return s
}

func Test_normalize01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("normalize01. reference conditions")

	air, _ := inp.NewAir(101325, 293.15, 0)

	// identity
	np, err := NormalizePoint(inp.NewLiftPoint(3, 220), air, 28, nil)
	if err != nil {
		tst.Errorf("NormalizePoint failed: %v\n", err)
		return
	}
	chk.Float64(tst, "lift", 1e-17, np.LiftM, 0.003)
	chk.Float64(tst, "q_meas", 1e-15, np.QMeasM3s, phys.CfmToM3s(220))
	chk.Float64(tst, "q_ref = q_meas", 1e-15, np.QRefM3s, np.QMeasM3s)
	chk.Float64(tst, "ρ_ref = ρ_meas", 1e-15, np.RhoRef, np.RhoMeas)
	chk.Float64(tst, "dp_ref", 1e-10, np.DpRefPa, 28*phys.PaPerInH2O)

	// pressure drop scaling
	lp := inp.NewLiftPoint(3, 150)
	lp.DpInH2O = fptr(10)
	np, _ = NormalizePoint(lp, air, 28, nil)
	chk.Float64(tst, "dp_meas", 1e-10, *np.DpMeasPa, 10*phys.PaPerInH2O)
	chk.Float64(tst, "q_ref scaled", 1e-15, np.QRefM3s, phys.CfmToM3s(150)*math.Sqrt(2.8))

	// missing dp: only density correction
	warm, _ := inp.NewAir(101325, 313.15, 0)
	lp = inp.LiftPoint{LiftMm: 3, QCfm: 150, SwirlRpm: fptr(1200)}
	np, _ = NormalizePoint(lp, warm, 28, &air)
	if np.DpMeasPa != nil {
		tst.Errorf("dp_meas must be absent\n")
	}
	chk.Float64(tst, "q_ref density", 1e-15, np.QRefM3s, phys.CfmToM3s(150)*math.Sqrt(warm.Rho()/air.Rho()))
	chk.Float64(tst, "swirl", 1e-15, *np.SwirlRpm, 1200)

	if _, err = NormalizePoint(lp, air, 0, nil); err == nil {
		tst.Errorf("dp_ref = 0 must fail\n")
	}

	// order and count are preserved
	pts := []inp.LiftPoint{inp.NewLiftPoint(5, 290), inp.NewLiftPoint(1, 120), inp.NewLiftPoint(3, 220), inp.NewLiftPoint(3, 220)}
	nps, err := NormalizeSeries(pts, air, 28, nil)
	if err != nil {
		tst.Errorf("NormalizeSeries failed: %v\n", err)
		return
	}
	chk.Int(tst, "len", len(nps), len(pts))
	for i, p := range pts {
		chk.Float64(tst, "lift", 1e-17, nps[i].LiftM, p.LiftMm/1000.0)
	}

	// a single bad point aborts the series
	pts[2].DpInH2O = fptr(0)
	if _, err = NormalizeSeries(pts, air, 28, nil); err == nil {
		tst.Errorf("series with invalid point must fail\n")
	}
}

func Test_normalize02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("normalize02. readings decoded without dp are taken at 28\"")

	var s inp.Session
	err := json.Unmarshal([]byte(`{"meta":{},"mode":"baseline","air":{"p_tot":101325,"T":293.15,"RH":0},
	"engine":{"displ_L":2,"cylinders":4},
	"geom":{"bore_m":0.086,"valve_int_m":0.046,"valve_exh_m":0.04,"throat_m":0.034,"stem_m":0.007},
	"lifts":{"intake":[{"lift_mm":6,"q_cfm":220},{"lift_mm":8,"q_cfm":250,"dp_inH2O":null}],"exhaust":[]}}`), &s)
	if err != nil {
		tst.Errorf("decode failed: %v\n", err)
		return
	}
	nps, err := NormalizeSeries(s.Lifts.Intake, s.Air, 20, nil)
	if err != nil {
		tst.Errorf("NormalizeSeries failed: %v\n", err)
		return
	}
	io.Pforan("q_ref = %v\n", nps[0].QRefM3s)
	chk.Float64(tst, "q_ref at 20\"", 1e-15, nps[0].QRefM3s, phys.CfmToM3s(220)*math.Sqrt(20.0/28.0))
	chk.Float64(tst, "q_ref unknown dp", 1e-15, nps[1].QRefM3s, phys.CfmToM3s(250))
}

func Test_point01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("point01. metrics of one point")

	s := inp.ExampleSession()
	np, _ := NormalizePoint(inp.NewLiftPoint(10, 300), s.Air, 28, nil)
	sm, _ := blend.New(blend.SmoothMin, nil)

	for _, mode := range []ARefMode{ARefThroat, ARefCurtain, ARefEff} {
		m, err := ComputePoint(np, s.Geom, s.Air, inp.Intake, mode, sm)
		if err != nil {
			tst.Errorf("ComputePoint(%s) failed: %v\n", mode, err)
			return
		}
		var area float64
		switch mode {
		case ARefThroat:
			area = m.AThroat
		case ARefCurtain:
			area = m.ACurtain
		default:
			area = m.AEff
		}
		chk.String(tst, string(m.ARefKey), string(mode))
		chk.Float64(tst, "A_curtain", 1e-15, m.ACurtain, math.Pi*0.046*0.010)
		chk.Float64(tst, "A_throat", 1e-15, m.AThroat, math.Pi*(0.034*0.034-0.007*0.007)/4)
		chk.Float64(tst, "L/D", 1e-15, m.LOverD, 0.010/0.046)
		chk.Float64(tst, "V", 1e-12, m.VRef, np.QRefM3s/area)
		chk.Float64(tst, "Cd", 1e-12, m.CdRef, np.QRefM3s/(area*math.Sqrt(2*np.DpRefPa/s.Air.Rho())))
		chk.Float64(tst, "Mach", 1e-12, m.MachRef, m.VRef/phys.SpeedOfSound(s.Air.T))
		if m.SR != nil {
			tst.Errorf("SR must be absent\n")
		}
		io.Pforan("%-7s Cd = %.4f  V = %.2f  M = %.4f\n", mode, m.CdRef, m.VRef, m.MachRef)
	}

	// per-side throat override
	s.Geom.ThroatExhM = fptr(0.030)
	m, _ := ComputePoint(np, s.Geom, s.Air, inp.Exhaust, ARefThroat, sm)
	chk.Float64(tst, "exhaust throat", 1e-15, m.ThroatUsedM, 0.030)
	m, _ = ComputePoint(np, s.Geom, s.Air, inp.Intake, ARefThroat, sm)
	chk.Float64(tst, "intake throat", 1e-15, m.ThroatUsedM, 0.034)

	// failures
	if _, err := ComputePoint(np, s.Geom, s.Air, inp.Intake, "area", sm); err == nil {
		tst.Errorf("unknown reference area must fail\n")
	}
	if _, err := ComputePoint(np, s.Geom, s.Air, inp.Intake, ARefEff, nil); err == nil {
		tst.Errorf("missing blend model must fail\n")
	}
	closed, _ := NormalizePoint(inp.NewLiftPoint(0, 0), s.Air, 28, nil)
	if _, err := ComputePoint(closed, s.Geom, s.Air, inp.Intake, ARefCurtain, sm); err == nil {
		tst.Errorf("zero curtain area must fail\n")
	}

	// swirl
	np.SwirlRpm = fptr(1500)
	sr, err := SwirlForPoint(np, s.Geom)
	if err != nil || sr == nil {
		tst.Errorf("SwirlForPoint failed: %v\n", err)
		return
	}
	vbar := np.QRefM3s / (math.Pi * 0.086 * 0.086 / 4)
	chk.Float64(tst, "SR", 1e-12, *sr, 2*math.Pi*1500/60*0.043/vbar)
}

func Test_series01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("series01. intake series of the example head")

	s := inp.ExampleSession()
	opts := NewOptions()
	res, err := ComputeSeries(s, inp.Intake, opts)
	if err != nil {
		tst.Errorf("ComputeSeries failed: %v\n", err)
		return
	}
	chk.Int(tst, "rows", len(res), 5)
	lifts := []float64{0.001, 0.002, 0.003, 0.004, 0.005}
	for i, m := range res {
		if m.LiftM != lifts[i] {
			tst.Errorf("row %d: lift = %v must be exactly %v\n", i, m.LiftM, lifts[i])
		}
		for _, v := range []float64{m.ACurtain, m.AThroat, m.AEff, m.CdRef, m.VRef, m.MachRef} {
			if !finite(v) {
				tst.Errorf("row %d: metrics must be finite\n", i)
			}
		}
		if m.ARefKey != ARefEff {
			tst.Errorf("row %d: reference area must be eff\n", i)
		}
	}

	// determinism
	again, _ := ComputeSeries(s, inp.Intake, opts)
	if !reflect.DeepEqual(res, again) {
		tst.Errorf("repeated computations must be identical\n")
	}

	// empty side
	exh, err := ComputeSeries(s, inp.Exhaust, opts)
	if err != nil {
		tst.Errorf("empty side failed: %v\n", err)
	}
	chk.Int(tst, "exhaust rows", len(exh), 0)

	// logistic blend
	opts.Eff = blend.Logistic
	lg, err := ComputeSeries(s, inp.Intake, opts)
	if err != nil {
		tst.Errorf("logistic series failed: %v\n", err)
		return
	}
	chk.Int(tst, "logistic rows", len(lg), 5)

	// invalid options
	opts = NewOptions()
	opts.ARef = "seat"
	if _, err = ComputeSeries(s, inp.Intake, opts); err == nil {
		tst.Errorf("invalid reference area must fail\n")
	}
	opts = NewOptions()
	opts.SmoothN = 0
	if _, err = ComputeSeries(s, inp.Intake, opts); err == nil {
		tst.Errorf("n = 0 must fail\n")
	}

	// closed valve aborts the series
	s.Lifts.Intake = append(s.Lifts.Intake, inp.NewLiftPoint(0, 0))
	if _, err = ComputeSeries(s, inp.Intake, NewOptions()); err == nil {
		tst.Errorf("zero lift with eff reference must fail\n")
	}

	if chk.Verbose {
		x := make([]float64, len(res))
		y := make([]float64, len(res))
		for i, m := range res {
			x[i], y[i] = m.LOverD, m.CdRef
		}
		plt.Reset(false, nil)
		plt.Plot(x, y, &plt.A{C: "r", M: "o", L: "intake"})
		plt.Gll("$L/D$", "$C_d$", nil)
		plt.Save("/tmp/flowbench", "fig_series01")
	}
}

func Test_ei01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ei01. exhaust over intake")

	s := withExhaust(0.78)
	opts := NewOptions()
	in, _ := ComputeSeries(s, inp.Intake, opts)
	ex, _ := ComputeSeries(s, inp.Exhaust, opts)
	rows := ComputeEI(in, ex, DefaultTol)
	chk.Int(tst, "rows", len(rows), 5)
	for _, r := range rows {
		chk.Float64(tst, "EI", 1e-12, r.EI, r.QExhM3s/r.QIntM3s)
	}
	mean, ok := MeanEI(rows)
	io.Pforan("mean E/I = %v\n", mean)
	if !ok || !Healthy(mean) {
		tst.Errorf("mean E/I = %v must be within the healthy band\n", mean)
	}
	if _, ok = MeanEI(nil); ok {
		tst.Errorf("mean of no rows must not be ok\n")
	}

	// unmatched leading rows are skipped
	a := []PointMetrics{{LiftM: 0.001, QRefM3s: 0.05}, {LiftM: 0.002, QRefM3s: 0.08}, {LiftM: 0.003, QRefM3s: 0.1}}
	b := []PointMetrics{{LiftM: 0.0015, QRefM3s: 0.04}, {LiftM: 0.002 + 1e-7, QRefM3s: 0.06}, {LiftM: 0.003, QRefM3s: 0.08}}
	pairs := AlignByLift(a, b, DefaultTol)
	chk.Int(tst, "pairs", len(pairs), 2)
	chk.Float64(tst, "lift 0", 1e-17, pairs[0].A.LiftM, 0.002)
	chk.Float64(tst, "lift 1", 1e-17, pairs[1].B.LiftM, 0.003)

	// pairs with no intake flow are dropped
	a[1].QRefM3s = 0
	rows = ComputeEI(a, b, DefaultTol)
	chk.Int(tst, "rows without zero intake", len(rows), 1)
	chk.Float64(tst, "EI", 1e-15, rows[0].EI, 0.8)
}
