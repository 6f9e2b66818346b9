// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tune

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/iopflow/flowbench/phys"
)

func Test_qwave01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("qwave01. quarter-wave length and rpm")

	a := phys.SpeedOfSound(293.15)
	f, err := EventFreq(6000)
	if err != nil {
		tst.Errorf("EventFreq failed: %v\n", err)
		return
	}
	chk.Float64(tst, "f", 1e-15, f, 50)

	for _, order := range []int{1, 2, 3} {
		L, err := QuarterWaveLength(a, f, order, DefaultEndCorr, 0.02)
		if err != nil {
			tst.Errorf("QuarterWaveLength failed: %v\n", err)
			return
		}
		chk.Float64(tst, "L", 1e-12, L, a*float64(2*order-1)/200.0-0.012)
		rpm, err := RpmFromQuarterWave(a, L, order, 0.02, DefaultEndCorr)
		if err != nil {
			tst.Errorf("RpmFromQuarterWave failed: %v\n", err)
			return
		}
		chk.Float64(tst, "round trip rpm", 1e-9, rpm, 6000)
	}

	// clamp at zero
	L, _ := QuarterWaveLength(a, 5000, 1, DefaultEndCorr, 0.05)
	chk.Float64(tst, "clamped L", 1e-17, L, 0)

	if _, err = EventFreq(0); err == nil {
		tst.Errorf("rpm = 0 must fail\n")
	}
	if _, err = QuarterWaveLength(a, f, 0, DefaultEndCorr, 0); err == nil {
		tst.Errorf("order = 0 must fail\n")
	}
	if _, err = RpmFromQuarterWave(a, 0, 1, 0, DefaultEndCorr); err == nil {
		tst.Errorf("L = 0 must fail\n")
	}

	// physical helpers
	Lrec, err := QuarterWaveLPhys(6500, 2, 0.05, 293.15)
	if err != nil {
		tst.Errorf("QuarterWaveLPhys failed: %v\n", err)
		return
	}
	io.Pforan("L(6500 rpm, n=2) = %.4f m\n", Lrec)
	if Lrec < 0.25 || Lrec > 0.55 {
		tst.Errorf("recommended length is out of range: %v\n", Lrec)
	}
	rpm, _ := QuarterWaveRpmForL(Lrec, 2, 0.05, 293.15)
	chk.Float64(tst, "L phys round trip", 1e-9, rpm, 6500)
	rpm, _ = QuarterWaveRpmForL(0.30, 2, 0.05, 293.15)
	if rpm < 2000 || rpm > 11000 {
		tst.Errorf("rpm for L = 0.3 m is out of range: %v\n", rpm)
	}
	if _, err = QuarterWaveLPhys(6500, 0, 0.05, 293.15); err == nil {
		tst.Errorf("n = 0 must fail\n")
	}
	if _, err = QuarterWaveRpmForL(0.3, 1, 0.05, 0); err == nil {
		tst.Errorf("T = 0 must fail\n")
	}

	// hotter gas => longer runner
	Lhot, _ := QuarterWaveLPhys(6500, 1, 0.04, 900)
	Lcold, _ := QuarterWaveLPhys(6500, 1, 0.04, 293.15)
	if Lhot <= Lcold {
		tst.Errorf("exhaust runner must be longer than intake runner\n")
	}
}

func Test_phase01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phase01. runner length from crank angle")

	T := 293.15
	a := phys.SpeedOfSound(T)
	L, err := RunnerLengthPhase(6000, T, 90, 1)
	if err != nil {
		tst.Errorf("RunnerLengthPhase failed: %v\n", err)
		return
	}
	chk.Float64(tst, "L", 1e-12, L, a*0.25*0.01/2.0)
	L2, _ := RunnerLengthPhase(6000, T, 90, 2)
	chk.Float64(tst, "L harmonic 2", 1e-12, L2, L/2)
	Llow, _ := RunnerLengthPhase(3000, T, 90, 1)
	Lhigh, _ := RunnerLengthPhase(9000, T, 90, 1)
	if Llow <= Lhigh {
		tst.Errorf("length must decrease with rpm\n")
	}
	for _, phi := range []float64{0, 400} {
		if _, err = RunnerLengthPhase(6000, T, phi, 1); err == nil {
			tst.Errorf("φ = %g must fail\n", phi)
		}
	}
	if _, err = RunnerLengthPhase(6000, T, 90, 0); err == nil {
		tst.Errorf("harmonic = 0 must fail\n")
	}
}

func Test_helmholtz01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("helmholtz01. plenum resonance")

	a := phys.SpeedOfSound(293.15)
	A := phys.AreaCircle(0.05)
	V, err := HelmholtzVolume(a, A, 0.33, 80)
	if err != nil {
		tst.Errorf("HelmholtzVolume failed: %v\n", err)
		return
	}
	f, _ := HelmholtzFreq(a, A, 0.33, V)
	chk.Float64(tst, "f round trip", 1e-10, f, 80)

	f, rpm, err := HelmholtzFAndRpm(0.05, 0.30, 0.0035, 2, 293.15)
	if err != nil {
		tst.Errorf("HelmholtzFAndRpm failed: %v\n", err)
		return
	}
	io.Pforan("f_H = %.2f Hz  rpm = %.0f\n", f, rpm)
	if f < 50 || f > 200 {
		tst.Errorf("f_H is out of range: %v\n", f)
	}
	if rpm < 1000 || rpm > 20000 {
		tst.Errorf("rpm is out of range: %v\n", rpm)
	}
	chk.Float64(tst, "rpm", 1e-9, rpm, f*60)

	// bigger plenum => lower frequency
	fBig, _, _ := HelmholtzFAndRpm(0.05, 0.30, 0.007, 2, 293.15)
	if fBig >= f {
		tst.Errorf("frequency must decrease with volume\n")
	}
	if _, _, err = HelmholtzFAndRpm(0.05, 0.30, 0, 2, 293.15); err == nil {
		tst.Errorf("V = 0 must fail\n")
	}
	if _, err = HelmholtzVolume(a, A, 0.33, 0); err == nil {
		tst.Errorf("f = 0 must fail\n")
	}

	// plenum hint
	Vh, err := PlenumVolumeHint(2.0, 4, 1.5)
	if err != nil {
		tst.Errorf("PlenumVolumeHint failed: %v\n", err)
		return
	}
	chk.Float64(tst, "V hint", 1e-15, Vh, 0.003)
	Vh2, _ := PlenumVolumeHint(2.0, 4, 2.0)
	if Vh2 <= Vh {
		tst.Errorf("volume must increase with k\n")
	}
	if _, err = PlenumVolumeHint(0, 4, 1.5); err == nil {
		tst.Errorf("displ = 0 must fail\n")
	}
	if _, err = PlenumVolumeHint(2.0, 0, 1.5); err == nil {
		tst.Errorf("cylinders = 0 must fail\n")
	}
}

func Test_sizing01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sizing01. cross-sections")

	A, err := CSAFromFlowAndVelocity(0.12, 80)
	if err != nil {
		tst.Errorf("CSAFromFlowAndVelocity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A", 1e-15, A, 0.0015)
	d, _ := DiameterFromCSA(A)
	chk.Float64(tst, "A(d)", 1e-15, phys.AreaCircle(d), A)
	m2, mm2, _ := CollectorCSA(0.12, 80)
	chk.Float64(tst, "m²", 1e-15, m2, A)
	chk.Float64(tst, "mm²", 1e-9, mm2, 1500)
	if _, err = CSAFromFlowAndVelocity(0.12, 0); err == nil {
		tst.Errorf("v = 0 must fail\n")
	}
	if _, err = DiameterFromCSA(0); err == nil {
		tst.Errorf("A = 0 must fail\n")
	}
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. runner grid search")

	a := phys.SpeedOfSound(293.15)
	var b Bounds
	var g GridOptions
	b.SetDefault()
	g.SetDefault()

	best, score, err := GridSearchRunner(a, 6500, 0.10, 100, b, g)
	if err != nil {
		tst.Errorf("GridSearchRunner failed: %v\n", err)
		return
	}
	io.Pforan("best = %+v  score = %.3f\n", best, score)
	if best.LM < b.LMin || best.LM > b.LMax || best.DM < b.DMin || best.DM > b.DMax {
		tst.Errorf("best runner is out of bounds: %+v\n", best)
	}
	if score < 0 {
		tst.Errorf("score must be ≥ 0: %v\n", score)
	}
	chk.Float64(tst, "A", 1e-15, best.AM2, phys.AreaCircle(best.DM))
	rpm, _ := RpmFromQuarterWave(a, best.LM, best.Order, best.DM/2, g.EndCorr)
	v := 0.10 / best.AM2
	chk.Float64(tst, "score", 1e-9, score, math.Abs(6500-rpm)+math.Max(0, v-100)*10)

	// deterministic
	best2, score2, _ := GridSearchRunner(a, 6500, 0.10, 100, b, g)
	if best2 != best || score2 != score {
		tst.Errorf("repeated searches must be identical\n")
	}

	// without end correction all diameters tie: the first one wins
	g.EndCorr = 0
	g.Orders = []int{1, 1}
	best, _, _ = GridSearchRunner(a, 6500, 0.01, 1000, b, g)
	chk.Float64(tst, "first diameter", 1e-17, best.DM, b.DMin)
	chk.Int(tst, "order", best.Order, 1)

	// single-point grid
	g.SetDefault()
	g.NL, g.ND = 1, 1
	best, _, _ = GridSearchRunner(a, 6500, 0.10, 100, b, g)
	chk.Float64(tst, "L_min", 1e-17, best.LM, b.LMin)
	chk.Float64(tst, "d_min", 1e-17, best.DM, b.DMin)

	// invalid input
	g.SetDefault()
	bad := b
	bad.LMin, bad.LMax = 0.6, 0.2
	if _, _, err = GridSearchRunner(a, 6500, 0.10, 100, bad, g); err == nil {
		tst.Errorf("inverted bounds must fail\n")
	}
	if _, _, err = GridSearchRunner(a, 0, 0.10, 100, b, g); err == nil {
		tst.Errorf("rpm = 0 must fail\n")
	}
	g.Orders = []int{0, -1}
	if _, _, err = GridSearchRunner(a, 6500, 0.10, 100, b, g); err == nil {
		tst.Errorf("no valid order must fail\n")
	}

	if chk.Verbose {
		g.SetDefault()
		X := utl.LinSpace(b.LMin, b.LMax, 41)
		Y := make([]float64, len(X))
		for i, L := range X {
			Y[i], _ = RpmFromQuarterWave(a, L, 1, 0.02, g.EndCorr)
		}
		plt.Reset(false, nil)
		plt.Plot(X, Y, &plt.A{C: "r", Ls: "-", L: "order 1, d = 40 mm"})
		plt.Gll("$L$ [m]", "rpm", nil)
		plt.Save("/tmp/flowbench", "fig_grid01")
	}
}
