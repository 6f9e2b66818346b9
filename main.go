// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/iopflow/flowbench/eng"
	"github.com/iopflow/flowbench/inp"
	"github.com/iopflow/flowbench/mdl/power"
	"github.com/iopflow/flowbench/out"
	"github.com/iopflow/flowbench/phys"
	"github.com/iopflow/flowbench/tune"
)

const usage = `usage:
  flowbench run     session.json results.json [config.json]
  flowbench compare before.json after.json diff.json [config.json]
  flowbench schema  session.json
  flowbench runner  target_rpm q_peak_m3s [T_K]
  flowbench power   session.json [cfm|bsfc] [rpm_max]
`

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// command
	cmd := io.ArgToString(0, "")
	switch cmd {
	case "run":
		run()
	case "compare":
		cmp()
	case "schema":
		schema()
	case "runner":
		runner()
	case "power":
		pow()
	default:
		io.Pf("%s", usage)
	}
}

// config reads the optional configuration file given at argument idx
func config(idx int) *out.Config {
	fn := io.ArgToString(idx, "")
	if fn == "" {
		return out.NewConfig()
	}
	cfg, err := out.ReadConfig(fn)
	if err != nil {
		chk.Panic("%v", err)
	}
	return cfg
}

// session reads a session file or stops
func session(fn string) inp.Session {
	if fn == "" {
		chk.Panic("session filename is missing\n%s", usage)
	}
	s, err := inp.ReadSession(fn)
	if err != nil {
		chk.Panic("%v", err)
	}
	return *s
}

func run() {
	sfn := io.ArgToString(1, "")
	rfn := io.ArgToString(2, "results.json")
	cfg := config(3)
	cfg.Verbose = true
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"session file", "sfn", sfn,
		"results file", "rfn", rfn,
		"reference pressure drop [inH₂O]", "dp_ref", cfg.DpRefInH2O,
		"reference area", "a_ref_mode", string(cfg.ARefMode),
		"effective area blend", "eff_mode", string(cfg.EffMode),
	))
	res, err := out.RunAll(session(sfn), cfg)
	if err != nil {
		chk.Panic("run failed:\n%v", err)
	}
	if err = inp.WriteJSON(rfn, res); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("file <%s> written\n", rfn)
}

func cmp() {
	bfn := io.ArgToString(1, "")
	afn := io.ArgToString(2, "")
	dfn := io.ArgToString(3, "diff.json")
	cfg := config(4)
	cfg.Verbose = true
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"session before", "bfn", bfn,
		"session after", "afn", afn,
		"comparison file", "dfn", dfn,
		"compared metrics", "keys", io.Sf("%v", cfg.Keys),
	))
	res, err := out.RunCompare(session(bfn), session(afn), cfg)
	if err != nil {
		chk.Panic("compare failed:\n%v", err)
	}
	for _, k := range cfg.Keys {
		for _, r := range res.Intake.Diffs[k] {
			io.Pf("intake %-10s lift = %6.2f mm  Δ = %+7.2f %%\n", k, r.LiftM*1000, r.DeltaPct)
		}
	}
	if err = inp.WriteJSON(dfn, res); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("file <%s> written\n", dfn)
}

func schema() {
	fn := io.ArgToString(1, "session.json")
	if err := inp.WriteSession(fn, inp.ExampleSession()); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("file <%s> written\n", fn)
}

func runner() {
	rpm := io.ArgToFloat(1, 6500)
	q := io.ArgToFloat(2, 0.12)
	T := io.ArgToFloat(3, phys.CToK(20))
	a := phys.SpeedOfSound(T)
	var bounds tune.Bounds
	var grid tune.GridOptions
	bounds.SetDefault()
	grid.SetDefault()
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"target rpm", "rpm", rpm,
		"peak flow [m³/s]", "q", q,
		"gas temperature [K]", "T", T,
	))
	best, score, err := tune.GridSearchRunner(a, rpm, q, eng.DefaultVTarget, bounds, grid)
	if err != nil {
		chk.Panic("runner search failed:\n%v", err)
	}
	io.PfWhite("runner: L = %.1f mm  d = %.1f mm  order = %d  score = %.1f  (%s)\n", best.LM*1000, best.DM*1000, best.Order, score, best.Note)
	for n := 1; n <= 3; n++ {
		L, err := tune.QuarterWaveLPhys(rpm, n, best.DM, T)
		if err != nil {
			chk.Panic("%v", err)
		}
		io.Pf("quarter-wave n = %d: L = %.1f mm\n", n, L*1000)
	}
	csa, err := tune.CSAFromFlowAndVelocity(q, eng.DefaultVTarget)
	if err != nil {
		chk.Panic("%v", err)
	}
	d, _ := tune.DiameterFromCSA(csa)
	io.Pf("CSA at %g m/s: %.1f mm² (d = %.1f mm)\n", eng.DefaultVTarget, csa*1e6, d*1000)
}

func pow() {
	s := session(io.ArgToString(1, ""))
	kind := power.Kind(io.ArgToString(2, string(power.BSFC)))
	rpmMax := io.ArgToFloat(3, 8000)
	mdl, err := power.New(kind, nil)
	if err != nil {
		chk.Panic("%v", err)
	}
	rho, err := power.RhoFor(s, power.RhoBench, power.DefaultRho)
	if err != nil {
		chk.Panic("%v", err)
	}

	// cap at the flow-limited rpm
	var rpmCap *float64
	if res, err := out.RunAll(s, nil); err == nil {
		rpmCap = res.Engine.RpmFlowLimit
	}
	c, err := power.NewCurve(mdl, s, utl.LinSpace(1000, rpmMax, 15), rho, rpmCap)
	if err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("%8s %10s\n", "rpm", "hp")
	for i, rpm := range c.Rpm {
		io.Pf("%8.0f %10.1f\n", rpm, c.Hp[i])
	}
	io.PfWhite("peak: %.1f hp at %.0f rpm\n", c.PeakHp, c.PeakRpm)
}
