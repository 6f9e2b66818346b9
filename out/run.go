// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/iopflow/flowbench/eng"
	"github.com/iopflow/flowbench/flow"
	"github.com/iopflow/flowbench/inp"
)

// Series holds the computed series of a session
type Series struct {
	Intake  []flow.PointMetrics `json:"intake"`
	Exhaust []flow.PointMetrics `json:"exhaust"`
	EI      []flow.EIRow        `json:"ei"`
}

// Results holds the results of a complete session
type Results struct {
	Series Series                 `json:"series"`
	Engine eng.Metrics            `json:"engine"`
	Params Params                 `json:"params"`
	Meta   map[string]interface{} `json:"meta"`
	Mode   inp.Mode               `json:"mode"`
}

// RunAll processes a complete session: both series, E/I if both sides were measured, and the
// engine figures. The flow-limited rpm is computed from the intake series only.
// Note: rpm from CSA needs csa.avg_csa_m2; Mach at the minimum CSA needs csa.min_csa_m2 and intake
// readings; absent figures are null
func RunAll(s inp.Session, cfg *Config) (res *Results, err error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err = cfg.Validate(); err != nil {
		return
	}
	if err = s.Validate(); err != nil {
		return nil, chk.Err("invalid session:\n%v", err)
	}
	opts := cfg.Options()
	opts.AirRef = &s.Air

	// series
	res = new(Results)
	res.Series.Intake, err = flow.ComputeSeries(s, inp.Intake, opts)
	if err != nil {
		return nil, err
	}
	res.Series.Exhaust, err = flow.ComputeSeries(s, inp.Exhaust, opts)
	if err != nil {
		return nil, err
	}
	res.Series.EI = []flow.EIRow{}
	if len(res.Series.Intake) > 0 && len(res.Series.Exhaust) > 0 {
		res.Series.EI = flow.ComputeEI(res.Series.Intake, res.Series.Exhaust, cfg.EITol)
	}

	// engine
	if len(res.Series.Intake) > 0 {
		rpm, e := eng.RpmLimitedByFlow(res.Series.Intake, s.Engine, cfg.VEFallback, cfg.QHead)
		if e != nil {
			return nil, chk.Err("flow-limited rpm: %v", e)
		}
		res.Engine.RpmFlowLimit = &rpm
	}
	if s.CSA != nil {
		res.Engine.RpmFromCSA, err = eng.RpmFromCSA(s.CSA.AvgCSAM2, s.Engine, cfg.EngineVTarget, cfg.VEFallback)
		if err != nil {
			return nil, chk.Err("rpm from CSA: %v", err)
		}
		if s.CSA.MinCSAM2 != nil && len(res.Series.Intake) > 0 {
			res.Engine.MachMinCSA, err = eng.MachAtMinCSA(res.Series.Intake, *s.CSA.MinCSAM2, s.Air)
			if err != nil {
				return nil, chk.Err("Mach at min CSA: %v", err)
			}
		}
	}

	// params and meta
	res.Params = cfg.params()
	vt := cfg.EngineVTarget
	res.Params.EngineVTarget = &vt
	res.Meta = orEmpty(s.Meta)
	res.Mode = s.Mode

	if cfg.Verbose {
		io.Pforan("run: %d intake rows, %d exhaust rows, %d E/I rows\n", len(res.Series.Intake), len(res.Series.Exhaust), len(res.Series.EI))
		if mean, ok := flow.MeanEI(res.Series.EI); ok {
			io.Pforan("run: mean E/I = %.3f (healthy = %v)\n", mean, flow.Healthy(mean))
		}
		if res.Engine.RpmFlowLimit != nil {
			io.Pforan("run: rpm limited by flow = %.0f\n", *res.Engine.RpmFlowLimit)
		}
	}
	return
}
