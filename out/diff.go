// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/iopflow/flowbench/compare"
	"github.com/iopflow/flowbench/flow"
	"github.com/iopflow/flowbench/inp"
)

// SideDiff holds the comparison of one side
type SideDiff struct {
	Before     []flow.PointMetrics               `json:"before"`
	After      []flow.PointMetrics               `json:"after"`
	AlignedLen int                               `json:"aligned_len"`
	Diffs      map[compare.Key][]compare.DiffRow `json:"diffs"`
}

// MetaPair holds the metadata of the compared sessions
type MetaPair struct {
	Before map[string]interface{} `json:"before"`
	After  map[string]interface{} `json:"after"`
}

// Comparison holds the comparison of two sessions
type Comparison struct {
	Intake  SideDiff `json:"intake"`
	Exhaust SideDiff `json:"exhaust"`
	Params  Params   `json:"params"`
	Meta    MetaPair `json:"meta"`
}

// RunCompare compares two sessions side by side. Each session is referenced to its own air
func RunCompare(before, after inp.Session, cfg *Config) (res *Comparison, err error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err = cfg.Validate(); err != nil {
		return
	}
	if err = before.Validate(); err != nil {
		return nil, chk.Err("invalid 'before' session:\n%v", err)
	}
	if err = after.Validate(); err != nil {
		return nil, chk.Err("invalid 'after' session:\n%v", err)
	}
	res = new(Comparison)
	res.Intake, err = compareSide(before, after, inp.Intake, cfg)
	if err != nil {
		return nil, err
	}
	res.Exhaust, err = compareSide(before, after, inp.Exhaust, cfg)
	if err != nil {
		return nil, err
	}
	res.Params = cfg.params()
	res.Params.Keys = cfg.Keys
	res.Meta = MetaPair{orEmpty(before.Meta), orEmpty(after.Meta)}
	return
}

// compareSide computes both series of one side and the changes of all keys
func compareSide(before, after inp.Session, side inp.Side, cfg *Config) (sd SideDiff, err error) {
	opts := cfg.Options()
	opts.AirRef = &before.Air
	sd.Before, err = flow.ComputeSeries(before, side, opts)
	if err != nil {
		return sd, chk.Err("before: %v", err)
	}
	opts.AirRef = &after.Air
	sd.After, err = flow.ComputeSeries(after, side, opts)
	if err != nil {
		return sd, chk.Err("after: %v", err)
	}
	aligned := compare.AlignByLift(sd.Before, sd.After, cfg.Tol)
	sd.AlignedLen = len(aligned)
	sd.Diffs = make(map[compare.Key][]compare.DiffRow, len(cfg.Keys))
	for _, k := range cfg.Keys {
		sd.Diffs[k], err = compare.DiffPercent(aligned, k)
		if err != nil {
			return sd, chk.Err("%s: %v", side, err)
		}
	}
	if cfg.Verbose {
		io.Pforan("compare %s: %d before, %d after, %d aligned\n", side, len(sd.Before), len(sd.After), sd.AlignedLen)
	}
	return
}

// orEmpty returns m or an empty map if m is nil
func orEmpty(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return m
}
