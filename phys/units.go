// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

// conversion factors
const (
	PaPerInH2O     = 249.0889             // Pa per inch of water column (≈4°C)
	CfmToM3sFactor = 4.719474e-4          // 1 CFM => m³/s
	M3sToCfmFactor = 1.0 / CfmToM3sFactor // 1 m³/s => CFM
	LbPerHrPerKgS  = 7936.641             // 1 kg/s => lb/h
	LitreToM3      = 1e-3                 // 1 L => m³
	MmToM          = 1e-3                 // 1 mm => m
	ZeroCelsius    = 273.15               // 0°C in K
	StdDpInH2O     = 28.0                 // conventional test depression [inH₂O]
)

// InH2OToPa converts inches of water column to pascal
func InH2OToPa(inH2O float64) float64 { return inH2O * PaPerInH2O }

// PaToInH2O converts pascal to inches of water column
func PaToInH2O(pa float64) float64 { return pa / PaPerInH2O }

// CfmToM3s converts cubic feet per minute to m³/s
func CfmToM3s(q float64) float64 { return q * CfmToM3sFactor }

// M3sToCfm converts m³/s to cubic feet per minute
func M3sToCfm(q float64) float64 { return q * M3sToCfmFactor }

// CToK converts Celsius to Kelvin
func CToK(tC float64) float64 { return tC + ZeroCelsius }

// FToK converts Fahrenheit to Kelvin
func FToK(tF float64) float64 { return (tF-32.0)*5.0/9.0 + ZeroCelsius }
