// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package power

import (
	"github.com/cpmech/gosl/chk"
	"github.com/iopflow/flowbench/phys"
)

// HpFromCFM computes power from flow with the rule of thumb hp = CFM / cfm_per_hp
func HpFromCFM(cfm, cfmPerHp float64) (float64, error) {
	if cfm < 0 || cfmPerHp <= 0 {
		return 0, chk.Err("hp from CFM requires CFM ≥ 0 and CFM/hp > 0. CFM = %g, CFM/hp = %g", cfm, cfmPerHp)
	}
	return cfm / cfmPerHp, nil
}

// HpFromMassAir computes power from the air mass flow [kg/s]
//
//	hp = (ṁ_air / AFR)・7936.641 / BSFC
func HpFromMassAir(mAir, afr, bsfc float64) (float64, error) {
	if mAir < 0 || afr <= 0 || bsfc <= 0 {
		return 0, chk.Err("hp from air mass requires ṁ ≥ 0, AFR > 0 and BSFC > 0. ṁ = %g, AFR = %g, BSFC = %g", mAir, afr, bsfc)
	}
	return mAir / afr * phys.LbPerHrPerKgS / bsfc, nil
}

// HpRotTotal computes the total power with the rule of thumb hp = k・CFM at 28" H₂O (k ≈ 0.26)
func HpRotTotal(cfmTotal, k float64) (float64, error) {
	if cfmTotal < 0 || k <= 0 {
		return 0, chk.Err("hp rule of thumb requires CFM ≥ 0 and k > 0. CFM = %g, k = %g", cfmTotal, k)
	}
	return k * cfmTotal, nil
}
