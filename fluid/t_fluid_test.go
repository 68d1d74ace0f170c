// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_fluid01(tst *testing.T) {

	chk.PrintTitle("fluid01: water lookup and derived properties")

	water, err := Get("WaTeR")
	if err != nil {
		tst.Errorf("Get failed: %v", err)
		return
	}
	chk.Scalar(tst, "ρ", 1e-17, water.Density, 1000.0)
	chk.Scalar(tst, "μ", 1e-17, water.Viscosity, 1.0e-3)
	chk.Scalar(tst, "ν", 1e-17, water.Kinematic(), 1.0e-6)

	_, err = Get("mercury")
	if err == nil {
		tst.Errorf("Get should have failed for an unknown fluid")
	}
}

func Test_material01(tst *testing.T) {

	chk.PrintTitle("material01: pipe-wall material lookup")

	steel, err := GetMaterial("Steel")
	if err != nil {
		tst.Errorf("GetMaterial failed: %v", err)
		return
	}
	chk.Scalar(tst, "E(steel)", 1e-17, steel.YoungModulus, 200.0e9)

	copper, err := GetMaterial("copper")
	if err != nil {
		tst.Errorf("GetMaterial failed: %v", err)
		return
	}
	chk.Scalar(tst, "E(copper)", 1e-17, copper.YoungModulus, 117.0e9)

	if _, err := GetMaterial("wood"); err == nil {
		tst.Errorf("GetMaterial should have failed for an unknown material")
	}
}
