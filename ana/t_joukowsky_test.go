// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_joukowsky01(tst *testing.T) {

	chk.PrintTitle("joukowsky01: head rise scales linearly with celerity and velocity change")

	// spec §8 S4: instantaneous closure, a≈1200 m/s, Δv=4 m/s ⇒ ΔH≈489 m
	dh := Joukowsky(1200, 4, 9.81)
	chk.Scalar(tst, "ΔH", 1e-9, dh, 1200*4/9.81)
	if dh <= 480 || dh >= 500 {
		tst.Errorf("ΔH=%g outside the S4 sanity range", dh)
	}
}

func Test_joukowsky02(tst *testing.T) {

	chk.PrintTitle("joukowsky02: pressure-form matches the S4 ≈4.8 MPa expectation")

	// ρ=1000, a=1200 m/s, Δv=4 m/s ⇒ Δp = ρ·a·Δv = 4.8 MPa
	dp := JoukowskyPressure(1000, 1200, 4)
	chk.Scalar(tst, "Δp", 1e-6, dp, 4.8e6)
}

func Test_joukowsky03(tst *testing.T) {

	chk.PrintTitle("joukowsky03: zero velocity change produces zero head/pressure rise")

	chk.Scalar(tst, "ΔH(Δv=0)", 1e-17, Joukowsky(1200, 0, 9.81), 0)
	chk.Scalar(tst, "Δp(Δv=0)", 1e-17, JoukowskyPressure(1000, 1200, 0), 0)
}
