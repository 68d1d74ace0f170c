// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transient

import (
	"testing"

	"github.com/Milover/HydNet/fluid"
	"github.com/cpmech/gosl/chk"
)

func Test_solveQuadraticHead01(tst *testing.T) {

	chk.PrintTitle("solveQuadraticHead01: falls back to the linear solve when b1 vanishes (ψ=0)")

	h := solveQuadraticHead(0, 2, -10)
	chk.Scalar(tst, "h", 1e-12, h, 5)
}

func Test_solveQuadraticHead02(tst *testing.T) {

	chk.PrintTitle("solveQuadraticHead02: returns 0 when both b1 and b2 vanish")

	h := solveQuadraticHead(0, 0, -10)
	chk.Scalar(tst, "h", 1e-17, h, 0)
}

func Test_solveQuadraticHead03(tst *testing.T) {

	chk.PrintTitle("solveQuadraticHead03: clamps a negative discriminant to zero rather than going complex")

	// b2²-4·b1·b3 < 0 ⇒ disc is clamped to 0, root = -b2/(2·b1)
	h := solveQuadraticHead(1, 10, 100)
	chk.Scalar(tst, "h", 1e-12, h, -5)
}

func Test_gasFraction01(tst *testing.T) {

	chk.PrintTitle("gasFraction01: gas fraction rises as head approaches the vapour head and clamps to [0,1]")

	flu := fluid.Fluid{Density: 1000, RefPressure: 1.0e5, RefGasFraction: 0.02, VapourHead: -10}

	aFar := gasFraction(flu, 50, 0)
	aNear := gasFraction(flu, -9.999999, 0)

	if aFar < 0 || aFar > 1 {
		tst.Errorf("gasFraction out of [0,1]: %g", aFar)
	}
	if aNear < 0 || aNear > 1 {
		tst.Errorf("gasFraction out of [0,1]: %g", aNear)
	}
	if aNear < aFar {
		tst.Errorf("gas fraction should rise as head approaches the vapour head: far=%g near=%g", aFar, aNear)
	}
}
