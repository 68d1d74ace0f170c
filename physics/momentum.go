// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "math"

// machineEps is the threshold below which the Reynolds number is treated as
// exactly zero for the purpose of the momentum-correction model
const machineEps = 2.220446049250313e-16

// MomentumCorrection computes the momentum-correction coefficient β (spec
// §4.6). Re below machine epsilon gives β=1 (no flow, no correction);
// laminar flow (Re<2320) uses a pressure/elevation-drop based estimate that
// needs the pipe diameter d; turbulent flow uses the Zagarola(1997)/
// Chen(1992) log-law closure, which does not depend on d. The result is
// always clamped to β≥1
func MomentumCorrection(re, pStart, pEnd, zStart, zEnd, density, g, viscosity, velocity, length, d float64) float64 {
	if re < machineEps {
		return 1
	}
	var beta float64
	if re < 2320 {
		num := (pEnd-pStart) + density*g*(zEnd-zStart)
		term := num * d * d / (4.0 * viscosity * math.Abs(velocity) * length)
		beta = term * term / 42.0
	} else {
		lnre := math.Log(re)
		alpha := 1.085/lnre + 6.535/(lnre*lnre)
		beta = (1 + alpha) * (2 + alpha) * (2 + alpha) / (4 * (1 + 2*alpha))
	}
	if beta < 1 {
		return 1
	}
	return beta
}
