// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package physics implements the shared steady-friction, momentum-correction
// and wave-celerity models used by both the steady and transient solvers
package physics

import "math"

// MaxFricIter is the iteration cap for the Colebrook-White fixed point and
// for any other fixed-point loop in this package (spec §4.5, §7)
const MaxFricIter = 1000

// FricTol is the convergence tolerance for the friction-factor fixed point
const FricTol = 1e-15

// Reynolds computes the Reynolds number for a pipe flow
func Reynolds(velocity, density, diameter, viscosity float64) float64 {
	return math.Abs(velocity) * density * diameter / viscosity
}

// Friction computes the Darcy friction factor λ for a pipe of diameter d and
// absolute roughness ε given the Reynolds number. Laminar flow (Re<2320)
// uses λ=64/Re; turbulent flow uses a Colebrook-White fixed-point iteration
// starting from 0.015. Re==0 returns λ=0 (no velocity ⇒ no friction, and no
// NaN is produced by a Re-based division)
func Friction(re, d, eps float64) (lambda float64, niter int, err error) {
	if re == 0 {
		return 0, 0, nil
	}
	if re < 2320 {
		return 64.0 / re, 0, nil
	}
	lambda = 0.015
	for niter = 1; niter <= MaxFricIter; niter++ {
		denom := -2.0 * math.Log10(eps/(3.7075*d)+2.523/(re*math.Sqrt(lambda)))
		next := 1.0 / (denom * denom)
		if math.Abs(next-lambda) < FricTol {
			lambda = next
			return
		}
		lambda = next
	}
	return
}
