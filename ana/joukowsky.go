// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana holds closed-form and ODE-integrated analytic references used
// to check the numerical solvers against known exact solutions.
package ana

// Joukowsky computes the classic instantaneous-valve-closure pressure rise
// (head rise, in metres) for a sudden stop of flow velocity dv at wave
// speed a: Δh = a・Δv / g. This is the textbook check for the fastest
// possible transient a pipe can produce, used to validate the MOC
// integrator's peak head against a value with no numerical approximation
// in it at all.
func Joukowsky(a, dv, g float64) float64 {
	return a * dv / g
}

// JoukowskyPressure is the same result expressed as a pressure rise,
// Δp = ρ・a・Δv, the form most hydraulic-transient references state it in.
func JoukowskyPressure(rho, a, dv float64) float64 {
	return rho * a * dv
}
