// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
)

// RigidColumn integrates the rigid-water-column approximation of a single
// pipe's bulk velocity during a slow valve closure (wave effects neglected):
//
//   dV/dt = (g・A/L)・(Hup(t) - Hdown(t) - r・|V|・V)
//
// It is the reference used to check the MOC transient solver's low-frequency
// (slow-closure) behaviour, where compressibility effects are negligible and
// the rigid-column approximation is accurate.
type RigidColumn struct {
	Area      float64            // pipe cross-section area
	Length    float64            // pipe length
	Gravity   float64            // gravity acceleration
	Friction  float64            // lumped resistance coefficient r in r・|V|・V
	Hup       func(t float64) float64 // upstream head history
	Hdown     func(t float64) float64 // downstream head history
	sol       ode.ODE
}

// Init prepares the ODE solver (Radau5, grounded on ColumnFluidPressure's own
// single-equation Radau5 setup)
func (o *RigidColumn) Init() {
	silent := true
	o.sol.Init("Radau5", 1, func(f []float64, dt, t float64, y []float64, args ...interface{}) error {
		v := y[0]
		f[0] = o.Gravity * o.Area / o.Length * (o.Hup(t) - o.Hdown(t) - o.Friction*math.Abs(v)*v)
		return nil
	}, nil, nil, nil, silent)
	o.sol.Distr = false
}

// Velocity integrates from (t0,v0) to t, returning the bulk velocity at t
func (o *RigidColumn) Velocity(t0, v0, t float64) float64 {
	y := []float64{v0}
	if err := o.sol.Solve(y, t0, t, t-t0, false); err != nil {
		chk.Panic("RigidColumn: ODE solver failed: %v", err)
	}
	return y[0]
}
