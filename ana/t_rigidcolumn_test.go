// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_rigidColumn01(tst *testing.T) {

	chk.PrintTitle("rigidColumn01: constant head difference drives velocity toward the positive steady state")

	rc := &RigidColumn{
		Area: 0.0706858347, Length: 1000, Gravity: 9.81, Friction: 0.01,
		Hup:   func(t float64) float64 { return 100 },
		Hdown: func(t float64) float64 { return 50 },
	}
	rc.Init()

	// steady state: 0 = g·A/L·(Hup-Hdown-r·|v|·v) ⇒ v = sqrt((Hup-Hdown)/r)
	vSteady := math.Sqrt((100 - 50) / rc.Friction)

	v := rc.Velocity(0, 0, 0.05)
	if v <= 0 {
		tst.Errorf("velocity should move toward the positive steady state, got %g", v)
	}
	if v >= vSteady {
		tst.Errorf("velocity after a short integration should not overshoot the steady state: v=%g vSteady=%g", v, vSteady)
	}
}

func Test_rigidColumn02(tst *testing.T) {

	chk.PrintTitle("rigidColumn02: reversing the head difference reverses the direction of motion")

	rc := &RigidColumn{
		Area: 0.0706858347, Length: 1000, Gravity: 9.81, Friction: 0.01,
		Hup:   func(t float64) float64 { return 50 },
		Hdown: func(t float64) float64 { return 100 },
	}
	rc.Init()

	v := rc.Velocity(0, 0, 0.05)
	if v >= 0 {
		tst.Errorf("velocity should move toward the negative steady state, got %g", v)
	}
}

func Test_rigidColumn03(tst *testing.T) {

	chk.PrintTitle("rigidColumn03: zero head difference and zero initial velocity stay at rest")

	rc := &RigidColumn{
		Area: 0.0706858347, Length: 1000, Gravity: 9.81, Friction: 0.01,
		Hup:   func(t float64) float64 { return 75 },
		Hdown: func(t float64) float64 { return 75 },
	}
	rc.Init()

	v := rc.Velocity(0, 0, 1.0)
	chk.Scalar(tst, "v", 1e-6, v, 0)
}
