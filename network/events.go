// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import "github.com/cpmech/gosl/fun"

// constantRamp is the default valve Schedule that HandleEvents uses when a
// Valve's Schedule is nil: F returns the same rate for every t, and
// HandleEvents limits its effect to [eventStart,eventEnd] (spec §4.9). x is
// unused; fun.Func requires the signature
type constantRamp struct {
	rate float64
}

func (r constantRamp) F(t float64, x []float64) float64 {
	return r.rate
}

func (r constantRamp) G(t float64, x []float64) float64 {
	return 0
}

func (r constantRamp) H(t float64, x []float64) float64 {
	return 0
}

func (r constantRamp) Grad(v []float64, t float64, x []float64) {
}

// NewConstantRamp returns the default constant-rate schedule; HandleEvents
// builds one from the node's Rate whenever its Schedule is nil
func NewConstantRamp(rate float64) fun.Func {
	return constantRamp{rate: rate}
}

// HandleEvents implements spec §4.4 "Event handling", refactored per the
// §9 open question: Δperiod is the intersection of [eventStart,eventEnd]
// with [t,t+dt]. It must run once per transient step, before the MOC pass
func (net *Network) HandleEvents(t, dt float64) {
	for _, n := range net.Nodes {
		if n.Type != Valve || n.EventState || n.EventStart < 0 {
			continue
		}
		lo := t
		if n.EventStart > lo {
			lo = n.EventStart
		}
		hi := t + dt
		if n.EventEnd < hi {
			hi = n.EventEnd
		}
		dPeriod := hi - lo
		if dPeriod <= 0 {
			continue
		}
		schedule := n.Schedule
		if schedule == nil {
			schedule = NewConstantRamp(n.Rate)
		}
		rate := schedule.F(t, nil)
		n.State = clip(n.State+rate*dPeriod, 0, 1)
		if t+dt >= n.EventEnd {
			n.EventState = true
		}
	}
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
