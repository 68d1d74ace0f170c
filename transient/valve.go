// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transient

import (
	"math"

	"github.com/Milover/HydNet/network"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// MaxValveIter bounds the valve Newton-Raphson closure (spec §4.4, §7)
const MaxValveIter = 1000

// ValveTol is the valve closure's convergence tolerance on |ΔQ| and |f|
const ValveTol = 1e-15

// smoothAbs is the §9 open-question fix: |Q| → √(Q²+1e-24), keeping the
// Newton-Raphson derivative continuous through flow reversal
func smoothAbs(q float64) float64 {
	return math.Sqrt(q*q + 1e-24)
}

// solveValveFlow implements spec §4.4 "Valve nodes (two-way)": given the
// upstream face's characteristic (kUp,pUp) and the downstream face's
// (kDown,pDown), it finds the single pipe flow Qp consistent with both
// heads differing by the valve's loss term, ζ = loss − log10(state)
func solveValveFlow(n *network.Node, areaUp float64, kUp, pUp, kDown, pDown float64) (q, head float64, err error) {
	zeta := n.Loss - math.Log10(n.State)

	var nls num.NlSolver
	nls.Init(1, func(fx, x []float64) error {
		qp := x[0]
		fx[0] = (kUp - qp*pUp) - (kDown + qp*pDown) - zeta/(2*g*areaUp*areaUp)*qp*smoothAbs(qp)
		return nil
	}, nil, func(jac [][]float64, x []float64) error {
		qp := x[0]
		sa := smoothAbs(qp)
		jac[0][0] = -pUp - pDown - zeta/(2*g*areaUp*areaUp)*(sa+qp*qp/sa)
		return nil
	}, true, false, map[string]float64{"lSearch": 0})
	nls.SetTols(ValveTol, ValveTol, ValveTol, num.EPS)
	nls.MaxIt = MaxValveIter

	x := []float64{n.UpstreamVelocity}
	if serr := nls.Solve(x, true); serr != nil {
		return 0, 0, chk.Err("valve %d: Newton-Raphson closure failed: %v", n.ID, serr)
	}
	q = x[0]
	head = kUp - q*pUp
	return q, head, nil
}
