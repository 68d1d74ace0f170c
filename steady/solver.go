// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package steady implements the steady-state flow-distribution solver
// (spec §4.2): discharge balancing, an initial minimum-norm flow solve,
// simultaneous Hardy-Cross loop correction, and nodal-head/pressure
// back-substitution.
package steady

import (
	"math"

	"github.com/Milover/HydNet/network"
	"github.com/Milover/HydNet/physics"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

const g = 9.81

// MaxIter bounds the Hardy-Cross loop-correction iteration (spec §4.2, §7)
const MaxIter = 1000

// ConvTol is the Hardy-Cross convergence tolerance on max|Δq| (spec §4.2)
const ConvTol = 1e-15

// Solve runs the full steady-state pipeline of spec §4.2 against net,
// writing Flow into every element and Head/Pressure/Discharge into every
// node. net.Loops must already be populated (network.BuildLoops)
func Solve(net *network.Network) error {
	if net.Loops == nil {
		return chk.Err("steady solver: Network.BuildLoops must run before Solve")
	}
	balanceDischarges(net)
	if err := initialFlows(net); err != nil {
		return err
	}
	niter, err := hardyCross(net)
	if err != nil {
		return err
	}
	io.Pf("> steady solver: Hardy-Cross converged in %d iterations\n", niter)
	recomputeDischarges(net)
	if err := nodalHeads(net); err != nil {
		return err
	}
	setPressures(net)
	return nil
}

// balanceDischarges implements spec §4.2 step 1: the residual of all
// explicitly prescribed Source/Reservoir discharges is distributed equally
// among the sources that were left unset
func balanceDischarges(net *network.Network) {
	var sum float64
	var unset []*network.Node
	for _, n := range net.Nodes {
		if !n.IsFlowSource() {
			continue
		}
		if n.DischargeFixed {
			sum += n.Discharge
		} else {
			unset = append(unset, n)
		}
	}
	if len(unset) == 0 {
		return
	}
	share := -sum / float64(len(unset))
	for _, n := range unset {
		n.Discharge = share
	}
}

// initialFlows implements spec §4.2 step 2: A·x=b with A the signed
// incidence matrix, solved as a minimum-norm least-squares problem via
// gosl's generalized (pseudo-)inverse, the same primitive the pack uses for
// every other rectangular solve (shape-function and Jacobian inversion)
func initialFlows(net *network.Network) error {
	nv, ne := len(net.Nodes), len(net.Elements)
	a := la.MatAlloc(nv, ne)
	b := make([]float64, nv)
	for vi, n := range net.Nodes {
		b[vi] = n.Discharge
		for _, link := range n.Links {
			a[vi][link.Element.ID-1] = float64(-link.Orientation)
		}
	}
	ainv := la.MatAlloc(ne, nv)
	if err := la.MatInvG(ainv, a, 1e-10); err != nil {
		return chk.Err("steady solver: initial-flow incidence matrix is singular: %v", err)
	}
	x := make([]float64, ne)
	la.MatVecMul(x, 1, ainv, b)
	for _, e := range net.Elements {
		e.Flow = x[e.ID-1]
	}
	return nil
}

// resistance computes r_e = λ·8·L/(d⁵gπ²) + 8·K/(d⁴gπ²) for the element's
// current flow (spec §4.1), where K sums the two end-node loss
// coefficients plus a unit exit-loss contribution when the element
// discharges into a reservoir (the "spouting" contribution spec.md names
// without giving a numeric value; 1.0 is the standard sudden-expansion
// exit-loss coefficient)
func resistance(net *network.Network, e *network.Element) (r, lambda float64, err error) {
	v := e.Flow / e.Area()
	re := physics.Reynolds(v, net.Fluid.Density, e.Diameter, net.Fluid.Viscosity)
	lambda, _, err = physics.Friction(re, e.Diameter, e.Roughness)
	if err != nil {
		return
	}
	k := e.Start.Loss + e.End.Loss
	if e.End.Type == network.Reservoir && e.Flow > 0 {
		k += 1.0
	}
	if e.Start.Type == network.Reservoir && e.Flow < 0 {
		k += 1.0
	}
	d4, d5 := math.Pow(e.Diameter, 4), math.Pow(e.Diameter, 5)
	r = lambda*8*e.Length/(d5*g*math.Pi*math.Pi) + 8*k/(d4*g*math.Pi*math.Pi)
	return
}

// hardyCross implements spec §4.2 step 3. Returns the iteration count it
// converged (or stopped) at
func hardyCross(net *network.Network) (int, error) {
	loops := append(append([]*network.Loop(nil), net.Loops.Loops...), net.Loops.Pseudoloops...)
	n := len(loops)
	if n == 0 {
		return 0, nil
	}

	// loopContrib records, per element shared between loops, the loop
	// index, this loop's orientation of the element, and 2·r_e·|q_e| —
	// everything the off-diagonal Jacobian term needs (spec §4.1)
	type loopContrib struct {
		loopIdx  int
		orient   int8
		twoRAbsQ float64
	}

	niter := 0
	for ; niter < MaxIter; niter++ {
		jac := la.MatAlloc(n, n)
		h := make([]float64, n)
		byElem := make(map[int][]loopContrib)

		for i, l := range loops {
			var hi float64
			for _, m := range l.Members {
				r, _, err := resistance(net, m.Element)
				if err != nil {
					return niter, err
				}
				q := m.Element.Flow
				hi += float64(m.Orientation) * r * q * math.Abs(q)
				twoRAbsQ := 2 * r * math.Abs(q)
				jac[i][i] += twoRAbsQ
				byElem[m.Element.ID] = append(byElem[m.Element.ID], loopContrib{i, m.Orientation, twoRAbsQ})
			}
			if l.Pseudo {
				start := l.FirstFree()
				end := l.LastFree()
				hi -= start.EffectiveHead() - end.EffectiveHead()
			}
			h[i] = hi
		}

		for _, entries := range byElem {
			for a := 0; a < len(entries); a++ {
				for b := 0; b < len(entries); b++ {
					if a == b || entries[a].loopIdx == entries[b].loopIdx {
						continue
					}
					sign := float64(entries[a].orient) * float64(entries[b].orient)
					jac[entries[a].loopIdx][entries[b].loopIdx] += sign * entries[a].twoRAbsQ
				}
			}
		}

		rhs := make([]float64, n)
		for i := range h {
			rhs[i] = -h[i]
		}

		jacInv := la.MatAlloc(n, n)
		if err := la.MatInvG(jacInv, jac, 1e-12); err != nil {
			return niter, chk.Err("steady solver: Hardy-Cross Jacobian is singular at iteration %d: %v", niter, err)
		}
		dq := make([]float64, n)
		la.MatVecMul(dq, 1, jacInv, rhs)

		maxDq := 0.0
		for i, l := range loops {
			for _, m := range l.Members {
				m.Element.Flow += float64(m.Orientation) * dq[i]
			}
			if math.Abs(dq[i]) > maxDq {
				maxDq = math.Abs(dq[i])
			}
		}
		if maxDq < ConvTol {
			return niter + 1, nil
		}
	}
	io.Pf("! steady solver: Hardy-Cross did not converge within %d iterations\n", MaxIter)
	return niter, nil
}

// recomputeDischarges implements spec §4.2 step 4
func recomputeDischarges(net *network.Network) {
	for _, n := range net.Nodes {
		if !n.IsFlowSource() {
			continue
		}
		var sum float64
		for _, link := range n.Links {
			sum += float64(-link.Orientation) * link.Element.Flow
		}
		n.Discharge = sum
	}
}

// nodalHeads implements spec §4.2 step 5: the over-determined system is
// solved the same way as the under-determined initial-flow system, via
// gosl's generalized inverse, after moving pressure-fixed columns to the
// RHS
func nodalHeads(net *network.Network) error {
	var free []*network.Node
	idx := make(map[int]int)
	for _, n := range net.Nodes {
		if !n.IsPressureFixed() {
			idx[n.ID] = len(free)
			free = append(free, n)
		}
	}
	ne, nf := len(net.Elements), len(free)
	if nf == 0 {
		applyDynamicCorrection(net)
		return nil
	}

	b := la.MatAlloc(ne, nf)
	c := make([]float64, ne)
	for _, e := range net.Elements {
		row := e.ID - 1
		r, _, err := resistance(net, e)
		if err != nil {
			return err
		}
		q := e.Flow
		c[row] = sign(q) * r * q * q

		if j, ok := idx[e.Start.ID]; ok {
			b[row][j] += 1
		} else {
			c[row] -= e.Start.EffectiveHead()
		}
		if j, ok := idx[e.End.ID]; ok {
			b[row][j] += -1
		} else {
			c[row] += e.End.EffectiveHead()
		}
	}

	binv := la.MatAlloc(nf, ne)
	if err := la.MatInvG(binv, b, 1e-10); err != nil {
		return chk.Err("steady solver: nodal-head system is singular: %v", err)
	}
	h := make([]float64, nf)
	la.MatVecMul(h, 1, binv, c)
	for j, n := range free {
		n.Head = h[j]
	}
	for _, n := range net.Nodes {
		if n.IsPressureFixed() {
			n.Head = n.EffectiveHead()
		}
	}

	applyDynamicCorrection(net)
	return nil
}

// applyDynamicCorrection subtracts the node's average incident-element
// dynamic head v̄²/(2g) from the total head solved above, storing the
// static head (spec §4.2 step 5 "subtract average nodal dynamic head")
func applyDynamicCorrection(net *network.Network) {
	for _, n := range net.Nodes {
		if len(n.Links) == 0 {
			continue
		}
		var vbar float64
		for _, link := range n.Links {
			vbar += math.Abs(link.Element.Flow / link.Element.Area())
		}
		vbar /= float64(len(n.Links))
		n.Head -= vbar * vbar / (2 * g)
	}
}

// setPressures implements spec §4.2 step 6
func setPressures(net *network.Network) {
	for _, n := range net.Nodes {
		if n.PressureFixed {
			continue
		}
		if n.Type == network.Reservoir {
			n.Pressure = (n.Head - n.Elevation - n.Level) * net.Fluid.Density * g
		} else {
			n.Pressure = (n.Head - n.Elevation) * net.Fluid.Density * g
		}
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
