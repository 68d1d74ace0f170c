// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package transient implements the fixed-grid Method-of-Characteristics
// time-stepping loop (spec §4.4): per-element interior node update,
// boundary-node update (junctions, reservoirs, sources, valves), unsteady
// friction via a convolution of past velocity changes, and the event
// handler that drives scheduled valve openings/closures.
package transient

import (
	"math"

	"github.com/Milover/HydNet/fluid"
	"github.com/Milover/HydNet/network"
	"github.com/Milover/HydNet/physics"
	"github.com/Milover/HydNet/weighting"
)

const g = 9.81

// side bundles the per-side (upstream or downstream) quantities a
// characteristic equation needs
type side struct {
	friction      float64
	aScale, bScale float64
	coeff         []float64
	velocity      float64 // old velocity at the far end of this characteristic
	head          float64 // old head at the far end of this characteristic
}

func upstreamSide(n *network.Node) side {
	return side{n.UpstreamFriction, n.AScale, n.BScale, n.UpstreamCoeff, n.UpstreamVelocity, n.Head}
}

func downstreamSide(n *network.Node) side {
	return side{n.DownstreamFriction, n.AScale, n.BScale, n.DownstreamCoeff, n.DownstreamVelocity, n.Head}
}

// characteristic computes the K,P pair of spec §4.4 for one side of a
// node, given the neighbour's meshOld state along that characteristic.
// sgn is +1 for the upstream (C+) characteristic, -1 for downstream (C-)
func characteristic(dt float64, elem *network.Element, n *network.Node, s side, neighOld *network.Node, sgn float64, nu float64) (k, p float64) {
	cn := n.Celerity
	an := n.Area
	d := elem.Diameter
	dx := elem.SpatialStep
	dtau := 4 * nu * dt / (d * d)

	table := weighting.Select(n.Reynolds)
	var asum, bsum float64
	for i, coeff := range s.coeff {
		if i >= len(table.N) {
			break
		}
		e := math.Exp(-(table.N[i] + s.bScale) * dtau)
		asum += e * table.M[i] * s.aScale
		bsum += e * e * coeff
	}

	qx := neighOld.Velocity
	hOld := neighOld.Head
	rawA := cn
	if n.MomentumCorrection > 0 {
		rawA = cn / math.Sqrt(n.MomentumCorrection)
	}

	k = hOld + sgn*cn*qx/(g*an) - sgn*16*nu*dx*(bsum-qx*asum/rawA)/(g*d*d)
	p = cn/(g*an) + s.friction*dx*math.Abs(qx)/(2*g*d*an*an) + 16*nu*dx*asum/(g*d*d*an)
	return
}

// solveQuadraticHead solves spec §4.4's B1 h² + B2 h + B3 = 0 for the root
// with positive discriminant, falling back to the linear solve when the
// implicit weighting term vanishes (ψ=0, fully explicit scheme)
func solveQuadraticHead(b1, b2, b3 float64) float64 {
	if math.Abs(b1) < 1e-15 {
		if math.Abs(b2) < 1e-15 {
			return 0
		}
		return -b3 / b2
	}
	disc := b2*b2 - 4*b1*b3
	if disc < 0 {
		disc = 0
	}
	return (-b2 + math.Sqrt(disc)) / (2 * b1)
}

// gasFraction applies the simple free-gas relaxation of spec §1 "Non-goals"
// (two-phase transport beyond a simple free-gas-fraction relaxation): the
// dissolved gas fraction follows the ideal-gas proportion to the local
// head margin above the vapour head, rising as that margin shrinks
func gasFraction(flu fluid.Fluid, head, elevation float64) float64 {
	margin := head - elevation - flu.VapourHead
	if margin < 1e-6 {
		margin = 1e-6
	}
	a := flu.RefGasFraction * flu.RefPressure / (flu.Density * g * margin)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// charEntry is one incident characteristic reaching a node: sgn=+1 if the
// node's head is K−P·Q along it (a C+ arrival), −1 if it is K+P·Q (a C−
// arrival)
type charEntry struct {
	k, p, sgn float64
}

// solveJunctionHead runs the shared quadratic-head solve of spec §4.4,
// generalized from the 2-characteristic interior-node form to "sums run
// over all incident elements instead of two" (spec §4.4 "Boundary (junction)
// nodes"): an interior node passes exactly two entries (one +1, one −1); a
// multi-pipe junction passes one entry per incident element. extQ is an
// externally injected flow (Source/Reservoir discharge), zero elsewhere
func solveJunctionHead(net *network.Network, n, old *network.Node, dt, dx, extQ float64, chars []charEntry) (head float64, flows []float64) {
	psi := net.Settings.WeightingFactor
	a := n.Area

	var sumChKOverP, sumInvP, sumChQOld float64
	for _, c := range chars {
		sumChKOverP += c.sgn * c.k / c.p
		sumInvP += 1 / c.p
	}
	sumChQOld = old.DownstreamVelocity - old.UpstreamVelocity

	kp := old.GasFraction + 2*dt/(a*dx)*((1-psi)*(sumChQOld-extQ)-psi*sumChKOverP)
	b1 := 2 * psi * dt * sumInvP / (a * dx)
	zh := n.Elevation + net.Fluid.VapourHead
	b2 := kp - b1*zh
	b3 := -kp*zh - net.Fluid.RefPressure*net.Fluid.RefGasFraction/(net.Fluid.Density*g)

	head = solveQuadraticHead(b1, b2, b3)
	floor := n.Elevation + net.Fluid.VapourHead
	if head < floor {
		head = floor
	}

	flows = make([]float64, len(chars))
	for i, c := range chars {
		if c.sgn > 0 {
			flows[i] = (c.k - head) / c.p
		} else {
			flows[i] = (head - c.k) / c.p
		}
	}
	return
}

// refreshFriction recomputes a node's per-side friction factor from its
// (just-updated) per-side velocity, spec §4.4 "Friction recomputation"
func refreshFriction(net *network.Network, n *network.Node, d, roughness float64) {
	reUp := physics.Reynolds(n.UpstreamVelocity, net.Fluid.Density, d, net.Fluid.Viscosity)
	reDown := physics.Reynolds(n.DownstreamVelocity, net.Fluid.Density, d, net.Fluid.Viscosity)
	fUp, _, _ := physics.Friction(reUp, d, roughness)
	fDown, _, _ := physics.Friction(reDown, d, roughness)
	n.UpstreamFriction, n.DownstreamFriction = fUp, fDown
	n.Reynolds = math.Max(reUp, reDown)
}

// updateConvolution implements spec §4.4's per-mode history update:
// coeff_k ← E·(E·coeff_k + m_k·aScale·(V_new − V_old_neighbour)), run
// separately for the upstream and downstream sides
func updateConvolution(n *network.Node, dt, vNewUp, vOldUpNeigh, vNewDown, vOldDownNeigh float64, nu, d float64) {
	table := weighting.Select(n.Reynolds)
	dtau := 4 * nu * dt / (d * d)
	for i := range n.UpstreamCoeff {
		if i >= len(table.N) {
			break
		}
		e := math.Exp(-(table.N[i] + n.BScale) * dtau)
		n.UpstreamCoeff[i] = e * (e*n.UpstreamCoeff[i] + table.M[i]*n.AScale*(vNewUp-vOldUpNeigh))
	}
	for i := range n.DownstreamCoeff {
		if i >= len(table.N) {
			break
		}
		e := math.Exp(-(table.N[i] + n.BScale) * dtau)
		n.DownstreamCoeff[i] = e * (e*n.DownstreamCoeff[i] + table.M[i]*n.AScale*(vNewDown-vOldDownNeigh))
	}
}
