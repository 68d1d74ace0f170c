// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transient

import (
	"github.com/Milover/HydNet/network"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Sampler receives a time-series sample of the network's mesh state after
// every writeInterval-th step; out.Writer implements it (spec §6 "Output")
type Sampler interface {
	Sample(net *network.Network, step int) error
}

// Run advances net from its discretised initial state to settings.SymTime,
// sampling through s every settings.WriteInterval steps (spec §4.4, §6)
func Run(net *network.Network, dt float64, s Sampler) error {
	if dt <= 0 {
		return chk.Err("numerical-fatal: transient solver given a non-positive Δt")
	}
	step := 0
	for net.Time < net.Settings.SymTime {
		net.HandleEvents(net.Time, dt)
		if err := Step(net, dt, step); err != nil {
			return err
		}
		if s != nil && net.Settings.WriteInterval > 0 && step%net.Settings.WriteInterval == 0 {
			if err := s.Sample(net, step); err != nil {
				return err
			}
		}
		net.Time += dt
		step++
	}
	io.Pf("> transient solver: ran %d steps to t=%.6f s\n", step, net.Time)
	return nil
}

// Step advances the network by one Δt: it applies the staggered MOC update
// (spec §4.4's "classic MOC leapfrog" — at step n update mesh index i iff
// i mod 2 == n mod 2) to every element's interior nodes and then to every
// boundary node, before swapping mesh buffers
func Step(net *network.Network, dt float64, step int) error {
	parity := step % 2
	nu := net.Fluid.Kinematic()

	for _, e := range net.Elements {
		if err := updateInterior(net, e, dt, parity, nu); err != nil {
			return err
		}
	}
	for _, n := range net.Nodes {
		if boundaryParity(n) != parity {
			continue
		}
		if err := updateBoundary(net, n, dt, nu); err != nil {
			return err
		}
	}
	for _, e := range net.Elements {
		e.Swap()
	}
	return nil
}

// updateInterior implements spec §4.4's plain internal-node update
func updateInterior(net *network.Network, e *network.Element, dt float64, parity int, nu float64) error {
	n := len(e.Mesh)
	for i := 1; i < n-1; i++ {
		if i%2 != parity {
			continue
		}
		cur := e.Mesh[i]
		old := cur.Neighbour
		neighUpOld := e.Mesh[i-1].Neighbour
		neighDownOld := e.Mesh[i+1].Neighbour

		kPlus, pPlus := characteristic(dt, e, old, upstreamSide(old), neighUpOld, +1, nu)
		kMinus, pMinus := characteristic(dt, e, old, downstreamSide(old), neighDownOld, -1, nu)

		head, flows := solveJunctionHead(net, cur, old, dt, e.SpatialStep, 0,
			[]charEntry{{kPlus, pPlus, +1}, {kMinus, pMinus, -1}})
		vUp, vDown := flows[0], flows[1]

		cur.Head = head
		cur.UpstreamVelocity, cur.DownstreamVelocity = vUp, vDown
		cur.Velocity = 0.5 * (vUp + vDown)
		cur.GasFraction = gasFraction(net.Fluid, head, cur.Elevation)
		cur.Area, cur.Celerity, cur.MomentumCorrection = old.Area, old.Celerity, old.MomentumCorrection
		cur.AScale, cur.BScale = old.AScale, old.BScale

		updateConvolution(old, dt, vUp, neighUpOld.Velocity, vDown, neighDownOld.Velocity, nu, e.Diameter)
		cur.UpstreamCoeff, cur.DownstreamCoeff = old.UpstreamCoeff, old.DownstreamCoeff
		refreshFriction(net, cur, e.Diameter, e.Roughness)
	}
	return nil
}

// boundaryParity returns the leapfrog sublattice (spec §4.4/§9 "at step n
// update nodes with i mod 2 == n mod 2") a boundary node belongs to: its
// actual mesh index along its first incident element, 0 for a Start, N-1
// for an End — never the node's own id, which carries no relation to mesh
// position
func boundaryParity(n *network.Node) int {
	if len(n.Links) == 0 {
		return 0
	}
	link := n.Links[0]
	if link.Orientation > 0 {
		return 0
	}
	return (link.Element.MeshSize() - 1) % 2
}

// nearNode returns the mesh node one step in from n along e, i.e. the
// interior neighbour e's MOC update reads from when informing n
func nearNode(e *network.Element, n *network.Node, orient int8) *network.Node {
	if orient > 0 {
		return e.MeshOld[1]
	}
	return e.MeshOld[len(e.MeshOld)-2]
}

// updateBoundary dispatches on node type, implementing spec §4.4 "Boundary
// (junction) nodes", the Reservoir/Source fixed-head and fixed-discharge
// special cases, and "Valve nodes (two-way)"
func updateBoundary(net *network.Network, n *network.Node, dt, nu float64) error {
	switch n.Type {
	case network.Reservoir:
		return updateReservoir(net, n, dt, nu)
	case network.Valve:
		return updateValve(net, n, dt, nu)
	default: // Junction, Source
		return updateJunction(net, n, dt, nu)
	}
}

// updateJunction implements the multi-pipe generalization of spec §4.4:
// every incident element contributes one characteristic; a Source's
// prescribed discharge enters as the external flow term
func updateJunction(net *network.Network, n *network.Node, dt, nu float64) error {
	if len(n.Links) == 0 {
		return nil
	}
	chars := make([]charEntry, len(n.Links))
	dx := n.Links[0].Element.SpatialStep
	for i, link := range n.Links {
		e := link.Element
		var k, p, sgn float64
		if link.Orientation > 0 { // n is e.Start: the arriving characteristic is C-
			k, p = characteristic(dt, e, n, downstreamSide(n), nearNode(e, n, link.Orientation), -1, nu)
			sgn = -1
		} else { // n is e.End: the arriving characteristic is C+
			k, p = characteristic(dt, e, n, upstreamSide(n), nearNode(e, n, link.Orientation), +1, nu)
			sgn = +1
		}
		chars[i] = charEntry{k, p, sgn}
	}

	extQ := 0.0
	if n.Type == network.Source {
		extQ = n.Discharge
	}
	old := &network.Node{
		GasFraction:        n.GasFraction,
		UpstreamVelocity:   n.UpstreamVelocity,
		DownstreamVelocity: n.DownstreamVelocity,
	}
	head, flows := solveJunctionHead(net, n, old, dt, dx, extQ, chars)
	n.Head = head

	var avgUp, avgDown float64
	var nUp, nDown int
	for i, link := range n.Links {
		if link.Orientation > 0 {
			avgDown += flows[i]
			nDown++
		} else {
			avgUp += flows[i]
			nUp++
		}
	}
	if nUp > 0 {
		n.UpstreamVelocity = avgUp / float64(nUp)
	}
	if nDown > 0 {
		n.DownstreamVelocity = avgDown / float64(nDown)
	}
	n.Velocity = 0.5 * (n.UpstreamVelocity + n.DownstreamVelocity)
	n.GasFraction = gasFraction(net.Fluid, head, n.Elevation)
	d := n.Links[0].Element.Diameter
	rough := n.Links[0].Element.Roughness
	refreshFriction(net, n, d, rough)
	return nil
}

// updateReservoir implements the fixed-head boundary: head is always the
// free-surface head, and each incident element's facing velocity follows
// from its own single-sided characteristic
func updateReservoir(net *network.Network, n *network.Node, dt, nu float64) error {
	n.Head = n.EffectiveHead()
	for _, link := range n.Links {
		e := link.Element
		if link.Orientation > 0 {
			k, p := characteristic(dt, e, n, downstreamSide(n), nearNode(e, n, link.Orientation), -1, nu)
			n.DownstreamVelocity = (n.Head - k) / p
		} else {
			k, p := characteristic(dt, e, n, upstreamSide(n), nearNode(e, n, link.Orientation), +1, nu)
			n.UpstreamVelocity = (k - n.Head) / p
		}
	}
	n.Velocity = 0.5 * (n.UpstreamVelocity + n.DownstreamVelocity)
	n.GasFraction = 0
	if len(n.Links) > 0 {
		refreshFriction(net, n, n.Links[0].Element.Diameter, n.Links[0].Element.Roughness)
	}
	return nil
}

// updateValve implements spec §4.4 "Valve nodes (two-way)"
func updateValve(net *network.Network, n *network.Node, dt, nu float64) error {
	if len(n.Links) == 0 {
		return nil
	}
	var up, down *network.Link
	for i := range n.Links {
		l := &n.Links[i]
		if l.Orientation < 0 {
			up = l
		} else {
			down = l
		}
	}

	if n.State < 1e-12 {
		n.UpstreamVelocity, n.DownstreamVelocity = 0, 0
		if up != nil {
			k, _ := characteristic(dt, up.Element, n, upstreamSide(n), nearNode(up.Element, n, -1), +1, nu)
			n.Head = k
		} else if down != nil {
			k, _ := characteristic(dt, down.Element, n, downstreamSide(n), nearNode(down.Element, n, +1), -1, nu)
			n.Head = k
		}
		n.GasFraction = gasFraction(net.Fluid, n.Head, n.Elevation)
		return nil
	}

	if up == nil || down == nil {
		return updateJunction(net, n, dt, nu)
	}
	kUp, pUp := characteristic(dt, up.Element, n, upstreamSide(n), nearNode(up.Element, n, -1), +1, nu)
	kDown, pDown := characteristic(dt, down.Element, n, downstreamSide(n), nearNode(down.Element, n, +1), -1, nu)

	q, head, err := solveValveFlow(n, n.Area, kUp, pUp, kDown, pDown)
	if err != nil {
		io.Pf("! %v\n", err)
		q = n.UpstreamVelocity
		head = kUp - q*pUp
	}
	n.Head = head
	n.UpstreamVelocity, n.DownstreamVelocity = q, q
	n.Velocity = q
	n.GasFraction = gasFraction(net.Fluid, head, n.Elevation)
	refreshFriction(net, n, up.Element.Diameter, up.Element.Roughness)
	return nil
}
