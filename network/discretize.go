// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"math"

	"github.com/Milover/HydNet/physics"
	"github.com/Milover/HydNet/weighting"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// g is the standard gravitational acceleration used throughout the solver
const g = 9.81

// Discretized holds the global outcome of Network.Discretize, beyond the
// per-element/per-node fields it also writes directly
type Discretized struct {
	Dt float64 // chosen transient time step [s]
}

// Discretize implements spec §4.3: it picks a common Δt/Δx grid that keeps
// every element's Courant number at or below 1, allocates each element's
// mesh, and maps the steady-state solution onto it as the transient
// solver's initial condition. It must run after the steady solver has set
// every element's Flow and every node's Head/Pressure
func (net *Network) Discretize() (*Discretized, error) {
	if len(net.Elements) == 0 {
		return nil, chk.Err("cannot discretize an empty network")
	}

	shortest := net.Elements[0]
	for _, e := range net.Elements[1:] {
		if e.Length < shortest.Length {
			shortest = e
		}
	}
	dxStar := shortest.Length / float64(net.Settings.Discretization)

	betaOf := make(map[int]float64, len(net.Elements))
	for _, e := range net.Elements {
		beta, err := net.elementBeta(e)
		if err != nil {
			return nil, err
		}
		betaOf[e.ID] = beta
		e.Celerity = physics.Celerity(net.Fluid.BulkModulus, net.Fluid.Density, e.Diameter, e.Thickness, e.Material.YoungModulus)
	}

	dt := dxStar * math.Sqrt(betaOf[shortest.ID]) / shortest.Celerity

	for {
		allOK := true
		for _, e := range net.Elements {
			n := math.Ceil(e.Length / dxStar)
			if n < 1 {
				n = 1
			}
			dx := e.Length / n
			e.SpatialStep = dx
			e.CourantNo = e.Celerity * dt / (dx * math.Sqrt(betaOf[e.ID]))
			if e.CourantNo > 1 {
				allOK = false
			}
		}
		if allOK {
			break
		}
		dt -= 1e-9
		if dt <= 0 {
			return nil, chk.Err("numerical-fatal: Δt dropped to zero while searching for a Courant-stable time step")
		}
	}

	for _, e := range net.Elements {
		if err := net.allocateMesh(e, betaOf[e.ID], dt); err != nil {
			return nil, err
		}
	}

	net.applyValveLocalLoss()

	for _, e := range net.Elements {
		net.remapMesh(e)
	}

	io.Pf("> discretisation: Δt=%.6e s, %d elements meshed\n", dt, len(net.Elements))
	return &Discretized{Dt: dt}, nil
}

// elementBeta computes the momentum-correction β for an element from its
// steady-state flow and boundary heads/pressures (spec §4.6)
func (net *Network) elementBeta(e *Element) (float64, error) {
	v := e.Flow / e.Area()
	re := physics.Reynolds(v, net.Fluid.Density, e.Diameter, net.Fluid.Viscosity)
	beta := physics.MomentumCorrection(re, e.Start.Pressure, e.End.Pressure, e.Start.Elevation, e.End.Elevation,
		net.Fluid.Density, g, net.Fluid.Viscosity, v, e.Length, e.Diameter)
	return beta, nil
}

// allocateMesh sizes e's mesh arrays, aliases the boundary slots to the
// network-level end nodes, creates private interior Junctions, and maps the
// initial steady-state fields onto them by linear interpolation (spec §4.3)
func (net *Network) allocateMesh(e *Element, beta, dt float64) error {
	n := e.MeshSize()
	if n < 2 {
		return chk.Err("element %d: mesh size %d is too small", e.ID, n)
	}
	mesh := make([]*Node, n)
	mesh[0] = e.Start
	mesh[n-1] = e.End
	v := e.Flow / e.Area()
	re := physics.Reynolds(v, net.Fluid.Density, e.Diameter, net.Fluid.Viscosity)
	lambda, _, err := physics.Friction(re, e.Diameter, e.Roughness)
	if err != nil {
		return err
	}
	aScale, bScale := weighting.Scaling(re, e.RelativeRoughness())
	table := weighting.Select(re)
	dtau := 4 * net.Fluid.Kinematic() * dt / (e.Diameter * e.Diameter)
	m, err := table.NumModes(dtau)
	if err != nil {
		return chk.Err("element %d: %v", e.ID, err)
	}

	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		interior := NewNode(0, Junction)
		interior.Head = e.Start.Head + t*(e.End.Head-e.Start.Head)
		interior.Elevation = e.Start.Elevation + t*(e.End.Elevation-e.Start.Elevation)
		interior.Velocity = v
		interior.Area = e.Area()
		interior.Celerity = e.Celerity * math.Sqrt(beta)
		interior.MomentumCorrection = beta
		interior.Reynolds = re
		interior.UpstreamFriction = lambda
		interior.DownstreamFriction = lambda
		interior.UpstreamVelocity = v
		interior.DownstreamVelocity = v
		interior.AScale, interior.BScale = aScale, bScale
		interior.PreSizeConvolution(m)
		interior.GasFraction = net.initialGasFraction(interior)
		mesh[i] = interior
	}

	// the two boundary (network-level) nodes also receive the transient
	// state that Discretize is responsible for initialising
	for _, bnd := range []*Node{e.Start, e.End} {
		bnd.Area = e.Area()
		bnd.Celerity = e.Celerity * math.Sqrt(beta)
		bnd.MomentumCorrection = beta
		bnd.Reynolds = re
		bnd.AScale, bnd.BScale = aScale, bScale
		bnd.UpstreamFriction = lambda
		bnd.DownstreamFriction = lambda
		if bnd.GasFraction < 0 {
			bnd.GasFraction = net.initialGasFraction(bnd)
		}
		if len(bnd.UpstreamCoeff) == 0 {
			bnd.PreSizeConvolution(m)
		}
		// mesh[0]/mesh[N-1] alias the same network-level object across
		// Mesh and MeshOld (cloneMesh never copies them), so a boundary
		// node's own "counterpart in meshOld" is itself
		bnd.Neighbour = bnd
	}

	e.Mesh = mesh
	e.MeshOld = cloneMesh(mesh)
	wireInternalNeighbours(e)
	return nil
}

func (net *Network) initialGasFraction(n *Node) float64 {
	p := n.Pressure
	if p == 0 {
		p = (n.Head - n.Elevation) * net.Fluid.Density * g
	}
	if p <= 0 {
		return net.Settings.GasFraction
	}
	return net.Settings.GasFraction * net.Fluid.RefPressure / p
}

// cloneMesh makes a deep-enough copy of a mesh slice to serve as MeshOld:
// boundary slots keep the SAME node identity (network-owned, aliased);
// interior slots get independent Node copies so that mesh/meshOld can
// diverge during a transient step (spec §3 "meshOld is the previous
// timestep snapshot")
func cloneMesh(mesh []*Node) []*Node {
	out := make([]*Node, len(mesh))
	out[0] = mesh[0]
	out[len(mesh)-1] = mesh[len(mesh)-1]
	for i := 1; i < len(mesh)-1; i++ {
		cp := *mesh[i]
		cp.UpstreamCoeff = append([]float64(nil), mesh[i].UpstreamCoeff...)
		cp.DownstreamCoeff = append([]float64(nil), mesh[i].DownstreamCoeff...)
		out[i] = &cp
	}
	return out
}

// wireInternalNeighbours sets Neighbour for an element's interior mesh
// nodes per spec §3's invariant "at every internal mesh point, neighbour is
// its counterpart in meshOld" (read-from-here, write-to-mesh); this pairing
// is invariant to Element.Swap, since swap only exchanges which buffer the
// Mesh/MeshOld fields name, never the two buffers' node identities
func wireInternalNeighbours(e *Element) {
	for i := 1; i < len(e.Mesh)-1; i++ {
		e.Mesh[i].Neighbour = e.MeshOld[i]
		e.MeshOld[i].Neighbour = e.Mesh[i]
	}
}

// applyValveLocalLoss applies the one-shot local-loss correction at every
// valve whose incident-element velocities point out of the valve (spec
// §4.3); the correction is folded into the valve node's Loss coefficient.
// It runs after the steady solve, so only the transient valve closure's ζ
// sees it; the MOC K/P terms do not read Loss
func (net *Network) applyValveLocalLoss() {
	for _, n := range net.Nodes {
		if n.Type != Valve {
			continue
		}
		for _, link := range n.Links {
			out := (link.Orientation > 0 && link.Element.Flow > 0) || (link.Orientation < 0 && link.Element.Flow < 0)
			if out && n.State > 0 && n.State < 1 {
				n.Loss += -math.Log10(n.State)
			}
		}
	}
}

// remapMesh re-applies the linear interpolation for head (elevation is left
// as allocateMesh set it) after
// any post-allocation correction (spec §4.3 "Apply one-shot local-loss
// correction ... then remap")
func (net *Network) remapMesh(e *Element) {
	n := len(e.Mesh)
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		e.Mesh[i].Head = e.Start.Head + t*(e.End.Head-e.Start.Head)
		e.MeshOld[i].Head = e.Mesh[i].Head
	}
}
