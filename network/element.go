// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"math"

	"github.com/Milover/HydNet/fluid"
	"github.com/cpmech/gosl/chk"
)

// Element is a pipe connecting two Nodes. Geometry, material and the
// nominal start->end orientation are fixed at input (spec §3); flow,
// celerity, spatial step and Courant number are derived by the steady
// solver and the discretisation step respectively
type Element struct {
	ID int

	Start *Node // non-owning reference; identity-equal to Network.Nodes[Start.ID-1]
	End   *Node // non-owning reference

	Diameter  float64
	Length    float64
	Thickness float64
	Roughness float64
	Material  fluid.Material

	Flow        float64 // [m³/s], positive Start->End
	Celerity    float64 // [m/s], a = sqrt(K/ρ / (1+Kd/(Ee)))
	SpatialStep float64 // Δx [m]
	CourantNo   float64 // C = aΔt/(Δx√β) ∈ (0,1]

	Mesh    []*Node // current time-step; Mesh[0]/Mesh[N-1] alias Start/End
	MeshOld []*Node // previous time-step snapshot
}

// Area returns the pipe's cross-sectional area
func (e *Element) Area() float64 {
	r := e.Diameter / 2
	return math.Pi * r * r
}

// RelativeRoughness returns ε/d
func (e *Element) RelativeRoughness() float64 {
	return e.Roughness / e.Diameter
}

// OtherEnd returns the node at the opposite end from n, which must be one
// of e's two endpoints
func (e *Element) OtherEnd(n *Node) *Node {
	switch n.ID {
	case e.Start.ID:
		return e.End
	case e.End.ID:
		return e.Start
	}
	chk.Panic("element %d: node %d is not one of its endpoints", e.ID, n.ID)
	return nil
}

// OrientationAt returns +1 if n is e's Start, -1 if n is e's End
func (e *Element) OrientationAt(n *Node) int8 {
	switch n.ID {
	case e.Start.ID:
		return 1
	case e.End.ID:
		return -1
	}
	chk.Panic("element %d: node %d is not one of its endpoints", e.ID, n.ID)
	return 0
}

// MeshSize returns the number of mesh points N = ceil(Length/SpatialStep)+1
func (e *Element) MeshSize() int {
	return int(math.Ceil(e.Length/e.SpatialStep)) + 1
}

// Swap exchanges Mesh and MeshOld at the end of a transient step (spec §5,
// §9 "Mesh double-buffering"); implemented as a reference swap, not a copy
func (e *Element) Swap() {
	e.Mesh, e.MeshOld = e.MeshOld, e.Mesh
}
