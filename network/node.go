// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package network implements the graph data model (Node, Element, Loop,
// LoopDepot, Network) described in spec §3-4: a finite directed multigraph
// of pipes (Element) connecting hydraulic points (Node), plus the
// cycle-basis enumeration and the fixed-grid mesh used by the transient
// solver.
package network

import (
	"github.com/cpmech/gosl/fun"
)

// NodeType tags which of the four hydraulic-point variants a Node is.
// Operations that differ between variants (the steady boundary treatment,
// the transient boundary update, event handling, input building) switch on
// this tag rather than using a class hierarchy with runtime downcasts (spec
// §9 "Polymorphic nodes")
type NodeType int

// node type tags
const (
	Junction NodeType = iota
	Source
	Reservoir
	Valve
)

func (t NodeType) String() string {
	switch t {
	case Junction:
		return "junction"
	case Source:
		return "source"
	case Reservoir:
		return "reservoir"
	case Valve:
		return "valve"
	}
	return "unknown"
}

// Link is one element incident on a Node, with the orientation that element
// has at this node: +1 if the node is the element's Start, -1 if its End
type Link struct {
	Element     *Element
	Orientation int8
}

// Node is a hydraulic point: Junction, Source, Reservoir or Valve. Common
// fields live directly on the struct; variant payload (Discharge, Level,
// State/Rate) is simply left at its zero value for variants that don't use
// it (spec §9)
type Node struct {
	ID   int
	Type NodeType

	// steady-state fields
	Head      float64 // [m]
	Pressure  float64 // [Pa]
	Elevation float64 // [m]
	Loss      float64 // local-loss coefficient [-]
	Velocity  float64 // [m/s]

	// event window (Valve only; EventStart/EventEnd==-1 means "no event")
	EventStart float64
	EventEnd   float64
	EventState bool // latched true once the event window has been handled

	// HeadFixed marks a node whose head/pressure is a prescribed input value
	// rather than a steady-solve unknown; always true for Reservoir, and
	// true for any other variant given an explicit head/pressure in the
	// nodes file (spec §6 "at least one node must have a prescribed head")
	HeadFixed bool

	// PressureFixed marks a node whose pressure was given directly in the
	// nodes file, so the steady solver's p=(H-z)ρg back-substitution must
	// not overwrite it (spec §4.2 step 6 "where not already set")
	PressureFixed bool

	// DischargeFixed marks a Source/Reservoir whose discharge was given
	// directly in the nodes file, rather than left for the steady solver's
	// discharge-balancing pass to fill in (spec §4.2 step 1)
	DischargeFixed bool

	// transient state
	Area                float64 // cross-sectional area [m²], mirrors the owning element
	Celerity            float64 // momentum-corrected wave speed, a·√β
	GasFraction         float64 // α ∈ [0,1]; -1 = uninitialised
	MomentumCorrection  float64 // β ≥ 1
	Reynolds            float64
	AScale, BScale      float64
	UpstreamFriction    float64
	DownstreamFriction  float64
	UpstreamVelocity    float64
	DownstreamVelocity  float64
	UpstreamCoeff       []float64 // convolution history, one real per retained mode
	DownstreamCoeff     []float64

	// topology
	Links     []Link // incident elements with per-element orientation
	Neighbour *Node  // this node's counterpart in the other mesh buffer: at an
	// interior mesh point, its meshOld pairing (spec §3 invariant "advancement
	// reads from meshOld via neighbour"); at a boundary node, itself, since
	// mesh[0]/mesh[N-1] alias the same object in both buffers

	// Source / Reservoir payload
	Discharge float64 // [m³/s], + inflow, - outflow

	// Reservoir payload
	Level float64 // [m] above Elevation

	// Valve payload
	State    float64  // ∈[0,1], 1=open
	Rate     float64  // [1/s], signed
	Schedule fun.Func // optional override of the default constant-rate ramp; nil uses the default
}

// NewNode allocates a Node of the given type and id with GasFraction left
// uninitialised (-1) and EventStart/EventEnd defaulted to "no event" (-1)
func NewNode(id int, t NodeType) *Node {
	return &Node{
		ID:          id,
		Type:        t,
		EventStart:  -1,
		EventEnd:    -1,
		GasFraction: -1,
	}
}

// IsPressureFixed reports whether this node's head is a prescribed boundary
// value rather than an unknown of the steady solve (Reservoir always;
// Source when it also carries a fixed head/pressure, per spec §6 "at least
// one node must have a prescribed head or pressure")
func (n *Node) IsPressureFixed() bool {
	return n.Type == Reservoir || n.HeadFixed
}

// IsFlowSource reports whether this node contributes a signed discharge to
// the steady-state mass balance (spec §4.2 step 1)
func (n *Node) IsFlowSource() bool {
	return n.Type == Source || n.Type == Reservoir
}

// EffectiveHead returns the head used as a boundary value for the steady
// solve: for a Reservoir this is Elevation+Level (free-surface head); for
// every other type it is the prescribed Head field directly
func (n *Node) EffectiveHead() float64 {
	if n.Type == Reservoir {
		return n.Elevation + n.Level
	}
	return n.Head
}

// PreSizeConvolution allocates the convolution-history arrays to exactly M
// modes, never to be resized afterwards (spec §9 "Dynamic convolution
// sizing")
func (n *Node) PreSizeConvolution(m int) {
	n.UpstreamCoeff = make([]float64, m)
	n.DownstreamCoeff = make([]float64, m)
}
