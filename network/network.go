// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"github.com/Milover/HydNet/fluid"
	"github.com/cpmech/gosl/chk"
)

// Settings holds the parsed contents of the "settings" input file (spec §6)
type Settings struct {
	Fluid           string  // fluid name, e.g. "water"
	GasFraction     float64 // α_ref ≥ 0
	Discretization  int     // discretizationMin ≥ 1
	SymTime         float64 // symTime [s] ≥ 0
	WriteInterval   int     // steps between CSV samples
	WeightingFactor float64 // ψ ∈ [0,1], default 1 (implicit)
}

// Network owns the node and element collections and all derived topology
// (spec §3 "Lifetimes": the Network exclusively owns nodes, elements and
// their meshes). Ids are dense and 1-based, so Nodes[id-1] and
// Elements[id-1] hold the entity with that id; cross-references (element
// endpoints, links, loop members, mesh slots) are non-owning *Node/*Element
// pointers into these collections, not integer ids
type Network struct {
	Nodes    []*Node
	Elements []*Element
	Settings Settings
	Fluid    fluid.Fluid
	Loops    *LoopDepot
	Time     float64
}

// New returns an empty Network ready to have nodes/elements appended
func New(settings Settings, flu fluid.Fluid) *Network {
	return &Network{Settings: settings, Fluid: flu}
}

// AddNode appends a node, requiring dense 1-based ids assigned in order
func (net *Network) AddNode(n *Node) error {
	if n.ID != len(net.Nodes)+1 {
		return chk.Err("node id %d is not dense (expected %d)", n.ID, len(net.Nodes)+1)
	}
	net.Nodes = append(net.Nodes, n)
	return nil
}

// AddElement appends an element, requiring dense 1-based ids assigned in
// order, and resolves its Start/End node pointers from the given ids
func (net *Network) AddElement(e *Element, startID, endID int) error {
	if e.ID != len(net.Elements)+1 {
		return chk.Err("element id %d is not dense (expected %d)", e.ID, len(net.Elements)+1)
	}
	start, err := net.Node(startID)
	if err != nil {
		return chk.Err("element %d: %v", e.ID, err)
	}
	end, err := net.Node(endID)
	if err != nil {
		return chk.Err("element %d: %v", e.ID, err)
	}
	if start.ID == end.ID {
		return chk.Err("element %d: start and end node are the same (%d)", e.ID, start.ID)
	}
	e.Start, e.End = start, end
	net.Elements = append(net.Elements, e)
	return nil
}

// Node returns the node with the given 1-based id
func (net *Network) Node(id int) (*Node, error) {
	if id < 1 || id > len(net.Nodes) {
		return nil, chk.Err("unknown node id %d", id)
	}
	return net.Nodes[id-1], nil
}

// Element returns the element with the given 1-based id
func (net *Network) Element(id int) (*Element, error) {
	if id < 1 || id > len(net.Elements) {
		return nil, chk.Err("unknown element id %d", id)
	}
	return net.Elements[id-1], nil
}

// ResolveAdjacency (re)builds every node's incident-element Links list from
// the element endpoints. Must be called once after all nodes/elements are
// added and before loop enumeration or discretisation
func (net *Network) ResolveAdjacency() error {
	for _, n := range net.Nodes {
		n.Links = n.Links[:0]
	}
	for _, e := range net.Elements {
		if e.Start == nil || e.End == nil {
			return chk.Err("element %d has an unassigned endpoint", e.ID)
		}
		e.Start.Links = append(e.Start.Links, Link{Element: e, Orientation: +1})
		e.End.Links = append(e.End.Links, Link{Element: e, Orientation: -1})
	}
	for _, n := range net.Nodes {
		if len(n.Links) == 0 {
			return chk.Err("node %d has no incident elements", n.ID)
		}
	}
	return nil
}

// Validate checks the topological invariants spec §3/§7 require before the
// steady solver runs: every element has two distinct resolved endpoints
// (checked incrementally by AddElement/ResolveAdjacency already), and the
// network has at least two flow/pressure sources and at least one
// pressure-fixed node (spec §6)
func (net *Network) Validate() error {
	nSources := 0
	nFixed := 0
	for _, n := range net.Nodes {
		if n.IsFlowSource() {
			nSources++
		}
		if n.IsPressureFixed() {
			nFixed++
		}
	}
	if nSources < 2 {
		return chk.Err("topology error: fewer than two Source/Reservoir nodes (found %d)", nSources)
	}
	if nFixed < 1 {
		return chk.Err("topology error: no node has a prescribed head or pressure")
	}
	return nil
}

// BuildLoops enumerates and stores the network's cycle basis + pseudo-loops
func (net *Network) BuildLoops() error {
	depot, err := NewLoopDepot(net)
	if err != nil {
		return err
	}
	net.Loops = depot
	return nil
}
