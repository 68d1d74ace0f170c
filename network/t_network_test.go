// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"testing"

	"github.com/Milover/HydNet/fluid"
	"github.com/cpmech/gosl/chk"
)

// s1Network builds the spec §8 "S1" scenario: two reservoirs (100m, 50m)
// joined by one 1000m/d=0.3m steel pipe
func s1Network(tst *testing.T) *Network {
	flu, err := fluid.Get("water")
	if err != nil {
		tst.Fatalf("fluid.Get failed: %v", err)
	}
	mat, err := fluid.GetMaterial("steel")
	if err != nil {
		tst.Fatalf("fluid.GetMaterial failed: %v", err)
	}
	net := New(Settings{Fluid: "water", Discretization: 4, SymTime: 1, WriteInterval: 1, WeightingFactor: 1}, flu)

	r1 := NewNode(1, Reservoir)
	r1.Elevation, r1.Level = 100, 0
	r2 := NewNode(2, Reservoir)
	r2.Elevation, r2.Level = 50, 0
	if err := net.AddNode(r1); err != nil {
		tst.Fatalf("AddNode(1): %v", err)
	}
	if err := net.AddNode(r2); err != nil {
		tst.Fatalf("AddNode(2): %v", err)
	}

	e1 := &Element{ID: 1, Diameter: 0.3, Length: 1000, Roughness: 5e-5, Material: mat}
	if err := net.AddElement(e1, 1, 2); err != nil {
		tst.Fatalf("AddElement(1): %v", err)
	}
	if err := net.ResolveAdjacency(); err != nil {
		tst.Fatalf("ResolveAdjacency: %v", err)
	}
	return net
}

func Test_node01(tst *testing.T) {

	chk.PrintTitle("node01: EffectiveHead and IsPressureFixed dispatch on node type")

	r := NewNode(1, Reservoir)
	r.Elevation, r.Level = 100, 5
	chk.Scalar(tst, "EffectiveHead(reservoir)", 1e-17, r.EffectiveHead(), 105)
	if !r.IsPressureFixed() {
		tst.Errorf("a Reservoir must always be pressure-fixed")
	}
	if !r.IsFlowSource() {
		tst.Errorf("a Reservoir must always be a flow source")
	}

	j := NewNode(2, Junction)
	j.Head = 42
	chk.Scalar(tst, "EffectiveHead(junction)", 1e-17, j.EffectiveHead(), 42)
	if j.IsPressureFixed() {
		tst.Errorf("a plain Junction should not be pressure-fixed by default")
	}
}

func Test_element01(tst *testing.T) {

	chk.PrintTitle("element01: orientation, area and mesh swap")

	net := s1Network(tst)
	e := net.Elements[0]

	if e.OrientationAt(net.Nodes[0]) != 1 {
		tst.Errorf("element should be oriented +1 at its Start node")
	}
	if e.OrientationAt(net.Nodes[1]) != -1 {
		tst.Errorf("element should be oriented -1 at its End node")
	}
	chk.Scalar(tst, "area", 1e-12, e.Area(), 0.07068583470577035)

	a := &Node{Head: 1}
	b := &Node{Head: 2}
	e.Mesh = []*Node{a, b}
	e.MeshOld = []*Node{b, a}
	e.Swap()
	if e.Mesh[0] != b || e.MeshOld[0] != a {
		tst.Errorf("Swap must exchange Mesh and MeshOld by reference")
	}
}

func Test_validate01(tst *testing.T) {

	chk.PrintTitle("validate01: S1 passes topology validation")

	net := s1Network(tst)
	if err := net.Validate(); err != nil {
		tst.Errorf("Validate failed on a valid S1 network: %v", err)
	}
}

func Test_validate02(tst *testing.T) {

	chk.PrintTitle("validate02: fewer than two sources is a topology error")

	flu, _ := fluid.Get("water")
	net := New(Settings{}, flu)
	r := NewNode(1, Reservoir)
	net.AddNode(r)
	j := NewNode(2, Junction)
	net.AddNode(j)
	if err := net.Validate(); err == nil {
		tst.Errorf("Validate should fail with only one Source/Reservoir node")
	}
}

func Test_loops01(tst *testing.T) {

	chk.PrintTitle("loops01: S1 has zero cycles and one pseudo-loop")

	net := s1Network(tst)
	if err := net.BuildLoops(); err != nil {
		tst.Fatalf("BuildLoops: %v", err)
	}
	if len(net.Loops.Loops) != 0 {
		tst.Errorf("S1 should have 0 fundamental loops, got %d", len(net.Loops.Loops))
	}
	if len(net.Loops.Pseudoloops) != 1 {
		tst.Errorf("S1 should have 1 pseudo-loop, got %d", len(net.Loops.Pseudoloops))
	}
}

func Test_handleEvents01(tst *testing.T) {

	chk.PrintTitle("handleEvents01: valve state ramps across its event window then latches")

	v := NewNode(1, Valve)
	v.State = 1
	v.EventStart, v.EventEnd = 1.0, 2.0
	v.Rate = -1.0 // closes over a 1s window
	net := New(Settings{}, fluid.Fluid{})
	net.Nodes = []*Node{v}

	net.HandleEvents(0.0, 0.5) // before the window: no change
	chk.Scalar(tst, "state before window", 1e-17, v.State, 1)
	if v.EventState {
		tst.Errorf("event should not be latched before eventEnd is reached")
	}

	net.HandleEvents(0.5, 0.5) // overlaps [1.0,1.0] only
	chk.Scalar(tst, "state after first overlap", 1e-17, v.State, 1)

	net.HandleEvents(1.0, 1.0) // covers the whole [1.0,2.0] window
	chk.Scalar(tst, "state after full window", 1e-17, v.State, 0)
	if !v.EventState {
		tst.Errorf("event should be latched once t+dt reaches eventEnd")
	}

	prior := v.State
	net.HandleEvents(2.0, 1.0) // latched: must not move again
	chk.Scalar(tst, "state after latch", 1e-17, v.State, prior)
}
