// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transient

import (
	"math"
	"testing"

	"github.com/Milover/HydNet/fluid"
	"github.com/Milover/HydNet/network"
	"github.com/Milover/HydNet/steady"
	"github.com/cpmech/gosl/chk"
)

// buildS1 constructs spec §8 scenario S1, solves the steady state and
// discretizes it, returning the ready-to-step network and its Δt
func buildS1(tst *testing.T) (*network.Network, float64) {
	flu, err := fluid.Get("water")
	if err != nil {
		tst.Fatalf("fluid.Get: %v", err)
	}
	mat, err := fluid.GetMaterial("steel")
	if err != nil {
		tst.Fatalf("fluid.GetMaterial: %v", err)
	}
	net := network.New(network.Settings{
		Fluid: "water", Discretization: 4, SymTime: 1, WriteInterval: 1, WeightingFactor: 1,
	}, flu)

	r1 := network.NewNode(1, network.Reservoir)
	r1.Elevation = 100
	r2 := network.NewNode(2, network.Reservoir)
	r2.Elevation = 50
	if err := net.AddNode(r1); err != nil {
		tst.Fatalf("AddNode: %v", err)
	}
	if err := net.AddNode(r2); err != nil {
		tst.Fatalf("AddNode: %v", err)
	}

	e := &network.Element{ID: 1, Diameter: 0.3, Length: 1000, Roughness: 5e-5, Material: mat}
	if err := net.AddElement(e, 1, 2); err != nil {
		tst.Fatalf("AddElement: %v", err)
	}
	if err := net.ResolveAdjacency(); err != nil {
		tst.Fatalf("ResolveAdjacency: %v", err)
	}
	if err := net.Validate(); err != nil {
		tst.Fatalf("Validate: %v", err)
	}
	if err := net.BuildLoops(); err != nil {
		tst.Fatalf("BuildLoops: %v", err)
	}
	if err := steady.Solve(net); err != nil {
		tst.Fatalf("steady.Solve: %v", err)
	}
	disc, err := net.Discretize()
	if err != nil {
		tst.Fatalf("Discretize: %v", err)
	}
	return net, disc.Dt
}

func Test_courant01(tst *testing.T) {

	chk.PrintTitle("courant01: discretisation keeps every element's Courant number in (0,1]")

	net, _ := buildS1(tst)
	for _, e := range net.Elements {
		if e.CourantNo <= 0 || e.CourantNo > 1.0+1e-9 {
			tst.Errorf("element %d: CourantNo=%g out of (0,1]", e.ID, e.CourantNo)
		}
	}
}

func Test_step01(tst *testing.T) {

	chk.PrintTitle("step01: a few MOC steps run without error and keep finite, non-negative heads")

	net, dt := buildS1(tst)
	for step := 0; step < 10; step++ {
		net.HandleEvents(net.Time, dt)
		if err := Step(net, dt, step); err != nil {
			tst.Fatalf("Step(%d): %v", step, err)
		}
		net.Time += dt
		for _, e := range net.Elements {
			for _, n := range e.Mesh {
				if math.IsNaN(n.Head) || math.IsInf(n.Head, 0) {
					tst.Fatalf("step %d: element %d produced a non-finite head", step, e.ID)
				}
			}
		}
	}
}

func Test_run01(tst *testing.T) {

	chk.PrintTitle("run01: Run advances the network to SymTime and reports a positive step count")

	net, dt := buildS1(tst)
	net.Settings.SymTime = 5 * dt
	if err := Run(net, dt, nil); err != nil {
		tst.Fatalf("Run: %v", err)
	}
	if net.Time < net.Settings.SymTime {
		tst.Errorf("Run stopped early: t=%g < SymTime=%g", net.Time, net.Settings.SymTime)
	}
}

func Test_run02(tst *testing.T) {

	chk.PrintTitle("run02: Run rejects a non-positive Δt")

	net, _ := buildS1(tst)
	if err := Run(net, 0, nil); err == nil {
		tst.Errorf("Run should reject Δt=0")
	}
	if err := Run(net, -1, nil); err == nil {
		tst.Errorf("Run should reject a negative Δt")
	}
}

type recordingSampler struct {
	calls int
}

func (r *recordingSampler) Sample(net *network.Network, step int) error {
	r.calls++
	return nil
}

func Test_run03(tst *testing.T) {

	chk.PrintTitle("run03: Run samples through the Sampler every WriteInterval-th step")

	net, dt := buildS1(tst)
	net.Settings.SymTime = 6 * dt
	net.Settings.WriteInterval = 2
	rec := &recordingSampler{}
	if err := Run(net, dt, rec); err != nil {
		tst.Fatalf("Run: %v", err)
	}
	if rec.calls == 0 {
		tst.Errorf("sampler was never called")
	}
}
