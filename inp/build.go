// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/Milover/HydNet/fluid"
	"github.com/Milover/HydNet/network"
	"github.com/cpmech/gosl/chk"
)

// Build assembles a network.Network from the three parsed input files,
// ready for steady solve (spec §6 input semantics: dense ids, resolved
// adjacency, at least two flow sources, at least one prescribed head)
func Build(settings network.Settings, elems []ElementRecord, nodeQty int, nodes []NodeRecord) (*network.Network, error) {
	flu, err := fluid.Get(settings.Fluid)
	if err != nil {
		return nil, err
	}
	net := network.New(settings, flu)

	if len(nodes) != nodeQty {
		return nil, chk.Err("topology: nodeQty=%d but nodes file has %d node blocks", nodeQty, len(nodes))
	}
	for i, rec := range nodes {
		if rec.ID != i+1 {
			return nil, chk.Err("parse: node blocks must be in id order, expected %d got %d", i+1, rec.ID)
		}
		n := network.NewNode(rec.ID, rec.Type)
		n.Elevation = rec.Elevation
		n.Loss = rec.Loss
		n.EventStart = rec.EventStart
		n.EventEnd = rec.EventEnd

		if rec.HeadSet {
			n.Head = rec.Head
			n.HeadFixed = true
		}
		if rec.PresSet {
			n.Pressure = rec.Pressure
			n.PressureFixed = true
			if !rec.HeadSet {
				n.Head = rec.Pressure/(flu.Density*9.81) + rec.Elevation
			}
			n.HeadFixed = true
		}
		if rec.DischSet {
			n.Discharge = rec.Discharge
			n.DischargeFixed = true
		}
		switch rec.Type {
		case network.Reservoir:
			n.Level = rec.Level
			n.HeadFixed = true
		case network.Valve:
			n.State = rec.State
			n.Rate = rec.Rate
		}
		if err := net.AddNode(n); err != nil {
			return nil, err
		}
	}

	for _, rec := range elems {
		mat, err := fluid.GetMaterial(rec.Material)
		if err != nil {
			return nil, err
		}
		e := &network.Element{
			ID:        rec.ID,
			Diameter:  rec.Diameter,
			Length:    rec.Length,
			Thickness: rec.Thickness,
			Roughness: rec.Roughness,
			Material:  mat,
		}
		if err := net.AddElement(e, rec.Start, rec.End); err != nil {
			return nil, err
		}
	}

	if err := net.ResolveAdjacency(); err != nil {
		return nil, err
	}
	if err := net.Validate(); err != nil {
		return nil, err
	}
	if err := net.BuildLoops(); err != nil {
		return nil, err
	}
	return net, nil
}
