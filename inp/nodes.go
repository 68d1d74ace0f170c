// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/Milover/HydNet/network"
	"github.com/cpmech/gosl/chk"
)

// NodeRecord is one parsed inner block of the "nodes" file
type NodeRecord struct {
	ID        int
	Type      network.NodeType
	Head      float64
	HeadSet   bool
	Pressure  float64
	PresSet   bool
	Elevation float64
	Loss      float64
	EventStart, EventEnd float64
	Discharge float64
	DischSet  bool
	Level     float64
	State     float64
	Rate      float64 // 1/valvetime, sign gives direction
}

// ParseNodes reads the "nodes" file content: an outer {…} of inner {…}
// blocks, each preceded by a node-type tag (spec §6)
func ParseNodes(src string) ([]NodeRecord, error) {
	root, err := Parse(src)
	if err != nil {
		return nil, err
	}
	outer := root
	if len(root.Kids) == 1 && root.Tag == "" {
		outer = root.Kids[0]
	}
	recs := make([]NodeRecord, 0, len(outer.Kids))
	for _, blk := range outer.Kids {
		rec, err := parseNodeBlock(blk)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseNodeBlock(blk *Block) (rec NodeRecord, err error) {
	switch blk.Tag {
	case "node":
		rec.Type = network.Junction
	case "source":
		rec.Type = network.Source
	case "reservoir":
		rec.Type = network.Reservoir
	case "valve":
		rec.Type = network.Valve
	default:
		return rec, chk.Err("parse: unknown node-type tag %q", blk.Tag)
	}

	if rec.ID, err = intField(blk, "id", true, 0); err != nil {
		return
	}
	if s, ok := blk.field("head"); ok {
		if rec.Head, err = safeAtof("head", s); err != nil {
			return
		}
		rec.HeadSet = true
	}
	if s, ok := blk.field("pressure"); ok {
		if rec.Pressure, err = safeAtof("pressure", s); err != nil {
			return
		}
		rec.PresSet = true
	}
	if rec.Elevation, err = floatField(blk, "elevation", false, 0); err != nil {
		return
	}
	if rec.Loss, err = floatField(blk, "loss", false, 0); err != nil {
		return
	}
	if rec.EventStart, err = floatField(blk, "eventstart", false, -1); err != nil {
		return
	}
	if rec.EventEnd, err = floatField(blk, "eventend", false, -1); err != nil {
		return
	}

	switch rec.Type {
	case network.Source, network.Reservoir:
		if s, ok := blk.field("discharge"); ok {
			if rec.Discharge, err = safeAtof("discharge", s); err != nil {
				return
			}
			rec.DischSet = true
		}
	}
	if rec.Type == network.Reservoir {
		if rec.Level, err = floatField(blk, "level", true, 0); err != nil {
			return
		}
	}
	if rec.Type == network.Valve {
		if rec.State, err = floatField(blk, "state", true, 1); err != nil {
			return
		}
		vt, err2 := floatField(blk, "valvetime", true, 0)
		if err2 != nil {
			return rec, err2
		}
		if vt == 0 {
			return rec, chk.Err("parse: valve %d: valvetime must be non-zero", rec.ID)
		}
		rec.Rate = 1 / vt
	}
	return rec, nil
}
