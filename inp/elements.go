// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// ElementRecord is one parsed inner block of the "elements" file
type ElementRecord struct {
	ID        int
	Start     int
	End       int
	Diameter  float64
	Length    float64
	Thickness float64
	Roughness float64
	Material  string
}

// ParseElements reads the "elements" file content: top-level "nodeQty: N;
// elementQty: M;" followed by one outer {…} of M inner {…} blocks (spec §6)
func ParseElements(src string) (nodeQty, elementQty int, elems []ElementRecord, err error) {
	root, err := Parse(src)
	if err != nil {
		return
	}
	if nodeQty, err = intField(root, "nodeqty", true, 0); err != nil {
		return
	}
	if elementQty, err = intField(root, "elementqty", true, 0); err != nil {
		return
	}
	if nodeQty < 1 {
		return nodeQty, elementQty, nil, chk.Err("topology: nodeQty must be ≥ 1, got %d", nodeQty)
	}
	if len(root.Kids) != 1 {
		return nodeQty, elementQty, nil, chk.Err("parse: elements file must contain exactly one outer block")
	}
	outer := root.Kids[0]
	if len(outer.Kids) != elementQty {
		return nodeQty, elementQty, nil, chk.Err("parse: elementQty=%d but found %d element blocks", elementQty, len(outer.Kids))
	}
	elems = make([]ElementRecord, elementQty)
	for i, blk := range outer.Kids {
		var rec ElementRecord
		if rec.ID, err = intField(blk, "id", true, 0); err != nil {
			return
		}
		if rec.ID != i+1 {
			return nodeQty, elementQty, nil, chk.Err("parse: element blocks must be in id order, expected %d got %d", i+1, rec.ID)
		}
		if rec.Start, err = intField(blk, "start", true, 0); err != nil {
			return
		}
		if rec.End, err = intField(blk, "end", true, 0); err != nil {
			return
		}
		if rec.Diameter, err = floatField(blk, "diameter", true, 0); err != nil {
			return
		}
		if rec.Length, err = floatField(blk, "length", true, 0); err != nil {
			return
		}
		if rec.Thickness, err = floatField(blk, "thickness", true, 0); err != nil {
			return
		}
		if rec.Roughness, err = floatField(blk, "roughness", true, 0); err != nil {
			return
		}
		if rec.Material, err = strField(blk, "material", true, ""); err != nil {
			return
		}
		elems[i] = rec
	}
	return nodeQty, elementQty, elems, nil
}
