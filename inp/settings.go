// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/Milover/HydNet/network"
	"github.com/cpmech/gosl/chk"
)

// ParseSettings reads the "settings" file content: a single outer {…} block
// of "tag: value;" entries (spec §6)
func ParseSettings(src string) (network.Settings, error) {
	var s network.Settings
	root, err := Parse(src)
	if err != nil {
		return s, err
	}
	blk := root
	if len(root.Kids) == 1 && root.Tag == "" {
		blk = root.Kids[0]
	}

	fluidName, err := strField(blk, "fluid", true, "")
	if err != nil {
		return s, err
	}
	s.Fluid = fluidName

	if s.GasFraction, err = floatField(blk, "gasfraction", true, 0); err != nil {
		return s, err
	}
	if s.GasFraction < 0 {
		return s, chk.Err("parse: settings.gasfraction must be ≥ 0, got %g", s.GasFraction)
	}
	if s.Discretization, err = intField(blk, "discretization", true, 0); err != nil {
		return s, err
	}
	if s.Discretization < 1 {
		return s, chk.Err("parse: settings.discretization must be ≥ 1, got %d", s.Discretization)
	}
	if s.SymTime, err = floatField(blk, "symtime", true, 0); err != nil {
		return s, err
	}
	if s.SymTime < 0 {
		return s, chk.Err("parse: settings.symtime must be ≥ 0, got %g", s.SymTime)
	}
	if s.WriteInterval, err = intField(blk, "writeinterval", true, 1); err != nil {
		return s, err
	}
	if s.WeightingFactor, err = floatField(blk, "weightingfactor", false, 1); err != nil {
		return s, err
	}
	if s.WeightingFactor < 0 || s.WeightingFactor > 1 {
		return s, chk.Err("parse: settings.weightingfactor must be ∈[0,1], got %g", s.WeightingFactor)
	}
	return s, nil
}
