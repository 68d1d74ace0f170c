// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"

	"github.com/Milover/HydNet/network"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteSummary writes the human-readable settings/nodes/links/loops/
// pseudo-loops report once, at the end of a run (spec §6 "Output")
func WriteSummary(net *network.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("output: cannot create summary %q: %v", path, err)
	}
	defer f.Close()

	pf := func(format string, args ...interface{}) {
		f.WriteString(io.Sf(format, args...))
	}

	pf("# settings\n")
	pf("fluid           = %s\n", net.Settings.Fluid)
	pf("gasFraction     = %g\n", net.Settings.GasFraction)
	pf("discretization  = %d\n", net.Settings.Discretization)
	pf("symTime         = %g\n", net.Settings.SymTime)
	pf("writeInterval   = %d\n", net.Settings.WriteInterval)
	pf("weightingFactor = %g\n", net.Settings.WeightingFactor)

	pf("\n# nodes (%d)\n", len(net.Nodes))
	for _, n := range net.Nodes {
		pf("  %4d  %-9s  H=%12.6g  p=%12.6g  z=%10.4g  q=%12.6g\n",
			n.ID, n.Type, n.Head, n.Pressure, n.Elevation, n.Discharge)
	}

	pf("\n# elements / links (%d)\n", len(net.Elements))
	for _, e := range net.Elements {
		pf("  %4d  %4d -> %4d  L=%10.4g  d=%8.4g  Q=%12.6g  C=%8.4g\n",
			e.ID, e.Start.ID, e.End.ID, e.Length, e.Diameter, e.Flow, e.CourantNo)
	}

	if net.Loops != nil {
		pf("\n# fundamental loops (%d)\n", len(net.Loops.Loops))
		for i, l := range net.Loops.Loops {
			pf("  loop %d: %s\n", i, describeLoop(l))
		}
		pf("\n# pseudo-loops (%d)\n", len(net.Loops.Pseudoloops))
		for i, l := range net.Loops.Pseudoloops {
			pf("  pseudo-loop %d: %s (from node %d to node %d)\n",
				i, describeLoop(l), l.FirstFree().ID, l.LastFree().ID)
		}
	}
	return nil
}

func describeLoop(l *network.Loop) string {
	s := ""
	for _, m := range l.Members {
		sign := "+"
		if m.Orientation < 0 {
			sign = "-"
		}
		s += io.Sf("%s%d ", sign, m.Element.ID)
	}
	return s
}
