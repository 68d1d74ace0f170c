// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/Milover/HydNet/network"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PlotHeadTrace draws the head-vs-time trace at one node of one element's
// mesh, an optional diagnostic gated behind the -plot flag
func PlotHeadTrace(times, heads []float64, title, dir, fname string) {
	plt.Reset()
	plt.Plot(times, heads, "'b-', label='H'")
	plt.Gll("t [s]", "H [m]", "")
	plt.SaveD(dir, fname)
}

// PlotNetworkMesh traces every element's current head profile along its own
// mesh, one curve per element, for a single-figure topology-vs-head sanity
// check
func PlotNetworkMesh(net *network.Network, dir, fname string) {
	plt.Reset()
	for _, e := range net.Elements {
		x := make([]float64, len(e.Mesh))
		h := make([]float64, len(e.Mesh))
		for i, n := range e.Mesh {
			x[i] = float64(i) * e.SpatialStep
			h[i] = n.Head
		}
		plt.Plot(x, h, io.Sf("label='%s'", e.Start.Type.String()))
	}
	plt.Gll("x [m]", "H [m]", "")
	plt.SaveD(dir, fname)
}
