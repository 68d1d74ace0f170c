// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/Milover/HydNet/inp"
	"github.com/Milover/HydNet/network"
	"github.com/Milover/HydNet/out"
	"github.com/Milover/HydNet/steady"
	"github.com/Milover/HydNet/transient"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {
	exitCode := 0
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			exitCode = 1
		}
		os.Exit(exitCode)
	}()

	plot := flag.Bool("plot", false, "write an optional diagnostic head-profile plot")
	outdir := flag.String("outdir", ".", "directory for the per-element CSV traces and summary")
	flag.Parse()

	io.PfWhite("\nHydNet -- pipe-network flow & water-hammer simulator\n\n")

	net := run(*outdir)
	if *plot {
		out.PlotNetworkMesh(net, *outdir, "network_mesh.eps")
	}
	io.Pf("\n> done\n")
}

// run executes parse -> steady solve -> discretise -> transient loop ->
// output (spec §6), panicking (caught by main's recover) on any Parse,
// Topology, or Numerical-fatal error (spec §7)
func run(outdir string) *network.Network {
	settingsSrc, err := io.ReadFile("settings")
	if err != nil {
		chk.Panic("cannot read settings file: %v", err)
	}
	elementsSrc, err := io.ReadFile("elements")
	if err != nil {
		chk.Panic("cannot read elements file: %v", err)
	}
	nodesSrc, err := io.ReadFile("nodes")
	if err != nil {
		chk.Panic("cannot read nodes file: %v", err)
	}

	settings, err := inp.ParseSettings(string(settingsSrc))
	if err != nil {
		chk.Panic("%v", err)
	}
	nodeQty, _, elemRecs, err := inp.ParseElements(string(elementsSrc))
	if err != nil {
		chk.Panic("%v", err)
	}
	nodeRecs, err := inp.ParseNodes(string(nodesSrc))
	if err != nil {
		chk.Panic("%v", err)
	}

	net, err := inp.Build(settings, elemRecs, nodeQty, nodeRecs)
	if err != nil {
		chk.Panic("%v", err)
	}

	if err := steady.Solve(net); err != nil {
		chk.Panic("steady solve failed: %v", err)
	}

	disc, err := net.Discretize()
	if err != nil {
		chk.Panic("discretisation failed: %v", err)
	}

	writer, err := out.NewWriter(net, outdir)
	if err != nil {
		chk.Panic("%v", err)
	}
	defer writer.Close()

	if err := transient.Run(net, disc.Dt, writer); err != nil {
		chk.Panic("transient solver failed: %v", err)
	}

	if err := out.WriteSummary(net, outdir+"/summary.txt"); err != nil {
		chk.Panic("%v", err)
	}
	return net
}
