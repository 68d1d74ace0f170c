// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/Milover/HydNet/network"
	"github.com/cpmech/gosl/chk"
)

const nodesSrc = `
nodes {
	reservoir {
		id: 1;
		elevation: 100;
		level: 0;
	}
	reservoir {
		id: 2;
		elevation: 50;
		level: 0;
	}
}
`

func Test_parseNodes01(tst *testing.T) {

	chk.PrintTitle("parseNodes01: two reservoir blocks parse to the expected records")

	recs, err := ParseNodes(nodesSrc)
	if err != nil {
		tst.Fatalf("ParseNodes: %v", err)
	}
	if len(recs) != 2 {
		tst.Fatalf("expected 2 node records, got %d", len(recs))
	}
	if recs[0].Type != network.Reservoir || recs[1].Type != network.Reservoir {
		tst.Errorf("both records should be Reservoir type")
	}
	chk.Scalar(tst, "elevation[0]", 1e-17, recs[0].Elevation, 100)
	chk.Scalar(tst, "elevation[1]", 1e-17, recs[1].Elevation, 50)
}

func Test_parseNodes02(tst *testing.T) {

	chk.PrintTitle("parseNodes02: a valve block computes Rate as 1/valvetime")

	src := `
nodes {
	valve {
		id: 1;
		elevation: 0;
		state: 1;
		valvetime: 2;
	}
}
`
	recs, err := ParseNodes(src)
	if err != nil {
		tst.Fatalf("ParseNodes: %v", err)
	}
	chk.Scalar(tst, "rate", 1e-17, recs[0].Rate, 0.5)
}

func Test_parseNodes03(tst *testing.T) {

	chk.PrintTitle("parseNodes03: a valve with valvetime=0 is rejected")

	src := `
nodes {
	valve {
		id: 1;
		elevation: 0;
		state: 1;
		valvetime: 0;
	}
}
`
	if _, err := ParseNodes(src); err == nil {
		tst.Errorf("ParseNodes should reject valvetime=0")
	}
}

func Test_parseNodes04(tst *testing.T) {

	chk.PrintTitle("parseNodes04: an unknown node-type tag is a parse error")

	src := `
nodes {
	turbine {
		id: 1;
	}
}
`
	if _, err := ParseNodes(src); err == nil {
		tst.Errorf("ParseNodes should reject an unrecognised node-type tag")
	}
}

func Test_parseNodes05(tst *testing.T) {

	chk.PrintTitle("parseNodes05: head/pressure/discharge presence sets the matching *Set flags")

	src := `
nodes {
	source {
		id: 1;
		head: 20;
		discharge: 0.1;
	}
}
`
	recs, err := ParseNodes(src)
	if err != nil {
		tst.Fatalf("ParseNodes: %v", err)
	}
	if !recs[0].HeadSet || !recs[0].DischSet {
		tst.Errorf("HeadSet/DischSet should both be true when head/discharge are given")
	}
	if recs[0].PresSet {
		tst.Errorf("PresSet should be false when pressure is absent")
	}
}
