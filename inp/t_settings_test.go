// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_parseSettings01(tst *testing.T) {

	chk.PrintTitle("parseSettings01: a well-formed settings block parses to the expected values")

	src := `
settings {
	fluid: water;
	gasfraction: 0.02;
	discretization: 4;
	symtime: 2.5;
	writeinterval: 10;
	weightingfactor: 1;
}
`
	s, err := ParseSettings(src)
	if err != nil {
		tst.Fatalf("ParseSettings: %v", err)
	}
	chk.Scalar(tst, "gasfraction", 1e-17, s.GasFraction, 0.02)
	if s.Fluid != "water" {
		tst.Errorf("fluid = %q, want water", s.Fluid)
	}
	if s.Discretization != 4 {
		tst.Errorf("discretization = %d, want 4", s.Discretization)
	}
	chk.Scalar(tst, "symtime", 1e-17, s.SymTime, 2.5)
	if s.WriteInterval != 10 {
		tst.Errorf("writeinterval = %d, want 10", s.WriteInterval)
	}
	chk.Scalar(tst, "weightingfactor", 1e-17, s.WeightingFactor, 1)
}

func Test_parseSettings02(tst *testing.T) {

	chk.PrintTitle("parseSettings02: weightingfactor defaults to 1 when absent")

	src := `fluid: water; gasfraction: 0; discretization: 1; symtime: 1; writeinterval: 1;`
	s, err := ParseSettings(src)
	if err != nil {
		tst.Fatalf("ParseSettings: %v", err)
	}
	chk.Scalar(tst, "weightingfactor default", 1e-17, s.WeightingFactor, 1)
}

func Test_parseSettings03(tst *testing.T) {

	chk.PrintTitle("parseSettings03: out-of-range values are rejected")

	cases := []string{
		`fluid: water; gasfraction: -1; discretization: 1; symtime: 1; writeinterval: 1;`,
		`fluid: water; gasfraction: 0; discretization: 0; symtime: 1; writeinterval: 1;`,
		`fluid: water; gasfraction: 0; discretization: 1; symtime: -1; writeinterval: 1;`,
		`fluid: water; gasfraction: 0; discretization: 1; symtime: 1; writeinterval: 1; weightingfactor: 1.5;`,
	}
	for i, src := range cases {
		if _, err := ParseSettings(src); err == nil {
			tst.Errorf("case %d: expected ParseSettings to reject out-of-range input", i)
		}
	}
}

func Test_parseSettings04(tst *testing.T) {

	chk.PrintTitle("parseSettings04: a missing required field is a parse error")

	src := `gasfraction: 0; discretization: 1; symtime: 1; writeinterval: 1;`
	if _, err := ParseSettings(src); err == nil {
		tst.Errorf("ParseSettings should reject a missing 'fluid' field")
	}
}
