// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid holds immutable fluid and pipe-material property tables
package fluid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Fluid holds the constant properties of a working fluid
type Fluid struct {
	Name           string  // name; e.g. "water"
	Density        float64 // ρ [kg/m³]
	Viscosity      float64 // dynamic viscosity μ [Pa·s]
	BulkModulus    float64 // K [Pa]
	VapourHead     float64 // h_vap [m], referred to the same datum as nodal head
	RefGasFraction float64 // α_ref, reference dissolved-gas fraction at RefPressure
	RefPressure    float64 // p_ref [Pa]
}

// Kinematic returns the kinematic viscosity ν = μ/ρ
func (f Fluid) Kinematic() float64 {
	return f.Viscosity / f.Density
}

// database of known fluids; populated once at init and never mutated again
var database = map[string]Fluid{
	"water": {
		Name:           "water",
		Density:        1000.0,
		Viscosity:      1.0e-3,
		BulkModulus:    2.19e9,
		VapourHead:     -10.0,
		RefGasFraction: 1.0e-7,
		RefPressure:    1.0e5,
	},
}

// Get looks up a fluid by name (case-insensitive). A name not present in the
// database is a Parse-class error surfaced to the caller, not a panic
func Get(name string) (Fluid, error) {
	f, ok := database[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Fluid{}, chk.Err("fluid %q is not available in database", name)
	}
	return f, nil
}
