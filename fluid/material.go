// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Material holds the constant properties of a pipe-wall material
type Material struct {
	Name         string  // name; e.g. "steel", "copper"
	YoungModulus float64 // E [Pa]
}

var materials = map[string]Material{
	"steel":  {Name: "steel", YoungModulus: 200.0e9},
	"copper": {Name: "copper", YoungModulus: 117.0e9},
}

// GetMaterial looks up a pipe material by name (case-insensitive)
func GetMaterial(name string) (Material, error) {
	m, ok := materials[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Material{}, chk.Err("material %q is not available in database", name)
	}
	return m, nil
}
