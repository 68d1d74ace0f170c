// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "math"

// Celerity computes the pressure-wave speed a in a fluid-filled elastic pipe
// (GLOSSARY): a = sqrt( (K/ρ) / (1 + K·d/(E·e)) )
func Celerity(bulkModulus, density, diameter, thickness, youngModulus float64) float64 {
	return math.Sqrt((bulkModulus / density) / (1.0 + bulkModulus*diameter/(youngModulus*thickness)))
}
