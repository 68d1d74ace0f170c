// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package weighting

import "math"

// Scaling computes the Vitkovsky et al. (2004) aScale/bScale coefficients
// used to correct the unsteady-friction weighting sums for a pipe of
// relative roughness relRough=ε/d at the given Reynolds number (spec §4.3):
//
//   laminar (Re<2320):            aScale=1, bScale=0
//   turbulent, smooth (ε<1e-6):   aScale=½√(1/π), bScale=Re^κ/12.86
//   turbulent, fully rough:       aScale=0.0103√Re ε^0.39, bScale=0.352 Re ε^0.41
func Scaling(re, relRough float64) (aScale, bScale float64) {
	if re < 2320 {
		return 1, 0
	}
	if relRough < 1.0e-6 {
		kappa := math.Log10(15.29 / math.Pow(re, 0.0567))
		aScale = 0.5 * math.Sqrt(1.0/math.Pi)
		bScale = math.Pow(re, kappa) / 12.86
		return
	}
	aScale = 0.0103 * math.Sqrt(re) * math.Pow(relRough, 0.39)
	bScale = 0.352 * re * math.Pow(relRough, 0.41)
	return
}
