// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package weighting implements the Zielke (laminar) and Vardy-Brown
// (turbulent) unsteady-friction weighting-function coefficient tables and
// the Vitkovsky et al. (2004) scaling factors derived from them
package weighting

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Coefficients holds one exponential-sum weighting-function approximation:
// K retained modes (n_k, m_k) and K+1 bracketing time-scale thresholds
// τ_mk used to pick how many modes a given Δτ needs (spec §4.3, §9).
// Tau[0] is the smallest resolvable Δτ (below it, selection is a
// Numerical-fatal error per spec §7); Tau[K] is +Inf so that the largest
// table entry always matches
type Coefficients struct {
	N   []float64 // n_k
	M   []float64 // m_k
	Tau []float64 // τ_mk, len(N)+1, strictly increasing
}

// Laminar is the 5-term Zielke (1968) approximation, as tabulated by
// Vitkovsky, Lambert, Simpson & Bergant (2004)
var Laminar = Coefficients{
	N:   []float64{26.3744, 70.8493, 135.0198, 218.9216, 322.5544},
	M:   []float64{0.282095, 0.101032, 0.0595469, 0.0410571, 0.0310715},
	Tau: []float64{1.0e-5, 1.0e-3, 1.0e-2, 1.0e-1, 1.0, math.Inf(1)},
}

// Turbulent is the 5-term Vardy-Brown (2004) approximation
var Turbulent = Coefficients{
	N:   []float64{5.236500, 13.14450, 32.04590, 78.09750, 189.3900},
	M:   []float64{0.054165, 0.061430, 0.064260, 0.064240, 0.062850},
	Tau: []float64{1.0e-5, 1.0e-3, 1.0e-2, 1.0e-1, 1.0, math.Inf(1)},
}

// NumModes returns the smallest M such that Tau[M-1] < Δτ ≤ Tau[M], i.e. the
// smallest number of retained exponential modes whose bracketing threshold
// covers Δτ (spec §9, resolving the "determineNumberOfCoefficients"
// ambiguity). Δτ at or below the smallest tabulated scale is fatal
func (c Coefficients) NumModes(dtau float64) (int, error) {
	if dtau <= c.Tau[0] {
		return 0, chk.Err("Δτ=%.6e is not greater than the smallest tabulated weighting-function scale %.6e", dtau, c.Tau[0])
	}
	for m := 1; m < len(c.Tau); m++ {
		if dtau > c.Tau[m-1] && dtau <= c.Tau[m] {
			if m > len(c.N) {
				m = len(c.N)
			}
			return m, nil
		}
	}
	return len(c.N), nil
}

// Select returns the Laminar or Turbulent table depending on the Reynolds
// number, using the same Re<2320 threshold as physics.Friction
func Select(re float64) Coefficients {
	if re < 2320 {
		return Laminar
	}
	return Turbulent
}
