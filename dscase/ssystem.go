// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dscase

import (
	"math"

	"github.com/jlomnitz/design-space-toolbox-sub001/dsgma"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsmat"
)

// SSystem is the dominant S-system derived from a GMA case (§4.1 step
// 1) together with its log-linear steady state (§4.1 step 2):
//
//	log Xd = M·log Xi + b
//
// solved from A·log Xd = C·log Xi + d where A = Gd[p]-Hd[n] (the
// chosen terms' Xd-exponent difference) and is required invertible.
type SSystem struct {
	M           *dsmat.Matrix // (|Xd|, |Xi|)
	B           []float64     // (|Xd|,)
	HasSolution bool
}

// BuildSSystem derives the dominant S-system for the chosen term
// indices p[i], n[i] (0-based) per equation i. Returns HasSolution =
// false (never an error) when A is singular, matching §4.1: "If
// singular, hasSolution=false" and §7: "Numerical singularities ...
// reported as hasSolution=false ... treated as 'may be cyclical'
// rather than 'bug'".
func BuildSSystem(g *dsgma.GMASystem, p, n []int) *SSystem {
	nd := g.Xd.Len()
	ni := g.Xi.Len()
	ne := g.NumEquations()
	// A/C/d are sized to NumEquations() rows, not Xd.Len() rows: an
	// algebraic ("0 = ...") equation contributes a row here without
	// introducing a new Xd entry (dsgma.Parse only adds Xd names for
	// dXi/dt targets), so ne can exceed nd. Sizing A by nd would index
	// past its allocated rows inside the fill loop below.
	A := dsmat.Alloc(ne, nd)
	C := dsmat.Alloc(ne, ni)
	d := make([]float64, ne)
	for i := 0; i < ne; i++ {
		pi, ni_ := p[i], n[i]
		gd, hd := g.Gd[i][pi], g.Hd[i][ni_]
		gi, hi := g.Gi[i][pi], g.Hi[i][ni_]
		for k := 0; k < nd; k++ {
			A.Set(i, k, gd[k]-hd[k])
		}
		for k := 0; k < ni; k++ {
			C.Set(i, k, hi[k]-gi[k])
		}
		d[i] = math.Log10(g.Beta[i][ni_]) - math.Log10(g.Alpha[i][pi])
	}
	// If |Xd| != numEquations the A matrix isn't even square; treat as
	// no solution rather than indexing out of bounds downstream.
	if A.NumRows() != A.NumCols() {
		return &SSystem{HasSolution: false}
	}
	inv, _, err := A.Inv()
	if err != nil {
		return &SSystem{HasSolution: false}
	}
	M := inv.Mul(1, C)
	b := inv.MulVec(1, d)
	return &SSystem{M: M, B: b, HasSolution: true}
}
