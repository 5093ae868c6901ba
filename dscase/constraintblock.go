// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dscase implements the dominant S-system (§4.1 step 1-2, C6)
// and the Case type (§3, §4.1, C7): one choice of dominant positive
// and negative term per equation, its subdominance rows, and its
// reduced constraint system over Xi. Grounded on DSCase.h and
// DSCaseLinearProgramming.c (original_source).
package dscase

import (
	"github.com/jlomnitz/design-space-toolbox-sub001/dsmat"
)

// ConstraintBlock is a value type holding a feasible-region
// description { U, ζ } such that the region is { y | U·y + ζ ≥ 0 }
// (§3 I1-I2). §9 Design Notes calls for this instead of sharing raw
// matrix pointers between a Case and a "pseudo-case" built for
// intersections: Stack composes a NEW block from borrowed
// (read-only) references to each case's block, never aliasing a
// mutable matrix across owners.
type ConstraintBlock struct {
	U    *dsmat.Matrix // (m, |Xi|)
	Zeta []float64     // (m,)
}

// NumRows returns the number of constraint rows (m).
func (b *ConstraintBlock) NumRows() int {
	if b.U == nil {
		return 0
	}
	return b.U.NumRows()
}

// Eval returns r = U·y + ζ for a point y in Xi-log-space.
func (b *ConstraintBlock) Eval(y []float64) []float64 {
	if b.U == nil {
		return nil
	}
	r := b.U.MulVec(1, y)
	for i := range r {
		r[i] += b.Zeta[i]
	}
	return r
}

// Stack row-stacks a list of ConstraintBlocks into one (§4.3
// intersection: "Build U* by row-stacking each U_c; ζ* by row-stacking
// each ζ_c"). All blocks must share the same column count (|Xi|).
func Stack(blocks []*ConstraintBlock) *ConstraintBlock {
	out := &ConstraintBlock{}
	for _, b := range blocks {
		if b.U == nil || b.NumRows() == 0 {
			continue
		}
		if out.U == nil {
			out.U = b.U.Clone()
			out.Zeta = append([]float64{}, b.Zeta...)
			continue
		}
		out.U = dsmat.AppendMatrices(out.U, b.U, true)
		out.Zeta = append(out.Zeta, b.Zeta...)
	}
	return out
}
