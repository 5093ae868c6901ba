// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dslp

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
)

// StrictTolerance is the margin the optimal Chebyshev radius η must
// clear for a case to be reported strictly feasible, matching the
// zero tolerance used throughout §4 (dscase.ZeroTolerance).
const StrictTolerance = dscase.ZeroTolerance

// solveFeasibility runs the Chebyshev-margin LP for block under
// bounds (nil = every Xi variable free) and returns the optimal margin
// η*. A solver-reported infeasibility is not an error: it simply
// yields η* = -Inf, so callers can compare against StrictTolerance
// uniformly. Per §4.2/§7, an LP environment or solver failure is
// reported as invalid, never fatal. A nil block, or one with no U
// matrix or no rows, is treated as unconstrained and yields η* = +Inf;
// only malformed bounds return a non-nil error.
func solveFeasibility(block *dscase.ConstraintBlock, bounds []Bound) (eta float64, err error) {
	if block == nil || block.U == nil || block.NumRows() == 0 {
		// No constraints at all: the whole space is feasible, and
		// trivially so (no boundary to be close to).
		return math.Inf(1), nil
	}
	sf, err := buildStandardForm(block, bounds)
	if err != nil {
		return 0, err
	}
	A := mat.NewDense(sf.nrows, sf.ncols, nil)
	for i, row := range sf.A {
		for j, v := range row {
			A.Set(i, j, v)
		}
	}
	optF, optX, solveErr := lp.Simplex(sf.c, A, sf.b, 1e-10, nil)
	if solveErr != nil {
		switch solveErr {
		case lp.ErrInfeasible:
			return math.Inf(-1), nil
		case lp.ErrUnbounded:
			// The margin can grow without bound: the region is
			// unboundedly feasible.
			return math.Inf(1), nil
		default:
			// §4.2/§7: a solver-level failure is reported as invalid
			// and logged at WARN, never propagated as fatal.
			utl.PfRed("dslp: WARN: LP solver failure treated as invalid: %v\n", solveErr)
			return math.Inf(-1), nil
		}
	}
	eta = optX[sf.etaPos] - optX[sf.etaNeg]
	_ = optF
	return eta, nil
}

// IsValid reports whether the case's feasible region { y | U·y+ζ≥0 }
// is non-empty with strict interior (§4.2 public contract is_valid).
func IsValid(block *dscase.ConstraintBlock) (bool, error) {
	eta, err := solveFeasibility(block, nil)
	if err != nil {
		return false, err
	}
	return eta > StrictTolerance, nil
}

// IsValidAtPoint pins every Xi variable to a fixed log10 value and
// checks r = U·y+ζ ≥ 0 directly, no LP required (§4.2
// is_valid_at_point).
func IsValidAtPoint(block *dscase.ConstraintBlock, y []float64) (bool, error) {
	if block == nil || block.U == nil {
		return false, errNilBlock()
	}
	if len(y) != block.U.NumCols() {
		return false, chk.Err("dslp: point has %d components, expected %d", len(y), block.U.NumCols())
	}
	r := block.Eval(y)
	for _, v := range r {
		if v < 0 {
			return false, nil
		}
	}
	return true, nil
}

// IsValidAtSlice restricts each Xi variable to bounds[k] (a nil bounds
// slice, or a zero-value Bound, means free) and checks strict
// feasibility of the resulting bounded
// region (§4.2 is_valid_at_slice).
func IsValidAtSlice(block *dscase.ConstraintBlock, bounds []Bound) (bool, error) {
	eta, err := solveFeasibility(block, bounds)
	if err != nil {
		return false, err
	}
	return eta > StrictTolerance, nil
}
