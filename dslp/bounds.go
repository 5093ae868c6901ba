// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dslp implements Case validity (C8): LP feasibility, point
// and slice evaluation, and case intersection, on top of the reduced
// constraint system { U, ζ } a dscase.Case or dscase.ConstraintBlock
// carries. Grounded on DSCaseLinearProgramming.c (original_source) for
// the bounding-box staging and the Chebyshev-style strict-feasibility
// encoding, and on gonum-gonum/optimize/convex/lp for the simplex
// backend the teacher stack itself lacks.
package dslp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// boundKind classifies an Xi variable's bounding in a slice query
// (§4.2 bounding-box construction).
type boundKind int

const (
	boundFree boundKind = iota
	boundLowerOnly
	boundUpperOnly
	boundFixed
	boundDouble
)

// Bound restricts one Xi variable (in log10 coordinates) to a closed
// interval. HasLower/HasUpper false means -inf/+inf respectively.
type Bound struct {
	HasLower bool
	Lower    float64
	HasUpper bool
	Upper    float64
}

// Free is the unrestricted bound, equivalent to omitting a variable
// from a slice query.
func Free() Bound { return Bound{} }

// Fixed pins a variable to a single value.
func Fixed(v float64) Bound { return Bound{HasLower: true, Lower: v, HasUpper: true, Upper: v} }

// Interval bounds a variable to [lo, up].
func Interval(lo, up float64) Bound {
	return Bound{HasLower: true, Lower: lo, HasUpper: true, Upper: up}
}

// AtLeast bounds a variable from below only.
func AtLeast(lo float64) Bound { return Bound{HasLower: true, Lower: lo} }

// AtMost bounds a variable from above only.
func AtMost(up float64) Bound { return Bound{HasUpper: true, Upper: up} }

func (b Bound) kind() boundKind {
	switch {
	case !b.HasLower && !b.HasUpper:
		return boundFree
	case b.HasLower && !b.HasUpper:
		return boundLowerOnly
	case !b.HasLower && b.HasUpper:
		return boundUpperOnly
	case b.Lower == b.Upper:
		return boundFixed
	default:
		return boundDouble
	}
}

func freeBounds(n int) []Bound { return make([]Bound, n) }

func validateBounds(bounds []Bound, n int) error {
	if bounds == nil {
		return nil
	}
	if len(bounds) != n {
		return chk.Err("dslp: %d bounds given, expected %d", len(bounds), n)
	}
	for i, b := range bounds {
		if b.HasLower && b.HasUpper && b.Lower > b.Upper {
			return chk.Err("dslp: bound %d has lower %v > upper %v", i, b.Lower, b.Upper)
		}
		if b.HasLower && math.IsNaN(b.Lower) {
			return chk.Err("dslp: bound %d lower is NaN", i)
		}
		if b.HasUpper && math.IsNaN(b.Upper) {
			return chk.Err("dslp: bound %d upper is NaN", i)
		}
	}
	return nil
}
