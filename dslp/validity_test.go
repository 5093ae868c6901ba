// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dslp

import (
	"testing"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsgma"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsmat"
)

func toggleCase(tst *testing.T) *dscase.Case {
	g, err := dsgma.Parse([]string{
		"dX1/dt = a1 - b1*X1",
		"dX2/dt = a2 - b2*X2",
	}, []string{"a1", "a2", "b1", "b2"})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	c, err := dscase.Build(g, []int{1, 1, 1, 1}, nil, false, nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return c
}

// TestToggleCaseHasNoConstraintsIsValid: the toggle's only case has no
// subdominance rows at all, so its constraint block is trivially (and
// strictly) feasible over the whole free Xi space (spec.md §8
// scenario 1).
func TestToggleCaseHasNoConstraintsIsValid(tst *testing.T) {
	c := toggleCase(tst)
	ok, err := IsValid(c.Block)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		tst.Errorf("expected the unconstrained toggle case to be valid")
	}
}

func TestIsValidAtPointTrivialCase(tst *testing.T) {
	c := toggleCase(tst)
	y := make([]float64, c.Block.U.NumCols())
	ok, err := IsValidAtPoint(c.Block, y)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		tst.Errorf("expected any point to satisfy an empty constraint block")
	}
}

func TestIsValidAtPointRejectsWrongLength(tst *testing.T) {
	c := toggleCase(tst)
	if _, err := IsValidAtPoint(c.Block, []float64{1}); err == nil {
		tst.Errorf("expected error for mismatched point length")
	}
}

// TestManualBlockStrictlyFeasible builds a constraint block directly
// (one row, positive on both entries) and checks the Chebyshev LP
// finds a strictly interior point.
func TestManualBlockStrictlyFeasible(tst *testing.T) {
	U := dsmat.Alloc(1, 2)
	U.Set(0, 0, 1)
	U.Set(0, 1, 1)
	block := &dscase.ConstraintBlock{U: U, Zeta: []float64{0}}
	ok, err := IsValid(block)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		tst.Errorf("expected x+y >= 0 to be strictly feasible")
	}
}

// TestManualBlockInfeasible builds a pair of contradictory rows (x>=1
// and -x>=1, i.e. x<=-1) and expects infeasibility.
func TestManualBlockInfeasible(tst *testing.T) {
	U := dsmat.Alloc(2, 1)
	U.Set(0, 0, 1)
	U.Set(1, 0, -1)
	block := &dscase.ConstraintBlock{U: U, Zeta: []float64{-1, -1}}
	ok, err := IsValid(block)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if ok {
		tst.Errorf("expected x>=1 and x<=-1 to be infeasible")
	}
}

func TestIsValidAtSliceFixedPointMatchesIsValidAtPoint(tst *testing.T) {
	U := dsmat.Alloc(1, 2)
	U.Set(0, 0, 1)
	U.Set(0, 1, 1)
	block := &dscase.ConstraintBlock{U: U, Zeta: []float64{0}}
	bounds := []Bound{Fixed(1), Fixed(1)}
	ok, err := IsValidAtSlice(block, bounds)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		tst.Errorf("expected x=y=1 slice (x+y=2>=0) to be valid")
	}
	atPoint, err := IsValidAtPoint(block, []float64{1, 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if atPoint != true {
		tst.Errorf("IsValidAtPoint disagreed with the fixed-slice result")
	}
}

func TestIntersectionOfSingleCaseMatchesIsValid(tst *testing.T) {
	c := toggleCase(tst)
	single, err := IsValid(c.Block)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	inter, err := IntersectionIsValid([]*dscase.ConstraintBlock{c.Block})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if single != inter {
		tst.Errorf("IntersectionIsValid([c]) disagreed with IsValid(c): %v vs %v", inter, single)
	}
}
