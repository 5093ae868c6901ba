// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package designspace

import (
	"sort"
	"testing"

	"github.com/jlomnitz/design-space-toolbox-sub001/dsgma"
)

// TestCalculateAllValidCasesBistablePair builds the real bistable-pair
// GMA (signature [2,1,2,1], 4 cases) and sweeps it end to end, rather
// than only checking the signature/case-count as the dsgma-level test
// does: the two symmetric cases where both equations dominate on the
// same side (both on the shared parameter "a", or both on the cross
// term) are the only ones with a strictly feasible region.
func TestCalculateAllValidCasesBistablePair(tst *testing.T) {
	g, err := dsgma.Parse([]string{
		"dX1/dt = a + X2^2 - X1",
		"dX2/dt = a + X1^2 - X2",
	}, []string{"a"})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	d := New(g, nil, Flags{Serial: true})
	if err := d.CalculateAllValidCases(); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	got := d.ValidCases().Names()
	sort.Strings(got)
	want := []string{"1", "4"}
	if len(got) != len(want) {
		tst.Fatalf("expected valid cases %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			tst.Fatalf("expected valid cases %v, got %v", want, got)
		}
	}
}

// TestCalculateAllValidCasesByResolvingCyclicalCasesThreeEquationCycle
// builds a genuine 3-equation mass-conservation cycle X1->X2->X3->X1
// (eq0's flux term is written twice, so the dominant S-system for the
// case that picks the flux in all three equations is singular with no
// boundary explainable by codominance) and drives it through the
// actual sweep + cyclical-resolution path, rather than hand-
// constructing a broken Case as the other cyclical test in this
// package does. The equal-duplicate flux in eq0 is what makes the row
// raw-zero and lets buildCyclicalCase find something to merge; eq1/eq2
// each additionally offer a non-cyclic constant alternative, so the
// resulting internal sub design-space (signature [1,1,2,1,2,1], 4
// cases) has a mix of non-singular and singular candidates.
func TestCalculateAllValidCasesByResolvingCyclicalCasesThreeEquationCycle(tst *testing.T) {
	g, err := dsgma.Parse([]string{
		"dX1/dt = 0.5*X3 + 0.5*X3 - X1",
		"dX2/dt = 1 + 0.1*X1 - X2",
		"dX3/dt = 1 + 0.1*X2 - X3",
	}, nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	d := New(g, nil, Flags{Serial: true})
	out, err := d.CalculateAllValidCasesByResolvingCyclicalCases()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	cc, ok := d.CyclicalCases().Value("7")
	if !ok {
		tst.Fatalf("expected case 7 (the full X1->X2->X3->X1 cycle) to be flagged cyclical, got %v", d.CyclicalCases().Names())
	}
	if cc.Internal == nil {
		tst.Fatalf("expected case 7 to resolve into an internal sub design-space")
	}
	if cc.Internal.NumberOfCases != 4 {
		tst.Errorf("expected the merged internal system to have 4 cases, got %d", cc.Internal.NumberOfCases)
	}
	if !cc.Valid() {
		tst.Fatalf("expected the internal sub design-space to resolve at least one valid sub-case")
	}
	if _, ok := out.Value("7_1"); !ok {
		tst.Errorf("expected composite case %q in the resolved dictionary, got %v", "7_1", out.Names())
	}
}
