// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsgma

import "testing"

func twoTermGMA(tst *testing.T) *GMASystem {
	g, err := Parse([]string{
		"dX1/dt = a*X2 + b*X2 - c*X1",
	}, []string{"a", "b", "c"})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestMergeCoDominantTermsFoldsCoefficients(tst *testing.T) {
	g := twoTermGMA(tst)
	if len(g.Alpha[0]) != 2 {
		tst.Fatalf("expected 2 positive terms before merge, got %d", len(g.Alpha[0]))
	}
	merged, err := g.MergeCoDominantTerms(0, true, 0, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(merged.Alpha[0]) != 1 {
		tst.Fatalf("expected 1 positive term after merge, got %d", len(merged.Alpha[0]))
	}
	if merged.Signature[0] != 1 {
		tst.Errorf("expected merged signature component 1, got %d", merged.Signature[0])
	}
	// Original system must stay untouched.
	if len(g.Alpha[0]) != 2 {
		tst.Errorf("expected original GMA to be unmodified, got %d positive terms", len(g.Alpha[0]))
	}
}

func TestMergeCoDominantTermsRejectsOutOfRange(tst *testing.T) {
	g := twoTermGMA(tst)
	if _, err := g.MergeCoDominantTerms(0, true, 0, 5); err == nil {
		tst.Errorf("expected error for out-of-range drop index")
	}
	if _, err := g.MergeCoDominantTerms(0, true, 0, 0); err == nil {
		tst.Errorf("expected error when keep == drop")
	}
}
