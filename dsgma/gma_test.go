// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsgma

import "testing"

func TestParseTwoTermToggle(tst *testing.T) {
	g, err := Parse([]string{
		"dX1/dt = a1 - b1*X1",
		"dX2/dt = a2 - b2*X2",
	}, []string{"a1", "a2", "b1", "b2"})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if g.NumEquations() != 2 {
		tst.Fatalf("expected 2 equations, got %d", g.NumEquations())
	}
	wantSig := []int{1, 1, 1, 1}
	for i, s := range wantSig {
		if g.Signature[i] != s {
			tst.Errorf("signature[%d] = %d, want %d", i, g.Signature[i], s)
		}
	}
	if g.NumberOfCases() != 1 {
		tst.Errorf("expected 1 case, got %d", g.NumberOfCases())
	}
}

func TestParseBistablePair(tst *testing.T) {
	g, err := Parse([]string{
		"dX1/dt = a + X2^2 - X1",
		"dX2/dt = a + X1^2 - X2",
	}, []string{"a"})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	wantSig := []int{2, 1, 2, 1}
	for i, s := range wantSig {
		if g.Signature[i] != s {
			tst.Errorf("signature[%d] = %d, want %d", i, g.Signature[i], s)
		}
	}
	if g.NumberOfCases() != 4 {
		tst.Errorf("expected 4 cases, got %d", g.NumberOfCases())
	}
}

func TestCaseNumberRoundTrip(tst *testing.T) {
	g, err := Parse([]string{
		"dX1/dt = a + X2^2 - X1",
		"dX2/dt = a + X1^2 - X2",
	}, []string{"a"})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	total := g.NumberOfCases()
	for n := 1; n <= total; n++ {
		s, err := g.DecodeCaseNumber(n)
		if err != nil {
			tst.Fatalf("decode(%d): %v", n, err)
		}
		back, err := g.CaseNumber(s)
		if err != nil {
			tst.Fatalf("encode(%v): %v", s, err)
		}
		if back != n {
			tst.Errorf("round-trip mismatch: N=%d -> s=%v -> N=%d", n, s, back)
		}
	}
}

func TestTermSignature(tst *testing.T) {
	t1 := Term{Coeff: 2, Powers: map[string]float64{"X1": 1, "X2": 2}}
	t2 := Term{Coeff: 5, Powers: map[string]float64{"X2": 2, "X1": 1}}
	if t1.Signature() != t2.Signature() {
		tst.Errorf("expected equal signatures regardless of coefficient, got %q vs %q", t1.Signature(), t2.Signature())
	}
}

func TestParseRejectsUnknownVariable(tst *testing.T) {
	_, err := Parse([]string{"dX1/dt = a1 - b1*Y1"}, []string{"a1", "b1"})
	if err == nil {
		tst.Errorf("expected error for variable Y1 not declared as Xi and not a target")
	}
}
