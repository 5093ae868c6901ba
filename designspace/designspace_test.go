// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package designspace

import (
	"sort"
	"testing"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsgma"
)

func toggleGMA(tst *testing.T) *dsgma.GMASystem {
	g, err := dsgma.Parse([]string{
		"dX1/dt = a1 - b1*X1",
		"dX2/dt = a2 - b2*X2",
	}, []string{"a1", "a2", "b1", "b2"})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestCaseWithCaseNumberToggle(tst *testing.T) {
	g := toggleGMA(tst)
	d := New(g, nil, Flags{})
	c, err := d.CaseWithCaseNumber(1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !c.HasSolution {
		tst.Fatalf("expected the toggle's only case to have a solution")
	}
	if c.CaseNum != 1 {
		tst.Errorf("expected CaseNum 1, got %d", c.CaseNum)
	}
}

func TestCalculateAllValidCasesSerialToggle(tst *testing.T) {
	g := toggleGMA(tst)
	d := New(g, nil, Flags{Serial: true})
	if err := d.CalculateAllValidCases(); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if d.ValidCases().Count() != 1 {
		tst.Fatalf("expected exactly 1 valid case (the toggle has no competing terms), got %d", d.ValidCases().Count())
	}
	if _, ok := d.ValidCases().Value("1"); !ok {
		tst.Errorf("expected case \"1\" to be recorded valid")
	}
}

func TestCalculateAllValidCasesParallelMatchesSerial(tst *testing.T) {
	g := toggleGMA(tst)

	serial := New(g, nil, Flags{Serial: true})
	if err := serial.CalculateAllValidCases(); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	parallel := New(g, nil, Flags{Serial: false})
	if err := parallel.CalculateAllValidCases(); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	s1 := serial.ValidCases().Names()
	s2 := parallel.ValidCases().Names()
	sort.Strings(s1)
	sort.Strings(s2)
	if len(s1) != len(s2) {
		tst.Fatalf("serial found %d valid cases, parallel found %d", len(s1), len(s2))
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			tst.Errorf("serial/parallel mismatch at %d: %q vs %q", i, s1[i], s2[i])
		}
	}
}

func TestCalculateAllValidCasesByResolvingCyclicalCasesNoCyclesIsPassthrough(tst *testing.T) {
	g := toggleGMA(tst)
	d := New(g, nil, Flags{Serial: true})
	out, err := d.CalculateAllValidCasesByResolvingCyclicalCases()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if out.Count() != 1 {
		tst.Fatalf("expected 1 valid case with no cyclical cases present, got %d", out.Count())
	}
	if d.CyclicalCases().Count() != 0 {
		tst.Errorf("expected no cyclical cases for the toggle, got %d", d.CyclicalCases().Count())
	}
}

func TestCyclicalCaseWithNoUnexplainedBoundaryIsInvalid(tst *testing.T) {
	g := toggleGMA(tst)
	c := &dscase.Case{GMA: g, Signature: []int{1, 1, 1, 1}, CaseNum: 1, HasSolution: false, Block: &dscase.ConstraintBlock{}}
	d := New(g, nil, Flags{})
	cc := newCyclicalCase(d, c)
	if cc.Valid() {
		tst.Errorf("expected a singular case with no zero-boundary row to resolve as invalid")
	}
}

func TestComposeCasePrefix(tst *testing.T) {
	if got := composeCasePrefix("", 7); got != "7" {
		tst.Errorf("expected %q, got %q", "7", got)
	}
	if got := composeCasePrefix("7", 1); got != "7_1" {
		tst.Errorf("expected %q, got %q", "7_1", got)
	}
}

func TestItoa(tst *testing.T) {
	cases := map[int]string{0: "0", 7: "7", 123: "123", -4: "-4"}
	for n, want := range cases {
		if got := itoa(n); got != want {
			tst.Errorf("itoa(%d): expected %q, got %q", n, want, got)
		}
	}
}
