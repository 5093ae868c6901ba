// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsio

import (
	"testing"

	"github.com/jlomnitz/design-space-toolbox-sub001/designspace"
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

func TestGMARoundTrip(tst *testing.T) {
	g := toggleGMA(tst)
	w := newWriter()
	writeGMA(w, g)
	r := newReader(w.bytes())
	g2 := readGMA(r)
	if err := r.done(); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if g2.NumEquations() != g.NumEquations() {
		tst.Fatalf("expected %d equations, got %d", g.NumEquations(), g2.NumEquations())
	}
	if g2.Xd.Len() != g.Xd.Len() || g2.Xi.Len() != g.Xi.Len() {
		tst.Fatalf("expected Xd/Xi pool sizes to round-trip")
	}
	if g2.NumberOfCases() != g.NumberOfCases() {
		tst.Errorf("expected %d cases, got %d", g.NumberOfCases(), g2.NumberOfCases())
	}
	for i := 0; i < g.NumEquations(); i++ {
		for p := range g.Alpha[i] {
			if g2.Alpha[i][p] != g.Alpha[i][p] {
				tst.Errorf("equation %d, term %d: alpha mismatch", i, p)
			}
		}
	}
}

func TestDesignSpaceRoundTrip(tst *testing.T) {
	g := toggleGMA(tst)
	d := designspace.New(g, nil, designspace.Flags{Serial: true})
	if err := d.CalculateAllValidCases(); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if d.ValidCases().Count() != 1 {
		tst.Fatalf("expected 1 valid case in the fixture, got %d", d.ValidCases().Count())
	}

	data, err := EncodeDesignSpace(d)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	d2, err := DecodeDesignSpace(data)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if d2.ValidCases().Count() != d.ValidCases().Count() {
		tst.Fatalf("expected %d valid cases after round-trip, got %d", d.ValidCases().Count(), d2.ValidCases().Count())
	}
	if _, ok := d2.ValidCases().Value("1"); !ok {
		tst.Errorf("expected case \"1\" to survive the round trip")
	}
	if d2.Flags.Serial != d.Flags.Serial {
		tst.Errorf("expected Flags.Serial to round-trip")
	}
	if d2.NumberOfCases != d.NumberOfCases {
		tst.Errorf("expected NumberOfCases to round-trip")
	}
}

func TestModelBuildParsesEquationsAndFlags(tst *testing.T) {
	m := &Model{
		Equations: []string{
			"dX1/dt = a1 - b1*X1",
			"dX2/dt = a2 - b2*X2",
		},
		Xi:         []string{"a1", "a2", "b1", "b2"},
		CasePrefix: "root",
		Flags:      ModelFlags{Serial: true},
	}
	d, err := m.Build()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if d.CasePrefix != "root" {
		tst.Errorf("expected CasePrefix %q, got %q", "root", d.CasePrefix)
	}
	if !d.Flags.Serial {
		tst.Errorf("expected Serial flag to propagate")
	}
	if d.NumberOfCases != 1 {
		tst.Errorf("expected 1 case for the toggle fixture, got %d", d.NumberOfCases)
	}
}

func TestModelBuildRejectsEmptyEquations(tst *testing.T) {
	m := &Model{}
	if _, err := m.Build(); err == nil {
		tst.Errorf("expected an error for a model with no equations")
	}
}
