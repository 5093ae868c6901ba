// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsexpr

import (
	"math"
	"testing"
)

func TestParseEvalBasic(tst *testing.T) {
	e, err := Parse("2*X^3 + 1")
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	v, err := e.Value(map[string]float64{"X": 2})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v-17) > 1e-12 {
		tst.Errorf("expected 17, got %v", v)
	}
}

func TestParseUnaryMinusAndPower(tst *testing.T) {
	e, err := Parse("-X^2")
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	v, err := e.Value(map[string]float64{"X": 3})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v-(-9)) > 1e-12 {
		tst.Errorf("expected -9, got %v", v)
	}
}

func TestParseFunctions(tst *testing.T) {
	e, err := Parse("sqrt(4) + log10(100)")
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	v, err := e.Value(nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v-4) > 1e-9 {
		tst.Errorf("expected 4, got %v", v)
	}
}

func TestParseEquationDifferential(tst *testing.T) {
	eq, err := ParseEquation("dX1/dt = a1 - b1*X1")
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if eq.Target != "X1" || eq.IsAlgebraic {
		tst.Errorf("unexpected target parse: %+v", eq)
	}
	if len(eq.Pos) != 1 || len(eq.Neg) != 1 {
		tst.Fatalf("expected 1 pos and 1 neg term, got %d/%d", len(eq.Pos), len(eq.Neg))
	}
	if eq.Pos[0].Coeff != 1 {
		tst.Errorf("expected implicit coefficient 1 for 'a1', got %v", eq.Pos[0].Coeff)
	}
	if _, ok := eq.Neg[0].Powers["X1"]; !ok {
		tst.Errorf("expected X1 in negative term powers: %+v", eq.Neg[0])
	}
}

func TestParseEquationAlgebraic(tst *testing.T) {
	eq, err := ParseEquation("0 = k1*X1 - k2*X2*X3")
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !eq.IsAlgebraic || eq.Target != "" {
		tst.Errorf("expected algebraic equation, got %+v", eq)
	}
}

func TestParseEquationRejectsNonPositiveCoeff(tst *testing.T) {
	if _, err := ParseEquation("dX1/dt = -2*X1 - 1"); err == nil {
		tst.Errorf("expected error for non-positive coefficient")
	}
}

func TestParseEquationBistablePair(tst *testing.T) {
	eq1, err := ParseEquation("dX1/dt = a + X2^2 - X1")
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(eq1.Pos) != 2 || len(eq1.Neg) != 1 {
		tst.Fatalf("expected 2 pos, 1 neg terms, got %d/%d", len(eq1.Pos), len(eq1.Neg))
	}
}
