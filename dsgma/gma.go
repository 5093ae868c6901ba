// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsgma implements GMASystem (§3, §5 C5): a Generalized Mass
// Action system parsed from equation strings into matrix form — the
// coefficient arrays α, β and exponent tensors Gd, Gi, Hd, Hi, plus
// the case signature and case count. It is grounded on
// DSGMASystem.h/DSDesignSpace.c (original_source) for the tensor
// layout, and on the teacher's inp/func.go factory idiom
// (FuncsData.GetOrPanic) for the "parse once, validate eagerly" style.
package dsgma

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/jlomnitz/design-space-toolbox-sub001/dsexpr"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsvar"
)

// Term is one dominant-or-not monomial of an equation, carrying both
// the parsed Monomial and a structural signature used by the
// codominance detector (§4.1) to decide whether two terms have the
// same product-of-powers shape.
type Term struct {
	Coeff  float64
	Powers map[string]float64
}

// Signature returns a canonical string key for the term's exponent
// shape (coefficient excluded), e.g. "X1^2|X2^1". Two terms with equal
// Signature differ only by coefficient.
func (t Term) Signature() string {
	keys := make([]string, 0, len(t.Powers))
	for k, v := range t.Powers {
		if v != 0 {
			keys = append(keys, fmt.Sprintf("%s^%v", k, v))
		}
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// GMASystem is a Generalized Mass Action system in matrix form (§3).
type GMASystem struct {
	Xd *dsvar.Pool // dependent pool (includes time-differentiated entries)
	Xi *dsvar.Pool // independent pool

	// Alpha[i][p], Beta[i][n]: positive/negative term coefficients.
	Alpha [][]float64
	Beta  [][]float64

	// Gd[i][p][k], Gi[i][p][k]: exponents of positive term p of
	// equation i over Xd/Xi. Hd/Hi analogous for negative terms.
	Gd [][][]float64
	Gi [][][]float64
	Hd [][][]float64
	Hi [][][]float64

	// PosTerms[i][p], NegTerms[i][n]: the raw terms, kept for
	// signature comparisons used by codominance detection.
	PosTerms [][]Term
	NegTerms [][]Term

	// Signature is the flattened [P_0,N_0,P_1,N_1,...] vector.
	Signature []int
}

// NumEquations returns the number of GMA equations (E in spec.md §3).
func (g *GMASystem) NumEquations() int { return len(g.Alpha) }

// NumberOfCases returns the product of the signature, the total case
// count Π signature[j].
func (g *GMASystem) NumberOfCases() int {
	n := 1
	for _, s := range g.Signature {
		n *= s
	}
	return n
}

// Parse builds a GMASystem from a list of equation strings. xiNames,
// if non-nil, fixes the independent-variable order; otherwise
// independent variables are inferred (any name used in a term that is
// not a dependent/time-differentiated target) in first-appearance
// order. Every equation must be of the form `dXi/dt = ...` (algebraic
// `0 = ...` equations are accepted as pure constraints among the
// already-declared Xd/Xi and do not introduce a new dependent
// variable — the §6 grammar gives algebraic equations no name to
// introduce one with; see DESIGN.md).
func Parse(eqStrings []string, xiNames []string) (*GMASystem, error) {
	if len(eqStrings) == 0 {
		return nil, chk.Err("dsgma: at least one equation is required")
	}

	parsed := make([]*dsexpr.Equation, len(eqStrings))
	xdOrder := []string{}
	xdSeen := map[string]bool{}
	for i, s := range eqStrings {
		eq, err := dsexpr.ParseEquation(s)
		if err != nil {
			return nil, chk.Err("dsgma: equation %d: %v", i+1, err)
		}
		parsed[i] = eq
		if eq.Target != "" && !xdSeen[eq.Target] {
			xdSeen[eq.Target] = true
			xdOrder = append(xdOrder, eq.Target)
		}
	}

	xiOrder := xiNames
	xiSeen := map[string]bool{}
	for _, n := range xiOrder {
		xiSeen[n] = true
	}
	if xiNames == nil {
		for _, eq := range parsed {
			for _, terms := range [][]dsexpr.Monomial{eq.Pos, eq.Neg} {
				for _, t := range terms {
					for name := range t.Powers {
						if xdSeen[name] || xiSeen[name] {
							continue
						}
						xiSeen[name] = true
						xiOrder = append(xiOrder, name)
					}
				}
			}
		}
	}

	xd := dsvar.NewPool(dsvar.ReadWriteAdd)
	for _, n := range xdOrder {
		xd.MustAdd(n, 0)
	}
	xd.SetMode(dsvar.ReadOnly)

	xi := dsvar.NewPool(dsvar.ReadWriteAdd)
	for _, n := range xiOrder {
		xi.MustAdd(n, 0)
	}
	xi.SetMode(dsvar.ReadOnly)

	g := &GMASystem{Xd: xd, Xi: xi}
	for i, eq := range parsed {
		if eq.Target == "" && !eq.IsAlgebraic {
			return nil, chk.Err("dsgma: equation %d has neither a derivative target nor is algebraic", i+1)
		}
		alpha, gd, gi, posTerms, err := buildTensorSide(eq.Pos, xd, xi)
		if err != nil {
			return nil, chk.Err("dsgma: equation %d, positive sum: %v", i+1, err)
		}
		beta, hd, hi, negTerms, err := buildTensorSide(eq.Neg, xd, xi)
		if err != nil {
			return nil, chk.Err("dsgma: equation %d, negative sum: %v", i+1, err)
		}
		g.Alpha = append(g.Alpha, alpha)
		g.Beta = append(g.Beta, beta)
		g.Gd = append(g.Gd, gd)
		g.Gi = append(g.Gi, gi)
		g.Hd = append(g.Hd, hd)
		g.Hi = append(g.Hi, hi)
		g.PosTerms = append(g.PosTerms, posTerms)
		g.NegTerms = append(g.NegTerms, negTerms)
		g.Signature = append(g.Signature, len(alpha), len(beta))
	}
	return g, nil
}

func buildTensorSide(terms []dsexpr.Monomial, xd, xi *dsvar.Pool) (coeffs []float64, Td, Ti [][]float64, out []Term, err error) {
	coeffs = make([]float64, len(terms))
	Td = make([][]float64, len(terms))
	Ti = make([][]float64, len(terms))
	out = make([]Term, len(terms))
	for k, m := range terms {
		coeffs[k] = m.Coeff
		row := make([]float64, xd.Len())
		irow := make([]float64, xi.Len())
		for name, exp := range m.Powers {
			if idx := xd.IndexOf(name); idx >= 0 {
				row[idx] = exp
				continue
			}
			if idx := xi.IndexOf(name); idx >= 0 {
				irow[idx] = exp
				continue
			}
			return nil, nil, nil, nil, chk.Err("dsgma: variable %q is neither dependent nor independent", name)
		}
		Td[k] = row
		Ti[k] = irow
		out[k] = Term{Coeff: m.Coeff, Powers: m.Powers}
	}
	return coeffs, Td, Ti, out, nil
}

// CaseNumber encodes a case signature vector s (1-based per dimension)
// into the mixed-radix case number N(s) = 1 + Σ_j (s_j-1)·Π_{k<j}σ_k
// (§3). s must have length len(g.Signature).
func (g *GMASystem) CaseNumber(s []int) (int, error) {
	if len(s) != len(g.Signature) {
		return 0, chk.Err("dsgma: signature vector has length %d, expected %d", len(s), len(g.Signature))
	}
	n := 1
	mult := 1
	for j, sj := range s {
		if sj < 1 || sj > g.Signature[j] {
			return 0, chk.Err("dsgma: signature component %d (%d) out of range [1,%d]", j, sj, g.Signature[j])
		}
		n += (sj - 1) * mult
		mult *= g.Signature[j]
	}
	return n, nil
}

// DecodeCaseNumber inverts CaseNumber: given N in [1, Πσ], returns s.
func (g *GMASystem) DecodeCaseNumber(N int) ([]int, error) {
	total := g.NumberOfCases()
	if N < 1 || N > total {
		return nil, chk.Err("dsgma: case number %d out of range [1,%d]", N, total)
	}
	rem := N - 1
	s := make([]int, len(g.Signature))
	for j, sj := range g.Signature {
		s[j] = rem%sj + 1
		rem /= sj
	}
	return s, nil
}

// SignatureString renders a decoded signature as "P0N0-P1N1-..." for
// human-readable logging, grounded on original_source's
// dsCaseSigFromN convention (DSDesignSpace.c).
func SignatureString(s []int) string {
	parts := make([]string, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		parts = append(parts, fmt.Sprintf("%d%d", s[i], s[i+1]))
	}
	return strings.Join(parts, "-")
}
