// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsgma

import "github.com/cpmech/gosl/chk"

// MergeCoDominantTerms builds the GMASystem used to resolve a cyclical
// case (§4.6 resolution: "augmenting the offending flux(es) with a new
// symbolic term, equal to the sum of the co-dominant fluxes, and
// re-parsing"). Equation eqIdx's term list (positive side if
// isPositive, else negative) has its drop term folded into keep by
// adding their coefficients, so the pair of tied terms becomes one
// symbolic term carrying their combined flux; every other equation and
// term is copied unchanged. g itself is never mutated — a
// DesignSpace's ExtraConstraints were built over g and must stay valid
// for cases built from the original system.
func (g *GMASystem) MergeCoDominantTerms(eqIdx int, isPositive bool, keep, drop int) (*GMASystem, error) {
	if eqIdx < 0 || eqIdx >= g.NumEquations() {
		return nil, chk.Err("dsgma: equation index %d out of range", eqIdx)
	}
	out := &GMASystem{
		Xd: g.Xd, Xi: g.Xi,
		Alpha: cloneF2(g.Alpha), Beta: cloneF2(g.Beta),
		Gd: cloneF3(g.Gd), Gi: cloneF3(g.Gi), Hd: cloneF3(g.Hd), Hi: cloneF3(g.Hi),
		PosTerms: clonePosNeg(g.PosTerms), NegTerms: clonePosNeg(g.NegTerms),
		Signature: append([]int{}, g.Signature...),
	}
	if isPositive {
		n := len(out.Alpha[eqIdx])
		if keep < 0 || keep >= n || drop < 0 || drop >= n || keep == drop {
			return nil, chk.Err("dsgma: invalid keep/drop term indices for equation %d", eqIdx)
		}
		out.Alpha[eqIdx][keep] += out.Alpha[eqIdx][drop]
		out.Alpha[eqIdx] = dropIndexF(out.Alpha[eqIdx], drop)
		out.Gd[eqIdx] = dropIndexF2(out.Gd[eqIdx], drop)
		out.Gi[eqIdx] = dropIndexF2(out.Gi[eqIdx], drop)
		out.PosTerms[eqIdx] = dropIndexTerm(out.PosTerms[eqIdx], drop)
		out.Signature[2*eqIdx] = len(out.Alpha[eqIdx])
	} else {
		n := len(out.Beta[eqIdx])
		if keep < 0 || keep >= n || drop < 0 || drop >= n || keep == drop {
			return nil, chk.Err("dsgma: invalid keep/drop term indices for equation %d", eqIdx)
		}
		out.Beta[eqIdx][keep] += out.Beta[eqIdx][drop]
		out.Beta[eqIdx] = dropIndexF(out.Beta[eqIdx], drop)
		out.Hd[eqIdx] = dropIndexF2(out.Hd[eqIdx], drop)
		out.Hi[eqIdx] = dropIndexF2(out.Hi[eqIdx], drop)
		out.NegTerms[eqIdx] = dropIndexTerm(out.NegTerms[eqIdx], drop)
		out.Signature[2*eqIdx+1] = len(out.Beta[eqIdx])
	}
	return out, nil
}

func cloneF2(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, row := range a {
		out[i] = append([]float64{}, row...)
	}
	return out
}

func cloneF3(a [][][]float64) [][][]float64 {
	out := make([][][]float64, len(a))
	for i, mat := range a {
		out[i] = cloneF2(mat)
	}
	return out
}

func clonePosNeg(a [][]Term) [][]Term {
	out := make([][]Term, len(a))
	for i, row := range a {
		out[i] = append([]Term{}, row...)
	}
	return out
}

func dropIndexF(a []float64, idx int) []float64 {
	out := make([]float64, 0, len(a)-1)
	for i, v := range a {
		if i != idx {
			out = append(out, v)
		}
	}
	return out
}

func dropIndexF2(a [][]float64, idx int) [][]float64 {
	out := make([][]float64, 0, len(a)-1)
	for i, v := range a {
		if i != idx {
			out = append(out, v)
		}
	}
	return out
}

func dropIndexTerm(a []Term, idx int) []Term {
	out := make([]Term, 0, len(a)-1)
	for i, v := range a {
		if i != idx {
			out = append(out, v)
		}
	}
	return out
}
