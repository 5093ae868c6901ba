// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dscase

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/jlomnitz/design-space-toolbox-sub001/dsgma"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsmat"
)

// ZeroTolerance is the tolerance used throughout §4 to decide whether
// a row of [U|ζ] (or of Cd/Ci/δ) is "identically zero".
const ZeroTolerance = 1e-14

// ExtraConstraints are user-added constraints (Cd_ext, Ci_ext, δ_ext)
// accumulated on a DesignSpace and applied to every case built from it
// (§4.1 step 4).
type ExtraConstraints struct {
	Cd    *dsmat.Matrix
	Ci    *dsmat.Matrix
	Delta []float64
}

// Case is one choice of dominant positive/negative term per equation
// (§3, §4.1, C7).
type Case struct {
	GMA       *dsgma.GMASystem
	Signature []int
	CaseNum   int

	SSys *SSystem

	// Cd, Ci, Delta: subdominance rows before Xd-elimination (one row
	// per non-chosen term per equation, plus any user-appended rows).
	Cd    *dsmat.Matrix
	Ci    *dsmat.Matrix
	Delta []float64

	// rowMeta[r] describes the subdominance row r (equation/sign/chosen
	// vs. other term index), for rows r < len(rowMeta); extra
	// user-constraint rows have no metadata and are skipped by
	// codominance normalization.
	rowMeta []subdomRow

	// Block is the reduced constraint system over Xi alone:
	// U = Cd·M + Ci, ζ = Cd·b + Delta.
	Block *ConstraintBlock

	HasSolution bool
}

// Build constructs a Case for signature s (1-based components,
// length 2E) from a GMA system, applying the accumulated extra
// constraints (possibly nil) and, if resolveCoDominance is set,
// performing the §4.1 codominance normalization. cyclicalSigs, when
// resolveCoDominance is set, names sibling signatures already known to
// be cyclical (keyed by dsgma.SignatureString), so normalization can
// detect and skip the cyclical-alternative case described in §4.1.
func Build(g *dsgma.GMASystem, s []int, extra *ExtraConstraints, resolveCoDominance bool, cyclicalSigs map[string]bool) (*Case, error) {
	E := g.NumEquations()
	if len(s) != 2*E {
		return nil, chk.Err("dscase: signature has length %d, expected %d", len(s), 2*E)
	}
	p := make([]int, E)
	n := make([]int, E)
	for i := 0; i < E; i++ {
		p[i] = s[2*i] - 1
		n[i] = s[2*i+1] - 1
		if p[i] < 0 || p[i] >= len(g.Alpha[i]) || n[i] < 0 || n[i] >= len(g.Beta[i]) {
			return nil, chk.Err("dscase: signature component out of range for equation %d", i)
		}
	}
	caseNum, err := g.CaseNumber(s)
	if err != nil {
		return nil, err
	}

	ssys := BuildSSystem(g, p, n)

	cd, ci, delta, meta := buildSubdominanceRows(g, p, n)
	if extra != nil && extra.Cd != nil && extra.Cd.NumRows() > 0 {
		cd = dsmat.AppendMatrices(cd, extra.Cd, true)
		ci = dsmat.AppendMatrices(ci, extra.Ci, true)
		delta = append(delta, extra.Delta...)
	}

	c := &Case{
		GMA: g, Signature: append([]int{}, s...), CaseNum: caseNum,
		SSys: ssys, Cd: cd, Ci: ci, Delta: delta, HasSolution: ssys.HasSolution,
		rowMeta: meta,
	}

	if !ssys.HasSolution {
		// §4.3: "If hasSolution is false, U and ζ may still be built
		// but §4.3 semantics apply" — here that means the reduction
		// step (which needs M, b) cannot run; leave Block empty so
		// downstream validity treats this case as invalid/cyclical,
		// never as a crash.
		c.Block = &ConstraintBlock{}
		return c, nil
	}

	U := cd.Mul(1, ssys.M)
	addInPlace(U, ci)
	zeta := cd.MulVec(1, ssys.B)
	addVec(zeta, delta)
	c.Block = &ConstraintBlock{U: U, Zeta: zeta}

	if resolveCoDominance {
		normalizeCoDominance(c, cyclicalSigs)
	}

	return c, nil
}

func addInPlace(dst, src *dsmat.Matrix) {
	for i := 0; i < dst.NumRows(); i++ {
		for j := 0; j < dst.NumCols(); j++ {
			dst.Set(i, j, dst.Get(i, j)+src.Get(i, j))
		}
	}
}

func addVec(dst, src []float64) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// subdomRow identifies which equation/sign/term pair produced a given
// subdominance row, so the codominance normalizer (§4.1) can look up
// the alternate term's shape and the sibling signature.
type subdomRow struct {
	eqIdx      int
	isPositive bool // true: positive-term subdominance; false: negative
	chosen     int  // 0-based chosen term index (p or n)
	other      int  // 0-based non-chosen term index (q)
}

// buildSubdominanceRows implements §4.1 step 3: for every equation and
// every non-chosen term, emit a row asserting the chosen term
// dominates it.
func buildSubdominanceRows(g *dsgma.GMASystem, p, n []int) (cd, ci *dsmat.Matrix, delta []float64, meta []subdomRow) {
	nd, ni := g.Xd.Len(), g.Xi.Len()
	cdRows := make([][]float64, 0)
	ciRows := make([][]float64, 0)
	for i := 0; i < g.NumEquations(); i++ {
		pi := p[i]
		for q := 0; q < len(g.Alpha[i]); q++ {
			if q == pi {
				continue
			}
			rowD := make([]float64, nd)
			rowI := make([]float64, ni)
			for k := 0; k < nd; k++ {
				rowD[k] = g.Gd[i][pi][k] - g.Gd[i][q][k]
			}
			for k := 0; k < ni; k++ {
				rowI[k] = g.Gi[i][pi][k] - g.Gi[i][q][k]
			}
			cdRows = append(cdRows, rowD)
			ciRows = append(ciRows, rowI)
			delta = append(delta, math.Log10(g.Alpha[i][pi]/g.Alpha[i][q]))
			meta = append(meta, subdomRow{eqIdx: i, isPositive: true, chosen: pi, other: q})
		}
		ninx := n[i]
		for q := 0; q < len(g.Beta[i]); q++ {
			if q == ninx {
				continue
			}
			rowD := make([]float64, nd)
			rowI := make([]float64, ni)
			for k := 0; k < nd; k++ {
				rowD[k] = g.Hd[i][ninx][k] - g.Hd[i][q][k]
			}
			for k := 0; k < ni; k++ {
				rowI[k] = g.Hi[i][ninx][k] - g.Hi[i][q][k]
			}
			cdRows = append(cdRows, rowD)
			ciRows = append(ciRows, rowI)
			delta = append(delta, math.Log10(g.Beta[i][ninx]/g.Beta[i][q]))
			meta = append(meta, subdomRow{eqIdx: i, isPositive: false, chosen: ninx, other: q})
		}
	}
	return stackRows(cdRows, nd), stackRows(ciRows, ni), delta, meta
}

// stackRows builds a (len(rows), ncols) matrix even when rows is
// empty, so downstream multiplication against an (ncols, *) matrix
// sees the correct shape rather than a degenerate 0x0.
func stackRows(rows [][]float64, ncols int) *dsmat.Matrix {
	m := dsmat.Alloc(len(rows), ncols)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

// NumConditions returns the number of subdominance+extra rows,
// (Σ_j(σ_j-1)) + rows(Cd_ext), the §8 universal invariant.
func (c *Case) NumConditions() int {
	if c.Cd == nil {
		return 0
	}
	return c.Cd.NumRows()
}

// normalizeCoDominance implements §4.1's optional codominance
// normalization. A subdominance row r that is ~0 in both U and ζ means
// the chosen term and the non-chosen term it was compared against are
// numerically tied at every point of the (unreduced) space; the case
// as built is then only weakly, not strictly, feasible there. When the
// two terms share the same product-of-powers shape (Term.Signature),
// this is genuine coefficient-level codominance: nudge the
// pre-reduction δ entry by +log10(2) (halving each term's share of the
// tie) and recompute that row of U/ζ from SSys. When the shapes
// differ, the tie instead reflects two structurally different case
// signatures meeting at a boundary; if the sibling signature (this
// case with row r's other index substituted for its chosen index) is
// already known cyclical, abort normalization entirely rather than
// paper over what is really an under-determined boundary (§4.1: "if
// the zero-boundary pattern instead maps to a cyclical alternative
// that the DesignSpace has flagged cyclical, abort normalization").
func normalizeCoDominance(c *Case, cyclicalSigs map[string]bool) {
	if c.Block == nil || c.Block.U == nil || !c.HasSolution {
		return
	}
	for r, m := range c.rowMeta {
		if r >= c.Block.NumRows() {
			break
		}
		if !rowIsZero(c.Block.U, c.Block.Zeta, r) {
			continue
		}
		var chosenTerm, otherTerm dsgma.Term
		if m.isPositive {
			chosenTerm = c.GMA.PosTerms[m.eqIdx][m.chosen]
			otherTerm = c.GMA.PosTerms[m.eqIdx][m.other]
		} else {
			chosenTerm = c.GMA.NegTerms[m.eqIdx][m.chosen]
			otherTerm = c.GMA.NegTerms[m.eqIdx][m.other]
		}
		if chosenTerm.Signature() != otherTerm.Signature() {
			// Structurally different terms tied at this boundary: this
			// is the cyclical-alternative case, not codominance. If the
			// sibling signature is already flagged cyclical, abort the
			// whole normalization pass rather than nudge any further
			// rows off a boundary that is genuinely under-determined.
			sibling := append([]int{}, c.Signature...)
			if m.isPositive {
				sibling[2*m.eqIdx] = m.other + 1
			} else {
				sibling[2*m.eqIdx+1] = m.other + 1
			}
			if cyclicalSigs[dsgma.SignatureString(sibling)] {
				return
			}
			continue
		}
		c.Delta[r] += math.Log10(2)
		recomputeRow(c, r)
	}
}

// UnexplainedZeroBoundaries returns the subdominance-row indices that
// are still ~0 after construction (§4.6 detection, second clause: "the
// zero-boundary pattern cannot be explained by co-dominance alone").
// When HasSolution is true, this consults the reduced [U|ζ] system
// (post Xd-elimination); when the Case was built with
// resolveCoDominance set, every explainable zero row there (a
// same-signature tie) has already been nudged off zero by
// normalizeCoDominance, so any row still reported is a genuine
// cyclical boundary. When HasSolution is false (the dominant S-system
// itself is singular, §4.1 step 2), there is no reduced system to
// consult, so this falls back to the raw, pre-reduction subdominance
// row (Cd, Ci, Delta): a row that is identically zero there — chosen
// and non-chosen term equal in both exponents and coefficient — is
// tied regardless of whether Xd-elimination succeeds, since a
// trivially-zero row survives substitution of any M/b unchanged.
func (c *Case) UnexplainedZeroBoundaries() []int {
	if c.Cd == nil {
		return nil
	}
	var rows []int
	for r := range c.rowMeta {
		if r >= c.Cd.NumRows() {
			break
		}
		if c.HasSolution {
			if c.Block == nil || c.Block.U == nil || r >= c.Block.NumRows() {
				break
			}
			if rowIsZero(c.Block.U, c.Block.Zeta, r) {
				rows = append(rows, r)
			}
			continue
		}
		if rawRowIsZero(c, r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// rawRowIsZero reports whether subdominance row r is identically zero
// before Xd-elimination: Delta[r] is 0 and every Cd/Ci entry in the
// row is 0.
func rawRowIsZero(c *Case, r int) bool {
	if math.Abs(c.Delta[r]) > ZeroTolerance {
		return false
	}
	for j := 0; j < c.Cd.NumCols(); j++ {
		if math.Abs(c.Cd.Get(r, j)) > ZeroTolerance {
			return false
		}
	}
	for j := 0; j < c.Ci.NumCols(); j++ {
		if math.Abs(c.Ci.Get(r, j)) > ZeroTolerance {
			return false
		}
	}
	return true
}

// SiblingSignature returns the signature obtained by substituting
// row r's non-chosen term index for its chosen index (§4.1's "sibling
// signature"), for use by DesignSpace.CyclicalCase resolution when
// deciding which alternate case an unexplained zero boundary points
// to. r must index into rowMeta (see UnexplainedZeroBoundaries).
func (c *Case) SiblingSignature(r int) []int {
	m := c.rowMeta[r]
	sibling := append([]int{}, c.Signature...)
	if m.isPositive {
		sibling[2*m.eqIdx] = m.other + 1
	} else {
		sibling[2*m.eqIdx+1] = m.other + 1
	}
	return sibling
}

func rowIsZero(U *dsmat.Matrix, zeta []float64, r int) bool {
	if math.Abs(zeta[r]) > ZeroTolerance {
		return false
	}
	for j := 0; j < U.NumCols(); j++ {
		if math.Abs(U.Get(r, j)) > ZeroTolerance {
			return false
		}
	}
	return true
}

// recomputeRow rebuilds row r of U/ζ from Cd/Ci/Delta and SSys after
// Delta[r] has been adjusted.
func recomputeRow(c *Case, r int) {
	for j := 0; j < c.SSys.M.NumCols(); j++ {
		sum := 0.0
		for k := 0; k < c.Cd.NumCols(); k++ {
			sum += c.Cd.Get(r, k) * c.SSys.M.Get(k, j)
		}
		c.Block.U.Set(r, j, sum+c.Ci.Get(r, j))
	}
	sum := 0.0
	for k := 0; k < c.Cd.NumCols(); k++ {
		sum += c.Cd.Get(r, k) * c.SSys.B[k]
	}
	c.Block.Zeta[r] = sum + c.Delta[r]
}
