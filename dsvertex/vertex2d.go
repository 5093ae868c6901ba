// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsvertex implements vertex enumeration of a Case's feasible
// polytope (C9): 2D by pairwise boundary intersection with
// counter-clockwise reordering, n-D by reverse search over an LP
// dictionary with rational arithmetic, and 3D face/connectivity from
// boundary-activity signatures. Grounded on DSVertices.c and
// DSNVertexEnumeration.c (original_source); rational-arithmetic usage
// follows the math/big idiom seen throughout
// JonasLazardGIT-SPRUCE/ntru.
package dsvertex

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsmat"
)

// matFromRows allocates a (len(rows), ncols) matrix even when rows is
// empty, mirroring dscase's stackRows helper (kept local since that
// one is unexported).
func matFromRows(rows [][]float64, ncols int) *dsmat.Matrix {
	m := dsmat.Alloc(len(rows), ncols)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

// Tolerance is the "close enough to zero / equal" tolerance used
// throughout vertex enumeration (§3 Vertices, §4.4).
const Tolerance = 1e-14

// Point2D is a vertex of a 2D slice.
type Point2D struct{ X, Y float64 }

// sliceRows appends four rows encoding the box x∈[xLo,xHi],
// y∈[yLo,yHi] to (U, ζ), in the order [x>=xLo, xHi>=x, y>=yLo,
// yHi>=y], and returns the augmented block.
func sliceRows(block *dscase.ConstraintBlock, xCol, yCol int, xLo, xHi, yLo, yHi float64) *dscase.ConstraintBlock {
	ni := block.U.NumCols()
	rows := [][]float64{
		rowWithOne(ni, xCol, 1),
		rowWithOne(ni, xCol, -1),
		rowWithOne(ni, yCol, 1),
		rowWithOne(ni, yCol, -1),
	}
	zetas := []float64{-xLo, xHi, -yLo, yHi}
	extra := &dscase.ConstraintBlock{U: matFromRows(rows, ni), Zeta: zetas}
	return dscase.Stack([]*dscase.ConstraintBlock{block, extra})
}

func rowWithOne(n, col int, v float64) []float64 {
	r := make([]float64, n)
	r[col] = v
	return r
}

// Enumerate2D implements §4.4's 2D slice vertex enumeration: all other
// Xi variables are held fixed at fixedValues (one entry per variable,
// ignored for xCol/yCol), x and y are bounded to [xLo,xHi]/[yLo,yHi],
// and the polygon boundary is returned counter-clockwise starting from
// the vertex of maximal x.
func Enumerate2D(c *dscase.Case, xCol, yCol int, xLo, xHi, yLo, yHi float64, fixedValues []float64) ([]Point2D, error) {
	if c == nil || c.Block == nil || c.Block.U == nil {
		return nil, chk.Err("dsvertex: case has no constraint block")
	}
	ni := c.Block.U.NumCols()
	if len(fixedValues) != ni {
		return nil, chk.Err("dsvertex: fixedValues has length %d, expected %d", len(fixedValues), ni)
	}
	reduced, err := fixAllBut(c.Block, xCol, yCol, fixedValues)
	if err != nil {
		return nil, err
	}
	block := sliceRows(reduced, 0, 1, xLo, xHi, yLo, yHi)
	m := block.NumRows()

	var pts []Point2D
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			p, ok := intersectRows(block, i, j)
			if !ok {
				continue
			}
			if !satisfiesAll(block, p, i, j) {
				continue
			}
			pts = appendUnique(pts, p)
		}
	}
	return orderCCW(pts), nil
}

// fixAllBut returns a ConstraintBlock over just (xCol,yCol) by
// substituting every other Xi variable's fixed value into U/ζ.
func fixAllBut(block *dscase.ConstraintBlock, xCol, yCol int, fixed []float64) (*dscase.ConstraintBlock, error) {
	ni := block.U.NumCols()
	m := block.NumRows()
	U2 := make([][]float64, m)
	zeta := make([]float64, m)
	for i := 0; i < m; i++ {
		row := make([]float64, 2)
		acc := block.Zeta[i]
		for k := 0; k < ni; k++ {
			v := block.U.Get(i, k)
			if v == 0 {
				continue
			}
			switch k {
			case xCol:
				row[0] += v
			case yCol:
				row[1] += v
			default:
				acc += v * fixed[k]
			}
		}
		U2[i] = row
		zeta[i] = acc
	}
	return &dscase.ConstraintBlock{U: matFromRows(U2, 2), Zeta: zeta}, nil
}

// intersectRows solves rows i and j of (U,ζ) as equalities in (x,y),
// returning ok=false if the 2x2 system is singular.
func intersectRows(block *dscase.ConstraintBlock, i, j int) (Point2D, bool) {
	a1, b1, c1 := block.U.Get(i, 0), block.U.Get(i, 1), -block.Zeta[i]
	a2, b2, c2 := block.U.Get(j, 0), block.U.Get(j, 1), -block.Zeta[j]
	det := a1*b2 - a2*b1
	if math.Abs(det) < Tolerance {
		return Point2D{}, false
	}
	x := (c1*b2 - c2*b1) / det
	y := (a1*c2 - a2*c1) / det
	return Point2D{X: x, Y: y}, true
}

func satisfiesAll(block *dscase.ConstraintBlock, p Point2D, skipI, skipJ int) bool {
	for k := 0; k < block.NumRows(); k++ {
		if k == skipI || k == skipJ {
			continue
		}
		r := block.U.Get(k, 0)*p.X + block.U.Get(k, 1)*p.Y + block.Zeta[k]
		if r < -Tolerance {
			return false
		}
	}
	return true
}

func appendUnique(pts []Point2D, p Point2D) []Point2D {
	for _, q := range pts {
		if math.Abs(q.X-p.X) < Tolerance && math.Abs(q.Y-p.Y) < Tolerance {
			return pts
		}
	}
	return append(pts, p)
}

// orderCCW reorders pts counter-clockwise starting at the vertex of
// maximal x, matching §4.4's "deterministic monotonic sweep" by
// sorting on the polar angle around the centroid (equivalent for a
// simple convex polygon, and trivially deterministic).
func orderCCW(pts []Point2D) []Point2D {
	if len(pts) < 3 {
		return pts
	}
	cx, cy := 0.0, 0.0
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))
	angle := make([]float64, len(pts))
	for i, p := range pts {
		angle[i] = math.Atan2(p.Y-cy, p.X-cx)
	}
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return angle[idx[a]] < angle[idx[b]] })
	ordered := make([]Point2D, len(pts))
	for i, k := range idx {
		ordered[i] = pts[k]
	}
	// Rotate so the vertex of maximal x comes first.
	maxI := 0
	for i, p := range ordered {
		if p.X > ordered[maxI].X {
			maxI = i
		}
	}
	rotated := make([]Point2D, len(ordered))
	for i := range ordered {
		rotated[i] = ordered[(maxI+i)%len(ordered)]
	}
	return rotated
}
