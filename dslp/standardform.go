// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dslp

import (
	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
)

// column describes how one Xi variable maps onto the standard-form
// column set (§4.2 bounding-box construction: free, lower-only,
// upper-only, fixed, double-bound).
type column struct {
	kind   boundKind
	shift  float64 // constant folded into b: lo for lower/double, up for upper, the pinned value for fixed
	sign   float64 // +1 if y = shift + s, -1 if y = shift - s
	posCol int      // free: y = xPos - xNeg
	negCol int
	sCol   int // lower/upper/double: the s >= 0 column
	boxRow int // double-bound only: row index of the s + slack = up-lo constraint, -1 otherwise
}

// standardForm is U·y + ζ ≥ 0 (plus Chebyshev margin η and slice
// bounds) rewritten as min c'x s.t. A x = b, x ≥ 0, the form
// gonum/optimize/convex/lp.Simplex consumes.
type standardForm struct {
	c       []float64
	A       [][]float64 // row-major, built dense then handed to mat.NewDense
	b       []float64
	ncols   int
	nrows   int
	etaPos  int
	etaNeg  int
	columns []column
}

// buildStandardForm encodes the Chebyshev-type strict-feasibility LP
// (§4.2): maximize η subject to U·y + ζ - η·1 ≥ 0 and the slice box,
// with y decomposed per-column according to bounds (nil bounds means
// every Xi variable is free).
func buildStandardForm(block *dscase.ConstraintBlock, bounds []Bound) (*standardForm, error) {
	if block == nil || block.U == nil {
		return nil, errNilBlock()
	}
	ni := block.U.NumCols()
	m := block.NumRows()
	if bounds == nil {
		bounds = freeBounds(ni)
	}
	if err := validateBounds(bounds, ni); err != nil {
		return nil, err
	}

	columns := make([]column, ni)
	ncols := 0
	extraRows := 0
	for k, bnd := range bounds {
		col := column{kind: bnd.kind(), boxRow: -1}
		switch col.kind {
		case boundFree:
			col.posCol, col.negCol = ncols, ncols+1
			ncols += 2
		case boundLowerOnly:
			col.shift, col.sign = bnd.Lower, 1
			col.sCol = ncols
			ncols++
		case boundUpperOnly:
			col.shift, col.sign = bnd.Upper, -1
			col.sCol = ncols
			ncols++
		case boundFixed:
			col.shift = bnd.Lower
		case boundDouble:
			col.shift, col.sign = bnd.Lower, 1
			col.sCol = ncols
			ncols++
			col.boxRow = m + extraRows
			extraRows++
		}
		columns[k] = col
	}

	etaPos, etaNeg := ncols, ncols+1
	ncols += 2
	nrows := m + extraRows

	A := make([][]float64, nrows)
	for i := range A {
		A[i] = make([]float64, 0) // filled below once ncols (plus surplus) is known
	}
	b := make([]float64, nrows)

	// One surplus column per row converts U·y + ζ - η ≥ 0 into an
	// equality U·y + ζ - η - s_i = 0.
	surplusBase := ncols
	ncols += nrows

	for i := 0; i < nrows; i++ {
		A[i] = make([]float64, ncols)
	}

	for i := 0; i < m; i++ {
		shiftSum := 0.0
		for k := 0; k < ni; k++ {
			uik := block.U.Get(i, k)
			if uik == 0 {
				continue
			}
			col := columns[k]
			switch col.kind {
			case boundFree:
				A[i][col.posCol] += uik
				A[i][col.negCol] -= uik
			case boundLowerOnly, boundUpperOnly, boundDouble:
				A[i][col.sCol] += uik * col.sign
				shiftSum += uik * col.shift
			case boundFixed:
				shiftSum += uik * col.shift
			}
		}
		A[i][etaPos] -= 1
		A[i][etaNeg] += 1
		A[i][surplusBase+i] = -1
		b[i] = -(block.Zeta[i] + shiftSum)
	}

	for k, col := range columns {
		if col.kind != boundDouble {
			continue
		}
		r := col.boxRow
		A[r][col.sCol] = 1
		A[r][surplusBase+r] = 1 // surplus column also serves as the box row's own slack
		b[r] = bounds[k].Upper - bounds[k].Lower
	}

	c := make([]float64, ncols)
	c[etaPos] = -1
	c[etaNeg] = 1 // minimize -eta = -(etaPos-etaNeg)

	return &standardForm{c: c, A: A, b: b, ncols: ncols, nrows: nrows, etaPos: etaPos, etaNeg: etaNeg, columns: columns}, nil
}
