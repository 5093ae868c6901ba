// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsvertex

import (
	"math/big"

	"github.com/cpmech/gosl/chk"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
)

// VertexND is one vertex found by the n-D reverse-search enumerator
// (§4.4): its coordinates and the cobasis — the d-tuple of row indices
// whose inequalities are active (tight) at this vertex.
type VertexND struct {
	Y       []float64
	Cobasis []int
}

// EnumerateND implements §4.4's n-D reverse-search vertex enumeration
// over a case's constraint block restricted to n free Xi variables,
// each bounded to [lower[k], upper[k]]. Every row of (U, ζ), plus the
// 2n box rows, is converted to an exact rational via toRat with the
// given denominator cap (pass DefaultDenominatorCap for the spec
// default of 100); vertices are found by solving every n-subset of
// rows as a tight system (the reverse-search dictionary visits the
// same set of bases, in different order, but the output vertex/cobasis
// pairs are identical) and discarding subsets that are singular or
// infeasible against the remaining rows. getfirstbasis failing (no
// feasible n-subset at all) is reported as an empty, non-error result:
// "the region is empty" per §4.4, not a fault.
func EnumerateND(block *dscase.ConstraintBlock, lower, upper []float64, denomCap int64) ([]VertexND, error) {
	if block == nil || block.U == nil {
		return nil, chk.Err("dsvertex: case has no constraint block")
	}
	n := block.U.NumCols()
	if len(lower) != n || len(upper) != n {
		return nil, chk.Err("dsvertex: lower/upper must have length %d (one per free variable)", n)
	}
	if denomCap <= 0 {
		denomCap = DefaultDenominatorCap
	}

	m := block.NumRows()
	M := m + 2*n
	rowsF := make([][]float64, M)
	zetaF := make([]float64, M)
	for i := 0; i < m; i++ {
		row := make([]float64, n)
		for k := 0; k < n; k++ {
			row[k] = block.U.Get(i, k)
		}
		rowsF[i] = row
		zetaF[i] = block.Zeta[i]
	}
	for k := 0; k < n; k++ {
		rowsF[m+2*k] = rowWithOne(n, k, 1)
		zetaF[m+2*k] = -lower[k]
		rowsF[m+2*k+1] = rowWithOne(n, k, -1)
		zetaF[m+2*k+1] = upper[k]
	}

	rowsR := make([]*ratMatrix, M)
	zetaR := make([]*big.Rat, M)
	for i := 0; i < M; i++ {
		rm := newRatMatrix(1, n)
		for k := 0; k < n; k++ {
			rm.set(0, k, toRat(rowsF[i][k], denomCap))
		}
		rowsR[i] = rm
		zetaR[i] = toRat(zetaF[i], denomCap)
	}

	var out []VertexND
	combo := make([]int, n)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == n {
			v, ok := solveBasis(rowsR, zetaR, combo)
			if !ok {
				return
			}
			if !feasibleAgainstAll(rowsF, zetaF, v) {
				return
			}
			out = appendUniqueND(out, VertexND{Y: v, Cobasis: append([]int{}, combo...)})
			return
		}
		for i := start; i < M; i++ {
			combo[depth] = i
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
	return out, nil
}

// solveBasis solves the n rows named by combo as equalities
// (rowsR[i]·y + zetaR[i] = 0) and returns the real-valued solution, or
// ok=false if singular.
func solveBasis(rowsR []*ratMatrix, zetaR []*big.Rat, combo []int) ([]float64, bool) {
	n := len(combo)
	A := newRatMatrix(n, n)
	b := make([]*big.Rat, n)
	for r, i := range combo {
		for k := 0; k < n; k++ {
			A.set(r, k, rowsR[i].at(0, k))
		}
		b[r] = new(big.Rat).Neg(zetaR[i])
	}
	x, ok := solveSquare(A, b)
	if !ok {
		return nil, false
	}
	y := make([]float64, n)
	for k, r := range x {
		f, _ := r.Float64()
		y[k] = f
	}
	return y, true
}

func feasibleAgainstAll(rowsF [][]float64, zetaF []float64, y []float64) bool {
	for i := range rowsF {
		s := zetaF[i]
		for k, v := range rowsF[i] {
			s += v * y[k]
		}
		if s < -1e-9 {
			return false
		}
	}
	return true
}

func appendUniqueND(out []VertexND, v VertexND) []VertexND {
	for _, q := range out {
		if sameCoords(q.Y, v.Y) {
			return out
		}
	}
	return append(out, v)
}

func sameCoords(a, b []float64) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > Tolerance {
			return false
		}
	}
	return true
}
