// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsvertex

import (
	"math"
	"math/big"
)

// DefaultDenominatorCap is the default bound on the denominator used
// when approximating a float64 boundary coefficient by a rational
// (§4.5/§9: "denominator cap 100 is aggressive; expose as a
// configuration option").
const DefaultDenominatorCap = 100

// toRat approximates x by the best rational p/q with q <= maxDenom,
// via the standard continued-fraction convergent algorithm. Preserves
// the sign of zero: toRat(0, *) is exactly 0/1, never a tiny nonzero
// approximation.
func toRat(x float64, maxDenom int64) *big.Rat {
	if x == 0 || math.IsNaN(x) {
		return big.NewRat(0, 1)
	}
	sign := int64(1)
	if x < 0 {
		sign = -1
		x = -x
	}
	if math.IsInf(x, 1) {
		return big.NewRat(sign*maxDenom, 1)
	}
	h0, h1 := int64(0), int64(1)
	k0, k1 := int64(1), int64(0)
	f := x
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(f))
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDenom || k2 <= 0 {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		frac := f - float64(a)
		if frac < 1e-15 {
			break
		}
		f = 1 / frac
	}
	if k1 == 0 {
		k1 = 1
	}
	return big.NewRat(sign*h1, k1)
}

// ratMatrix is a dense matrix of exact rationals used for the n-D
// reverse-search enumeration's linear solves.
type ratMatrix struct {
	rows, cols int
	v          []*big.Rat
}

func newRatMatrix(rows, cols int) *ratMatrix {
	v := make([]*big.Rat, rows*cols)
	for i := range v {
		v[i] = big.NewRat(0, 1)
	}
	return &ratMatrix{rows: rows, cols: cols, v: v}
}

func (m *ratMatrix) at(i, j int) *big.Rat  { return m.v[i*m.cols+j] }
func (m *ratMatrix) set(i, j int, r *big.Rat) { m.v[i*m.cols+j] = r }

// solveSquare solves A x = b exactly (A is n x n, rational) via
// Gauss-Jordan elimination, taking the first row at or below the
// diagonal with a nonzero entry as the pivot (arithmetic is exact, so
// pivot magnitude is not compared). Returns ok=false if A is singular.
func solveSquare(A *ratMatrix, b []*big.Rat) (x []*big.Rat, ok bool) {
	n := A.rows
	aug := newRatMatrix(n, n+1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.set(i, j, new(big.Rat).Set(A.at(i, j)))
		}
		aug.set(i, n, new(big.Rat).Set(b[i]))
	}
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if aug.at(r, col).Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, false
		}
		if pivot != col {
			for j := 0; j <= n; j++ {
				aug.v[col*aug.cols+j], aug.v[pivot*aug.cols+j] = aug.v[pivot*aug.cols+j], aug.v[col*aug.cols+j]
			}
		}
		pv := aug.at(col, col)
		for j := col; j <= n; j++ {
			aug.set(col, j, new(big.Rat).Quo(aug.at(col, j), pv))
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug.at(r, col)
			if factor.Sign() == 0 {
				continue
			}
			for j := col; j <= n; j++ {
				term := new(big.Rat).Mul(factor, aug.at(col, j))
				aug.set(r, j, new(big.Rat).Sub(aug.at(r, j), term))
			}
		}
	}
	x = make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		x[i] = aug.at(i, n)
	}
	return x, true
}
