// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsmat implements dense matrix and matrix-array primitives for
// the design-space engine: row/column append, scalar and matrix-matrix
// operations, submatrix selection, and export to the LP backend's
// native sparse triplet form.
package dsmat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Matrix is a dense real matrix, stored row-major as in gosl/la.
type Matrix struct {
	vals [][]float64 // vals[row][col]
	nr   int         // number of rows
	nc   int         // number of columns
}

// Alloc allocates a nr x nc matrix of zeros.
func Alloc(nr, nc int) *Matrix {
	return &Matrix{vals: la.MatAlloc(nr, nc), nr: nr, nc: nc}
}

// Calloc is an alias for Alloc kept for parity with the consumed
// Matrix API (§6): both forms return zeroed storage.
func Calloc(nr, nc int) *Matrix {
	return Alloc(nr, nc)
}

// FromRows builds a Matrix by taking ownership of an existing slice of
// rows; every row must have the same length.
func FromRows(rows [][]float64) *Matrix {
	nr := len(rows)
	nc := 0
	if nr > 0 {
		nc = len(rows[0])
	}
	return &Matrix{vals: rows, nr: nr, nc: nc}
}

// NumRows returns the row count.
func (m *Matrix) NumRows() int { return m.nr }

// NumCols returns the column count.
func (m *Matrix) NumCols() int { return m.nc }

// Get returns the (i,j) element.
func (m *Matrix) Get(i, j int) float64 { return m.vals[i][j] }

// Set assigns the (i,j) element.
func (m *Matrix) Set(i, j int, v float64) { m.vals[i][j] = v }

// Row returns row i as a slice aliasing the underlying storage.
func (m *Matrix) Row(i int) []float64 { return m.vals[i] }

// Raw returns the underlying [][]float64, for interop with gosl/la
// functions that take raw matrices directly.
func (m *Matrix) Raw() [][]float64 { return m.vals }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := Alloc(m.nr, m.nc)
	for i := 0; i < m.nr; i++ {
		la.VecCopy(out.vals[i], 1, m.vals[i])
	}
	return out
}

// Scale multiplies every entry by alpha, in place.
func (m *Matrix) Scale(alpha float64) {
	for i := 0; i < m.nr; i++ {
		for j := 0; j < m.nc; j++ {
			m.vals[i][j] *= alpha
		}
	}
}

// Mul computes dst = alpha * m * b, allocating dst.
func (m *Matrix) Mul(alpha float64, b *Matrix) *Matrix {
	if m.nc != b.nr {
		chk.Panic("dsmat: cannot multiply %dx%d by %dx%d", m.nr, m.nc, b.nr, b.nc)
	}
	dst := Alloc(m.nr, b.nc)
	la.MatMul(dst.vals, alpha, m.vals, b.vals)
	return dst
}

// MulVec computes y = alpha * m * x.
func (m *Matrix) MulVec(alpha float64, x []float64) []float64 {
	y := make([]float64, m.nr)
	la.MatVecMul(y, alpha, m.vals, x)
	return y
}

// Inv returns the inverse of a square matrix and its determinant, or
// an error when the matrix is singular. Mirrors §4.1 step 2: callers
// treat a singular A = (Gd - Hd) as "may be cyclical", not a bug.
func (m *Matrix) Inv() (inv *Matrix, det float64, err error) {
	if m.nr != m.nc {
		return nil, 0, chk.Err("dsmat: Inv requires a square matrix, got %dx%d", m.nr, m.nc)
	}
	inv = Alloc(m.nr, m.nr)
	d, e := la.MatInv(inv.vals, m.vals, 1e-14)
	if e != nil {
		return nil, 0, chk.Err("dsmat: singular matrix: %v", e)
	}
	return inv, d, nil
}

// AppendMatrices appends B to A, row-wise (stacking rows, same column
// count) or column-wise (same row count), per the consumed Matrix API
// (§6 append_matrices(A,B,row_wise)).
func AppendMatrices(a, b *Matrix, rowWise bool) *Matrix {
	if a == nil || a.nr == 0 {
		return b.Clone()
	}
	if b == nil || b.nr == 0 {
		return a.Clone()
	}
	if rowWise {
		if a.nc != b.nc {
			chk.Panic("dsmat: row-wise append requires equal column counts, got %d and %d", a.nc, b.nc)
		}
		out := Alloc(a.nr+b.nr, a.nc)
		for i := 0; i < a.nr; i++ {
			la.VecCopy(out.vals[i], 1, a.vals[i])
		}
		for i := 0; i < b.nr; i++ {
			la.VecCopy(out.vals[a.nr+i], 1, b.vals[i])
		}
		return out
	}
	if a.nr != b.nr {
		chk.Panic("dsmat: column-wise append requires equal row counts, got %d and %d", a.nr, b.nr)
	}
	out := Alloc(a.nr, a.nc+b.nc)
	for i := 0; i < a.nr; i++ {
		copy(out.vals[i][:a.nc], a.vals[i])
		copy(out.vals[i][a.nc:], b.vals[i])
	}
	return out
}

// SubCols returns a new Matrix with only the given column indices, in
// the given order.
func (m *Matrix) SubCols(cols []int) *Matrix {
	out := Alloc(m.nr, len(cols))
	for i := 0; i < m.nr; i++ {
		for k, j := range cols {
			out.vals[i][k] = m.vals[i][j]
		}
	}
	return out
}

// Triplet exports the matrix to gosl/la's native sparse triplet form
// (rows[], cols[], vals[]), the representation the LP backend consumes
// (§6 Matrix API). Zero entries are skipped.
func (m *Matrix) Triplet() *la.Triplet {
	nnz := 0
	for i := 0; i < m.nr; i++ {
		for j := 0; j < m.nc; j++ {
			if m.vals[i][j] != 0 {
				nnz++
			}
		}
	}
	t := new(la.Triplet)
	t.Init(m.nr, m.nc, nnz)
	for i := 0; i < m.nr; i++ {
		for j := 0; j < m.nc; j++ {
			if m.vals[i][j] != 0 {
				t.Put(i, j, m.vals[i][j])
			}
		}
	}
	return t
}

// MatrixArray is an array of matrices addressable as arr[i][row,col],
// per the §2 C1 responsibility ("array of matrices addressable as
// [i][j,k]").
type MatrixArray struct {
	items []*Matrix
}

// NewMatrixArray allocates n matrices, each nr x nc.
func NewMatrixArray(n, nr, nc int) *MatrixArray {
	ma := &MatrixArray{items: make([]*Matrix, n)}
	for i := range ma.items {
		ma.items[i] = Alloc(nr, nc)
	}
	return ma
}

// Len returns the number of matrices in the array.
func (ma *MatrixArray) Len() int { return len(ma.items) }

// At returns the i-th matrix.
func (ma *MatrixArray) At(i int) *Matrix { return ma.items[i] }

// Set replaces the i-th matrix.
func (ma *MatrixArray) Set(i int, m *Matrix) { ma.items[i] = m }

// Get reads element [i][row,col] directly.
func (ma *MatrixArray) Get(i, row, col int) float64 { return ma.items[i].Get(row, col) }
