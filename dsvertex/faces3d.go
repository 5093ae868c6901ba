// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsvertex

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
)

// augmentedRows rebuilds the same row/ζ set EnumerateND solves over:
// the case's own rows plus the 2n box rows for [lower[k], upper[k]].
func augmentedRows(block *dscase.ConstraintBlock, lower, upper []float64) (rows [][]float64, zeta []float64) {
	n := block.U.NumCols()
	m := block.NumRows()
	rows = make([][]float64, m+2*n)
	zeta = make([]float64, m+2*n)
	for i := 0; i < m; i++ {
		row := make([]float64, n)
		for k := 0; k < n; k++ {
			row[k] = block.U.Get(i, k)
		}
		rows[i] = row
		zeta[i] = block.Zeta[i]
	}
	for k := 0; k < n; k++ {
		rows[m+2*k] = rowWithOne(n, k, 1)
		zeta[m+2*k] = -lower[k]
		rows[m+2*k+1] = rowWithOne(n, k, -1)
		zeta[m+2*k+1] = upper[k]
	}
	return rows, zeta
}

// BoundarySignature returns r = U·y+ζ (augmented with the 2n box
// rows) for a single vertex y (§4.4 "3D faces/connectivity").
func BoundarySignature(block *dscase.ConstraintBlock, lower, upper, y []float64) []float64 {
	rows, zeta := augmentedRows(block, lower, upper)
	r := make([]float64, len(rows))
	for i := range rows {
		s := zeta[i]
		for k, v := range rows[i] {
			s += v * y[k]
		}
		r[i] = s
	}
	return r
}

// ActiveBoundaries returns the indices of boundaries active (tight
// within Tolerance) at y.
func ActiveBoundaries(block *dscase.ConstraintBlock, lower, upper, y []float64) []int {
	r := BoundarySignature(block, lower, upper, y)
	var active []int
	for i, v := range r {
		if math.Abs(v) < Tolerance {
			active = append(active, i)
		}
	}
	return active
}

// Connectivity builds the adjacency matrix over vertices: adjacent[i][j]
// is true iff the two vertices share at least n-1 active boundaries
// (§4.4, n = block.U.NumCols()).
func Connectivity(block *dscase.ConstraintBlock, lower, upper []float64, vertices []VertexND) ([][]bool, error) {
	if block == nil || block.U == nil {
		return nil, chk.Err("dsvertex: case has no constraint block")
	}
	n := block.U.NumCols()
	actives := make([][]int, len(vertices))
	for i, v := range vertices {
		actives[i] = ActiveBoundaries(block, lower, upper, v.Y)
	}
	adj := make([][]bool, len(vertices))
	for i := range adj {
		adj[i] = make([]bool, len(vertices))
	}
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			shared := countShared(actives[i], actives[j])
			if shared >= n-1 {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}
	return adj, nil
}

func countShared(a, b []int) int {
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	n := 0
	for _, v := range b {
		if set[v] {
			n++
		}
	}
	return n
}

// Face walks the vertex indices in members (the vertices sharing one
// boundary) in adjacency order, starting from members[0]; a previous-index
// interlock prevents the walk from stepping back the way it came
// (§4.4 "a previous-index interlock prevents backtracking").
func Face(adj [][]bool, members []int) []int {
	if len(members) == 0 {
		return nil
	}
	visited := map[int]bool{members[0]: true}
	order := []int{members[0]}
	prev := -1
	cur := members[0]
	for len(order) < len(members) {
		next := -1
		for _, m := range members {
			if m == prev || visited[m] {
				continue
			}
			if adj[cur][m] {
				next = m
				break
			}
		}
		if next < 0 {
			break
		}
		visited[next] = true
		order = append(order, next)
		prev, cur = cur, next
	}
	return order
}
