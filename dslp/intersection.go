// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dslp

import "github.com/jlomnitz/design-space-toolbox-sub001/dscase"

// IntersectionIsValid row-stacks every case's constraint block and
// tests strict feasibility of the combined system (§4.3). A
// one-element list reduces to IsValid(cases[0]).
func IntersectionIsValid(blocks []*dscase.ConstraintBlock) (bool, error) {
	return IsValid(dscase.Stack(blocks))
}

// IntersectionIsValidAtSlice is IntersectionIsValid restricted to the
// given bounding box (§4.3).
func IntersectionIsValidAtSlice(blocks []*dscase.ConstraintBlock, bounds []Bound) (bool, error) {
	return IsValidAtSlice(dscase.Stack(blocks), bounds)
}
