// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package designspace

import (
	"github.com/cpmech/gosl/utl"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
	"github.com/jlomnitz/design-space-toolbox-sub001/dslp"
)

// maxCyclicalDepth bounds the recursion spec.md §4.6 leaves
// "unbounded in principle" but requires implementations to cut off:
// "implementations must detect self-referential cycles and abort with
// WARN".
const maxCyclicalDepth = 8

// CyclicalCase handles an under-determined case (§3 C11, §4.6) by
// rebuilding the GMA system with the offending equation's tied terms
// merged into one flux (dsgma.MergeCoDominantTerms, no re-parsing) and
// sweeping the resulting sub design-space.
type CyclicalCase struct {
	OriginalCase *dscase.Case
	Internal     *DesignSpace

	depth  int
	broken bool // true if resolution failed (depth/self-reference exceeded, no zero boundary to merge on, merge or internal sweep error, or restored without an internal DS): treat as invalid, never fatal
}

// boundaryTerm names the equation/sign/term pair an unexplained zero
// boundary points at.
type boundaryTerm struct {
	eqIdx      int
	isPositive bool
	chosen     int
	other      int
}

// RestoreCyclicalCase reconstructs a CyclicalCase from already-decoded
// parts (§6 Serialization), bypassing resolution. internal may be nil,
// meaning the encoded case was unresolvable (broken) when it was
// serialized.
func RestoreCyclicalCase(originalCase *dscase.Case, internal *DesignSpace) *CyclicalCase {
	return &CyclicalCase{OriginalCase: originalCase, Internal: internal, broken: internal == nil}
}

// newCyclicalCase builds the internal sub design-space for c by
// merging the terms named by c's first unexplained zero boundary
// (§4.6 resolution). Depth 0, empty ancestor set.
func newCyclicalCase(parent *DesignSpace, c *dscase.Case) *CyclicalCase {
	return buildCyclicalCase(parent, c, 0, map[string]bool{})
}

func buildCyclicalCase(parent *DesignSpace, c *dscase.Case, depth int, ancestors map[string]bool) *CyclicalCase {
	cc := &CyclicalCase{OriginalCase: c, depth: depth}

	if depth >= maxCyclicalDepth {
		utl.PfRed("designspace: WARN: cyclical case %d: recursion depth %d exceeded, treating as invalid\n", c.CaseNum, maxCyclicalDepth)
		cc.broken = true
		return cc
	}
	key := itoa(c.CaseNum)
	if ancestors[key] {
		utl.PfRed("designspace: WARN: cyclical case %d: self-referential cycle detected, treating as invalid\n", c.CaseNum)
		cc.broken = true
		return cc
	}

	rows := c.UnexplainedZeroBoundaries()
	if len(rows) == 0 {
		// Singular S-system with no identifiable zero-boundary row to
		// merge on: nothing to resolve, report invalid.
		cc.broken = true
		return cc
	}
	term, ok := boundaryTermAt(c, rows[0])
	if !ok {
		cc.broken = true
		return cc
	}

	merged, err := c.GMA.MergeCoDominantTerms(term.eqIdx, term.isPositive, term.chosen, term.other)
	if err != nil {
		utl.PfRed("designspace: WARN: cyclical case %d: %v\n", c.CaseNum, err)
		cc.broken = true
		return cc
	}

	nextAncestors := make(map[string]bool, len(ancestors)+1)
	for k := range ancestors {
		nextAncestors[k] = true
	}
	nextAncestors[key] = true

	internal := New(merged, parent.Extra, Flags{
		Serial:             parent.Flags.Serial,
		Cyclical:           true,
		ResolveCoDominance: parent.Flags.ResolveCoDominance,
	})
	internal.CasePrefix = composeCasePrefix(parent.CasePrefix, c.CaseNum)

	if err := internal.sweepWithAncestors(nextAncestors, depth+1); err != nil {
		utl.PfRed("designspace: WARN: cyclical case %d: internal sweep failed: %v\n", c.CaseNum, err)
		cc.broken = true
		return cc
	}

	cc.Internal = internal
	return cc
}

// Valid answers §3's CyclicalCase contract: "validity is true iff the
// internal DS has >=1 valid case".
func (cc *CyclicalCase) Valid() bool {
	if cc.broken || cc.Internal == nil {
		return false
	}
	return cc.Internal.ValidCases().Count() > 0
}

func composeCasePrefix(parentPrefix string, N int) string {
	if parentPrefix == "" {
		return itoa(N)
	}
	return parentPrefix + "_" + itoa(N)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// boundaryTermAt decodes row r's sibling signature (the one differing
// component identifies the tied equation/sign/term pair) into a
// boundaryTerm for MergeCoDominantTerms.
func boundaryTermAt(c *dscase.Case, r int) (boundaryTerm, bool) {
	sib := c.SiblingSignature(r)
	for i := 0; i+1 < len(sib); i += 2 {
		if sib[i] != c.Signature[i] {
			return boundaryTerm{eqIdx: i / 2, isPositive: true, chosen: c.Signature[i] - 1, other: sib[i] - 1}, true
		}
		if sib[i+1] != c.Signature[i+1] {
			return boundaryTerm{eqIdx: i / 2, isPositive: false, chosen: c.Signature[i+1] - 1, other: sib[i+1] - 1}, true
		}
	}
	return boundaryTerm{}, false
}

// sweepWithAncestors is CalculateAllValidCases but threading the
// cyclical-recursion depth/ancestor set into every cyclical case the
// sweep discovers, so nested resolution terminates (§4.6).
func (d *DesignSpace) sweepWithAncestors(ancestors map[string]bool, depth int) error {
	return d.sweep(func(N int) (string, bool, error) {
		c, err := d.CaseWithCaseNumber(N)
		if err != nil {
			return "", false, err
		}
		if isCyclical(c) {
			if !d.Flags.Cyclical {
				return itoa(N), false, nil
			}
			cc := buildCyclicalCase(d, c, depth, ancestors)
			d.cyclicalCases.AddValueWithName(itoa(N), cc)
			return itoa(N), cc.Valid(), nil
		}
		ok, lpErr := dslp.IsValid(c.Block)
		if lpErr != nil {
			utl.PfRed("designspace: WARN: case %d: %v\n", N, lpErr)
			return itoa(N), false, nil
		}
		return itoa(N), ok, nil
	})
}
