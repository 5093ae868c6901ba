// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsexpr

import (
	"regexp"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Equation is one parsed GMA equation (§6): either `dXi/dt = <pos-sum>
// - <neg-sum>` or `0 = <pos-sum> - <neg-sum>` (algebraic constraint).
type Equation struct {
	Target      string // dependent variable name; empty for algebraic equations
	IsAlgebraic bool
	Pos         []Monomial // positive-coefficient terms
	Neg         []Monomial // negative-coefficient terms
}

var derivativeLHS = regexp.MustCompile(`^d([A-Za-z_][A-Za-z0-9_]*)/dt$`)

// ParseEquation parses one GMA equation string into its target and
// signed term lists. Coefficients must be strictly positive (I1 in
// spec.md §3); a zero or negative literal coefficient is a parse
// failure, not silently accepted.
func ParseEquation(s string) (*Equation, error) {
	lhs, rhs, err := splitOnTopLevelEquals(s)
	if err != nil {
		return nil, err
	}
	lhs = strings.TrimSpace(lhs)
	eq := &Equation{}
	if lhs == "0" {
		eq.IsAlgebraic = true
	} else if m := derivativeLHS.FindStringSubmatch(lhs); m != nil {
		eq.Target = m[1]
	} else {
		return nil, chk.Err("dsexpr: left-hand side %q must be 'dXi/dt' or '0'", lhs)
	}

	expr, err := Parse(rhs)
	if err != nil {
		return nil, err
	}

	posTerms, negTerms := splitSignedSum(expr.Root(), true)
	eq.Pos = make([]Monomial, 0, len(posTerms))
	for _, t := range posTerms {
		m, err := extractMonomial(t)
		if err != nil {
			return nil, err
		}
		if m.Coeff <= 0 {
			return nil, chk.Err("dsexpr: positive-term coefficient must be > 0, got %v", m.Coeff)
		}
		eq.Pos = append(eq.Pos, m)
	}
	eq.Neg = make([]Monomial, 0, len(negTerms))
	for _, t := range negTerms {
		m, err := extractMonomial(t)
		if err != nil {
			return nil, err
		}
		// the term arrived with a '-' sign already stripped by
		// splitSignedSum (its coefficient must be positive too, since
		// the sign is carried by sum membership, not by the literal).
		if m.Coeff <= 0 {
			return nil, chk.Err("dsexpr: negative-term coefficient must be > 0, got %v", m.Coeff)
		}
		eq.Neg = append(eq.Neg, m)
	}
	if len(eq.Pos) == 0 && len(eq.Neg) == 0 {
		return nil, chk.Err("dsexpr: equation %q has no terms", s)
	}
	return eq, nil
}

// splitOnTopLevelEquals splits "LHS = RHS" on the first '=' that is
// not inside parentheses.
func splitOnTopLevelEquals(s string) (lhs, rhs string, err error) {
	depth := 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case '=':
			if depth == 0 {
				return s[:i], s[i+1:], nil
			}
		}
	}
	return "", "", chk.Err("dsexpr: equation %q is missing a top-level '='", s)
}

// splitSignedSum walks the top-level chain of + and - operators and
// returns the terms carried with an effective '+' sign and those
// carried with an effective '-' sign, each with its sign stripped: a
// unary minus, or being the right operand of a '-', only flips which
// list the term lands in, and the returned node carries no sign of its
// own. `positive` tracks the current node's sign relative to the
// expression root.
func splitSignedSum(n Node, positive bool) (pos, neg []Node) {
	switch v := n.(type) {
	case *binaryNode:
		switch v.op {
		case opAdd:
			lp, ln := splitSignedSum(v.l, positive)
			rp, rn := splitSignedSum(v.r, positive)
			return append(lp, rp...), append(ln, rn...)
		case opSub:
			lp, ln := splitSignedSum(v.l, positive)
			rp, rn := splitSignedSum(v.r, !positive)
			return append(lp, rp...), append(ln, rn...)
		}
	case *unaryMinusNode:
		return splitSignedSum(v.x, !positive)
	}
	if positive {
		return []Node{n}, nil
	}
	return nil, []Node{n}
}
