// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsexpr

import "github.com/cpmech/gosl/chk"

// Monomial is one product-of-powers term c * Prod_j v_j^e_j. All
// arithmetic feeding GMASystem's tensors must reduce to this form
// (§6): "functions are allowed only in printing/evaluation paths".
type Monomial struct {
	Coeff  float64
	Powers map[string]float64 // variable name -> exponent
}

// extractMonomial walks a term's AST and reduces it to a Monomial, or
// fails if the term is not a polynomial product-of-powers (e.g. it
// contains a function call or a relational operator).
func extractMonomial(n Node) (Monomial, error) {
	switch v := n.(type) {
	case *numberNode:
		return Monomial{Coeff: v.v, Powers: map[string]float64{}}, nil
	case *variableNode:
		return Monomial{Coeff: 1, Powers: map[string]float64{v.name: 1}}, nil
	case *unaryMinusNode:
		m, err := extractMonomial(v.x)
		if err != nil {
			return Monomial{}, err
		}
		m.Coeff = -m.Coeff
		return m, nil
	case *binaryNode:
		switch v.op {
		case opMul:
			l, err := extractMonomial(v.l)
			if err != nil {
				return Monomial{}, err
			}
			r, err := extractMonomial(v.r)
			if err != nil {
				return Monomial{}, err
			}
			return mulMonomials(l, r), nil
		case opPow:
			base, ok := v.l.(*variableNode)
			if !ok {
				return Monomial{}, chk.Err("dsexpr: exponentiation base must be a variable, got %q", v.l.String())
			}
			exp, err := v.r.Eval(map[string]complex128{})
			if err != nil {
				return Monomial{}, chk.Err("dsexpr: exponent %q is not a constant: %v", v.r.String(), err)
			}
			return Monomial{Coeff: 1, Powers: map[string]float64{base.name: real(exp)}}, nil
		default:
			return Monomial{}, chk.Err("dsexpr: operator %q is not allowed inside a product-of-powers term", binaryOpText[v.op])
		}
	default:
		return Monomial{}, chk.Err("dsexpr: %q is not a polynomial product-of-powers term (functions only allowed in printing/evaluation paths)", n.String())
	}
}

func mulMonomials(a, b Monomial) Monomial {
	out := Monomial{Coeff: a.Coeff * b.Coeff, Powers: make(map[string]float64, len(a.Powers)+len(b.Powers))}
	for k, v := range a.Powers {
		out.Powers[k] += v
	}
	for k, v := range b.Powers {
		out.Powers[k] += v
	}
	return out
}
