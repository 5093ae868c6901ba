// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsexpr

import "github.com/cpmech/gosl/chk"

// Expression is a parsed algebraic tree: constants, variables,
// operators (+,*,^,=,<,>) and the §6 recognized functions.
type Expression struct {
	root Node
	text string
}

// Parse parses a single expression string into an Expression. On
// failure it returns (nil, error); per §7, parser failures return a
// null object and leave any caller-owned state unchanged.
func Parse(s string) (*Expression, error) {
	toks, err := newLexer(s).tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	if p.cur().kind != tokEOF {
		return nil, chk.Err("dsexpr: unexpected trailing token %q", p.cur().text)
	}
	return &Expression{root: root, text: s}, nil
}

// String renders the expression in the §6 surface syntax.
func (e *Expression) String() string { return e.root.String() }

// Root exposes the parsed AST root, for dsgma's monomial extraction.
func (e *Expression) Root() Node { return e.root }

// Eval evaluates the expression against a variable binding. The
// result is complex128 because `sqrt`, `log`, etc. may legitimately
// produce complex values (§6); Value() below extracts the real part
// when the caller has established the imaginary part is (near) zero.
func (e *Expression) Eval(vars map[string]float64) (complex128, error) {
	cv := make(map[string]complex128, len(vars))
	for k, v := range vars {
		cv[k] = complex(v, 0)
	}
	return e.root.Eval(cv)
}

// Value evaluates the expression and returns the real part, which is
// the common case for GMA coefficient/exponent arithmetic.
func (e *Expression) Value(vars map[string]float64) (float64, error) {
	v, err := e.Eval(vars)
	if err != nil {
		return 0, err
	}
	return real(v), nil
}

// parser is a precedence-climbing recursive-descent parser over the
// §6 grammar, precedence (low to high): `= < >`, then `+ -`, then
// `* /` (`.` folds into `*` at the lexer), then unary minus, then `^`
// (right associative, binding tighter than unary minus, so -X^2 is
// -(X^2)), then primary (number, variable, function call,
// parenthesized expression).
type parser struct {
	toks []token
	pos  int
}

func (p *parser) cur() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) error {
	if p.cur().kind != k {
		return chk.Err("dsexpr: expected %s, got %q", what, p.cur().text)
	}
	p.advance()
	return nil
}

func (p *parser) parseRelational() (Node, error) {
	l, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryOp
		switch p.cur().kind {
		case tokLt:
			op = opLt
		case tokGt:
			op = opGt
		case tokEq:
			op = opEq
		default:
			return l, nil
		}
		p.advance()
		r, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		l = &binaryNode{op: op, l: l, r: r}
	}
}

func (p *parser) parseAdditive() (Node, error) {
	l, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryOp
		switch p.cur().kind {
		case tokPlus:
			op = opAdd
		case tokMinus:
			op = opSub
		default:
			return l, nil
		}
		p.advance()
		r, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		l = &binaryNode{op: op, l: l, r: r}
	}
}

func (p *parser) parseMultiplicative() (Node, error) {
	l, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op binaryOp
		switch p.cur().kind {
		case tokStar:
			op = opMul
		case tokSlash:
			op = opDiv
		default:
			return l, nil
		}
		p.advance()
		r, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		l = &binaryNode{op: op, l: l, r: r}
	}
}

func (p *parser) parseUnary() (Node, error) {
	if p.cur().kind == tokMinus {
		p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &unaryMinusNode{x: x}, nil
	}
	if p.cur().kind == tokPlus {
		p.advance()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur().kind == tokCaret {
		p.advance()
		// right-associative: exponent may itself carry a unary sign.
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &binaryNode{op: opPow, l: base, r: exp}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.cur()
	switch t.kind {
	case tokNumber:
		p.advance()
		return &numberNode{v: t.num}, nil
	case tokLParen:
		p.advance()
		inner, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		name := t.text
		p.advance()
		if p.cur().kind == tokLParen && recognizedFuncs[name] {
			p.advance()
			arg, err := p.parseRelational()
			if err != nil {
				return nil, err
			}
			if err := p.expect(tokRParen, "')'"); err != nil {
				return nil, err
			}
			return &funcNode{name: name, arg: arg}, nil
		}
		return &variableNode{name: name}, nil
	default:
		return nil, chk.Err("dsexpr: unexpected token %q", t.text)
	}
}
