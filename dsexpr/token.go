// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsexpr

import (
	"strconv"
	"unicode"

	"github.com/cpmech/gosl/chk"
)

// tokenKind enumerates the lexical classes of the §6 equation grammar.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokCaret
	tokSlash
	tokLParen
	tokRParen
	tokComma
	tokLt
	tokGt
	tokEq
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

// lexer turns an equation string into a token stream. It recognizes
// the operators `. ^ * + <>=`  (the `.` element-wise marker is accepted
// but folded into `*`, since GMA scalars never need element-wise ops),
// parentheses, commas (function-argument separators), identifiers, and
// floating point numbers (including exponents, e.g. 1.5e-3).
type lexer struct {
	src  []rune
	pos  int
	toks []token
}

func newLexer(s string) *lexer { return &lexer{src: []rune(s)} }

func (l *lexer) peekRune() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) tokenize() ([]token, error) {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case unicode.IsSpace(c):
			l.pos++
		case c == '+':
			l.toks = append(l.toks, token{kind: tokPlus, text: "+"})
			l.pos++
		case c == '-':
			l.toks = append(l.toks, token{kind: tokMinus, text: "-"})
			l.pos++
		case c == '*':
			l.toks = append(l.toks, token{kind: tokStar, text: "*"})
			l.pos++
		case c == '.':
			// element-wise marker, e.g. ".*"; treat as a plain operator.
			l.pos++
			if l.peekRune() == '*' {
				l.pos++
			}
			l.toks = append(l.toks, token{kind: tokStar, text: "*"})
		case c == '/':
			l.toks = append(l.toks, token{kind: tokSlash, text: "/"})
			l.pos++
		case c == '^':
			l.toks = append(l.toks, token{kind: tokCaret, text: "^"})
			l.pos++
		case c == '(':
			l.toks = append(l.toks, token{kind: tokLParen, text: "("})
			l.pos++
		case c == ')':
			l.toks = append(l.toks, token{kind: tokRParen, text: ")"})
			l.pos++
		case c == ',':
			l.toks = append(l.toks, token{kind: tokComma, text: ","})
			l.pos++
		case c == '<':
			l.toks = append(l.toks, token{kind: tokLt, text: "<"})
			l.pos++
		case c == '>':
			l.toks = append(l.toks, token{kind: tokGt, text: ">"})
			l.pos++
		case c == '=':
			l.toks = append(l.toks, token{kind: tokEq, text: "="})
			l.pos++
		case unicode.IsDigit(c) || c == '.' && l.pos+1 < len(l.src) && unicode.IsDigit(l.src[l.pos+1]):
			tok, err := l.scanNumber()
			if err != nil {
				return nil, err
			}
			l.toks = append(l.toks, tok)
		case unicode.IsLetter(c) || c == '_':
			l.toks = append(l.toks, l.scanIdent())
		default:
			return nil, chk.Err("dsexpr: unexpected character %q at position %d", string(c), l.pos)
		}
	}
	l.toks = append(l.toks, token{kind: tokEOF})
	return l.toks, nil
}

func (l *lexer) scanNumber() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && (unicode.IsDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
		l.pos++
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		save := l.pos
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos < len(l.src) && unicode.IsDigit(l.src[l.pos]) {
			for l.pos < len(l.src) && unicode.IsDigit(l.src[l.pos]) {
				l.pos++
			}
		} else {
			l.pos = save
		}
	}
	text := string(l.src[start:l.pos])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, chk.Err("dsexpr: invalid number literal %q", text)
	}
	return token{kind: tokNumber, text: text, num: v}, nil
}

func (l *lexer) scanIdent() token {
	start := l.pos
	for l.pos < len(l.src) && (unicode.IsLetter(l.src[l.pos]) || unicode.IsDigit(l.src[l.pos]) || l.src[l.pos] == '_') {
		l.pos++
	}
	return token{kind: tokIdent, text: string(l.src[start:l.pos])}
}
