// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsexpr

import (
	"math/cmplx"
	"strconv"

	"github.com/cpmech/gosl/chk"
)

// Node is one element of a parsed expression tree.
type Node interface {
	// Eval evaluates the node given a binding of variable names to
	// (possibly complex) values; `i` is always bound to the imaginary
	// unit regardless of vars (§6).
	Eval(vars map[string]complex128) (complex128, error)
	// String renders the node back to the §6 grammar's surface syntax
	// (the printing path).
	String() string
}

type numberNode struct{ v float64 }

func (n *numberNode) Eval(map[string]complex128) (complex128, error) { return complex(n.v, 0), nil }
func (n *numberNode) String() string                                  { return strconv.FormatFloat(n.v, 'g', -1, 64) }

type variableNode struct{ name string }

func (n *variableNode) Eval(vars map[string]complex128) (complex128, error) {
	if n.name == "i" {
		return complex(0, 1), nil
	}
	v, ok := vars[n.name]
	if !ok {
		return 0, chk.Err("dsexpr: unbound variable %q", n.name)
	}
	return v, nil
}
func (n *variableNode) String() string { return n.name }

type unaryMinusNode struct{ x Node }

func (n *unaryMinusNode) Eval(vars map[string]complex128) (complex128, error) {
	v, err := n.x.Eval(vars)
	if err != nil {
		return 0, err
	}
	return -v, nil
}
func (n *unaryMinusNode) String() string { return "-" + parenIfNeeded(n.x) }

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
	opPow
	opLt
	opGt
	opEq
)

var binaryOpText = map[binaryOp]string{
	opAdd: "+", opSub: "-", opMul: "*", opDiv: "/", opPow: "^",
	opLt: "<", opGt: ">", opEq: "=",
}

type binaryNode struct {
	op   binaryOp
	l, r Node
}

func (n *binaryNode) Eval(vars map[string]complex128) (complex128, error) {
	l, err := n.l.Eval(vars)
	if err != nil {
		return 0, err
	}
	r, err := n.r.Eval(vars)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case opAdd:
		return l + r, nil
	case opSub:
		return l - r, nil
	case opMul:
		return l * r, nil
	case opDiv:
		return l / r, nil
	case opPow:
		return cmplx.Pow(l, r), nil
	case opLt:
		return boolToComplex(real(l) < real(r)), nil
	case opGt:
		return boolToComplex(real(l) > real(r)), nil
	case opEq:
		return boolToComplex(real(l) == real(r)), nil
	}
	return 0, chk.Err("dsexpr: unknown binary operator")
}

func (n *binaryNode) String() string {
	return parenIfNeeded(n.l) + binaryOpText[n.op] + parenIfNeeded(n.r)
}

func boolToComplex(b bool) complex128 {
	if b {
		return 1
	}
	return 0
}

// funcNode represents a call to one of the §6 recognized functions.
type funcNode struct {
	name string
	arg  Node
}

var recognizedFuncs = map[string]bool{
	"log": true, "ln": true, "log10": true, "cos": true, "sin": true,
	"abs": true, "sign": true, "sqrt": true, "real": true, "imag": true,
}

func (n *funcNode) Eval(vars map[string]complex128) (complex128, error) {
	v, err := n.arg.Eval(vars)
	if err != nil {
		return 0, err
	}
	switch n.name {
	case "log", "ln":
		return cmplx.Log(v), nil
	case "log10":
		return cmplx.Log10(v), nil
	case "cos":
		return cmplx.Cos(v), nil
	case "sin":
		return cmplx.Sin(v), nil
	case "sqrt":
		return cmplx.Sqrt(v), nil
	case "abs":
		return complex(cmplx.Abs(v), 0), nil
	case "sign":
		r := real(v)
		switch {
		case r > 0:
			return 1, nil
		case r < 0:
			return -1, nil
		default:
			return 0, nil
		}
	case "real":
		return complex(real(v), 0), nil
	case "imag":
		return complex(imag(v), 0), nil
	}
	return 0, chk.Err("dsexpr: unrecognized function %q", n.name)
}

func (n *funcNode) String() string { return n.name + "(" + n.arg.String() + ")" }

func parenIfNeeded(n Node) string {
	switch n.(type) {
	case *numberNode, *variableNode, *funcNode:
		return n.String()
	default:
		return "(" + n.String() + ")"
	}
}

