// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsvar implements Variable and VariablePool: an ordered,
// named set of scalar-valued symbols. Variables are backed by
// github.com/cpmech/gosl/fun.Prm, the same named-parameter idiom the
// teacher uses for material parameters (msolid.GetPrms), repurposed
// here for the independent/dependent variables of a GMA system.
package dsvar

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Mode is the lifecycle state of a VariablePool.
type Mode int

const (
	// ReadOnly forbids both value mutation and membership changes.
	ReadOnly Mode = iota
	// ReadWrite allows value mutation but membership is frozen.
	ReadWrite
	// ReadWriteAdd allows both value mutation and adding new variables.
	ReadWriteAdd
)

// Variable is a named scalar. Identity within a pool is by name.
type Variable struct {
	prm *fun.Prm
}

// Name returns the variable's name.
func (v *Variable) Name() string { return v.prm.N }

// Value returns the variable's current scalar value.
func (v *Variable) Value() float64 { return v.prm.V }

// SetValue assigns the variable's scalar value.
func (v *Variable) SetValue(x float64) { v.prm.V = x }

// Prm exposes the underlying gosl/fun.Prm, for code that interoperates
// directly with the fun package (e.g. function evaluators).
func (v *Variable) Prm() *fun.Prm { return v.prm }

// Pool is an ordered mapping from name (unique within the pool) to
// Variable. Ordering is insertion order and is part of the pool's
// identity: matrix columns/rows are indexed by pool order (§3).
type Pool struct {
	mode  Mode
	order []string
	byKey map[string]*Variable
}

// NewPool creates an empty pool in the given lifecycle mode.
func NewPool(mode Mode) *Pool {
	return &Pool{mode: mode, byKey: make(map[string]*Variable)}
}

// Mode returns the pool's current lifecycle mode.
func (p *Pool) Mode() Mode { return p.mode }

// SetMode transitions the pool to a new lifecycle mode. Widening from
// ReadOnly to ReadWrite(Add) is always allowed; narrowing is used to
// freeze a pool after construction (the GMA's Xd/Xi pools are frozen
// this way once parsing completes).
func (p *Pool) SetMode(m Mode) { p.mode = m }

// Add inserts a new variable with the given name and initial value.
// Fails (WARN per §7: returns an error, caller decides) if the pool is
// not in ReadWriteAdd mode, or if the name already exists.
func (p *Pool) Add(name string, value float64) (*Variable, error) {
	if p.mode != ReadWriteAdd {
		return nil, chk.Err("dsvar: pool is not in read-write-add mode, cannot add %q", name)
	}
	if _, ok := p.byKey[name]; ok {
		return nil, chk.Err("dsvar: variable %q already exists in pool", name)
	}
	v := &Variable{prm: &fun.Prm{N: name, V: value}}
	p.byKey[name] = v
	p.order = append(p.order, name)
	return v, nil
}

// MustAdd is Add, panicking (FATAL-adjacent usage; reserved for
// construction-time callers that already validated uniqueness) on
// failure.
func (p *Pool) MustAdd(name string, value float64) *Variable {
	v, err := p.Add(name, value)
	if err != nil {
		chk.Panic("%v", err)
	}
	return v
}

// Get looks up a variable by name.
func (p *Pool) Get(name string) (*Variable, bool) {
	v, ok := p.byKey[name]
	return v, ok
}

// SetValue mutates an existing variable's value. Fails if the pool is
// ReadOnly or the name is not present.
func (p *Pool) SetValue(name string, value float64) error {
	if p.mode == ReadOnly {
		return chk.Err("dsvar: pool is read-only, cannot set %q", name)
	}
	v, ok := p.byKey[name]
	if !ok {
		return chk.Err("dsvar: variable %q not found in pool", name)
	}
	v.SetValue(value)
	return nil
}

// Names returns the variable names in insertion order.
func (p *Pool) Names() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Len returns the number of variables in the pool.
func (p *Pool) Len() int { return len(p.order) }

// IndexOf returns the column/row index of a name within pool order, or
// -1 if absent. Used throughout dsgma/dscase to map a variable name to
// its position in a matrix.
func (p *Pool) IndexOf(name string) int {
	for i, n := range p.order {
		if n == name {
			return i
		}
	}
	return -1
}

// Values returns the current values of all variables, in pool order.
func (p *Pool) Values() []float64 {
	out := make([]float64, len(p.order))
	for i, n := range p.order {
		out[i] = p.byKey[n].Value()
	}
	return out
}

// AsPrms returns the pool's variables as a gosl/fun.Prms list, in pool
// order, for interop with fun-based evaluators.
func (p *Pool) AsPrms() fun.Prms {
	out := make(fun.Prms, len(p.order))
	for i, n := range p.order {
		out[i] = p.byKey[n].prm
	}
	return out
}

// Clone returns an independent copy of the pool (new Variable objects,
// same mode).
func (p *Pool) Clone() *Pool {
	out := NewPool(p.mode)
	out.order = append([]string{}, p.order...)
	out.byKey = make(map[string]*Variable, len(p.byKey))
	for k, v := range p.byKey {
		out.byKey[k] = &Variable{prm: &fun.Prm{N: v.Name(), V: v.Value()}}
	}
	return out
}
