// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsvar

import "testing"

func TestPoolAddAndOrder(tst *testing.T) {
	p := NewPool(ReadWriteAdd)
	p.MustAdd("a1", 1.0)
	p.MustAdd("b1", 2.0)
	p.MustAdd("a2", 3.0)
	names := p.Names()
	if len(names) != 3 || names[0] != "a1" || names[1] != "b1" || names[2] != "a2" {
		tst.Errorf("unexpected order: %v", names)
	}
}

func TestPoolReadOnlyRejectsSet(tst *testing.T) {
	p := NewPool(ReadWriteAdd)
	p.MustAdd("x", 1.0)
	p.SetMode(ReadOnly)
	if err := p.SetValue("x", 2.0); err == nil {
		tst.Errorf("expected error setting value on read-only pool")
	}
}

func TestPoolReadWriteAllowsSetNotAdd(tst *testing.T) {
	p := NewPool(ReadWriteAdd)
	p.MustAdd("x", 1.0)
	p.SetMode(ReadWrite)
	if err := p.SetValue("x", 5.0); err != nil {
		tst.Errorf("unexpected error: %v", err)
	}
	if v, _ := p.Get("x"); v.Value() != 5.0 {
		tst.Errorf("expected value 5, got %v", v.Value())
	}
	if _, err := p.Add("y", 1.0); err == nil {
		tst.Errorf("expected error adding to read-write (non-add) pool")
	}
}

func TestPoolDuplicateNameRejected(tst *testing.T) {
	p := NewPool(ReadWriteAdd)
	p.MustAdd("x", 1.0)
	if _, err := p.Add("x", 2.0); err == nil {
		tst.Errorf("expected error on duplicate name")
	}
}

func TestPoolIndexOf(tst *testing.T) {
	p := NewPool(ReadWriteAdd)
	p.MustAdd("a", 1)
	p.MustAdd("b", 2)
	if p.IndexOf("b") != 1 {
		tst.Errorf("expected index 1 for b")
	}
	if p.IndexOf("z") != -1 {
		tst.Errorf("expected -1 for missing name")
	}
}
