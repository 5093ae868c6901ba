// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsdict

import (
	"sort"
	"sync"
	"testing"
)

func TestFirstWins(tst *testing.T) {
	d := New[int]()
	if !d.AddValueWithName("a", 1) {
		tst.Fatal("expected first add to succeed")
	}
	if d.AddValueWithName("a", 2) {
		tst.Fatal("expected duplicate add to be rejected")
	}
	v, ok := d.Value("a")
	if !ok || v != 1 {
		tst.Errorf("expected first-wins value 1, got %v", v)
	}
}

func TestInsertionOrder(tst *testing.T) {
	d := New[int]()
	d.AddValueWithName("z", 1)
	d.AddValueWithName("a", 2)
	d.AddValueWithName("m", 3)
	names := d.Names()
	if names[0] != "z" || names[1] != "a" || names[2] != "m" {
		tst.Errorf("unexpected order: %v", names)
	}
}

func TestConcurrentWrites(tst *testing.T) {
	d := New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d.AddValueWithName(string(rune('a'+i%26))+string(rune('0'+i/26)), i)
		}(i)
	}
	wg.Wait()
	names := d.Names()
	sort.Strings(names)
	if d.Count() != len(names) {
		tst.Errorf("count mismatch: %d vs %d", d.Count(), len(names))
	}
}

func TestMerge(tst *testing.T) {
	d1 := New[int]()
	d1.AddValueWithName("a", 1)
	d2 := New[int]()
	d2.AddValueWithName("b", 2)
	d2.AddValueWithName("a", 99)
	d1.Merge(d2)
	if d1.Count() != 2 {
		tst.Errorf("expected 2 entries after merge, got %d", d1.Count())
	}
	v, _ := d1.Value("a")
	if v != 1 {
		tst.Errorf("expected first-wins to survive merge, got %v", v)
	}
}
