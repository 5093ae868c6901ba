// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsio

import (
	"github.com/cpmech/gosl/chk"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
	"github.com/jlomnitz/design-space-toolbox-sub001/designspace"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsgma"
)

// formatVersion guards against decoding a future, incompatible
// envelope layout with an older reader.
const formatVersion = 1

// EncodeDesignSpace implements §6 Serialization's binary envelope: the
// GMA (tensors + Xd/Xi names), user constraint matrices, flags, case
// count, the recorded valid case names, and every recorded cyclical
// case (embedded recursively, since its Internal is itself a
// DesignSpace).
func EncodeDesignSpace(d *designspace.DesignSpace) ([]byte, error) {
	w := newWriter()
	w.u32(formatVersion)
	encodeDS(w, d)
	return w.bytes(), nil
}

// DecodeDesignSpace inverts EncodeDesignSpace, reconstructing the
// DesignSpace via designspace.Restore rather than re-sweeping (§6:
// "a decoder reconstructs the DesignSpace with identical semantics").
func DecodeDesignSpace(data []byte) (*designspace.DesignSpace, error) {
	r := newReader(data)
	ver := r.u32()
	if r.err == nil && ver != formatVersion {
		r.fail(chk.Err("dsio: unsupported envelope version %d", ver))
	}
	d := decodeDS(r)
	if err := r.done(); err != nil {
		return nil, err
	}
	return d, nil
}

func encodeDS(w *writer, d *designspace.DesignSpace) {
	writeGMA(w, d.GMA)
	writeExtra(w, d.Extra)
	w.str(d.CasePrefix)
	w.boolean(d.Flags.Serial)
	w.boolean(d.Flags.Cyclical)
	w.boolean(d.Flags.ResolveCoDominance)
	w.u32(uint32(d.NumberOfCases))
	w.strs(d.ValidCases().Names())

	cyNames := d.CyclicalCases().Names()
	w.u32(uint32(len(cyNames)))
	for _, name := range cyNames {
		cc, _ := d.CyclicalCases().Value(name)
		w.str(name)
		writeCyclicalCase(w, cc)
	}
}

func decodeDS(r *reader) *designspace.DesignSpace {
	g := readGMA(r)
	extra := readExtra(r)
	prefix := r.str()
	flags := designspace.Flags{
		Serial:             r.boolean(),
		Cyclical:           r.boolean(),
		ResolveCoDominance: r.boolean(),
	}
	_ = r.u32() // NumberOfCases: stored for round-trip symmetry, recomputed by designspace.New from g
	validNames := r.strs()

	ncyc := int(r.u32())
	cyclical := make(map[string]*designspace.CyclicalCase, ncyc)
	for i := 0; i < ncyc && r.err == nil; i++ {
		name := r.str()
		cyclical[name] = readCyclicalCase(r, g)
	}
	if r.err != nil || g == nil {
		return nil
	}
	return designspace.Restore(g, extra, prefix, flags, validNames, cyclical)
}

func writeCyclicalCase(w *writer, cc *designspace.CyclicalCase) {
	oc := cc.OriginalCase
	w.i32(int32(oc.CaseNum))
	w.u32(uint32(len(oc.Signature)))
	for _, v := range oc.Signature {
		w.i32(int32(v))
	}
	w.boolean(oc.HasSolution)
	if cc.Internal == nil {
		w.boolean(false)
		return
	}
	w.boolean(true)
	encodeDS(w, cc.Internal)
}

func readCyclicalCase(r *reader, parentGMA *dsgma.GMASystem) *designspace.CyclicalCase {
	caseNum := int(r.i32())
	n := int(r.u32())
	sig := make([]int, n)
	for i := range sig {
		sig[i] = int(r.i32())
	}
	hasSolution := r.boolean()
	hasInternal := r.boolean()
	oc := &dscase.Case{GMA: parentGMA, Signature: sig, CaseNum: caseNum, HasSolution: hasSolution, Block: &dscase.ConstraintBlock{}}
	var internal *designspace.DesignSpace
	if hasInternal {
		internal = decodeDS(r)
	}
	return designspace.RestoreCyclicalCase(oc, internal)
}

func writeExtra(w *writer, extra *dscase.ExtraConstraints) {
	if extra == nil {
		w.boolean(false)
		return
	}
	w.boolean(true)
	w.matrix(extra.Cd)
	w.matrix(extra.Ci)
	w.f64s(extra.Delta)
}

func readExtra(r *reader) *dscase.ExtraConstraints {
	if !r.boolean() {
		return nil
	}
	cd := r.matrix()
	ci := r.matrix()
	delta := r.f64s()
	return &dscase.ExtraConstraints{Cd: cd, Ci: ci, Delta: delta}
}
