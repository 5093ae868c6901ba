// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsio

import (
	"github.com/cpmech/gosl/chk"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
)

// EncodeCase encodes a standalone Case (§6 Serialization) as its GMA,
// extra constraints, codominance flag, and signature: enough for
// DecodeCase to rebuild it via dscase.Build, which is a pure function
// of those inputs. This stores the inputs rather than the derived
// U/ζ/Cd/Ci — a decoder that reruns Build reconstructs identical
// semantics (§6) without duplicating Build's logic as a second,
// divergence-prone code path.
func EncodeCase(c *dscase.Case, extra *dscase.ExtraConstraints, resolveCoDominance bool) ([]byte, error) {
	w := newWriter()
	w.u32(formatVersion)
	writeGMA(w, c.GMA)
	writeExtra(w, extra)
	w.boolean(resolveCoDominance)
	w.u32(uint32(len(c.Signature)))
	for _, v := range c.Signature {
		w.i32(int32(v))
	}
	return w.bytes(), nil
}

// DecodeCase inverts EncodeCase.
func DecodeCase(data []byte) (*dscase.Case, error) {
	r := newReader(data)
	ver := r.u32()
	if r.err == nil && ver != formatVersion {
		r.fail(chk.Err("dsio: unsupported envelope version %d", ver))
	}
	g := readGMA(r)
	extra := readExtra(r)
	resolveCoDominance := r.boolean()
	n := int(r.u32())
	sig := make([]int, n)
	for i := range sig {
		sig[i] = int(r.i32())
	}
	if err := r.done(); err != nil {
		return nil, err
	}
	return dscase.Build(g, sig, extra, resolveCoDominance, nil)
}
