// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsio

import (
	"bytes"
	"encoding/binary"

	"github.com/cpmech/gosl/chk"

	"github.com/jlomnitz/design-space-toolbox-sub001/dsmat"
)

// writer wraps a bytes.Buffer with the envelope's fixed-width
// primitives (length-prefixed strings/slices, a matrix writer), all
// using the process's frozen byte order.
type writer struct {
	buf bytes.Buffer
	ord binary.ByteOrder
}

func newWriter() *writer { return &writer{ord: byteOrder()} }

func (w *writer) u32(v uint32)      { binary.Write(&w.buf, w.ord, v) }
func (w *writer) i32(v int32)       { binary.Write(&w.buf, w.ord, v) }
func (w *writer) f64(v float64)     { binary.Write(&w.buf, w.ord, v) }
func (w *writer) boolean(v bool)    { binary.Write(&w.buf, w.ord, v) }
func (w *writer) str(s string)      { w.u32(uint32(len(s))); w.buf.WriteString(s) }
func (w *writer) strs(ss []string)  { w.u32(uint32(len(ss))); for _, s := range ss { w.str(s) } }
func (w *writer) f64s(v []float64)  { w.u32(uint32(len(v))); for _, x := range v { w.f64(x) } }
func (w *writer) f64ss(v [][]float64) {
	w.u32(uint32(len(v)))
	for _, row := range v {
		w.f64s(row)
	}
}
func (w *writer) f64sss(v [][][]float64) {
	w.u32(uint32(len(v)))
	for _, m := range v {
		w.f64ss(m)
	}
}

// matrix writes nil as a 0x0 matrix (so decode never nil-dereferences).
func (w *writer) matrix(m *dsmat.Matrix) {
	if m == nil {
		w.u32(0)
		w.u32(0)
		return
	}
	w.u32(uint32(m.NumRows()))
	w.u32(uint32(m.NumCols()))
	for i := 0; i < m.NumRows(); i++ {
		for j := 0; j < m.NumCols(); j++ {
			w.f64(m.Get(i, j))
		}
	}
}

func (w *writer) bytes() []byte { return w.buf.Bytes() }

// reader is the writer's mirror image, reading from a single
// in-memory buffer and reporting the first error encountered.
type reader struct {
	buf *bytes.Reader
	ord binary.ByteOrder
	err error
}

func newReader(data []byte) *reader {
	return &reader{buf: bytes.NewReader(data), ord: byteOrder()}
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) u32() uint32 {
	var v uint32
	if r.err == nil {
		r.err = binary.Read(r.buf, r.ord, &v)
	}
	return v
}

func (r *reader) i32() int32 {
	var v int32
	if r.err == nil {
		r.err = binary.Read(r.buf, r.ord, &v)
	}
	return v
}

func (r *reader) f64() float64 {
	var v float64
	if r.err == nil {
		r.err = binary.Read(r.buf, r.ord, &v)
	}
	return v
}

func (r *reader) boolean() bool {
	var v bool
	if r.err == nil {
		r.err = binary.Read(r.buf, r.ord, &v)
	}
	return v
}

func (r *reader) str() string {
	n := r.u32()
	if r.err != nil || n == 0 {
		return ""
	}
	b := make([]byte, n)
	if _, err := r.buf.Read(b); err != nil {
		r.fail(err)
		return ""
	}
	return string(b)
}

func (r *reader) strs() []string {
	n := r.u32()
	out := make([]string, n)
	for i := range out {
		out[i] = r.str()
	}
	return out
}

func (r *reader) f64s() []float64 {
	n := r.u32()
	out := make([]float64, n)
	for i := range out {
		out[i] = r.f64()
	}
	return out
}

func (r *reader) f64ss() [][]float64 {
	n := r.u32()
	out := make([][]float64, n)
	for i := range out {
		out[i] = r.f64s()
	}
	return out
}

func (r *reader) f64sss() [][][]float64 {
	n := r.u32()
	out := make([][][]float64, n)
	for i := range out {
		out[i] = r.f64ss()
	}
	return out
}

func (r *reader) matrix() *dsmat.Matrix {
	nr := int(r.u32())
	nc := int(r.u32())
	m := dsmat.Alloc(nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			m.Set(i, j, r.f64())
		}
	}
	return m
}

// done returns the accumulated error, or a wrapped chk.Err if any read
// failed (§7: parser/decoder failures return an error, never panic).
func (r *reader) done() error {
	if r.err != nil {
		return chk.Err("dsio: decode failed: %v", r.err)
	}
	return nil
}
