// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsio

import "github.com/jlomnitz/design-space-toolbox-sub001/dsgma"

func writeGMA(w *writer, g *dsgma.GMASystem) {
	w.strs(g.Xd.Names())
	w.strs(g.Xi.Names())
	w.u32(uint32(g.NumEquations()))
	for i := 0; i < g.NumEquations(); i++ {
		w.f64s(g.Alpha[i])
		w.f64ss(g.Gd[i])
		w.f64ss(g.Gi[i])
		w.f64s(g.Beta[i])
		w.f64ss(g.Hd[i])
		w.f64ss(g.Hi[i])
	}
}

func readGMA(r *reader) *dsgma.GMASystem {
	xdNames := r.strs()
	xiNames := r.strs()
	e := int(r.u32())
	alpha := make([][]float64, e)
	beta := make([][]float64, e)
	gd := make([][][]float64, e)
	gi := make([][][]float64, e)
	hd := make([][][]float64, e)
	hi := make([][][]float64, e)
	for i := 0; i < e; i++ {
		alpha[i] = r.f64s()
		gd[i] = r.f64ss()
		gi[i] = r.f64ss()
		beta[i] = r.f64s()
		hd[i] = r.f64ss()
		hi[i] = r.f64ss()
	}
	if r.err != nil {
		return nil
	}
	g, err := dsgma.FromTensors(xdNames, xiNames, alpha, beta, gd, gi, hd, hi)
	if err != nil {
		r.fail(err)
		return nil
	}
	return g
}
