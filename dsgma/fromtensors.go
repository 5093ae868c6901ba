// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsgma

import (
	"github.com/cpmech/gosl/chk"

	"github.com/jlomnitz/design-space-toolbox-sub001/dsvar"
)

// FromTensors rebuilds a GMASystem directly from its matrix-form
// representation, bypassing Parse (§6 Serialization: "the GMA (α, β,
// exponent tensors, signatures, Xd/Xi by name)" is exactly what a
// decoder needs to reconstruct). PosTerms/NegTerms (needed by the
// codominance detector's Term.Signature comparisons) are rederived
// from the exponent rows the same way buildTensorSide produces them
// from parsed monomials.
func FromTensors(xdNames, xiNames []string, alpha, beta [][]float64, gd, gi, hd, hi [][][]float64) (*GMASystem, error) {
	e := len(alpha)
	if len(beta) != e || len(gd) != e || len(gi) != e || len(hd) != e || len(hi) != e {
		return nil, chk.Err("dsgma: FromTensors: tensor slices must all have length %d (one per equation)", e)
	}

	xd := dsvar.NewPool(dsvar.ReadWriteAdd)
	for _, n := range xdNames {
		xd.MustAdd(n, 0)
	}
	xd.SetMode(dsvar.ReadOnly)

	xi := dsvar.NewPool(dsvar.ReadWriteAdd)
	for _, n := range xiNames {
		xi.MustAdd(n, 0)
	}
	xi.SetMode(dsvar.ReadOnly)

	g := &GMASystem{Xd: xd, Xi: xi, Alpha: alpha, Beta: beta, Gd: gd, Gi: gi, Hd: hd, Hi: hi}
	for i := 0; i < e; i++ {
		pos, err := rebuildTerms(alpha[i], gd[i], gi[i], xdNames, xiNames)
		if err != nil {
			return nil, chk.Err("dsgma: FromTensors: equation %d, positive side: %v", i, err)
		}
		neg, err := rebuildTerms(beta[i], hd[i], hi[i], xdNames, xiNames)
		if err != nil {
			return nil, chk.Err("dsgma: FromTensors: equation %d, negative side: %v", i, err)
		}
		g.PosTerms = append(g.PosTerms, pos)
		g.NegTerms = append(g.NegTerms, neg)
		g.Signature = append(g.Signature, len(alpha[i]), len(beta[i]))
	}
	return g, nil
}

func rebuildTerms(coeffs []float64, Td, Ti [][]float64, xdNames, xiNames []string) ([]Term, error) {
	if len(Td) != len(coeffs) || len(Ti) != len(coeffs) {
		return nil, chk.Err("dsgma: exponent tensor row count does not match coefficient count")
	}
	out := make([]Term, len(coeffs))
	for k, c := range coeffs {
		powers := map[string]float64{}
		for idx, name := range xdNames {
			if v := Td[k][idx]; v != 0 {
				powers[name] = v
			}
		}
		for idx, name := range xiNames {
			if v := Ti[k][idx]; v != 0 {
				powers[name] = v
			}
		}
		out[k] = Term{Coeff: c, Powers: powers}
	}
	return out, nil
}
