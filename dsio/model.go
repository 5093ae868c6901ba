// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dsio

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
	"github.com/jlomnitz/design-space-toolbox-sub001/designspace"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsgma"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsmat"
)

// ModelFlags mirrors designspace.Flags with JSON tags.
type ModelFlags struct {
	Serial             bool `json:"serial"`
	Cyclical           bool `json:"cyclical"`
	ResolveCoDominance bool `json:"resolveCoDominance"`
}

// Model is the `.dsm` (design-space model) JSON document: equation
// strings, an optional fixed independent-variable order, optional
// extra constraint rows, the DesignSpace flags, and an Encoder field
// selecting the serialization codec for subsequent runs, mirroring
// inp.Data.Encoder (mallano-gofem inp/sim.go).
type Model struct {
	Equations  []string    `json:"equations"`
	Xi         []string    `json:"xi,omitempty"`
	CasePrefix string      `json:"casePrefix,omitempty"`
	Flags      ModelFlags  `json:"flags"`
	Extra      *ModelExtra `json:"extra,omitempty"`
	Encoder    string      `json:"encoder,omitempty"` // "binary" (default) or "json"
}

// ModelExtra is the JSON form of dscase.ExtraConstraints: dense
// row-major matrices, one row per user-added constraint.
type ModelExtra struct {
	Cd    [][]float64 `json:"cd"`
	Ci    [][]float64 `json:"ci"`
	Delta []float64   `json:"delta"`
}

// LoadModel reads and parses a `.dsm` file, following inp.ReadSim's
// shape: read the bytes with gosl/io, decode JSON, report failures as
// WARN (nil return), never panic.
func LoadModel(dir, fn string) *Model {
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		io.PfRed("dsio: cannot read model file %s/%s\n%v\n", dir, fn, err)
		return nil
	}
	var m Model
	if err := json.Unmarshal(b, &m); err != nil {
		io.PfRed("dsio: cannot unmarshal model file %s/%s\n%v\n", dir, fn, err)
		return nil
	}
	return &m
}

// Build parses the model's equations into a GMASystem and constructs
// the DesignSpace described by its flags/extra constraints.
func (m *Model) Build() (*designspace.DesignSpace, error) {
	if len(m.Equations) == 0 {
		return nil, chk.Err("dsio: model has no equations")
	}
	g, err := dsgma.Parse(m.Equations, nonEmpty(m.Xi))
	if err != nil {
		return nil, err
	}
	extra, err := m.Extra.toExtraConstraints(g)
	if err != nil {
		return nil, err
	}
	d := designspace.New(g, extra, designspace.Flags{
		Serial:             m.Flags.Serial,
		Cyclical:           m.Flags.Cyclical,
		ResolveCoDominance: m.Flags.ResolveCoDominance,
	})
	d.CasePrefix = m.CasePrefix
	return d, nil
}

func nonEmpty(xi []string) []string {
	if len(xi) == 0 {
		return nil
	}
	return xi
}

func (e *ModelExtra) toExtraConstraints(g *dsgma.GMASystem) (*dscase.ExtraConstraints, error) {
	if e == nil {
		return nil, nil
	}
	if len(e.Cd) != len(e.Ci) || len(e.Cd) != len(e.Delta) {
		return nil, chk.Err("dsio: model extra constraints: cd/ci/delta row counts must match")
	}
	cd, err := rowsToMatrix(e.Cd, g.Xd.Len())
	if err != nil {
		return nil, chk.Err("dsio: model extra constraints: cd: %v", err)
	}
	ci, err := rowsToMatrix(e.Ci, g.Xi.Len())
	if err != nil {
		return nil, chk.Err("dsio: model extra constraints: ci: %v", err)
	}
	return &dscase.ExtraConstraints{Cd: cd, Ci: ci, Delta: append([]float64{}, e.Delta...)}, nil
}

func rowsToMatrix(rows [][]float64, ncols int) (*dsmat.Matrix, error) {
	m := dsmat.Alloc(len(rows), ncols)
	for i, row := range rows {
		if len(row) != ncols {
			return nil, chk.Err("row %d has %d columns, expected %d", i, len(row), ncols)
		}
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m, nil
}
