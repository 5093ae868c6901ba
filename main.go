// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"path/filepath"

	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"

	"github.com/jlomnitz/design-space-toolbox-sub001/dsio"
)

func main() {

	// catch errors
	utl.Tsilent = false
	defer func() {
		if mpi.Rank() == 0 {
			if err := recover(); err != nil {
				utl.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false) // this tool runs single-process by default; the guard is kept for parity with MPI-aware runs

	// message
	utl.PfWhite("\nDesign Space Toolbox -- Go GMA design-space sweep\n\n")
	utl.Pf("Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.\n")
	utl.Pf("Use of this source code is governed by a BSD-style\n")
	utl.Pf("license that can be found in the LICENSE file.\n\n")

	// model filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		utl.Panic("Please, provide a model filename. Ex.: toggle.dsm\n")
	}

	// resolve cyclical cases into sub design-spaces?
	resolveCyclical := false
	if len(flag.Args()) > 1 {
		resolveCyclical = utl.Atob(flag.Arg(1))
	}

	// profiling?
	defer utl.DoProf(false)()

	// load model
	dir, fn := filepath.Split(fnamepath)
	m := dsio.LoadModel(dir, fn)
	if m == nil {
		utl.Panic("Load failed\n")
		return
	}

	// build design space
	d, err := m.Build()
	if err != nil {
		utl.Panic("Build failed: %v\n", err)
		return
	}

	// sweep the case space
	utl.Pf("running %d cases (serial=%v, resolveCoDominance=%v)\n", d.NumberOfCases, d.Flags.Serial, d.Flags.ResolveCoDominance)
	if resolveCyclical {
		valid, err := d.CalculateAllValidCasesByResolvingCyclicalCases()
		if err != nil {
			utl.Panic("Run failed: %v\n", err)
			return
		}
		report(valid.Names())
		return
	}
	if err := d.CalculateAllValidCases(); err != nil {
		utl.Panic("Run failed: %v\n", err)
		return
	}
	report(d.ValidCases().Names())
}

func report(names []string) {
	utl.PfWhite("\n%d valid case(s):\n", len(names))
	for _, name := range names {
		utl.Pf("  %s\n", name)
	}
}
