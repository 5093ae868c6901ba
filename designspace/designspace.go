// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package designspace implements DesignSpace (C10) and CyclicalCase
// (C11): the aggregate over a GMA system that accumulates user
// constraints, builds cases on demand, sweeps the case space (serially
// or over a worker pool), and resolves cyclical cases via recursive
// sub design-spaces. Grounded on DSDesignSpace.c,
// DSDesignSpaceParallel.c, DSDesignSpaceStack.c, and DSSubcase.c
// (original_source); the worker-pool shape is grounded on
// gonum-gonum/optimize/global.go's operation/result channel pattern.
package designspace

import (
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/cpmech/gosl/utl"

	"github.com/jlomnitz/design-space-toolbox-sub001/dscase"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsdict"
	"github.com/jlomnitz/design-space-toolbox-sub001/dsgma"
	"github.com/jlomnitz/design-space-toolbox-sub001/dslp"
)

// Flags toggles DesignSpace-wide behavior (§3 DesignSpace flags).
type Flags struct {
	Serial             bool
	Cyclical           bool
	ResolveCoDominance bool
}

// DesignSpace is the aggregate of a GMA system, its accumulated user
// constraints, and the valid/cyclical case pools discovered by sweeps
// (§3 DesignSpace).
type DesignSpace struct {
	GMA   *dsgma.GMASystem
	Extra *dscase.ExtraConstraints

	CasePrefix string
	Flags      Flags

	NumberOfCases int

	validCases    *dsdict.Dictionary[struct{}]
	cyclicalCases *dsdict.Dictionary[*CyclicalCase]

	mu sync.Mutex // guards the shared work stack during a sweep
}

// New builds a DesignSpace over a GMA system. extra may be nil.
func New(g *dsgma.GMASystem, extra *dscase.ExtraConstraints, flags Flags) *DesignSpace {
	return &DesignSpace{
		GMA: g, Extra: extra, Flags: flags,
		NumberOfCases: g.NumberOfCases(),
		validCases:    dsdict.New[struct{}](),
		cyclicalCases: dsdict.New[*CyclicalCase](),
	}
}

// Restore rebuilds a DesignSpace from already-known results (§6
// Serialization: "a decoder reconstructs the DesignSpace with
// identical semantics"), bypassing CalculateAllValidCases. Used by
// dsio's binary decoder; validNames and cyclical may be nil.
func Restore(g *dsgma.GMASystem, extra *dscase.ExtraConstraints, casePrefix string, flags Flags, validNames []string, cyclical map[string]*CyclicalCase) *DesignSpace {
	d := New(g, extra, flags)
	d.CasePrefix = casePrefix
	for _, name := range validNames {
		d.validCases.AddValueWithName(name, struct{}{})
	}
	for name, cc := range cyclical {
		d.cyclicalCases.AddValueWithName(name, cc)
	}
	return d
}

// ValidCases returns the dictionary of valid case numbers discovered
// so far (keys are case numbers rendered as decimal strings). The
// composite "<N>_<subName>" entries built by
// CalculateAllValidCasesByResolvingCyclicalCases are only in the
// dictionary that method returns; they are not added here.
func (d *DesignSpace) ValidCases() *dsdict.Dictionary[struct{}] { return d.validCases }

// CyclicalCases returns the dictionary of cases flagged cyclical.
func (d *DesignSpace) CyclicalCases() *dsdict.Dictionary[*CyclicalCase] { return d.cyclicalCases }

// cyclicalSignatures renders the set of sibling signatures already
// known cyclical, keyed by dsgma.SignatureString, for the codominance
// normalizer (§4.1).
func (d *DesignSpace) cyclicalSignatures() map[string]bool {
	out := make(map[string]bool, d.cyclicalCases.Count())
	for _, name := range d.cyclicalCases.Names() {
		N, err := strconv.Atoi(name)
		if err != nil {
			continue
		}
		s, err := d.GMA.DecodeCaseNumber(N)
		if err != nil {
			continue
		}
		out[dsgma.SignatureString(s)] = true
	}
	return out
}

// CaseWithCaseNumber is the case factory (§4.5): decode N, build the
// Case from the GMA plus accumulated extra constraints, and apply
// codominance normalization if the flag is set.
func (d *DesignSpace) CaseWithCaseNumber(N int) (*dscase.Case, error) {
	s, err := d.GMA.DecodeCaseNumber(N)
	if err != nil {
		return nil, err
	}
	var cyclicalSigs map[string]bool
	if d.Flags.ResolveCoDominance {
		cyclicalSigs = d.cyclicalSignatures()
	}
	return dscase.Build(d.GMA, s, d.Extra, d.Flags.ResolveCoDominance, cyclicalSigs)
}

// CalculateAllValidCases visits every case number once (serially or
// over a worker pool per Flags.Serial), testing LP validity directly
// and, when Flags.Cyclical is set, recursing into a sub design-space
// for every cyclical case (§4.5, §4.6). Each top-level case starts its
// own empty cyclical-recursion ancestor set.
func (d *DesignSpace) CalculateAllValidCases() error {
	return d.sweepWithAncestors(map[string]bool{}, 0)
}

// CalculateAllValidCasesForSlice is CalculateAllValidCases restricted
// by a slice LP (§4.5). Cyclical cases are reported invalid here and
// are never resolved into sub design-spaces, whatever Flags.Cyclical
// says.
func (d *DesignSpace) CalculateAllValidCasesForSlice(bounds []dslp.Bound) error {
	return d.sweep(func(N int) (string, bool, error) {
		c, err := d.CaseWithCaseNumber(N)
		if err != nil {
			return "", false, err
		}
		if isCyclical(c) {
			return fmt.Sprintf("%d", N), false, nil
		}
		ok, lpErr := dslp.IsValidAtSlice(c.Block, bounds)
		if lpErr != nil {
			utl.PfRed("designspace: WARN: case %d: %v\n", N, lpErr)
			return fmt.Sprintf("%d", N), false, nil
		}
		return fmt.Sprintf("%d", N), ok, nil
	})
}

// sweep runs visit(N) for every N in [1, NumberOfCases], serially or
// over a worker pool sized to the number of online CPUs, and folds
// every true result into validCases (§5 Scheduling).
func (d *DesignSpace) sweep(visit func(N int) (name string, valid bool, err error)) error {
	if d.Flags.Serial {
		for N := 1; N <= d.NumberOfCases; N++ {
			name, ok, err := visit(N)
			if err != nil {
				return err
			}
			if ok {
				d.validCases.AddValueWithName(name, struct{}{})
			}
		}
		return nil
	}

	workers := runtime.NumCPU()
	if workers > d.NumberOfCases {
		workers = d.NumberOfCases
	}
	if workers < 1 {
		workers = 1
	}

	next := 1
	pop := func() (int, bool) {
		d.mu.Lock()
		defer d.mu.Unlock()
		if next > d.NumberOfCases {
			return 0, false
		}
		N := next
		next++
		return N, true
	}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := dsdict.New[struct{}]()
			for {
				N, ok := pop()
				if !ok {
					break
				}
				name, valid, err := visit(N)
				if err != nil {
					errs <- err
					return
				}
				if valid {
					local.AddValueWithName(name, struct{}{})
				}
			}
			d.validCases.Merge(local)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// CalculateAllValidCasesByResolvingCyclicalCases builds on
// CalculateAllValidCases: for every recorded cyclical case, its
// internal sub design-space's valid sub-case names are substituted for
// N itself, producing composite "<N>_<subName>" entries (§4.5).
func (d *DesignSpace) CalculateAllValidCasesByResolvingCyclicalCases() (*dsdict.Dictionary[struct{}], error) {
	saved := d.Flags.Cyclical
	d.Flags.Cyclical = true
	defer func() { d.Flags.Cyclical = saved }()

	if err := d.CalculateAllValidCases(); err != nil {
		return nil, err
	}

	out := dsdict.New[struct{}]()
	for _, name := range d.validCases.Names() {
		if _, cyc := d.cyclicalCases.Value(name); cyc {
			continue
		}
		out.AddValueWithName(name, struct{}{})
	}
	for _, name := range d.cyclicalCases.Names() {
		cc, ok := d.cyclicalCases.Value(name)
		if !ok {
			continue
		}
		if !cc.Valid() {
			continue
		}
		for _, subName := range cc.Internal.ValidCases().Names() {
			out.AddValueWithName(name+"_"+subName, struct{}{})
		}
	}
	return out, nil
}

// isCyclical implements §4.6 detection: a case is cyclical if its
// S-system is singular (!HasSolution) or if it still carries an
// unexplained zero boundary after construction (see
// dscase.Case.UnexplainedZeroBoundaries).
func isCyclical(c *dscase.Case) bool {
	if !c.HasSolution {
		return true
	}
	return len(c.UnexplainedZeroBoundaries()) > 0
}
