// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dsio implements the serialization envelope (§6
// Serialization, §7 endianness) for DesignSpace and Case, plus the
// JSON `.dsm` model-file loader. Grounded on `inp/sim.go`'s
// ReadSim/json.Unmarshal idiom (mallano-gofem) for the config side,
// and on spec.md §6's binary-envelope description for the codec.
package dsio

import (
	"encoding/binary"

	"github.com/cpmech/gosl/chk"
)

// endianness is the single process-wide flag spec.md §6 calls for:
// "A single process-wide flag selects big- or little-endian for any
// numeric serialization that is bit-exact. Default is little-endian."
// It is set once, at process startup, before any Encode/Decode call;
// SetEndianness after that point is a programming error.
var endianness binary.ByteOrder = binary.LittleEndian
var endiannessFixed bool

// SetEndianness overrides the process-wide default (little-endian).
// Must be called, if at all, before the first Encode/Decode call.
func SetEndianness(order binary.ByteOrder) error {
	if endiannessFixed {
		return chk.Err("dsio: endianness already fixed by a prior encode/decode call")
	}
	endianness = order
	return nil
}

// byteOrder returns the active endianness and freezes it, so every
// Encode/Decode call in a process run uses the same byte order.
func byteOrder() binary.ByteOrder {
	endiannessFixed = true
	return endianness
}
