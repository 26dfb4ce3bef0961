// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units represents the physical unit attached to a column of
measurements: a symbolic label together with the scalar multiplicative
factor relative to the base unit of its dimension.

Units are carried along with data, never applied to it: numeric work is
done on bare values, and the unit is reattached to the result. No unit
conversion is performed by this package.
*/
package units

import (
	"fmt"
	"strings"

	"cogentcore.org/resample/base/metadata"
)

// Unit is a physical unit, as a symbol plus a scale factor relative
// to the base unit of the same dimension (for example the Angstrom
// has Scale 1e-10 relative to the meter).
// The zero Unit means that no unit is attached.
type Unit struct {

	// Symbol is the label of the unit, e.g. "Angstrom" or "erg / (s cm2 Angstrom)".
	Symbol string

	// Scale is the multiplicative factor relative to the base unit.
	Scale float64
}

// Dimensionless is the unit of pure numbers.
var Dimensionless = Unit{Symbol: "", Scale: 1}

// New returns a new [Unit] with the given symbol and scale.
func New(symbol string, scale float64) Unit {
	return Unit{Symbol: symbol, Scale: scale}
}

// IsZero returns true if no unit is attached.
func (u Unit) IsZero() bool {
	return u.Symbol == "" && u.Scale == 0
}

// Factor returns the scale factor, which is 1 for the zero unit.
func (u Unit) Factor() float64 {
	if u.Scale == 0 {
		return 1
	}
	return u.Scale
}

// String returns the symbol.
func (u Unit) String() string {
	return u.Symbol
}

// Equal returns true if both units have the same symbol and factor.
func (u Unit) Equal(o Unit) bool {
	return u.Symbol == o.Symbol && u.Factor() == o.Factor()
}

// registry has the units that [Parse] recognizes, keyed by lower-case symbol.
var registry = map[string]Unit{
	"m":        {"m", 1},
	"cm":       {"cm", 1e-2},
	"mm":       {"mm", 1e-3},
	"um":       {"um", 1e-6},
	"micron":   {"um", 1e-6},
	"nm":       {"nm", 1e-9},
	"angstrom": {"Angstrom", 1e-10},
	"aa":       {"Angstrom", 1e-10},
	"hz":       {"Hz", 1},
	"khz":      {"kHz", 1e3},
	"mhz":      {"MHz", 1e6},
	"ghz":      {"GHz", 1e9},
	"jy":       {"Jy", 1e-26},
	"mjy":      {"mJy", 1e-29},
	"s":        {"s", 1},
	"k":        {"K", 1},
}

// Parse returns the unit for the given symbol. Known symbols are
// matched case-insensitively and get their standard scale; any
// other non-empty symbol is returned as-is with a scale of 1.
// The empty string parses to the zero Unit.
func Parse(symbol string) (Unit, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return Unit{}, nil
	}
	if strings.ContainsAny(symbol, "{}\n") {
		return Unit{}, fmt.Errorf("units.Parse: invalid unit symbol %q", symbol)
	}
	if u, ok := registry[strings.ToLower(symbol)]; ok {
		return u, nil
	}
	return Unit{Symbol: symbol, Scale: 1}, nil
}

// Key is the metadata key under which a Unit is stored.
const Key = "Unit"

// SetOn stores the unit in the given metadata, removing any
// existing unit if u is the zero Unit.
func SetOn(md *metadata.Data, u Unit) {
	if u.IsZero() {
		md.Delete(Key)
		return
	}
	md.Set(Key, u)
}

// From returns the unit stored in the given metadata, if any.
func From(md metadata.Data) (Unit, bool) {
	u, err := metadata.Get[Unit](md, Key)
	if err != nil {
		return Unit{}, false
	}
	return u, !u.IsZero()
}
