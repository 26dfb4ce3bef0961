// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"cogentcore.org/resample/enums"
)

var _KindsValues = []Kinds{0, 1, 2, 3, 4, 5, 6, 7, 8}

// KindsN is the highest valid value for type Kinds, plus one.
const KindsN Kinds = 9

var _KindsValueMap = map[string]Kinds{`linear`: 0, `nearest`: 1, `next`: 2, `akima`: 3, `pchip`: 4, `natural`: 5, `clamped`: 6, `cubic`: 7, `quadratic`: 8,
	`fritsch-butland`: 4, `not-a-knot`: 7}

var _KindsDescMap = map[Kinds]string{0: `Linear connects neighboring samples by straight lines.`, 1: `Nearest takes the value of the nearest sample, with a point exactly midway between two samples taking the lower one.`, 2: `Next takes the value of the next sample at or above the point.`, 3: `Akima is the Akima cubic spline, which avoids overshoot near outliers.`, 4: `Pchip is the monotone piecewise cubic Hermite spline of Fritsch and Butland.`, 5: `Natural is the cubic spline with zero second derivative at both ends.`, 6: `Clamped is the cubic spline with zero first derivative at both ends.`, 7: `Cubic is the not-a-knot cubic spline.`, 8: `Quadratic is the quadratic spline, which is not implemented.`}

var _KindsMap = map[Kinds]string{0: `linear`, 1: `nearest`, 2: `next`, 3: `akima`, 4: `pchip`, 5: `natural`, 6: `clamped`, 7: `cubic`, 8: `quadratic`}

// String returns the string representation of this Kinds value.
func (i Kinds) String() string { return enums.String(i, _KindsMap) }

// SetString sets the Kinds value from its string representation,
// and returns an error if the string is invalid.
func (i *Kinds) SetString(s string) error {
	return enums.SetString(i, s, _KindsValueMap, "Kinds")
}

// Int64 returns the Kinds value as an int64.
func (i Kinds) Int64() int64 { return int64(i) }

// SetInt64 sets the Kinds value from an int64.
func (i *Kinds) SetInt64(in int64) { *i = Kinds(in) }

// Desc returns the description of the Kinds value.
func (i Kinds) Desc() string { return enums.Desc(i, _KindsDescMap, i.String()) }

// KindsValues returns all possible values for the type Kinds.
func KindsValues() []Kinds { return _KindsValues }

// Values returns all possible values for the type Kinds.
func (i Kinds) Values() []enums.Enum {
	es := make([]enums.Enum, len(_KindsValues))
	for j, v := range _KindsValues {
		es[j] = v
	}
	return es
}

// Strings returns the string representations of all values of type Kinds.
func (i Kinds) Strings() []string {
	strs := make([]string, len(_KindsValues))
	for j, v := range _KindsValues {
		strs[j] = _KindsMap[v]
	}
	return strs
}

// Descs returns the descriptions of all values of type Kinds.
func (i Kinds) Descs() []string {
	descs := make([]string, len(_KindsValues))
	for j, v := range _KindsValues {
		descs[j] = _KindsDescMap[v]
	}
	return descs
}

// IsValid returns whether the value is a valid option for type Kinds.
func (i Kinds) IsValid() bool { _, ok := _KindsMap[i]; return ok }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Kinds) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Kinds) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "Kinds")
}
