// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides common interfaces for enums
// and utilities for using them.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum is the interface that all enum types satisfy.
// Enum types must be convertable to strings and int64s,
// must be able to return a description of their value,
// must be able to report if they are valid, and must
// be able to return all possible enum values
// and string and description representations.
type Enum interface {
	fmt.Stringer
	// Int64 returns the enum value as an int64.
	Int64() int64
	// Desc returns the description of the enum value.
	Desc() string
	// IsValid returns whether the value is a
	// valid option for its enum type.
	IsValid() bool
	// Values returns all possible values this
	// enum type has. This slice will be in the
	// same order as those returned by Strings and Descs.
	Values() []Enum
	// Strings returns the string representations of
	// all possible values this enum type has.
	// This slice will be in the same order as
	// those returned by Values and Descs.
	Strings() []string
	// Descs returns the descriptions of all
	// possible values this enum type has.
	// This slice will be in the same order as
	// those returned by Values and Strings.
	Descs() []string
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy. Pointers to enum types must
// satisfy all of the methods of [Enum], and must also
// be settable from strings and int64s.
type EnumSetter interface {
	Enum
	// SetString sets the enum value from its
	// string representation, and returns an
	// error if the string is invalid.
	SetString(s string) error
	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// Integer is the constraint on the underlying type of enums.
type Integer interface {
	~int32 | ~int64
}

// String returns the string representation of the given
// enum value with the given map, or its number if not in the map.
func String[T Integer](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from its string representation
// with the given name-to-value map, falling back to a lower-case
// match, and returns an error if the string is invalid.
func SetString[T Integer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value
// with the given map, or its string if not in the map.
func Desc[T Integer](i T, descMap map[T]string, str string) string {
	if d, ok := descMap[i]; ok {
		return d
	}
	return str
}

// UnmarshalText sets the given enum from its text representation,
// for use in an encoding.TextUnmarshaler implementation.
func UnmarshalText(e EnumSetter, text []byte, typeName string) error {
	if err := e.SetString(string(text)); err != nil {
		return fmt.Errorf("%s.UnmarshalText: %w", typeName, err)
	}
	return nil
}

// Join returns the string representations of all values of the
// given enum joined by sep, for use in help text.
func Join(e Enum, sep string) string {
	return strings.Join(e.Strings(), sep)
}
