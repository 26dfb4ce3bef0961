// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
// NaN values compare equal to each other, as they mark undefined values.
package tolassert

import (
	"math"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.0001.
func Equal[T constraints.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, 0.0001, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol[T constraints.Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	e, a := float64(expected), float64(actual)
	if math.IsNaN(e) || math.IsNaN(a) {
		if math.IsNaN(e) && math.IsNaN(a) {
			return true
		}
		return assert.Fail(t, "NaN mismatch", append([]any{"expected %v, actual %v", e, a}, msgAndArgs...)...)
	}
	return assert.InDelta(t, e, a, float64(tolerance), msgAndArgs...)
}

// EqualTolSlice asserts that the given two slices of numbers are about equal
// to each other, using the given tolerance value.
func EqualTolSlice[T constraints.Float](t assert.TestingT, expected, actual []T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.Equal(t, len(expected), len(actual), msgAndArgs...) {
		return false
	}
	res := true
	for i, ex := range expected {
		res = EqualTol(t, ex, actual[i], tolerance, msgAndArgs...) && res
	}
	return res
}
