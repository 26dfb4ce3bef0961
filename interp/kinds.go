// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

// Kinds are the kinds of interpolation model.
type Kinds int32

const (
	// Linear connects neighboring samples by straight lines.
	Linear Kinds = iota

	// Nearest takes the value of the nearest sample, with a point exactly
	// midway between two samples taking the lower one.
	Nearest

	// Next takes the value of the next sample at or above the point.
	Next

	// Akima is the Akima cubic spline, which avoids overshoot near outliers.
	Akima

	// Pchip is the monotone piecewise cubic Hermite spline of Fritsch and Butland.
	Pchip

	// Natural is the cubic spline with zero second derivative at both ends.
	Natural

	// Clamped is the cubic spline with zero first derivative at both ends.
	Clamped

	// Cubic is the not-a-knot cubic spline.
	Cubic

	// Quadratic is the quadratic spline, which is not implemented.
	Quadratic
)

// PropagatesUndefined returns true if a model of this kind gives NaN
// exactly where a NaN sample is within the local support of a point,
// and correct values elsewhere. Only Nearest and Linear do.
func (k Kinds) PropagatesUndefined() bool {
	return k == Linear || k == Nearest
}

// MinPoints returns the minimum number of samples for this kind.
func (k Kinds) MinPoints() int {
	switch k {
	case Nearest:
		return 1
	case Linear, Next:
		return 2
	case Cubic:
		return 4
	}
	return 3
}
