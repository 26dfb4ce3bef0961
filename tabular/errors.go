// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabular

import "errors"

// The error classes of resampling. Errors are wrapped with
// fmt.Errorf, so test for a class with errors.Is.
var (
	// ErrValueKind is a value array that is not numeric, or has
	// non-finite values where finite values are required.
	ErrValueKind = errors.New("value kind")

	// ErrShapeMismatch is an array whose extent along the resample
	// axis does not match its coordinates, or an output buffer with
	// the wrong shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrConfiguration is an interpolation kind that cannot be used
	// with undefined values, or ambiguous or conflicting arguments.
	ErrConfiguration = errors.New("configuration")

	// ErrUsage is a missing column, a masked coordinate array, or a
	// buffer that cannot be updated in place.
	ErrUsage = errors.New("usage")
)
