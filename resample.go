// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resample resamples columns of scientific tabular data from
// one grid of an independent coordinate (for example wavelength) onto
// another, by interpolation.
//
// Invalid input elements, which are masked, and output points outside
// the span of the input grid both give undefined (NaN) results, which
// are masked in the output. Only [interp.Nearest] and [interp.Linear]
// carry undefined values correctly through the model, so the other
// kinds are rejected for input with masked elements.
//
// [Column] resamples one tensor, and [Table] resamples several columns
// of a tabular object (see [tabular.Data]) that share one coordinate.
package resample

import (
	"fmt"
	"math"

	"cogentcore.org/resample/interp"
	"cogentcore.org/resample/tabular"
	"cogentcore.org/resample/tensor"
)

// The error classes, re-exported from package tabular.
var (
	ErrValueKind     = tabular.ErrValueKind
	ErrShapeMismatch = tabular.ErrShapeMismatch
	ErrConfiguration = tabular.ErrConfiguration
	ErrUsage         = tabular.ErrUsage
)

// options are the settings of a resampling call.
type options struct {
	kind interp.Kinds
	axis int
	name string
}

func newOptions(opts []Option) *options {
	o := &options{kind: interp.Linear, axis: -1, name: "y"}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option is a functional option for [Column] and [Table].
type Option func(o *options)

// WithKind sets the kind of interpolation. The default is [interp.Linear].
func WithKind(kind interp.Kinds) Option {
	return func(o *options) { o.kind = kind }
}

// WithAxis sets the axis of the values to resample along, with negative
// values counting from the last. The default is -1.
func WithAxis(axis int) Option {
	return func(o *options) { o.axis = axis }
}

// WithName sets the name used for the values in errors and logs.
// The default is "y". [Table] uses the column names.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// coords returns the values of a coordinate tensor, which must be
// 1D, numeric and have no masked elements.
func coords(tsr tensor.Tensor, what string) ([]float64, error) {
	if tsr == nil {
		return nil, fmt.Errorf("%w: %s is required", ErrUsage, what)
	}
	if tsr.NumDims() != 1 {
		return nil, fmt.Errorf("%w: %s must be 1D, not shape %v", ErrUsage, what, tsr.Shape().Sizes)
	}
	if !tensor.IsNumeric(tsr.DataType()) {
		return nil, fmt.Errorf("%w: %s must be numeric, not %s", ErrUsage, what, tsr.DataType())
	}
	if ms, ok := tensor.AsMasked(tsr); ok && ms.AnyMasked() {
		return nil, fmt.Errorf("%w: %s cannot have masked values", ErrUsage, what)
	}
	return tensor.Floats(tensor.Unmasked(tsr)), nil
}

// inputCoords returns the input coordinates, which must also be
// finite and strictly increasing.
func inputCoords(tsr tensor.Tensor) ([]float64, error) {
	xs, err := coords(tsr, "x_in")
	if err != nil {
		return nil, err
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: x_in has non-finite value %g at %d", ErrUsage, x, i)
		}
		if i > 0 && !(x > xs[i-1]) {
			return nil, fmt.Errorf("%w: x_in must be strictly increasing, but x_in[%d] = %g follows %g", ErrUsage, i, x, xs[i-1])
		}
	}
	return xs, nil
}

// outputCoords returns the output coordinates, which must also be finite.
func outputCoords(tsr tensor.Tensor) ([]float64, error) {
	xo, err := coords(tsr, "x_out")
	if err != nil {
		return nil, err
	}
	for i, x := range xo {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: x_out has non-finite value %g at %d", ErrValueKind, x, i)
		}
	}
	return xo, nil
}
