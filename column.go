// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"cogentcore.org/resample/interp"
	"cogentcore.org/resample/tabular"
	"cogentcore.org/resample/tensor"
	"gonum.org/v1/gonum/floats"
)

// Column resamples the values yIn, sampled at the coordinates xIn along
// the resample axis, onto the coordinates xOut.
//
// xIn must be 1D, finite and strictly increasing, and xOut must be 1D
// and finite, in any order. Neither can have masked elements.
// yIn must be numeric with finite values, except where it is masked,
// and have len(xIn) elements along the axis.
//
// The result has the element type of yIn, and len(xOut) elements
// along the axis. It has a mask if any xOut is outside the span of
// xIn, or any element of yIn is masked, and its undefined elements are
// masked (and 0 for integer types). The unit of yIn is set on the result.
// Where xOut equals an element of xIn, the result is that element of yIn
// exactly, and is masked only if that element is masked, even when a
// neighboring element is masked.
//
// If yOut is non-nil, the result is written into it and returned.
// It must have the result shape and element type, and a mask if the
// result needs one.
func Column(xIn, xOut, yIn, yOut tensor.Tensor, opts ...Option) (tensor.Tensor, error) {
	o := newOptions(opts)
	xs, err := inputCoords(xIn)
	if err != nil {
		return nil, err
	}
	xo, err := outputCoords(xOut)
	if err != nil {
		return nil, err
	}
	return column(xs, xo, yIn, yOut, o)
}

// extrapolates returns true if any of xo is outside the span of xs.
func extrapolates(xs, xo []float64) bool {
	if len(xo) == 0 {
		return false
	}
	if len(xs) == 0 {
		return true
	}
	return floats.Min(xo) < floats.Min(xs) || floats.Max(xo) > floats.Max(xs)
}

// unmaskedValues returns the values of tsr as float64 with masked
// elements set to NaN, and the number of masked elements.
// Unmasked values must be finite.
func unmaskedValues(tsr tensor.Tensor, name string) (*tensor.Float64, int, error) {
	ms, _ := tensor.AsMasked(tsr)
	var vals []float64
	if ms != nil {
		vals = ms.Filled(math.NaN())
	} else {
		vals = tensor.Floats(tsr)
	}
	nmasked := 0
	for i, v := range vals {
		if ms != nil && ms.IsMasked(i) {
			nmasked++
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, 0, fmt.Errorf("%w: %q has non-finite value %g at %d", ErrValueKind, name, v, i)
		}
	}
	work := tensor.NewFloat64(tsr.Shape().Sizes...)
	work.Values = vals
	return work, nmasked, nil
}

// checkOutput returns an error if yOut cannot hold the result.
func checkOutput(yIn, yOut tensor.Tensor, sizes []int, needMask bool, name string) error {
	if needMask && !tensor.IsMaskedTensor(yOut) {
		return fmt.Errorf("%w: output for %q needs a mask", ErrUsage, name)
	}
	if !slices.Equal(yOut.Shape().Sizes, sizes) {
		return fmt.Errorf("%w: %w: output for %q has shape %v, not %v", ErrUsage, ErrShapeMismatch, name, yOut.Shape().Sizes, sizes)
	}
	if yOut.DataType() != yIn.DataType() {
		return fmt.Errorf("%w: output for %q has type %s, not %s", ErrUsage, name, yOut.DataType(), yIn.DataType())
	}
	if yOut.IsReadOnly() {
		return fmt.Errorf("%w: output for %q is read-only", ErrUsage, name)
	}
	if u, ok := tensor.UnitOf(yIn); ok {
		if ou, ok := tensor.UnitOf(yOut); ok && !ou.Equal(u) {
			return fmt.Errorf("%w: output for %q has unit %s, not %s", ErrUsage, name, ou, u)
		}
	}
	return nil
}

func column(xs, xo []float64, yIn, yOut tensor.Tensor, o *options) (tensor.Tensor, error) {
	if yIn == nil {
		return nil, fmt.Errorf("%w: no values for %q", ErrUsage, o.name)
	}
	if !tensor.IsNumeric(yIn.DataType()) {
		return nil, fmt.Errorf("%w: cannot resample non-numeric %q of type %s", ErrValueKind, o.name, yIn.DataType())
	}
	work, nmasked, err := unmaskedValues(yIn, o.name)
	if err != nil {
		return nil, err
	}
	ax, err := tensor.NormalizeAxis(o.axis, yIn.NumDims())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrShapeMismatch, o.name, err)
	}
	if n := yIn.DimSize(ax); n != len(xs) {
		return nil, fmt.Errorf("%w: %q has %d values along axis %d for %d x values", ErrShapeMismatch, o.name, n, ax, len(xs))
	}
	sizes := tensor.ReplaceAxis(yIn.Shape().Sizes, ax, len(xo))
	needMask := nmasked > 0 || extrapolates(xs, xo)
	if yOut != nil {
		if err := checkOutput(yIn, yOut, sizes, needMask, o.name); err != nil {
			return nil, err
		}
	}
	if nmasked > 0 && !o.kind.PropagatesUndefined() {
		return nil, fmt.Errorf("%w: %q has masked values, which %s interpolation does not support", ErrConfiguration, o.name, o.kind)
	}
	md, err := interp.Build(xs, work, o.kind, ax)
	switch {
	case errors.Is(err, interp.ErrNotImplemented):
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	case errors.Is(err, interp.ErrTooFewPoints):
		return nil, fmt.Errorf("%w: %q: %w", ErrShapeMismatch, o.name, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %q: %w", ErrUsage, o.name, err)
	}
	res := md.Evaluate(xo)

	if yOut == nil {
		yOut, err = tabular.EmptyLike(yIn, sizes, yIn.DataType(), needMask)
		if err != nil {
			return nil, err
		}
	}
	tensor.SetFloats(yOut, res.Values)
	nundef := 0
	if om, ok := tensor.AsMasked(yOut); ok {
		nundef = om.SetMaskNaN(res.Values)
	}
	if u, ok := tensor.UnitOf(yIn); ok {
		tensor.SetUnit(yOut, u)
	}
	lo, hi := md.Span()
	slog.Debug("resampled column", "name", o.name, "kind", md.Kind(), "from", len(xs), "to", len(xo), "span", []float64{lo, hi}, "masked", nundef)
	return yOut, nil
}
