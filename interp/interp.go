// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp builds one-dimensional interpolation models over
// the lanes of a tensor along one axis, using the gonum interp
// package for the model families. Models never extrapolate: any
// point outside the span of the sample coordinates evaluates to NaN.
package interp

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"cogentcore.org/resample/tensor"
	"gonum.org/v1/gonum/floats"
	gointerp "gonum.org/v1/gonum/interp"
)

var (
	// ErrNotImplemented is returned for a kind that has no model.
	ErrNotImplemented = errors.New("interp: kind not implemented")

	// ErrTooFewPoints is returned when there are fewer samples
	// than the kind of model needs.
	ErrTooFewPoints = errors.New("interp: too few points")

	// ErrNotIncreasing is returned when the sample coordinates
	// are not strictly increasing.
	ErrNotIncreasing = errors.New("interp: x values not strictly increasing")
)

// Model is an interpolation model fitted to every lane of a tensor
// along one axis.
type Model struct {
	kind Kinds
	axis int

	// sizes of the tensor the model was built from.
	sizes []int

	// lo, hi are the span of the sample coordinates.
	lo, hi float64

	preds []gointerp.Predictor
}

// newPredictor returns an unfitted model of given kind.
func newPredictor(kind Kinds) (gointerp.FittablePredictor, error) {
	switch kind {
	case Linear:
		return &gointerp.PiecewiseLinear{}, nil
	case Nearest:
		return &nearest{}, nil
	case Next:
		return &gointerp.PiecewiseConstant{}, nil
	case Akima:
		return &gointerp.AkimaSpline{}, nil
	case Pchip:
		return &gointerp.FritschButland{}, nil
	case Natural:
		return &gointerp.NaturalCubic{}, nil
	case Clamped:
		return &gointerp.ClampedCubic{}, nil
	case Cubic:
		return &gointerp.NotAKnotCubic{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, kind)
}

// Build fits a model of the given kind to every 1D lane of ys along
// the given axis (negative values count from the last dimension),
// with xs as the sample coordinates, which must be strictly increasing.
// The values of ys are copied, so it can be reused after Build returns.
func Build(xs []float64, ys tensor.Tensor, kind Kinds, axis int) (*Model, error) {
	ax, err := tensor.NormalizeAxis(axis, ys.NumDims())
	if err != nil {
		return nil, fmt.Errorf("interp.Build: %w", err)
	}
	n := len(xs)
	if ys.DimSize(ax) != n {
		return nil, fmt.Errorf("interp.Build: %d values along axis %d for %d x values", ys.DimSize(ax), ax, n)
	}
	if _, err := newPredictor(kind); err != nil {
		return nil, err
	}
	if n < kind.MinPoints() {
		return nil, fmt.Errorf("%w: %d for kind %s, which needs %d", ErrTooFewPoints, n, kind, kind.MinPoints())
	}
	for i := 1; i < n; i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w: x[%d] = %g follows %g", ErrNotIncreasing, i, xs[i], xs[i-1])
		}
	}
	md := &Model{kind: kind, axis: ax, sizes: slices.Clone(ys.Shape().Sizes)}
	md.lo, md.hi = floats.Min(xs), floats.Max(xs)
	lanes := make([][]float64, 0, tensor.NumLanes(ys.Shape(), ax))
	tensor.Lanes(ys.Shape(), ax, func(start, stride int) {
		lane := make([]float64, n)
		for i := range n {
			lane[i] = ys.Float1D(start + i*stride)
		}
		lanes = append(lanes, lane)
	})
	md.preds = make([]gointerp.Predictor, len(lanes))
	for li, lane := range lanes {
		pr, _ := newPredictor(kind)
		if err := pr.Fit(xs, lane); err != nil {
			return nil, fmt.Errorf("interp.Build: %s: %w", kind, err)
		}
		md.preds[li] = pr
	}
	return md, nil
}

// Kind returns the kind of model.
func (md *Model) Kind() Kinds { return md.kind }

// Span returns the lowest and highest sample coordinates.
func (md *Model) Span() (lo, hi float64) { return md.lo, md.hi }

// Evaluate returns the model values at the given points, as a tensor
// with the shape of the fitted tensor except for len(xNew) along the
// axis. Points outside the span of the samples give NaN.
func (md *Model) Evaluate(xNew []float64) *tensor.Float64 {
	out := tensor.NewFloat64(tensor.ReplaceAxis(md.sizes, md.axis, len(xNew))...)
	li := 0
	tensor.Lanes(out.Shape(), md.axis, func(start, stride int) {
		pr := md.preds[li]
		li++
		for j, x := range xNew {
			v := math.NaN()
			if x >= md.lo && x <= md.hi {
				v = pr.Predict(x)
			}
			out.Values[start+j*stride] = v
		}
	})
	return out
}
