// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"sort"

	gointerp "gonum.org/v1/gonum/interp"
)

// nearest is the nearest-sample model, which gonum does not have.
// A point exactly midway between two samples takes the lower one.
type nearest struct {
	ys []float64

	// mids are the midpoints between successive samples.
	mids []float64
}

var _ gointerp.FittablePredictor = (*nearest)(nil)

// Fit records the samples, whose xs must be strictly increasing.
func (nr *nearest) Fit(xs, ys []float64) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return ErrTooFewPoints
	}
	nr.ys = append(nr.ys[:0], ys...)
	nr.mids = nr.mids[:0]
	for i := 1; i < len(xs); i++ {
		nr.mids = append(nr.mids, xs[i-1]+(xs[i]-xs[i-1])/2)
	}
	return nil
}

// Predict returns the value of the nearest sample.
func (nr *nearest) Predict(x float64) float64 {
	return nr.ys[sort.SearchFloat64s(nr.mids, x)]
}
