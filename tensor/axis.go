// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// NormalizeAxis returns the non-negative dimension index for the given
// axis in a tensor with ndims dimensions, where negative values count
// back from the innermost dimension (-1 is the last one).
func NormalizeAxis(axis, ndims int) (int, error) {
	ax := axis
	if ax < 0 {
		ax += ndims
	}
	if ax < 0 || ax >= ndims {
		return 0, fmt.Errorf("axis %d is out of range for %d dimensions", axis, ndims)
	}
	return ax, nil
}

// Lanes calls fun for each 1D lane of a tensor with the given shape
// that runs along the given normalized axis, passing the flat index of
// the first element and the stride between successive elements.
// Lanes are visited in row-major order of the remaining dimensions,
// so two shapes that differ only in the axis size produce lanes in
// corresponding order.
func Lanes(sh *Shape, axis int, fun func(start, stride int)) {
	outer, inner := 1, 1
	for i, sz := range sh.Sizes {
		switch {
		case i < axis:
			outer *= sz
		case i > axis:
			inner *= sz
		}
	}
	n := sh.Sizes[axis]
	for o := range outer {
		for i := range inner {
			fun(o*n*inner+i, inner)
		}
	}
}

// NumLanes returns the number of 1D lanes along the given normalized axis.
func NumLanes(sh *Shape, axis int) int {
	nl := 1
	for i, sz := range sh.Sizes {
		if i != axis {
			nl *= sz
		}
	}
	return nl
}

// ReplaceAxis returns a copy of the sizes with the given axis set to n.
func ReplaceAxis(sizes []int, axis, n int) []int {
	ns := make([]int, len(sizes))
	copy(ns, sizes)
	ns[axis] = n
	return ns
}

// EqualExceptAxis returns true if the two shapes have the same number of
// dimensions and the same sizes in every dimension other than axis.
func EqualExceptAxis(a, b *Shape, axis int) bool {
	if a.NumDims() != b.NumDims() {
		return false
	}
	for i := range a.Sizes {
		if i != axis && a.Sizes[i] != b.Sizes[i] {
			return false
		}
	}
	return true
}
