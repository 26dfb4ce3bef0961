// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// Shape manages a tensor's shape information, including sizes
// and the row-major strides derived from them.
type Shape struct {

	// size per dimension.
	Sizes []int

	// offsets for each dimension.
	Strides []int `display:"-"`
}

// NewShape returns a new shape with given sizes.
func NewShape(sizes ...int) *Shape {
	sh := &Shape{}
	sh.SetShape(sizes...)
	return sh
}

// SetShape sets the shape sizes and computes the strides.
func (sh *Shape) SetShape(sizes ...int) {
	sh.Sizes = slices.Clone(sizes)
	sh.Strides = RowMajorStrides(sizes...)
}

// CopyFrom copies the shape parameters from another Shape struct.
func (sh *Shape) CopyFrom(cp *Shape) {
	sh.Sizes = slices.Clone(cp.Sizes)
	sh.Strides = slices.Clone(cp.Strides)
}

// Len returns the total length of elements in the tensor
// (i.e., the product of the shape sizes).
func (sh *Shape) Len() int {
	if len(sh.Sizes) == 0 {
		return 0
	}
	ln := 1
	for _, v := range sh.Sizes {
		ln *= v
	}
	return ln
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(i int) int {
	return sh.Sizes[i]
}

// RowCellSize returns the size of the outermost Row shape dimension,
// and the size of all the remaining inner dimensions (the "cell" size).
func (sh *Shape) RowCellSize() (rows, cells int) {
	if len(sh.Sizes) == 0 {
		return 0, 1
	}
	rows = sh.Sizes[0]
	if len(sh.Sizes) == 1 {
		cells = 1
	} else if rows > 0 {
		cells = sh.Len() / rows
	} else {
		ln := 1
		for _, v := range sh.Sizes[1:] {
			ln *= v
		}
		cells = ln
	}
	return
}

// IndexTo1D returns the flat 1D index from given n-dimensional indicies.
// No checking is done on the length or size of the index values relative
// to the shape of the tensor.
func (sh *Shape) IndexTo1D(index ...int) int {
	oned := 0
	for i, v := range index {
		oned += v * sh.Strides[i]
	}
	return oned
}

// IsEqual returns true if this shape has the same sizes as the other.
func (sh *Shape) IsEqual(oth *Shape) bool {
	return slices.Equal(sh.Sizes, oth.Sizes)
}

// String satisfies the fmt.Stringer interface.
func (sh *Shape) String() string {
	return fmt.Sprint(sh.Sizes)
}

// RowMajorStrides returns strides for sizes where the first dimension is outermost
// and subsequent dimensions are progressively inner.
func RowMajorStrides(sizes ...int) []int {
	rem := 1
	for _, v := range sizes {
		rem *= v
	}
	if rem == 0 {
		strides := make([]int, len(sizes))
		for i := range strides {
			strides[i] = rem
		}
		return strides
	}
	strides := make([]int, len(sizes))
	for i, v := range sizes {
		rem /= v
		strides[i] = rem
	}
	return strides
}
