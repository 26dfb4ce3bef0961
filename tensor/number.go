// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"strconv"
)

// Number is a tensor of numerical values.
type Number[T Numbers] struct {
	Base[T]
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// Int64 is an alias for Number[int64].
type Int64 = Number[int64]

// Int32 is an alias for Number[int32].
type Int32 = Number[int32]

// Byte is an alias for Number[byte].
type Byte = Number[byte]

// NewFloat64 returns a new [Float64] tensor
// with the given sizes per dimension (shape).
func NewFloat64(sizes ...int) *Float64 {
	return NewNumber[float64](sizes...)
}

// NewFloat32 returns a new [Float32] tensor
// with the given sizes per dimension (shape).
func NewFloat32(sizes ...int) *Float32 {
	return NewNumber[float32](sizes...)
}

// NewInt returns a new [Int] tensor
// with the given sizes per dimension (shape).
func NewInt(sizes ...int) *Int {
	return NewNumber[int](sizes...)
}

// NewNumber returns a new n-dimensional tensor of numerical values
// with the given sizes per dimension (shape).
func NewNumber[T Numbers](sizes ...int) *Number[T] {
	tsr := &Number[T]{}
	tsr.SetShape(sizes...)
	return tsr
}

// NewNumberFromValues returns a new 1-dimensional tensor of given value type
// initialized directly from the given slice values, which are not copied.
func NewNumberFromValues[T Numbers](vals ...T) *Number[T] {
	tsr := &Number[T]{}
	tsr.Values = vals
	tsr.shape.SetShape(len(vals))
	return tsr
}

// NewFloat64FromValues returns a new 1-dimensional tensor of float64
// initialized directly from the given slice values, which are not copied.
func NewFloat64FromValues(vals ...float64) *Float64 {
	return NewNumberFromValues(vals...)
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Number[T]) String() string { return Sprintf(tsr, 0, "") }

func (tsr *Number[T]) IsString() bool { return false }

func (tsr *Number[T]) Float(i ...int) float64 {
	return float64(tsr.Values[tsr.shape.IndexTo1D(i...)])
}

func (tsr *Number[T]) SetFloat(val float64, i ...int) {
	tsr.SetFloat1D(val, tsr.shape.IndexTo1D(i...))
}

func (tsr *Number[T]) Float1D(i int) float64 {
	return float64(tsr.Values[i])
}

// SetFloat1D sets the value at the given flat index. Integer tensors
// have no representation for NaN or infinity, and store 0 instead.
func (tsr *Number[T]) SetFloat1D(val float64, i int) {
	tsr.checkWrite()
	if (math.IsNaN(val) || math.IsInf(val, 0)) && !IsFloat(tsr.DataType()) {
		val = 0
	}
	tsr.Values[i] = T(val)
}

func (tsr *Number[T]) String1D(i int) string {
	return strconv.FormatFloat(float64(tsr.Values[i]), 'g', -1, 64)
}

// SetString1D parses the string as a float, storing 0 if it is not a number.
func (tsr *Number[T]) SetString1D(val string, i int) {
	fv, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fv = 0
	}
	tsr.SetFloat1D(fv, i)
}

// CopyFrom copies all avail values from other tensor into this tensor, with an
// optimized implementation if the other tensor is of the same type, and
// otherwise it goes through appropriate standard type.
func (tsr *Number[T]) CopyFrom(frm Tensor) {
	tsr.checkWrite()
	if fsm, ok := frm.(*Number[T]); ok {
		copy(tsr.Values, fsm.Values)
		return
	}
	sz := min(tsr.Len(), frm.Len())
	for i := range sz {
		tsr.SetFloat1D(frm.Float1D(i), i)
	}
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *Number[T]) Clone() Tensor {
	return &Number[T]{Base: tsr.cloneImpl()}
}

// View returns a new tensor sharing the same values, with its own shape
// and metadata.
func (tsr *Number[T]) View() Tensor {
	return &Number[T]{Base: tsr.viewImpl()}
}
