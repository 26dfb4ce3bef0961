// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"strconv"
)

// Bool is a tensor of bool values, used mainly as the mask of a [Masked] tensor.
type Bool struct {
	Base[bool]
}

// NewBool returns a new n-dimensional tensor of bool values
// with the given sizes per dimension (shape).
func NewBool(sizes ...int) *Bool {
	tsr := &Bool{}
	tsr.SetShape(sizes...)
	return tsr
}

// NewBoolFromValues returns a new 1-dimensional tensor of bool values
// initialized directly from the given slice values, which are not copied.
func NewBoolFromValues(vals ...bool) *Bool {
	tsr := &Bool{}
	tsr.Values = vals
	tsr.shape.SetShape(len(vals))
	return tsr
}

// BoolToFloat64 converts bool to float64 value.
func BoolToFloat64(bv bool) float64 {
	if bv {
		return 1
	}
	return 0
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Bool) String() string { return Sprintf(tsr, 0, "") }

func (tsr *Bool) IsString() bool { return false }

func (tsr *Bool) Float(i ...int) float64 {
	return BoolToFloat64(tsr.Values[tsr.shape.IndexTo1D(i...)])
}

func (tsr *Bool) SetFloat(val float64, i ...int) {
	tsr.SetFloat1D(val, tsr.shape.IndexTo1D(i...))
}

func (tsr *Bool) Float1D(i int) float64 {
	return BoolToFloat64(tsr.Values[i])
}

func (tsr *Bool) SetFloat1D(val float64, i int) {
	tsr.Set1D(val != 0, i)
}

func (tsr *Bool) String1D(i int) string {
	return strconv.FormatBool(tsr.Values[i])
}

func (tsr *Bool) SetString1D(val string, i int) {
	bv, err := strconv.ParseBool(val)
	if err != nil {
		bv = false
	}
	tsr.Set1D(bv, i)
}

// Any returns true if any value is true.
func (tsr *Bool) Any() bool {
	for _, v := range tsr.Values {
		if v {
			return true
		}
	}
	return false
}

// Count returns the number of true values.
func (tsr *Bool) Count() int {
	n := 0
	for _, v := range tsr.Values {
		if v {
			n++
		}
	}
	return n
}

// CopyFrom copies all avail values from other tensor into this tensor.
func (tsr *Bool) CopyFrom(frm Tensor) {
	tsr.checkWrite()
	if fsm, ok := frm.(*Bool); ok {
		copy(tsr.Values, fsm.Values)
		return
	}
	sz := min(tsr.Len(), frm.Len())
	for i := range sz {
		tsr.Values[i] = frm.Float1D(i) != 0
	}
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *Bool) Clone() Tensor {
	return &Bool{Base: tsr.cloneImpl()}
}

// View returns a new tensor sharing the same values.
func (tsr *Bool) View() Tensor {
	return &Bool{Base: tsr.viewImpl()}
}
