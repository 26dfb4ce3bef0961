// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"strconv"
)

// String is a tensor of string values.
type String struct {
	Base[string]
}

// NewString returns a new n-dimensional tensor of string values
// with the given sizes per dimension (shape).
func NewString(sizes ...int) *String {
	tsr := &String{}
	tsr.SetShape(sizes...)
	return tsr
}

// NewStringFromValues returns a new 1-dimensional tensor of string values
// initialized directly from the given slice values, which are not copied.
func NewStringFromValues(vals ...string) *String {
	tsr := &String{}
	tsr.Values = vals
	tsr.shape.SetShape(len(vals))
	return tsr
}

// StringToFloat64 converts string value to float64 using strconv,
// returning 0 if any error.
func StringToFloat64(str string) float64 {
	if fv, err := strconv.ParseFloat(str, 64); err == nil {
		return fv
	}
	return 0
}

// Float64ToString converts float64 to string value using strconv, g format.
func Float64ToString(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *String) String() string { return Sprintf(tsr, 0, "") }

func (tsr *String) IsString() bool { return true }

func (tsr *String) Float(i ...int) float64 {
	return StringToFloat64(tsr.Values[tsr.shape.IndexTo1D(i...)])
}

func (tsr *String) SetFloat(val float64, i ...int) {
	tsr.SetFloat1D(val, tsr.shape.IndexTo1D(i...))
}

func (tsr *String) Float1D(i int) float64 {
	return StringToFloat64(tsr.Values[i])
}

func (tsr *String) SetFloat1D(val float64, i int) {
	tsr.Set1D(Float64ToString(val), i)
}

func (tsr *String) String1D(i int) string {
	return tsr.Values[i]
}

func (tsr *String) SetString1D(val string, i int) {
	tsr.Set1D(val, i)
}

// CopyFrom copies all avail values from other tensor into this tensor, with an
// optimized implementation if the other tensor is of the same type, and
// otherwise it goes through appropriate standard type.
func (tsr *String) CopyFrom(frm Tensor) {
	tsr.checkWrite()
	if fsm, ok := frm.(*String); ok {
		copy(tsr.Values, fsm.Values)
		return
	}
	sz := min(tsr.Len(), frm.Len())
	for i := range sz {
		tsr.Values[i] = frm.String1D(i)
	}
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *String) Clone() Tensor {
	return &String{Base: tsr.cloneImpl()}
}

// View returns a new tensor sharing the same values.
func (tsr *String) View() Tensor {
	return &String{Base: tsr.viewImpl()}
}
