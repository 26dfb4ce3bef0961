// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Masked pairs a value Tensor with a [Bool] mask of the same shape,
// where a true mask element marks the corresponding value as invalid.
// All Tensor methods operate on the values; metadata lives on the
// values tensor.
type Masked struct {
	Tensor

	// Mask marks invalid elements with true.
	Mask *Bool
}

// NewMasked returns a new Masked tensor wrapping the given values,
// with an all-false mask of the same shape.
func NewMasked(vals Tensor) *Masked {
	return &Masked{Tensor: vals, Mask: NewBool(vals.Shape().Sizes...)}
}

// NewMaskedFrom returns a new Masked tensor wrapping the given values
// and mask, which must have the same shape.
func NewMaskedFrom(vals Tensor, mask *Bool) (*Masked, error) {
	if !vals.Shape().IsEqual(mask.Shape()) {
		return nil, fmt.Errorf("tensor.NewMaskedFrom: mask shape %v does not match values shape %v", mask.Shape(), vals.Shape())
	}
	return &Masked{Tensor: vals, Mask: mask}, nil
}

// AsMasked returns the tensor as a *Masked if it is one.
func AsMasked(tsr Tensor) (*Masked, bool) {
	ms, ok := tsr.(*Masked)
	return ms, ok
}

// IsMaskedTensor returns true if the tensor carries a mask.
func IsMaskedTensor(tsr Tensor) bool {
	_, ok := tsr.(*Masked)
	return ok
}

// Unmasked returns the values tensor inside a Masked tensor,
// or the tensor itself otherwise.
func Unmasked(tsr Tensor) Tensor {
	if ms, ok := tsr.(*Masked); ok {
		return ms.Tensor
	}
	return tsr
}

// IsMasked returns true if the element at the given flat index is invalid.
func (ms *Masked) IsMasked(i int) bool {
	return ms.Mask.Values[i]
}

// SetMasked sets the mask state of the element at the given flat index.
func (ms *Masked) SetMasked(masked bool, i int) {
	ms.Mask.Set1D(masked, i)
}

// AnyMasked returns true if any element is masked.
func (ms *Masked) AnyMasked() bool {
	return ms.Mask.Any()
}

// Filled returns all values as float64, with masked elements set to fill.
func (ms *Masked) Filled(fill float64) []float64 {
	fv := Floats(ms.Tensor)
	for i, m := range ms.Mask.Values {
		if m {
			fv[i] = fill
		}
	}
	return fv
}

// SetMaskNaN sets the mask to be true exactly where vals is NaN,
// for the first Len() elements, and returns the number of masked
// elements. The values are taken from vals and not from the tensor,
// which may be an integer type that cannot represent NaN.
func (ms *Masked) SetMaskNaN(vals []float64) int {
	n := min(ms.Len(), len(vals))
	nm := 0
	for i := range n {
		undef := math.IsNaN(vals[i])
		if undef {
			nm++
		}
		ms.Mask.Set1D(undef, i)
	}
	return nm
}

// SetShape sets the shape of both values and mask.
func (ms *Masked) SetShape(sizes ...int) {
	ms.Tensor.SetShape(sizes...)
	ms.Mask.SetShape(sizes...)
}

// SetReadOnly sets the read-only state of both values and mask.
func (ms *Masked) SetReadOnly(ro bool) {
	ms.Tensor.SetReadOnly(ro)
	ms.Mask.SetReadOnly(ro)
}

// SetZeros sets all values to zero and clears the mask.
func (ms *Masked) SetZeros() {
	ms.Tensor.SetZeros()
	ms.Mask.SetZeros()
}

// CopyFrom copies values from the other tensor, and its mask if it
// has one. Otherwise the mask is cleared over the copied range.
func (ms *Masked) CopyFrom(frm Tensor) {
	if fm, ok := frm.(*Masked); ok {
		ms.Tensor.CopyFrom(fm.Tensor)
		ms.Mask.CopyFrom(fm.Mask)
		return
	}
	ms.Tensor.CopyFrom(frm)
	n := min(ms.Mask.Len(), frm.Len())
	for i := range n {
		ms.Mask.Set1D(false, i)
	}
}

// Clone returns a deep copy of values and mask.
func (ms *Masked) Clone() Tensor {
	return &Masked{Tensor: ms.Tensor.Clone(), Mask: ms.Mask.Clone().(*Bool)}
}

// View returns a view sharing both values and mask.
func (ms *Masked) View() Tensor {
	return &Masked{Tensor: ms.Tensor.View(), Mask: ms.Mask.View().(*Bool)}
}

// String prints the values with "--" for masked elements.
func (ms *Masked) String() string {
	var b strings.Builder
	b.WriteString(ms.Label())
	b.WriteString(" [")
	n := min(ms.Len(), MaxSprintLength)
	for i := range n {
		if i > 0 {
			b.WriteString(", ")
		}
		if ms.Mask.Values[i] {
			b.WriteString("--")
		} else {
			b.WriteString(ms.String1D(i))
		}
	}
	if ms.Len() > n {
		b.WriteString(", ...")
	}
	b.WriteString("]")
	return b.String()
}
