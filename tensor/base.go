// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"errors"
	"reflect"

	"cogentcore.org/resample/base/metadata"
	"cogentcore.org/resample/base/slicesx"
)

// ErrReadOnly is the panic value for an assignment to a read-only tensor.
var ErrReadOnly = errors.New("tensor: assignment to read-only tensor")

// Base is the base Tensor implementation for given type.
type Base[T any] struct {

	// shape contains the N-dimensional shape and indexing functionality.
	shape Shape

	// Values is a flat 1D slice of the underlying data.
	Values []T

	// Meta data is used extensively for Name, Doc and Unit of columns.
	Meta metadata.Data

	// readOnly marks the values as not settable.
	readOnly bool
}

// Metadata returns the metadata for this tensor.
func (tsr *Base[T]) Metadata() *metadata.Data { return &tsr.Meta }

// Shape returns a pointer to the shape that fully parametrizes the tensor shape.
func (tsr *Base[T]) Shape() *Shape { return &tsr.shape }

// Len returns the number of elements in the tensor (product of shape dimensions).
func (tsr *Base[T]) Len() int { return tsr.shape.Len() }

// NumDims returns the total number of dimensions.
func (tsr *Base[T]) NumDims() int { return tsr.shape.NumDims() }

// DimSize returns size of given dimension.
func (tsr *Base[T]) DimSize(dim int) int { return tsr.shape.DimSize(dim) }

// DataType returns the type of the data elements in the tensor.
func (tsr *Base[T]) DataType() reflect.Kind {
	var v T
	return reflect.TypeOf(v).Kind()
}

// IsReadOnly returns true if values of this tensor cannot be set.
func (tsr *Base[T]) IsReadOnly() bool { return tsr.readOnly }

// SetReadOnly sets whether values of this tensor can be set.
func (tsr *Base[T]) SetReadOnly(ro bool) { tsr.readOnly = ro }

func (tsr *Base[T]) checkWrite() {
	if tsr.readOnly {
		panic(ErrReadOnly)
	}
}

// Value returns value at given tensor index.
func (tsr *Base[T]) Value(i ...int) T { return tsr.Values[tsr.shape.IndexTo1D(i...)] }

// Value1D returns value at given 1D (flat) tensor index.
func (tsr *Base[T]) Value1D(i int) T { return tsr.Values[i] }

// Set sets the value at given tensor index.
func (tsr *Base[T]) Set(val T, i ...int) {
	tsr.checkWrite()
	tsr.Values[tsr.shape.IndexTo1D(i...)] = val
}

// Set1D sets the value at given 1D (flat) tensor index.
func (tsr *Base[T]) Set1D(val T, i int) {
	tsr.checkWrite()
	tsr.Values[i] = val
}

// SetShape sets the dimension sizes of the tensor, and resizes
// backing storage appropriately, retaining all existing data that fits.
func (tsr *Base[T]) SetShape(sizes ...int) {
	tsr.shape.SetShape(sizes...)
	tsr.Values = slicesx.SetLength(tsr.Values, tsr.Len())
}

// Label satisfies the core.Labeler interface for a summary description of the tensor.
func (tsr *Base[T]) Label() string {
	nm := tsr.Meta.GetName()
	if nm != "" {
		return nm + " " + tsr.shape.String()
	}
	return "Tensor " + tsr.shape.String()
}

// SetZeros is a convenience function initialize all values to the
// zero value of the type.
func (tsr *Base[T]) SetZeros() {
	tsr.checkWrite()
	clear(tsr.Values)
}

// viewImpl returns a new Base sharing the same Values slice.
// The view is writable unless this tensor is read-only.
func (tsr *Base[T]) viewImpl() Base[T] {
	vw := Base[T]{Values: tsr.Values, readOnly: tsr.readOnly}
	vw.shape.CopyFrom(&tsr.shape)
	vw.Meta.Copy(tsr.Meta)
	return vw
}

// cloneImpl returns a new Base with its own copy of the values.
// A clone is always writable.
func (tsr *Base[T]) cloneImpl() Base[T] {
	cl := Base[T]{Values: make([]T, len(tsr.Values))}
	copy(cl.Values, tsr.Values)
	cl.shape.CopyFrom(&tsr.shape)
	cl.Meta.Copy(tsr.Meta)
	return cl
}
