// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"reflect"

	"cogentcore.org/resample/base/metadata"
	"golang.org/x/exp/constraints"
)

// DataTypes are the primary tensor data types with specific support.
// bool is used for masks.
type DataTypes interface {
	string | bool | float32 | float64 | int | int64 | int32 | byte
}

// Numbers are the element types supported by the [Number] tensor.
type Numbers interface {
	constraints.Integer | constraints.Float
}

// Tensor is the interface for n-dimensional tensors.
// Per C / Go / Python conventions, indexes are Row-Major, ordered from
// outer to inner left-to-right, so the inner-most is right-most.
// It is implemented by the [Number], [String] and [Bool] types, and
// by the [Masked] wrapper that pairs any Tensor with a validity mask.
// Float values use NaN internally to indicate undefined values.
type Tensor interface {
	fmt.Stringer

	// Label returns a summary description of the tensor.
	Label() string

	// Shape returns a pointer to the Shape that fully parametrizes
	// the tensor shape.
	Shape() *Shape

	// SetShape sets the sizes parameters of the tensor, and resizes
	// backing storage appropriately, retaining all existing data that fits.
	SetShape(sizes ...int)

	// Len returns the number of elements in the tensor,
	// which is the product of all shape dimensions.
	Len() int

	// NumDims returns the total number of dimensions.
	NumDims() int

	// DimSize returns size of given dimension.
	DimSize(dim int) int

	// DataType returns the type of the data elements in the tensor.
	DataType() reflect.Kind

	// IsString returns true if the data type is a String; otherwise it is numeric.
	IsString() bool

	// Float returns the value of given n-dimensional index (matching Shape) as a float64.
	Float(i ...int) float64

	// SetFloat sets the value of given n-dimensional index (matching Shape) as a float64.
	SetFloat(val float64, i ...int)

	// Float1D returns the value of given 1-dimensional index (0-Len()-1) as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value of given 1-dimensional index (0-Len()-1) as a float64.
	// Integer tensors store 0 for NaN and infinite values.
	SetFloat1D(val float64, i int)

	// String1D returns the value of given 1-dimensional index (0-Len()-1) as a string.
	String1D(i int) string

	// SetString1D sets the value of given 1-dimensional index (0-Len()-1) as a string.
	SetString1D(val string, i int)

	// SetZeros is a simple convenience function initialize all values to the
	// zero value of the type (empty strings for string type).
	SetZeros()

	// Clone clones this tensor, creating a duplicate copy of itself with its
	// own separate memory representation of all the values.
	Clone() Tensor

	// View clones this tensor, *keeping the same underlying Values slice*,
	// instead of making a copy like [Tensor.Clone] does. The view has its
	// own shape and metadata.
	View() Tensor

	// CopyFrom copies all values from other tensor into this tensor, with an
	// optimized implementation if the other tensor is of the same type, and
	// otherwise it goes through the appropriate standard type (Float, String).
	// The number of values copied is the minimum of the two lengths.
	CopyFrom(from Tensor)

	// IsReadOnly returns true if values of this tensor cannot be set.
	IsReadOnly() bool

	// SetReadOnly sets whether values of this tensor can be set.
	// Setting a value on a read-only tensor panics with [ErrReadOnly].
	SetReadOnly(ro bool)

	// Metadata returns the metadata for this tensor, which holds
	// the Name, Doc and Unit of a column.
	Metadata() *metadata.Data
}

// New returns a new n-dimensional tensor of given value type
// with the given sizes per dimension (shape).
func New[T DataTypes](sizes ...int) Tensor {
	var v T
	switch any(v).(type) {
	case string:
		return NewString(sizes...)
	case bool:
		return NewBool(sizes...)
	case float64:
		return NewNumber[float64](sizes...)
	case float32:
		return NewNumber[float32](sizes...)
	case int:
		return NewNumber[int](sizes...)
	case int64:
		return NewNumber[int64](sizes...)
	case int32:
		return NewNumber[int32](sizes...)
	case byte:
		return NewNumber[byte](sizes...)
	default:
		panic("tensor.New: unexpected error: type not supported")
	}
}

// NewOfType returns a new n-dimensional tensor of given reflect.Kind type
// with the given sizes per dimension (shape).
// Supported types are string, bool, float32, float64, int, int64, int32, and byte.
// Use [IsSupported] to check a kind before calling.
func NewOfType(typ reflect.Kind, sizes ...int) Tensor {
	switch typ {
	case reflect.String:
		return NewString(sizes...)
	case reflect.Bool:
		return NewBool(sizes...)
	case reflect.Float64:
		return NewNumber[float64](sizes...)
	case reflect.Float32:
		return NewNumber[float32](sizes...)
	case reflect.Int:
		return NewNumber[int](sizes...)
	case reflect.Int64:
		return NewNumber[int64](sizes...)
	case reflect.Int32:
		return NewNumber[int32](sizes...)
	case reflect.Uint8:
		return NewNumber[byte](sizes...)
	default:
		panic(fmt.Sprintf("tensor.NewOfType: type not supported: %v", typ))
	}
}

// IsSupported returns true if [NewOfType] supports the given kind.
func IsSupported(typ reflect.Kind) bool {
	switch typ {
	case reflect.String, reflect.Bool, reflect.Float64, reflect.Float32,
		reflect.Int, reflect.Int64, reflect.Int32, reflect.Uint8:
		return true
	}
	return false
}

// IsNumeric returns true if the given kind is an integer or float type.
func IsNumeric(typ reflect.Kind) bool {
	return (typ >= reflect.Int && typ <= reflect.Uint64) || IsFloat(typ)
}

// IsFloat returns true if the given kind is a float type.
func IsFloat(typ reflect.Kind) bool {
	return typ == reflect.Float32 || typ == reflect.Float64
}

// Floats returns all of the values of the tensor as a new slice of float64.
func Floats(tsr Tensor) []float64 {
	n := tsr.Len()
	fv := make([]float64, n)
	for i := range n {
		fv[i] = tsr.Float1D(i)
	}
	return fv
}

// SetFloats sets the values of the tensor from the given float64 values,
// up to the minimum of the two lengths.
func SetFloats(tsr Tensor, vals []float64) {
	n := min(tsr.Len(), len(vals))
	for i := range n {
		tsr.SetFloat1D(vals[i], i)
	}
}

// ReadOnlyView returns a read-only view onto the same values as the
// given tensor, leaving the given tensor itself writable.
func ReadOnlyView(tsr Tensor) Tensor {
	vw := tsr.View()
	vw.SetReadOnly(true)
	return vw
}
