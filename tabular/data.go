// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabular

import (
	"fmt"
	"reflect"

	"cogentcore.org/resample/base/keylist"
	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/tensor/records"
	"cogentcore.org/resample/tensor/table"
	"github.com/apache/arrow-go/v18/arrow"
)

// Data is a tabular object: an ordered set of named columns.
// It is implemented by exactly four types: [*table.Table] (column table),
// [*records.Table] (record table, masked if any field is nullable),
// [*Arrays] (independently named arrays) and [*Columns] (the plain
// column mapping).
type Data interface {
	// NumColumns returns the number of columns.
	NumColumns() int

	// ColumnName returns the name of the column at the given index.
	ColumnName(i int) string
}

var (
	_ Data = (*table.Table)(nil)
	_ Data = (*records.Table)(nil)
	_ Data = (*Arrays)(nil)
	_ Data = (*Columns)(nil)
)

// Columns is the uniform mapping from column name to tensor.
type Columns struct {
	keylist.List[string, tensor.Tensor]
}

// NewColumns returns a new empty Columns.
func NewColumns() *Columns {
	return &Columns{}
}

// NumColumns returns the number of columns.
func (cl *Columns) NumColumns() int {
	if cl == nil {
		return 0
	}
	return cl.Len()
}

// ColumnName returns the name of the column at the given index.
func (cl *Columns) ColumnName(i int) string { return cl.Keys[i] }

// Column returns the named column, or nil if not found.
func (cl *Columns) Column(name string) tensor.Tensor { return cl.At(name) }

// Arrays is a set of independently named arrays, each of which is
// either a [tensor.Tensor] or a Go slice of a supported element type:
// float64, float32, int, int64, int32, byte, string or bool.
type Arrays struct {
	keylist.List[string, any]
}

// NewArrays returns a new empty Arrays.
func NewArrays() *Arrays {
	return &Arrays{}
}

// NumColumns returns the number of arrays.
func (ar *Arrays) NumColumns() int {
	if ar == nil {
		return 0
	}
	return ar.Len()
}

// ColumnName returns the name of the array at the given index.
func (ar *Arrays) ColumnName(i int) string { return ar.Keys[i] }

// isStructured returns true for values that are themselves tabular.
func isStructured(v any) bool {
	switch v.(type) {
	case Data, *table.Columns, arrow.Record:
		return true
	}
	return false
}

// AsTensor returns the given value as a tensor: tensors are returned
// as-is, and supported slices are copied into a new 1D tensor.
// Tabular values are rejected with [ErrUsage], and any other value
// with [ErrValueKind].
func AsTensor(v any) (tensor.Tensor, error) {
	if isStructured(v) {
		return nil, fmt.Errorf("%w: cannot use structured value of type %T as an array", ErrUsage, v)
	}
	switch x := v.(type) {
	case tensor.Tensor:
		return x, nil
	case []float64:
		return tensor.NewNumberFromValues(append([]float64(nil), x...)...), nil
	case []float32:
		return tensor.NewNumberFromValues(append([]float32(nil), x...)...), nil
	case []int:
		return tensor.NewNumberFromValues(append([]int(nil), x...)...), nil
	case []int64:
		return tensor.NewNumberFromValues(append([]int64(nil), x...)...), nil
	case []int32:
		return tensor.NewNumberFromValues(append([]int32(nil), x...)...), nil
	case []byte:
		return tensor.NewNumberFromValues(append([]byte(nil), x...)...), nil
	case []string:
		return tensor.NewStringFromValues(append([]string(nil), x...)...), nil
	case []bool:
		return tensor.NewBoolFromValues(append([]bool(nil), x...)...), nil
	}
	return nil, fmt.Errorf("%w: unsupported array type %T", ErrValueKind, v)
}

// EmptyLike returns a new tensor with the given sizes and element kind,
// with the Name, Doc and Unit metadata of like (which may be nil),
// and a mask if masked is true. Values are zero and the mask is clear.
func EmptyLike(like tensor.Tensor, sizes []int, kind reflect.Kind, masked bool) (tensor.Tensor, error) {
	if !tensor.IsSupported(kind) {
		return nil, fmt.Errorf("%w: unsupported element type %s", ErrValueKind, kind)
	}
	tsr := tensor.NewOfType(kind, sizes...)
	if like != nil {
		tsr.Metadata().Copy(*like.Metadata())
	}
	if masked {
		return tensor.NewMasked(tsr), nil
	}
	return tsr, nil
}

// TabularLike returns a tabular object in the same representation
// family as like, holding the given columns in order.
// A column table keeps the table metadata of like, and a record table
// is rebuilt from the columns, which must then be 1D. For named arrays
// and column mappings the columns themselves are returned.
func TabularLike(like Data, cols *Columns) (Data, error) {
	switch lk := like.(type) {
	case *table.Table:
		dt := table.NewTable()
		dt.Meta.Copy(lk.Meta)
		for i, nm := range cols.Keys {
			if err := dt.AddColumn(nm, cols.Values[i]); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
			}
		}
		return dt, nil
	case *records.Table:
		rt, err := records.FromTensors(cols.Keys, cols.Values)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
		}
		rt.Meta.Copy(lk.Meta)
		return rt, nil
	}
	return cols, nil
}
