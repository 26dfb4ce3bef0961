// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package records provides a record table: an immutable apache arrow
// record whose fields are the columns. Null entries are the mask of a
// column, and the field metadata carries its unit and description.
// Columns are read out as copies into [tensor.Tensor] values, and
// new records are built from tensors with [FromTensors].
package records

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"cogentcore.org/resample/base/metadata"
	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/units"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ErrUnsupportedType is returned for columns whose arrow type
// has no tensor representation.
var ErrUnsupportedType = errors.New("records: unsupported column type")

// Field metadata keys.
const (
	UnitKey      = "unit"
	UnitScaleKey = "unit_scale"
	DocKey       = "doc"
)

// Table is a record table backed by an arrow record.
type Table struct {
	rec arrow.Record

	// Meta is misc metadata for the table, such as its name.
	Meta metadata.Data
}

// New returns a new Table for the given record, which is retained
// until [Table.Release] is called.
func New(rec arrow.Record) *Table {
	rec.Retain()
	return &Table{rec: rec}
}

// Record returns the underlying arrow record.
func (rt *Table) Record() arrow.Record { return rt.rec }

// Release releases the underlying record.
func (rt *Table) Release() { rt.rec.Release() }

// Metadata returns the table metadata.
func (rt *Table) Metadata() *metadata.Data { return &rt.Meta }

// Schema returns the arrow schema of the record.
func (rt *Table) Schema() *arrow.Schema { return rt.rec.Schema() }

// NumRows returns the number of rows.
func (rt *Table) NumRows() int { return int(rt.rec.NumRows()) }

// NumColumns returns the number of columns.
func (rt *Table) NumColumns() int { return int(rt.rec.NumCols()) }

// ColumnName returns the name of given column.
func (rt *Table) ColumnName(i int) string { return rt.rec.ColumnName(i) }

// ColumnIndex returns the index for given column name, -1 if not found.
func (rt *Table) ColumnIndex(name string) int {
	idx := rt.rec.Schema().FieldIndices(name)
	if len(idx) == 0 {
		return -1
	}
	return idx[0]
}

// IsMasked returns true if any field of the record is nullable,
// making this a masked record table.
func (rt *Table) IsMasked() bool {
	for _, f := range rt.rec.Schema().Fields() {
		if f.Nullable {
			return true
		}
	}
	return false
}

// IsStructured returns true if the given column has a nested type
// such as a struct, list or map.
func (rt *Table) IsStructured(i int) bool {
	switch rt.rec.Column(i).DataType().ID() {
	case arrow.STRUCT, arrow.LIST, arrow.LARGE_LIST, arrow.FIXED_SIZE_LIST,
		arrow.MAP, arrow.SPARSE_UNION, arrow.DENSE_UNION:
		return true
	}
	return false
}

// Column returns a copy of the named column as a tensor.
// A nullable field gives a [tensor.Masked] tensor with nulls masked
// (and NaN values for float types). The unit and doc field metadata
// are set on the tensor.
func (rt *Table) Column(name string) (tensor.Tensor, error) {
	i := rt.ColumnIndex(name)
	if i < 0 {
		return nil, fmt.Errorf("records.Table: column %q not found", name)
	}
	return rt.ColumnByIndex(i)
}

// ColumnByIndex returns a copy of the column at the given index as a
// tensor. See [Table.Column].
func (rt *Table) ColumnByIndex(i int) (tensor.Tensor, error) {
	f := rt.rec.Schema().Field(i)
	vals, err := arrayToTensor(rt.rec.Column(i))
	if err != nil {
		return nil, fmt.Errorf("%w: column %q has type %s", err, f.Name, f.Type)
	}
	setFieldMetadata(vals, f)
	vals.Metadata().SetName(f.Name)
	if !f.Nullable {
		return vals, nil
	}
	ms := tensor.NewMasked(vals)
	arr := rt.rec.Column(i)
	for r := range arr.Len() {
		if arr.IsNull(r) {
			ms.Mask.Values[r] = true
			if tensor.IsFloat(vals.DataType()) {
				vals.SetFloat1D(math.NaN(), r)
			}
		}
	}
	return ms, nil
}

func arrayToTensor(arr arrow.Array) (tensor.Tensor, error) {
	switch a := arr.(type) {
	case *array.Float64:
		return tensor.NewNumberFromValues(append([]float64(nil), a.Float64Values()...)...), nil
	case *array.Float32:
		return tensor.NewNumberFromValues(append([]float32(nil), a.Float32Values()...)...), nil
	case *array.Int64:
		return tensor.NewNumberFromValues(append([]int64(nil), a.Int64Values()...)...), nil
	case *array.Int32:
		return tensor.NewNumberFromValues(append([]int32(nil), a.Int32Values()...)...), nil
	case *array.Uint8:
		return tensor.NewNumberFromValues(append([]uint8(nil), a.Uint8Values()...)...), nil
	case *array.Boolean:
		tsr := tensor.NewBool(a.Len())
		for i := range a.Len() {
			tsr.Values[i] = a.Value(i)
		}
		return tsr, nil
	case *array.String:
		tsr := tensor.NewString(a.Len())
		for i := range a.Len() {
			tsr.Values[i] = a.Value(i)
		}
		return tsr, nil
	}
	return nil, ErrUnsupportedType
}

func setFieldMetadata(tsr tensor.Tensor, f arrow.Field) {
	md := f.Metadata
	if i := md.FindKey(DocKey); i >= 0 {
		tsr.Metadata().SetDoc(md.Values()[i])
	}
	i := md.FindKey(UnitKey)
	if i < 0 {
		return
	}
	u, err := units.Parse(md.Values()[i])
	if err != nil {
		return
	}
	if j := md.FindKey(UnitScaleKey); j >= 0 {
		if sc, err := strconv.ParseFloat(md.Values()[j], 64); err == nil {
			u.Scale = sc
		}
	}
	tensor.SetUnit(tsr, u)
}

func fieldMetadata(tsr tensor.Tensor) arrow.Metadata {
	var keys, vals []string
	if doc := tsr.Metadata().GetDoc(); doc != "" {
		keys = append(keys, DocKey)
		vals = append(vals, doc)
	}
	if u, ok := tensor.UnitOf(tsr); ok {
		keys = append(keys, UnitKey, UnitScaleKey)
		vals = append(vals, u.Symbol, strconv.FormatFloat(u.Factor(), 'g', -1, 64))
	}
	return arrow.NewMetadata(keys, vals)
}

// FromTensors builds a new Table from the given named 1D tensors, which
// must all have the same length. [tensor.Masked] tensors become nullable
// fields with masked entries null. Units and docs go into field metadata.
// Arrow has no platform int type, so a [tensor.Int] column is stored as
// Int64 and reads back as a [tensor.Int64].
func FromTensors(names []string, cols []tensor.Tensor) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("records.FromTensors: %d names for %d columns", len(names), len(cols))
	}
	mem := memory.NewGoAllocator()
	fields := make([]arrow.Field, len(cols))
	arrs := make([]arrow.Array, len(cols))
	defer func() {
		for _, a := range arrs {
			if a != nil {
				a.Release()
			}
		}
	}()
	rows := -1
	for i, tsr := range cols {
		if tsr.NumDims() != 1 {
			return nil, fmt.Errorf("records.FromTensors: column %q has %d dimensions, only 1 is supported", names[i], tsr.NumDims())
		}
		if rows >= 0 && tsr.Len() != rows {
			return nil, fmt.Errorf("records.FromTensors: column %q has %d rows, expected %d", names[i], tsr.Len(), rows)
		}
		rows = tsr.Len()
		var valid []bool
		ms, masked := tensor.AsMasked(tsr)
		if masked {
			valid = make([]bool, rows)
			for r := range rows {
				valid[r] = !ms.IsMasked(r)
			}
		}
		arr, err := tensorToArray(mem, tensor.Unmasked(tsr), valid)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q has type %s", err, names[i], tsr.DataType())
		}
		arrs[i] = arr
		fields[i] = arrow.Field{Name: names[i], Type: arr.DataType(), Nullable: masked, Metadata: fieldMetadata(tsr)}
	}
	rows = max(rows, 0)
	rec := array.NewRecord(arrow.NewSchema(fields, nil), arrs, int64(rows))
	defer rec.Release()
	return New(rec), nil
}

func tensorToArray(mem memory.Allocator, tsr tensor.Tensor, valid []bool) (arrow.Array, error) {
	switch t := tsr.(type) {
	case *tensor.Float64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		b.AppendValues(t.Values, valid)
		return b.NewArray(), nil
	case *tensor.Float32:
		b := array.NewFloat32Builder(mem)
		defer b.Release()
		b.AppendValues(t.Values, valid)
		return b.NewArray(), nil
	case *tensor.Int:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		for i, v := range t.Values {
			if valid != nil && !valid[i] {
				b.AppendNull()
				continue
			}
			b.Append(int64(v))
		}
		return b.NewArray(), nil
	case *tensor.Int64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		b.AppendValues(t.Values, valid)
		return b.NewArray(), nil
	case *tensor.Int32:
		b := array.NewInt32Builder(mem)
		defer b.Release()
		b.AppendValues(t.Values, valid)
		return b.NewArray(), nil
	case *tensor.Byte:
		b := array.NewUint8Builder(mem)
		defer b.Release()
		b.AppendValues(t.Values, valid)
		return b.NewArray(), nil
	case *tensor.Bool:
		b := array.NewBooleanBuilder(mem)
		defer b.Release()
		b.AppendValues(t.Values, valid)
		return b.NewArray(), nil
	case *tensor.String:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		b.AppendValues(t.Values, valid)
		return b.NewArray(), nil
	}
	return nil, ErrUnsupportedType
}
