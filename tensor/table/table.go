// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a column table: an ordered set of named
// [tensor.Tensor] columns aligned by a common outermost row dimension.
// Columns may be [tensor.Masked], and carry their own Name, Doc and
// Unit metadata.
package table

import (
	"fmt"
	"reflect"

	"cogentcore.org/resample/base/metadata"
	"cogentcore.org/resample/tensor"
)

// Table is a table of Tensor columns aligned by a common outermost row dimension.
// Use the [Table.Column] (by name) and [Table.ColumnByIndex] methods to obtain
// the column tensors.
type Table struct {
	// Columns has the list of column tensor data for this table.
	// Different tables can share the same column tensors, see [Table.ShallowCopy].
	Columns *Columns

	// Meta is misc metadata for the table. Use lower-case key names
	// following the struct tag convention:
	//	- name string = name of table
	//	- doc string = documentation, description
	//	- precision int = n for precision to write out floats in csv.
	Meta metadata.Data
}

// NewTable returns a new Table with its own (empty) set of Columns.
// Can pass an optional name which sets metadata.
func NewTable(name ...string) *Table {
	dt := &Table{}
	dt.Columns = NewColumns()
	if len(name) > 0 {
		dt.Meta.SetName(name[0])
	}
	return dt
}

// Metadata returns the table metadata.
func (dt *Table) Metadata() *metadata.Data { return &dt.Meta }

// IsValidRow returns error if the row is invalid, if error checking is needed.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.NumRows() {
		return fmt.Errorf("table.Table IsValidRow: row %d is out of valid range [0..%d]", row, dt.NumRows())
	}
	return nil
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return dt.Columns.Rows }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// Column returns the tensor with given column name.
// Returns nil if not found.
func (dt *Table) Column(name string) tensor.Tensor {
	return dt.Columns.At(name)
}

// ColumnTry is a version of [Table.Column] that also returns an error
// if the column name is not found, for cases when error is needed.
func (dt *Table) ColumnTry(name string) (tensor.Tensor, error) {
	cl := dt.Column(name)
	if cl != nil {
		return cl, nil
	}
	return nil, fmt.Errorf("table.Table: Column named %q not found", name)
}

// ColumnByIndex returns the tensor at the given column index.
func (dt *Table) ColumnByIndex(idx int) tensor.Tensor {
	return dt.Columns.Values[idx]
}

// ColumnName returns the name of given column
func (dt *Table) ColumnName(i int) string {
	return dt.Columns.Keys[i]
}

// ColumnIndex returns the index for given column name, -1 if not found.
func (dt *Table) ColumnIndex(name string) int {
	return dt.Columns.IndexByKey(name)
}

// AddColumn adds a new column to the table, of given type and column name
// (which must be unique). If no cellSizes are specified, it holds scalar values,
// otherwise the cells are n-dimensional tensors of given size.
func AddColumn[T tensor.DataTypes](dt *Table, name string, cellSizes ...int) tensor.Tensor {
	sz := append([]int{dt.Columns.Rows}, cellSizes...)
	tsr := tensor.New[T](sz...)
	dt.AddColumn(name, tsr)
	return tsr
}

// AddColumn adds the given tensor as a column to the table,
// returning an error and not adding if the name is not unique,
// or if its number of rows differs from the other columns.
func (dt *Table) AddColumn(name string, tsr tensor.Tensor) error {
	return dt.Columns.AddColumn(name, tsr)
}

// InsertColumn inserts the given tensor as a column to the table at given index,
// returning an error and not adding if the name is not unique.
func (dt *Table) InsertColumn(idx int, name string, tsr tensor.Tensor) error {
	return dt.Columns.InsertColumn(idx, name, tsr)
}

// ReplaceColumn replaces the column of given name with the given tensor,
// keeping its position.
func (dt *Table) ReplaceColumn(name string, tsr tensor.Tensor) error {
	return dt.Columns.ReplaceColumn(name, tsr)
}

// AddColumnOfType adds a new scalar column to the table, of given reflect type,
// column name (which must be unique),
// If no cellSizes are specified, it holds scalar values,
// otherwise the cells are n-dimensional tensors of given size.
// Supported types include string, bool, float32, float64, int, int64, int32, and byte.
func (dt *Table) AddColumnOfType(name string, typ reflect.Kind, cellSizes ...int) tensor.Tensor {
	sz := append([]int{dt.Columns.Rows}, cellSizes...)
	tsr := tensor.NewOfType(typ, sz...)
	dt.AddColumn(name, tsr)
	return tsr
}

// AddStringColumn adds a new String column with given name.
// If no cellSizes are specified, it holds scalar values,
// otherwise the cells are n-dimensional tensors of given size.
func (dt *Table) AddStringColumn(name string, cellSizes ...int) *tensor.String {
	return AddColumn[string](dt, name, cellSizes...).(*tensor.String)
}

// AddFloat64Column adds a new float64 column with given name.
// If no cellSizes are specified, it holds scalar values,
// otherwise the cells are n-dimensional tensors of given size.
func (dt *Table) AddFloat64Column(name string, cellSizes ...int) *tensor.Float64 {
	return AddColumn[float64](dt, name, cellSizes...).(*tensor.Float64)
}

// AddFloat32Column adds a new float32 column with given name.
// If no cellSizes are specified, it holds scalar values,
// otherwise the cells are n-dimensional tensors of given size.
func (dt *Table) AddFloat32Column(name string, cellSizes ...int) *tensor.Float32 {
	return AddColumn[float32](dt, name, cellSizes...).(*tensor.Float32)
}

// AddIntColumn adds a new int column with given name.
// If no cellSizes are specified, it holds scalar values,
// otherwise the cells are n-dimensional tensors of given size.
func (dt *Table) AddIntColumn(name string, cellSizes ...int) *tensor.Int {
	return AddColumn[int](dt, name, cellSizes...).(*tensor.Int)
}

// DeleteColumnName deletes column of given name.
// returns false if not found.
func (dt *Table) DeleteColumnName(name string) bool {
	return dt.Columns.DeleteByKey(name)
}

// DeleteColumnIndex deletes column within the index range [i:j].
func (dt *Table) DeleteColumnIndex(i, j int) {
	dt.Columns.DeleteByIndex(i, j)
}

// DeleteAll deletes all columns, does full reset.
func (dt *Table) DeleteAll() {
	dt.Columns.Reset()
	dt.Columns.Rows = 0
}

// SetNumRows sets the number of rows in the table, across all columns.
func (dt *Table) SetNumRows(rows int) *Table {
	dt.Columns.SetNumRows(rows)
	return dt
}

// ShallowCopy returns a new Table with its own list of Columns holding
// the same column tensors, so that columns can be added, removed or
// replaced without affecting this table or duplicating any data.
func (dt *Table) ShallowCopy() *Table {
	cp := &Table{Columns: dt.Columns.ShallowCopy()}
	cp.Meta.Copy(dt.Meta)
	return cp
}

// Clone returns a complete copy of this table, including cloning
// the underlying Columns tensors.
func (dt *Table) Clone() *Table {
	cp := &Table{}
	cp.Columns = dt.Columns.Clone()
	cp.Meta.Copy(dt.Meta)
	return cp
}
