// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/resample/base/keylist"
	"cogentcore.org/resample/tensor"
)

// Columns is the underlying column list and number of rows for Table.
// Each column is a tensor whose outermost dimension is the row.
type Columns struct {
	keylist.List[string, tensor.Tensor]

	// number of rows, which is enforced to be the size of the
	// outermost row dimension of the column tensors.
	Rows int `edit:"-"`
}

// NewColumns returns a new Columns.
func NewColumns() *Columns {
	return &Columns{}
}

// SetNumRows sets the number of rows in the table, across all columns.
// It is safe to set this to 0. For incrementally growing tables (e.g., a log)
// it is best to first set the anticipated full size, which allocates the
// full amount of memory, and then set to 0 and grow incrementally.
func (cl *Columns) SetNumRows(rows int) *Columns {
	cl.Rows = rows
	for _, tsr := range cl.Values {
		sizes := tensor.ReplaceAxis(tsr.Shape().Sizes, 0, rows)
		tsr.SetShape(sizes...)
	}
	return cl
}

// checkColumn returns an error if the tensor cannot be a column
// with the current number of rows.
func (cl *Columns) checkColumn(name string, tsr tensor.Tensor) error {
	if tsr.NumDims() == 0 {
		return fmt.Errorf("table.Columns: column %q has no row dimension", name)
	}
	if cl.Len() > 0 && tsr.DimSize(0) != cl.Rows {
		return fmt.Errorf("table.Columns: column %q has %d rows, table has %d", name, tsr.DimSize(0), cl.Rows)
	}
	return nil
}

// AddColumn adds the given tensor (as a pointer) as a column,
// returning an error and not adding if the name is not unique,
// or if its row dimension does not match the existing columns.
// The first column added sets the number of rows.
func (cl *Columns) AddColumn(name string, tsr tensor.Tensor) error {
	if err := cl.checkColumn(name, tsr); err != nil {
		return err
	}
	if err := cl.Add(name, tsr); err != nil {
		return err
	}
	if cl.Len() == 1 {
		cl.Rows = tsr.DimSize(0)
	}
	tsr.Metadata().SetName(name)
	return nil
}

// InsertColumn inserts the given tensor as a column at given index,
// returning an error and not adding if the name is not unique,
// or if its row dimension does not match the existing columns.
func (cl *Columns) InsertColumn(idx int, name string, tsr tensor.Tensor) error {
	if err := cl.checkColumn(name, tsr); err != nil {
		return err
	}
	if err := cl.Insert(idx, name, tsr); err != nil {
		return err
	}
	if cl.Len() == 1 {
		cl.Rows = tsr.DimSize(0)
	}
	tsr.Metadata().SetName(name)
	return nil
}

// ReplaceColumn replaces the existing column of given name with the given
// tensor, at the same position. The new column may have a different number
// of rows only if it is the only column, or if all columns are replaced in
// turn: use [Columns.SetRows] after replacing every column.
func (cl *Columns) ReplaceColumn(name string, tsr tensor.Tensor) error {
	idx := cl.IndexByKey(name)
	if idx < 0 {
		return fmt.Errorf("table.Columns: column %q not found", name)
	}
	if tsr.NumDims() == 0 {
		return fmt.Errorf("table.Columns: column %q has no row dimension", name)
	}
	cl.Values[idx] = tsr
	tsr.Metadata().SetName(name)
	if cl.Len() == 1 {
		cl.Rows = tsr.DimSize(0)
	}
	return nil
}

// SetRows updates Rows from the columns, returning an error if they
// do not all have the same number of rows.
func (cl *Columns) SetRows() error {
	if cl.Len() == 0 {
		cl.Rows = 0
		return nil
	}
	rows := cl.Values[0].DimSize(0)
	for i, tsr := range cl.Values {
		if tsr.DimSize(0) != rows {
			return fmt.Errorf("table.Columns: column %q has %d rows, column %q has %d", cl.Keys[i], tsr.DimSize(0), cl.Keys[0], rows)
		}
	}
	cl.Rows = rows
	return nil
}

// ShallowCopy returns a new Columns list with the same column tensors.
func (cl *Columns) ShallowCopy() *Columns {
	cp := &Columns{Rows: cl.Rows}
	cp.List = *cl.List.Clone()
	return cp
}

// Clone returns a complete copy of this set of columns.
func (cl *Columns) Clone() *Columns {
	cp := NewColumns().SetNumRows(cl.Rows)
	for i, nm := range cl.Keys {
		tsr := cl.Values[i]
		cp.Add(nm, tsr.Clone())
	}
	return cp
}
