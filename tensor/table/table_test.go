// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"

	"cogentcore.org/resample/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable() *Table {
	dt := NewTable("spectrum")
	dt.AddColumn("wlen", tensor.NewFloat64FromValues(4000, 4200, 4400))
	dt.AddColumn("flux", tensor.NewFloat64FromValues(1, 2, 3))
	dt.AddColumn("ivar", tensor.NewFloat32(3))
	return dt
}

func TestAddColumns(t *testing.T) {
	dt := newTestTable()
	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, 3, dt.NumColumns())
	assert.Equal(t, "flux", dt.ColumnName(1))
	assert.Equal(t, 1, dt.ColumnIndex("flux"))
	assert.Equal(t, "flux", dt.Column("flux").Metadata().GetName())
	assert.Nil(t, dt.Column("none"))
	_, err := dt.ColumnTry("none")
	assert.Error(t, err)

	assert.Error(t, dt.AddColumn("flux", tensor.NewFloat64(3)))
	assert.Error(t, dt.AddColumn("short", tensor.NewFloat64(2)))

	ic := dt.AddIntColumn("count")
	assert.Equal(t, []int{3}, ic.Shape().Sizes)
	vc := AddColumn[float64](dt, "cells", 2)
	assert.Equal(t, []int{3, 2}, vc.Shape().Sizes)

	require.NoError(t, dt.InsertColumn(0, "first", tensor.NewStringFromValues("a", "b", "c")))
	assert.Equal(t, "first", dt.ColumnName(0))
	assert.True(t, dt.DeleteColumnName("first"))
	assert.False(t, dt.DeleteColumnName("first"))
	assert.Equal(t, "wlen", dt.ColumnName(0))
}

func TestSetNumRows(t *testing.T) {
	dt := newTestTable()
	AddColumn[float64](dt, "cells", 2)
	dt.SetNumRows(5)
	assert.Equal(t, 5, dt.NumRows())
	assert.Equal(t, []int{5, 2}, dt.Column("cells").Shape().Sizes)
	assert.Equal(t, 4400.0, dt.Column("wlen").Float1D(2))
	assert.Error(t, dt.IsValidRow(5))
	assert.NoError(t, dt.IsValidRow(4))
}

func TestShallowCopy(t *testing.T) {
	dt := newTestTable()
	cp := dt.ShallowCopy()
	assert.Equal(t, "spectrum", cp.Meta.GetName())
	assert.Same(t, dt.Column("flux"), cp.Column("flux"))

	require.NoError(t, cp.ReplaceColumn("flux", tensor.NewFloat64FromValues(9, 9, 9)))
	assert.Equal(t, 1, cp.ColumnIndex("flux"))
	assert.Equal(t, 1.0, dt.Column("flux").Float1D(0))
	assert.Equal(t, 9.0, cp.Column("flux").Float1D(0))
	assert.Error(t, cp.ReplaceColumn("none", tensor.NewFloat64(3)))

	cp.DeleteColumnName("ivar")
	assert.Equal(t, 3, dt.NumColumns())

	for _, nm := range []string{"wlen", "flux"} {
		cp.ReplaceColumn(nm, tensor.NewFloat64(2))
	}
	require.NoError(t, cp.Columns.SetRows())
	assert.Equal(t, 2, cp.NumRows())
	assert.Equal(t, 3, dt.NumRows())
}

func TestClone(t *testing.T) {
	dt := newTestTable()
	cl := dt.Clone()
	cl.Column("flux").SetFloat1D(7, 0)
	assert.Equal(t, 1.0, dt.Column("flux").Float1D(0))
	assert.Equal(t, 7.0, cl.Column("flux").Float1D(0))
	assert.Equal(t, 3, cl.NumRows())
	assert.Equal(t, dt.Columns.Keys, cl.Columns.Keys)
}
