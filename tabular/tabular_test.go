// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabular

import (
	"reflect"
	"testing"

	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/tensor/records"
	"cogentcore.org/resample/tensor/table"
	"cogentcore.org/resample/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable() *table.Table {
	dt := table.NewTable("spectrum")
	dt.Meta.SetDoc("test spectrum")
	wlen := tensor.NewFloat64FromValues(4000, 4200, 4400, 4600)
	tensor.SetUnit(wlen, units.New("Angstrom", 1e-10))
	flux := tensor.NewMasked(tensor.NewFloat32(4))
	tensor.SetFloats(flux, []float64{1, 2, 3, 4})
	flux.SetMasked(true, 2)
	dt.AddColumn("wlen", wlen)
	dt.AddColumn("flux", flux)
	dt.AddColumn("n", tensor.NewNumberFromValues(1, 2, 3, 4))
	return dt
}

func TestReadOnlyTable(t *testing.T) {
	dt := newTestTable()
	pr, err := Prepare(ReadOnly, []Data{dt}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"wlen", "flux", "n"}, pr.Columns.Keys)
	wlen := pr.Columns.Column("wlen")
	assert.True(t, wlen.IsReadOnly())
	assert.PanicsWithValue(t, tensor.ErrReadOnly, func() { wlen.SetFloat1D(1, 0) })
	assert.False(t, dt.Column("wlen").IsReadOnly())
	assert.True(t, tensor.IsMaskedTensor(pr.Columns.Column("flux")))

	// views see updates through the original
	dt.Column("wlen").SetFloat1D(3900, 0)
	assert.Equal(t, 3900.0, wlen.Float1D(0))

	res, err := pr.Result()
	require.NoError(t, err)
	assert.Same(t, dt, res)
}

func TestInPlaceTable(t *testing.T) {
	dt := newTestTable()
	pr, err := Prepare(InPlace.Select("n"), []Data{dt}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"n"}, pr.Columns.Keys)
	pr.Columns.Column("n").SetFloat1D(10, 3)
	assert.Equal(t, 10.0, dt.Column("n").Float1D(3))

	res, err := pr.Result()
	require.NoError(t, err)
	assert.Same(t, dt, res)
}

func TestAllocateTable(t *testing.T) {
	dt := newTestTable()
	pr, err := Prepare(Allocate(3).Select("wlen", "flux"), []Data{dt}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"wlen", "flux"}, pr.Columns.Keys)

	wlen := pr.Columns.Column("wlen")
	assert.Equal(t, []int{3}, wlen.Shape().Sizes)
	assert.Equal(t, reflect.Float64, wlen.DataType())
	assert.False(t, tensor.IsMaskedTensor(wlen))
	u, ok := tensor.UnitOf(wlen)
	require.True(t, ok)
	assert.Equal(t, "Angstrom", u.Symbol)

	flux, ok := tensor.AsMasked(pr.Columns.Column("flux"))
	require.True(t, ok)
	assert.Equal(t, reflect.Float32, flux.DataType())
	assert.False(t, flux.AnyMasked())

	res, err := pr.Result()
	require.NoError(t, err)
	out, ok := res.(*table.Table)
	require.True(t, ok)
	assert.NotSame(t, dt, out)
	assert.Equal(t, 2, out.NumColumns())
	assert.Equal(t, 3, out.NumRows())
	assert.Equal(t, "test spectrum", out.Meta.GetDoc())
	assert.Equal(t, 3, dt.NumColumns())
	assert.Equal(t, 4, dt.NumRows())

	pr, err = Prepare(Allocate(2).WithMask(), []Data{dt}, nil)
	require.NoError(t, err)
	for _, col := range pr.Columns.Values {
		assert.True(t, tensor.IsMaskedTensor(col))
	}
}

func TestNamedArrays(t *testing.T) {
	ar := NewArrays()
	xs := []float64{1, 2, 3}
	ar.Set("x", xs)
	ar.Set("y", tensor.NewFloat64FromValues(4, 5, 6))

	pr, err := Prepare(ReadOnly, nil, ar)
	require.NoError(t, err)
	x := pr.Columns.Column("x")
	assert.True(t, x.IsReadOnly())
	assert.Equal(t, xs, tensor.Floats(x))
	xs[0] = 100
	assert.Equal(t, 1.0, x.Float1D(0))

	res, err := pr.Result()
	require.NoError(t, err)
	assert.Same(t, pr.Columns, res)

	// a single *Arrays argument is treated as named arrays
	pr, err = Prepare(Allocate(5), []Data{ar}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, pr.Columns.Column("y").Shape().Sizes)

	_, err = Prepare(InPlace, nil, ar)
	assert.ErrorIs(t, err, ErrUsage)

	pr, err = Prepare(InPlace.Select("y"), nil, ar)
	require.NoError(t, err)
	pr.Columns.Column("y").SetFloat1D(7, 0)
	assert.Equal(t, 7.0, ar.At("y").(tensor.Tensor).Float1D(0))

	cols := NewColumns()
	cols.Set("y", tensor.NewFloat64FromValues(1, 2))
	pr, err = Prepare(ReadOnly, []Data{cols}, nil)
	require.NoError(t, err)
	res, err = pr.Result()
	require.NoError(t, err)
	_, ok := res.(*Columns)
	assert.True(t, ok)
}

func TestPrepareErrors(t *testing.T) {
	dt := newTestTable()
	ar := NewArrays()
	ar.Set("x", []float64{1, 2})

	_, err := Prepare(ReadOnly, []Data{dt, dt}, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = Prepare(ReadOnly, []Data{dt}, ar)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = Prepare(Allocate(), []Data{dt}, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = Prepare(ReadOnly.Select("none"), []Data{dt}, nil)
	assert.ErrorIs(t, err, ErrUsage)

	ro := tensor.ReadOnlyView(tensor.NewFloat64(2))
	ar.Set("ro", ro)
	_, err = Prepare(InPlace.Select("ro"), nil, ar)
	assert.ErrorIs(t, err, ErrUsage)

	ar.Set("dt", dt)
	_, err = Prepare(ReadOnly.Select("dt"), nil, ar)
	assert.ErrorIs(t, err, ErrUsage)

	ar.Set("m", map[string]int{})
	_, err = Prepare(ReadOnly.Select("m"), nil, ar)
	assert.ErrorIs(t, err, ErrValueKind)
}

func TestRecords(t *testing.T) {
	dt := newTestTable()
	rt, err := records.FromTensors(dt.Columns.Keys, dt.Columns.Values)
	require.NoError(t, err)
	defer rt.Release()
	rt.Meta.SetDoc("records")

	pr, err := Prepare(ReadOnly.Select("flux"), []Data{rt}, nil)
	require.NoError(t, err)
	flux, ok := tensor.AsMasked(pr.Columns.Column("flux"))
	require.True(t, ok)
	assert.True(t, flux.IsReadOnly())
	assert.True(t, flux.IsMasked(2))

	_, err = Prepare(InPlace, []Data{rt}, nil)
	assert.ErrorIs(t, err, ErrUsage)

	pr, err = Prepare(Allocate(2), []Data{rt}, nil)
	require.NoError(t, err)
	assert.True(t, tensor.IsMaskedTensor(pr.Columns.Column("flux")))
	assert.False(t, tensor.IsMaskedTensor(pr.Columns.Column("wlen")))
	res, err := pr.Result()
	require.NoError(t, err)
	out, ok := res.(*records.Table)
	require.True(t, ok)
	defer out.Release()
	assert.Equal(t, 2, out.NumRows())
	assert.Equal(t, 3, out.NumColumns())
	assert.Equal(t, "records", out.Meta.GetDoc())
}

func TestTabularLike(t *testing.T) {
	cols := NewColumns()
	cols.Set("x", tensor.NewFloat64FromValues(1, 2))
	cols.Set("y", tensor.NewFloat64FromValues(3, 4))
	res, err := TabularLike(newTestTable(), cols)
	require.NoError(t, err)
	dt := res.(*table.Table)
	assert.Equal(t, "x", dt.ColumnName(0))
	assert.Equal(t, "spectrum", dt.Meta.GetName())

	cols.Set("z", tensor.NewFloat64(3))
	_, err = TabularLike(newTestTable(), cols)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAsTensor(t *testing.T) {
	tsr, err := AsTensor([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, reflect.Int, tsr.DataType())
	tsr, err = AsTensor([]string{"a"})
	require.NoError(t, err)
	assert.True(t, tsr.IsString())
	_, err = AsTensor(NewColumns())
	assert.ErrorIs(t, err, ErrUsage)
}
