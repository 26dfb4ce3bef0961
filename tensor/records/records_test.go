// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package records

import (
	"bytes"
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/units"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *Table {
	wlen := tensor.NewFloat64FromValues(4000, 4200, 4400)
	tensor.SetUnit(wlen, units.New("Angstrom", 1e-10))
	wlen.Metadata().SetDoc("wavelength")
	flux := tensor.NewMasked(tensor.NewFloat32(3))
	flux.SetFloat1D(1.5, 0)
	flux.SetMasked(true, 1)
	n := tensor.NewNumberFromValues(1, 2, 3)
	rt, err := FromTensors([]string{"wlen", "flux", "n"}, []tensor.Tensor{wlen, flux, n})
	require.NoError(t, err)
	return rt
}

func TestFromTensors(t *testing.T) {
	rt := newTestTable(t)
	defer rt.Release()
	assert.Equal(t, 3, rt.NumRows())
	assert.Equal(t, 3, rt.NumColumns())
	assert.Equal(t, "flux", rt.ColumnName(1))
	assert.Equal(t, 2, rt.ColumnIndex("n"))
	assert.Equal(t, -1, rt.ColumnIndex("none"))
	assert.True(t, rt.IsMasked())
	assert.False(t, rt.IsStructured(0))

	wlen, err := rt.Column("wlen")
	require.NoError(t, err)
	assert.False(t, tensor.IsMaskedTensor(wlen))
	assert.Equal(t, []float64{4000, 4200, 4400}, tensor.Floats(wlen))
	assert.Equal(t, "wavelength", wlen.Metadata().GetDoc())
	u, ok := tensor.UnitOf(wlen)
	require.True(t, ok)
	assert.Equal(t, units.New("Angstrom", 1e-10), u)

	flux, err := rt.Column("flux")
	require.NoError(t, err)
	ms, ok := tensor.AsMasked(flux)
	require.True(t, ok)
	assert.Equal(t, reflect.Float32, ms.DataType())
	assert.Equal(t, []bool{false, true, false}, ms.Mask.Values)
	assert.Equal(t, 1.5, ms.Float1D(0))
	assert.True(t, math.IsNaN(ms.Float1D(1)))

	n, err := rt.Column("n")
	require.NoError(t, err)
	// int columns are stored as arrow Int64
	assert.Equal(t, reflect.Int64, n.DataType())

	_, err = rt.Column("none")
	assert.Error(t, err)

	_, err = FromTensors([]string{"a", "b"}, []tensor.Tensor{tensor.NewFloat64(2), tensor.NewFloat64(3)})
	assert.Error(t, err)
	_, err = FromTensors([]string{"a"}, []tensor.Tensor{tensor.NewFloat64(2, 2)})
	assert.Error(t, err)
}

func TestStructured(t *testing.T) {
	mem := memory.NewGoAllocator()
	st := arrow.StructOf(arrow.Field{Name: "a", Type: arrow.PrimitiveTypes.Float64})
	sb := array.NewStructBuilder(mem, st)
	defer sb.Release()
	sb.Append(true)
	sb.FieldBuilder(0).(*array.Float64Builder).Append(1)
	arr := sb.NewArray()
	defer arr.Release()
	schema := arrow.NewSchema([]arrow.Field{{Name: "s", Type: st}}, nil)
	rec := array.NewRecord(schema, []arrow.Array{arr}, 1)
	defer rec.Release()

	rt := New(rec)
	defer rt.Release()
	assert.True(t, rt.IsStructured(0))
	_, err := rt.Column("s")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestIPC(t *testing.T) {
	rt := newTestTable(t)
	defer rt.Release()
	var b bytes.Buffer
	require.NoError(t, rt.WriteIPC(&b))
	rd, err := ReadIPC(&b)
	require.NoError(t, err)
	defer rd.Release()
	assert.Equal(t, 3, rd.NumRows())
	flux, err := rd.Column("flux")
	require.NoError(t, err)
	ms, ok := tensor.AsMasked(flux)
	require.True(t, ok)
	assert.True(t, ms.IsMasked(1))
	wlen, err := rd.Column("wlen")
	require.NoError(t, err)
	u, ok := tensor.UnitOf(wlen)
	assert.True(t, ok)
	assert.Equal(t, "Angstrom", u.Symbol)

	fn := filepath.Join(t.TempDir(), "spectrum.arrow.lz4")
	require.NoError(t, rt.SaveIPC(fn))
	ro, err := OpenIPC(fn)
	require.NoError(t, err)
	defer ro.Release()
	assert.Equal(t, []string{"wlen", "flux", "n"}, []string{ro.ColumnName(0), ro.ColumnName(1), ro.ColumnName(2)})
}
