// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVTableHeaders(t *testing.T) {
	csv := "#wlen{Angstrom},#flux,|n\n4000,1.5,1\n4200,,2\n4400,2.5,3\n"
	dt := NewTable()
	require.NoError(t, dt.ReadCSV(strings.NewReader(csv), tensor.Comma))
	assert.Equal(t, 3, dt.NumRows())
	assert.Equal(t, []string{"wlen", "flux", "n"}, dt.Columns.Keys)
	assert.Equal(t, reflect.Int, dt.Column("n").DataType())

	u, ok := tensor.UnitOf(dt.Column("wlen"))
	assert.True(t, ok)
	assert.Equal(t, units.New("Angstrom", 1e-10), u)

	flux, ok := tensor.AsMasked(dt.Column("flux"))
	require.True(t, ok)
	assert.Equal(t, []bool{false, true, false}, flux.Mask.Values)
	assert.Equal(t, 2.5, flux.Float1D(2))
	assert.False(t, tensor.IsMaskedTensor(dt.Column("wlen")))
}

func TestReadCSVInferred(t *testing.T) {
	csv := "wlen\tflux\tname\n4000\t1.5\ta\n4200\t2\tb\n4400\t2.5\tc\n"
	dt := NewTable()
	require.NoError(t, dt.ReadCSV(strings.NewReader(csv), tensor.Detect))
	assert.Equal(t, reflect.Int, dt.Column("wlen").DataType())
	assert.Equal(t, reflect.Float64, dt.Column("flux").DataType())
	assert.Equal(t, reflect.String, dt.Column("name").DataType())
	assert.Equal(t, "b", dt.Column("name").String1D(1))
}

func TestWriteCSV(t *testing.T) {
	dt := NewTable()
	wlen := tensor.NewFloat64FromValues(4000, 4200)
	tensor.SetUnit(wlen, units.New("Angstrom", 1e-10))
	dt.AddColumn("wlen", wlen)
	flux := tensor.NewMasked(tensor.NewFloat64FromValues(1.5, math.NaN()))
	flux.SetMasked(true, 1)
	dt.AddColumn("flux", flux)

	var b bytes.Buffer
	require.NoError(t, dt.WriteCSV(&b, tensor.Comma, Headers))
	assert.Equal(t, "#wlen{Angstrom},#flux\n4000,1.5\n4200,\n", b.String())

	rt := NewTable()
	require.NoError(t, rt.ReadCSV(&b, tensor.Comma))
	rf, ok := tensor.AsMasked(rt.Column("flux"))
	require.True(t, ok)
	assert.Equal(t, []bool{false, true}, rf.Mask.Values)

	AddColumn[float64](dt, "cells", 2)
	assert.Error(t, dt.WriteCSV(&b, tensor.Comma, Headers))
}

func TestCSVFile(t *testing.T) {
	dt := NewTable()
	dt.AddColumn("wlen", tensor.NewFloat64FromValues(4000, 4200))
	fn := filepath.Join(t.TempDir(), "spectrum.csv.gz")
	require.NoError(t, dt.SaveCSV(fn, tensor.Comma, Headers))
	rt := NewTable()
	require.NoError(t, rt.OpenCSV(fn, tensor.Comma))
	assert.Equal(t, []float64{4000, 4200}, tensor.Floats(rt.Column("wlen")))
}

func TestJSON(t *testing.T) {
	dt := NewTable("spectrum")
	wlen := tensor.NewFloat64FromValues(4000, 4200, 4400)
	tensor.SetUnit(wlen, units.New("Angstrom", 1e-10))
	wlen.Metadata().SetDoc("wavelength")
	dt.AddColumn("wlen", wlen)
	flux := tensor.NewMasked(tensor.NewFloat32(3, 2))
	flux.SetFloat1D(1.5, 0)
	flux.SetMasked(true, 3)
	dt.AddColumn("flux", flux)
	dt.AddColumn("name", tensor.NewStringFromValues("a", "b", "c"))

	fn := filepath.Join(t.TempDir(), "spectrum.json.zst")
	require.NoError(t, dt.SaveJSON(fn))
	rt := NewTable()
	require.NoError(t, rt.OpenJSON(fn))

	assert.Equal(t, "spectrum", rt.Meta.GetName())
	assert.Equal(t, dt.Columns.Keys, rt.Columns.Keys)
	rw := rt.Column("wlen")
	assert.Equal(t, []float64{4000, 4200, 4400}, tensor.Floats(rw))
	assert.Equal(t, "wavelength", rw.Metadata().GetDoc())
	u, _ := tensor.UnitOf(rw)
	assert.Equal(t, "Angstrom", u.Symbol)

	rf, ok := tensor.AsMasked(rt.Column("flux"))
	require.True(t, ok)
	assert.Equal(t, reflect.Float32, rf.DataType())
	assert.Equal(t, []int{3, 2}, rf.Shape().Sizes)
	assert.Equal(t, 1.5, rf.Float1D(0))
	assert.True(t, rf.IsMasked(3))
	assert.True(t, math.IsNaN(rf.Float1D(3)))
	assert.Equal(t, "c", rt.Column("name").String1D(2))

	bad := `{"columns":[{"name":"x","type":"complex128","shape":[1],"values":[1]}]}`
	assert.Error(t, NewTable().ReadJSON(strings.NewReader(bad)))
}
