// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/resample/interp"
	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/tensor/records"
	"cogentcore.org/resample/tensor/table"
	"cogentcore.org/resample/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpectrum() *table.Table {
	dt := table.NewTable("spectrum")
	wlen := dt.AddFloat64Column("wlen")
	flux := dt.AddFloat64Column("flux")
	dt.SetNumRows(5)
	tensor.SetFloats(wlen, []float64{4000, 4200, 4400, 4600, 4800})
	tensor.SetFloats(flux, []float64{1, 2, 3, 4, 5})
	tensor.SetUnit(wlen, units.New("Angstrom", 1e-10))
	return dt
}

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGrid(t *testing.T) {
	vals, err := Grid{Start: 4000, Stop: 4400, Step: 200}.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{4000, 4200, 4400}, vals.Values)

	vals, err = Grid{Start: 0, Stop: 1, Step: 0.1}.Values()
	require.NoError(t, err)
	assert.Equal(t, 11, vals.Len())

	_, err = Grid{Start: 0, Stop: 1}.Values()
	assert.Error(t, err)
	_, err = Grid{Start: 1, Stop: 0, Step: 1}.Values()
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "resample.toml")
	toml := `inputs = ["a.csv", "b.arrow"]
x = "wlen"
kind = "pchip"
columns = ["flux"]
reuse = true

[grid]
start = 4000.0
stop = 5000.0
step = 10.0
`
	require.NoError(t, os.WriteFile(fn, []byte(toml), 0666))
	cfg := NewConfig()
	require.NoError(t, cfg.Open(fn))
	assert.Equal(t, []string{"a.csv", "b.arrow"}, cfg.Inputs)
	assert.Equal(t, "wlen", cfg.X)
	assert.Equal(t, interp.Pchip, cfg.Kind)
	assert.Equal(t, Grid{Start: 4000, Stop: 5000, Step: 10}, cfg.Grid)
	assert.Equal(t, -1, cfg.Axis)
	assert.True(t, cfg.Reuse)
	assert.NoError(t, cfg.Validate())

	assert.Error(t, NewConfig().Validate())
	require.NoError(t, os.WriteFile(fn, []byte(`kind = "spline"`), 0666))
	assert.Error(t, NewConfig().Open(fn))
}

func TestOutputFor(t *testing.T) {
	cfg := NewConfig()
	cfg.Inputs = []string{"data/spectrum.csv.gz"}
	assert.Equal(t, "data/spectrum.resampled.csv.gz", cfg.OutputFor("data/spectrum.csv.gz"))
	assert.Equal(t, "spectrum.resampled.arrow", cfg.OutputFor("spectrum.arrow"))
	cfg.Output = "out.json"
	assert.Equal(t, "out.json", cfg.OutputFor("data/spectrum.csv.gz"))
	cfg.Inputs = append(cfg.Inputs, "b.csv")
	cfg.Output = "out"
	assert.Equal(t, filepath.Join("out", "b.csv"), cfg.OutputFor("data/b.csv"))

	dir := t.TempDir()
	cfg.Inputs = []string{"data/spectrum.csv.gz"}
	cfg.Output = dir
	assert.Equal(t, filepath.Join(dir, "spectrum.csv.gz"), cfg.OutputFor("data/spectrum.csv.gz"))
}

func TestFormatOf(t *testing.T) {
	for fn, ff := range map[string]Formats{"a.csv": CSV, "a.TSV": TSV, "a.json.zst": JSON, "a.arrow.lz4": Arrow} {
		f, err := FormatOf(fn)
		require.NoError(t, err)
		assert.Equal(t, ff, f, fn)
	}
	_, err := FormatOf("a.txt")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "spectrum.csv.gz")
	require.NoError(t, newSpectrum().SaveCSV(in, tensor.Comma, table.Headers))
	out := filepath.Join(dir, "out.json")

	_, err := execute(t, in, "--x", "wlen", "--start", "4100", "--stop", "4700", "--step", "200", "-o", out, "--log-level", "warn")
	require.NoError(t, err)

	dt := table.NewTable()
	require.NoError(t, dt.OpenJSON(out))
	assert.Equal(t, []string{"wlen", "flux"}, dt.Columns.Keys)
	assert.Equal(t, []float64{4100, 4300, 4500, 4700}, tensor.Floats(dt.Column("wlen")))
	assert.Equal(t, []float64{1.5, 2.5, 3.5, 4.5}, tensor.Floats(dt.Column("flux")))
	u, ok := tensor.UnitOf(dt.Column("wlen"))
	require.True(t, ok)
	assert.Equal(t, "Angstrom", u.Symbol)

	_, err = execute(t, in, "--x", "wlen", "--step", "100", "--kind", "quadratic", "-o", out)
	assert.Error(t, err)
	_, err = execute(t, in, "--x", "wlen", "--step", "100", "--kind", "spline", "-o", out)
	assert.Error(t, err)
}

func TestRunReuse(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0777))
	sp := newSpectrum()
	csv := filepath.Join(dir, "a.csv")
	require.NoError(t, sp.SaveCSV(csv, tensor.Comma, table.Headers))
	tensor.SetFloats(sp.Column("flux"), []float64{10, 20, 30, 40, 50})
	rt, err := records.FromTensors(sp.Columns.Keys, sp.Columns.Values)
	require.NoError(t, err)
	arrow := filepath.Join(dir, "b.arrow")
	require.NoError(t, rt.SaveIPC(arrow))
	rt.Release()

	grid := filepath.Join(dir, "grid.tsv")
	gt := table.NewTable()
	gw := gt.AddFloat64Column("wlen")
	gt.SetNumRows(2)
	tensor.SetFloats(gw, []float64{4100, 5000})
	require.NoError(t, gt.SaveCSV(grid, tensor.Tab, table.Headers))

	_, err = execute(t, csv, arrow, "--x", "wlen", "--grid-file", grid, "--columns", "flux", "--reuse", "-o", outDir, "--log-level", "warn")
	require.NoError(t, err)

	ca := table.NewTable()
	require.NoError(t, ca.OpenCSV(filepath.Join(outDir, "a.csv"), tensor.Comma))
	flux, ok := tensor.AsMasked(ca.Column("flux"))
	require.True(t, ok)
	assert.Equal(t, 1.5, flux.Float1D(0))
	assert.Equal(t, []bool{false, true}, flux.Mask.Values)

	ob, err := records.OpenIPC(filepath.Join(outDir, "b.arrow"))
	require.NoError(t, err)
	defer ob.Release()
	bflux, err := ob.Column("flux")
	require.NoError(t, err)
	assert.Equal(t, 15.0, bflux.Float1D(0))
	ms, ok := tensor.AsMasked(bflux)
	require.True(t, ok)
	assert.True(t, ms.IsMasked(1))
}

func TestKinds(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "linear"))
	assert.Contains(t, out, "pchip")
}
