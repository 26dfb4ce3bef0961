// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/resample"
	"cogentcore.org/resample/base/fsx"
	"cogentcore.org/resample/tabular"
	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/tensor/records"
	"cogentcore.org/resample/tensor/table"
)

// release releases the arrow memory of a record table.
func release(dt tabular.Data) {
	if rt, ok := dt.(*records.Table); ok {
		rt.Release()
	}
}

// GridValues returns the output coordinates: the grid file column
// if there is a grid file, and otherwise the regular grid.
func (cfg *Config) GridValues() (tensor.Tensor, error) {
	if cfg.GridFile == "" {
		return cfg.Grid.Values()
	}
	dt, err := Open(cfg.GridFile)
	if err != nil {
		return nil, fmt.Errorf("reading grid %q: %w", cfg.GridFile, err)
	}
	defer release(dt)
	pr, err := tabular.Prepare(tabular.ReadOnly, []tabular.Data{dt}, nil)
	if err != nil {
		return nil, err
	}
	if pr.Columns.NumColumns() == 0 {
		return nil, fmt.Errorf("grid %q has no columns", cfg.GridFile)
	}
	if col := pr.Columns.Column(cfg.X); col != nil {
		return col, nil
	}
	return pr.Columns.Values[0], nil
}

// allocate returns a column table with the result columns for data,
// with m rows and a mask on every column, to resample into in place.
func allocate(data tabular.Data, cfg *Config, m int) (tabular.Data, error) {
	mode := tabular.Allocate(m).WithMask()
	if len(cfg.Columns) > 0 {
		mode = mode.Select(append([]string{cfg.X}, cfg.Columns...)...)
	}
	pr, err := tabular.Prepare(mode, []tabular.Data{data}, nil)
	if err != nil {
		return nil, err
	}
	return tabular.TabularLike(table.NewTable("resampled"), pr.Columns)
}

// Run resamples every input of the config onto its grid, and saves
// the results.
func Run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	inputs, err := fsx.Globs(cfg.Inputs...)
	if err != nil {
		return err
	}
	cfg.Inputs = inputs
	xOut, err := cfg.GridValues()
	if err != nil {
		return err
	}
	opts := []resample.Option{resample.WithKind(cfg.Kind), resample.WithAxis(cfg.Axis)}
	var out tabular.Data
	for _, in := range cfg.Inputs {
		data, err := Open(in)
		if err != nil {
			return fmt.Errorf("reading %q: %w", in, err)
		}
		if cfg.Reuse && out == nil {
			if out, err = allocate(data, cfg, xOut.Len()); err != nil {
				release(data)
				return fmt.Errorf("allocating output for %q: %w", in, err)
			}
		}
		res, err := resample.Table(data, resample.XName(cfg.X), xOut, cfg.Columns, out, opts...)
		release(data)
		if err != nil {
			return fmt.Errorf("resampling %q: %w", in, err)
		}
		fn := cfg.OutputFor(in)
		err = Save(res, fn)
		if res != out {
			release(res)
		}
		if err != nil {
			return fmt.Errorf("writing %q: %w", fn, err)
		}
		slog.Info("resampled", "input", in, "output", fn, "points", xOut.Len(), "kind", cfg.Kind)
	}
	return nil
}
