// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"cogentcore.org/resample/base/errors"
	"cogentcore.org/resample/base/fsx"
	"cogentcore.org/resample/base/iox"
	"cogentcore.org/resample/base/iox/tomlx"
	"cogentcore.org/resample/interp"
	"cogentcore.org/resample/tensor"
)

// Config is the configuration of a resample run, read from a TOML file
// and overridden by command line flags.
type Config struct {

	// Inputs are the data files to resample: .csv, .tsv, .json or
	// .arrow, each optionally compressed with .gz, .zst or .lz4.
	// Glob patterns are expanded.
	Inputs []string `toml:"inputs"`

	// Output is the file to write for a single input, or the directory
	// to write into for several. If empty, each output is written next
	// to its input with a .resampled suffix before the format extension.
	Output string `toml:"output"`

	// X is the name of the coordinate column.
	X string `toml:"x"`

	// Grid is the regular output coordinate grid, if GridFile is empty.
	Grid Grid `toml:"grid"`

	// GridFile is a data file with the output coordinates, in the
	// column named X if present, otherwise its first column.
	GridFile string `toml:"grid_file"`

	// Columns are the columns to resample. All other columns are
	// resampled if empty.
	Columns []string `toml:"columns"`

	// Kind is the kind of interpolation.
	Kind interp.Kinds `toml:"kind"`

	// Axis is the axis of the columns to resample along.
	Axis int `toml:"axis"`

	// Reuse allocates the output table once, and resamples every
	// input into it in place.
	Reuse bool `toml:"reuse"`

	// LogLevel is the level of log messages to show:
	// debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Grid is a regular grid of coordinates from Start to Stop
// inclusive, in steps of Step.
type Grid struct {
	Start float64 `toml:"start"`
	Stop  float64 `toml:"stop"`
	Step  float64 `toml:"step"`
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{X: "wavelength", Axis: -1, LogLevel: "info"}
}

// Open reads the config from the given TOML file.
func (cfg *Config) Open(filename string) error {
	if err := tomlx.Open(cfg, filename); err != nil {
		return fmt.Errorf("reading config %q: %w", filename, err)
	}
	return nil
}

// Values returns the grid coordinates.
func (gr Grid) Values() (*tensor.Float64, error) {
	if !(gr.Step > 0) {
		return nil, fmt.Errorf("grid step must be positive, not %g", gr.Step)
	}
	if gr.Stop < gr.Start {
		return nil, fmt.Errorf("grid stop %g is before start %g", gr.Stop, gr.Start)
	}
	n := int(math.Floor((gr.Stop-gr.Start)/gr.Step+1e-6)) + 1
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = gr.Start + float64(i)*gr.Step
	}
	return tensor.NewFloat64FromValues(vals...), nil
}

// Validate returns an error if the config cannot be run.
func (cfg *Config) Validate() error {
	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("no input files")
	}
	if cfg.X == "" {
		return fmt.Errorf("no coordinate column")
	}
	if !cfg.Kind.IsValid() {
		return fmt.Errorf("invalid interpolation kind %d", cfg.Kind)
	}
	if cfg.GridFile == "" && cfg.Grid.Step == 0 {
		return fmt.Errorf("no output grid: set grid_file or grid")
	}
	return nil
}

// OutputFor returns the output filename for the given input.
func (cfg *Config) OutputFor(input string) string {
	if cfg.Output == "" {
		enc, base := iox.EncodingOf(input)
		ext := filepath.Ext(base)
		out := strings.TrimSuffix(base, ext) + ".resampled" + ext
		if enc != iox.None {
			out += filepath.Ext(input)
		}
		return out
	}
	if len(cfg.Inputs) > 1 || strings.HasSuffix(cfg.Output, string(filepath.Separator)) {
		return filepath.Join(cfg.Output, filepath.Base(input))
	}
	if errors.Log1(fsx.DirExists(cfg.Output)) {
		return filepath.Join(cfg.Output, filepath.Base(input))
	}
	return cfg.Output
}
