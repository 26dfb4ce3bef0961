// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command resample resamples the columns of tabular data files onto
// a new grid of their coordinate column, by interpolation.
//
// Settings come from an optional TOML config file (see [Config]),
// overridden by flags. For example:
//
//	resample --x wavelength --start 4000 --stop 7000 --step 2 spectrum.csv
package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/resample/base/logx"
	"cogentcore.org/resample/interp"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := NewConfig()
	flags := NewConfig()
	var configFile, kind string

	root := &cobra.Command{
		Use:   "resample [flags] inputs...",
		Short: "Resample tabular data onto a new coordinate grid",
		Long: `Resample reads csv, tsv, json or arrow data files (optionally compressed
with .gz, .zst or .lz4), resamples their columns onto a new grid of the
coordinate column by interpolation, and writes the results.
Output points outside the input grid, and points that depend on empty
input cells, are masked (written as empty cells or nulls).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := cfg.Open(configFile); err != nil {
					return err
				}
			}
			if len(args) > 0 {
				cfg.Inputs = args
			}
			fs := cmd.Flags()
			if fs.Changed("output") {
				cfg.Output = flags.Output
			}
			if fs.Changed("x") {
				cfg.X = flags.X
			}
			if fs.Changed("start") {
				cfg.Grid.Start = flags.Grid.Start
			}
			if fs.Changed("stop") {
				cfg.Grid.Stop = flags.Grid.Stop
			}
			if fs.Changed("step") {
				cfg.Grid.Step = flags.Grid.Step
			}
			if fs.Changed("grid-file") {
				cfg.GridFile = flags.GridFile
			}
			if fs.Changed("columns") {
				cfg.Columns = flags.Columns
			}
			if fs.Changed("kind") {
				if err := cfg.Kind.SetString(kind); err != nil {
					return err
				}
			}
			if fs.Changed("axis") {
				cfg.Axis = flags.Axis
			}
			if fs.Changed("reuse") {
				cfg.Reuse = flags.Reuse
			}
			if fs.Changed("log-level") {
				cfg.LogLevel = flags.LogLevel
			}
			if err := logx.SetUserLevel(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
				return err
			}
			return Run(cfg)
		},
	}
	fs := root.Flags()
	fs.StringVar(&configFile, "config", "", "TOML config file, overridden by flags")
	fs.StringVarP(&flags.Output, "output", "o", "", "output file, or directory for several inputs")
	fs.StringVar(&flags.X, "x", flags.X, "name of the coordinate column")
	fs.Float64Var(&flags.Grid.Start, "start", 0, "first output coordinate")
	fs.Float64Var(&flags.Grid.Stop, "stop", 0, "last output coordinate")
	fs.Float64Var(&flags.Grid.Step, "step", 0, "output coordinate step")
	fs.StringVar(&flags.GridFile, "grid-file", "", "data file with the output coordinates")
	fs.StringSliceVarP(&flags.Columns, "columns", "c", nil, "columns to resample (default all)")
	fs.StringVarP(&kind, "kind", "k", interp.Linear.String(), "kind of interpolation (see the kinds command)")
	fs.IntVar(&flags.Axis, "axis", flags.Axis, "axis of the columns to resample along")
	fs.BoolVar(&flags.Reuse, "reuse", false, "allocate the output once and resample every input into it")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(&cobra.Command{
		Use:   "kinds",
		Short: "List the kinds of interpolation",
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range interp.KindsValues() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", k, k.Desc())
			}
		},
	})
	return root
}
