// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/resample/base/iox"
	"cogentcore.org/resample/base/metadata"
	"cogentcore.org/resample/tabular"
	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/tensor/records"
	"cogentcore.org/resample/tensor/table"
)

// Formats are the supported data file formats.
type Formats int32

const (
	// CSV is comma separated values, with typed headers.
	CSV Formats = iota

	// TSV is tab separated values, with typed headers.
	TSV

	// JSON is a column table in JSON.
	JSON

	// Arrow is an arrow IPC file of one record table.
	Arrow
)

// FormatOf returns the format of the given filename from its extension,
// after any compression extension.
func FormatOf(filename string) (Formats, error) {
	_, base := iox.EncodingOf(filename)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".csv":
		return CSV, nil
	case ".tsv":
		return TSV, nil
	case ".json":
		return JSON, nil
	case ".arrow":
		return Arrow, nil
	}
	return CSV, fmt.Errorf("unknown data format of %q", filename)
}

// tableName returns a table name from the given filename.
func tableName(filename string) string {
	_, base := iox.EncodingOf(filepath.Base(filename))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Open reads the given data file: a column table for CSV, TSV and
// JSON, and a record table for arrow.
func Open(filename string) (tabular.Data, error) {
	ff, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	if ff == Arrow {
		return records.OpenIPC(filename)
	}
	dt := table.NewTable(tableName(filename))
	switch ff {
	case CSV:
		err = dt.OpenCSV(filename, tensor.Comma)
	case TSV:
		err = dt.OpenCSV(filename, tensor.Tab)
	case JSON:
		err = dt.OpenJSON(filename)
	}
	if err != nil {
		return nil, err
	}
	return dt, nil
}

// Save writes the given data to the given file, converting between
// column and record tables as the format needs.
func Save(dt tabular.Data, filename string) error {
	ff, err := FormatOf(filename)
	if err != nil {
		return err
	}
	if ff == Arrow {
		rt, err := asRecords(dt)
		if err != nil {
			return err
		}
		if rt != dt {
			defer rt.Release()
		}
		return rt.SaveIPC(filename)
	}
	ct, err := asTable(dt)
	if err != nil {
		return err
	}
	switch ff {
	case CSV:
		return ct.SaveCSV(filename, tensor.Comma, table.Headers)
	case TSV:
		return ct.SaveCSV(filename, tensor.Tab, table.Headers)
	}
	return ct.SaveJSON(filename)
}

// asTable returns the data as a column table.
func asTable(dt tabular.Data) (*table.Table, error) {
	if ct, ok := dt.(*table.Table); ok {
		return ct, nil
	}
	pr, err := tabular.Prepare(tabular.ReadOnly, []tabular.Data{dt}, nil)
	if err != nil {
		return nil, err
	}
	like := table.NewTable()
	if md := metadata.GetData(dt); md != nil {
		like.Meta.Copy(*md)
	}
	res, err := tabular.TabularLike(like, pr.Columns)
	if err != nil {
		return nil, err
	}
	return res.(*table.Table), nil
}

// asRecords returns the data as a record table.
func asRecords(dt tabular.Data) (*records.Table, error) {
	if rt, ok := dt.(*records.Table); ok {
		return rt, nil
	}
	pr, err := tabular.Prepare(tabular.ReadOnly, []tabular.Data{dt}, nil)
	if err != nil {
		return nil, err
	}
	rt, err := records.FromTensors(pr.Columns.Keys, pr.Columns.Values)
	if err != nil {
		return nil, err
	}
	if md := metadata.GetData(dt); md != nil {
		rt.Meta.Copy(*md)
	}
	return rt, nil
}
