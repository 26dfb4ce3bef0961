// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package records

import (
	"bytes"
	"fmt"
	"io"

	"cogentcore.org/resample/base/errors"
	"cogentcore.org/resample/base/iox"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// WriteIPC writes the record as an arrow IPC file.
func (rt *Table) WriteIPC(w io.Writer) error {
	mem := memory.NewGoAllocator()
	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(rt.rec.Schema()), ipc.WithAllocator(mem))
	if err != nil {
		return fmt.Errorf("records: failed to create IPC writer: %w", err)
	}
	if err := fw.Write(rt.rec); err != nil {
		fw.Close()
		return fmt.Errorf("records: failed to write record: %w", err)
	}
	return fw.Close()
}

// ReadIPC reads an arrow IPC file, concatenating all of its record
// batches into one record.
func ReadIPC(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	mem := memory.NewGoAllocator()
	fr, err := ipc.NewFileReader(bytes.NewReader(data), ipc.WithAllocator(mem))
	if err != nil {
		return nil, fmt.Errorf("records: failed to create IPC reader: %w", err)
	}
	defer fr.Close()
	var recs []arrow.Record
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()
	for i := range fr.NumRecords() {
		rec, err := fr.Record(i)
		if err != nil {
			return nil, fmt.Errorf("records: failed to read record batch %d: %w", i, err)
		}
		rec.Retain()
		recs = append(recs, rec)
	}
	switch len(recs) {
	case 0:
		rec := array.NewRecord(fr.Schema(), emptyColumns(mem, fr.Schema()), 0)
		defer rec.Release()
		return New(rec), nil
	case 1:
		return New(recs[0]), nil
	}
	return concatRecords(mem, fr.Schema(), recs)
}

func emptyColumns(mem memory.Allocator, schema *arrow.Schema) []arrow.Array {
	cols := make([]arrow.Array, schema.NumFields())
	for i, f := range schema.Fields() {
		cols[i] = array.MakeArrayOfNull(mem, f.Type, 0)
	}
	return cols
}

func concatRecords(mem memory.Allocator, schema *arrow.Schema, recs []arrow.Record) (*Table, error) {
	ncol := schema.NumFields()
	cols := make([]arrow.Array, ncol)
	defer func() {
		for _, c := range cols {
			if c != nil {
				c.Release()
			}
		}
	}()
	var rows int64
	for _, rec := range recs {
		rows += rec.NumRows()
	}
	for ci := range ncol {
		parts := make([]arrow.Array, len(recs))
		for ri, rec := range recs {
			parts[ri] = rec.Column(ci)
		}
		col, err := array.Concatenate(parts, mem)
		if err != nil {
			return nil, fmt.Errorf("records: failed to concatenate column %q: %w", schema.Field(ci).Name, err)
		}
		cols[ci] = col
	}
	rec := array.NewRecord(schema, cols, rows)
	defer rec.Release()
	return New(rec), nil
}

// SaveIPC writes the record as an arrow IPC file with the given name,
// compressed according to its extension (see [iox.Create]).
func (rt *Table) SaveIPC(filename string) error {
	fp, err := iox.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	err = rt.WriteIPC(fp)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// OpenIPC reads a record table from an arrow IPC file with the given name,
// decompressing according to its extension (see [iox.Open]).
func OpenIPC(filename string) (*Table, error) {
	fp, err := iox.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadIPC(fp)
}
