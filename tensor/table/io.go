// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/resample/base/errors"
	"cogentcore.org/resample/base/iox"
	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/units"
)

const (
	//	Headers is passed to CSV methods for the headers arg, to use headers
	// that capture full type and unit information.
	Headers = true

	// NoHeaders is passed to CSV methods for the headers arg, to not use headers
	NoHeaders = false
)

// SaveCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// The file is compressed according to its extension (see [iox.Create]).
// If headers = true then generate column headers that capture the type
// and unit of the columns, enabling full reloading
// of exactly the same table format and data (recommended).
// Otherwise, only the data is written.
func (dt *Table) SaveCSV(filename string, delim tensor.Delims, headers bool) error {
	fp, err := iox.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	err = dt.WriteCSV(fp, delim, headers)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// decompressing according to the file extension (see [iox.Open]).
// See [Table.ReadCSV] for details.
func (dt *Table) OpenCSV(filename string, delim tensor.Delims) error {
	fp, err := iox.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadCSV(fp, delim)
}

// ReadCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg, or
// [tensor.Detect] to use the delimiter of the first line),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// If the table does not currently have any columns, the first row of the file
// is assumed to be headers, and columns are constructed therefrom.
// If the file was saved from table with headers, then these have full configuration
// information for type and unit. Otherwise types are inferred from the values.
// If the table DOES have existing columns, then those are used robustly
// for whatever information fits from each row of the file.
// Empty cells in numeric columns are read as masked values, and any
// column with such a cell becomes a [tensor.Masked] column.
func (dt *Table) ReadCSV(r io.Reader, delim tensor.Delims) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if delim == tensor.Detect {
		line, _, _ := bytes.Cut(b, []byte("\n"))
		delim = tensor.DetectDelim(string(line))
	}
	cr := csv.NewReader(bytes.NewReader(b))
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1
	rec, err := cr.ReadAll()
	if err != nil || len(rec) == 0 {
		return err
	}
	rows := len(rec)
	strow := 0
	if dt.NumColumns() == 0 || DetectTableHeaders(rec[0]) {
		dt.DeleteAll()
		err := ConfigFromHeaders(dt, rec[0], rec)
		if err != nil {
			return errors.Log(err)
		}
		strow++
		rows--
	}
	dt.SetNumRows(rows)
	masks := make([][]bool, dt.NumColumns())
	for ri := 0; ri < rows; ri++ {
		dt.readCSVRow(rec[ri+strow], ri, masks)
	}
	for ci, mask := range masks {
		if mask == nil {
			continue
		}
		tsr := dt.ColumnByIndex(ci)
		ms, ok := tensor.AsMasked(tsr)
		if !ok {
			ms = tensor.NewMasked(tsr)
			dt.Columns.Values[ci] = ms
		}
		copy(ms.Mask.Values, mask)
	}
	return nil
}

// readCSVRow reads a record of CSV data into given row in table,
// recording empty numeric cells in masks.
func (dt *Table) readCSVRow(rec []string, row int, masks [][]bool) {
	tc := min(dt.NumColumns(), len(rec))
	for ci := range tc {
		tsr := dt.ColumnByIndex(ci)
		str := strings.TrimSpace(rec[ci])
		if !tsr.IsString() && str == "" {
			if masks[ci] == nil {
				masks[ci] = make([]bool, dt.NumRows())
			}
			masks[ci][row] = true
			continue
		}
		if ms, ok := tensor.AsMasked(tsr); ok {
			ms.SetMasked(false, row)
		}
		tsr.SetString1D(str, row)
	}
}

// ConfigFromHeaders attempts to configure Table based on the headers.
// for non-table headers, data is examined to determine types.
func ConfigFromHeaders(dt *Table, hdrs []string, rec [][]string) error {
	if DetectTableHeaders(hdrs) {
		return ConfigFromTableHeaders(dt, hdrs)
	}
	return ConfigFromDataValues(dt, hdrs, rec)
}

// DetectTableHeaders looks for special header characters -- returns true if found
func DetectTableHeaders(hdrs []string) bool {
	for _, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			continue
		}
		if _, ok := TableHeaderToType[hd[0]]; !ok { // all must be table
			return false
		}
	}
	return true
}

// ConfigFromTableHeaders attempts to configure a Table based on special table headers
func ConfigFromTableHeaders(dt *Table, hdrs []string) error {
	for _, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			continue
		}
		typ, hd := TableColumnType(hd)
		nm, u, err := ParseUnitHeader(hd)
		if err != nil {
			return err
		}
		tsr := dt.AddColumnOfType(nm, typ)
		tensor.SetUnit(tsr, u)
	}
	return nil
}

// ParseUnitHeader splits a column header of the form name{unit}
// into the name and parsed unit. A header without braces has no unit.
func ParseUnitHeader(hd string) (string, units.Unit, error) {
	st := strings.Index(hd, "{")
	if st < 0 {
		return hd, units.Unit{}, nil
	}
	if !strings.HasSuffix(hd, "}") {
		return "", units.Unit{}, fmt.Errorf("table: invalid unit in column header %q", hd)
	}
	u, err := units.Parse(hd[st+1 : len(hd)-1])
	if err != nil {
		return "", units.Unit{}, err
	}
	return hd[:st], u, nil
}

// TableHeaderToType maps special header characters to data type
var TableHeaderToType = map[byte]reflect.Kind{
	'$': reflect.String,
	'%': reflect.Float32,
	'#': reflect.Float64,
	'|': reflect.Int,
	'^': reflect.Bool,
}

// TableHeaderChar returns the special header character based on given data type
func TableHeaderChar(typ reflect.Kind) byte {
	switch {
	case typ == reflect.Bool:
		return '^'
	case typ == reflect.Float32:
		return '%'
	case typ == reflect.Float64:
		return '#'
	case typ >= reflect.Int && typ <= reflect.Uintptr:
		return '|'
	default:
		return '$'
	}
}

// TableColumnType parses the column header for special table type information
func TableColumnType(nm string) (reflect.Kind, string) {
	typ, ok := TableHeaderToType[nm[0]]
	if ok {
		nm = nm[1:]
	} else {
		typ = reflect.String // most general, default
	}
	return typ, nm
}

// ConfigFromDataValues configures a Table based on data types inferred
// from the string representation of given records, using header names if present.
// Header names may carry a unit as name{unit}.
func ConfigFromDataValues(dt *Table, hdrs []string, rec [][]string) error {
	nr := len(rec)
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		nm, u, err := ParseUnitHeader(hd)
		if err != nil {
			return err
		}
		typ := reflect.String
		nmatch := 0
	rows:
		for ri := 1; ri < nr; ri++ {
			if ci >= len(rec[ri]) {
				continue
			}
			rv := strings.TrimSpace(rec[ri][ci])
			if rv == "" {
				continue
			}
			ctyp := InferDataType(rv)
			switch {
			case ctyp == reflect.String: // definitive
				typ = ctyp
				break rows
			case typ == ctyp && nmatch > 1: // good enough
				break rows
			case typ == ctyp: // gather more info
				nmatch++
			case typ == reflect.String: // always upgrade from string default
				nmatch = 0
				typ = ctyp
			case typ == reflect.Int && ctyp == reflect.Float64: // upgrade
				nmatch = 0
				typ = ctyp
			}
		}
		tsr := dt.AddColumnOfType(nm, typ)
		tensor.SetUnit(tsr, u)
	}
	return nil
}

// InferDataType returns the inferred data type for the given string
// only deals with float64, int, and string types
func InferDataType(str string) reflect.Kind {
	if strings.Contains(str, ".") {
		_, err := strconv.ParseFloat(str, 64)
		if err == nil {
			return reflect.Float64
		}
	}
	_, err := strconv.ParseInt(str, 10, 64)
	if err == nil {
		return reflect.Int
	}
	// try float again just in case..
	_, err = strconv.ParseFloat(str, 64)
	if err == nil {
		return reflect.Float64
	}
	return reflect.String
}

//////////////////////////////////////////////////////////////////////////
// WriteCSV

// WriteCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers = true then generate column headers that capture the type
// and unit of the columns, enabling full reloading
// of exactly the same table format and data (recommended).
// Otherwise, only the data is written. Masked values are written as
// empty cells. Only columns with one value per row can be written.
func (dt *Table) WriteCSV(w io.Writer, delim tensor.Delims, headers bool) error {
	for i, tsr := range dt.Columns.Values {
		if tsr.NumDims() != 1 {
			return fmt.Errorf("table.WriteCSV: column %q has %d dimensions, only 1 is supported", dt.ColumnName(i), tsr.NumDims())
		}
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if headers {
		if err := cw.Write(dt.TableHeaders()); err != nil {
			return err
		}
	}
	prec := -1
	if ps, err := tensor.Precision(dt.Meta); err == nil {
		prec = ps
	}
	rec := make([]string, dt.NumColumns())
	for ri := range dt.NumRows() {
		for ci, tsr := range dt.Columns.Values {
			rec[ci] = formatCell(tsr, ri, prec)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(tsr tensor.Tensor, i, prec int) string {
	if ms, ok := tensor.AsMasked(tsr); ok && ms.IsMasked(i) {
		return ""
	}
	if prec <= 0 || tsr.IsString() || !tensor.IsFloat(tsr.DataType()) {
		return tsr.String1D(i)
	}
	return strconv.FormatFloat(tsr.Float1D(i), 'g', prec, 64)
}

// TableHeaders generates special header strings from the table
// with full information about type and unit.
func (dt *Table) TableHeaders() []string {
	hdrs := make([]string, dt.NumColumns())
	for i, tsr := range dt.Columns.Values {
		nm := string([]byte{TableHeaderChar(tsr.DataType())}) + dt.ColumnName(i)
		if u, ok := tensor.UnitOf(tsr); ok {
			nm += "{" + u.Symbol + "}"
		}
		hdrs[i] = nm
	}
	return hdrs
}
