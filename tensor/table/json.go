// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"io"
	"math"
	"reflect"

	"cogentcore.org/resample/base/errors"
	"cogentcore.org/resample/base/iox"
	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/units"
	"github.com/goccy/go-json"
)

// jsonTable is the JSON document form of a Table.
type jsonTable struct {
	Name    string       `json:"name,omitempty"`
	Doc     string       `json:"doc,omitempty"`
	Columns []jsonColumn `json:"columns"`
}

// jsonColumn is one column: numeric values are written with null
// for masked and undefined entries.
type jsonColumn struct {
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Shape  []int           `json:"shape"`
	Unit   string          `json:"unit,omitempty"`
	Scale  float64         `json:"scale,omitempty"`
	Doc    string          `json:"doc,omitempty"`
	Values json.RawMessage `json:"values"`
	Mask   []bool          `json:"mask,omitempty"`
}

// kindByName has the JSON type names of the supported column kinds.
var kindByName = map[string]reflect.Kind{}

func init() {
	for _, k := range []reflect.Kind{reflect.String, reflect.Bool, reflect.Float64, reflect.Float32,
		reflect.Int, reflect.Int64, reflect.Int32, reflect.Uint8} {
		kindByName[k.String()] = k
	}
}

// SaveJSON writes the table as JSON to the given file,
// compressed according to its extension (see [iox.Create]).
func (dt *Table) SaveJSON(filename string) error {
	fp, err := iox.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	err = dt.WriteJSON(fp)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// OpenJSON reads the table from JSON in the given file,
// decompressing according to its extension (see [iox.Open]).
func (dt *Table) OpenJSON(filename string) error {
	fp, err := iox.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return dt.ReadJSON(fp)
}

// WriteJSON writes the table as a JSON document, with the name, doc,
// unit, shape and mask of each column.
func (dt *Table) WriteJSON(w io.Writer) error {
	jt := jsonTable{Name: dt.Meta.GetName(), Doc: dt.Meta.GetDoc()}
	for i, tsr := range dt.Columns.Values {
		jc := jsonColumn{Name: dt.ColumnName(i), Type: tsr.DataType().String(), Shape: tsr.Shape().Sizes}
		if u, ok := tensor.UnitOf(tsr); ok {
			jc.Unit = u.Symbol
			jc.Scale = u.Scale
		}
		jc.Doc = tsr.Metadata().GetDoc()
		ms, masked := tensor.AsMasked(tsr)
		if masked {
			jc.Mask = ms.Mask.Values
		}
		vals, err := marshalValues(tsr, ms)
		if err != nil {
			return err
		}
		jc.Values = vals
		jt.Columns = append(jt.Columns, jc)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&jt)
}

func marshalValues(tsr tensor.Tensor, ms *tensor.Masked) ([]byte, error) {
	vals := tensor.Unmasked(tsr)
	switch v := vals.(type) {
	case *tensor.String:
		return json.Marshal(v.Values)
	case *tensor.Bool:
		return json.Marshal(v.Values)
	}
	n := tsr.Len()
	fv := make([]*float64, n)
	for i := range n {
		if ms != nil && ms.IsMasked(i) {
			continue
		}
		f := vals.Float1D(i)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		fv[i] = &f
	}
	return json.Marshal(fv)
}

// ReadJSON reads a table written by [Table.WriteJSON],
// replacing any existing columns.
func (dt *Table) ReadJSON(r io.Reader) error {
	var jt jsonTable
	if err := json.NewDecoder(r).Decode(&jt); err != nil {
		return err
	}
	dt.DeleteAll()
	if jt.Name != "" {
		dt.Meta.SetName(jt.Name)
	}
	if jt.Doc != "" {
		dt.Meta.SetDoc(jt.Doc)
	}
	for _, jc := range jt.Columns {
		tsr, err := unmarshalColumn(&jc)
		if err != nil {
			return err
		}
		if err := dt.AddColumn(jc.Name, tsr); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalColumn(jc *jsonColumn) (tensor.Tensor, error) {
	kind, ok := kindByName[jc.Type]
	if !ok {
		return nil, fmt.Errorf("table.ReadJSON: column %q has unsupported type %q", jc.Name, jc.Type)
	}
	vals := tensor.NewOfType(kind, jc.Shape...)
	n := vals.Len()
	switch v := vals.(type) {
	case *tensor.String:
		if err := json.Unmarshal(jc.Values, &v.Values); err != nil {
			return nil, err
		}
		if len(v.Values) != n {
			return nil, fmt.Errorf("table.ReadJSON: column %q has %d values for shape %v", jc.Name, len(v.Values), jc.Shape)
		}
	case *tensor.Bool:
		if err := json.Unmarshal(jc.Values, &v.Values); err != nil {
			return nil, err
		}
		if len(v.Values) != n {
			return nil, fmt.Errorf("table.ReadJSON: column %q has %d values for shape %v", jc.Name, len(v.Values), jc.Shape)
		}
	default:
		var fv []*float64
		if err := json.Unmarshal(jc.Values, &fv); err != nil {
			return nil, err
		}
		if len(fv) != n {
			return nil, fmt.Errorf("table.ReadJSON: column %q has %d values for shape %v", jc.Name, len(fv), jc.Shape)
		}
		for i, f := range fv {
			if f == nil {
				vals.SetFloat1D(math.NaN(), i)
			} else {
				vals.SetFloat1D(*f, i)
			}
		}
	}
	if jc.Unit != "" || jc.Scale != 0 {
		tensor.SetUnit(vals, units.New(jc.Unit, jc.Scale))
	}
	if jc.Doc != "" {
		vals.Metadata().SetDoc(jc.Doc)
	}
	if jc.Mask == nil {
		return vals, nil
	}
	if len(jc.Mask) != n {
		return nil, fmt.Errorf("table.ReadJSON: column %q has %d mask values for shape %v", jc.Name, len(jc.Mask), jc.Shape)
	}
	mask := tensor.NewBoolFromValues(jc.Mask...)
	mask.SetShape(jc.Shape...)
	return tensor.NewMaskedFrom(vals, mask)
}
