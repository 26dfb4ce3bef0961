// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabular

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/tensor/records"
	"cogentcore.org/resample/tensor/table"
)

// Prepared is the result of [Prepare]: a uniform mapping from column
// name to tensor, and a way back to a tabular object of the same
// representation family as the input.
type Prepared struct {
	// Columns are the prepared columns, in order.
	Columns *Columns

	mode Mode

	// source is the tabular argument, or nil for named arrays.
	source Data
}

// Mode returns the mode the columns were prepared with.
func (pr *Prepared) Mode() Mode { return pr.mode }

// Prepare gives uniform access to the columns of at most one tabular
// object, or to a set of named arrays, according to the mode.
// Passing both a tabular object and named arrays, or more than one
// tabular object, is an [ErrConfiguration]. An [*Arrays] argument is
// treated as named arrays.
// Columns that are themselves structured give [ErrUsage], as does a
// selected name that is not present, or [InPlaceMode] on something
// that cannot be updated in place (a record table, a Go slice, or a
// read-only tensor).
func Prepare(mode Mode, args []Data, named *Arrays) (*Prepared, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: expected at most one tabular argument, got %d", ErrConfiguration, len(args))
	}
	if len(args) == 1 && named.NumColumns() > 0 {
		return nil, fmt.Errorf("%w: cannot pass both a tabular argument and named arrays", ErrConfiguration)
	}
	if mode.Kind == AllocateMode && len(mode.Sizes) == 0 {
		return nil, fmt.Errorf("%w: allocate mode requires a shape", ErrConfiguration)
	}
	var src Data
	if len(args) == 1 {
		src = args[0]
	}
	if ar, ok := src.(*Arrays); ok {
		named, src = ar, nil
	}
	pr := &Prepared{mode: mode, source: src, Columns: NewColumns()}
	var err error
	switch s := src.(type) {
	case nil:
		err = pr.prepareArrays(named)
	case *Columns:
		ar := NewArrays()
		for i, nm := range s.Keys {
			ar.Set(nm, s.Values[i])
		}
		err = pr.prepareArrays(ar)
	case *table.Table:
		err = pr.prepareTable(s)
	case *records.Table:
		err = pr.prepareRecords(s)
	default:
		err = fmt.Errorf("%w: unsupported tabular type %T", ErrUsage, src)
	}
	if err != nil {
		return nil, err
	}
	return pr, nil
}

// selected returns the names of the columns to prepare, checking
// that each is present.
func (pr *Prepared) selected(dt Data) ([]string, error) {
	if len(pr.mode.Names) == 0 {
		names := make([]string, dt.NumColumns())
		for i := range names {
			names[i] = dt.ColumnName(i)
		}
		return names, nil
	}
	for _, nm := range pr.mode.Names {
		if !hasColumn(dt, nm) {
			return nil, fmt.Errorf("%w: no such column %q", ErrUsage, nm)
		}
	}
	names := make([]string, 0, len(pr.mode.Names))
	for _, nm := range pr.mode.Names {
		if !slices.Contains(names, nm) {
			names = append(names, nm)
		}
	}
	return names, nil
}

func hasColumn(dt Data, name string) bool {
	for i := range dt.NumColumns() {
		if dt.ColumnName(i) == name {
			return true
		}
	}
	return false
}

// allocate returns a new column like the given one.
func (pr *Prepared) allocate(like tensor.Tensor) (tensor.Tensor, error) {
	masked := pr.mode.Masked || tensor.IsMaskedTensor(like)
	return EmptyLike(like, pr.mode.Sizes, like.DataType(), masked)
}

// add adds a column prepared from the given tensor.
func (pr *Prepared) add(name string, tsr tensor.Tensor, copied bool) error {
	switch pr.mode.Kind {
	case ReadOnlyMode:
		if copied {
			tsr.SetReadOnly(true)
		} else {
			tsr = tensor.ReadOnlyView(tsr)
		}
	case InPlaceMode:
		if copied || tsr.IsReadOnly() {
			return fmt.Errorf("%w: column %q cannot be updated in place", ErrUsage, name)
		}
	case AllocateMode:
		var err error
		if tsr, err = pr.allocate(tsr); err != nil {
			return fmt.Errorf("column %q: %w", name, err)
		}
	}
	pr.Columns.Set(name, tsr)
	return nil
}

func (pr *Prepared) prepareTable(dt *table.Table) error {
	names, err := pr.selected(dt)
	if err != nil {
		return err
	}
	for _, nm := range names {
		if err := pr.add(nm, dt.Column(nm), false); err != nil {
			return err
		}
	}
	return nil
}

func (pr *Prepared) prepareRecords(rt *records.Table) error {
	if pr.mode.Kind == InPlaceMode {
		return fmt.Errorf("%w: record tables cannot be updated in place", ErrUsage)
	}
	names, err := pr.selected(rt)
	if err != nil {
		return err
	}
	for _, nm := range names {
		i := rt.ColumnIndex(nm)
		if rt.IsStructured(i) {
			return fmt.Errorf("%w: column %q has a structured type", ErrUsage, nm)
		}
		tsr, err := rt.ColumnByIndex(i)
		if errors.Is(err, records.ErrUnsupportedType) {
			return fmt.Errorf("%w: %w", ErrValueKind, err)
		}
		if err != nil {
			return err
		}
		if err := pr.add(nm, tsr, true); err != nil {
			return err
		}
	}
	return nil
}

func (pr *Prepared) prepareArrays(ar *Arrays) error {
	if ar == nil {
		ar = NewArrays()
	}
	names, err := pr.selected(ar)
	if err != nil {
		return err
	}
	for _, nm := range names {
		v := ar.At(nm)
		tsr, err := AsTensor(v)
		if err != nil {
			return fmt.Errorf("array %q: %w", nm, err)
		}
		_, isTensor := v.(tensor.Tensor)
		if err := pr.add(nm, tsr, !isTensor); err != nil {
			return err
		}
	}
	return nil
}

// Result returns the tabular object for the prepared columns,
// in the representation family of the input. In [ReadOnlyMode] and
// [InPlaceMode] this is the input itself. In [AllocateMode] it is a
// new object holding exactly the prepared columns, with the table
// metadata of the input. Named arrays give the [Columns] themselves.
func (pr *Prepared) Result() (Data, error) {
	if pr.source == nil {
		return pr.Columns, nil
	}
	if _, ok := pr.source.(*Columns); ok {
		return pr.Columns, nil
	}
	if pr.mode.Kind != AllocateMode {
		return pr.source, nil
	}
	return TabularLike(pr.source, pr.Columns)
}
