// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"fmt"
	"slices"

	"cogentcore.org/resample/tabular"
	"cogentcore.org/resample/tensor"
)

// X is the input coordinate of [Table]: either the name of a column of
// the input, or standalone values.
type X struct {
	// Name is the name of the coordinate column.
	Name string

	// Values are the coordinates. Only one of Name and Values can be set.
	Values tensor.Tensor
}

// XName returns the coordinate given by the named column.
func XName(name string) X { return X{Name: name} }

// XValues returns the coordinate given by standalone values.
func XValues(vals tensor.Tensor) X { return X{Values: vals} }

// Table resamples the columns of in named by y (all columns other than
// the coordinate column if y is empty) from the input coordinate x onto
// xOut, using [Column] for each column.
//
// If x names a column of in, the result has that column first, with
// the values of xOut (as the element type of xOut) and the unit of the
// input coordinate column. It is never interpolated, even when also
// named in y. The resampled columns follow in their input order.
//
// If out is nil, the result is a new tabular object of the same kind as
// in. Otherwise out must already have every result column with the
// result shape, and is updated in place and returned. No rollback is
// done if a column fails, so the result is undefined after any error.
func Table(in tabular.Data, x X, xOut tensor.Tensor, y []string, out tabular.Data, opts ...Option) (tabular.Data, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: no input data", ErrUsage)
	}
	if x.Name != "" && x.Values != nil {
		return nil, fmt.Errorf("%w: x has both a column name %q and values", ErrConfiguration, x.Name)
	}
	o := newOptions(opts)
	mode := tabular.ReadOnly
	if len(y) > 0 {
		var sel []string
		if x.Name != "" {
			sel = append(sel, x.Name)
		}
		mode = mode.Select(append(sel, y...)...)
	}
	pin, err := tabular.Prepare(mode, []tabular.Data{in}, nil)
	if err != nil {
		return nil, err
	}
	xin := x.Values
	if x.Name != "" {
		xin = pin.Columns.Column(x.Name)
		if xin == nil {
			return nil, fmt.Errorf("%w: no x_in column %q", ErrUsage, x.Name)
		}
	}
	xs, err := inputCoords(xin)
	if err != nil {
		return nil, err
	}
	xo, err := outputCoords(xOut)
	if err != nil {
		return nil, err
	}

	var names []string
	for i := range in.NumColumns() {
		nm := in.ColumnName(i)
		if nm == x.Name || (len(y) > 0 && !slices.Contains(y, nm)) {
			continue
		}
		names = append(names, nm)
	}

	var pout *tabular.Prepared
	if out != nil {
		pout, err = tabular.Prepare(tabular.InPlace, []tabular.Data{out}, nil)
		if err != nil {
			return nil, err
		}
		if err := checkTableOutput(pin.Columns, pout.Columns, x.Name, names, len(xo), o.axis); err != nil {
			return nil, err
		}
	}

	res := tabular.NewColumns()
	if x.Name != "" {
		var xcol tensor.Tensor
		if pout != nil {
			xcol = pout.Columns.Column(x.Name)
		} else if xcol, err = tabular.EmptyLike(xin, []int{len(xo)}, xOut.DataType(), false); err != nil {
			return nil, err
		}
		xcol.CopyFrom(tensor.Unmasked(xOut))
		if u, ok := tensor.UnitOf(xin); ok {
			tensor.SetUnit(xcol, u)
		}
		res.Set(x.Name, xcol)
	}
	for _, nm := range names {
		var yOut tensor.Tensor
		if pout != nil {
			yOut = pout.Columns.Column(nm)
		}
		col, err := column(xs, xo, pin.Columns.Column(nm), yOut, &options{kind: o.kind, axis: o.axis, name: nm})
		if err != nil {
			return nil, err
		}
		res.Set(nm, col)
	}
	if pout != nil {
		return out, nil
	}
	return tabular.TabularLike(in, res)
}

// checkTableOutput returns an error if the output columns do not have
// every result column with the result shape.
func checkTableOutput(in, out *tabular.Columns, xname string, names []string, m, axis int) error {
	if xname != "" {
		xcol := out.Column(xname)
		if xcol == nil {
			return fmt.Errorf("%w: output has no x column %q", ErrUsage, xname)
		}
		if !slices.Equal(xcol.Shape().Sizes, []int{m}) {
			return fmt.Errorf("%w: output x column %q has shape %v, not [%d]", ErrUsage, xname, xcol.Shape().Sizes, m)
		}
	}
	for _, nm := range names {
		ocol := out.Column(nm)
		if ocol == nil {
			return fmt.Errorf("%w: output has no column %q", ErrUsage, nm)
		}
		icol := in.Column(nm)
		ax, err := tensor.NormalizeAxis(axis, icol.NumDims())
		if err != nil {
			continue
		}
		if !tensor.EqualExceptAxis(ocol.Shape(), icol.Shape(), ax) || ocol.DimSize(ax) != m {
			sizes := tensor.ReplaceAxis(icol.Shape().Sizes, ax, m)
			return fmt.Errorf("%w: %w: output column %q has shape %v, not %v", ErrUsage, ErrShapeMismatch, nm, ocol.Shape().Sizes, sizes)
		}
	}
	return nil
}
