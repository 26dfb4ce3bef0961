// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample_test

import (
	"fmt"

	"cogentcore.org/resample"
	"cogentcore.org/resample/base/errors"
	"cogentcore.org/resample/tensor"
	"cogentcore.org/resample/tensor/table"
)

func ExampleColumn() {
	xIn := tensor.NewFloat64FromValues(4000, 4200, 4400, 4600, 4800)
	yIn := tensor.NewFloat64FromValues(1, 1, 1, 1, 1)
	yIn.Metadata().SetName("flux")

	res := errors.Must1(resample.Column(xIn, tensor.NewFloat64FromValues(4100, 4300, 4500), yIn, nil))
	fmt.Println(res)

	res = errors.Must1(resample.Column(xIn, tensor.NewFloat64FromValues(3500, 4100, 5500), yIn, nil))
	fmt.Println(res)
	// Output:
	// flux [3] [1, 1, 1]
	// flux [3] [--, 1, --]
}

func ExampleColumn_masked() {
	xIn := tensor.NewFloat64FromValues(4000, 4200, 4400, 4600, 4800)
	yIn := tensor.NewMasked(tensor.NewFloat64FromValues(1, 1, 1, 1, 1))
	yIn.Metadata().SetName("flux")
	yIn.SetMasked(true, 2)

	res := errors.Must1(resample.Column(xIn, tensor.NewFloat64FromValues(4100, 4300, 4500), yIn, nil))
	fmt.Println(res)
	// Output:
	// flux [3] [1, --, --]
}

func ExampleTable() {
	dt := table.NewTable("spectrum")
	flux := dt.AddFloat64Column("flux")
	wlen := dt.AddFloat64Column("wlen")
	dt.SetNumRows(3)
	tensor.SetFloats(flux, []float64{2, 4, 8})
	tensor.SetFloats(wlen, []float64{4000, 4200, 4400})

	xOut := tensor.NewFloat64FromValues(4100, 4300)
	res := errors.Must1(resample.Table(dt, resample.XName("wlen"), xOut, nil, nil))
	out := res.(*table.Table)
	for i := range out.NumColumns() {
		fmt.Println(out.ColumnByIndex(i))
	}
	// Output:
	// wlen [2] [4100, 4300]
	// flux [2] [3, 6]
}
