// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "cogentcore.org/resample/units"

// UnitOf returns the physical unit attached to the tensor, if any.
func UnitOf(tsr Tensor) (units.Unit, bool) {
	return units.From(*tsr.Metadata())
}

// SetUnit attaches the given unit to the tensor,
// removing any unit if u is the zero Unit.
func SetUnit(tsr Tensor, u units.Unit) {
	units.SetOn(tsr.Metadata(), u)
}
