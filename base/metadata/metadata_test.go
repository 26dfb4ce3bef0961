// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mdobj struct {
	meta Data
}

func (mo *mdobj) Metadata() *Data { return &mo.meta }

func TestData(t *testing.T) {
	var md Data
	assert.Equal(t, "", md.GetName())
	md.SetName("flux")
	md.SetDoc("calibrated flux density")
	assert.Equal(t, "flux", md.GetName())
	assert.Equal(t, "calibrated flux density", md.GetDoc())

	md.Set("Precision", 4)
	p, err := Get[int](md, "Precision")
	assert.NoError(t, err)
	assert.Equal(t, 4, p)
	_, err = Get[string](md, "Precision")
	assert.Error(t, err)
	_, err = Get[int](md, "Missing")
	assert.Error(t, err)

	var cp Data
	cp.Copy(md)
	cp.SetName("ivar")
	assert.Equal(t, "flux", md.GetName())
	assert.Equal(t, "ivar", cp.GetName())

	cp.Delete("Precision")
	_, err = Get[int](cp, "Precision")
	assert.Error(t, err)
}

func TestStd(t *testing.T) {
	mo := &mdobj{}
	SetName(mo, "wlen")
	SetDoc(mo, "wavelength")
	assert.Equal(t, "wlen", Name(mo))
	assert.Equal(t, "wavelength", Doc(mo))

	assert.Error(t, SetTo(3, "Name", "x"))
	assert.Equal(t, "", Name(3))

	to := &mdobj{}
	CopyFrom(to, mo)
	assert.Equal(t, "wavelength", Doc(to))
}
