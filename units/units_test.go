// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"cogentcore.org/resample/base/metadata"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	u, err := Parse("angstrom")
	assert.NoError(t, err)
	assert.Equal(t, "Angstrom", u.Symbol)
	assert.Equal(t, 1e-10, u.Factor())

	u, err = Parse(" erg / (s cm2 Angstrom) ")
	assert.NoError(t, err)
	assert.Equal(t, "erg / (s cm2 Angstrom)", u.String())
	assert.Equal(t, 1.0, u.Factor())

	u, err = Parse("")
	assert.NoError(t, err)
	assert.True(t, u.IsZero())
	assert.Equal(t, 1.0, u.Factor())

	_, err = Parse("nm}")
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	a := New("nm", 1e-9)
	b, _ := Parse("NM")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Dimensionless))
	assert.False(t, Dimensionless.IsZero())
}

func TestMetadata(t *testing.T) {
	var md metadata.Data
	_, ok := From(md)
	assert.False(t, ok)

	SetOn(&md, New("Jy", 1e-26))
	u, ok := From(md)
	assert.True(t, ok)
	assert.Equal(t, "Jy", u.Symbol)

	SetOn(&md, Unit{})
	_, ok = From(md)
	assert.False(t, ok)
}
