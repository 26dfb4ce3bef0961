// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testGrid struct {
	Start float64
	Stop  float64
	Step  float64
}

type testConfig struct {
	X       string
	Columns []string
	Grid    testGrid
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cfg.toml")
	cfg := &testConfig{X: "wlen", Columns: []string{"flux", "ivar"}, Grid: testGrid{4100, 4700, 200}}
	require.NoError(t, Save(cfg, fn))

	got := &testConfig{}
	require.NoError(t, Open(got, fn))
	assert.Equal(t, cfg, got)

	over := filepath.Join(t.TempDir(), "over.toml")
	require.NoError(t, Save(&struct{ X string }{"lambda"}, over))
	got = &testConfig{}
	require.NoError(t, OpenFiles(got, fn, over))
	assert.Equal(t, "lambda", got.X)
	assert.Equal(t, []string{"flux", "ivar"}, got.Columns)

	assert.Error(t, Open(got, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestReadBytes(t *testing.T) {
	got := &testConfig{}
	require.NoError(t, ReadBytes(got, []byte("X = \"wlen\"\n[Grid]\nStart = 1.0\n")))
	assert.Equal(t, "wlen", got.X)
	assert.Equal(t, 1.0, got.Grid.Start)
}
