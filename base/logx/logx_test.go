// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	prevLevel, prevLog := UserLevel, slog.Default()
	defer func() {
		UserLevel = prevLevel
		slog.SetDefault(prevLog)
	}()

	var buf bytes.Buffer
	assert.NoError(t, SetUserLevel("warn", &buf))
	assert.Equal(t, slog.LevelWarn, UserLevel)

	slog.Info("hidden")
	assert.Empty(t, buf.String())

	slog.With("column", "flux").Warn("masked output", "n", 2)
	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "masked output")
	assert.Contains(t, out, "column=flux")
	assert.Contains(t, out, "n=2")

	assert.Error(t, SetUserLevel("loud", &buf))
}
