// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/resample/base/metadata"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space

	// Detect is used during reading a file -- reads the first line and detects tabs or commas
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// DetectDelim returns the delimiter used in the given header line,
// preferring tabs, then commas, then spaces.
func DetectDelim(line string) Delims {
	switch {
	case strings.Contains(line, "\t"):
		return Tab
	case strings.Contains(line, ","):
		return Comma
	case strings.Contains(line, " "):
		return Space
	}
	return Comma
}

// SetPrecision sets the "precision" metadata value that determines
// the precision to use in writing floating point numbers to files.
func SetPrecision(md *metadata.Data, prec int) {
	md.Set("precision", prec)
}

// Precision gets the "precision" metadata value that determines
// the precision to use in writing floating point numbers to files.
// returns an error if not set.
func Precision(md metadata.Data) (int, error) {
	return metadata.Get[int](md, "precision")
}

// FormatFloat formats the value at the given flat index of a numeric
// tensor using its precision metadata, if set.
func FormatFloat(tsr Tensor, i int) string {
	prec := -1
	if ps, err := Precision(*tsr.Metadata()); err == nil {
		prec = ps
	}
	return strconv.FormatFloat(tsr.Float1D(i), 'g', prec, 64)
}

// MaxSprintLength is the default maximum length of a String() representation
// of a tensor, as generated by the Sprintf function.
var MaxSprintLength = 1000

// Sprintf returns a string representation of the given tensor,
// with a maximum length of as given: output is terminated
// when it exceeds that length. If maxLen = 0, [MaxSprintLength] is used.
// The format is the per-element format string; if empty it uses
// %g for numbers and %s for strings.
func Sprintf(tsr Tensor, maxLen int, format string) string {
	if maxLen == 0 {
		maxLen = MaxSprintLength
	}
	str := tsr.IsString()
	if format == "" {
		if str {
			format = "%s"
		} else {
			format = "%g"
		}
	}
	var b strings.Builder
	b.WriteString(tsr.Label())
	b.WriteString(" [")
	n := tsr.Len()
	for i := range n {
		if b.Len() > maxLen {
			b.WriteString(" ...")
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		if str {
			fmt.Fprintf(&b, format, tsr.String1D(i))
		} else {
			fmt.Fprintf(&b, format, tsr.Float1D(i))
		}
	}
	b.WriteString("]")
	return b.String()
}
