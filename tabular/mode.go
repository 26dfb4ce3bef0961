// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabular

import "slices"

// Modes are the ways in which [Prepare] gives access to columns.
type Modes int32

const (
	// ReadOnlyMode gives read-only views of the columns. Values that
	// are not already tensors are copied once.
	ReadOnlyMode Modes = iota

	// InPlaceMode gives the writable columns themselves, so that
	// updates are visible through the original tabular object.
	InPlaceMode

	// AllocateMode gives new zeroed columns of a given shape, with the
	// element type and metadata of the original columns.
	AllocateMode
)

// Mode is the access mode for [Prepare].
type Mode struct {
	// Kind is the kind of access.
	Kind Modes

	// Sizes is the shape of each column allocated in [AllocateMode].
	Sizes []int

	// Masked requests a mask on every allocated column,
	// in addition to those whose original column is masked.
	Masked bool

	// Names restricts and orders the columns, if non-empty.
	Names []string
}

var (
	// ReadOnly is read-only access to all columns.
	ReadOnly = Mode{Kind: ReadOnlyMode}

	// InPlace is writable access to all columns.
	InPlace = Mode{Kind: InPlaceMode}
)

// Allocate returns the mode that allocates new columns of the given shape.
func Allocate(sizes ...int) Mode {
	return Mode{Kind: AllocateMode, Sizes: slices.Clone(sizes)}
}

// WithMask returns the mode with a mask on every allocated column.
func (m Mode) WithMask() Mode {
	m.Masked = true
	return m
}

// Select returns the mode restricted to the given columns, in order.
func (m Mode) Select(names ...string) Mode {
	m.Names = slices.Clone(names)
	return m
}
