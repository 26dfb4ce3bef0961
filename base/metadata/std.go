// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metadata

import "fmt"

// Metadataer is an interface for a type that returns associated
// metadata.Data using a Metadata() method.
type Metadataer interface {
	Metadata() *Data
}

// GetData gets the Data from given object, if it implements the
// Metadata() method. Returns nil if it does not.
func GetData(obj any) *Data {
	if md, ok := obj.(Metadataer); ok {
		return md.Metadata()
	}
	return nil
}

// SetTo sets a key-value pair on given object, if it implements the
// Metadataer interface. Returns an error if not.
func SetTo(obj any, key string, value any) error {
	md := GetData(obj)
	if md == nil {
		return fmt.Errorf("metadata.SetTo: type does not implement Metadataer: %T", obj)
	}
	md.Set(key, value)
	return nil
}

// GetFrom gets a value of given type from given object, if it
// implements the Metadataer interface.
func GetFrom[T any](obj any, key string) (T, error) {
	md := GetData(obj)
	if md == nil {
		var zv T
		return zv, fmt.Errorf("metadata.GetFrom: type does not implement Metadataer: %T", obj)
	}
	return Get[T](*md, key)
}

// CopyFrom copies all metadata from one object to another,
// when both implement the Metadataer interface.
func CopyFrom(to, from any) {
	tmd := GetData(to)
	fmd := GetData(from)
	if tmd == nil || fmd == nil {
		return
	}
	tmd.Copy(*fmd)
}

// SetName sets the "Name" standard key.
func SetName(obj any, name string) {
	SetTo(obj, "Name", name)
}

// Name returns the "Name" standard key value (empty if not set).
func Name(obj any) string {
	nm, _ := GetFrom[string](obj, "Name")
	return nm
}

// SetDoc sets the "Doc" standard key.
func SetDoc(obj any, doc string) {
	SetTo(obj, "Doc", doc)
}

// Doc returns the "Doc" standard key value (empty if not set).
func Doc(obj any) string {
	doc, _ := GetFrom[string](obj, "Doc")
	return doc
}
