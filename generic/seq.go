// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generic provides reflection-based operations on slices of
// unknown element type. The plotting pipeline moves columns around as
// interface{}-typed slices; this package supplies the small set of
// slice verbs it needs.
package generic

import "reflect"

// A Slice is a Go slice value.
//
// This is primarily for documentation. There is no way to statically
// enforce this in Go; however, operations that expect a Slice will
// panic with a *TypeError if passed a non-slice value.
type Slice interface{}

// reflectSlice checks that s is a slice and returns its
// reflect.Value. It panics with a *TypeError if s is not a slice.
func reflectSlice(s Slice) reflect.Value {
	rv := reflect.ValueOf(s)
	if rv.Kind() != reflect.Slice {
		panic(&TypeError{rv.Type(), nil, "is not a slice"})
	}
	return rv
}

// Len returns the length of slice s.
func Len(s Slice) int {
	return reflectSlice(s).Len()
}

// CanOrder reports whether values of kind k are naturally ordered by
// the Go specification.
func CanOrder(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uintptr, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

// IsCardinal reports whether values of kind k are numeric and hence
// belong on a continuous scale by default.
func IsCardinal(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uintptr, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
