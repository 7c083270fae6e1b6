// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import "reflect"

// ToFloats converts each element of from to a float64 and returns the
// converted slice. If from is already a []float64, it is returned
// unchanged. ToFloats panics with a *TypeError if from's elements
// cannot be converted to float64.
func ToFloats(from Slice) []float64 {
	switch from := from.(type) {
	case []float64:
		return from

	case []int:
		out := make([]float64, len(from))
		for i, v := range from {
			out[i] = float64(v)
		}
		return out
	}

	fv := reflectSlice(from)
	eltt := fv.Type().Elem()
	f64 := reflect.TypeOf(float64(0))
	if !eltt.ConvertibleTo(f64) {
		panic(&TypeError{fv.Type(), f64, "cannot be converted"})
	}
	out := make([]float64, fv.Len())
	for i := range out {
		out[i] = fv.Index(i).Convert(f64).Float()
	}
	return out
}

// CanFloats reports whether from's elements can be converted to
// float64 by ToFloats.
func CanFloats(from Slice) bool {
	fv := reflectSlice(from)
	return IsCardinal(fv.Type().Elem().Kind())
}
