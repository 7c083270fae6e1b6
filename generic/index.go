// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import "reflect"

// MultiIndex returns a slice w such that w[i] = v[indexes[i]]. v must
// be a slice.
func MultiIndex(v Slice, indexes []int) Slice {
	switch v := v.(type) {
	case []int:
		res := make([]int, len(indexes))
		for i, x := range indexes {
			res[i] = v[x]
		}
		return res

	case []float64:
		res := make([]float64, len(indexes))
		for i, x := range indexes {
			res[i] = v[x]
		}
		return res

	case []string:
		res := make([]string, len(indexes))
		for i, x := range indexes {
			res[i] = v[x]
		}
		return res
	}

	rv := reflectSlice(v)
	res := reflect.MakeSlice(rv.Type(), len(indexes), len(indexes))
	for i, x := range indexes {
		res.Index(i).Set(rv.Index(x))
	}
	return res.Interface()
}

// Repeat returns a slice of length count*len(v) consisting of count
// concatenated copies of v.
func Repeat(v Slice, count int) Slice {
	rv := reflectSlice(v)
	n := rv.Len()
	res := reflect.MakeSlice(rv.Type(), 0, n*count)
	for i := 0; i < count; i++ {
		res = reflect.AppendSlice(res, rv)
	}
	return res.Interface()
}

// Concat concatenates the given slices, which must all have the same
// element type, into a single slice.
func Concat(vs ...Slice) Slice {
	if len(vs) == 0 {
		return nil
	}
	res := reflect.MakeSlice(reflectSlice(vs[0]).Type(), 0, 0)
	for _, v := range vs {
		res = reflect.AppendSlice(res, reflectSlice(v))
	}
	return res.Interface()
}
