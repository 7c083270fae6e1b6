// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import "reflect"

// Nub returns v with duplicated values removed, preserving the order
// of first appearance. v's element type must be comparable.
func Nub(v Slice) Slice {
	return NubAppend(v)
}

// NubAppend is equivalent to concatenating all of vs and then
// removing duplicated values as Nub does.
func NubAppend(vs ...Slice) Slice {
	if len(vs) == 0 {
		return nil
	}
	rt := reflectSlice(vs[0]).Type()
	out := reflect.MakeSlice(rt, 0, 0)
	seen := make(map[interface{}]bool)
	for _, v := range vs {
		rv := reflectSlice(v)
		for i, n := 0, rv.Len(); i < n; i++ {
			x := rv.Index(i).Interface()
			if seen[x] {
				continue
			}
			seen[x] = true
			out = reflect.Append(out, rv.Index(i))
		}
	}
	return out.Interface()
}
