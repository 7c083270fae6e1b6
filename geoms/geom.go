// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geoms provides the built-in geometries: Point, Line, Bar,
// and Area. Geoms receive fully scaled data tables and draw marks
// into a panel's Axes.
package geoms

import (
	"image/color"
	"reflect"

	"github.com/AamirAbro/ggplot/generic"
	"github.com/AamirAbro/ggplot/table"
)

// floatCol returns col as floats, or a broadcast of def when the
// column is missing.
func floatCol(t *table.Table, col string, def float64) []float64 {
	if !t.Has(col) {
		out := make([]float64, t.Len())
		for i := range out {
			out[i] = def
		}
		return out
	}
	return generic.ToFloats(t.Column(col))
}

// colorCol returns col as colors, or a broadcast of def when the
// column is missing.
func colorCol(t *table.Table, col string, def color.Color) []color.Color {
	if !t.Has(col) {
		out := make([]color.Color, t.Len())
		for i := range out {
			out[i] = def
		}
		return out
	}
	rv := reflect.ValueOf(t.Column(col))
	out := make([]color.Color, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface().(color.Color)
	}
	return out
}

// stringCol returns col as strings, or a broadcast of def when the
// column is missing.
func stringCol(t *table.Table, col string, def string) []string {
	if !t.Has(col) {
		out := make([]string, t.Len())
		for i := range out {
			out[i] = def
		}
		return out
	}
	rv := reflect.ValueOf(t.Column(col))
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface().(string)
	}
	return out
}

// intCol returns col as ints, or a broadcast of def when the column
// is missing.
func intCol(t *table.Table, col string, def int) []int {
	if !t.Has(col) {
		out := make([]int, t.Len())
		for i := range out {
			out[i] = def
		}
		return out
	}
	return t.Column(col).([]int)
}

// groupIndexes splits the row indexes of t by its group column,
// returning groups in ascending group id order.
func groupIndexes(t *table.Table) [][]int {
	gs := intCol(t, "group", 1)
	byID := make(map[int][]int)
	max := 0
	for i, g := range gs {
		byID[g] = append(byID[g], i)
		if g > max {
			max = g
		}
	}
	var out [][]int
	for g := 1; g <= max; g++ {
		if idxs := byID[g]; len(idxs) > 0 {
			out = append(out, idxs)
		}
	}
	return out
}
