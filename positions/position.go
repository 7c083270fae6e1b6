// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package positions provides the built-in position adjustments:
// Stack, Fill, Dodge, and Jitter. An adjustment sees a whole layer's
// table after stats run and resolves overlapping marks panel by
// panel.
package positions

import (
	"github.com/AamirAbro/ggplot/generic"
	"github.com/AamirAbro/ggplot/table"
)

func intColOr(t *table.Table, col string, def int) []int {
	if t.Has(col) {
		return t.Column(col).([]int)
	}
	out := make([]int, t.Len())
	for i := range out {
		out[i] = def
	}
	return out
}

func floatCol(t *table.Table, col string) []float64 {
	return generic.ToFloats(t.Column(col))
}

// cellKey identifies one stack or dodge cell: a panel plus an x
// location.
type cellKey struct {
	panel int
	x     float64
}

// cellRows groups row indexes by (panel, x), preserving first-seen
// cell order.
func cellRows(panels []int, xs []float64) ([]cellKey, map[cellKey][]int) {
	var order []cellKey
	cells := make(map[cellKey][]int)
	for i := range xs {
		k := cellKey{panels[i], xs[i]}
		if _, ok := cells[k]; !ok {
			order = append(order, k)
		}
		cells[k] = append(cells[k], i)
	}
	return order, cells
}
