// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package positions

import (
	"sort"

	"github.com/AamirAbro/ggplot/table"
)

// Dodge places each cell's marks side by side instead of on top of
// one another. Every group in the layer gets the same slot across
// cells so dodged bars align between x locations.
type Dodge struct {
	// Width is the total width shared by a cell's marks, in x
	// units. Zero means the extent of the cell's marks, or 0.8
	// for point marks.
	Width float64
}

func (Dodge) Name() string { return "dodge" }

func (d Dodge) Adjust(t *table.Table) (*table.Table, error) {
	if t == nil || t.Len() == 0 {
		return t, nil
	}
	groups := intColOr(t, "group", 1)
	panels := intColOr(t, "PANEL", 1)

	// Slot assignment is layer-wide.
	distinct := map[int]bool{}
	for _, g := range groups {
		distinct[g] = true
	}
	var ids []int
	for g := range distinct {
		ids = append(ids, g)
	}
	sort.Ints(ids)
	slot := make(map[int]int, len(ids))
	for i, g := range ids {
		slot[g] = i
	}
	n := float64(len(ids))

	if t.Has("xmin") && t.Has("xmax") {
		xmin := append([]float64(nil), floatCol(t, "xmin")...)
		xmax := append([]float64(nil), floatCol(t, "xmax")...)
		centers := make([]float64, len(xmin))
		for i := range centers {
			centers[i] = (xmin[i] + xmax[i]) / 2
		}
		order, cells := cellRows(panels, centers)
		for _, k := range order {
			for _, r := range cells[k] {
				w := d.Width
				if w <= 0 {
					w = xmax[r] - xmin[r]
				}
				each := w / n
				lo := k.x - w/2 + float64(slot[groups[r]])*each
				xmin[r], xmax[r] = lo, lo+each
			}
		}
		t = t.Add("xmin", xmin).Add("xmax", xmax)
		if t.Has("x") {
			xs := make([]float64, len(xmin))
			for i := range xs {
				xs[i] = (xmin[i] + xmax[i]) / 2
			}
			t = t.Add("x", xs)
		}
		return t, nil
	}

	if !t.Has("x") {
		return t, nil
	}
	xs := append([]float64(nil), floatCol(t, "x")...)
	w := d.Width
	if w <= 0 {
		w = 0.8
	}
	each := w / n
	for i := range xs {
		xs[i] = xs[i] - w/2 + (float64(slot[groups[i]])+0.5)*each
	}
	return t.Add("x", xs), nil
}
