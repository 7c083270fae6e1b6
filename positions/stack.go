// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package positions

import (
	"sort"

	"github.com/AamirAbro/ggplot/table"
)

// Stack piles each cell's marks on top of one another, group 1 at the
// bottom. Marks carrying ymin/ymax extents stack by height; marks
// with only y become running totals with ymin/ymax recording each
// band.
type Stack struct{}

func (Stack) Name() string { return "stack" }

func (Stack) Adjust(t *table.Table) (*table.Table, error) {
	return stackAdjust(t, false)
}

// Fill is Stack normalized so every cell's total is 1, for
// proportion plots.
type Fill struct{}

func (Fill) Name() string { return "fill" }

func (Fill) Adjust(t *table.Table) (*table.Table, error) {
	return stackAdjust(t, true)
}

func stackAdjust(t *table.Table, normalize bool) (*table.Table, error) {
	if t == nil || t.Len() == 0 {
		return t, nil
	}
	xcol := "x"
	if !t.Has(xcol) {
		xcol = "xmin"
	}
	if !t.Has(xcol) {
		return t, nil
	}
	xs := floatCol(t, xcol)
	panels := intColOr(t, "PANEL", 1)
	groups := intColOr(t, "group", 1)
	order, cells := cellRows(panels, xs)

	var ymin, ymax []float64
	hasExtent := t.Has("ymin") && t.Has("ymax")
	if hasExtent {
		ymin = append([]float64(nil), floatCol(t, "ymin")...)
		ymax = append([]float64(nil), floatCol(t, "ymax")...)
	} else if t.Has("y") {
		ys := floatCol(t, "y")
		ymin = make([]float64, len(ys))
		ymax = append([]float64(nil), ys...)
	} else {
		return t, nil
	}

	for _, k := range order {
		rows := cells[k]
		sort.Slice(rows, func(i, j int) bool {
			return groups[rows[i]] < groups[rows[j]]
		})
		cum := 0.0
		for _, r := range rows {
			h := ymax[r] - ymin[r]
			ymin[r] = cum
			ymax[r] = cum + h
			cum += h
		}
		if normalize && cum > 0 {
			for _, r := range rows {
				ymin[r] /= cum
				ymax[r] /= cum
			}
		}
	}

	t = t.Add("ymin", ymin).Add("ymax", ymax)
	if t.Has("y") {
		t = t.Add("y", append([]float64(nil), ymax...))
	}
	return t, nil
}
