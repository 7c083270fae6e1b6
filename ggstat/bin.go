// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"

	"github.com/AamirAbro/ggplot/generic"
	"github.com/AamirAbro/ggplot/table"
)

// Bin histograms x into equal-width bins, counting rows per bin per
// group. The output has one row per non-empty (bin, group) pair with
// x at the bin center, a count column, and a width column sized to
// the bin so bars tile exactly.
type Bin struct {
	// Bins is the number of bins over the x range. Zero means 30.
	Bins int

	// Width overrides Bins with a fixed bin width in x units.
	Width float64
}

func (Bin) Name() string { return "bin" }

func (Bin) DefaultAes() map[string]string {
	return map[string]string{"y": "count"}
}

func (b Bin) Compute(t *table.Table) (*table.Table, error) {
	if !t.Has("x") {
		return nil, fmt.Errorf("stat bin: no x column")
	}
	if t.Len() == 0 {
		return t, nil
	}
	xs := generic.ToFloats(t.Column("x"))
	gs := groupCol(t)

	lo, hi := stats.Bounds(xs)
	var width float64
	var nbins int
	switch {
	case b.Width > 0:
		width = b.Width
		nbins = int((hi-lo)/width) + 1
	case b.Bins > 0:
		nbins = b.Bins
	default:
		nbins = 30
	}
	if hi == lo {
		hi = lo + 1
	}
	edges := vec.Linspace(lo, hi, nbins+1)
	if width == 0 {
		width = edges[1] - edges[0]
	}

	bin := func(x float64) int {
		i := int((x - lo) / width)
		if i >= nbins {
			i = nbins - 1
		}
		if i < 0 {
			i = 0
		}
		return i
	}

	type cell struct {
		bin int
		g   int
	}
	order := []cell{}
	firstRow := map[cell]int{}
	counts := map[cell]float64{}
	for i := range xs {
		c := cell{bin(xs[i]), gs[i]}
		if _, ok := counts[c]; !ok {
			order = append(order, c)
			firstRow[c] = i
		}
		counts[c]++
	}

	rows := make([]int, len(order))
	centers := make([]float64, len(order))
	widths := make([]float64, len(order))
	ns := make([]float64, len(order))
	for i, c := range order {
		rows[i] = firstRow[c]
		centers[i] = lo + (float64(c.bin)+0.5)*width
		widths[i] = width
		ns[i] = counts[c]
	}
	return t.RowSelect(rows).
		Add("x", centers).
		Add("width", widths).
		Add("count", ns), nil
}
