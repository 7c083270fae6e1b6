// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"fmt"

	"github.com/AamirAbro/ggplot/generic"
	"github.com/AamirAbro/ggplot/table"
)

// Count tallies rows per distinct (x, group) pair. The output keeps
// one representative row per pair, so constant columns like fill
// survive, and adds a count column that feeds the y aesthetic by
// default.
type Count struct{}

func (Count) Name() string { return "count" }

func (Count) DefaultAes() map[string]string {
	return map[string]string{"y": "count"}
}

func (Count) Compute(t *table.Table) (*table.Table, error) {
	if !t.Has("x") {
		return nil, fmt.Errorf("stat count: no x column")
	}
	xs := generic.ToFloats(t.Column("x"))
	gs := groupCol(t)

	type cell struct {
		x float64
		g int
	}
	order := []cell{}
	firstRow := map[cell]int{}
	counts := map[cell]float64{}
	for i := range xs {
		c := cell{xs[i], gs[i]}
		if _, ok := counts[c]; !ok {
			order = append(order, c)
			firstRow[c] = i
		}
		counts[c]++
	}

	rows := make([]int, len(order))
	ns := make([]float64, len(order))
	for i, c := range order {
		rows[i] = firstRow[c]
		ns[i] = counts[c]
	}
	return t.RowSelect(rows).Add("count", ns), nil
}
