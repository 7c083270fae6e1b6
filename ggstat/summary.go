// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ggstat

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/AamirAbro/ggplot/generic"
	"github.com/AamirAbro/ggplot/table"
)

// Summary reduces y to one aggregate value per distinct (x, group)
// pair. The default aggregate is the mean.
type Summary struct {
	// Fn aggregates each cell's y values. Nil means stats.Mean.
	Fn func(ys []float64) float64
}

func (Summary) Name() string { return "summary" }

func (Summary) DefaultAes() map[string]string { return nil }

func (s Summary) Compute(t *table.Table) (*table.Table, error) {
	if !t.Has("x") || !t.Has("y") {
		return nil, fmt.Errorf("stat summary: needs x and y columns")
	}
	fn := s.Fn
	if fn == nil {
		fn = stats.Mean
	}
	xs := generic.ToFloats(t.Column("x"))
	ys := generic.ToFloats(t.Column("y"))
	gs := groupCol(t)

	type cell struct {
		x float64
		g int
	}
	order := []cell{}
	firstRow := map[cell]int{}
	vals := map[cell][]float64{}
	for i := range xs {
		c := cell{xs[i], gs[i]}
		if _, ok := vals[c]; !ok {
			order = append(order, c)
			firstRow[c] = i
		}
		vals[c] = append(vals[c], ys[i])
	}

	rows := make([]int, len(order))
	outY := make([]float64, len(order))
	for i, c := range order {
		rows[i] = firstRow[c]
		outY[i] = fn(vals[c])
	}
	return t.RowSelect(rows).Add("y", outY), nil
}
