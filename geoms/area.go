// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geoms

import (
	"fmt"
	"strconv"

	"golang.org/x/image/colornames"

	"github.com/AamirAbro/ggplot/gg"
	"github.com/AamirAbro/ggplot/table"
)

// Area fills each group's band between ymin and ymax in x order.
// Without a ymin mapping the band runs from 0 to y, so stacked areas
// come out of the stack position's ymin/ymax extents.
type Area struct{}

func (Area) Name() string { return "area" }

func (Area) RequiredAes() []string { return []string{"x", "y"} }

func (Area) DefaultAes() map[string]interface{} {
	return map[string]interface{}{
		"fill":  colornames.Steelblue,
		"alpha": 1.0,
	}
}

func (Area) DefaultStat() gg.Stat { return nil }

func (Area) Draw(ax *gg.Axes, data *table.Table, zorder int) error {
	c := ax.Canvas()
	for _, idxs := range groupIndexes(data) {
		sub := data.RowSelect(idxs).SortBy("x")
		if sub.Len() < 2 {
			continue
		}
		xs := floatCol(sub, "x", 0)
		var top, bot []float64
		if sub.Has("ymax") {
			top = floatCol(sub, "ymax", 0)
			bot = floatCol(sub, "ymin", 0)
		} else {
			top = floatCol(sub, "y", 0)
			bot = floatCol(sub, "ymin", 0)
		}
		fills := colorCol(sub, "fill", colornames.Steelblue)
		alphas := floatCol(sub, "alpha", 1)

		path := []byte("M")
		for i := range xs {
			if i > 0 {
				path = append(path, 'L')
			}
			path = strconv.AppendFloat(path, ax.ToX(xs[i]), 'g', 6, 64)
			path = append(path, ' ')
			path = strconv.AppendFloat(path, ax.ToY(top[i]), 'g', 6, 64)
		}
		for i := len(xs) - 1; i >= 0; i-- {
			path = append(path, 'L')
			path = strconv.AppendFloat(path, ax.ToX(xs[i]), 'g', 6, 64)
			path = append(path, ' ')
			path = strconv.AppendFloat(path, ax.ToY(bot[i]), 'g', 6, 64)
		}
		path = append(path, 'Z')

		style := gg.CSSPaint("fill", fills[0])
		if alphas[0] < 1 {
			style += fmt.Sprintf(";fill-opacity:%.6g", alphas[0])
		}
		c.Path(string(path), style)
	}
	return nil
}
