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

// Line connects each group's points in x order with one path.
// Optional aesthetics: color, size (stroke width), and alpha.
type Line struct{}

func (Line) Name() string { return "line" }

func (Line) RequiredAes() []string { return []string{"x", "y"} }

func (Line) DefaultAes() map[string]interface{} {
	return map[string]interface{}{
		"color": colornames.Steelblue,
		"size":  1.0,
		"alpha": 1.0,
	}
}

func (Line) DefaultStat() gg.Stat { return nil }

func (Line) Draw(ax *gg.Axes, data *table.Table, zorder int) error {
	c := ax.Canvas()
	for _, idxs := range groupIndexes(data) {
		sub := data.RowSelect(idxs).SortBy("x")
		xs := floatCol(sub, "x", 0)
		ys := floatCol(sub, "y", 0)
		if len(xs) < 2 {
			continue
		}
		colors := colorCol(sub, "color", colornames.Steelblue)
		widths := floatCol(sub, "size", 1)
		alphas := floatCol(sub, "alpha", 1)

		path := []byte("M")
		for i := range xs {
			if i > 0 {
				path = append(path, 'L')
			}
			path = strconv.AppendFloat(path, ax.ToX(xs[i]), 'g', 6, 64)
			path = append(path, ' ')
			path = strconv.AppendFloat(path, ax.ToY(ys[i]), 'g', 6, 64)
		}

		style := gg.CSSPaint("stroke", colors[0]) +
			fmt.Sprintf(";stroke-width:%.6g;fill:none", widths[0])
		if alphas[0] < 1 {
			style += fmt.Sprintf(";opacity:%.6g", alphas[0])
		}
		c.Path(string(path), style)
	}
	return nil
}
