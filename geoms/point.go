// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geoms

import (
	"fmt"

	"golang.org/x/image/colornames"

	"github.com/AamirAbro/ggplot/gg"
	"github.com/AamirAbro/ggplot/table"
)

// Point draws one mark per row at (x, y). Optional aesthetics:
// color, size (radius in pixels), alpha, and shape.
type Point struct{}

func (Point) Name() string { return "point" }

func (Point) RequiredAes() []string { return []string{"x", "y"} }

func (Point) DefaultAes() map[string]interface{} {
	return map[string]interface{}{
		"color": colornames.Steelblue,
		"size":  2.0,
		"alpha": 1.0,
		"shape": "circle",
	}
}

func (Point) DefaultStat() gg.Stat { return nil }

func (Point) Draw(ax *gg.Axes, data *table.Table, zorder int) error {
	xs := floatCol(data, "x", 0)
	ys := floatCol(data, "y", 0)
	sizes := floatCol(data, "size", 2)
	alphas := floatCol(data, "alpha", 1)
	colors := colorCol(data, "color", colornames.Steelblue)
	shapes := stringCol(data, "shape", "circle")

	c := ax.Canvas()
	for i := range xs {
		px, py := ax.ToX(xs[i]), ax.ToY(ys[i])
		style := gg.CSSPaint("fill", colors[i])
		if alphas[i] < 1 {
			style += fmt.Sprintf(";opacity:%.6g", alphas[i])
		}
		drawShape(c, shapes[i], px, py, sizes[i], style)
	}
	return nil
}
