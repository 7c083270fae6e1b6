// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geoms

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/image/colornames"

	"github.com/AamirAbro/ggplot/gg"
	"github.com/AamirAbro/ggplot/ggstat"
	"github.com/AamirAbro/ggplot/table"
)

// Bar draws one rectangle per row from a baseline of 0 to y, centered
// on x. Before position adjustment it rewrites (x, width, y) into
// (xmin, xmax, ymin, ymax) so stacking and dodging work on extents.
// The default stat counts rows per x.
type Bar struct {
	// Width is the bar width in x units. Zero means 90% of the
	// smallest gap between distinct x values.
	Width float64
}

func (Bar) Name() string { return "bar" }

func (Bar) RequiredAes() []string { return []string{"x"} }

func (Bar) DefaultAes() map[string]interface{} {
	return map[string]interface{}{
		"fill":  colornames.Steelblue,
		"alpha": 1.0,
	}
}

func (Bar) DefaultStat() gg.Stat { return &ggstat.Count{} }

func (b Bar) Reparameterize(t *table.Table) (*table.Table, error) {
	if t.Len() == 0 {
		return t, nil
	}
	xs := floatCol(t, "x", 0)
	ys := floatCol(t, "y", 0)

	w := b.Width
	if t.Has("width") {
		w = floatCol(t, "width", w)[0]
	}
	if w <= 0 {
		w = 0.9 * resolution(xs)
	}

	xmin := make([]float64, len(xs))
	xmax := make([]float64, len(xs))
	ymin := make([]float64, len(xs))
	ymax := make([]float64, len(xs))
	for i := range xs {
		xmin[i] = xs[i] - w/2
		xmax[i] = xs[i] + w/2
		ymin[i] = math.Min(0, ys[i])
		ymax[i] = math.Max(0, ys[i])
	}
	return t.Add("xmin", xmin).Add("xmax", xmax).Add("ymin", ymin).Add("ymax", ymax), nil
}

func (Bar) Draw(ax *gg.Axes, data *table.Table, zorder int) error {
	xmin := floatCol(data, "xmin", 0)
	xmax := floatCol(data, "xmax", 0)
	ymin := floatCol(data, "ymin", 0)
	ymax := floatCol(data, "ymax", 0)
	fills := colorCol(data, "fill", colornames.Steelblue)
	alphas := floatCol(data, "alpha", 1)

	c := ax.Canvas()
	for i := range xmin {
		x0, x1 := ax.ToX(xmin[i]), ax.ToX(xmax[i])
		y0, y1 := ax.ToY(ymax[i]), ax.ToY(ymin[i])
		style := gg.CSSPaint("fill", fills[i])
		if alphas[i] < 1 {
			style += fmt.Sprintf(";fill-opacity:%.6g", alphas[i])
		}
		c.Path(rectPath(x0, y0, x1-x0, y1-y0), style)
	}
	return nil
}

// resolution returns the smallest gap between distinct values of xs,
// or 1 when there are fewer than two distinct values.
func resolution(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	res := math.Inf(1)
	for i := 1; i < len(sorted); i++ {
		if d := sorted[i] - sorted[i-1]; d > 0 && d < res {
			res = d
		}
	}
	if math.IsInf(res, 1) {
		return 1
	}
	return res
}
