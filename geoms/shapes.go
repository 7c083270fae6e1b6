// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geoms

import (
	"fmt"

	"github.com/ajstarks/svgo"
)

// drawShape draws one point glyph centered at (x, y) with the given
// radius and CSS style.
func drawShape(c *svg.SVG, shape string, x, y, rad float64, style string) {
	switch shape {
	case "square":
		c.Path(rectPath(x-rad, y-rad, 2*rad, 2*rad), style)
	case "triangle":
		c.Path(fmt.Sprintf("M%.6g %.6gL%.6g %.6gL%.6g %.6gZ",
			x, y-rad, x+rad, y+rad, x-rad, y+rad), style)
	case "diamond":
		c.Path(fmt.Sprintf("M%.6g %.6gL%.6g %.6gL%.6g %.6gL%.6g %.6gZ",
			x, y-rad, x+rad, y, x, y+rad, x-rad, y), style)
	case "cross":
		c.Path(fmt.Sprintf("M%.6g %.6gL%.6g %.6gM%.6g %.6gL%.6g %.6g",
			x-rad, y-rad, x+rad, y+rad, x+rad, y-rad, x-rad, y+rad),
			style+";stroke-width:1.5;"+fillToStroke(style))
	default:
		c.Path(circlePath(x, y, rad), style)
	}
}

// circlePath returns a path drawing a full circle. Paths keep the
// whole figure in float coordinates.
func circlePath(x, y, rad float64) string {
	return fmt.Sprintf("M%.6g %.6gA%.6g %.6g 0 1 0 %.6g %.6gA%.6g %.6g 0 1 0 %.6g %.6gZ",
		x-rad, y, rad, rad, x+rad, y, rad, rad, x-rad, y)
}

func rectPath(x, y, w, h float64) string {
	return fmt.Sprintf("M%.6g %.6gH%.6gV%.6gH%.6gZ", x, y, x+w, y+h, x)
}

// fillToStroke rewrites a fill style into a stroke style for open
// glyphs.
func fillToStroke(style string) string {
	return "fill:none;stroke" + style[len("fill"):]
}
