// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/ajstarks/svgo"
)

// A Tick is one axis break in an Axes, in (transformed) data space.
type Tick struct {
	Value float64
	Label string
	Minor bool
}

// An Axes is the drawing surface for one panel: a pixel rectangle
// plus the data-to-pixel projection. Geoms draw into it through the
// underlying SVG canvas.
type Axes struct {
	Panel int

	// Pixel rectangle of the panel, y growing down.
	X, Y, W, H float64

	// Display limits in scaled data space.
	XLim, YLim Interval

	XTicks, YTicks []Tick

	// ShowTickX and ShowTickY control whether this panel paints
	// tick marks and labels. Only edge panels do unless facet
	// scales are free.
	ShowTickX, ShowTickY bool

	Strips []Strip

	canvas *svg.SVG
	params *ThemeParams
}

// Canvas returns the SVG canvas the axes draw on.
func (ax *Axes) Canvas() *svg.SVG { return ax.canvas }

// Params returns the active theme parameters.
func (ax *Axes) Params() *ThemeParams { return ax.params }

// ToX projects a scaled data x value to a pixel x.
func (ax *Axes) ToX(v float64) float64 {
	span := ax.XLim.Max - ax.XLim.Min
	if span == 0 {
		return ax.X + ax.W/2
	}
	return ax.X + (v-ax.XLim.Min)/span*ax.W
}

// ToY projects a scaled data y value to a pixel y. Pixel y grows
// down, data y grows up.
func (ax *Axes) ToY(v float64) float64 {
	span := ax.YLim.Max - ax.YLim.Min
	if span == 0 {
		return ax.Y + ax.H/2
	}
	return ax.Y + ax.H - (v-ax.YLim.Min)/span*ax.H
}

// A Figure is a rendered plot: the final pixel size and the axes that
// were drawn, for post-draw inspection and modification.
type Figure struct {
	Width, Height int
	Axes          []*Axes
}

func r(x float64) int {
	if x < 0 {
		return int(x - 0.5)
	}
	return int(x + 0.5)
}

// CSSPaint returns a CSS fragment setting property prop to color c.
func CSSPaint(prop string, c color.Color) string {
	cr, cg, cb, ca := c.RGBA()
	if ca == 0 {
		return prop + ":none"
	}
	if ca != 0xffff {
		cr = cr * 0xffff / ca
		cg = cg * 0xffff / ca
		cb = cb * 0xffff / ca
	}
	cr, cg, cb = cr>>8, cg>>8, cb>>8

	css := fmt.Sprintf("%s:#%02x%02x%02x", prop, cr, cg, cb)
	if ca != 0xffff {
		css += ";" + prop + "-opacity:" + strconv.FormatFloat(float64(ca)/0xffff, 'g', 3, 64)
	}
	return css
}

const (
	marginLeft   = 60.0
	marginRight  = 25.0
	marginTop    = 25.0
	marginBottom = 48.0
	legendWidth  = 110.0
	legendHeight = 60.0
	stripHeight  = 18.0
)

// renderBuild draws a finished build to w as an SVG of the given
// pixel size.
func renderBuild(b *Build, w io.Writer, width, height int) (*Figure, error) {
	theme := b.Plot.theme
	params := theme.Params()
	layout := b.Panel.Layout
	wspace, hspace := b.Plot.faceter.Spacing()

	left, right := marginLeft, marginRight
	top, bottom := marginTop, marginBottom
	ax, ay, pos := 0.0, 0.0, ""
	if len(b.Legends) > 0 {
		var err error
		ax, ay, pos, err = legendAnchor(b.Plot.guides, theme)
		if err != nil {
			return nil, err
		}
		switch pos {
		case "right":
			right += legendWidth
		case "left":
			left += legendWidth
		case "top":
			top += legendHeight
		case "bottom":
			bottom += legendHeight
		}
	}
	if b.Plot.title != "" {
		top += 22
	}

	plotW := float64(width) - left - right
	plotH := float64(height) - top - bottom
	nc, nr := float64(layout.NCol), float64(layout.NRow)
	panelW := plotW / (nc + (nc-1)*wspace)
	panelH := plotH / (nr + (nr-1)*hspace)

	freeX := layout.NScalesX() > 1
	freeY := layout.NScalesY() > 1

	fig := &Figure{Width: width, Height: height}
	canvas := svg.New(w)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%.6gpx" font-family="sans-serif"`, params.FontSize))
	canvas.Rect(0, 0, width, height, "fill:"+params.FigureBackground)

	for _, lr := range layout.Rows {
		pr := b.Panel.rangeFor(lr)
		axes := &Axes{
			Panel:     lr.Panel,
			X:         left + float64(lr.Col)*panelW*(1+wspace),
			Y:         top + float64(lr.Row)*panelH*(1+hspace),
			W:         panelW,
			H:         panelH,
			XLim:      pr.X,
			YLim:      pr.Y,
			ShowTickX: freeX || lr.Row == layout.NRow-1,
			ShowTickY: freeY || lr.Col == 0,
			Strips:    b.Plot.faceter.Strips(layout, lr),
			canvas:    canvas,
			params:    params,
		}
		for _, v := range pr.XMinor {
			axes.XTicks = append(axes.XTicks, Tick{Value: v, Minor: true})
		}
		for i, v := range pr.XMajor {
			axes.XTicks = append(axes.XTicks, Tick{Value: v, Label: pr.XLabels[i]})
		}
		for _, v := range pr.YMinor {
			axes.YTicks = append(axes.YTicks, Tick{Value: v, Minor: true})
		}
		for i, v := range pr.YMajor {
			axes.YTicks = append(axes.YTicks, Tick{Value: v, Label: pr.YLabels[i]})
		}
		fig.Axes = append(fig.Axes, axes)
	}

	// Backgrounds, grids, data, and strips.
	for _, axes := range fig.Axes {
		renderPanelBackground(axes)
		for _, l := range b.Plot.layers {
			data := b.Data[l.zorder].FilterEq("PANEL", axes.Panel)
			if data.Len() == 0 {
				continue
			}
			data = l.applyDefaults(data)
			canvas.Gid(fmt.Sprintf("geom-%s-z%d-p%d", l.Geom.Name(), l.zorder, axes.Panel))
			err := l.draw(axes, data)
			canvas.Gend()
			if err != nil {
				return nil, err
			}
		}
		renderStrips(axes)
	}

	// Offer the position scales a pass over the finished axes
	// before the decorations paint.
	for _, s := range b.Panel.XScales {
		if m, ok := s.(AxesModifier); ok {
			m.ModifyAxes(fig, 'x')
		}
	}
	for _, s := range b.Panel.YScales {
		if m, ok := s.(AxesModifier); ok {
			m.ModifyAxes(fig, 'y')
		}
	}

	// Ticks, labels, and titles.
	for _, axes := range fig.Axes {
		theme.PostPlotCallback(axes)
		renderTicks(axes)
	}
	renderTitles(canvas, b, params, left, top, plotW, plotH, width, height)

	if len(b.Legends) > 0 {
		renderLegends(canvas, b.Legends, params, ax*float64(width), ay*float64(height))
	}

	canvas.End()
	return fig, nil
}

func renderPanelBackground(ax *Axes) {
	c, p := ax.canvas, ax.params
	if p.PanelBackground != "none" {
		c.Rect(r(ax.X), r(ax.Y), r(ax.W), r(ax.H), "fill:"+p.PanelBackground)
	}

	var minor, major []string
	for _, t := range ax.XTicks {
		if t.Value < ax.XLim.Min || t.Value > ax.XLim.Max {
			continue
		}
		seg := fmt.Sprintf("M%.6g %.6gV%.6g", ax.ToX(t.Value), ax.Y, ax.Y+ax.H)
		if t.Minor {
			minor = append(minor, seg)
		} else {
			major = append(major, seg)
		}
	}
	for _, t := range ax.YTicks {
		if t.Value < ax.YLim.Min || t.Value > ax.YLim.Max {
			continue
		}
		seg := fmt.Sprintf("M%.6g %.6gH%.6g", ax.X, ax.ToY(t.Value), ax.X+ax.W)
		if t.Minor {
			minor = append(minor, seg)
		} else {
			major = append(major, seg)
		}
	}
	if len(minor) > 0 && p.GridMinorColor != "none" {
		c.Path(strings.Join(minor, ""), fmt.Sprintf("stroke:%s;stroke-width:%.6g;fill:none", p.GridMinorColor, p.GridMinorWidth))
	}
	if len(major) > 0 && p.GridMajorColor != "none" {
		c.Path(strings.Join(major, ""), fmt.Sprintf("stroke:%s;stroke-width:%.6g;fill:none", p.GridMajorColor, p.GridMajorWidth))
	}
}

func renderStrips(ax *Axes) {
	c, p := ax.canvas, ax.params
	for _, s := range ax.Strips {
		switch s.Side {
		case 't':
			if p.StripBackground != "none" {
				c.Rect(r(ax.X), r(ax.Y-stripHeight), r(ax.W), r(stripHeight), "fill:"+p.StripBackground)
			}
			c.Text(r(ax.X+ax.W/2), r(ax.Y-stripHeight/2), s.Label,
				fmt.Sprintf(`text-anchor="middle" dy=".35em" fill="%s"`, p.TextColor))
		case 'r':
			if p.StripBackground != "none" {
				c.Rect(r(ax.X+ax.W), r(ax.Y), r(stripHeight), r(ax.H), "fill:"+p.StripBackground)
			}
			c.Gtransform(fmt.Sprintf("rotate(90 %d %d)", r(ax.X+ax.W+stripHeight/2), r(ax.Y+ax.H/2)))
			c.Text(r(ax.X+ax.W+stripHeight/2), r(ax.Y+ax.H/2), s.Label,
				fmt.Sprintf(`text-anchor="middle" dy=".35em" fill="%s"`, p.TextColor))
			c.Gend()
		}
	}
}

func renderTicks(ax *Axes) {
	c, p := ax.canvas, ax.params
	tickLen := 4.0
	if ax.ShowTickX {
		for _, t := range ax.XTicks {
			if t.Minor || t.Value < ax.XLim.Min || t.Value > ax.XLim.Max {
				continue
			}
			x := ax.ToX(t.Value)
			c.Path(fmt.Sprintf("M%.6g %.6gV%.6g", x, ax.Y+ax.H, ax.Y+ax.H+tickLen),
				"stroke:"+p.TickColor+";fill:none")
			if t.Label != "" {
				c.Text(r(x), r(ax.Y+ax.H+tickLen), t.Label,
					fmt.Sprintf(`text-anchor="middle" dy="1em" fill="%s"`, p.TextColor))
			}
		}
	}
	if ax.ShowTickY {
		for _, t := range ax.YTicks {
			if t.Minor || t.Value < ax.YLim.Min || t.Value > ax.YLim.Max {
				continue
			}
			y := ax.ToY(t.Value)
			c.Path(fmt.Sprintf("M%.6g %.6gH%.6g", ax.X, y, ax.X-tickLen),
				"stroke:"+p.TickColor+";fill:none")
			if t.Label != "" {
				c.Text(r(ax.X-tickLen-2), r(y), t.Label,
					fmt.Sprintf(`text-anchor="end" dy=".35em" fill="%s"`, p.TextColor))
			}
		}
	}
}

func renderTitles(c *svg.SVG, b *Build, p *ThemeParams, left, top, plotW, plotH float64, width, height int) {
	if b.Plot.title != "" {
		c.Text(r(left+plotW/2), r(top-18), b.Plot.title,
			fmt.Sprintf(`text-anchor="middle" font-size="%.6gpx" fill="%s"`, p.TitleSize, p.TextColor))
	}
	if xl := b.Labels["x"]; xl != "" {
		c.Text(r(left+plotW/2), height-12, xl,
			fmt.Sprintf(`text-anchor="middle" fill="%s"`, p.TextColor))
	}
	if yl := b.Labels["y"]; yl != "" {
		cx, cy := 16, r(top+plotH/2)
		c.Gtransform(fmt.Sprintf("rotate(-90 %d %d)", cx, cy))
		c.Text(cx, cy, yl, fmt.Sprintf(`text-anchor="middle" fill="%s"`, p.TextColor))
		c.Gend()
	}
}

func renderLegends(c *svg.SVG, legends []*Legend, p *ThemeParams, cx, cy float64) {
	const entryH, swatch = 18.0, 12.0

	total := 0.0
	for _, lg := range legends {
		total += entryH * float64(len(lg.Entries)+1)
	}
	y := cy - total/2

	for _, lg := range legends {
		c.Text(r(cx-swatch), r(y+entryH/2), lg.Title,
			fmt.Sprintf(`dy=".35em" fill="%s" font-weight="bold"`, p.TextColor))
		y += entryH
		for _, e := range lg.Entries {
			drawSwatch(c, e.Value, cx-swatch, y+(entryH-swatch)/2, swatch)
			c.Text(r(cx+4), r(y+entryH/2), e.Label,
				fmt.Sprintf(`dy=".35em" fill="%s"`, p.TextColor))
			y += entryH
		}
	}
}

func drawSwatch(c *svg.SVG, v interface{}, x, y, size float64) {
	switch v := v.(type) {
	case color.Color:
		c.Rect(r(x), r(y), r(size), r(size), CSSPaint("fill", v))
	case string:
		// Shape palettes draw their glyph.
		cx, cy, rad := x+size/2, y+size/2, size/2
		switch v {
		case "square":
			c.Rect(r(x), r(y), r(size), r(size), "fill:#444")
		case "triangle":
			c.Path(fmt.Sprintf("M%.6g %.6gL%.6g %.6gL%.6g %.6gZ", cx, y, x+size, y+size, x, y+size), "fill:#444")
		case "diamond":
			c.Path(fmt.Sprintf("M%.6g %.6gL%.6g %.6gL%.6g %.6gL%.6g %.6gZ", cx, y, x+size, cy, cx, y+size, x, cy), "fill:#444")
		case "cross":
			c.Path(fmt.Sprintf("M%.6g %.6gL%.6g %.6gM%.6g %.6gL%.6g %.6g", x, y, x+size, y+size, x+size, y, x, y+size), "stroke:#444;fill:none;stroke-width:2")
		default:
			c.Circle(r(cx), r(cy), r(rad), "fill:#444")
		}
	case float64:
		cx, cy := x+size/2, y+size/2
		c.Circle(r(cx), r(cy), r(v/2), "fill:#444")
	default:
		c.Rect(r(x), r(y), r(size), r(size), "fill:#888")
	}
}
