// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import "fmt"

// Guides configures the legends drawn for non-position scales.
// The zero value defers the anchor to the theme.
type Guides struct {
	// Position overrides the theme's legend anchor: "right",
	// "left", "top", or "bottom".
	Position string
}

// legendAnchors maps a position name to the legend's anchor point in
// figure-fraction coordinates.
var legendAnchors = map[string][2]float64{
	"right":  {0.94, 0.5},
	"left":   {0.07, 0.5},
	"top":    {0.5, 0.95},
	"bottom": {0.5, 0.07},
}

// A Legend describes one discrete scale's key: a title plus one
// swatch per level.
type Legend struct {
	Aes     string
	Title   string
	Entries []LegendEntry
}

// A LegendEntry pairs a level's label with its mapped visual value
// (a color.Color for color scales, a shape name for shape scales, a
// float64 for size scales).
type LegendEntry struct {
	Label string
	Value interface{}
}

// buildLegends collects one legend per trained discrete non-position
// scale. Titles come from the aesthetic's mapping label, falling back
// to the aesthetic name. Scales with no trained levels contribute
// nothing; a plot with no discrete non-position scales gets no
// legends at all.
func buildLegends(scales *Scales, labels map[string]string) []*Legend {
	var out []*Legend
	for _, s := range scales.NonPosition() {
		ds, ok := s.(*DiscreteScale)
		if !ok {
			continue
		}
		levels := ds.Levels()
		if len(levels) == 0 {
			continue
		}
		title := labels[s.Aes()]
		if title == "" {
			title = s.Aes()
		}
		lg := &Legend{Aes: s.Aes(), Title: title}
		for i, v := range levels {
			lg.Entries = append(lg.Entries, LegendEntry{
				Label: fmt.Sprintf("%v", v),
				Value: ds.MapLevel(i),
			})
		}
		out = append(out, lg)
	}
	return out
}

// legendAnchor resolves the effective legend anchor from the guides
// override and the theme.
func legendAnchor(g Guides, theme Theme) (x, y float64, pos string, err error) {
	pos = g.Position
	if pos == "" {
		pos = theme.LegendPosition()
	}
	a, ok := legendAnchors[pos]
	if !ok {
		return 0, 0, "", specErrorf("unknown legend position %q", pos)
	}
	return a[0], a[1], pos, nil
}
