// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gg assembles statistical graphics from data, aesthetic
// mappings, and layers, in the grammar-of-graphics style. A Plot
// collects the specification; Build runs the fixed pipeline that
// turns it into trained scales, panels, and per-layer data tables;
// Render draws the result as SVG.
package gg

import (
	"io"
	"os"

	"github.com/AamirAbro/ggplot/table"
)

// A Plot is an immutable-by-convention plot specification: data, an
// aesthetic mapping, and any number of layers, scales, a facet, a
// theme, and guides. The configuration methods mutate and return the
// plot for chaining; Build never mutates it.
type Plot struct {
	data    *table.Table
	aes     Aes
	layers  []*Layer
	scales  *Scales
	faceter Faceter
	theme   Theme
	guides  Guides
	title   string
}

// NewPlot returns a plot of data with the given default aesthetic
// mapping. An empty mapping is fine if every layer brings its own.
func NewPlot(data *table.Table, aes Aes) *Plot {
	return &Plot{
		data:    data,
		aes:     aes,
		scales:  NewScales(),
		faceter: FacetNull{},
		theme:   defaultTheme.CloneTheme(),
	}
}

// Add appends a layer. Layers draw back to front in the order added.
func (p *Plot) Add(l *Layer) *Plot {
	l = l.Clone()
	l.zorder = len(p.layers)
	p.layers = append(p.layers, l)
	return p
}

// AddScale registers a scale, replacing any default or previous scale
// for the same aesthetic.
func (p *Plot) AddScale(s Scaler) *Plot {
	if p.scales.Has(s.Aes()) {
		Warning.Printf("replacing existing scale for %q", s.Aes())
	}
	p.scales.Add(s)
	return p
}

// Facet sets the facet strategy.
func (p *Plot) Facet(f Faceter) *Plot {
	p.faceter = f
	return p
}

// SetTheme sets the theme.
func (p *Plot) SetTheme(t Theme) *Plot {
	p.theme = t
	return p
}

// SetGuides sets the guide configuration.
func (p *Plot) SetGuides(g Guides) *Plot {
	p.guides = g
	return p
}

// Title sets the plot title.
func (p *Plot) Title(s string) *Plot {
	p.title = s
	return p
}

// clone deep-copies everything Build will train or mutate. Data
// tables and mappings are shared; they are immutable.
func (p *Plot) clone() *Plot {
	p2 := &Plot{
		data:    p.data,
		aes:     p.aes,
		scales:  p.scales.Clone(),
		faceter: p.faceter.CloneFaceter(),
		theme:   p.theme.CloneTheme(),
		guides:  p.guides,
		title:   p.title,
	}
	for _, l := range p.layers {
		p2.layers = append(p2.layers, l.Clone())
	}
	return p2
}

// A Build is the result of running the plot pipeline: one final data
// table per layer, the trained panel, and the labels and legends the
// renderer needs.
type Build struct {
	Plot    *Plot
	Data    []*table.Table
	Panel   *Panel
	Scales  *Scales
	Legends []*Legend
	Labels  map[string]string
}

// Build runs the plot pipeline and returns the trained build. The
// receiver is untouched; repeated builds of the same plot give the
// same result. The pipeline stages run in a fixed order: facet
// layout, aesthetic mapping, scale transforms, first-pass position
// training, position mapping, stats, statistic mapping, scale
// backfill, reparameterization, position adjustment, position
// retraining, non-position training and mapping, and range training.
func (p *Plot) Build() (*Build, error) {
	if len(p.layers) == 0 {
		return nil, specErrorf("cannot build a plot with no layers")
	}
	p = p.clone()

	// Facet layout from the raw layer data.
	raw := make([]*table.Table, len(p.layers))
	for i, l := range p.layers {
		raw[i] = l.dataOr(p.data)
		if raw[i] == nil {
			return nil, specErrorf("layer %d (geom %q) has no data", i, l.Geom.Name())
		}
	}
	layout, err := p.faceter.TrainLayout(raw)
	if err != nil {
		return nil, err
	}

	// Panel assignment, aesthetic mapping, grouping.
	data := make([]*table.Table, len(p.layers))
	for i, l := range p.layers {
		t, err := p.faceter.MapLayout(layout, raw[i])
		if err != nil {
			return nil, err
		}
		if t, err = l.computeAesthetics(t, p.aes); err != nil {
			return nil, err
		}
		data[i] = addGroup(t)
	}

	// Domain transforms and pre-stat scale backfill.
	for i := range data {
		data[i] = p.scales.TransformDF(data[i])
	}
	p.scales.AddMissing(data)

	xproto := p.scales.Get("x")
	if xproto == nil {
		xproto = NewContinuousScale("x")
		p.scales.Add(xproto)
	}
	yproto := p.scales.Get("y")
	if yproto == nil {
		yproto = NewContinuousScale("y")
		p.scales.Add(yproto)
	}
	panel := newPanel(layout, xproto, yproto)

	// First position pass: train on pre-stat data, then map so
	// stats and positions see numeric coordinates.
	panel.TrainPosition(data)
	for i := range data {
		data[i] = panel.MapPosition(data[i])
	}

	// Stats.
	if data, err = panel.CalculateStats(p.layers, data); err != nil {
		return nil, err
	}
	for i, l := range p.layers {
		data[i] = l.mapStatistic(data[i])
	}
	p.scales.AddMissing(data)

	// Geometry and position adjustment.
	for i, l := range p.layers {
		if data[i], err = l.reparameterize(data[i]); err != nil {
			return nil, err
		}
		if data[i], err = l.adjustPosition(data[i]); err != nil {
			return nil, err
		}
	}

	// Second position pass: adjusted extents retrain the
	// continuous scales so stacked and dodged marks fit.
	panel.RetrainPosition(data)

	// Non-position scales.
	for i := range data {
		p.scales.TrainDF(data[i])
	}
	for i := range data {
		data[i] = p.scales.MapDF(data[i])
	}

	if err = panel.TrainRanges(); err != nil {
		return nil, err
	}

	b := &Build{
		Plot:   p,
		Data:   data,
		Panel:  panel,
		Scales: p.scales,
		Labels: p.labels(),
	}
	b.Legends = buildLegends(p.scales, b.Labels)
	return b, nil
}

// labels collects the display label for each mapped aesthetic, layer
// mappings overriding the plot mapping.
func (p *Plot) labels() map[string]string {
	out := make(map[string]string)
	for _, l := range p.layers {
		for _, bnd := range effectiveAes(p.aes, l.Mapping) {
			if _, ok := out[bnd.aes]; !ok {
				out[bnd.aes] = bnd.mapping.Label()
			}
		}
	}
	return out
}

// Render builds the plot and writes it to w as an SVG of the given
// pixel size.
func (p *Plot) Render(w io.Writer, width, height int) (*Figure, error) {
	b, err := p.Build()
	if err != nil {
		return nil, err
	}
	return renderBuild(b, w, width, height)
}

// Show renders the plot to w at a default size. It is the
// convenience for interactive use; Render gives size control.
func (p *Plot) Show(w io.Writer) error {
	_, err := p.Render(w, 640, 480)
	return err
}

// WriteSVG renders the plot to a file.
func (p *Plot) WriteSVG(path string, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := p.Render(f, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
