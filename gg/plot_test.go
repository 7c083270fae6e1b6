// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AamirAbro/ggplot/geoms"
	"github.com/AamirAbro/ggplot/gg"
	"github.com/AamirAbro/ggplot/ggstat"
	"github.com/AamirAbro/ggplot/positions"
	"github.com/AamirAbro/ggplot/table"
)

func carsData() *table.Table {
	return table.New().
		Add("wt", []float64{2.6, 2.9, 2.3, 3.2, 3.4, 3.6}).
		Add("mpg", []float64{21, 21, 22.8, 21.4, 18.7, 18.1}).
		Add("cyl", []string{"4", "6", "4", "6", "4", "6"}).
		Add("gear", []string{"a", "a", "b", "b", "c", "c"})
}

func scatter() *gg.Plot {
	return gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x": gg.Col("wt"),
		"y": gg.Col("mpg"),
	})).Add(gg.NewLayer(geoms.Point{}))
}

func TestBuildNoLayers(t *testing.T) {
	_, err := gg.NewPlot(carsData(), gg.NewAes(nil)).Build()
	require.Error(t, err)
	var specErr *gg.SpecificationError
	assert.True(t, errors.As(err, &specErr), "expected a SpecificationError, got %v", err)
}

func TestBuildRequiredAesUnmapped(t *testing.T) {
	p := gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x": gg.Col("wt"),
	})).Add(gg.NewLayer(geoms.Point{}))
	_, err := p.Build()
	require.Error(t, err)
	var specErr *gg.SpecificationError
	assert.True(t, errors.As(err, &specErr))
	assert.Contains(t, err.Error(), `"y"`)
}

func TestBuildInvariants(t *testing.T) {
	p := gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x": gg.Col("wt"),
		"y": gg.Col("mpg"),
	})).
		Add(gg.NewLayer(geoms.Point{})).
		Add(gg.NewLayer(geoms.Line{})).
		Facet(gg.FacetGrid{Row: "gear", Col: "cyl"})

	b, err := p.Build()
	require.NoError(t, err)

	// One dataset per layer.
	require.Len(t, b.Data, 2)

	// Panel ids are {1..nrow*ncol}.
	layout := b.Panel.Layout
	assert.Equal(t, 3, layout.NRow)
	assert.Equal(t, 2, layout.NCol)
	require.Len(t, layout.Rows, 6)
	for i, lr := range layout.Rows {
		assert.Equal(t, i+1, lr.Panel)
	}

	// Every data row is tagged with a panel from the layout.
	for _, data := range b.Data {
		for _, pid := range data.Column("PANEL").([]int) {
			assert.GreaterOrEqual(t, pid, 1)
			assert.LessOrEqual(t, pid, 6)
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	p := scatter().Facet(gg.FacetWrap{Var: "gear", NCol: 2})

	b1, err := p.Build()
	require.NoError(t, err)
	b2, err := p.Build()
	require.NoError(t, err)

	require.Len(t, b2.Data, len(b1.Data))
	for i := range b1.Data {
		assert.Equal(t, b1.Data[i].Len(), b2.Data[i].Len())
		assert.Equal(t, b1.Data[i].Column("PANEL"), b2.Data[i].Column("PANEL"))
	}
	assert.Equal(t, b1.Panel.Ranges, b2.Panel.Ranges)
}

func TestFacetNullOnePanel(t *testing.T) {
	b, err := scatter().Build()
	require.NoError(t, err)
	assert.Len(t, b.Panel.Layout.Rows, 1)
}

func TestStackedBarsTwoPassTraining(t *testing.T) {
	data := table.New().
		Add("pos", []float64{1, 2, 1, 2}).
		Add("val", []float64{4, 6, 6, 4}).
		Add("grp", []string{"a", "a", "b", "b"})
	p := gg.NewPlot(data, gg.NewAes(map[string]gg.Mapping{
		"x":    gg.Col("pos"),
		"y":    gg.Col("val"),
		"fill": gg.Col("grp"),
	})).Add(&gg.Layer{
		Geom:     geoms.Bar{},
		Stat:     ggstat.Identity{},
		Position: positions.Stack{},
	})

	b, err := p.Build()
	require.NoError(t, err)

	// Each x location stacks to 10; the retrained y range must
	// cover it even though no single series reaches past 6.
	r := b.Panel.Ranges[0]
	assert.LessOrEqual(t, r.Y.Min, 0.0)
	assert.GreaterOrEqual(t, r.Y.Max, 10.0)

	ymax := b.Data[0].Column("ymax").([]float64)
	covered := false
	for _, v := range ymax {
		if v == 10 {
			covered = true
		}
	}
	assert.True(t, covered, "some stacked bar should top out at 10; got %v", ymax)
}

func TestScaleBackfill(t *testing.T) {
	p := gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x":     gg.Col("wt"),
		"y":     gg.Col("mpg"),
		"color": gg.Col("cyl"),
	})).Add(gg.NewLayer(geoms.Point{}))

	b, err := p.Build()
	require.NoError(t, err)

	// The unscaled color aesthetic got a discrete default.
	cs := b.Scales.Get("color")
	require.NotNil(t, cs)
	assert.True(t, cs.Discrete())

	// Position scales got continuous defaults.
	require.NotNil(t, b.Scales.Get("x"))
	assert.False(t, b.Scales.Get("x").Discrete())
}

func TestCountStatBackfillsY(t *testing.T) {
	p := gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x": gg.Col("cyl"),
	})).Add(gg.NewLayer(geoms.Bar{}))

	b, err := p.Build()
	require.NoError(t, err)

	// Bar's default count stat provides y; the y scale is
	// backfilled after statistics as continuous.
	ys := b.Scales.Get("y")
	require.NotNil(t, ys)
	assert.False(t, ys.Discrete())

	data := b.Data[0]
	require.True(t, data.Has("y"))
	for _, v := range data.Column("y").([]float64) {
		assert.Equal(t, 3.0, v)
	}
}

func TestDiscreteXMapsToLevelPositions(t *testing.T) {
	p := gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x": gg.Col("cyl"),
		"y": gg.Col("mpg"),
	})).Add(gg.NewLayer(geoms.Point{}))

	b, err := p.Build()
	require.NoError(t, err)
	xs := b.Data[0].Column("x").([]float64)
	for _, x := range xs {
		assert.Contains(t, []float64{1, 2}, x)
	}
	r := b.Panel.Ranges[0]
	assert.Equal(t, 0.5, r.X.Min)
	assert.Equal(t, 2.5, r.X.Max)
}

func TestLogScaleTransformsData(t *testing.T) {
	data := table.New().
		Add("x", []float64{1, 10, 100}).
		Add("y", []float64{1, 2, 3})
	p := gg.NewPlot(data, gg.NewAes(map[string]gg.Mapping{
		"x": gg.Col("x"),
		"y": gg.Col("y"),
	})).
		Add(gg.NewLayer(geoms.Point{})).
		AddScale(gg.NewContinuousScale("x").SetTrans(gg.Log10Trans))

	b, err := p.Build()
	require.NoError(t, err)
	xs := b.Data[0].Column("x").([]float64)
	assert.Equal(t, []float64{0, 1, 2}, xs)
}

func TestLegendOmission(t *testing.T) {
	b, err := scatter().Build()
	require.NoError(t, err)
	assert.Empty(t, b.Legends)
}

func TestLegendFromDiscreteScale(t *testing.T) {
	p := gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x":     gg.Col("wt"),
		"y":     gg.Col("mpg"),
		"color": gg.Col("cyl"),
	})).Add(gg.NewLayer(geoms.Point{}))

	b, err := p.Build()
	require.NoError(t, err)
	require.Len(t, b.Legends, 1)
	lg := b.Legends[0]
	assert.Equal(t, "cyl", lg.Title)
	require.Len(t, lg.Entries, 2)
	assert.Equal(t, "4", lg.Entries[0].Label)
	assert.Equal(t, "6", lg.Entries[1].Label)
}

func TestRenderIdempotent(t *testing.T) {
	p := scatter()
	var buf1, buf2 bytes.Buffer
	_, err := p.Render(&buf1, 640, 480)
	require.NoError(t, err)
	_, err = p.Render(&buf2, 640, 480)
	require.NoError(t, err)

	assert.Equal(t, buf1.String(), buf2.String())
	assert.Contains(t, buf1.String(), "<svg")
	assert.Contains(t, buf1.String(), "geom-point")
	assert.Contains(t, buf1.String(), "</svg>")
}

func TestRenderFacetedWithLegend(t *testing.T) {
	p := gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x":     gg.Col("wt"),
		"y":     gg.Col("mpg"),
		"color": gg.Col("cyl"),
	})).
		Add(gg.NewLayer(geoms.Point{})).
		Facet(gg.FacetWrap{Var: "gear", NCol: 2}).
		Title("mileage by weight")

	var buf bytes.Buffer
	fig, err := p.Render(&buf, 800, 600)
	require.NoError(t, err)
	assert.Len(t, fig.Axes, 3)

	out := buf.String()
	assert.Contains(t, out, "mileage by weight")
	// One strip per wrap panel.
	assert.Equal(t, 3, strings.Count(out, `fill="#cccccc"`)+strings.Count(out, "fill:#cccccc"))
	// Legend swatches for both levels.
	assert.Contains(t, out, "cyl")
}

func TestRenderInvalidLegendPosition(t *testing.T) {
	p := gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x":     gg.Col("wt"),
		"y":     gg.Col("mpg"),
		"color": gg.Col("cyl"),
	})).
		Add(gg.NewLayer(geoms.Point{})).
		SetGuides(gg.Guides{Position: "middle"})

	var buf bytes.Buffer
	_, err := p.Render(&buf, 640, 480)
	require.Error(t, err)
	var specErr *gg.SpecificationError
	assert.True(t, errors.As(err, &specErr))
}

func TestEmptyDataRendersBlankPanel(t *testing.T) {
	empty := table.New().Add("v", []float64{})
	p := gg.NewPlot(empty, gg.NewAes(map[string]gg.Mapping{
		"x": gg.Col("v"),
	})).Add(gg.NewLayer(geoms.Bar{}))

	// The count stat has nothing to compute, but the layer's table
	// must keep its PANEL column for the draw loop.
	b, err := p.Build()
	require.NoError(t, err)
	require.True(t, b.Data[0].Has("PANEL"))
	assert.Equal(t, 0, b.Data[0].Len())

	var buf bytes.Buffer
	_, err = p.Render(&buf, 640, 480)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestJitterDeterministic(t *testing.T) {
	p := gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x": gg.Col("cyl"),
		"y": gg.Col("mpg"),
	})).Add(&gg.Layer{
		Geom:     geoms.Point{},
		Position: positions.Jitter{Width: 0.2, Seed: 7},
	})

	b1, err := p.Build()
	require.NoError(t, err)
	b2, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, b1.Data[0].Column("x"), b2.Data[0].Column("x"))
}

func TestBuildDoesNotMutatePlot(t *testing.T) {
	p := gg.NewPlot(carsData(), gg.NewAes(map[string]gg.Mapping{
		"x":     gg.Col("wt"),
		"y":     gg.Col("mpg"),
		"color": gg.Col("cyl"),
	})).Add(gg.NewLayer(geoms.Point{}))

	_, err := p.Build()
	require.NoError(t, err)

	// The registry on the original plot must stay untrained: a
	// second build starting from it sees the same world.
	b, err := p.Build()
	require.NoError(t, err)
	cs, ok := b.Scales.Get("color").(*gg.DiscreteScale)
	require.True(t, ok)
	assert.Len(t, cs.Levels(), 2)
}
