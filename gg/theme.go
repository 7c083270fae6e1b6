// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

// ThemeParams holds the visual constants a theme draws with. Colors
// are CSS strings so they pass straight to the SVG attributes.
type ThemeParams struct {
	FigureBackground string
	PanelBackground  string
	GridMajorColor   string
	GridMinorColor   string
	GridMajorWidth   float64
	GridMinorWidth   float64
	StripBackground  string
	TextColor        string
	TickColor        string
	FontSize         float64
	TitleSize        float64
}

// A Theme styles everything around the data: panel backgrounds,
// grids, ticks, strips, and the legend anchor. PostPlotCallback runs
// once per axes after the data is drawn so themes can veto or restyle
// decorations.
type Theme interface {
	Params() *ThemeParams

	// PostPlotCallback adjusts axes decorations after the draw
	// loop, before ticks and labels paint.
	PostPlotCallback(ax *Axes)

	// LegendPosition names the legend anchor: "right", "left",
	// "top", or "bottom".
	LegendPosition() string

	CloneTheme() Theme
}

// defaultTheme is the theme new plots start with.
var defaultTheme Theme = NewThemeGray()

// UseTheme makes t the default theme for plots constructed until the
// returned restore function runs. Plots that already exist keep their
// theme.
func UseTheme(t Theme) (restore func()) {
	old := defaultTheme
	defaultTheme = t
	return func() { defaultTheme = old }
}

// ThemeGray is the default theme: gray panels, white grid lines,
// ticks and labels only on the outer edges of the panel grid.
type ThemeGray struct {
	legendPos string
}

// NewThemeGray returns the default theme with the legend on the
// right.
func NewThemeGray() *ThemeGray {
	return &ThemeGray{legendPos: "right"}
}

// WithLegendPosition moves the legend anchor and returns the theme.
func (t *ThemeGray) WithLegendPosition(pos string) *ThemeGray {
	t.legendPos = pos
	return t
}

func (t *ThemeGray) Params() *ThemeParams {
	return &ThemeParams{
		FigureBackground: "#ffffff",
		PanelBackground:  "#eeeeee",
		GridMajorColor:   "#ffffff",
		GridMinorColor:   "#f6f6f6",
		GridMajorWidth:   1.2,
		GridMinorWidth:   0.6,
		StripBackground:  "#cccccc",
		TextColor:        "#444444",
		TickColor:        "#666666",
		FontSize:         11,
		TitleSize:        14,
	}
}

func (t *ThemeGray) PostPlotCallback(ax *Axes) {}

func (t *ThemeGray) LegendPosition() string { return t.legendPos }

func (t *ThemeGray) CloneTheme() Theme {
	t2 := *t
	return &t2
}

// ThemeBW is ThemeGray with white panels and gray grid lines.
type ThemeBW struct {
	ThemeGray
}

// NewThemeBW returns the black-and-white theme.
func NewThemeBW() *ThemeBW {
	return &ThemeBW{ThemeGray{legendPos: "right"}}
}

func (t *ThemeBW) Params() *ThemeParams {
	p := t.ThemeGray.Params()
	p.PanelBackground = "#ffffff"
	p.GridMajorColor = "#d9d9d9"
	p.GridMinorColor = "#ececec"
	return p
}

func (t *ThemeBW) CloneTheme() Theme {
	t2 := *t
	return &t2
}

// ThemeMinimal drops the panel background and minor grid entirely.
type ThemeMinimal struct {
	ThemeGray
}

// NewThemeMinimal returns the minimal theme.
func NewThemeMinimal() *ThemeMinimal {
	return &ThemeMinimal{ThemeGray{legendPos: "right"}}
}

func (t *ThemeMinimal) Params() *ThemeParams {
	p := t.ThemeGray.Params()
	p.PanelBackground = "none"
	p.GridMajorColor = "#e5e5e5"
	p.GridMinorColor = "none"
	p.StripBackground = "none"
	return p
}

func (t *ThemeMinimal) CloneTheme() Theme {
	t2 := *t
	return &t2
}
