// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"
	"image/color"
	"math"
	"reflect"

	"github.com/aclements/go-moremath/scale"
	"golang.org/x/image/colornames"

	"github.com/AamirAbro/ggplot/generic"
	"github.com/AamirAbro/ggplot/table"
)

// An Interval is a (possibly unset) real interval. Both edges are NaN
// until the first Update.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include each finite x.
func (i *Interval) Update(xs ...float64) {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if !(i.Min <= x) {
			i.Min = x
		}
		if !(i.Max >= x) {
			i.Max = x
		}
	}
}

// IsUnset reports whether i has never been updated.
func (i Interval) IsUnset() bool {
	return math.IsNaN(i.Min) || math.IsNaN(i.Max)
}

// A Scaler maps data-domain values to visual values for one
// aesthetic. Training (ExpandDomain) accumulates the observed domain
// across all panels and layers before any mapping happens.
type Scaler interface {
	// Aes returns the aesthetic this scale serves ("x", "color", ...).
	Aes() string

	// ExpandDomain folds the values in seq into the trained domain.
	ExpandDomain(seq table.Slice)

	// ResetDomain clears the trained domain so a second training
	// pass starts clean.
	ResetDomain()

	// TransformSeq applies the scale's domain transform (log,
	// sqrt, ...) to seq. Identity for discrete scales.
	TransformSeq(seq table.Slice) table.Slice

	// MapSeq converts trained domain values into final visual
	// values: numeric positions for position scales, palette
	// values (colors, sizes, ...) for the rest.
	MapSeq(seq table.Slice) table.Slice

	// Discrete reports whether the domain is categorical.
	Discrete() bool

	// Limits returns the display range of the scale in
	// (transformed) numeric space, including expansion.
	Limits() Interval

	// Ticks computes up to n major break positions with minor
	// positions and labels.
	Ticks(n int) (major, minor []float64, labels []string)

	CloneScaler() Scaler
}

// An AxesModifier is an optional Scaler capability: after the draw
// loop the render pass offers every position scale the chance to
// post-process the figure's axes (for example, re-labelling log-scale
// ticks in data space). Scales without the capability are skipped.
type AxesModifier interface {
	ModifyAxes(fig *Figure, axis byte)
}

// breakSpecer and labelSpecer expose a scale's user break/label
// specification to panel range training. Scales that don't carry
// specs fall back to computed defaults.
type breakSpecer interface {
	breakSpec() Breaks
}

type labelSpecer interface {
	labelSpec() Labels
}

// tickLabeler lets a scale format break values. Continuous scales use
// their transform's labelling so explicit breaks on a log scale read
// in data space.
type tickLabeler interface {
	tickLabel(x float64) string
}

// ContinuousScale maps a cardinal domain onto a continuous range. Its
// zero expansion behavior mimics ggplot2: the display range widens
// the data range by a relative amount so extremes don't sit on the
// panel edge.
type ContinuousScale struct {
	aes   string
	trans Transformation

	data   Interval // trained, in transformed space
	fixed  Interval // user-fixed limits; NaN edges autoscale
	expand float64

	breaks Breaks
	labels Labels

	// mapper, when non-nil, converts a unit-interval position into
	// a visual value (size, alpha, color ramp). Position scales
	// leave it nil and pass numeric values through.
	mapper func(u float64) interface{}
}

// NewContinuousScale returns a continuous scale for aes with an
// identity transform. Position scales map values through unchanged;
// use SetMapper (or the size/alpha/ramp constructors) for visual
// ranges.
func NewContinuousScale(aes string) *ContinuousScale {
	return &ContinuousScale{
		aes:    aes,
		trans:  IdentityTrans,
		data:   unsetInterval(),
		fixed:  unsetInterval(),
		expand: 0.05,
	}
}

// NewSizeScale returns a continuous scale mapping the data range onto
// point areas between lo and hi display units.
func NewSizeScale(aes string, lo, hi float64) *ContinuousScale {
	s := NewContinuousScale(aes)
	s.expand = 0
	s.mapper = func(u float64) interface{} {
		// Area-proportional, so radius grows with sqrt.
		return math.Sqrt(lo*lo + u*(hi*hi-lo*lo))
	}
	return s
}

// NewAlphaScale returns a continuous scale mapping the data range
// onto opacities in [lo, hi].
func NewAlphaScale(aes string, lo, hi float64) *ContinuousScale {
	s := NewContinuousScale(aes)
	s.expand = 0
	s.mapper = func(u float64) interface{} { return lo + u*(hi-lo) }
	return s
}

// NewColorRampScale returns a continuous scale mapping the data range
// onto colors interpolated from lo to hi.
func NewColorRampScale(aes string, lo, hi color.Color) *ContinuousScale {
	s := NewContinuousScale(aes)
	s.expand = 0
	s.mapper = func(u float64) interface{} { return lerpColor(lo, hi, u) }
	return s
}

// SetTrans sets the domain transform and returns s for chaining.
func (s *ContinuousScale) SetTrans(t Transformation) *ContinuousScale {
	s.trans = t
	return s
}

// SetLimits fixes one or both display limits. NaN leaves an edge
// autoscaled.
func (s *ContinuousScale) SetLimits(min, max float64) *ContinuousScale {
	s.fixed = Interval{min, max}
	return s
}

// SetBreaks sets the break specification.
func (s *ContinuousScale) SetBreaks(b Breaks) *ContinuousScale {
	s.breaks = b
	return s
}

// SetLabels sets the break label specification.
func (s *ContinuousScale) SetLabels(l Labels) *ContinuousScale {
	s.labels = l
	return s
}

func (s *ContinuousScale) Aes() string       { return s.aes }
func (s *ContinuousScale) Discrete() bool    { return false }
func (s *ContinuousScale) breakSpec() Breaks { return s.breaks }
func (s *ContinuousScale) labelSpec() Labels { return s.labels }

func (s *ContinuousScale) String() string {
	return fmt.Sprintf("continuous %s [%g,%g]", s.aes, s.data.Min, s.data.Max)
}

func (s *ContinuousScale) ExpandDomain(seq table.Slice) {
	if !generic.CanFloats(seq) {
		panic(&generic.TypeError{Type: reflect.TypeOf(seq), Extra: "cannot train a continuous scale"})
	}
	s.data.Update(generic.ToFloats(seq)...)
}

func (s *ContinuousScale) ResetDomain() {
	s.data = unsetInterval()
}

func (s *ContinuousScale) TransformSeq(seq table.Slice) table.Slice {
	if s.trans.isIdentity() {
		return seq
	}
	return s.trans.mapFloats(generic.ToFloats(seq))
}

func (s *ContinuousScale) MapSeq(seq table.Slice) table.Slice {
	xs := generic.ToFloats(seq)
	if s.mapper == nil {
		return xs
	}
	lim := s.Limits()
	span := lim.Max - lim.Min
	rt := reflect.TypeOf(s.mapper(0))
	res := reflect.MakeSlice(reflect.SliceOf(rt), len(xs), len(xs))
	for i, x := range xs {
		u := 0.5
		if span > 0 {
			u = (x - lim.Min) / span
		}
		res.Index(i).Set(reflect.ValueOf(s.mapper(u)))
	}
	return res.Interface()
}

func (s *ContinuousScale) Limits() Interval {
	lim := s.data
	if lim.IsUnset() {
		// Nothing trained; keep the plot drawable.
		lim = Interval{-1, 1}
	}
	if lim.Min == lim.Max {
		lim.Min, lim.Max = lim.Min-0.5, lim.Max+0.5
	}
	ext := s.expand * (lim.Max - lim.Min)
	lim.Min -= ext
	lim.Max += ext
	if !math.IsNaN(s.fixed.Min) {
		lim.Min = s.fixed.Min
	}
	if !math.IsNaN(s.fixed.Max) {
		lim.Max = s.fixed.Max
	}
	return lim
}

func (s *ContinuousScale) Ticks(n int) (major, minor []float64, labels []string) {
	lim := s.Limits()
	ls := scale.Linear{Min: lim.Min, Max: lim.Max}
	major, minor = ls.Ticks(scale.TickOptions{Max: n})
	labels = make([]string, len(major))
	for i, x := range major {
		labels[i] = s.tickLabel(x)
	}
	return major, minor, labels
}

func (s *ContinuousScale) tickLabel(x float64) string {
	if s.trans.TickLabel != nil {
		return s.trans.TickLabel(x)
	}
	return fmt.Sprintf("%g", x)
}

// ModifyAxes re-labels the figure's ticks for this scale's axis in
// data space when the transform defines its own tick labelling.
func (s *ContinuousScale) ModifyAxes(fig *Figure, axis byte) {
	if s.trans.TickLabel == nil {
		return
	}
	for _, ax := range fig.Axes {
		ticks := ax.XTicks
		if axis == 'y' {
			ticks = ax.YTicks
		}
		for i := range ticks {
			ticks[i].Label = s.trans.TickLabel(ticks[i].Value)
		}
	}
}

func (s *ContinuousScale) CloneScaler() Scaler {
	s2 := *s
	return &s2
}

// DiscreteScale maps a categorical domain onto level indexes (for
// positions) or palette values (for non-position aesthetics). Levels
// accumulate across training calls; if the level type is orderable
// the levels are kept in value order, otherwise in first-appearance
// order.
type DiscreteScale struct {
	aes string

	all    []table.Slice
	levels table.Slice
	index  map[interface{}]int

	// palette, when non-nil, returns the visual value for level i
	// of n. Position scales leave it nil and map levels to their
	// 1-based index.
	palette func(i, n int) interface{}

	breaks Breaks
	labels Labels
}

// NewDiscreteScale returns a discrete position scale for aes.
func NewDiscreteScale(aes string) *DiscreteScale {
	return &DiscreteScale{aes: aes}
}

// NewDiscreteColorScale returns a discrete scale mapping levels onto
// the default qualitative color palette.
func NewDiscreteColorScale(aes string) *DiscreteScale {
	return &DiscreteScale{aes: aes, palette: colorPalette}
}

// NewShapeScale returns a discrete scale mapping levels onto point
// shapes.
func NewShapeScale(aes string) *DiscreteScale {
	return &DiscreteScale{aes: aes, palette: shapePalette}
}

// SetPalette sets the level-to-visual palette function.
func (s *DiscreteScale) SetPalette(p func(i, n int) interface{}) *DiscreteScale {
	s.palette = p
	return s
}

// SetBreaks sets the break specification.
func (s *DiscreteScale) SetBreaks(b Breaks) *DiscreteScale {
	s.breaks = b
	return s
}

// SetLabels sets the break label specification.
func (s *DiscreteScale) SetLabels(l Labels) *DiscreteScale {
	s.labels = l
	return s
}

func (s *DiscreteScale) Aes() string       { return s.aes }
func (s *DiscreteScale) Discrete() bool    { return true }
func (s *DiscreteScale) breakSpec() Breaks { return s.breaks }
func (s *DiscreteScale) labelSpec() Labels { return s.labels }

func (s *DiscreteScale) String() string {
	s.makeIndex()
	return fmt.Sprintf("discrete %s (%d levels)", s.aes, len(s.index))
}

func (s *DiscreteScale) ExpandDomain(seq table.Slice) {
	s.all = append(s.all, seq)
	s.levels, s.index = nil, nil
}

func (s *DiscreteScale) ResetDomain() {
	s.all = nil
	s.levels, s.index = nil, nil
}

func (s *DiscreteScale) TransformSeq(seq table.Slice) table.Slice {
	return seq
}

func (s *DiscreteScale) makeIndex() {
	if s.index != nil {
		return
	}
	if len(s.all) == 0 {
		s.levels = []interface{}{}
		s.index = map[interface{}]int{}
		return
	}
	s.levels = generic.NubAppend(s.all...)
	if generic.CanOrder(reflect.TypeOf(s.levels).Elem().Kind()) {
		generic.Sort(s.levels)
	}
	lv := reflect.ValueOf(s.levels)
	s.index = make(map[interface{}]int, lv.Len())
	for i, n := 0, lv.Len(); i < n; i++ {
		s.index[lv.Index(i).Interface()] = i
	}
}

// Levels returns the trained levels in scale order.
func (s *DiscreteScale) Levels() []interface{} {
	s.makeIndex()
	lv := reflect.ValueOf(s.levels)
	out := make([]interface{}, lv.Len())
	for i := range out {
		out[i] = lv.Index(i).Interface()
	}
	return out
}

func (s *DiscreteScale) MapSeq(seq table.Slice) table.Slice {
	s.makeIndex()
	rv := reflect.ValueOf(seq)
	n := len(s.index)

	if s.palette == nil {
		// Position mapping: 1-based level index.
		out := make([]float64, rv.Len())
		for i := range out {
			out[i] = float64(s.index[rv.Index(i).Interface()] + 1)
		}
		return out
	}

	rt := reflect.TypeOf(s.palette(0, 1))
	res := reflect.MakeSlice(reflect.SliceOf(rt), rv.Len(), rv.Len())
	for i, m := 0, rv.Len(); i < m; i++ {
		v := s.palette(s.index[rv.Index(i).Interface()], n)
		res.Index(i).Set(reflect.ValueOf(v))
	}
	return res.Interface()
}

// MapLevel returns the visual value for level i, for legend swatches.
func (s *DiscreteScale) MapLevel(i int) interface{} {
	s.makeIndex()
	if s.palette == nil {
		return float64(i + 1)
	}
	return s.palette(i, len(s.index))
}

func (s *DiscreteScale) Limits() Interval {
	s.makeIndex()
	n := len(s.index)
	if n == 0 {
		return Interval{-1, 1}
	}
	// Half a level of padding on each side.
	return Interval{0.5, float64(n) + 0.5}
}

func (s *DiscreteScale) Ticks(n int) (major, minor []float64, labels []string) {
	s.makeIndex()
	lv := reflect.ValueOf(s.levels)
	major = make([]float64, lv.Len())
	labels = make([]string, lv.Len())
	for i := range major {
		major[i] = float64(i + 1)
		labels[i] = fmt.Sprintf("%v", lv.Index(i).Interface())
	}
	return major, nil, labels
}

func (s *DiscreteScale) CloneScaler() Scaler {
	s2 := *s
	s2.all = append([]table.Slice(nil), s.all...)
	s2.levels, s2.index = nil, nil
	return &s2
}

// Default palettes. The qualitative colors come from the SVG named
// colors so they render identically everywhere.
var defaultColors = []color.Color{
	colornames.Steelblue,
	colornames.Darkorange,
	colornames.Forestgreen,
	colornames.Crimson,
	colornames.Mediumpurple,
	colornames.Sienna,
	colornames.Hotpink,
	colornames.Dimgray,
}

func colorPalette(i, n int) interface{} {
	return defaultColors[i%len(defaultColors)]
}

var defaultShapes = []string{"circle", "square", "triangle", "diamond", "cross"}

func shapePalette(i, n int) interface{} {
	return defaultShapes[i%len(defaultShapes)]
}

func lerpColor(lo, hi color.Color, u float64) color.Color {
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	lr, lg, lb, la := lo.RGBA()
	hr, hg, hb, ha := hi.RGBA()
	lerp := func(a, b uint32) uint8 {
		return uint8((float64(a) + u*(float64(b)-float64(a))) / 257)
	}
	return color.RGBA{lerp(lr, hr), lerp(lg, hg), lerp(lb, hb), lerp(la, ha)}
}

// DefaultScaleFor constructs the default scale for an aesthetic from
// the detected type of its data: cardinal slices get continuous
// scales, everything else discrete, with a palette appropriate to the
// aesthetic.
func DefaultScaleFor(aes string, seq table.Slice) Scaler {
	continuous := generic.CanFloats(seq) && aes != "shape" && aes != "linetype"

	switch {
	case continuous && (aes == "color" || aes == "fill"):
		return NewColorRampScale(aes, colornames.Lightskyblue, colornames.Navy)
	case continuous && aes == "size":
		return NewSizeScale(aes, 1, 6)
	case continuous && aes == "alpha":
		return NewAlphaScale(aes, 0.1, 1)
	case continuous:
		return NewContinuousScale(aes)
	case aes == "color" || aes == "fill":
		return NewDiscreteColorScale(aes)
	case aes == "shape" || aes == "linetype":
		return NewShapeScale(aes)
	default:
		return NewDiscreteScale(aes)
	}
}
