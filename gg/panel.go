// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"

	"github.com/AamirAbro/ggplot/generic"
	"github.com/AamirAbro/ggplot/table"
)

// A Panel owns the per-panel position scales and the trained display
// ranges. Scales are cloned from the registry's prototypes: one x
// scale set per distinct LayoutRow.ScaleX, likewise for y, so free
// facet scales train independently while shared scales train
// together.
type Panel struct {
	Layout  *Layout
	XScales []Scaler
	YScales []Scaler
	Ranges  []PanelRange // indexed by panel id - 1
}

// A PanelRange is the resolved display range and tick set for one
// panel.
type PanelRange struct {
	X, Y             Interval
	XMajor, YMajor   []float64
	XMinor, YMinor   []float64
	XLabels, YLabels []string
}

// newPanel clones the x and y scale prototypes into the sets the
// layout calls for.
func newPanel(layout *Layout, xproto, yproto Scaler) *Panel {
	p := &Panel{Layout: layout}
	for i := 0; i < layout.NScalesX(); i++ {
		p.XScales = append(p.XScales, xproto.CloneScaler())
	}
	for i := 0; i < layout.NScalesY(); i++ {
		p.YScales = append(p.YScales, yproto.CloneScaler())
	}
	return p
}

func (p *Panel) xFor(lr LayoutRow) Scaler { return p.XScales[lr.ScaleX] }
func (p *Panel) yFor(lr LayoutRow) Scaler { return p.YScales[lr.ScaleY] }

// rangeFor returns the trained range for a layout row.
func (p *Panel) rangeFor(lr LayoutRow) PanelRange { return p.Ranges[lr.Panel-1] }

// TrainPosition folds every position column of every dataset into the
// panel scales it belongs to.
func (p *Panel) TrainPosition(datasets []*table.Table) {
	for _, t := range datasets {
		if t == nil || t.Len() == 0 {
			continue
		}
		for _, lr := range p.Layout.Rows {
			sub := t.FilterEq("PANEL", lr.Panel)
			if sub.Len() == 0 {
				continue
			}
			for _, col := range sub.Columns() {
				switch {
				case xAesthetics[col]:
					p.xFor(lr).ExpandDomain(sub.Column(col))
				case yAesthetics[col]:
					p.yFor(lr).ExpandDomain(sub.Column(col))
				}
			}
		}
	}
}

// ResetScales clears every position scale's trained domain for the
// post-adjustment retraining pass.
func (p *Panel) ResetScales() {
	for _, s := range p.XScales {
		s.ResetDomain()
	}
	for _, s := range p.YScales {
		s.ResetDomain()
	}
}

// RetrainPosition resets the continuous position scales and retrains
// them on adjusted data so stacked and dodged extents fit the display
// range. Discrete scales keep their level domains; adjusted values
// stay inside their half-level padding.
func (p *Panel) RetrainPosition(datasets []*table.Table) {
	for _, s := range p.XScales {
		if !s.Discrete() {
			s.ResetDomain()
		}
	}
	for _, s := range p.YScales {
		if !s.Discrete() {
			s.ResetDomain()
		}
	}
	for _, t := range datasets {
		if t == nil || t.Len() == 0 {
			continue
		}
		for _, lr := range p.Layout.Rows {
			sub := t.FilterEq("PANEL", lr.Panel)
			if sub.Len() == 0 {
				continue
			}
			for _, col := range sub.Columns() {
				switch {
				case xAesthetics[col] && !p.xFor(lr).Discrete():
					p.xFor(lr).ExpandDomain(sub.Column(col))
				case yAesthetics[col] && !p.yFor(lr).Discrete():
					p.yFor(lr).ExpandDomain(sub.Column(col))
				}
			}
		}
	}
}

// MapPosition replaces every position column of t with its scale
// mapping, panel by panel. Continuous columns pass through
// numerically; discrete columns become level positions.
func (p *Panel) MapPosition(t *table.Table) *table.Table {
	if t == nil || t.Len() == 0 {
		return t
	}
	for _, col := range t.Columns() {
		if !xAesthetics[col] && !yAesthetics[col] {
			continue
		}
		out := make([]float64, t.Len())
		for _, lr := range p.Layout.Rows {
			idxs := t.RowsEq("PANEL", lr.Panel)
			if len(idxs) == 0 {
				continue
			}
			s := p.xFor(lr)
			if yAesthetics[col] {
				s = p.yFor(lr)
			}
			sub := generic.MultiIndex(t.Column(col), idxs)
			mapped := s.MapSeq(sub).([]float64)
			for j, ri := range idxs {
				out[ri] = mapped[j]
			}
		}
		t = t.Add(col, out)
	}
	return t
}

// CalculateStats runs each layer's stat per panel and reassembles the
// results into one table per layer, PANEL column restored.
func (p *Panel) CalculateStats(layers []*Layer, datasets []*table.Table) ([]*table.Table, error) {
	out := make([]*table.Table, len(datasets))
	for i, t := range datasets {
		stat := layers[i].stat()
		if _, ok := stat.(statIdentity); ok {
			out[i] = t
			continue
		}
		var parts []*table.Table
		for _, lr := range p.Layout.Rows {
			sub := t.FilterEq("PANEL", lr.Panel)
			if sub.Len() == 0 {
				continue
			}
			res, err := stat.Compute(sub)
			if err != nil {
				return nil, err
			}
			if !res.Has("PANEL") {
				res = res.Add("PANEL", repeatInt(lr.Panel, res.Len()))
			}
			parts = append(parts, res)
		}
		if len(parts) == 0 {
			// No panel had rows. Keep the input's columns so
			// later stages can still select on PANEL.
			out[i] = t.RowSelect(nil)
			continue
		}
		out[i] = table.Concat(parts...)
	}
	return out, nil
}

// TrainRanges resolves each panel's display range and tick set from
// its trained scales and their break and label specifications.
func (p *Panel) TrainRanges() error {
	p.Ranges = make([]PanelRange, len(p.Layout.Rows))
	for _, lr := range p.Layout.Rows {
		var r PanelRange
		var err error
		sx, sy := p.xFor(lr), p.yFor(lr)
		r.X = sx.Limits()
		r.Y = sy.Limits()
		if r.XMajor, r.XMinor, r.XLabels, err = resolveTicks(sx); err != nil {
			return err
		}
		if r.YMajor, r.YMinor, r.YLabels, err = resolveTicks(sy); err != nil {
			return err
		}
		p.Ranges[lr.Panel-1] = r
	}
	return nil
}

// resolveTicks combines a scale's computed ticks with its user break
// and label specifications. Explicit breaks replace the computed set;
// waived and unset specs both fall back to the computed defaults.
func resolveTicks(s Scaler) (major, minor []float64, labels []string, err error) {
	var bspec Breaks
	var lspec Labels
	if bs, ok := s.(breakSpecer); ok {
		bspec = bs.breakSpec()
	}
	if ls, ok := s.(labelSpecer); ok {
		lspec = ls.labelSpec()
	}

	switch {
	case bspec.IsSet() && !bspec.IsWaived():
		major = bspec.Values()
		labels = make([]string, len(major))
		for i, x := range major {
			if tl, ok := s.(tickLabeler); ok {
				labels[i] = tl.tickLabel(x)
			} else {
				labels[i] = fmt.Sprintf("%g", x)
			}
		}
	default:
		major, minor, labels = s.Ticks(5)
	}

	switch {
	case lspec.IsSet() && !lspec.IsWaived():
		vals := lspec.Values()
		if len(vals) != len(major) {
			return nil, nil, nil, specErrorf("scale %q has %d labels for %d breaks", s.Aes(), len(vals), len(major))
		}
		labels = vals
	}
	return major, minor, labels, nil
}
