// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"sort"

	"github.com/AamirAbro/ggplot/generic"
	"github.com/AamirAbro/ggplot/table"
)

// Position aesthetics are trained through their family head: "xmin"
// trains the "x" scale and so on. Everything else is its own family.
var xAesthetics = map[string]bool{"x": true, "xmin": true, "xmax": true, "xend": true}
var yAesthetics = map[string]bool{"y": true, "ymin": true, "ymax": true, "yend": true}

// bookkeeping columns never get scales.
var bookkeepingCols = map[string]bool{"PANEL": true, "group": true, "label": true, "width": true}

// scaleAes returns the scale family for a data column.
func scaleAes(col string) string {
	if xAesthetics[col] {
		return "x"
	}
	if yAesthetics[col] {
		return "y"
	}
	return col
}

func isPositionAes(aes string) bool {
	return xAesthetics[aes] || yAesthetics[aes]
}

// Scales is the registry holding at most one Scaler per aesthetic
// family.
type Scales struct {
	m map[string]Scaler
}

// NewScales returns an empty scale registry.
func NewScales() *Scales {
	return &Scales{m: make(map[string]Scaler)}
}

// Add registers s, replacing any previous scale for the same
// aesthetic.
func (ss *Scales) Add(s Scaler) {
	ss.m[s.Aes()] = s
}

// Get returns the scale for aes, or nil.
func (ss *Scales) Get(aes string) Scaler {
	return ss.m[aes]
}

// Has reports whether a scale is registered for aes.
func (ss *Scales) Has(aes string) bool {
	_, ok := ss.m[aes]
	return ok
}

// Aesthetics returns the registered aesthetics in sorted order.
func (ss *Scales) Aesthetics() []string {
	out := make([]string, 0, len(ss.m))
	for aes := range ss.m {
		out = append(out, aes)
	}
	sort.Strings(out)
	return out
}

// NonPosition returns the registered scales that are not position
// scales, in aesthetic order.
func (ss *Scales) NonPosition() []Scaler {
	var out []Scaler
	for _, aes := range ss.Aesthetics() {
		if !isPositionAes(aes) {
			out = append(out, ss.m[aes])
		}
	}
	return out
}

// TransformDF applies each scale's domain transform to the matching
// columns of t. Only columns a registered scale claims are touched.
func (ss *Scales) TransformDF(t *table.Table) *table.Table {
	for _, col := range t.Columns() {
		if bookkeepingCols[col] {
			continue
		}
		s := ss.m[scaleAes(col)]
		if s == nil || s.Discrete() {
			continue
		}
		seq := t.Column(col)
		if !generic.CanFloats(seq) {
			continue
		}
		t = t.Add(col, s.TransformSeq(seq))
	}
	return t
}

// TrainDF folds every matching column of t into its non-position
// scale's domain. Position scales train per panel instead.
func (ss *Scales) TrainDF(t *table.Table) {
	for _, col := range t.Columns() {
		if bookkeepingCols[col] || isPositionAes(col) {
			continue
		}
		if s := ss.m[col]; s != nil {
			s.ExpandDomain(t.Column(col))
		}
	}
}

// MapDF replaces every matching column of t with its non-position
// scale's visual mapping.
func (ss *Scales) MapDF(t *table.Table) *table.Table {
	for _, col := range t.Columns() {
		if bookkeepingCols[col] || isPositionAes(col) {
			continue
		}
		if s := ss.m[col]; s != nil {
			t = t.Add(col, s.MapSeq(t.Column(col)))
		}
	}
	return t
}

// AddMissing registers default scales for every aesthetic column in
// the datasets that has no scale yet. Run after stats so computed
// aesthetics (counts, bin edges) get scales too.
func (ss *Scales) AddMissing(datasets []*table.Table) {
	for _, t := range datasets {
		if t == nil {
			continue
		}
		for _, col := range t.Columns() {
			if bookkeepingCols[col] {
				continue
			}
			aes := scaleAes(col)
			if ss.Has(aes) {
				continue
			}
			ss.Add(DefaultScaleFor(aes, t.Column(col)))
		}
	}
}

// Clone returns a registry of cloned scales so one Build cannot
// pollute another's training.
func (ss *Scales) Clone() *Scales {
	out := NewScales()
	for aes, s := range ss.m {
		out.m[aes] = s.CloneScaler()
	}
	return out
}
