// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"
	"math"
	"reflect"

	"github.com/AamirAbro/ggplot/generic"
	"github.com/AamirAbro/ggplot/table"
)

// A Layout places panels in a grid. Panel ids are 1-based and row
// major.
type Layout struct {
	Rows       []LayoutRow
	NRow, NCol int
}

// A LayoutRow describes one panel.
type LayoutRow struct {
	Panel int // 1-based panel id
	Row   int // 0-based grid row
	Col   int // 0-based grid column

	// ScaleX and ScaleY index into the panel's scale sets. Shared
	// scales use index 0; free scales get one index per grid
	// column or row.
	ScaleX, ScaleY int

	// Values maps facet variables to this panel's levels.
	Values map[string]interface{}
}

// NScalesX returns the number of distinct x scale sets the layout
// needs.
func (l *Layout) NScalesX() int {
	max := 0
	for _, r := range l.Rows {
		if r.ScaleX > max {
			max = r.ScaleX
		}
	}
	return max + 1
}

// NScalesY returns the number of distinct y scale sets the layout
// needs.
func (l *Layout) NScalesY() int {
	max := 0
	for _, r := range l.Rows {
		if r.ScaleY > max {
			max = r.ScaleY
		}
	}
	return max + 1
}

// A Strip is a facet label drawn along one edge of a panel.
type Strip struct {
	Label string
	Side  byte // 't' or 'r'
}

// A Faceter splits the data into panels. TrainLayout sees every
// layer's data before MapLayout tags rows with panel ids.
type Faceter interface {
	// TrainLayout computes the panel grid from the distinct facet
	// variable levels across all datasets.
	TrainLayout(data []*table.Table) (*Layout, error)

	// MapLayout returns t with a PANEL column assigning each row
	// to a panel. Tables missing the facet variables are broadcast
	// to every panel.
	MapLayout(l *Layout, t *table.Table) (*table.Table, error)

	// Strips returns the facet labels for one panel.
	Strips(l *Layout, r LayoutRow) []Strip

	// Spacing returns the horizontal and vertical gaps between
	// panels as fractions of the panel size.
	Spacing() (wspace, hspace float64)

	CloneFaceter() Faceter
}

// levelsOf collects the distinct levels of facet variable v across
// the datasets, sorted when orderable. It returns an error if no
// dataset has the column.
func levelsOf(v string, data []*table.Table) ([]interface{}, error) {
	var parts []table.Slice
	for _, t := range data {
		if t != nil && t.Has(v) {
			parts = append(parts, t.Column(v))
		}
	}
	if len(parts) == 0 {
		return nil, specErrorf("facet variable %q not found in any layer data", v)
	}
	nub := generic.NubAppend(parts...)
	if generic.CanOrder(reflect.TypeOf(nub).Elem().Kind()) {
		generic.Sort(nub)
	}
	rv := reflect.ValueOf(nub)
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// assignPanels tags t's rows with panel ids by matching the facet
// variables present in t against the layout. Tables without any of
// the variables are repeated once per panel.
func assignPanels(l *Layout, vars []string, t *table.Table) (*table.Table, error) {
	var present []string
	for _, v := range vars {
		if t.Has(v) {
			present = append(present, v)
		}
	}

	if len(present) == 0 {
		if t.Len() == 0 {
			return t.Add("PANEL", []int{}), nil
		}
		parts := make([]*table.Table, len(l.Rows))
		for i, lr := range l.Rows {
			parts[i] = t.Add("PANEL", repeatInt(lr.Panel, t.Len()))
		}
		return table.Concat(parts...), nil
	}

	parts := make([]*table.Table, 0, len(l.Rows))
	for _, lr := range l.Rows {
		idxs := matchRows(t, present, lr.Values)
		if len(idxs) == 0 {
			continue
		}
		sub := t.RowSelect(idxs)
		parts = append(parts, sub.Add("PANEL", repeatInt(lr.Panel, sub.Len())))
	}
	if len(parts) == 0 {
		return t.RowSelect(nil).Add("PANEL", []int{}), nil
	}
	return table.Concat(parts...), nil
}

func matchRows(t *table.Table, vars []string, want map[string]interface{}) []int {
	var idxs []int
	cols := make([]reflect.Value, len(vars))
	for i, v := range vars {
		cols[i] = reflect.ValueOf(t.Column(v))
	}
rows:
	for i := 0; i < t.Len(); i++ {
		for j, v := range vars {
			if cols[j].Index(i).Interface() != want[v] {
				continue rows
			}
		}
		idxs = append(idxs, i)
	}
	return idxs
}

func repeatInt(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// FacetNull is the default single-panel facet.
type FacetNull struct{}

func (FacetNull) TrainLayout(data []*table.Table) (*Layout, error) {
	return &Layout{
		Rows: []LayoutRow{{Panel: 1, Values: map[string]interface{}{}}},
		NRow: 1, NCol: 1,
	}, nil
}

func (FacetNull) MapLayout(l *Layout, t *table.Table) (*table.Table, error) {
	return t.Add("PANEL", repeatInt(1, t.Len())), nil
}

func (FacetNull) Strips(l *Layout, r LayoutRow) []Strip { return nil }

func (FacetNull) Spacing() (float64, float64) { return 0.05, 0.05 }

func (FacetNull) CloneFaceter() Faceter { return FacetNull{} }

// FacetGrid lays panels out on a Row×Col grid of facet variable
// levels. Either variable may be empty for a single row or column.
// FreeX gives each grid column its own x scale; FreeY each grid row
// its own y scale.
type FacetGrid struct {
	Row, Col     string
	FreeX, FreeY bool
}

func (f FacetGrid) vars() []string {
	var vs []string
	if f.Row != "" {
		vs = append(vs, f.Row)
	}
	if f.Col != "" {
		vs = append(vs, f.Col)
	}
	return vs
}

func (f FacetGrid) TrainLayout(data []*table.Table) (*Layout, error) {
	if f.Row == "" && f.Col == "" {
		return nil, specErrorf("facet grid needs a row or column variable")
	}
	rowLevels := []interface{}{nil}
	colLevels := []interface{}{nil}
	var err error
	if f.Row != "" {
		if rowLevels, err = levelsOf(f.Row, data); err != nil {
			return nil, err
		}
	}
	if f.Col != "" {
		if colLevels, err = levelsOf(f.Col, data); err != nil {
			return nil, err
		}
	}

	l := &Layout{NRow: len(rowLevels), NCol: len(colLevels)}
	panel := 1
	for ri, rv := range rowLevels {
		for ci, cv := range colLevels {
			lr := LayoutRow{
				Panel:  panel,
				Row:    ri,
				Col:    ci,
				Values: map[string]interface{}{},
			}
			if f.Row != "" {
				lr.Values[f.Row] = rv
			}
			if f.Col != "" {
				lr.Values[f.Col] = cv
			}
			if f.FreeX {
				lr.ScaleX = ci
			}
			if f.FreeY {
				lr.ScaleY = ri
			}
			l.Rows = append(l.Rows, lr)
			panel++
		}
	}
	return l, nil
}

func (f FacetGrid) MapLayout(l *Layout, t *table.Table) (*table.Table, error) {
	return assignPanels(l, f.vars(), t)
}

func (f FacetGrid) Strips(l *Layout, r LayoutRow) []Strip {
	var strips []Strip
	if f.Col != "" && r.Row == 0 {
		strips = append(strips, Strip{fmt.Sprintf("%v", r.Values[f.Col]), 't'})
	}
	if f.Row != "" && r.Col == l.NCol-1 {
		strips = append(strips, Strip{fmt.Sprintf("%v", r.Values[f.Row]), 'r'})
	}
	return strips
}

func (f FacetGrid) Spacing() (float64, float64) { return 0.05, 0.05 }

func (f FacetGrid) CloneFaceter() Faceter { return f }

// FacetWrap wraps the levels of one facet variable into a grid of
// NCol columns. NCol of 0 picks a near-square grid.
type FacetWrap struct {
	Var  string
	NCol int
}

func (f FacetWrap) TrainLayout(data []*table.Table) (*Layout, error) {
	if f.Var == "" {
		return nil, specErrorf("facet wrap needs a variable")
	}
	levels, err := levelsOf(f.Var, data)
	if err != nil {
		return nil, err
	}
	ncol := f.NCol
	if ncol <= 0 {
		ncol = int(math.Ceil(math.Sqrt(float64(len(levels)))))
	}
	if ncol < 1 {
		// No levels; keep the layout well-formed.
		ncol = 1
	}
	nrow := (len(levels) + ncol - 1) / ncol

	l := &Layout{NRow: nrow, NCol: ncol}
	for i, v := range levels {
		l.Rows = append(l.Rows, LayoutRow{
			Panel:  i + 1,
			Row:    i / ncol,
			Col:    i % ncol,
			Values: map[string]interface{}{f.Var: v},
		})
	}
	return l, nil
}

func (f FacetWrap) MapLayout(l *Layout, t *table.Table) (*table.Table, error) {
	return assignPanels(l, []string{f.Var}, t)
}

func (f FacetWrap) Strips(l *Layout, r LayoutRow) []Strip {
	return []Strip{{fmt.Sprintf("%v", r.Values[f.Var]), 't'}}
}

func (f FacetWrap) Spacing() (float64, float64) { return 0.05, 0.20 }

func (f FacetWrap) CloneFaceter() Faceter { return f }
