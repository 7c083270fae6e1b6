// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"reflect"

	"github.com/AamirAbro/ggplot/table"
)

// A Geom renders one layer's rows as marks. Geoms see fully scaled
// data: position columns in panel coordinates, non-position columns
// already mapped to visual values.
type Geom interface {
	Name() string

	// RequiredAes lists the aesthetics the geom cannot draw
	// without. Aesthetics the layer's stat computes count as
	// satisfied.
	RequiredAes() []string

	// DefaultAes gives constant fallbacks for optional aesthetics
	// ("color": steelblue, "size": 2, ...). Defaults bypass
	// scales.
	DefaultAes() map[string]interface{}

	// DefaultStat returns the stat the geom wants when the layer
	// doesn't name one, or nil for identity.
	DefaultStat() Stat

	// Draw renders data into ax. zorder orders layers from back
	// to front.
	Draw(ax *Axes, data *table.Table, zorder int) error
}

// A Reparameterizer is an optional Geom capability that rewrites
// point parameterizations into extents before position adjustment
// (bars turn x and width into xmin and xmax).
type Reparameterizer interface {
	Reparameterize(t *table.Table) (*table.Table, error)
}

// A Stat transforms a layer's data table before drawing, one
// invocation per panel.
type Stat interface {
	Name() string

	// Compute returns the transformed table. The input carries
	// aesthetic columns and a group column.
	Compute(t *table.Table) (*table.Table, error)

	// DefaultAes maps aesthetics to output columns the stat
	// provides ("y": "count"). The mapping applies only when the
	// layer didn't map the aesthetic itself.
	DefaultAes() map[string]string
}

// A Position resolves overlapping marks after stats run. Adjusters
// see the whole layer table and handle panels and groups themselves.
type Position interface {
	Name() string
	Adjust(t *table.Table) (*table.Table, error)
}

type statIdentity struct{}

func (statIdentity) Name() string                                 { return "identity" }
func (statIdentity) Compute(t *table.Table) (*table.Table, error) { return t, nil }
func (statIdentity) DefaultAes() map[string]string                { return nil }

type positionIdentity struct{}

func (positionIdentity) Name() string { return "identity" }
func (positionIdentity) Adjust(t *table.Table) (*table.Table, error) {
	return t, nil
}

// A Layer combines a geom with the stat, position, data, and mapping
// that feed it. Zero-value Stat, Position, Data, and Mapping fall
// back to the geom's default stat, identity position, the plot's
// data, and the plot's mapping.
type Layer struct {
	Geom     Geom
	Stat     Stat
	Position Position
	Data     *table.Table
	Mapping  Aes

	zorder int
}

// NewLayer returns a layer drawing g with all defaults.
func NewLayer(g Geom) *Layer {
	return &Layer{Geom: g}
}

// Clone returns a shallow copy. Plug-ins, data, and mapping are
// shared; they are immutable by contract.
func (l *Layer) Clone() *Layer {
	l2 := *l
	return &l2
}

func (l *Layer) stat() Stat {
	if l.Stat != nil {
		return l.Stat
	}
	if s := l.Geom.DefaultStat(); s != nil {
		return s
	}
	return statIdentity{}
}

func (l *Layer) position() Position {
	if l.Position != nil {
		return l.Position
	}
	return positionIdentity{}
}

func (l *Layer) dataOr(plotData *table.Table) *table.Table {
	if l.Data != nil {
		return l.Data
	}
	return plotData
}

// computeAesthetics evaluates the layer's effective mapping against t
// and returns a table of aesthetic columns. The PANEL column carries
// through. Missing required aesthetics are an error unless the
// layer's stat computes them.
func (l *Layer) computeAesthetics(t *table.Table, plotAes Aes) (*table.Table, error) {
	out := table.New()
	for _, b := range effectiveAes(plotAes, l.Mapping) {
		seq, err := b.mapping.eval(b.env, t)
		if err != nil {
			return nil, err
		}
		out = out.Add(b.aes, seq)
	}
	if t.Has("PANEL") {
		out = out.Add("PANEL", t.Column("PANEL"))
	}

	statProvides := l.stat().DefaultAes()
	for _, req := range l.Geom.RequiredAes() {
		if out.Has(req) {
			continue
		}
		if _, ok := statProvides[req]; ok {
			continue
		}
		return nil, specErrorf("geom %q requires aesthetic %q, which is not mapped", l.Geom.Name(), req)
	}
	return out, nil
}

// mapStatistic fills in aesthetics from the stat's output columns
// where the layer left them unmapped.
func (l *Layer) mapStatistic(t *table.Table) *table.Table {
	for aes, col := range l.stat().DefaultAes() {
		if !t.Has(aes) && t.Has(col) {
			t = t.Add(aes, t.Column(col))
		}
	}
	return t
}

// reparameterize applies the geom's extent rewriting, if it has any.
func (l *Layer) reparameterize(t *table.Table) (*table.Table, error) {
	if r, ok := l.Geom.(Reparameterizer); ok {
		return r.Reparameterize(t)
	}
	return t, nil
}

// adjustPosition applies the layer's position adjustment.
func (l *Layer) adjustPosition(t *table.Table) (*table.Table, error) {
	return l.position().Adjust(t)
}

// applyDefaults broadcasts the geom's constant aesthetics over rows
// that didn't map them. Defaults don't pass through scales.
func (l *Layer) applyDefaults(t *table.Table) *table.Table {
	if t.Len() == 0 {
		return t
	}
	for aes, v := range l.Geom.DefaultAes() {
		if t.Has(aes) {
			continue
		}
		rv := reflect.MakeSlice(reflect.SliceOf(reflect.TypeOf(v)), t.Len(), t.Len())
		for i := 0; i < t.Len(); i++ {
			rv.Index(i).Set(reflect.ValueOf(v))
		}
		t = t.Add(aes, rv.Interface())
	}
	return t
}

func (l *Layer) draw(ax *Axes, t *table.Table) error {
	return l.Geom.Draw(ax, t, l.zorder)
}
