// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"reflect"
	"testing"

	"github.com/AamirAbro/ggplot/table"
)

func facetData() *table.Table {
	return table.New().
		Add("v", []float64{1, 2, 3, 4, 5, 6}).
		Add("r", []string{"r1", "r1", "r2", "r2", "r3", "r3"}).
		Add("c", []string{"c1", "c2", "c1", "c2", "c1", "c2"})
}

func TestFacetNullLayout(t *testing.T) {
	l, err := FacetNull{}.TrainLayout([]*table.Table{facetData()})
	if err != nil {
		t.Fatal(err)
	}
	if l.NRow != 1 || l.NCol != 1 || len(l.Rows) != 1 {
		t.Fatalf("null facet should make one panel; got %+v", l)
	}

	mapped, err := FacetNull{}.MapLayout(l, facetData())
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 1, 1, 1, 1, 1}
	if got := mapped.Column("PANEL").([]int); !reflect.DeepEqual(got, want) {
		t.Fatalf("PANEL should be all 1; got %v", got)
	}
}

func TestFacetGridLayout(t *testing.T) {
	f := FacetGrid{Row: "r", Col: "c"}
	l, err := f.TrainLayout([]*table.Table{facetData()})
	if err != nil {
		t.Fatal(err)
	}
	if l.NRow != 3 || l.NCol != 2 || len(l.Rows) != 6 {
		t.Fatalf("3x2 grid expected; got %+v", l)
	}
	for i, lr := range l.Rows {
		if lr.Panel != i+1 {
			t.Fatalf("panel ids must be contiguous and 1-based; got %+v", l.Rows)
		}
		if lr.Row != i/2 || lr.Col != i%2 {
			t.Fatalf("row-major placement expected; got %+v", lr)
		}
		if lr.ScaleX != 0 || lr.ScaleY != 0 {
			t.Fatalf("fixed scales should share index 0; got %+v", lr)
		}
	}

	mapped, err := f.MapLayout(l, facetData())
	if err != nil {
		t.Fatal(err)
	}
	if mapped.Len() != 6 {
		t.Fatalf("grid mapping should keep every row; got %d", mapped.Len())
	}
	panels := mapped.Column("PANEL").([]int)
	seen := map[int]bool{}
	for _, p := range panels {
		seen[p] = true
	}
	if len(seen) != 6 {
		t.Fatalf("each (r, c) pair should land in its own panel; got %v", panels)
	}
}

func TestFacetGridFreeScales(t *testing.T) {
	f := FacetGrid{Row: "r", Col: "c", FreeX: true, FreeY: true}
	l, err := f.TrainLayout([]*table.Table{facetData()})
	if err != nil {
		t.Fatal(err)
	}
	if l.NScalesX() != 2 || l.NScalesY() != 3 {
		t.Fatalf("free scales should be one per column and row; got %d, %d",
			l.NScalesX(), l.NScalesY())
	}
}

func TestFacetGridBroadcast(t *testing.T) {
	f := FacetGrid{Col: "c"}
	l, err := f.TrainLayout([]*table.Table{facetData()})
	if err != nil {
		t.Fatal(err)
	}

	// A table without the facet variable lands in every panel.
	ann := table.New().Add("v", []float64{9})
	mapped, err := f.MapLayout(l, ann)
	if err != nil {
		t.Fatal(err)
	}
	if mapped.Len() != 2 {
		t.Fatalf("broadcast should repeat the row per panel; got %d rows", mapped.Len())
	}
	want := []int{1, 2}
	if got := mapped.Column("PANEL").([]int); !reflect.DeepEqual(got, want) {
		t.Fatalf("broadcast panels should be %v; got %v", want, got)
	}
}

func TestFacetGridBroadcastEmpty(t *testing.T) {
	f := FacetGrid{Col: "c"}
	l, err := f.TrainLayout([]*table.Table{facetData()})
	if err != nil {
		t.Fatal(err)
	}

	empty := table.New().Add("v", []float64{})
	mapped, err := f.MapLayout(l, empty)
	if err != nil {
		t.Fatal(err)
	}
	if !mapped.Has("PANEL") || !mapped.Has("v") {
		t.Fatalf("empty broadcast must keep its columns; got %v", mapped.Columns())
	}
	if mapped.Len() != 0 {
		t.Fatalf("empty broadcast should stay empty; got %d rows", mapped.Len())
	}
}

func TestFacetGridUnknownVariable(t *testing.T) {
	f := FacetGrid{Row: "nope"}
	if _, err := f.TrainLayout([]*table.Table{facetData()}); err == nil {
		t.Fatalf("unknown facet variable should fail")
	}
}

func TestFacetWrapLayout(t *testing.T) {
	f := FacetWrap{Var: "r", NCol: 2}
	l, err := f.TrainLayout([]*table.Table{facetData()})
	if err != nil {
		t.Fatal(err)
	}
	if l.NRow != 2 || l.NCol != 2 || len(l.Rows) != 3 {
		t.Fatalf("3 levels wrapped at 2 columns should be 2x2 with 3 panels; got %+v", l)
	}
	last := l.Rows[2]
	if last.Row != 1 || last.Col != 0 {
		t.Fatalf("third panel should wrap to the second row; got %+v", last)
	}

	strips := f.Strips(l, l.Rows[0])
	if len(strips) != 1 || strips[0].Side != 't' || strips[0].Label != "r1" {
		t.Fatalf("wrap panels get one top strip; got %+v", strips)
	}
}

func TestFacetGridStrips(t *testing.T) {
	f := FacetGrid{Row: "r", Col: "c"}
	l, _ := f.TrainLayout([]*table.Table{facetData()})

	// Top-left panel: top strip only.
	s := f.Strips(l, l.Rows[0])
	if len(s) != 1 || s[0].Side != 't' {
		t.Fatalf("interior grid panel strips wrong: %+v", s)
	}
	// Top-right panel: top and right strips.
	s = f.Strips(l, l.Rows[1])
	if len(s) != 2 || s[0].Side != 't' || s[1].Side != 'r' {
		t.Fatalf("last-column panel should add a right strip: %+v", s)
	}
	// Bottom-left panel: no strips.
	s = f.Strips(l, l.Rows[4])
	if len(s) != 0 {
		t.Fatalf("interior panels should have no strips: %+v", s)
	}
}
