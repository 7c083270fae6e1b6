// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package positions

import (
	"math"
	"reflect"
	"testing"

	"github.com/AamirAbro/ggplot/table"
)

func barTable() *table.Table {
	// Two groups at each of two x locations.
	return table.New().
		Add("x", []float64{1, 2, 1, 2}).
		Add("xmin", []float64{0.55, 1.55, 0.55, 1.55}).
		Add("xmax", []float64{1.45, 2.45, 1.45, 2.45}).
		Add("ymin", []float64{0, 0, 0, 0}).
		Add("ymax", []float64{4, 6, 6, 4}).
		Add("group", []int{1, 1, 2, 2}).
		Add("PANEL", []int{1, 1, 1, 1})
}

func TestStack(t *testing.T) {
	out, err := Stack{}.Adjust(barTable())
	if err != nil {
		t.Fatal(err)
	}
	ymin := out.Column("ymin").([]float64)
	ymax := out.Column("ymax").([]float64)

	// Group 1 stays on the bottom, group 2 stacks on top.
	if !reflect.DeepEqual(ymin, []float64{0, 0, 4, 6}) {
		t.Fatalf("stacked ymin wrong: %v", ymin)
	}
	if !reflect.DeepEqual(ymax, []float64{4, 6, 10, 10}) {
		t.Fatalf("stacked ymax wrong: %v", ymax)
	}
}

func TestStackYOnly(t *testing.T) {
	tab := table.New().
		Add("x", []float64{1, 1}).
		Add("y", []float64{3, 5}).
		Add("group", []int{1, 2})
	out, err := Stack{}.Adjust(tab)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Column("y").([]float64); !reflect.DeepEqual(got, []float64{3, 8}) {
		t.Fatalf("stacked y should be running totals: %v", got)
	}
	if got := out.Column("ymin").([]float64); !reflect.DeepEqual(got, []float64{0, 3}) {
		t.Fatalf("stacked ymin should record band bottoms: %v", got)
	}
}

func TestFillNormalizes(t *testing.T) {
	out, err := Fill{}.Adjust(barTable())
	if err != nil {
		t.Fatal(err)
	}
	ymax := out.Column("ymax").([]float64)
	for i, v := range ymax {
		if i >= 2 && v != 1 {
			t.Fatalf("top of each filled stack should be 1: %v", ymax)
		}
	}
	if ymax[0] != 0.4 || ymax[1] != 0.6 {
		t.Fatalf("fill should normalize by cell total: %v", ymax)
	}
}

func TestDodgeExtents(t *testing.T) {
	out, err := Dodge{}.Adjust(barTable())
	if err != nil {
		t.Fatal(err)
	}
	xmin := out.Column("xmin").([]float64)
	xmax := out.Column("xmax").([]float64)

	// The two groups at x=1 split the original extent.
	if xmax[0] > xmin[2]+1e-9 && xmin[2] > xmin[0] {
		t.Fatalf("dodged bars should not overlap: xmin=%v xmax=%v", xmin, xmax)
	}
	if math.Abs((xmax[0]-xmin[0])-0.45) > 1e-9 {
		t.Fatalf("each dodged bar should take half the extent; got %v", xmax[0]-xmin[0])
	}
	// Group slots are consistent across x locations.
	if !(xmin[0] < xmin[2] && xmin[1] < xmin[3]) {
		t.Fatalf("group order should be identical per cell: %v", xmin)
	}
}

func TestDodgePoints(t *testing.T) {
	tab := table.New().
		Add("x", []float64{1, 1}).
		Add("y", []float64{2, 3}).
		Add("group", []int{1, 2})
	out, err := Dodge{Width: 0.5}.Adjust(tab)
	if err != nil {
		t.Fatal(err)
	}
	xs := out.Column("x").([]float64)
	if xs[0] >= xs[1] {
		t.Fatalf("dodged points should separate by group: %v", xs)
	}
	if math.Abs((xs[0]+xs[1])/2-1) > 1e-9 {
		t.Fatalf("dodging should stay centered on the cell: %v", xs)
	}
}

func TestJitterSeeded(t *testing.T) {
	tab := table.New().
		Add("x", []float64{1, 2, 3}).
		Add("y", []float64{1, 2, 3})

	out1, err := Jitter{Width: 0.3, Height: 0.1, Seed: 42}.Adjust(tab)
	if err != nil {
		t.Fatal(err)
	}
	out2, err := Jitter{Width: 0.3, Height: 0.1, Seed: 42}.Adjust(tab)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out1.Column("x"), out2.Column("x")) {
		t.Fatalf("same seed should give the same offsets")
	}

	xs := out1.Column("x").([]float64)
	orig := tab.Column("x").([]float64)
	for i := range xs {
		if math.Abs(xs[i]-orig[i]) > 0.3 {
			t.Fatalf("jitter exceeded width: %v vs %v", xs[i], orig[i])
		}
	}
}

func TestIdentityEmptyTables(t *testing.T) {
	empty := table.New()
	for _, adj := range []interface {
		Adjust(*table.Table) (*table.Table, error)
	}{Stack{}, Fill{}, Dodge{}, Jitter{}} {
		if _, err := adj.Adjust(empty); err != nil {
			t.Fatalf("empty input should pass through: %v", err)
		}
	}
}
