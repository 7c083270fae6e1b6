// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"image/color"
	"math"
	"reflect"
	"testing"
)

func TestContinuousScaleTraining(t *testing.T) {
	s := NewContinuousScale("x")
	if lim := s.Limits(); lim.IsUnset() || lim.Min >= lim.Max {
		t.Fatalf("untrained limits should fall back to a drawable range; got %v", lim)
	}
	s.ExpandDomain([]float64{3, 1, math.NaN(), 7})
	lim := s.Limits()
	// 5% expansion on each side of [1, 7].
	if lim.Min != 1-0.3 || lim.Max != 7+0.3 {
		t.Fatalf("limits should be [0.7, 7.3]; got %v", lim)
	}

	s.ResetDomain()
	s.ExpandDomain([]int{2, 4})
	if lim := s.Limits(); lim.Min >= 2 || lim.Max <= 4 {
		t.Fatalf("retrained limits should cover [2, 4]; got %v", lim)
	}
}

func TestContinuousScaleTicks(t *testing.T) {
	s := NewContinuousScale("x")
	s.ExpandDomain([]float64{0, 10})
	major, _, labels := s.Ticks(5)
	if len(major) == 0 || len(major) > 5 {
		t.Fatalf("want between 1 and 5 major ticks; got %v", major)
	}
	if len(labels) != len(major) {
		t.Fatalf("labels must pair with major ticks; got %v for %v", labels, major)
	}
	lim := s.Limits()
	for i, x := range major {
		if x < lim.Min || x > lim.Max {
			t.Errorf("tick %v outside limits %v", x, lim)
		}
		if labels[i] == "" {
			t.Errorf("tick %v has an empty label", x)
		}
	}
}

func TestContinuousScaleFixedLimits(t *testing.T) {
	s := NewContinuousScale("y").SetLimits(0, 100)
	s.ExpandDomain([]float64{40, 60})
	if lim := s.Limits(); lim.Min != 0 || lim.Max != 100 {
		t.Fatalf("fixed limits should win; got %v", lim)
	}
}

func TestContinuousScaleTransform(t *testing.T) {
	s := NewContinuousScale("x").SetTrans(Log10Trans)
	out := s.TransformSeq([]float64{1, 10, 100, -5}).([]float64)
	if out[0] != 0 || out[1] != 1 || out[2] != 2 {
		t.Fatalf("log10 transform wrong: %v", out)
	}
	if !math.IsNaN(out[3]) {
		t.Fatalf("non-positive value should map to NaN; got %v", out[3])
	}

	// NaN must not poison training.
	s.ExpandDomain(out)
	if lim := s.Limits(); math.IsNaN(lim.Min) || math.IsNaN(lim.Max) {
		t.Fatalf("limits should ignore NaN; got %v", lim)
	}
}

func TestContinuousScaleMapSeqPassthrough(t *testing.T) {
	s := NewContinuousScale("x")
	s.ExpandDomain([]float64{0, 10})
	got := s.MapSeq([]float64{0, 5, 10}).([]float64)
	want := []float64{0, 5, 10}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("position mapping should pass through; got %v", got)
	}
}

func TestAlphaScaleMapping(t *testing.T) {
	s := NewAlphaScale("alpha", 0.1, 1)
	s.ExpandDomain([]float64{0, 10})
	got := s.MapSeq([]float64{0, 10}).([]float64)
	if got[0] != 0.1 || got[1] != 1 {
		t.Fatalf("alpha mapping should span [0.1, 1]; got %v", got)
	}
}

func TestDiscreteScaleLevels(t *testing.T) {
	s := NewDiscreteScale("x")
	s.ExpandDomain([]string{"b", "a"})
	s.ExpandDomain([]string{"c", "a"})
	want := []interface{}{"a", "b", "c"}
	if got := s.Levels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("levels should be %v; got %v", want, got)
	}
	if lim := s.Limits(); lim.Min != 0.5 || lim.Max != 3.5 {
		t.Fatalf("limits should pad half a level; got %v", lim)
	}

	got := s.MapSeq([]string{"c", "a"}).([]float64)
	if !reflect.DeepEqual(got, []float64{3, 1}) {
		t.Fatalf("position mapping should be 1-based level index; got %v", got)
	}
}

func TestDiscreteScaleClone(t *testing.T) {
	s := NewDiscreteScale("x")
	s.ExpandDomain([]string{"a"})
	s2 := s.CloneScaler().(*DiscreteScale)
	s2.ExpandDomain([]string{"b"})
	if n := len(s.Levels()); n != 1 {
		t.Fatalf("training a clone should not affect the original; got %d levels", n)
	}
	if n := len(s2.Levels()); n != 2 {
		t.Fatalf("clone should keep accumulated domain; got %d levels", n)
	}
}

func TestDiscreteColorScale(t *testing.T) {
	s := NewDiscreteColorScale("color")
	s.ExpandDomain([]string{"a", "b"})
	mapped := s.MapSeq([]string{"a", "b"})
	rv := reflect.ValueOf(mapped)
	c0 := rv.Index(0).Interface().(color.Color)
	c1 := rv.Index(1).Interface().(color.Color)
	if c0 == c1 {
		t.Fatalf("distinct levels should get distinct colors")
	}
}

func TestDefaultScaleFor(t *testing.T) {
	if s := DefaultScaleFor("x", []float64{1}); s.Discrete() {
		t.Errorf("float x should get a continuous scale")
	}
	if s := DefaultScaleFor("x", []string{"a"}); !s.Discrete() {
		t.Errorf("string x should get a discrete scale")
	}
	if s := DefaultScaleFor("color", []string{"a"}); !s.Discrete() {
		t.Errorf("string color should get a discrete scale")
	}
	if s := DefaultScaleFor("color", []float64{1}); s.Discrete() {
		t.Errorf("float color should get a continuous ramp")
	}
	if s := DefaultScaleFor("shape", []int{1}); !s.Discrete() {
		t.Errorf("shape should always be discrete")
	}
}

func TestResolveTicksSpecs(t *testing.T) {
	s := NewContinuousScale("x")
	s.ExpandDomain([]float64{0, 10})

	// Unset: computed defaults.
	major, _, labels, err := resolveTicks(s)
	if err != nil || len(major) == 0 || len(labels) != len(major) {
		t.Fatalf("computed ticks wrong: %v %v %v", major, labels, err)
	}

	// Waived: same as unset.
	s.SetBreaks(WaiveBreaks())
	wmajor, _, _, err := resolveTicks(s)
	if err != nil || !reflect.DeepEqual(wmajor, major) {
		t.Fatalf("waived breaks should match computed; got %v vs %v", wmajor, major)
	}

	// Explicit breaks.
	s.SetBreaks(ExplicitBreaks(2, 4, 6))
	major, _, labels, err = resolveTicks(s)
	if err != nil || !reflect.DeepEqual(major, []float64{2, 4, 6}) {
		t.Fatalf("explicit breaks ignored: %v (%v)", major, err)
	}
	if !reflect.DeepEqual(labels, []string{"2", "4", "6"}) {
		t.Fatalf("default labels for explicit breaks wrong: %v", labels)
	}

	// Explicit labels must pair up.
	s.SetLabels(ExplicitLabels("lo", "mid"))
	if _, _, _, err = resolveTicks(s); err == nil {
		t.Fatalf("mismatched label count should error")
	}
	s.SetLabels(ExplicitLabels("lo", "mid", "hi"))
	_, _, labels, err = resolveTicks(s)
	if err != nil || !reflect.DeepEqual(labels, []string{"lo", "mid", "hi"}) {
		t.Fatalf("explicit labels wrong: %v (%v)", labels, err)
	}
}

func TestResolveTicksTransformedBreaks(t *testing.T) {
	// Explicit breaks live in transformed space but label in data
	// space, like computed ticks do.
	s := NewContinuousScale("x").
		SetTrans(Log10Trans).
		SetBreaks(ExplicitBreaks(0, 1, 2))
	s.ExpandDomain([]float64{0, 2})

	major, _, labels, err := resolveTicks(s)
	if err != nil || !reflect.DeepEqual(major, []float64{0, 1, 2}) {
		t.Fatalf("explicit breaks wrong: %v (%v)", major, err)
	}
	if !reflect.DeepEqual(labels, []string{"1", "10", "100"}) {
		t.Fatalf("log breaks should label in data space; got %v", labels)
	}
}

func TestWaiveTriState(t *testing.T) {
	var unset Breaks
	if unset.IsSet() || unset.IsWaived() {
		t.Errorf("zero Breaks should be unset")
	}
	w := WaiveBreaks()
	if !w.IsSet() || !w.IsWaived() {
		t.Errorf("waived Breaks should be set and waived")
	}
	e := ExplicitBreaks()
	if !e.IsSet() || e.IsWaived() {
		t.Errorf("empty explicit Breaks should be set, not waived")
	}
	if reflect.DeepEqual(w, e) {
		t.Errorf("waived and empty explicit must be distinguishable")
	}
}
