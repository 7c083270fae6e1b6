// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"reflect"
	"testing"

	"github.com/AamirAbro/ggplot/table"
)

func TestAddGroupDiscrete(t *testing.T) {
	tab := table.New().
		Add("x", []float64{1, 2, 3, 4}).
		Add("color", []string{"a", "b", "a", "b"})
	got := addGroup(tab).Column("group").([]int)
	want := []int{1, 2, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("groups should follow discrete levels; got %v", got)
	}
}

func TestAddGroupInteraction(t *testing.T) {
	tab := table.New().
		Add("color", []string{"a", "a", "b", "b"}).
		Add("shape", []string{"s", "t", "s", "t"})
	got := addGroup(tab).Column("group").([]int)
	want := []int{1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("groups should be the interaction of discrete columns; got %v", got)
	}
}

func TestAddGroupAllContinuous(t *testing.T) {
	tab := table.New().
		Add("x", []float64{1, 2}).
		Add("y", []float64{3, 4})
	got := addGroup(tab).Column("group").([]int)
	if !reflect.DeepEqual(got, []int{1, 1}) {
		t.Fatalf("all-continuous data is one group; got %v", got)
	}
}

func TestAddGroupKeepsExisting(t *testing.T) {
	tab := table.New().
		Add("x", []float64{1, 2}).
		Add("group", []int{7, 7})
	got := addGroup(tab).Column("group").([]int)
	if !reflect.DeepEqual(got, []int{7, 7}) {
		t.Fatalf("existing group column should be kept; got %v", got)
	}
}

func TestEffectiveAesLayerWins(t *testing.T) {
	plotAes := NewAes(map[string]Mapping{
		"x": Col("a"),
		"y": Col("b"),
	})
	layerAes := NewAes(map[string]Mapping{
		"y": Col("c"),
	})
	bindings := effectiveAes(plotAes, layerAes)
	if len(bindings) != 2 {
		t.Fatalf("expected 2 bindings; got %d", len(bindings))
	}
	if bindings[0].aes != "x" || bindings[0].mapping.Label() != "a" {
		t.Fatalf("x binding wrong: %+v", bindings[0])
	}
	if bindings[1].aes != "y" || bindings[1].mapping.Label() != "c" {
		t.Fatalf("layer mapping should override plot mapping: %+v", bindings[1])
	}
}

func TestColFallsBackToEnv(t *testing.T) {
	tab := table.New().Add("a", []float64{1, 2, 3})
	env := Env{"k": 5.0}
	seq, err := Col("k").eval(env, tab)
	if err != nil {
		t.Fatal(err)
	}
	if got := seq.([]float64); !reflect.DeepEqual(got, []float64{5, 5, 5}) {
		t.Fatalf("scalar env value should broadcast; got %v", got)
	}

	if _, err := Col("missing").eval(env, tab); err == nil {
		t.Fatalf("unknown name should error")
	}
}
