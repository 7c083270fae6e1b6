// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggstat provides the built-in statistical transforms:
// Count, Bin, and Summary. A stat receives one panel's data table
// with aesthetic columns already in numeric coordinates and returns a
// new table, usually with fewer rows and extra computed columns.
package ggstat

import (
	"github.com/AamirAbro/ggplot/table"
)

// Identity passes the data through untouched. It is the implicit
// stat of most geoms; naming it on a layer overrides a geom's default
// stat, which is how a bar layer draws pre-counted values.
type Identity struct{}

func (Identity) Name() string { return "identity" }

func (Identity) Compute(t *table.Table) (*table.Table, error) { return t, nil }

func (Identity) DefaultAes() map[string]string { return nil }

// groupCol returns the group column, or all-ones when absent.
func groupCol(t *table.Table) []int {
	if t.Has("group") {
		return t.Column("group").([]int)
	}
	gs := make([]int, t.Len())
	for i := range gs {
		gs[i] = 1
	}
	return gs
}
