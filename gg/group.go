// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/AamirAbro/ggplot/generic"
	"github.com/AamirAbro/ggplot/table"
)

// addGroup derives the group column from the interaction of the
// discrete aesthetic columns in t. Rows sharing every discrete value
// share a 1-based group id; with no discrete aesthetics everything is
// group 1. An existing group column is kept.
func addGroup(t *table.Table) *table.Table {
	if t.Has("group") {
		return t
	}
	if t.Len() == 0 {
		return t.Add("group", []int{})
	}

	var discrete []string
	for _, col := range t.Columns() {
		if bookkeepingCols[col] || col == "PANEL" {
			continue
		}
		if !generic.CanFloats(t.Column(col)) {
			discrete = append(discrete, col)
		}
	}
	sort.Strings(discrete)

	if len(discrete) == 0 {
		return t.Add("group", repeatInt(1, t.Len()))
	}

	cols := make([]reflect.Value, len(discrete))
	for i, c := range discrete {
		cols[i] = reflect.ValueOf(t.Column(c))
	}
	ids := make(map[string]int)
	group := make([]int, t.Len())
	for i := range group {
		key := ""
		for _, c := range cols {
			key += fmt.Sprintf("%v\x00", c.Index(i).Interface())
		}
		id, ok := ids[key]
		if !ok {
			id = len(ids) + 1
			ids[key] = id
		}
		group[i] = id
	}
	return t.Add("group", group)
}
