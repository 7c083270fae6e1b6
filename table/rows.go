// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"reflect"
	"sort"

	"github.com/AamirAbro/ggplot/generic"
)

// RowSelect returns a new Table consisting of rows indexes[0],
// indexes[1], ... of t, in that order. Indexes may repeat.
func (t *Table) RowSelect(indexes []int) *Table {
	b := NewBuilder(nil)
	for _, name := range t.colNames {
		b.Add(name, generic.MultiIndex(t.cols[name], indexes))
	}
	return b.Done()
}

// FilterEq returns the subset of t's rows where the value in col
// equals val.
func (t *Table) FilterEq(col string, val interface{}) *Table {
	return t.RowSelect(t.RowsEq(col, val))
}

// RowsEq returns the indexes of t's rows where the value in col
// equals val.
func (t *Table) RowsEq(col string, val interface{}) []int {
	match := []int{}
	switch seq := t.MustColumn(col).(type) {
	case []int:
		// Panel and group columns; the common case.
		want, ok := val.(int)
		if !ok {
			return match
		}
		for i, v := range seq {
			if v == want {
				match = append(match, i)
			}
		}
	default:
		rv := reflect.ValueOf(seq)
		for i, n := 0, rv.Len(); i < n; i++ {
			if rv.Index(i).Interface() == val {
				match = append(match, i)
			}
		}
	}
	return match
}

// SortBy returns a new Table with t's rows sorted by the named
// column. The values in the column must be naturally ordered or
// SortBy panics with a *generic.TypeError. The sort is stable.
func (t *Table) SortBy(col string) *Table {
	sorter := generic.Sorter(t.MustColumn(col))
	if sort.IsSorted(sorter) {
		return t
	}

	perm := make([]int, t.Len())
	for i := range perm {
		perm[i] = i
	}
	sort.Stable(&permSort{perm, sorter})
	return t.RowSelect(perm)
}

type permSort struct {
	perm []int
	key  sort.Interface
}

func (s *permSort) Len() int           { return len(s.perm) }
func (s *permSort) Less(i, j int) bool { return s.key.Less(s.perm[i], s.perm[j]) }
func (s *permSort) Swap(i, j int)      { s.perm[i], s.perm[j] = s.perm[j], s.perm[i] }

// Concat concatenates the rows of the given tables. All tables must
// have the same set of columns (in any order); the column order of
// the first non-empty table is used. Empty tables are skipped.
func Concat(ts ...*Table) *Table {
	var parts []*Table
	for _, t := range ts {
		if t != nil && t.Len() > 0 {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return new(Table)
	}
	if len(parts) == 1 {
		return parts[0]
	}

	first := parts[0]
	b := NewBuilder(nil)
	for _, name := range first.colNames {
		cols := make([]Slice, len(parts))
		for i, t := range parts {
			cols[i] = t.MustColumn(name)
		}
		b.Add(name, generic.Concat(cols...))
	}
	return b.Done()
}
