// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements ordered two dimensional relations.
//
// A Table is an ordered relation of rows and columns. Each column is
// a Go slice and hence must be homogeneously typed, but different
// columns may have different types. All columns in a Table have the
// same number of rows.
//
// A Table's structure is immutable: Add returns a new Table sharing
// the unchanged column slices. The plot build pipeline threads Tables
// through its stages, progressively adding derived columns (group id,
// panel id, computed statistics, adjusted positions).
package table

import (
	"reflect"
	"strconv"

	"github.com/AamirAbro/ggplot/generic"
)

// A Slice is a Go slice value.
//
// This is primarily for documentation. There is no way to statically
// enforce this in Go; however, operations that expect a Slice will
// panic with a *generic.TypeError if passed a non-slice value.
type Slice = generic.Slice

// A Table is an ordered two dimensional relation. It consists of a
// set of named columns, where each column is a sequence of values of
// a consistent type and all columns have the same length.
//
// The zero value of Table is an empty table with no rows and no
// columns.
type Table struct {
	cols     map[string]Slice
	colNames []string
	len      int
}

// New returns an empty Table.
func New() *Table {
	return new(Table)
}

// Add returns a new Table with a new column bound to data. If Table t
// already has a column with the same name, it is replaced in place in
// the column order. data must have the same length as any existing
// columns or Add will panic.
func (t *Table) Add(name string, data Slice) *Table {
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice {
		panic(&generic.TypeError{Type: rv.Type(), Extra: "is not a slice"})
	}
	dataLen := rv.Len()

	nt := &Table{make(map[string]Slice), nil, t.len}
	replaced := false
	for _, name2 := range t.colNames {
		nt.cols[name2] = t.cols[name2]
		nt.colNames = append(nt.colNames, name2)
		if name == name2 {
			replaced = true
		}
	}
	if len(nt.cols) == 0 {
		nt.len = dataLen
	} else if nt.len != dataLen {
		panic("cannot add column " + name + " with " + strconv.Itoa(dataLen) + " elements to table with " + strconv.Itoa(nt.len) + " rows")
	}
	nt.cols[name] = data
	if !replaced {
		nt.colNames = append(nt.colNames, name)
	}
	return nt
}

// Len returns the number of rows in Table t.
func (t *Table) Len() int {
	return t.len
}

// Columns returns the names of the columns in Table t, or nil if this
// Table is empty.
func (t *Table) Columns() []string {
	return t.colNames
}

// Column returns the slice of data in column name of Table t, or nil
// if there is no such column.
func (t *Table) Column(name string) Slice {
	return t.cols[name]
}

// MustColumn is like Column, but panics if there is no such column.
func (t *Table) MustColumn(name string) Slice {
	if c := t.Column(name); c != nil {
		return c
	}
	panic("unknown column: " + name)
}

// Has reports whether Table t has a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Remove returns a new Table without the named column. Removing a
// column that does not exist returns t unchanged.
func (t *Table) Remove(name string) *Table {
	if !t.Has(name) {
		return t
	}
	nt := &Table{make(map[string]Slice), nil, t.len}
	for _, name2 := range t.colNames {
		if name2 == name {
			continue
		}
		nt.cols[name2] = t.cols[name2]
		nt.colNames = append(nt.colNames, name2)
	}
	if len(nt.colNames) == 0 {
		nt.len = 0
	}
	return nt
}

// A Builder constructs a Table incrementally, avoiding the quadratic
// cost of chained Add calls.
type Builder struct {
	t Table
}

// NewBuilder returns a new Builder seeded with the columns of t. t
// may be nil, in which case the Builder starts empty.
func NewBuilder(t *Table) *Builder {
	b := new(Builder)
	b.t.cols = make(map[string]Slice)
	if t != nil {
		b.t.len = t.len
		for _, name := range t.colNames {
			b.t.cols[name] = t.cols[name]
			b.t.colNames = append(b.t.colNames, name)
		}
	}
	return b
}

// Add adds a column to b, replacing any existing column of the same
// name, and returns b.
func (b *Builder) Add(name string, data Slice) *Builder {
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice {
		panic(&generic.TypeError{Type: rv.Type(), Extra: "is not a slice"})
	}
	if len(b.t.cols) == 0 {
		b.t.len = rv.Len()
	} else if rv.Len() != b.t.len {
		panic("cannot add column " + name + " with " + strconv.Itoa(rv.Len()) + " elements to table with " + strconv.Itoa(b.t.len) + " rows")
	}
	if _, ok := b.t.cols[name]; !ok {
		b.t.colNames = append(b.t.colNames, name)
	}
	b.t.cols[name] = data
	return b
}

// Done returns the constructed Table. The Builder must not be used
// after Done.
func (b *Builder) Done() *Table {
	return &b.t
}
