// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"reflect"
	"sort"

	"github.com/AamirAbro/ggplot/table"
)

// An Env is the expression environment aesthetic mappings are
// evaluated in. Names bound in the environment are visible to Col
// references that don't match a data column and to Expr mappings. An
// Env is captured by an Aes at construction time and shared by
// reference across plot copies.
type Env map[string]interface{}

// A Mapping produces the values for one aesthetic from a dataset. It
// is one of a small closed set: a column reference (Col), a constant
// (Fixed), or a computed expression (Expr).
type Mapping interface {
	eval(env Env, t *table.Table) (table.Slice, error)

	// Label returns the display label for this mapping, used for
	// axis and legend titles.
	Label() string
}

// Col returns a Mapping that references the named data column. If the
// dataset has no such column, the name is looked up in the mapping's
// environment instead; a slice value is used as-is and a scalar value
// is broadcast to the dataset's length.
func Col(name string) Mapping {
	return colRef{name}
}

type colRef struct {
	name string
}

func (c colRef) Label() string { return c.name }

func (c colRef) eval(env Env, t *table.Table) (table.Slice, error) {
	if t.Has(c.name) {
		return t.Column(c.name), nil
	}
	if v, ok := env[c.name]; ok {
		if reflect.ValueOf(v).Kind() == reflect.Slice {
			return v, nil
		}
		return broadcast(v, t.Len()), nil
	}
	return nil, specErrorf("unknown column or variable %q", c.name)
}

// Fixed returns a Mapping that assigns the same value to every row.
func Fixed(v interface{}) Mapping {
	return literal{v}
}

type literal struct {
	value interface{}
}

func (l literal) Label() string { return "" }

func (l literal) eval(env Env, t *table.Table) (table.Slice, error) {
	return broadcast(l.value, t.Len()), nil
}

// Expr returns a Mapping computed by fn from the mapping environment
// and the dataset. label is used for axis and legend titles.
func Expr(label string, fn func(Env, *table.Table) (table.Slice, error)) Mapping {
	return exprMapping{label, fn}
}

type exprMapping struct {
	name string
	fn   func(Env, *table.Table) (table.Slice, error)
}

func (e exprMapping) Label() string { return e.name }

func (e exprMapping) eval(env Env, t *table.Table) (table.Slice, error) {
	return e.fn(env, t)
}

// broadcast builds a slice of length n whose every element is v.
func broadcast(v interface{}, n int) table.Slice {
	sv := reflect.MakeSlice(reflect.SliceOf(reflect.TypeOf(v)), n, n)
	cv := reflect.ValueOf(v)
	for i := 0; i < n; i++ {
		sv.Index(i).Set(cv)
	}
	return sv.Interface()
}

// Aes maps abstract aesthetic names (x, y, color, size, ...) to
// Mappings. The zero value is an empty mapping. Aes values are
// immutable once constructed; plot copies share them.
type Aes struct {
	mappings map[string]Mapping
	env      Env
}

// NewAes returns an Aes with the given mappings and no environment.
func NewAes(m map[string]Mapping) Aes {
	cp := make(map[string]Mapping, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Aes{mappings: cp}
}

// WithEnv returns a copy of a with env as its expression environment.
// The environment is captured by reference.
func (a Aes) WithEnv(env Env) Aes {
	a.env = env
	return a
}

// Has reports whether aesthetic name is mapped.
func (a Aes) Has(name string) bool {
	_, ok := a.mappings[name]
	return ok
}

// Get returns the Mapping for aesthetic name, or nil.
func (a Aes) Get(name string) Mapping {
	return a.mappings[name]
}

// Names returns the mapped aesthetic names in sorted order.
func (a Aes) Names() []string {
	names := make([]string, 0, len(a.mappings))
	for name := range a.mappings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Labels returns the display label for each mapped aesthetic, for
// axis and legend titles.
func (a Aes) Labels() map[string]string {
	labels := make(map[string]string, len(a.mappings))
	for name, m := range a.mappings {
		labels[name] = m.Label()
	}
	return labels
}

// aesBinding is one entry of the effective mapping of a layer: the
// Mapping to evaluate and the environment it was constructed in.
type aesBinding struct {
	aes     string
	mapping Mapping
	env     Env
}

// effectiveAes merges the layer mapping over the plot mapping per
// aesthetic. Each binding keeps the environment of the Aes that
// contributed it.
func effectiveAes(plotAes, layerAes Aes) []aesBinding {
	byName := make(map[string]aesBinding)
	for name, m := range plotAes.mappings {
		byName[name] = aesBinding{name, m, plotAes.env}
	}
	for name, m := range layerAes.mappings {
		byName[name] = aesBinding{name, m, layerAes.env}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]aesBinding, len(names))
	for i, name := range names {
		out[i] = byName[name]
	}
	return out
}
