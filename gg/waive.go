// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

// Breaks and Labels are tri-state specifications for axis breaks and
// break labels. The zero value is "unset": the scale computes its own
// defaults. A waived spec defers to the drawing surface's automatic
// choice. An explicit spec carries the values to use. The three
// states must stay distinguishable; "waived" is not the same as
// "no breaks" or "unset".

type specState int

const (
	specUnset specState = iota
	specWaived
	specExplicit
)

// Breaks specifies where axis breaks (tick positions) go.
type Breaks struct {
	state specState
	vals  []float64
}

// WaiveBreaks returns a Breaks spec that defers to the surface's
// automatic break choice.
func WaiveBreaks() Breaks {
	return Breaks{state: specWaived}
}

// ExplicitBreaks returns a Breaks spec with the given positions. An
// empty list is a valid explicit spec meaning "no breaks".
func ExplicitBreaks(vals ...float64) Breaks {
	return Breaks{state: specExplicit, vals: vals}
}

// IsWaived reports whether b defers to the surface.
func (b Breaks) IsWaived() bool { return b.state == specWaived }

// IsSet reports whether b is anything other than the unset zero
// value.
func (b Breaks) IsSet() bool { return b.state != specUnset }

// Values returns the explicit break positions. It is only meaningful
// when IsSet and not IsWaived.
func (b Breaks) Values() []float64 { return b.vals }

// Labels specifies the text attached to axis breaks.
type Labels struct {
	state specState
	vals  []string
}

// WaiveLabels returns a Labels spec that defers to the surface's
// automatic labelling.
func WaiveLabels() Labels {
	return Labels{state: specWaived}
}

// ExplicitLabels returns a Labels spec with the given label texts.
func ExplicitLabels(vals ...string) Labels {
	return Labels{state: specExplicit, vals: vals}
}

// IsWaived reports whether l defers to the surface.
func (l Labels) IsWaived() bool { return l.state == specWaived }

// IsSet reports whether l is anything other than the unset zero
// value.
func (l Labels) IsSet() bool { return l.state != specUnset }

// Values returns the explicit labels.
func (l Labels) Values() []string { return l.vals }
