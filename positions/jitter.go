// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package positions

import (
	"math/rand"

	"github.com/AamirAbro/ggplot/table"
)

// Jitter displaces each mark by a uniform random offset so
// overplotted points separate. The offsets are seeded, so repeated
// builds of the same plot render identically.
type Jitter struct {
	// Width is the maximum absolute x displacement in x units.
	// Zero means 0.4, suited to discrete x spacing of 1.
	Width float64

	// Height is the maximum absolute y displacement. Zero means
	// no vertical jitter.
	Height float64

	// Seed seeds the offset stream. The zero seed is valid and
	// deterministic like any other.
	Seed int64
}

func (Jitter) Name() string { return "jitter" }

func (j Jitter) Adjust(t *table.Table) (*table.Table, error) {
	if t == nil || t.Len() == 0 || !t.Has("x") {
		return t, nil
	}
	w := j.Width
	if w == 0 {
		w = 0.4
	}
	rng := rand.New(rand.NewSource(j.Seed))

	xs := append([]float64(nil), floatCol(t, "x")...)
	for i := range xs {
		xs[i] += (rng.Float64()*2 - 1) * w
	}
	t = t.Add("x", xs)

	if j.Height > 0 && t.Has("y") {
		ys := append([]float64(nil), floatCol(t, "y")...)
		for i := range ys {
			ys[i] += (rng.Float64()*2 - 1) * j.Height
		}
		t = t.Add("y", ys)
	}
	return t, nil
}
