// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gg

import (
	"fmt"
	"math"
)

// A Transformation is a monotonic domain transform applied by a
// continuous scale before training. Transformations work like the
// ones in ggplot2: values are transformed once, the rest of the
// pipeline (training, statistics, position adjustment, ranging)
// operates in transformed space.
type Transformation struct {
	Name string

	Forward func(float64) float64
	Inverse func(float64) float64

	// TickLabel, if non-nil, formats a transformed break position
	// as a data-space label. Scales with a TickLabel re-label
	// their axes after the draw loop.
	TickLabel func(float64) string
}

func identity(x float64) float64 { return x }

// IdentityTrans does not transform at all.
var IdentityTrans = Transformation{
	Name:    "identity",
	Forward: identity,
	Inverse: identity,
}

// Log10Trans transforms to base-10 logarithms. Non-positive values
// map to NaN and are dropped from scale training.
var Log10Trans = Transformation{
	Name: "log10",
	Forward: func(x float64) float64 {
		if x <= 0 {
			return math.NaN()
		}
		return math.Log10(x)
	},
	Inverse: func(y float64) float64 { return math.Pow(10, y) },
	TickLabel: func(v float64) string {
		return fmt.Sprintf("%g", math.Pow(10, v))
	},
}

// SqrtTrans transforms to square roots. Negative values map to NaN.
var SqrtTrans = Transformation{
	Name: "sqrt",
	Forward: func(x float64) float64 {
		if x < 0 {
			return math.NaN()
		}
		return math.Sqrt(x)
	},
	Inverse: func(y float64) float64 { return y * y },
	TickLabel: func(v float64) string {
		return fmt.Sprintf("%g", v*v)
	},
}

func (t Transformation) isIdentity() bool {
	return t.Name == "" || t.Name == "identity"
}

// mapFloats applies t.Forward to a copy of xs.
func (t Transformation) mapFloats(xs []float64) []float64 {
	if t.isIdentity() {
		return xs
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = t.Forward(x)
	}
	return out
}
