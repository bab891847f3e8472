// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import "golang.org/x/exp/constraints"

// NumberOptions configures the display and editing of a numeric field:
// optional min/max bounds and a drag speed for slider-style widgets.
type NumberOptions[T constraints.Integer | constraints.Float] struct {
	// Min is the inclusive lower bound, or nil for unbounded.
	Min *T

	// Max is the inclusive upper bound, or nil for unbounded.
	Max *T

	// Speed is the per-pixel drag increment for drag widgets.
	// Zero means the widget default.
	Speed float64

	// Suffix is appended to the displayed value, e.g., " ms".
	Suffix string
}

// Between returns a [NumberOptions] with both bounds set.
func Between[T constraints.Integer | constraints.Float](min, max T) NumberOptions[T] {
	return NumberOptions[T]{Min: &min, Max: &max}
}

// AtLeast returns a [NumberOptions] with only a lower bound.
func AtLeast[T constraints.Integer | constraints.Float](min T) NumberOptions[T] {
	return NumberOptions[T]{Min: &min}
}

// AtMost returns a [NumberOptions] with only an upper bound.
func AtMost[T constraints.Integer | constraints.Float](max T) NumberOptions[T] {
	return NumberOptions[T]{Max: &max}
}

// WithSpeed returns a copy with the given drag speed.
func (n NumberOptions[T]) WithSpeed(speed float64) NumberOptions[T] {
	n.Speed = speed
	return n
}

// WithSuffix returns a copy with the given display suffix.
func (n NumberOptions[T]) WithSuffix(suffix string) NumberOptions[T] {
	n.Suffix = suffix
	return n
}

// Clamp returns v clamped to the configured bounds.
func (n NumberOptions[T]) Clamp(v T) T {
	if n.Min != nil && v < *n.Min {
		v = *n.Min
	}
	if n.Max != nil && v > *n.Max {
		v = *n.Max
	}
	return v
}
