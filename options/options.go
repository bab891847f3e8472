// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package options provides the per-field configuration addressing used by
// the inspector: a [Target] addresses one field of a composite type, and
// an [Options] map routes arbitrary configuration values (such as
// [NumberOptions]) to targets during traversal.
package options

// Target is the address of one field within a composite type: either a
// plain struct/tuple field, or a field of a specific tagged-union variant.
type Target struct {
	// Variant is the variant index for variant fields, and -1 for
	// plain struct/tuple fields.
	Variant int

	// Field is the field index within the struct, tuple, or variant.
	Field int
}

// Field returns the [Target] addressing the struct or tuple field
// at the given index.
func Field(i int) Target {
	return Target{Variant: -1, Field: i}
}

// VariantField returns the [Target] addressing the given field of the
// given tagged-union variant.
func VariantField(variant, field int) Target {
	return Target{Variant: variant, Field: field}
}

// Options maps [Target]s to arbitrary configuration values used to
// control how a field is displayed, e.g., [NumberOptions].
// The absence of an entry means default configuration.
type Options struct {
	fields map[Target]any
}

// New returns a new empty [Options].
func New() *Options {
	return &Options{fields: map[Target]any{}}
}

// Insert sets the configuration value for the given target,
// returning the Options for chaining.
func (o *Options) Insert(target Target, value any) *Options {
	if o.fields == nil {
		o.fields = map[Target]any{}
	}
	o.fields[target] = value
	return o
}

// Get returns the configuration value for the given target,
// or nil if there is none.
func (o *Options) Get(target Target) any {
	if o == nil {
		return nil
	}
	return o.fields[target]
}

// Len returns the number of configured targets.
func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}
