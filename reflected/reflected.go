// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflected defines the closed shape model the inspector traverses:
// every value is viewed as one of a small set of shapes (struct, list,
// array, map, tagged union, or leaf), each with a uniform interface for
// reading and mutating it. [ValueOf] adapts ordinary Go values to the
// model using the reflect package.
package reflected

import "reflect"

// Kind is the shape of a [Value].
type Kind int32

const (
	// LeafKind is a terminal value edited by a single widget:
	// numbers, booleans, strings.
	LeafKind Kind = iota

	// StructKind is a value with named fields.
	StructKind

	// TupleKind is a value with positional unnamed fields.
	TupleKind

	// ListKind is a variable-length ordered sequence.
	ListKind

	// ArrayKind is a fixed-length ordered sequence.
	ArrayKind

	// MapKind is a keyed collection.
	MapKind

	// EnumKind is a tagged union: one active variant out of a
	// declared set, each with its own payload fields.
	EnumKind
)

func (k Kind) String() string {
	switch k {
	case LeafKind:
		return "leaf"
	case StructKind:
		return "struct"
	case TupleKind:
		return "tuple"
	case ListKind:
		return "list"
	case ArrayKind:
		return "array"
	case MapKind:
		return "map"
	case EnumKind:
		return "enum"
	}
	return "invalid"
}

// Value is a value viewed through the shape model. The concrete
// shape interface ([Struct], [List], etc.) is selected by [Value.Kind].
type Value interface {
	// Kind returns the shape of this value.
	Kind() Kind

	// Type returns the underlying Go type.
	Type() reflect.Type

	// Interface returns the current underlying value.
	Interface() any
}

// Struct is a [Value] with named fields.
type Struct interface {
	Value

	// NumFields returns the number of visible fields.
	NumFields() int

	// FieldName returns the name of the field at the given index.
	FieldName(i int) string

	// Field returns the field at the given index.
	Field(i int) Value
}

// Tuple is a [Value] with positional unnamed fields.
type Tuple interface {
	Value

	// NumElems returns the number of elements.
	NumElems() int

	// Elem returns the element at the given index.
	Elem(i int) Value
}

// List is a variable-length ordered [Value].
type List interface {
	Value

	// Len returns the current length.
	Len() int

	// Elem returns the element at the given index.
	Elem(i int) Value

	// Insert inserts the given value before index i,
	// so Insert(Len(), v) appends.
	Insert(i int, v any) error

	// Remove removes the element at index i.
	Remove(i int) error

	// Move moves the element at index i to index j, shifting
	// the elements in between.
	Move(i, j int) error
}

// Array is a fixed-length ordered [Value].
type Array interface {
	Value

	// Len returns the length.
	Len() int

	// Elem returns the element at the given index.
	Elem(i int) Value
}

// MapEntry is one key/value pair of a [Map], with the key rendered
// to a stable display string.
type MapEntry struct {
	Key   string
	Value Value
}

// Map is a keyed collection [Value]. Entries are read-only; keys are
// exposed only as display strings.
type Map interface {
	Value

	// Len returns the number of entries.
	Len() int

	// Entries returns the entries sorted by display key, so that
	// traversal order is deterministic across runs.
	Entries() []MapEntry
}

// Enum is a tagged-union [Value]. The variant declarations (names and
// field types) live in the type registry; Enum exposes only the active
// variant's state.
type Enum interface {
	Value

	// VariantIndex returns the index of the active variant.
	VariantIndex() int

	// NumFields returns the number of payload fields of the
	// active variant.
	NumFields() int

	// Field returns the payload field at the given index.
	Field(i int) Value

	// SetVariant switches to the variant at the given index,
	// initializing its payload from the given field values.
	SetVariant(index int, fields []any) error
}

// Leaf is a terminal [Value].
type Leaf interface {
	Value

	// Set replaces the value. The argument must be assignable or
	// convertible to the leaf's type.
	Set(v any) error
}
