// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides a runtime type registry for the inspector.
// Types are registered with per-type capabilities: a default-constructor,
// a widget override, default per-field options, and, for tagged unions,
// variant metadata. The registry is an explicit value, not global state,
// so isolated registries can be constructed per test or per application.
package types

import (
	"reflect"
	"strings"

	"cogentcore.org/inspect/base/reflectx"
	"cogentcore.org/inspect/options"
	"github.com/iancoleman/strcase"
)

// Type represents a registered type and its inspector capabilities.
type Type struct {
	// Name is the fully package-path-qualified name of the type
	// (eg: cogentcore.org/inspect/assets.Handle).
	Name string

	// IDName is the short, package-unqualified, kebab-case name of the
	// type that is suitable for use in an ID (eg: handle).
	IDName string

	// Doc has the documentation for the type as one string.
	Doc string

	// Instance is an instance of the type (typically a pointer to
	// the zero value), used to recover the [reflect.Type].
	Instance any

	// Default is the default-constructor capability: it returns a new
	// value of the type. It is nil if no value of the type can be
	// constructed, which blocks enum variant switching and list element
	// adding for the type.
	Default func() any

	// Options are the default per-field inspector options for the type,
	// used when the caller does not pass explicit options.
	Options *options.Options

	// Widget is the per-type UI override capability. It is interpreted
	// by the inspector package (as an *inspector.Widget); it is stored
	// type-erased here so that capability providers do not need to
	// depend on the inspector.
	Widget any

	// Variants is the variant metadata for tagged-union types
	// (those implementing [reflected.Enumer]). It is nil for all
	// other types.
	Variants []Variant

	// ID is the unique type ID number, assigned by the [Registry].
	ID uint64
}

// Variant describes one variant of a tagged-union type.
type Variant struct {
	// Name is the display name of the variant.
	Name string

	// Fields are the fields of the variant, in declaration order.
	Fields []Field
}

// Field describes one field of a tagged-union variant.
type Field struct {
	// Name is the display name of the field.
	Name string

	// Type is the type of the field.
	Type reflect.Type
}

func (tp *Type) String() string {
	return tp.Name
}

// ShortName returns the short name of the type (package.Type).
func (tp *Type) ShortName() string {
	li := strings.LastIndex(tp.Name, "/")
	return tp.Name[li+1:]
}

func (tp *Type) Label() string {
	return tp.ShortName()
}

// ReflectType returns the [reflect.Type] for this type, using the Instance.
func (tp *Type) ReflectType() reflect.Type {
	if tp.Instance == nil {
		return nil
	}
	return reflectx.NonPointerType(reflect.TypeOf(tp.Instance))
}

// TypeName returns the fully package-path-qualified name of the given type
// (eg: cogentcore.org/inspect/assets.Handle). This is guaranteed to be
// unique and is used as the key for the [Registry].
func TypeName(typ reflect.Type) string {
	if typ == nil {
		return ""
	}
	if typ.PkgPath() != "" {
		return typ.PkgPath() + "." + typ.Name()
	}
	return typ.String()
}

// TypeNameValue returns the fully package-path-qualified name of the
// non-pointer type of the given value.
func TypeNameValue(v any) string {
	return TypeName(reflectx.NonPointerType(reflect.TypeOf(v)))
}

// idName converts the short name of a type into a kebab-case name
// suitable for use in an ID.
func idName(short string) string {
	if li := strings.LastIndex(short, "."); li >= 0 {
		short = short[li+1:]
	}
	return strcase.ToKebab(short)
}
