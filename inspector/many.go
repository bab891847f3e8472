// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"reflect"
	"strconv"

	"cogentcore.org/inspect/options"
	"cogentcore.org/inspect/reflected"
)

// UIForMany draws one editor for the same logical value of several
// targets at once, editing all of them in lockstep. t is the shared
// type of the values. Targets whose structure disagrees (different
// enum variants, different list lengths) are reported instead of
// merged.
func (in *Inspector) UIForMany(t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) bool {
	if len(values) == 0 {
		return false
	}
	opts = in.resolveOptions(t, opts)
	if w := in.widgetFor(t); w != nil && w.Many != nil {
		return w.Many(in, t, sf, id, opts, values)
	}
	if in.ShortCircuitMany != nil {
		if changed, handled := in.ShortCircuitMany(in, t, sf, id, opts, values); handled {
			return changed
		}
	}
	switch values[0].Kind() {
	case reflected.StructKind:
		return in.structUIMany(t, sf, id, opts, values)
	case reflected.TupleKind:
		return in.tupleUIMany(t, sf, id, opts, values)
	case reflected.EnumKind:
		return in.enumUIMany(t, sf, id, opts, values)
	case reflected.ListKind:
		return in.listUIMany(t, sf, id, opts, values)
	case reflected.ArrayKind:
		return in.arrayUIMany(t, sf, id, opts, values)
	case reflected.MapKind:
		sf.Label("maps cannot be multi-edited")
		return false
	default:
		errorNoWidget(sf, t)
		return false
	}
}

func (in *Inspector) structUIMany(t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) bool {
	first := values[0].(reflected.Struct)
	fo := asOptions(opts)
	fieldValues := func(i int) []reflected.Value {
		sub := make([]reflected.Value, len(values))
		for j, v := range values {
			sub[j] = v.(reflected.Struct).Field(i)
		}
		return sub
	}
	switch first.NumFields() {
	case 0:
		return false
	case 1:
		sub := fieldValues(0)
		return in.UIForMany(sub[0].Type(), sf, id.With(0), fo.Get(options.Field(0)), sub)
	}
	changed := false
	sf.BeginGrid(id.With("grid"))
	for i := 0; i < first.NumFields(); i++ {
		sf.BeginRow()
		sf.Label(first.FieldName(i))
		sub := fieldValues(i)
		if in.UIForMany(sub[0].Type(), sf, id.With(i), fo.Get(options.Field(i)), sub) {
			changed = true
		}
		sf.EndRow()
	}
	sf.EndGrid()
	return changed
}

// tupleUIMany edits the positional fields of several tuples in
// lockstep, numbered like [Inspector.tupleUI].
func (in *Inspector) tupleUIMany(t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) bool {
	first := values[0].(reflected.Tuple)
	fo := asOptions(opts)
	elemValues := func(i int) []reflected.Value {
		sub := make([]reflected.Value, len(values))
		for j, v := range values {
			sub[j] = v.(reflected.Tuple).Elem(i)
		}
		return sub
	}
	switch first.NumElems() {
	case 0:
		return false
	case 1:
		sub := elemValues(0)
		return in.UIForMany(sub[0].Type(), sf, id.With(0), fo.Get(options.Field(0)), sub)
	}
	changed := false
	sf.BeginGrid(id.With("grid"))
	for i := 0; i < first.NumElems(); i++ {
		sf.BeginRow()
		sf.Label(strconv.Itoa(i))
		sub := elemValues(i)
		if in.UIForMany(sub[0].Type(), sf, id.With(i), fo.Get(options.Field(i)), sub) {
			changed = true
		}
		sf.EndRow()
	}
	sf.EndGrid()
	return changed
}

// enumUIMany edits the payload fields of several enums in lockstep.
// Variant switching is not offered in multi-edit; targets on different
// variants cannot be merged and are reported.
func (in *Inspector) enumUIMany(t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) bool {
	first := values[0].(reflected.Enum)
	for _, v := range values[1:] {
		if v.(reflected.Enum).VariantIndex() != first.VariantIndex() {
			sf.Label("cannot multi-edit: selected values have different variants")
			return false
		}
	}
	variants := in.variantsFor(first)
	if variants == nil {
		in.errorNoEnumMetadata(sf, t)
		return false
	}
	vi := first.VariantIndex()
	if vi < 0 || vi >= len(variants) {
		errorNoVariants(sf, t)
		return false
	}
	sf.Label(variants[vi].Name)
	fo := asOptions(opts)
	changed := false
	for i := 0; i < first.NumFields(); i++ {
		sf.BeginRow()
		if name := fieldName(variants[vi], i); name != "" {
			sf.Label(name)
		}
		sub := make([]reflected.Value, len(values))
		for j, v := range values {
			sub[j] = v.(reflected.Enum).Field(i)
		}
		if in.UIForMany(sub[0].Type(), sf, id.With(vi).With(i), fo.Get(options.VariantField(vi, i)), sub) {
			changed = true
		}
		sf.EndRow()
	}
	return changed
}

// listUIMany edits lists of equal length element-wise. Structural
// controls are not offered in multi-edit.
func (in *Inspector) listUIMany(t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) bool {
	first := values[0].(reflected.List)
	for _, v := range values[1:] {
		if v.(reflected.List).Len() != first.Len() {
			sf.Label("cannot multi-edit: selected lists have different lengths")
			return false
		}
	}
	changed := false
	for i := 0; i < first.Len(); i++ {
		sf.BeginRow()
		sub := make([]reflected.Value, len(values))
		for j, v := range values {
			sub[j] = v.(reflected.List).Elem(i)
		}
		if in.UIForMany(sub[0].Type(), sf, id.With(i), opts, sub) {
			changed = true
		}
		sf.EndRow()
		if i < first.Len()-1 {
			sf.Separator()
		}
	}
	return changed
}

func (in *Inspector) arrayUIMany(t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) bool {
	first := values[0].(reflected.Array)
	changed := false
	for i := 0; i < first.Len(); i++ {
		sf.BeginRow()
		sub := make([]reflected.Value, len(values))
		for j, v := range values {
			sub[j] = v.(reflected.Array).Elem(i)
		}
		if in.UIForMany(sub[0].Type(), sf, id.With(i), opts, sub) {
			changed = true
		}
		sf.EndRow()
		if i < first.Len()-1 {
			sf.Separator()
		}
	}
	return changed
}
