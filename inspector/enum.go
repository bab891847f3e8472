// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"reflect"
	"strings"

	"cogentcore.org/inspect/options"
	"cogentcore.org/inspect/reflected"
	"cogentcore.org/inspect/types"
	"cogentcore.org/inspect/world"
)

// enumUI draws a tagged union: a variant selector followed by the
// active variant's payload fields. Variants whose fields cannot all be
// default-constructed are shown disabled with the blocking fields
// named. Switching variants initializes every payload field to its
// registry default.
func (in *Inspector) enumUI(e reflected.Enum, sf Surface, id ID, opts any) bool {
	variants := in.variantsFor(e)
	if variants == nil {
		in.errorNoEnumMetadata(sf, e.Type())
		return false
	}
	changed := false
	items := make([]SelectorItem, len(variants))
	for vi, variant := range variants {
		item := SelectorItem{Label: variant.Name}
		if blocked := in.unconstructable(variant); len(blocked) > 0 {
			item.Disabled = true
			item.Reason = "cannot construct " + strings.Join(blocked, ", ") + ": no registered default"
		}
		items[vi] = item
	}
	sel, selChanged := sf.Selector(id.With("variant"), e.VariantIndex(), items)
	if selChanged && sel != e.VariantIndex() && sel >= 0 && sel < len(variants) {
		// Re-check the gate here; a surface must not return a disabled
		// item, but constructing the payload on a bad index would panic.
		if items[sel].Disabled {
			sf.Error(items[sel].Reason)
		} else if err := e.SetVariant(sel, in.defaultFields(variants[sel])); err != nil {
			sf.Error(err.Error())
		} else {
			changed = true
		}
	}
	if in.variantFieldsUI(e, variants, sf, id, opts) {
		changed = true
	}
	return changed
}

func (in *Inspector) enumUIReadonly(e reflected.Enum, sf Surface, id ID, opts any) {
	variants := in.variantsFor(e)
	if variants == nil {
		in.errorNoEnumMetadata(sf, e.Type())
		return
	}
	vi := e.VariantIndex()
	if vi < 0 || vi >= len(variants) {
		errorNoVariants(sf, e.Type())
		return
	}
	sf.Label(variants[vi].Name)
	fo := asOptions(opts)
	for i := 0; i < e.NumFields(); i++ {
		sf.BeginRow()
		if name := fieldName(variants[vi], i); name != "" {
			sf.Label(name)
		}
		in.UIForValueReadonly(e.Field(i), sf, id.With(vi).With(i), fo.Get(options.VariantField(vi, i)))
		sf.EndRow()
	}
}

// variantFieldsUI draws the payload fields of the active variant,
// addressed with [options.VariantField].
func (in *Inspector) variantFieldsUI(e reflected.Enum, variants []types.Variant, sf Surface, id ID, opts any) bool {
	vi := e.VariantIndex()
	if vi < 0 || vi >= len(variants) || e.NumFields() == 0 {
		return false
	}
	fo := asOptions(opts)
	changed := false
	sf.BeginGrid(id.With(vi).With("grid"))
	for i := 0; i < e.NumFields(); i++ {
		sf.BeginRow()
		if name := fieldName(variants[vi], i); name != "" {
			sf.Label(name)
		}
		if in.UIForValue(e.Field(i), sf, id.With(vi).With(i), fo.Get(options.VariantField(vi, i))) {
			changed = true
		}
		sf.EndRow()
	}
	sf.EndGrid()
	return changed
}

// variantsFor returns the registered variant metadata for e's type,
// or nil if its type has none.
func (in *Inspector) variantsFor(e reflected.Enum) []types.Variant {
	if in.Types == nil {
		return nil
	}
	tp := in.Types.TypeFor(e.Type())
	if tp == nil {
		return nil
	}
	return tp.Variants
}

// errorNoEnumMetadata draws the diagnostic for a tagged union the
// inspector cannot describe: the type is either missing from the
// registry entirely, or registered without variant metadata.
func (in *Inspector) errorNoEnumMetadata(sf Surface, t reflect.Type) {
	if in.Types == nil || in.Types.TypeFor(t) == nil {
		ErrorWorld(sf, &world.NoTypeRegistrationError{TypeName: types.TypeName(t)})
		return
	}
	errorNoVariants(sf, t)
}

// unconstructable returns the names of the variant's fields that have
// no registered default constructor.
func (in *Inspector) unconstructable(v types.Variant) []string {
	var blocked []string
	for _, f := range v.Fields {
		tp := in.Types.TypeFor(f.Type)
		if tp == nil || tp.Default == nil {
			blocked = append(blocked, f.Name)
		}
	}
	return blocked
}

// defaultFields constructs the registry default for every field of the
// variant. Call only after [Inspector.unconstructable] returned empty.
func (in *Inspector) defaultFields(v types.Variant) []any {
	fields := make([]any, len(v.Fields))
	for i, f := range v.Fields {
		fields[i] = in.Types.TypeFor(f.Type).Default()
	}
	return fields
}

func fieldName(v types.Variant, i int) string {
	if i < len(v.Fields) {
		return v.Fields[i].Name
	}
	return ""
}
