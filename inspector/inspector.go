// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspector implements the reflection-traversal engine: given a
// value viewed through the [reflected] shape model, it recursively draws
// editable widgets into an injected [Surface], dispatching to per-type
// overrides and short-circuit hooks before falling back to structural
// recursion. Recoverable problems are drawn in place as diagnostics;
// traversal itself only reports whether anything changed.
package inspector

import (
	"reflect"

	"cogentcore.org/inspect/options"
	"cogentcore.org/inspect/reflected"
	"cogentcore.org/inspect/types"
	"cogentcore.org/inspect/world"
)

// Context carries the optional world access available during a
// traversal: a [world.View] for hooks that need to reach other parts
// of the world (such as asset stores), and a [world.CommandQueue] for
// deferred structural edits. Either may be nil.
type Context struct {
	World *world.View
	Queue *world.CommandQueue
}

// ShortCircuitFunc inspects v before structural recursion. It returns
// handled = true if it drew the value, and changed reports edits.
type ShortCircuitFunc func(in *Inspector, v reflected.Value, sf Surface, id ID, opts any) (changed, handled bool)

// ShortCircuitReadonlyFunc is [ShortCircuitFunc] for read-only
// traversal.
type ShortCircuitReadonlyFunc func(in *Inspector, v reflected.Value, sf Surface, id ID, opts any) (handled bool)

// ShortCircuitManyFunc is [ShortCircuitFunc] for multi-value
// traversal: values are the same logical field of several targets.
type ShortCircuitManyFunc func(in *Inspector, t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) (changed, handled bool)

// Widget is a per-type UI override registered as [types.Type.Widget].
// Any nil mode falls back to structural recursion for that mode.
type Widget struct {
	Edit     func(in *Inspector, v reflected.Value, sf Surface, id ID, opts any) bool
	Readonly func(in *Inspector, v reflected.Value, sf Surface, id ID, opts any)
	Many     func(in *Inspector, t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) bool
}

// Inspector is the traversal engine. The zero value is not usable;
// construct with [New].
type Inspector struct {
	// Types is the registry consulted for widget overrides, default
	// options, default constructors, and enum variant metadata.
	Types *types.Registry

	// Context is the optional world access for this traversal.
	Context Context

	// ShortCircuit hooks run after widget overrides and before
	// structural recursion, one per traversal mode. Any may be nil.
	ShortCircuit         ShortCircuitFunc
	ShortCircuitReadonly ShortCircuitReadonlyFunc
	ShortCircuitMany     ShortCircuitManyFunc
}

// New returns an [Inspector] using the given registry and context,
// with no short-circuit hooks.
func New(reg *types.Registry, ctx Context) *Inspector {
	return &Inspector{Types: reg, Context: ctx}
}

// WithWorld returns a copy of the inspector whose context uses the
// given view. Hooks use it to recurse with a narrowed world.
func (in *Inspector) WithWorld(v *world.View) *Inspector {
	sub := *in
	sub.Context.World = v
	return &sub
}

// widgetFor returns the [Widget] override registered for t, if any.
func (in *Inspector) widgetFor(t reflect.Type) *Widget {
	if in.Types == nil {
		return nil
	}
	tp := in.Types.TypeFor(t)
	if tp == nil {
		return nil
	}
	w, _ := tp.Widget.(*Widget)
	return w
}

// resolveOptions substitutes the registry's default options for t when
// the caller passed none.
func (in *Inspector) resolveOptions(t reflect.Type, opts any) any {
	if opts != nil || in.Types == nil {
		return opts
	}
	if tp := in.Types.TypeFor(t); tp != nil && tp.Options != nil {
		return tp.Options
	}
	return nil
}

// asOptions interprets opts as per-field options for a composite
// value, or nil if it is a leaf-level option value.
func asOptions(opts any) *options.Options {
	o, _ := opts.(*options.Options)
	return o
}

// UIForValue draws an editor for v and returns whether the user
// changed it.
func (in *Inspector) UIForValue(v reflected.Value, sf Surface, id ID, opts any) bool {
	if v == nil {
		sf.Error("nothing to inspect: nil value")
		return false
	}
	opts = in.resolveOptions(v.Type(), opts)
	if w := in.widgetFor(v.Type()); w != nil && w.Edit != nil {
		return w.Edit(in, v, sf, id, opts)
	}
	if in.ShortCircuit != nil {
		if changed, handled := in.ShortCircuit(in, v, sf, id, opts); handled {
			return changed
		}
	}
	switch v.Kind() {
	case reflected.StructKind:
		return in.structUI(v.(reflected.Struct), sf, id, opts)
	case reflected.TupleKind:
		return in.tupleUI(v.(reflected.Tuple), sf, id, opts)
	case reflected.EnumKind:
		return in.enumUI(v.(reflected.Enum), sf, id, opts)
	case reflected.ListKind:
		return in.listUI(v.(reflected.List), sf, id, opts)
	case reflected.ArrayKind:
		return in.arrayUI(v.(reflected.Array), sf, id, opts)
	case reflected.MapKind:
		in.mapUI(v.(reflected.Map), sf, id, opts)
		return false
	default:
		errorNoWidget(sf, v.Type())
		return false
	}
}

// UIForValueReadonly draws a non-editable view of v.
func (in *Inspector) UIForValueReadonly(v reflected.Value, sf Surface, id ID, opts any) {
	if v == nil {
		sf.Error("nothing to inspect: nil value")
		return
	}
	opts = in.resolveOptions(v.Type(), opts)
	if w := in.widgetFor(v.Type()); w != nil && w.Readonly != nil {
		w.Readonly(in, v, sf, id, opts)
		return
	}
	if in.ShortCircuitReadonly != nil {
		if handled := in.ShortCircuitReadonly(in, v, sf, id, opts); handled {
			return
		}
	}
	switch v.Kind() {
	case reflected.StructKind:
		in.structUIReadonly(v.(reflected.Struct), sf, id, opts)
	case reflected.TupleKind:
		in.tupleUIReadonly(v.(reflected.Tuple), sf, id, opts)
	case reflected.EnumKind:
		in.enumUIReadonly(v.(reflected.Enum), sf, id, opts)
	case reflected.ListKind:
		in.listUIReadonly(v.(reflected.List), sf, id, opts)
	case reflected.ArrayKind:
		in.arrayUIReadonly(v.(reflected.Array), sf, id, opts)
	case reflected.MapKind:
		in.mapUI(v.(reflected.Map), sf, id, opts)
	default:
		errorNoWidget(sf, v.Type())
	}
}
