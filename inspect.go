// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspect ties the pieces together into ready-made entry
// points for drawing a world inspector: whole-world, per-resource, and
// per-entity panels over an injected [inspector.Surface]. Each entry
// point narrows the world view to exclude the value being drawn, so
// hooks reached during recursion can still access the rest of the
// world.
package inspect

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspect/assets"
	"cogentcore.org/inspect/inspector"
	"cogentcore.org/inspect/reflected"
	"cogentcore.org/inspect/types"
	"cogentcore.org/inspect/world"
)

// NewRegistry returns a [types.Registry] with the builtin leaf widgets
// registered.
func NewRegistry() *types.Registry {
	reg := types.NewRegistry()
	inspector.RegisterDefaults(reg)
	return reg
}

// New returns an [inspector.Inspector] over the given world, with the
// asset-handle hooks installed and a fresh command queue.
func New(reg *types.Registry, w world.World) *inspector.Inspector {
	in := inspector.New(reg, inspector.Context{
		World: world.NewView(w),
		Queue: &world.CommandQueue{},
	})
	in.ShortCircuit = assets.ShortCircuit
	in.ShortCircuitReadonly = assets.ShortCircuitReadonly
	in.ShortCircuitMany = assets.ShortCircuitMany
	return in
}

// UIForResource draws an editor for the resource of the given type.
// The resource is split off the context's world view for the duration,
// and marked changed when edited.
func UIForResource(in *inspector.Inspector, t reflect.Type, sf inspector.Surface, id inspector.ID) bool {
	view := in.Context.World
	if view == nil {
		inspector.ErrorNoWorld(sf, t)
		return false
	}
	if !view.AllowsAccessToResource(t) {
		inspector.ErrorWorld(sf, &world.NoAccessToResourceError{Type: t})
		return false
	}
	narrow, rest, done := view.SplitOffResource(t)
	defer done()

	rv, commit, err := narrow.ResourceReflect(t)
	if err != nil {
		inspector.ErrorWorld(sf, err)
		return false
	}
	changed := in.WithWorld(rest).UIForValue(rv, sf, id, nil)
	if changed {
		commit()
	}
	return changed
}

// UIForEntityComponents draws editors for every component of the given
// entity, each labeled with its short type name, plus a despawn button
// that queues removal through the context's command queue. Each
// component is split off the view while it is drawn.
func UIForEntityComponents(in *inspector.Inspector, e world.Entity, sf inspector.Surface, id inspector.ID) bool {
	view := in.Context.World
	if view == nil {
		sf.Error(fmt.Sprintf("cannot show entity %v: the inspector context has no world view", e))
		return false
	}
	changed := false
	for _, t := range view.Components(e) {
		cid := id.With(types.TypeName(t))
		sf.Label(shortName(in, t))
		ec := world.EntityComponent{Entity: e, Type: t}
		narrow, rest, done := view.SplitOffComponent(ec)
		rv, commit, err := narrow.ComponentReflect(ec)
		if err != nil {
			inspector.ErrorWorld(sf, err)
			done()
			continue
		}
		if in.WithWorld(rest).UIForValue(rv, sf, cid, nil) {
			commit()
			changed = true
		}
		done()
	}
	if in.Context.Queue != nil && sf.Button(id.With("despawn"), "Despawn") {
		in.Context.Queue.Despawn(e)
	}
	return changed
}

// UIForAssetHandle draws an editor for the asset the given handle
// refers to.
func UIForAssetHandle(in *inspector.Inspector, h assets.AnyHandle, sf inspector.Surface, id inspector.ID) bool {
	hv := reflect.New(reflect.TypeOf(h))
	hv.Elem().Set(reflect.ValueOf(h))
	return in.UIForValue(reflected.ValueOf(hv.Interface()), sf, id, nil)
}

// UIForWorld draws the whole world: every resource, then every entity
// with its components, separated per section. Queued commands (such as
// despawns clicked during the pass) are applied before returning.
func UIForWorld(in *inspector.Inspector, sf inspector.Surface, id inspector.ID) bool {
	view := in.Context.World
	if view == nil {
		sf.Error("cannot show world: the inspector context has no world view")
		return false
	}
	changed := false
	sf.Label("Resources")
	for _, t := range view.Resources() {
		sf.Label(shortName(in, t))
		if UIForResource(in, t, sf, id.With("resource").With(types.TypeName(t))) {
			changed = true
		}
	}
	sf.Separator()
	sf.Label("Entities")
	for _, e := range view.Entities() {
		sf.Label(fmt.Sprintf("Entity %d", e))
		if UIForEntityComponents(in, e, sf, id.With("entity").With(e)) {
			changed = true
		}
	}
	if in.Context.Queue != nil {
		in.Context.Queue.Apply(view.World())
	}
	return changed
}

// shortName returns the registered short name for t, falling back to
// the reflect name for unregistered types.
func shortName(in *inspector.Inspector, t reflect.Type) string {
	if in.Types != nil {
		if tp := in.Types.TypeFor(t); tp != nil {
			return tp.ShortName()
		}
	}
	return t.String()
}
