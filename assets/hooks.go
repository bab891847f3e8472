// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"cogentcore.org/inspect/base/errors"
	"cogentcore.org/inspect/inspector"
	"cogentcore.org/inspect/reflected"
	"cogentcore.org/inspect/types"
	"cogentcore.org/inspect/world"
)

// ShortCircuit is the [inspector.ShortCircuitFunc] that recognizes
// asset handles. It splits the handle's store resource off the world
// view and recurses into the asset, so the rest of the world stays
// editable around it. Dead handles and missing context are drawn as
// diagnostics in place.
func ShortCircuit(in *inspector.Inspector, v reflected.Value, sf inspector.Surface, id inspector.ID, opts any) (changed, handled bool) {
	h, ok := v.Interface().(AnyHandle)
	if !ok {
		return false, false
	}
	changed = handleUI(in, h, sf, id, opts, false)
	return changed, true
}

// ShortCircuitReadonly is the read-only counterpart of [ShortCircuit].
func ShortCircuitReadonly(in *inspector.Inspector, v reflected.Value, sf inspector.Surface, id inspector.ID, opts any) (handled bool) {
	h, ok := v.Interface().(AnyHandle)
	if !ok {
		return false
	}
	handleUI(in, h, sf, id, opts, true)
	return true
}

// ShortCircuitMany is the multi-edit counterpart of [ShortCircuit].
// Handles naming the same asset are edited as one; handles naming
// different assets cannot be merged.
func ShortCircuitMany(in *inspector.Inspector, t reflect.Type, sf inspector.Surface, id inspector.ID, opts any, values []reflected.Value) (changed, handled bool) {
	first, ok := values[0].Interface().(AnyHandle)
	if !ok {
		return false, false
	}
	for _, v := range values[1:] {
		h, ok := v.Interface().(AnyHandle)
		if !ok || h.HandleID() != first.HandleID() {
			sf.Label("cannot multi-edit: handles refer to different assets")
			return false, true
		}
	}
	changed = handleUI(in, first, sf, id, opts, false)
	return changed, true
}

// handleUI resolves the handle through the context's world view and
// draws the asset it refers to.
func handleUI(in *inspector.Inspector, h AnyHandle, sf inspector.Surface, id inspector.ID, opts any, readonly bool) bool {
	if h.HandleID() == uuid.Nil {
		sf.Label("(no asset)")
		return false
	}
	view := in.Context.World
	if view == nil {
		inspector.ErrorNoWorld(sf, h.StoreType())
		return false
	}
	storeT := h.StoreType()
	if !view.AllowsAccessToResource(storeT) {
		inspector.ErrorWorld(sf, &world.NoAccessToResourceError{Type: storeT})
		return false
	}
	narrow, rest, done := view.SplitOffResource(storeT)
	defer done()

	sp, err := narrow.ResourceAny(storeT)
	if err != nil {
		inspector.ErrorWorld(sf, err)
		return false
	}
	store, ok := sp.(AnyStore)
	if !ok {
		sf.Error(fmt.Sprintf("%s is not an asset store", types.TypeName(storeT)))
		return false
	}
	asset, ok := store.GetAny(h.HandleID())
	if !ok {
		sf.Error(fmt.Sprintf("handle %s refers to no asset in %s; it may have been removed", h.HandleID(), types.TypeName(storeT)))
		return false
	}

	sub := in.WithWorld(rest)
	if readonly {
		sub.UIForValueReadonly(reflected.ValueOf(asset), sf, id.With("asset"), opts)
		return false
	}
	changed := sub.UIForValue(reflected.ValueOf(asset), sf, id.With("asset"), opts)
	if changed {
		errors.Log(narrow.MarkResourceChanged(storeT))
	}
	return changed
}
