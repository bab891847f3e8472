// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/inspect/inspector"
	"cogentcore.org/inspect/reflected"
	"cogentcore.org/inspect/types"
	"cogentcore.org/inspect/world"
)

type mesh struct {
	Vertices int
	Name     string
}

type material struct {
	Mesh      Handle[mesh]
	Roughness float32
}

func TestStore(t *testing.T) {
	s := NewStore[mesh]()
	assert.Equal(t, 0, s.Len())

	h := s.Add(mesh{Vertices: 3})
	assert.False(t, h.IsZero())
	assert.Equal(t, 1, s.Len())

	m, ok := s.Get(h)
	require.True(t, ok)
	assert.Equal(t, 3, m.Vertices)

	m.Vertices = 4
	m2, _ := s.Get(h)
	assert.Equal(t, 4, m2.Vertices)

	_, ok = s.Get(Handle[mesh]{})
	assert.False(t, ok)

	assert.True(t, s.Remove(h))
	assert.False(t, s.Remove(h))
	_, ok = s.Get(h)
	assert.False(t, ok)
}

func TestZeroStoreAdd(t *testing.T) {
	var s Store[mesh]
	h := s.Add(mesh{Vertices: 1})
	_, ok := s.Get(h)
	assert.True(t, ok)
}

// newAssetInspector builds an inspector over a world holding a mesh
// store, returning the inspector and a handle to one stored mesh.
func newAssetInspector(t *testing.T) (*inspector.Inspector, *world.Storage, Handle[mesh]) {
	t.Helper()
	s := world.NewStorage()
	store := NewStore[mesh]()
	h := store.Add(mesh{Vertices: 3, Name: "tri"})
	s.SetResource(store)

	reg := types.NewRegistry()
	inspector.RegisterDefaults(reg)
	in := inspector.New(reg, inspector.Context{World: world.NewView(s)})
	in.ShortCircuit = ShortCircuit
	in.ShortCircuitReadonly = ShortCircuitReadonly
	in.ShortCircuitMany = ShortCircuitMany
	return in, s, h
}

func TestHandleShortCircuit(t *testing.T) {
	in, s, h := newAssetInspector(t)
	sf := inspector.NewTestSurface()
	root := inspector.NewID("test")

	// Rendering the handle renders the asset behind it.
	changed := in.UIForValue(reflected.ValueOf(&h), sf, root, nil)
	assert.False(t, changed)
	assert.True(t, sf.Contains("label:Vertices"))
	assert.True(t, sf.Contains("text:tri"))

	// Editing through the handle writes to the stored asset and
	// marks the store resource changed.
	s.Advance()
	sf = inspector.NewTestSurface()
	sf.QueueNumber(root.With("asset").With(0), 12)
	changed = in.UIForValue(reflected.ValueOf(&h), sf, root, nil)
	assert.True(t, changed)

	store, _ := world.ResourceFor[Store[mesh]](s)
	m, ok := store.Get(h)
	require.True(t, ok)
	assert.Equal(t, 12, m.Vertices)
	assert.Equal(t, s.Tick(), s.ResourceChangedAt(h.StoreType()))

	// The parent view is usable again after the hook returns.
	assert.True(t, in.Context.World.AllowsAccessToResource(h.StoreType()))
}

func TestHandleReadonly(t *testing.T) {
	in, _, h := newAssetInspector(t)
	sf := inspector.NewTestSurface()
	root := inspector.NewID("test")

	sf.QueueNumber(root.With("asset").With(0), 12)
	in.UIForValueReadonly(reflected.ValueOf(&h), sf, root, nil)
	assert.True(t, sf.Contains("label:3"))

	store, _ := world.ResourceFor[Store[mesh]](in.Context.World.World().(*world.Storage))
	m, _ := store.Get(h)
	assert.Equal(t, 3, m.Vertices)
}

func TestHandleInsideComponent(t *testing.T) {
	in, _, h := newAssetInspector(t)
	sf := inspector.NewTestSurface()
	root := inspector.NewID("test")

	mat := material{Mesh: h, Roughness: 0.5}
	changed := in.UIForValue(reflected.ValueOf(&mat), sf, root, nil)
	assert.False(t, changed)
	assert.True(t, sf.Contains("label:Mesh"))
	assert.True(t, sf.Contains("label:Vertices"))
	assert.True(t, sf.Contains("label:Roughness"))
}

func TestZeroHandle(t *testing.T) {
	in, _, _ := newAssetInspector(t)
	sf := inspector.NewTestSurface()

	var h Handle[mesh]
	changed := in.UIForValue(reflected.ValueOf(&h), sf, inspector.NewID("test"), nil)
	assert.False(t, changed)
	assert.True(t, sf.Contains("(no asset)"))
}

func TestDeadHandle(t *testing.T) {
	in, s, h := newAssetInspector(t)
	store, _ := world.ResourceFor[Store[mesh]](s)
	store.Remove(h)

	sf := inspector.NewTestSurface()
	changed := in.UIForValue(reflected.ValueOf(&h), sf, inspector.NewID("test"), nil)
	assert.False(t, changed)
	require.Len(t, sf.Errors(), 1)
	assert.Contains(t, sf.Errors()[0], "refers to no asset")
}

func TestHandleWithoutWorld(t *testing.T) {
	reg := types.NewRegistry()
	inspector.RegisterDefaults(reg)
	in := inspector.New(reg, inspector.Context{})
	in.ShortCircuit = ShortCircuit

	h := Handle[mesh]{ID: [16]byte{1}}
	sf := inspector.NewTestSurface()
	changed := in.UIForValue(reflected.ValueOf(&h), sf, inspector.NewID("test"), nil)
	assert.False(t, changed)
	require.Len(t, sf.Errors(), 1)
	assert.Contains(t, sf.Errors()[0], "no world view")
}

func TestHandleMissingStore(t *testing.T) {
	s := world.NewStorage()
	reg := types.NewRegistry()
	inspector.RegisterDefaults(reg)
	in := inspector.New(reg, inspector.Context{World: world.NewView(s)})
	in.ShortCircuit = ShortCircuit

	h := Handle[mesh]{ID: [16]byte{1}}
	sf := inspector.NewTestSurface()
	assert.False(t, in.UIForValue(reflected.ValueOf(&h), sf, inspector.NewID("test"), nil))
	require.Len(t, sf.Errors(), 1)
	assert.Contains(t, sf.Errors()[0], "does not exist")
}

func TestHandleMany(t *testing.T) {
	in, s, h := newAssetInspector(t)
	root := inspector.NewID("test")
	h2 := h

	sf := inspector.NewTestSurface()
	sf.QueueNumber(root.With("asset").With(0), 9)
	values := []reflected.Value{reflected.ValueOf(&h), reflected.ValueOf(&h2)}
	changed := in.UIForMany(reflect.TypeFor[Handle[mesh]](), sf, root, nil, values)
	assert.True(t, changed)

	store, _ := world.ResourceFor[Store[mesh]](s)
	m, _ := store.Get(h)
	assert.Equal(t, 9, m.Vertices)
}

func TestHandleManyDifferentAssets(t *testing.T) {
	in, s, h := newAssetInspector(t)
	store, _ := world.ResourceFor[Store[mesh]](s)
	other := store.Add(mesh{Vertices: 8})

	sf := inspector.NewTestSurface()
	values := []reflected.Value{reflected.ValueOf(&h), reflected.ValueOf(&other)}
	changed := in.UIForMany(reflect.TypeFor[Handle[mesh]](), sf, inspector.NewID("test"), nil, values)
	assert.False(t, changed)
	assert.True(t, sf.Contains("different assets"))
}
