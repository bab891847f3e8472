// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspect/reflected"
	"cogentcore.org/inspect/types"
)

// allowed is an access set over T: either an explicit allow list,
// or everything except a forbid list.
type allowed[T comparable] struct {
	// allow is the explicit allow set; nil means everything
	// except forbid.
	allow  map[T]struct{}
	forbid map[T]struct{}
}

func allowAll[T comparable]() allowed[T] {
	return allowed[T]{}
}

func allowNone[T comparable]() allowed[T] {
	return allowed[T]{allow: map[T]struct{}{}}
}

func allowJust[T comparable](x T) allowed[T] {
	return allowed[T]{allow: map[T]struct{}{x: {}}}
}

func (a allowed[T]) allows(x T) bool {
	if a.allow != nil {
		_, ok := a.allow[x]
		return ok
	}
	_, forbidden := a.forbid[x]
	return !forbidden
}

// without returns a copy of a with x removed.
func (a allowed[T]) without(x T) allowed[T] {
	if a.allow != nil {
		n := make(map[T]struct{}, len(a.allow))
		for k := range a.allow {
			if k != x {
				n[k] = struct{}{}
			}
		}
		return allowed[T]{allow: n}
	}
	n := make(map[T]struct{}, len(a.forbid)+1)
	for k := range a.forbid {
		n[k] = struct{}{}
	}
	n[x] = struct{}{}
	return allowed[T]{forbid: n}
}

// A View grants access to a subset of a [World]'s resources and
// components. Splitting a view produces two child views with disjoint
// access, so both can be mutated through without aliasing; while a
// split is live, the parent is frozen and any use of it panics.
type View struct {
	world      World
	resources  allowed[reflect.Type]
	components allowed[EntityComponent]
	frozen     bool
}

// NewView returns a [View] with access to everything in w.
func NewView(w World) *View {
	return &View{
		world:      w,
		resources:  allowAll[reflect.Type](),
		components: allowAll[EntityComponent](),
	}
}

// ResourcesComponents splits w into two disjoint views: one with
// access to all resources and no components, one with the opposite.
func ResourcesComponents(w World) (resources, components *View) {
	resources = &View{
		world:      w,
		resources:  allowAll[reflect.Type](),
		components: allowNone[EntityComponent](),
	}
	components = &View{
		world:      w,
		resources:  allowNone[reflect.Type](),
		components: allowAll[EntityComponent](),
	}
	return
}

func (v *View) check() {
	if v.frozen {
		panic("world: view used while split off, or after its split ended")
	}
}

// World returns the underlying [World].
func (v *View) World() World {
	v.check()
	return v.world
}

// AllowsAccessToResource reports whether the view can access the
// resource of the given type.
func (v *View) AllowsAccessToResource(t reflect.Type) bool {
	v.check()
	return v.resources.allows(t)
}

// AllowsAccessToComponent reports whether the view can access the
// given component of the given entity.
func (v *View) AllowsAccessToComponent(ec EntityComponent) bool {
	v.check()
	return v.components.allows(ec)
}

// SplitOffResource splits the view into a view with access to just the
// resource of the given type and a view with access to everything
// else. The receiver is frozen until done is called; done freezes both
// children permanently and re-arms the receiver. It panics if the view
// has no access to the resource.
func (v *View) SplitOffResource(t reflect.Type) (narrow, rest *View, done func()) {
	v.check()
	if !v.resources.allows(t) {
		panic(fmt.Sprintf("world: splitting off resource %s without access to it", types.TypeName(t)))
	}
	narrow = &View{
		world:      v.world,
		resources:  allowJust(t),
		components: allowNone[EntityComponent](),
	}
	rest = &View{
		world:      v.world,
		resources:  v.resources.without(t),
		components: v.components,
	}
	v.frozen = true
	done = func() {
		narrow.frozen = true
		rest.frozen = true
		v.frozen = false
	}
	return
}

// SplitOffComponent is [View.SplitOffResource] for a single component
// of a single entity.
func (v *View) SplitOffComponent(ec EntityComponent) (narrow, rest *View, done func()) {
	v.check()
	if !v.components.allows(ec) {
		panic(fmt.Sprintf("world: splitting off component %s of entity %v without access to it", types.TypeName(ec.Type), ec.Entity))
	}
	narrow = &View{
		world:      v.world,
		resources:  allowNone[reflect.Type](),
		components: allowJust(ec),
	}
	rest = &View{
		world:      v.world,
		resources:  v.resources,
		components: v.components.without(ec),
	}
	v.frozen = true
	done = func() {
		narrow.frozen = true
		rest.frozen = true
		v.frozen = false
	}
	return
}

// resourcePointer returns a pointer to the resource of the given type,
// after checking access and existence.
func (v *View) resourcePointer(t reflect.Type) (any, error) {
	v.check()
	if !v.resources.allows(t) {
		return nil, &NoAccessToResourceError{Type: t}
	}
	p, ok := v.world.Resource(t)
	if !ok {
		return nil, &ResourceDoesNotExistError{Type: t}
	}
	return p, nil
}

// componentPointer returns a pointer to the given component, after
// checking access and existence.
func (v *View) componentPointer(ec EntityComponent) (any, error) {
	v.check()
	if !v.components.allows(ec) {
		return nil, &NoAccessToComponentError{EntityComponent: ec}
	}
	p, ok := v.world.Component(ec.Entity, ec.Type)
	if !ok {
		return nil, &ComponentDoesNotExistError{EntityComponent: ec}
	}
	return p, nil
}

// ResourceAny returns a pointer to the resource of the given type.
func (v *View) ResourceAny(t reflect.Type) (any, error) {
	return v.resourcePointer(t)
}

// ResourceReflect returns the resource of the given type viewed
// through the shape model, along with a commit func that records the
// mutation in the world's change ticks.
func (v *View) ResourceReflect(t reflect.Type) (reflected.Value, func(), error) {
	p, err := v.resourcePointer(t)
	if err != nil {
		return nil, nil, err
	}
	commit := func() { v.world.MarkResourceChanged(t) }
	return reflected.ValueOf(p), commit, nil
}

// ComponentReflect is [View.ResourceReflect] for one component of one
// entity.
func (v *View) ComponentReflect(ec EntityComponent) (reflected.Value, func(), error) {
	p, err := v.componentPointer(ec)
	if err != nil {
		return nil, nil, err
	}
	commit := func() { v.world.MarkComponentChanged(ec) }
	return reflected.ValueOf(p), commit, nil
}

// MarkResourceChanged records a mutation of the resource of the given
// type, after checking access.
func (v *View) MarkResourceChanged(t reflect.Type) error {
	v.check()
	if !v.resources.allows(t) {
		return &NoAccessToResourceError{Type: t}
	}
	v.world.MarkResourceChanged(t)
	return nil
}

// Entities returns the world's entities.
func (v *View) Entities() []Entity {
	v.check()
	return v.world.Entities()
}

// Components returns the component types of the given entity that this
// view can access.
func (v *View) Components(e Entity) []reflect.Type {
	v.check()
	var ts []reflect.Type
	for _, t := range v.world.Components(e) {
		if v.components.allows(EntityComponent{e, t}) {
			ts = append(ts, t)
		}
	}
	return ts
}

// Resources returns the world's resource types that this view can
// access.
func (v *View) Resources() []reflect.Type {
	v.check()
	var ts []reflect.Type
	for _, t := range v.world.Resources() {
		if v.resources.allows(t) {
			ts = append(ts, t)
		}
	}
	return ts
}

// ResourceMut returns a pointer to the resource of type R. The caller
// is responsible for calling [View.MarkResourceChanged] after mutating
// it.
func ResourceMut[R any](v *View) (*R, error) {
	p, err := v.resourcePointer(reflect.TypeFor[R]())
	if err != nil {
		return nil, err
	}
	return p.(*R), nil
}

// SplitResource returns a pointer to the resource of type R and a view
// with access to everything else. Unlike [View.SplitOffResource] the
// receiver is consumed: it stays frozen permanently.
func SplitResource[R any](v *View) (*R, *View, error) {
	t := reflect.TypeFor[R]()
	p, err := v.resourcePointer(t)
	if err != nil {
		return nil, nil, err
	}
	rest := &View{
		world:      v.world,
		resources:  v.resources.without(t),
		components: v.components,
	}
	v.frozen = true
	return p.(*R), rest, nil
}

// TwoResources returns pointers to two distinct resources at once.
// It returns [SameResourceError] if R1 and R2 are the same type.
func TwoResources[R1, R2 any](v *View) (*R1, *R2, error) {
	t1 := reflect.TypeFor[R1]()
	t2 := reflect.TypeFor[R2]()
	if t1 == t2 {
		return nil, nil, &SameResourceError{Type: t1}
	}
	p1, err := v.resourcePointer(t1)
	if err != nil {
		return nil, nil, err
	}
	p2, err := v.resourcePointer(t2)
	if err != nil {
		return nil, nil, err
	}
	return p1.(*R1), p2.(*R2), nil
}
