// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world models the game state the inspector operates on: a set
// of singleton resources and a set of entities carrying components,
// with change-tick bookkeeping. A [View] grants scoped access to a
// [World] and can be split into disjoint sub-views so that independent
// parts of the inspector can mutate independent parts of the world.
package world

import (
	"reflect"
	"sort"

	"cogentcore.org/inspect/base/reflectx"
	"cogentcore.org/inspect/types"
)

// Entity identifies one entity in a [World].
type Entity uint64

// EntityComponent identifies one component of one entity.
type EntityComponent struct {
	Entity Entity
	Type   reflect.Type
}

// World is the game-state surface the inspector reads and writes.
// All pointers returned by Resource and Component remain valid until
// the owning resource, component, or entity is removed. Listing
// methods return deterministically sorted results.
type World interface {
	// Resources returns the types of all resources, sorted by
	// fully qualified type name.
	Resources() []reflect.Type

	// Resource returns a pointer to the resource of the given type,
	// or false if there is none.
	Resource(t reflect.Type) (any, bool)

	// Entities returns all live entities in ascending order.
	Entities() []Entity

	// Components returns the component types of the given entity,
	// sorted by fully qualified type name.
	Components(e Entity) []reflect.Type

	// Component returns a pointer to the given component of the
	// given entity, or false if there is none.
	Component(e Entity, t reflect.Type) (any, bool)

	// Despawn removes the entity and all its components,
	// reporting whether it existed.
	Despawn(e Entity) bool

	// MarkResourceChanged records that the resource of the given
	// type was mutated at the current tick.
	MarkResourceChanged(t reflect.Type)

	// MarkComponentChanged records that the given component was
	// mutated at the current tick.
	MarkComponentChanged(ec EntityComponent)
}

// Storage is the in-memory [World] implementation.
type Storage struct {
	resources      map[reflect.Type]reflect.Value
	entities       map[Entity]map[reflect.Type]reflect.Value
	next           Entity
	tick           uint64
	resourceTicks  map[reflect.Type]uint64
	componentTicks map[EntityComponent]uint64
}

// NewStorage returns an empty [Storage] at tick 1.
func NewStorage() *Storage {
	return &Storage{
		resources:      map[reflect.Type]reflect.Value{},
		entities:       map[Entity]map[reflect.Type]reflect.Value{},
		tick:           1,
		resourceTicks:  map[reflect.Type]uint64{},
		componentTicks: map[EntityComponent]uint64{},
	}
}

// Tick returns the current change tick.
func (s *Storage) Tick() uint64 { return s.tick }

// Advance increments and returns the change tick. Call it once per
// frame so change detection can distinguish frames.
func (s *Storage) Advance() uint64 {
	s.tick++
	return s.tick
}

// SetResource inserts or replaces the resource of v's type.
// If v is a pointer, the pointee type is used; a value is stored
// behind a fresh pointer so that edits write through.
func (s *Storage) SetResource(v any) {
	pv := reflectx.PointerValue(reflect.ValueOf(v))
	t := pv.Type().Elem()
	s.resources[t] = pv
	s.resourceTicks[t] = s.tick
}

// RemoveResource removes the resource of the given type,
// reporting whether it existed.
func (s *Storage) RemoveResource(t reflect.Type) bool {
	_, ok := s.resources[t]
	delete(s.resources, t)
	delete(s.resourceTicks, t)
	return ok
}

func (s *Storage) Resources() []reflect.Type {
	ts := make([]reflect.Type, 0, len(s.resources))
	for t := range s.resources {
		ts = append(ts, t)
	}
	sortTypes(ts)
	return ts
}

func (s *Storage) Resource(t reflect.Type) (any, bool) {
	pv, ok := s.resources[t]
	if !ok {
		return nil, false
	}
	return pv.Interface(), true
}

// Spawn creates a new entity carrying the given components and
// returns it. Component arguments may be values or pointers.
func (s *Storage) Spawn(components ...any) Entity {
	s.next++
	e := s.next
	s.entities[e] = map[reflect.Type]reflect.Value{}
	for _, c := range components {
		s.SetComponent(e, c)
	}
	return e
}

// SetComponent inserts or replaces a component on the given entity.
// It is a no-op if the entity does not exist.
func (s *Storage) SetComponent(e Entity, v any) {
	cs, ok := s.entities[e]
	if !ok {
		return
	}
	pv := reflectx.PointerValue(reflect.ValueOf(v))
	t := pv.Type().Elem()
	cs[t] = pv
	s.componentTicks[EntityComponent{e, t}] = s.tick
}

// RemoveComponent removes the given component from the given entity,
// reporting whether it existed.
func (s *Storage) RemoveComponent(e Entity, t reflect.Type) bool {
	cs, ok := s.entities[e]
	if !ok {
		return false
	}
	_, had := cs[t]
	delete(cs, t)
	delete(s.componentTicks, EntityComponent{e, t})
	return had
}

func (s *Storage) Entities() []Entity {
	es := make([]Entity, 0, len(s.entities))
	for e := range s.entities {
		es = append(es, e)
	}
	sort.Slice(es, func(i, j int) bool { return es[i] < es[j] })
	return es
}

func (s *Storage) Components(e Entity) []reflect.Type {
	cs, ok := s.entities[e]
	if !ok {
		return nil
	}
	ts := make([]reflect.Type, 0, len(cs))
	for t := range cs {
		ts = append(ts, t)
	}
	sortTypes(ts)
	return ts
}

func (s *Storage) Component(e Entity, t reflect.Type) (any, bool) {
	cs, ok := s.entities[e]
	if !ok {
		return nil, false
	}
	pv, ok := cs[t]
	if !ok {
		return nil, false
	}
	return pv.Interface(), true
}

// Contains reports whether the entity exists.
func (s *Storage) Contains(e Entity) bool {
	_, ok := s.entities[e]
	return ok
}

func (s *Storage) Despawn(e Entity) bool {
	cs, ok := s.entities[e]
	if !ok {
		return false
	}
	for t := range cs {
		delete(s.componentTicks, EntityComponent{e, t})
	}
	delete(s.entities, e)
	return true
}

func (s *Storage) MarkResourceChanged(t reflect.Type) {
	if _, ok := s.resources[t]; ok {
		s.resourceTicks[t] = s.tick
	}
}

func (s *Storage) MarkComponentChanged(ec EntityComponent) {
	if _, ok := s.componentTicks[ec]; ok {
		s.componentTicks[ec] = s.tick
	}
}

// ResourceChangedAt returns the tick the resource was last mutated at,
// or zero if it is not present.
func (s *Storage) ResourceChangedAt(t reflect.Type) uint64 {
	return s.resourceTicks[t]
}

// ComponentChangedAt returns the tick the component was last mutated
// at, or zero if it is not present.
func (s *Storage) ComponentChangedAt(ec EntityComponent) uint64 {
	return s.componentTicks[ec]
}

// SetResourceFor inserts or replaces the resource of type R.
func SetResourceFor[R any](s *Storage, r R) {
	s.SetResource(&r)
}

// ResourceFor returns a pointer to the resource of type R,
// or false if there is none.
func ResourceFor[R any](s *Storage) (*R, bool) {
	v, ok := s.Resource(reflect.TypeFor[R]())
	if !ok {
		return nil, false
	}
	return v.(*R), true
}

// ComponentFor returns a pointer to the component of type C on the
// given entity, or false if there is none.
func ComponentFor[C any](s *Storage, e Entity) (*C, bool) {
	v, ok := s.Component(e, reflect.TypeFor[C]())
	if !ok {
		return nil, false
	}
	return v.(*C), true
}

func sortTypes(ts []reflect.Type) {
	sort.Slice(ts, func(i, j int) bool {
		return types.TypeName(ts[i]) < types.TypeName(ts[j])
	})
}
