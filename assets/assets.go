// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets provides handle-addressed asset storage and the
// inspector hooks that follow a handle to the asset it names. A
// [Store] lives in the world as a resource; a [Handle] held by a
// component or resource refers into it by id. The short-circuit hooks
// recognize handles during traversal, split the store's resource off
// the world view, and recurse into the asset itself.
package assets

import (
	"reflect"

	"github.com/google/uuid"
)

// Handle refers to an asset of type T held in a [Store]. The zero
// Handle refers to nothing.
type Handle[T any] struct {
	ID uuid.UUID `inspect:"-"`
}

// HandleID returns the asset id.
func (h Handle[T]) HandleID() uuid.UUID { return h.ID }

// StoreType returns the reflect type of the [Store] resource this
// handle refers into.
func (h Handle[T]) StoreType() reflect.Type { return reflect.TypeFor[Store[T]]() }

// IsZero reports whether the handle refers to nothing.
func (h Handle[T]) IsZero() bool { return h.ID == uuid.Nil }

// AnyHandle is the type-erased interface of [Handle], used by the
// inspector hooks to recognize handles of any asset type.
type AnyHandle interface {
	HandleID() uuid.UUID
	StoreType() reflect.Type
}

// Store holds assets of type T by id. Register one per asset type as
// a world resource.
type Store[T any] struct {
	byID map[uuid.UUID]*T
}

// NewStore returns an empty [Store].
func NewStore[T any]() *Store[T] {
	return &Store[T]{byID: map[uuid.UUID]*T{}}
}

// Add stores the asset and returns a new [Handle] to it.
func (s *Store[T]) Add(v T) Handle[T] {
	if s.byID == nil {
		s.byID = map[uuid.UUID]*T{}
	}
	id := uuid.New()
	s.byID[id] = &v
	return Handle[T]{ID: id}
}

// Get returns a pointer to the asset the handle refers to,
// or false if there is none.
func (s *Store[T]) Get(h Handle[T]) (*T, bool) {
	v, ok := s.byID[h.ID]
	return v, ok
}

// Remove drops the asset the handle refers to, reporting whether it
// existed. Handles to it become dead.
func (s *Store[T]) Remove(h Handle[T]) bool {
	_, ok := s.byID[h.ID]
	delete(s.byID, h.ID)
	return ok
}

// Len returns the number of stored assets.
func (s *Store[T]) Len() int { return len(s.byID) }

// GetAny implements [AnyStore].
func (s *Store[T]) GetAny(id uuid.UUID) (any, bool) {
	v, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return v, true
}

// AnyStore is the type-erased interface of [Store], used by the
// inspector hooks to resolve a handle without knowing the asset type.
type AnyStore interface {
	// GetAny returns a pointer to the asset with the given id,
	// or false if there is none.
	GetAny(id uuid.UUID) (any, bool)
}
