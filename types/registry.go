// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"log/slog"
	"reflect"
	"sync/atomic"

	"cogentcore.org/inspect/base/reflectx"
)

// Registry records all registered types and their capabilities.
// The key is the long type name: package_url.Type, e.g.,
// cogentcore.org/inspect/assets.Handle.
type Registry struct {
	types     map[string]*Type
	byReflect map[reflect.Type]*Type
	idCounter uint64
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		types:     map[string]*Type{},
		byReflect: map[reflect.Type]*Type{},
	}
}

// Add adds the given [Type] to the registry and returns it. This sets the
// ID, and derives Name and IDName from the Instance if they are not set.
// If a type with the same name is already registered, the existing
// registration is kept and returned.
func (r *Registry) Add(tp *Type) *Type {
	if tp.Name == "" && tp.Instance != nil {
		tp.Name = TypeNameValue(tp.Instance)
	}
	if tp.IDName == "" {
		tp.IDName = idName(tp.ShortName())
	}
	if et, has := r.types[tp.Name]; has {
		slog.Debug("types.Registry.Add: type already registered", "Type.Name", tp.Name)
		return et
	}
	tp.ID = atomic.AddUint64(&r.idCounter, 1)
	r.types[tp.Name] = tp
	if rt := tp.ReflectType(); rt != nil {
		r.byReflect[rt] = tp
	}
	return tp
}

// TypeByName returns the registered [Type] with the given long name
// (package_url.Type), or nil if it is not registered.
func (r *Registry) TypeByName(name string) *Type {
	return r.types[name]
}

// TypeFor returns the registered [Type] for the given [reflect.Type],
// or nil if it is not registered.
func (r *Registry) TypeFor(rt reflect.Type) *Type {
	if rt == nil {
		return nil
	}
	if tp, has := r.byReflect[rt]; has {
		return tp
	}
	return r.types[TypeName(rt)]
}

// TypeForValue returns the registered [Type] for the non-pointer type of
// the given value, or nil if it is not registered.
func (r *Registry) TypeForValue(v any) *Type {
	return r.TypeFor(reflectx.NonPointerType(reflect.TypeOf(v)))
}

// Register adds a registration for the type T to the registry, with a
// default-constructor returning the zero value, and returns it for
// further configuration of capabilities.
func Register[T any](r *Registry) *Type {
	return r.Add(&Type{
		Instance: new(T),
		Default: func() any {
			var v T
			return v
		},
	})
}
