// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
)

// These are a set of consistently named functions for navigating pointer
// types and values within the reflect system.

// NonPointerType returns a non-pointer version of the given type.
func NonPointerType(typ reflect.Type) reflect.Type {
	if typ == nil {
		return typ
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// PointerValue returns a pointer to the given value if it is not already
// a pointer.
func PointerValue(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Pointer {
		return v
	}
	if v.CanAddr() {
		return v.Addr()
	}
	pv := reflect.New(v.Type())
	pv.Elem().Set(v)
	return pv
}

// OnePointerValue returns a value that is exactly one pointer away
// from a non-pointer value.
func OnePointerValue(v reflect.Value) reflect.Value {
	if v.Kind() != reflect.Pointer {
		if v.CanAddr() {
			return v.Addr()
		}
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		return pv
	}
	for v.Elem().Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// Underlying returns the actual underlying version of the given value,
// going through any pointers and interfaces.
func Underlying(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		v = v.Elem()
	}
	return v
}

// UnderlyingPointer returns a value that is exactly one pointer away from
// the actual underlying version of the given value, going through any
// pointers and interfaces. Note that if the underlying value is only
// reachable through an interface, the resulting pointer addresses a copy,
// since interface contents are not addressable.
func UnderlyingPointer(v reflect.Value) reflect.Value {
	npv := NonPointerValue(v)
	if !npv.IsValid() {
		return v
	}
	if npv.IsZero() {
		return OnePointerValue(npv)
	}
	for npv.Kind() == reflect.Interface || npv.Kind() == reflect.Pointer {
		npv = npv.Elem()
	}
	return OnePointerValue(npv)
}

// NonNilNew returns a new pointer to the given type, recursively allocating
// any pointer elements so that nothing in the resulting chain is nil.
func NonNilNew(typ reflect.Type) reflect.Value {
	pv := reflect.New(typ)
	v := pv
	for v.Elem().Kind() == reflect.Pointer {
		nv := reflect.New(v.Elem().Type().Elem())
		v.Elem().Set(nv)
		v = nv
	}
	return pv
}
