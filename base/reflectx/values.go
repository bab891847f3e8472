// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
)

// AnyIsNil checks if the given value is nil, robustly for any type.
func AnyIsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// SetRobust robustly sets the destination (which must be a pointer)
// from the given source value, converting between compatible kinds
// where a direct assignment is not possible.
func SetRobust(to, from any) error {
	if AnyIsNil(to) {
		return fmt.Errorf("reflectx.SetRobust: destination is nil")
	}
	dst := UnderlyingPointer(reflect.ValueOf(to)).Elem()
	if !dst.CanSet() {
		return fmt.Errorf("reflectx.SetRobust: destination %v is not settable", dst)
	}
	src := Underlying(reflect.ValueOf(from))
	if !src.IsValid() {
		dst.SetZero()
		return nil
	}
	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}
	if src.Type().ConvertibleTo(dst.Type()) {
		dst.Set(src.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("reflectx.SetRobust: cannot set %v from %v", dst.Type(), src.Type())
}
