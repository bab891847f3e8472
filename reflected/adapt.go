// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflected

import (
	"fmt"
	"reflect"
	"sort"

	"cogentcore.org/inspect/base/reflectx"
)

// Enumer is implemented by Go types that model a tagged union.
// [ValueOf] presents an Enumer as an [Enum] instead of a [Struct].
// The variant declarations (names and field types) are registered
// separately in the type registry.
type Enumer interface {
	// VariantIndex returns the index of the currently active variant.
	VariantIndex() int

	// VariantFields returns pointers to the active variant's payload
	// fields, in declaration order, so that edits through them are
	// visible in the receiver.
	VariantFields() []any

	// SetVariant switches to the variant at the given index,
	// initializing its payload from the given field values.
	SetVariant(index int, fields []any) error
}

var enumerType = reflect.TypeFor[Enumer]()

// ValueOf adapts the value behind the given pointer to the shape model.
// It returns nil if v is nil or not a pointer to anything addressable.
// Edits made through the returned [Value] write through to *v.
func ValueOf(v any) Value {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil
	}
	pv := reflectx.UnderlyingPointer(rv)
	if !pv.IsValid() || pv.Kind() != reflect.Pointer || pv.IsNil() {
		return nil
	}
	if pv.Type().Implements(enumerType) {
		return &enumValue{enumer: pv.Interface().(Enumer), typ: pv.Type().Elem()}
	}
	return wrap(pv.Elem())
}

// wrap dispatches an addressable reflect.Value to its shape wrapper.
func wrap(rv reflect.Value) Value {
	if rv.CanAddr() && rv.Addr().Type().Implements(enumerType) {
		return &enumValue{enumer: rv.Addr().Interface().(Enumer), typ: rv.Type()}
	}
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			if !rv.CanSet() {
				return leafValue{rv}
			}
			rv.Set(reflectx.NonNilNew(rv.Type().Elem()))
		}
		return wrap(rv.Elem())
	case reflect.Struct:
		return newStructValue(rv)
	case reflect.Slice:
		return listValue{rv}
	case reflect.Array:
		return arrayValue{rv}
	case reflect.Map:
		return mapValue{rv}
	default:
		return leafValue{rv}
	}
}

// convertTo coerces v to a reflect.Value of type t.
func convertTo(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflectx.NonPointerValue(reflect.ValueOf(v))
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if rv.Type().ConvertibleTo(t) {
		return rv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("reflected: cannot convert %s to %s", rv.Type(), t)
}

type leafValue struct {
	rv reflect.Value
}

func (l leafValue) Kind() Kind         { return LeafKind }
func (l leafValue) Type() reflect.Type { return l.rv.Type() }
func (l leafValue) Interface() any     { return l.rv.Interface() }

func (l leafValue) Set(v any) error {
	if !l.rv.CanSet() {
		return fmt.Errorf("reflected: %s value is not settable", l.rv.Type())
	}
	return reflectx.SetRobust(l.rv.Addr().Interface(), v)
}

type structValue struct {
	rv reflect.Value

	// fields are the indices of the visible fields: exported and
	// not tagged inspect:"-".
	fields []int
}

func newStructValue(rv reflect.Value) *structValue {
	sv := &structValue{rv: rv}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("inspect") == "-" {
			continue
		}
		sv.fields = append(sv.fields, i)
	}
	return sv
}

func (s *structValue) Kind() Kind         { return StructKind }
func (s *structValue) Type() reflect.Type { return s.rv.Type() }
func (s *structValue) Interface() any     { return s.rv.Interface() }
func (s *structValue) NumFields() int     { return len(s.fields) }

func (s *structValue) FieldName(i int) string {
	return s.rv.Type().Field(s.fields[i]).Name
}

func (s *structValue) Field(i int) Value {
	return wrap(s.rv.Field(s.fields[i]))
}

type listValue struct {
	rv reflect.Value
}

func (l listValue) Kind() Kind         { return ListKind }
func (l listValue) Type() reflect.Type { return l.rv.Type() }
func (l listValue) Interface() any     { return l.rv.Interface() }
func (l listValue) Len() int           { return l.rv.Len() }
func (l listValue) Elem(i int) Value   { return wrap(l.rv.Index(i)) }

func (l listValue) Insert(i int, v any) error {
	if i < 0 || i > l.rv.Len() {
		return fmt.Errorf("reflected: insert index %d out of range [0, %d]", i, l.rv.Len())
	}
	if !l.rv.CanSet() {
		return fmt.Errorf("reflected: %s list is not settable", l.rv.Type())
	}
	ev, err := convertTo(v, l.rv.Type().Elem())
	if err != nil {
		return err
	}
	n := reflect.MakeSlice(l.rv.Type(), 0, l.rv.Len()+1)
	n = reflect.AppendSlice(n, l.rv.Slice(0, i))
	n = reflect.Append(n, ev)
	n = reflect.AppendSlice(n, l.rv.Slice(i, l.rv.Len()))
	l.rv.Set(n)
	return nil
}

func (l listValue) Remove(i int) error {
	if i < 0 || i >= l.rv.Len() {
		return fmt.Errorf("reflected: remove index %d out of range [0, %d)", i, l.rv.Len())
	}
	if !l.rv.CanSet() {
		return fmt.Errorf("reflected: %s list is not settable", l.rv.Type())
	}
	n := reflect.MakeSlice(l.rv.Type(), 0, l.rv.Len()-1)
	n = reflect.AppendSlice(n, l.rv.Slice(0, i))
	n = reflect.AppendSlice(n, l.rv.Slice(i+1, l.rv.Len()))
	l.rv.Set(n)
	return nil
}

func (l listValue) Move(i, j int) error {
	if i < 0 || i >= l.rv.Len() || j < 0 || j >= l.rv.Len() {
		return fmt.Errorf("reflected: move indices %d, %d out of range [0, %d)", i, j, l.rv.Len())
	}
	if i == j {
		return nil
	}
	tmp := reflect.New(l.rv.Type().Elem()).Elem()
	tmp.Set(l.rv.Index(i))
	if i < j {
		for k := i; k < j; k++ {
			l.rv.Index(k).Set(l.rv.Index(k + 1))
		}
	} else {
		for k := i; k > j; k-- {
			l.rv.Index(k).Set(l.rv.Index(k - 1))
		}
	}
	l.rv.Index(j).Set(tmp)
	return nil
}

type arrayValue struct {
	rv reflect.Value
}

func (a arrayValue) Kind() Kind         { return ArrayKind }
func (a arrayValue) Type() reflect.Type { return a.rv.Type() }
func (a arrayValue) Interface() any     { return a.rv.Interface() }
func (a arrayValue) Len() int           { return a.rv.Len() }
func (a arrayValue) Elem(i int) Value   { return wrap(a.rv.Index(i)) }

type mapValue struct {
	rv reflect.Value
}

func (m mapValue) Kind() Kind         { return MapKind }
func (m mapValue) Type() reflect.Type { return m.rv.Type() }
func (m mapValue) Interface() any     { return m.rv.Interface() }
func (m mapValue) Len() int           { return m.rv.Len() }

func (m mapValue) Entries() []MapEntry {
	entries := make([]MapEntry, 0, m.rv.Len())
	iter := m.rv.MapRange()
	for iter.Next() {
		// Map values are not addressable; entries carry an
		// addressable copy, so they render but do not write back.
		c := reflect.New(iter.Value().Type()).Elem()
		c.Set(iter.Value())
		entries = append(entries, MapEntry{
			Key:   fmt.Sprint(iter.Key().Interface()),
			Value: wrap(c),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

type enumValue struct {
	enumer Enumer
	typ    reflect.Type
}

func (e *enumValue) Kind() Kind         { return EnumKind }
func (e *enumValue) Type() reflect.Type { return e.typ }

func (e *enumValue) Interface() any {
	return reflectx.NonPointerValue(reflect.ValueOf(e.enumer)).Interface()
}

func (e *enumValue) VariantIndex() int { return e.enumer.VariantIndex() }
func (e *enumValue) NumFields() int    { return len(e.enumer.VariantFields()) }

func (e *enumValue) Field(i int) Value {
	return ValueOf(e.enumer.VariantFields()[i])
}

func (e *enumValue) SetVariant(index int, fields []any) error {
	return e.enumer.SetVariant(index, fields)
}
