// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonPointerType(t *testing.T) {
	it := reflect.TypeFor[int]()
	assert.Equal(t, it, NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, it, NonPointerType(reflect.TypeFor[*int]()))
	assert.Equal(t, it, NonPointerType(reflect.TypeFor[***int]()))

	at := reflect.TypeFor[any]()
	assert.Equal(t, at, NonPointerType(reflect.TypeFor[any]()))
	assert.Equal(t, at, NonPointerType(reflect.TypeFor[**any]()))

	assert.Nil(t, NonPointerType(nil))
}

func TestNonPointerValue(t *testing.T) {
	v := 7
	rv := reflect.ValueOf(v)
	assert.True(t, NonPointerValue(reflect.ValueOf(v)).Equal(rv))
	assert.True(t, NonPointerValue(reflect.ValueOf(&v)).Equal(rv))

	p := &v
	assert.True(t, NonPointerValue(reflect.ValueOf(&p)).Equal(rv))

	// an interface is not dereferenced, so &any hides the true type
	a := any(v)
	assert.Equal(t, rv.Type(), NonPointerValue(reflect.ValueOf(a)).Type())
	assert.NotEqual(t, rv.Type(), NonPointerValue(reflect.ValueOf(&a)).Type())

	assert.False(t, NonPointerValue(reflect.ValueOf((*int)(nil))).IsValid())
}

func TestPointerValue(t *testing.T) {
	v := 7
	// non-addressable value: a copy goes behind a fresh pointer
	pv := PointerValue(reflect.ValueOf(v))
	assert.Equal(t, reflect.TypeFor[*int](), pv.Type())
	assert.Equal(t, 7, pv.Elem().Interface())

	// a pointer passes through unchanged, even a pointer to pointer
	p := &v
	rp := reflect.ValueOf(p)
	assert.True(t, PointerValue(rp).Equal(rp))
	rpp := reflect.ValueOf(&p)
	assert.True(t, PointerValue(rpp).Equal(rpp))

	// an addressable value yields its own address
	assert.True(t, PointerValue(rp.Elem()).Equal(rp))

	rn := reflect.ValueOf((*int)(nil))
	assert.True(t, PointerValue(rn).Equal(rn))
}

func TestOnePointerValue(t *testing.T) {
	v := 7
	p := &v
	rp := reflect.ValueOf(p)

	assert.Equal(t, reflect.TypeFor[*int](), OnePointerValue(reflect.ValueOf(v)).Type())
	assert.True(t, OnePointerValue(rp).Equal(rp))
	assert.True(t, OnePointerValue(rp.Elem()).Equal(rp))

	// extra pointer levels collapse down to one
	pp := &p
	assert.True(t, OnePointerValue(reflect.ValueOf(pp)).Equal(rp))
	assert.Equal(t, reflect.TypeFor[*int](), OnePointerValue(reflect.ValueOf(pp)).Type())
}

func TestUnderlying(t *testing.T) {
	v := 7
	rv := reflect.ValueOf(v)
	p := &v
	a := any(v)

	assert.True(t, Underlying(reflect.ValueOf(v)).Equal(rv))
	assert.True(t, Underlying(reflect.ValueOf(&p)).Equal(rv))
	assert.True(t, Underlying(reflect.ValueOf(a)).Equal(rv))

	// unlike NonPointerValue, interfaces are unwrapped too
	assert.Equal(t, rv.Type(), Underlying(reflect.ValueOf(&a)).Type())

	assert.False(t, Underlying(reflect.ValueOf((*int)(nil))).IsValid())
	assert.False(t, Underlying(reflect.ValueOf(any(nil))).IsValid())
}

func TestUnderlyingPointer(t *testing.T) {
	v := 7
	p := &v
	rp := reflect.ValueOf(p)

	assert.True(t, UnderlyingPointer(rp).Equal(rp))
	assert.True(t, UnderlyingPointer(reflect.ValueOf(&p)).Equal(rp))

	// the value behind an interface is not addressable, so the
	// resulting pointer addresses a copy of the right type
	a := any(v)
	up := UnderlyingPointer(reflect.ValueOf(&a))
	assert.Equal(t, reflect.TypeFor[*int](), up.Type())
	assert.False(t, up.Equal(rp))
	assert.Equal(t, 7, up.Elem().Interface())
}

func TestNonNilNew(t *testing.T) {
	n0 := NonNilNew(reflect.TypeFor[int]())
	assert.Equal(t, reflect.TypeFor[*int](), n0.Type())
	assert.False(t, n0.IsNil())
	assert.Equal(t, 0, n0.Elem().Interface())

	// every level of a pointer chain comes back allocated
	n2 := NonNilNew(reflect.TypeFor[**int]())
	assert.Equal(t, reflect.TypeFor[***int](), n2.Type())
	assert.False(t, n2.Elem().IsNil())
	assert.False(t, n2.Elem().Elem().IsNil())
	assert.Equal(t, 0, n2.Elem().Elem().Elem().Interface())
}
