// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflected

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transform struct {
	X, Y, Z float32
}

type player struct {
	Name    string
	Health  int
	Pos     transform
	Tags    []string
	secret  int
	Ignored bool `inspect:"-"`
}

// shadow is a tagged union with variants None, Soft{Radius}, and
// Hard{Width, Samples}.
type shadow struct {
	variant int
	Radius  float32
	Width   float32
	Samples int
}

func (s *shadow) VariantIndex() int { return s.variant }

func (s *shadow) VariantFields() []any {
	switch s.variant {
	case 1:
		return []any{&s.Radius}
	case 2:
		return []any{&s.Width, &s.Samples}
	}
	return nil
}

func (s *shadow) SetVariant(index int, fields []any) error {
	switch index {
	case 0:
	case 1:
		s.Radius = fields[0].(float32)
	case 2:
		s.Width = fields[0].(float32)
		s.Samples = fields[1].(int)
	default:
		return fmt.Errorf("no variant %d", index)
	}
	s.variant = index
	return nil
}

func TestValueOfStruct(t *testing.T) {
	p := player{Name: "zed", Health: 80, Tags: []string{"npc"}}
	v := ValueOf(&p)
	require.NotNil(t, v)
	assert.Equal(t, StructKind, v.Kind())

	s := v.(Struct)
	assert.Equal(t, 4, s.NumFields())
	assert.Equal(t, "Name", s.FieldName(0))
	assert.Equal(t, "Health", s.FieldName(1))
	assert.Equal(t, "Pos", s.FieldName(2))
	assert.Equal(t, "Tags", s.FieldName(3))

	assert.Equal(t, LeafKind, s.Field(0).Kind())
	assert.Equal(t, StructKind, s.Field(2).Kind())
	assert.Equal(t, ListKind, s.Field(3).Kind())

	require.NoError(t, s.Field(1).(Leaf).Set(55))
	assert.Equal(t, 55, p.Health)

	pos := s.Field(2).(Struct)
	require.NoError(t, pos.Field(1).(Leaf).Set(float32(3.5)))
	assert.Equal(t, float32(3.5), p.Pos.Y)
}

func TestValueOfNonPointer(t *testing.T) {
	assert.Nil(t, ValueOf(nil))
	assert.Nil(t, ValueOf(42))
	var p *player
	assert.Nil(t, ValueOf(p))
}

func TestLeafConvert(t *testing.T) {
	x := 10
	l := ValueOf(&x).(Leaf)
	require.NoError(t, l.Set(int64(7)))
	assert.Equal(t, 7, x)
	assert.Error(t, l.Set("nope"))
}

func TestListOps(t *testing.T) {
	xs := []int{1, 2, 3}
	l := ValueOf(&xs).(List)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Elem(1).Interface())

	require.NoError(t, l.Insert(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, xs)
	require.NoError(t, l.Insert(0, 0))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, xs)

	require.NoError(t, l.Remove(2))
	assert.Equal(t, []int{0, 1, 3, 4}, xs)

	require.NoError(t, l.Move(0, 3))
	assert.Equal(t, []int{1, 3, 4, 0}, xs)
	require.NoError(t, l.Move(3, 1))
	assert.Equal(t, []int{1, 0, 3, 4}, xs)

	assert.Error(t, l.Insert(-1, 9))
	assert.Error(t, l.Remove(4))
	assert.Error(t, l.Move(0, 4))
}

func TestListElemWriteThrough(t *testing.T) {
	xs := []transform{{X: 1}, {X: 2}}
	l := ValueOf(&xs).(List)
	e := l.Elem(1).(Struct)
	require.NoError(t, e.Field(0).(Leaf).Set(float32(9)))
	assert.Equal(t, float32(9), xs[1].X)
}

func TestArray(t *testing.T) {
	ar := [3]float64{1, 2, 3}
	v := ValueOf(&ar)
	assert.Equal(t, ArrayKind, v.Kind())
	a := v.(Array)
	assert.Equal(t, 3, a.Len())
	require.NoError(t, a.Elem(2).(Leaf).Set(9.5))
	assert.Equal(t, 9.5, ar[2])
}

func TestMapEntriesSorted(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	v := ValueOf(&m)
	assert.Equal(t, MapKind, v.Kind())
	entries := v.(Map).Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, "b", entries[1].Key)
	assert.Equal(t, "c", entries[2].Key)
	assert.Equal(t, 2, entries[1].Value.Interface())
}

func TestNilPointerFieldAllocated(t *testing.T) {
	type holder struct {
		P *transform
	}
	h := holder{}
	s := ValueOf(&h).(Struct)
	f := s.Field(0)
	assert.Equal(t, StructKind, f.Kind())
	require.NotNil(t, h.P)
	require.NoError(t, f.(Struct).Field(0).(Leaf).Set(float32(1)))
	assert.Equal(t, float32(1), h.P.X)
}

func TestEnum(t *testing.T) {
	sh := shadow{}
	v := ValueOf(&sh)
	assert.Equal(t, EnumKind, v.Kind())
	e := v.(Enum)
	assert.Equal(t, 0, e.VariantIndex())
	assert.Equal(t, 0, e.NumFields())

	require.NoError(t, e.SetVariant(2, []any{float32(0.5), 16}))
	assert.Equal(t, 2, e.VariantIndex())
	assert.Equal(t, 2, e.NumFields())
	assert.Equal(t, float32(0.5), e.Field(0).Interface())

	require.NoError(t, e.Field(1).(Leaf).Set(32))
	assert.Equal(t, 32, sh.Samples)

	assert.Error(t, e.SetVariant(5, nil))
}

func TestEnumAsStructField(t *testing.T) {
	type light struct {
		Shadow shadow
	}
	l := light{}
	s := ValueOf(&l).(Struct)
	f := s.Field(0)
	require.Equal(t, EnumKind, f.Kind())
	require.NoError(t, f.(Enum).SetVariant(1, []any{float32(2)}))
	assert.Equal(t, 1, l.Shadow.variant)
	assert.Equal(t, float32(2), l.Shadow.Radius)
}
