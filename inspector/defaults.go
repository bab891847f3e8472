// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"fmt"
	"math"
	"reflect"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"

	"cogentcore.org/inspect/options"
	"cogentcore.org/inspect/reflected"
	"cogentcore.org/inspect/types"
)

// RegisterDefaults registers widgets and default constructors for the
// builtin leaf types: all integer and float kinds, bool, and string.
// Every inspector registry needs these unless the application replaces
// them.
func RegisterDefaults(reg *types.Registry) {
	registerNumber[int](reg, true, nil)
	registerNumber[int8](reg, true, nil)
	registerNumber[int16](reg, true, nil)
	registerNumber[int32](reg, true, nil)
	registerNumber[int64](reg, true, nil)
	registerNumber[uint](reg, true, nil)
	registerNumber[uint8](reg, true, nil)
	registerNumber[uint16](reg, true, nil)
	registerNumber[uint32](reg, true, nil)
	registerNumber[uint64](reg, true, nil)
	registerNumber[float32](reg, false, float32Speed)
	registerNumber[float64](reg, false, float64Speed)
	registerBool(reg)
	registerString(reg)
}

// float32Speed is the default drag speed for float32 widgets,
// proportional to the current magnitude.
func float32Speed(cur float64) float64 {
	return float64(math32.Max(0.01, math32.Abs(float32(cur))/100))
}

func float64Speed(cur float64) float64 {
	return math.Max(0.01, math.Abs(cur)/100)
}

func registerNumber[T constraints.Integer | constraints.Float](reg *types.Registry, integer bool, speed func(cur float64) float64) {
	tp := types.Register[T](reg)
	tp.Widget = numberWidget[T](integer, speed)
}

func numberWidget[T constraints.Integer | constraints.Float](integer bool, speed func(cur float64) float64) *Widget {
	unsigned := false
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		unsigned = true
	}
	clamp := func(no options.NumberOptions[T], nv float64) T {
		if unsigned && nv < 0 {
			nv = 0
		}
		return no.Clamp(T(nv))
	}
	config := func(no options.NumberOptions[T], cur float64) NumberConfig {
		cfg := NumberConfig{Speed: no.Speed, Suffix: no.Suffix, Integer: integer}
		if no.Min != nil {
			m := float64(*no.Min)
			cfg.Min = &m
		}
		if no.Max != nil {
			m := float64(*no.Max)
			cfg.Max = &m
		}
		if cfg.Speed == 0 {
			if integer {
				cfg.Speed = 1
			} else if speed != nil {
				cfg.Speed = speed(cur)
			}
		}
		return cfg
	}
	return &Widget{
		Edit: func(in *Inspector, v reflected.Value, sf Surface, id ID, opts any) bool {
			leaf, cur, ok := leafAs[T](v, sf)
			if !ok {
				return false
			}
			no, _ := opts.(options.NumberOptions[T])
			nv, ch := sf.DragNumber(id, float64(cur), config(no, float64(cur)))
			if !ch {
				return false
			}
			if err := leaf.Set(clamp(no, nv)); err != nil {
				sf.Error(err.Error())
				return false
			}
			return true
		},
		Readonly: func(in *Inspector, v reflected.Value, sf Surface, id ID, opts any) {
			no, _ := opts.(options.NumberOptions[T])
			sf.Label(fmt.Sprint(v.Interface()) + no.Suffix)
		},
		Many: func(in *Inspector, t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) bool {
			_, cur, ok := leafAs[T](values[0], sf)
			if !ok {
				return false
			}
			if !allEqual(values) {
				sf.Label("(mixed)")
			}
			no, _ := opts.(options.NumberOptions[T])
			nv, ch := sf.DragNumber(id, float64(cur), config(no, float64(cur)))
			if !ch {
				return false
			}
			return setAll(values, clamp(no, nv), sf)
		},
	}
}

func registerBool(reg *types.Registry) {
	tp := types.Register[bool](reg)
	tp.Widget = &Widget{
		Edit: func(in *Inspector, v reflected.Value, sf Surface, id ID, opts any) bool {
			leaf, cur, ok := leafAs[bool](v, sf)
			if !ok {
				return false
			}
			nv, ch := sf.Checkbox(id, cur)
			if !ch {
				return false
			}
			if err := leaf.Set(nv); err != nil {
				sf.Error(err.Error())
				return false
			}
			return true
		},
		Readonly: func(in *Inspector, v reflected.Value, sf Surface, id ID, opts any) {
			sf.Label(fmt.Sprint(v.Interface()))
		},
		Many: func(in *Inspector, t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) bool {
			_, cur, ok := leafAs[bool](values[0], sf)
			if !ok {
				return false
			}
			if !allEqual(values) {
				sf.Label("(mixed)")
			}
			nv, ch := sf.Checkbox(id, cur)
			if !ch {
				return false
			}
			return setAll(values, nv, sf)
		},
	}
}

func registerString(reg *types.Registry) {
	tp := types.Register[string](reg)
	tp.Widget = &Widget{
		Edit: func(in *Inspector, v reflected.Value, sf Surface, id ID, opts any) bool {
			leaf, cur, ok := leafAs[string](v, sf)
			if !ok {
				return false
			}
			to, _ := opts.(options.TextOptions)
			nv, ch := sf.TextField(id, cur, to.Multiline)
			if !ch {
				return false
			}
			if err := leaf.Set(nv); err != nil {
				sf.Error(err.Error())
				return false
			}
			return true
		},
		Readonly: func(in *Inspector, v reflected.Value, sf Surface, id ID, opts any) {
			sf.Label(fmt.Sprint(v.Interface()))
		},
		Many: func(in *Inspector, t reflect.Type, sf Surface, id ID, opts any, values []reflected.Value) bool {
			_, cur, ok := leafAs[string](values[0], sf)
			if !ok {
				return false
			}
			if !allEqual(values) {
				sf.Label("(mixed)")
			}
			to, _ := opts.(options.TextOptions)
			nv, ch := sf.TextField(id, cur, to.Multiline)
			if !ch {
				return false
			}
			return setAll(values, nv, sf)
		},
	}
}

// leafAs extracts a leaf of type T, drawing a diagnostic on mismatch.
func leafAs[T any](v reflected.Value, sf Surface) (reflected.Leaf, T, bool) {
	var zero T
	leaf, ok := v.(reflected.Leaf)
	if !ok {
		errorNoWidget(sf, v.Type())
		return nil, zero, false
	}
	cur, ok := leaf.Interface().(T)
	if !ok {
		errorNoWidget(sf, v.Type())
		return nil, zero, false
	}
	return leaf, cur, true
}

// allEqual reports whether all values hold the same underlying value.
func allEqual(values []reflected.Value) bool {
	first := values[0].Interface()
	for _, v := range values[1:] {
		if !reflect.DeepEqual(v.Interface(), first) {
			return false
		}
	}
	return true
}

// setAll writes nv to every value, reporting whether any write
// succeeded.
func setAll(values []reflected.Value, nv any, sf Surface) bool {
	changed := false
	for _, v := range values {
		leaf, ok := v.(reflected.Leaf)
		if !ok {
			errorNoWidget(sf, v.Type())
			continue
		}
		if err := leaf.Set(nv); err != nil {
			sf.Error(err.Error())
			continue
		}
		changed = true
	}
	return changed
}
