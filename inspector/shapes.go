// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/jinzhu/copier"

	"cogentcore.org/inspect/options"
	"cogentcore.org/inspect/reflected"
	"cogentcore.org/inspect/types"
	"cogentcore.org/inspect/world"
)

// structUI draws a struct as a two-column grid of field label and
// field editor rows. A struct with exactly one field is drawn inline,
// without grid or label.
func (in *Inspector) structUI(s reflected.Struct, sf Surface, id ID, opts any) bool {
	fo := asOptions(opts)
	switch s.NumFields() {
	case 0:
		return false
	case 1:
		return in.UIForValue(s.Field(0), sf, id.With(0), fo.Get(options.Field(0)))
	}
	changed := false
	sf.BeginGrid(id.With("grid"))
	for i := 0; i < s.NumFields(); i++ {
		sf.BeginRow()
		sf.Label(s.FieldName(i))
		if in.UIForValue(s.Field(i), sf, id.With(i), fo.Get(options.Field(i))) {
			changed = true
		}
		sf.EndRow()
	}
	sf.EndGrid()
	return changed
}

func (in *Inspector) structUIReadonly(s reflected.Struct, sf Surface, id ID, opts any) {
	fo := asOptions(opts)
	switch s.NumFields() {
	case 0:
		return
	case 1:
		in.UIForValueReadonly(s.Field(0), sf, id.With(0), fo.Get(options.Field(0)))
		return
	}
	sf.BeginGrid(id.With("grid"))
	for i := 0; i < s.NumFields(); i++ {
		sf.BeginRow()
		sf.Label(s.FieldName(i))
		in.UIForValueReadonly(s.Field(i), sf, id.With(i), fo.Get(options.Field(i)))
		sf.EndRow()
	}
	sf.EndGrid()
}

// tupleUI draws positional fields, numbered.
func (in *Inspector) tupleUI(t reflected.Tuple, sf Surface, id ID, opts any) bool {
	fo := asOptions(opts)
	switch t.NumElems() {
	case 0:
		return false
	case 1:
		return in.UIForValue(t.Elem(0), sf, id.With(0), fo.Get(options.Field(0)))
	}
	changed := false
	sf.BeginGrid(id.With("grid"))
	for i := 0; i < t.NumElems(); i++ {
		sf.BeginRow()
		sf.Label(strconv.Itoa(i))
		if in.UIForValue(t.Elem(i), sf, id.With(i), fo.Get(options.Field(i))) {
			changed = true
		}
		sf.EndRow()
	}
	sf.EndGrid()
	return changed
}

func (in *Inspector) tupleUIReadonly(t reflected.Tuple, sf Surface, id ID, opts any) {
	fo := asOptions(opts)
	if t.NumElems() == 1 {
		in.UIForValueReadonly(t.Elem(0), sf, id.With(0), fo.Get(options.Field(0)))
		return
	}
	sf.BeginGrid(id.With("grid"))
	for i := 0; i < t.NumElems(); i++ {
		sf.BeginRow()
		sf.Label(strconv.Itoa(i))
		in.UIForValueReadonly(t.Elem(i), sf, id.With(i), fo.Get(options.Field(i)))
		sf.EndRow()
	}
	sf.EndGrid()
}

// listOp is a deferred structural edit of a list, collected during the
// element loop and applied after it so indices stay stable while
// drawing.
type listOp struct {
	kind listOpKind
	i    int
}

type listOpKind int32

const (
	listOpAdd listOpKind = iota
	listOpRemove
	listOpMoveUp
	listOpMoveDown
)

// listUI draws per-element rows with remove and move controls,
// separated, and an add button after the last row. Options are
// propagated to elements.
func (in *Inspector) listUI(l reflected.List, sf Surface, id ID, opts any) bool {
	changed := false
	var ops []listOp
	for i := 0; i < l.Len(); i++ {
		eid := id.With(i)
		sf.BeginRow()
		if in.UIForValue(l.Elem(i), sf, eid, opts) {
			changed = true
		}
		if i > 0 && sf.Button(eid.With("up"), "^") {
			ops = append(ops, listOp{listOpMoveUp, i})
		}
		if i < l.Len()-1 && sf.Button(eid.With("down"), "v") {
			ops = append(ops, listOp{listOpMoveDown, i})
		}
		if sf.Button(eid.With("remove"), "-") {
			ops = append(ops, listOp{listOpRemove, i})
		}
		sf.EndRow()
		if i < l.Len()-1 {
			sf.Separator()
		}
	}
	if sf.Button(id.With("add"), "+") {
		ops = append(ops, listOp{listOpAdd, l.Len()})
	}
	if in.applyListOps(l, sf, ops) {
		changed = true
	}
	return changed
}

func (in *Inspector) applyListOps(l reflected.List, sf Surface, ops []listOp) bool {
	changed := false
	for _, op := range ops {
		var err error
		switch op.kind {
		case listOpAdd:
			var v any
			v, err = in.newElement(l)
			if err == nil {
				err = l.Insert(l.Len(), v)
			}
		case listOpRemove:
			err = l.Remove(op.i)
		case listOpMoveUp:
			err = l.Move(op.i, op.i-1)
		case listOpMoveDown:
			err = l.Move(op.i, op.i+1)
		}
		if err != nil {
			sf.Error(err.Error())
			continue
		}
		changed = true
	}
	return changed
}

// newElement constructs a value to append to l: the registry default
// for the element type if there is one, otherwise a deep clone of the
// last element.
func (in *Inspector) newElement(l reflected.List) (any, error) {
	et := l.Type().Elem()
	if in.Types != nil {
		if tp := in.Types.TypeFor(et); tp != nil && tp.Default != nil {
			return tp.Default(), nil
		}
	}
	if l.Len() > 0 {
		return cloneValue(l.Elem(l.Len()-1).Interface(), et)
	}
	return nil, fmt.Errorf("inspector: cannot add element with no element to clone: %w", &world.NoDefaultValueError{TypeName: types.TypeName(et)})
}

// cloneValue deep-copies v. Value kinds with reference semantics go
// through copier; everything else copies by assignment.
func cloneValue(v any, t reflect.Type) (any, error) {
	switch t.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Map, reflect.Pointer:
		dst := reflect.New(t)
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("inspector: cannot clone element of type %s: %w", t, err)
		}
		return dst.Elem().Interface(), nil
	}
	return v, nil
}

func (in *Inspector) listUIReadonly(l reflected.List, sf Surface, id ID, opts any) {
	for i := 0; i < l.Len(); i++ {
		sf.BeginRow()
		in.UIForValueReadonly(l.Elem(i), sf, id.With(i), opts)
		sf.EndRow()
		if i < l.Len()-1 {
			sf.Separator()
		}
	}
}

// arrayUI is listUI without structural controls: arrays have fixed
// length.
func (in *Inspector) arrayUI(a reflected.Array, sf Surface, id ID, opts any) bool {
	changed := false
	for i := 0; i < a.Len(); i++ {
		sf.BeginRow()
		if in.UIForValue(a.Elem(i), sf, id.With(i), opts) {
			changed = true
		}
		sf.EndRow()
		if i < a.Len()-1 {
			sf.Separator()
		}
	}
	return changed
}

func (in *Inspector) arrayUIReadonly(a reflected.Array, sf Surface, id ID, opts any) {
	for i := 0; i < a.Len(); i++ {
		sf.BeginRow()
		in.UIForValueReadonly(a.Elem(i), sf, id.With(i), opts)
		sf.EndRow()
		if i < a.Len()-1 {
			sf.Separator()
		}
	}
}

// mapUI draws map entries read-only, sorted by key. Maps are not
// editable through the inspector; entry values are copies.
func (in *Inspector) mapUI(m reflected.Map, sf Surface, id ID, opts any) {
	entries := m.Entries()
	if len(entries) == 0 {
		sf.Label("(empty)")
		return
	}
	sf.BeginGrid(id.With("grid"))
	for _, ent := range entries {
		sf.BeginRow()
		sf.Label(ent.Key)
		in.UIForValueReadonly(ent.Value, sf, id.With(ent.Key), opts)
		sf.EndRow()
	}
	sf.EndGrid()
}
