// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"fmt"
	"strings"
)

// TestSurface is a [Surface] that records everything drawn into it and
// replays scripted user interaction, so traversal behavior can be
// tested without a GUI. Widgets are addressed by [ID]; an edit queued
// for an ID is consumed by the first widget drawn with that ID.
type TestSurface struct {
	// Ops is the draw log, one entry per surface call, in order.
	Ops []string

	numberEdits map[ID]float64
	boolEdits   map[ID]bool
	textEdits   map[ID]string
	clicks      map[ID]bool
	selections  map[ID]int
}

// NewTestSurface returns an empty [TestSurface].
func NewTestSurface() *TestSurface {
	return &TestSurface{
		numberEdits: map[ID]float64{},
		boolEdits:   map[ID]bool{},
		textEdits:   map[ID]string{},
		clicks:      map[ID]bool{},
		selections:  map[ID]int{},
	}
}

// QueueNumber scripts a number edit for the widget with the given ID.
func (s *TestSurface) QueueNumber(id ID, v float64) { s.numberEdits[id] = v }

// QueueBool scripts a checkbox toggle for the widget with the given ID.
func (s *TestSurface) QueueBool(id ID, v bool) { s.boolEdits[id] = v }

// QueueText scripts a text edit for the widget with the given ID.
func (s *TestSurface) QueueText(id ID, v string) { s.textEdits[id] = v }

// QueueClick scripts a click on the button with the given ID.
func (s *TestSurface) QueueClick(id ID) { s.clicks[id] = true }

// QueueSelection scripts a selector choice for the widget with the
// given ID.
func (s *TestSurface) QueueSelection(id ID, index int) { s.selections[id] = index }

// Reset clears the draw log, keeping scripted edits.
func (s *TestSurface) Reset() { s.Ops = nil }

// Contains reports whether any logged op contains the given substring.
func (s *TestSurface) Contains(sub string) bool {
	for _, op := range s.Ops {
		if strings.Contains(op, sub) {
			return true
		}
	}
	return false
}

// Errors returns the logged diagnostic messages.
func (s *TestSurface) Errors() []string {
	var errs []string
	for _, op := range s.Ops {
		if msg, ok := strings.CutPrefix(op, "error:"); ok {
			errs = append(errs, msg)
		}
	}
	return errs
}

func (s *TestSurface) record(format string, args ...any) {
	s.Ops = append(s.Ops, fmt.Sprintf(format, args...))
}

func (s *TestSurface) BeginGrid(id ID) { s.record("grid") }
func (s *TestSurface) EndGrid()        { s.record("endgrid") }
func (s *TestSurface) BeginRow()       { s.record("row") }
func (s *TestSurface) EndRow()         { s.record("endrow") }
func (s *TestSurface) Separator()      { s.record("separator") }

func (s *TestSurface) Label(text string) { s.record("label:%s", text) }
func (s *TestSurface) Error(text string) { s.record("error:%s", text) }

func (s *TestSurface) Button(id ID, label string) bool {
	s.record("button:%s", label)
	if s.clicks[id] {
		delete(s.clicks, id)
		return true
	}
	return false
}

func (s *TestSurface) Selector(id ID, current int, items []SelectorItem) (int, bool) {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
		if it.Disabled {
			labels[i] += "(disabled)"
		}
	}
	s.record("select:%d:[%s]", current, strings.Join(labels, " "))
	if sel, ok := s.selections[id]; ok {
		delete(s.selections, id)
		if sel >= 0 && sel < len(items) && !items[sel].Disabled {
			return sel, sel != current
		}
	}
	return current, false
}

func (s *TestSurface) DragNumber(id ID, v float64, cfg NumberConfig) (float64, bool) {
	s.record("number:%v%s", v, cfg.Suffix)
	if nv, ok := s.numberEdits[id]; ok {
		delete(s.numberEdits, id)
		return nv, nv != v
	}
	return v, false
}

func (s *TestSurface) Checkbox(id ID, v bool) (bool, bool) {
	s.record("check:%v", v)
	if nv, ok := s.boolEdits[id]; ok {
		delete(s.boolEdits, id)
		return nv, nv != v
	}
	return v, false
}

func (s *TestSurface) TextField(id ID, v string, multiline bool) (string, bool) {
	s.record("text:%s", v)
	if nv, ok := s.textEdits[id]; ok {
		delete(s.textEdits, id)
		return nv, nv != v
	}
	return v, false
}
