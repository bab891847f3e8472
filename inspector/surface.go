// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

// NumberConfig configures a [Surface] number widget. Bounds are nil
// when unbounded; values travel as float64 regardless of the edited
// type, and the engine converts and clamps after the widget returns.
type NumberConfig struct {
	Min, Max *float64

	// Speed is the per-pixel drag increment; zero means the
	// surface default.
	Speed float64

	// Suffix is appended to the displayed value.
	Suffix string

	// Integer requests whole-number stepping.
	Integer bool
}

// SelectorItem is one entry of a variant selector.
type SelectorItem struct {
	Label string

	// Disabled marks the entry unselectable, with Reason shown to
	// the user.
	Disabled bool
	Reason   string
}

// Surface is the UI the inspector draws into. It is injected by the
// caller: a real implementation adapts an immediate-mode GUI, and
// [TestSurface] scripts user interaction for tests.
//
// Interactive widgets return the new value and whether the user
// changed it this frame.
type Surface interface {
	// BeginGrid opens a two-column label/value grid.
	BeginGrid(id ID)
	EndGrid()

	// BeginRow opens one horizontal row.
	BeginRow()
	EndRow()

	// Separator draws a horizontal rule.
	Separator()

	// Label draws static text.
	Label(text string)

	// Error draws a diagnostic message.
	Error(text string)

	// Button draws a clickable button, reporting whether it was
	// clicked this frame.
	Button(id ID, label string) bool

	// Selector draws a drop-down over items with the given current
	// index, returning the selected index and whether it changed.
	// Disabled items cannot be returned.
	Selector(id ID, current int, items []SelectorItem) (int, bool)

	// DragNumber draws a draggable number widget.
	DragNumber(id ID, v float64, cfg NumberConfig) (float64, bool)

	// Checkbox draws a boolean toggle.
	Checkbox(id ID, v bool) (bool, bool)

	// TextField draws a string editor.
	TextField(id ID, v string, multiline bool) (string, bool)
}
