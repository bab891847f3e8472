// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

// TextOptions configures the display of a string field.
type TextOptions struct {
	// Multiline displays the field as a multi-line text area
	// instead of a single-line field.
	Multiline bool
}
