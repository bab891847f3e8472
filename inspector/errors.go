// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspector

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspect/types"
)

// Diagnostics are drawn into the surface where the value would have
// been, so a single broken field does not take down the whole panel.
// Each message names the type involved and what to do about it.

func errorNoWidget(sf Surface, t reflect.Type) {
	sf.Error(fmt.Sprintf("%s has no widget registered; register a *inspector.Widget for it, or call RegisterDefaults for the builtin leaf types", types.TypeName(t)))
}

func errorNoVariants(sf Surface, t reflect.Type) {
	sf.Error(fmt.Sprintf("%s has no variant metadata registered; set Variants on its types.Type registration", types.TypeName(t)))
}

// ErrorNoWorld draws the diagnostic for a value that needs world
// access to display while the inspector context has no world view.
// It is exported for use by short-circuit hooks.
func ErrorNoWorld(sf Surface, t reflect.Type) {
	sf.Error(fmt.Sprintf("%s needs world access to display, but the inspector context has no world view", types.TypeName(t)))
}

// ErrorWorld draws a world access error, such as a missing resource or
// a no-access violation, as reported by the view.
func ErrorWorld(sf Surface, err error) {
	sf.Error(err.Error())
}
