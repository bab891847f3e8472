// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type resA struct{ V int }
type resB struct{ V int }
type resC struct{ V int }
type resD struct{ V int }

// TestRandomSplitDisjointness splits views along random resource
// sequences and checks that, at every step, the narrow and rest halves
// never both allow the same resource.
func TestRandomSplitDisjointness(t *testing.T) {
	all := []reflect.Type{
		reflect.TypeFor[resA](),
		reflect.TypeFor[resB](),
		reflect.TypeFor[resC](),
		reflect.TypeFor[resD](),
	}
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		s := NewStorage()
		SetResourceFor(s, resA{})
		SetResourceFor(s, resB{})
		SetResourceFor(s, resC{})
		SetResourceFor(s, resD{})

		v := NewView(s)
		var dones []func()
		cur := v
		perm := rng.Perm(len(all))
		depth := 1 + rng.Intn(len(all))
		for _, pi := range perm[:depth] {
			st := all[pi]
			narrow, rest, done := cur.SplitOffResource(st)
			dones = append(dones, done)

			for _, ot := range all {
				n := narrow.AllowsAccessToResource(ot)
				r := rest.AllowsAccessToResource(ot)
				require.False(t, n && r, "trial %d: both halves allow %s", trial, ot)
				if ot == st {
					require.True(t, n, "trial %d: narrow half lost %s", trial, ot)
				}
			}
			cur = rest
		}

		// Unwind: every done re-arms its parent.
		for i := len(dones) - 1; i >= 0; i-- {
			dones[i]()
		}
		require.Len(t, v.Resources(), len(all))
	}
}
