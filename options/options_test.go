// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargets(t *testing.T) {
	assert.Equal(t, Target{Variant: -1, Field: 2}, Field(2))
	assert.Equal(t, Target{Variant: 1, Field: 0}, VariantField(1, 0))
	assert.NotEqual(t, Field(0), VariantField(0, 0))
}

func TestOptionsInsertGet(t *testing.T) {
	o := New().
		Insert(Field(0), Between(0.0, 1.0)).
		Insert(Field(2), TextOptions{Multiline: true})

	assert.Equal(t, 2, o.Len())
	no, ok := o.Get(Field(0)).(NumberOptions[float64])
	assert.True(t, ok)
	assert.Equal(t, 0.0, *no.Min)
	assert.Equal(t, 1.0, *no.Max)
	assert.Nil(t, o.Get(Field(1)))

	var nilOpts *Options
	assert.Nil(t, nilOpts.Get(Field(0)))
	assert.Equal(t, 0, nilOpts.Len())
}

func TestClamp(t *testing.T) {
	n := Between(2, 5)
	assert.Equal(t, 2, n.Clamp(-1))
	assert.Equal(t, 5, n.Clamp(9))
	assert.Equal(t, 3, n.Clamp(3))

	lo := AtLeast(0.0)
	assert.Equal(t, 0.0, lo.Clamp(-0.5))
	assert.Equal(t, 7.5, lo.Clamp(7.5))

	hi := AtMost(10)
	assert.Equal(t, 10, hi.Clamp(11))
	assert.Equal(t, -3, hi.Clamp(-3))

	var free NumberOptions[int]
	assert.Equal(t, -100, free.Clamp(-100))
}
