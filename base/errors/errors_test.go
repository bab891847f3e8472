// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.NoError(t, Log(nil))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, err))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, "ok", Must1("ok", nil))
	assert.Panics(t, func() { Must1(0, New("boom")) })
}

func TestJoinIsAs(t *testing.T) {
	base := New("base")
	joined := Join(base, New("other"))
	assert.True(t, Is(joined, base))
}

func TestCallerInfo(t *testing.T) {
	assert.NotEmpty(t, CallerInfo())
}
