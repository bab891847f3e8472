// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnConfig struct {
	Count int
}

type httpHandler struct{}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	tp := Register[spawnConfig](r)
	require.NotNil(t, tp)
	assert.Equal(t, "cogentcore.org/inspect/types.spawnConfig", tp.Name)
	assert.Equal(t, "spawn-config", tp.IDName)
	assert.Equal(t, "types.spawnConfig", tp.ShortName())
	assert.NotZero(t, tp.ID)

	require.NotNil(t, tp.Default)
	assert.Equal(t, spawnConfig{}, tp.Default())

	assert.Equal(t, reflect.TypeFor[spawnConfig](), tp.ReflectType())
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	tp := Register[spawnConfig](r)
	again := Register[spawnConfig](r)
	assert.Same(t, tp, again)
	assert.Equal(t, tp.ID, again.ID)
}

func TestLookup(t *testing.T) {
	r := NewRegistry()
	tp := Register[spawnConfig](r)

	assert.Same(t, tp, r.TypeByName("cogentcore.org/inspect/types.spawnConfig"))
	assert.Same(t, tp, r.TypeFor(reflect.TypeFor[spawnConfig]()))
	assert.Same(t, tp, r.TypeForValue(spawnConfig{}))
	assert.Same(t, tp, r.TypeForValue(&spawnConfig{}))

	assert.Nil(t, r.TypeByName("nope"))
	assert.Nil(t, r.TypeFor(reflect.TypeFor[httpHandler]()))
	assert.Nil(t, r.TypeFor(nil))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "cogentcore.org/inspect/types.Registry", TypeName(reflect.TypeFor[Registry]()))
	assert.Equal(t, "int", TypeName(reflect.TypeFor[int]()))
	assert.Equal(t, "", TypeName(nil))
	assert.Equal(t, "cogentcore.org/inspect/types.spawnConfig", TypeNameValue(&spawnConfig{}))
}

func TestIDName(t *testing.T) {
	assert.Equal(t, "http-handler", idName("types.httpHandler"))
	assert.Equal(t, "registry", idName("Registry"))
	assert.Equal(t, "http-handler", idName("types.HTTPHandler"))
	assert.Equal(t, "spawn-config", idName("types.SpawnConfig"))
}
