// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"fmt"
	"reflect"

	"cogentcore.org/inspect/types"
)

// NoAccessToResourceError is returned when a [View] does not have
// access to the requested resource, typically because it was split
// off into a sibling view.
type NoAccessToResourceError struct {
	Type reflect.Type
}

func (e *NoAccessToResourceError) Error() string {
	return fmt.Sprintf("world: no access to resource %s; it may be split off into another view", types.TypeName(e.Type))
}

// NoAccessToComponentError is returned when a [View] does not have
// access to the requested component of the requested entity.
type NoAccessToComponentError struct {
	EntityComponent
}

func (e *NoAccessToComponentError) Error() string {
	return fmt.Sprintf("world: no access to component %s of entity %v; it may be split off into another view", types.TypeName(e.Type), e.Entity)
}

// ResourceDoesNotExistError is returned when the requested resource
// is accessible but not present in the world.
type ResourceDoesNotExistError struct {
	Type reflect.Type
}

func (e *ResourceDoesNotExistError) Error() string {
	return fmt.Sprintf("world: resource %s does not exist; insert it before inspecting it", types.TypeName(e.Type))
}

// ComponentDoesNotExistError is returned when the requested entity
// does not have the requested component.
type ComponentDoesNotExistError struct {
	EntityComponent
}

func (e *ComponentDoesNotExistError) Error() string {
	return fmt.Sprintf("world: entity %v has no component %s", e.Entity, types.TypeName(e.Type))
}

// NoTypeRegistrationError is returned when a type has no entry in the
// type registry, so the inspector has no metadata for it.
type NoTypeRegistrationError struct {
	TypeName string
}

func (e *NoTypeRegistrationError) Error() string {
	return fmt.Sprintf("world: type %s is not registered; call types.Register for it", e.TypeName)
}

// NoDefaultValueError is returned when constructing a value of a type
// is required but its registration carries no default constructor.
type NoDefaultValueError struct {
	TypeName string
}

func (e *NoDefaultValueError) Error() string {
	return fmt.Sprintf("world: type %s has no registered default constructor", e.TypeName)
}

// SameResourceError is returned when two distinct resources are
// required but the same type was requested twice.
type SameResourceError struct {
	Type reflect.Type
}

func (e *SameResourceError) Error() string {
	return fmt.Sprintf("world: cannot borrow resource %s twice at once", types.TypeName(e.Type))
}
