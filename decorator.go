// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import "reflect"

// PropertyDecorator records metadata about a single property of a target type.
// The target is the owning struct type and property is the name of the
// struct field being decorated.
//
// A PropertyDecorator has no return value.  Anything it does, such as adding a rule
// to a Registry, is a side effect.
type PropertyDecorator func(target reflect.Type, property string)

// NopDecorator is a PropertyDecorator that does nothing.
func NopDecorator(reflect.Type, string) {}

// ComposePropertyDecorators produces a single PropertyDecorator that invokes each
// of the given decorators, in order, with the same target and property.
//
// No attempt is made to deduplicate or reorder decorators.  If ds is empty, the
// returned decorator does nothing.  The ds slice is copied, so later changes
// to it do not affect the returned decorator.
func ComposePropertyDecorators(ds []PropertyDecorator) PropertyDecorator {
	if len(ds) == 0 {
		return NopDecorator
	}

	decorators := append(make([]PropertyDecorator, 0, len(ds)), ds...)
	return func(target reflect.Type, property string) {
		for _, d := range decorators {
			d(target, property)
		}
	}
}

// Decorate applies the given decorators, in order, to a property of the type
// described by prototype.  The prototype may be anything TargetOf accepts.
func Decorate(prototype interface{}, property string, ds ...PropertyDecorator) {
	ComposePropertyDecorators(ds)(TargetOf(prototype), property)
}
