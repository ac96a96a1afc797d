// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtovalidate

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/xmidt-org/arrangedto"
	"go.uber.org/multierr"
)

// Context is the state passed to a Check.
type Context struct {
	// Registry is the registry being validated against.  Checks that descend
	// into nested values use this.
	Registry *arrangedto.Registry[Rule]

	// Target is the type originally passed to Validate
	Target reflect.Type

	// Path is the location of the value being checked
	Path string

	// visiting holds the structs currently being validated, which stops
	// nested validation from following pointer cycles
	visiting map[visit]bool
}

// visit identifies an addressable struct.  The type is part of the key since
// a struct and its first field share an address.
type visit struct {
	addr uintptr
	typ  reflect.Type
}

func (c Context) property(name string) Context {
	if len(c.Path) > 0 {
		c.Path = c.Path + "." + name
	} else {
		c.Path = name
	}

	return c
}

func (c Context) index(i int) Context {
	c.Path = c.Path + "[" + strconv.Itoa(i) + "]"
	return c
}

func (c Context) fail(kind string, err error) error {
	return &FieldError{
		Target: c.Target,
		Path:   c.Path,
		Kind:   kind,
		Err:    err,
	}
}

// wrap turns any errors from a check into FieldErrors.  Errors that are already
// FieldErrors, as from nested validation, are kept as is.
func (c Context) wrap(kind string, err error) (wrapped error) {
	for _, e := range multierr.Errors(err) {
		var fe *FieldError
		if !errors.As(e, &fe) {
			e = c.fail(kind, e)
		}

		wrapped = multierr.Append(wrapped, e)
	}

	return
}

// Check examines a single value.  The value is never a pointer or interface:  Rule
// dereferences those and handles nil before calling the check.
type Check func(Context, reflect.Value) error

// Rule is what the decorators in this package record in a Registry.
type Rule struct {
	// Kind is the decorator kind that produced this rule
	Kind string

	// Options are the settings shared by all kinds, which control how
	// nil, zero, and slice values are handled
	Options arrangedto.PropertyOptions

	// Check performs the kind-specific validation
	Check Check
}

// indirect dereferences pointers and interfaces.  The returned flag is true
// if a nil was encountered along the way.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, true
		}

		v = v.Elem()
	}

	return v, false
}

func (r Rule) apply(c Context, v reflect.Value) (err error) {
	if !r.Options.Each {
		return r.applyOne(c, v)
	}

	container, null := indirect(v)
	switch {
	case null:
		return r.null(c)

	case container.Kind() != reflect.Slice && container.Kind() != reflect.Array:
		return c.fail(r.Kind, ErrNotArray)
	}

	for i := 0; i < container.Len(); i++ {
		err = multierr.Append(err, r.applyOne(c.index(i), container.Index(i)))
	}

	return
}

func (r Rule) null(c Context) error {
	if r.Options.Nullable || r.Options.Optional {
		return nil
	}

	return c.fail(r.Kind, ErrNull)
}

func (r Rule) applyOne(c Context, v reflect.Value) error {
	v, null := indirect(v)
	switch {
	case null:
		return r.null(c)

	case r.Options.Optional && v.IsZero():
		return nil

	default:
		return c.wrap(r.Kind, r.Check(c, v))
	}
}
