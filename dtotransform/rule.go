// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtotransform

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/xmidt-org/arrangedto"
	"go.uber.org/multierr"
)

// Context is the state passed to a conversion Func.
type Context struct {
	// Registry holds the rules being applied
	Registry *arrangedto.Registry[Rule]

	// Target is the struct type originally being transformed
	Target reflect.Type

	// Path is the location of the value being converted
	Path string

	// Type is the destination type of the value, with pointers removed.  For
	// rules with the Each option, this is the element type.
	Type reflect.Type

	// TagName is the struct tag used to match input keys to properties
	TagName string
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

// Func converts a single non-nil input value.
type Func func(Context, interface{}) (interface{}, error)

// Rule is what the decorators in this package record in a Registry.
type Rule struct {
	// Kind is the decorator kind that produced this rule
	Kind string

	// Options are the settings shared by all kinds
	Options arrangedto.PropertyOptions

	// Convert performs the conversion
	Convert Func
}

func (r Rule) fail(c Context, v interface{}, err error) error {
	var ce *ConvertError
	if errors.As(err, &ce) {
		return err
	}

	return &ConvertError{
		Target: c.Target,
		Path:   c.Path,
		Kind:   r.Kind,
		Value:  v,
		Err:    err,
	}
}

func (r Rule) convertOne(c Context, v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	converted, err := r.Convert(c, v)
	if err != nil {
		return v, r.fail(c, v, err)
	}

	return converted, nil
}

// apply runs this rule against an input value.  With the Each option, a []interface{}
// is converted element by element into a new slice.  Any other value is converted as a whole.
func (r Rule) apply(c Context, v interface{}) (result interface{}, err error) {
	elements, ok := v.([]interface{})
	if !r.Options.Each || !ok {
		return r.convertOne(c, v)
	}

	if c.Type != nil && (c.Type.Kind() == reflect.Slice || c.Type.Kind() == reflect.Array) {
		c.Type = elementType(c.Type.Elem())
	}

	converted := make([]interface{}, len(elements))
	for i, e := range elements {
		var elementErr error
		converted[i], elementErr = r.convertOne(c.index(i), e)
		err = multierr.Append(err, elementErr)
	}

	if err != nil {
		return v, err
	}

	return converted, nil
}

func elementType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
