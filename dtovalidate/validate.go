// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtovalidate

import (
	"reflect"

	"github.com/xmidt-org/arrangedto"
	"go.uber.org/multierr"
)

// Validate checks a struct value against the rules recorded in a Registry.
// The value may be a struct or a pointer to one.  Every rule is checked, and all
// failures are returned as an aggregate of *FieldError.  A type with no recorded
// rules is always valid.
func Validate(r *arrangedto.Registry[Rule], value interface{}) error {
	v, null := indirect(reflect.ValueOf(value))
	if null || v.Kind() != reflect.Struct {
		return ErrNotStruct
	}

	return validateStruct(
		Context{
			Registry: r,
			Target:   v.Type(),
			visiting: make(map[visit]bool),
		},
		v,
	)
}

// validateStruct checks each registered property of v.  A struct reached again
// through a pointer cycle while it is still being validated is skipped.
func validateStruct(c Context, v reflect.Value) (err error) {
	if v.CanAddr() {
		key := visit{addr: v.UnsafeAddr(), typ: v.Type()}
		if c.visiting[key] {
			return nil
		}

		if c.visiting == nil {
			c.visiting = make(map[visit]bool)
		}

		c.visiting[key] = true
		defer delete(c.visiting, key)
	}

	c.Registry.Visit(v.Type(), func(property string, rules []Rule) bool {
		pc := c.property(property)
		fv := v.FieldByName(property)
		if !fv.IsValid() {
			err = multierr.Append(err, pc.fail("", ErrNoSuchProperty))
			return true
		}

		for _, rule := range rules {
			err = multierr.Append(err, rule.apply(pc, fv))
		}

		return true
	})

	return
}
