// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtovalidate

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotStruct is returned by Validate when the value is not a struct or a non-nil pointer to one.
	ErrNotStruct = errors.New("the value to validate must be a struct")

	// ErrNoSuchProperty indicates a decorated property that the struct does not have.
	ErrNoSuchProperty = errors.New("no such property")

	// ErrNull indicates a nil value for a property that is neither nullable nor optional.
	ErrNull = errors.New("cannot be null")

	// ErrType indicates a value whose type does not fit the decorator kind.
	ErrType = errors.New("wrong type")

	// ErrNotArray indicates that a per-element rule was applied to something that is not a slice or array.
	ErrNotArray = errors.New("not an array")

	// ErrRange indicates a numeric or date value outside its bounds.
	ErrRange = errors.New("out of range")

	// ErrLength indicates a length outside its bounds.
	ErrLength = errors.New("invalid length")

	// ErrPattern indicates a string that does not match its pattern.
	ErrPattern = errors.New("does not match pattern")

	// ErrEnum indicates a value that is not one of the allowed values.
	ErrEnum = errors.New("not an allowed value")

	// ErrUUID indicates a malformed UUID or one with the wrong version.
	ErrUUID = errors.New("invalid uuid")
)

// FieldError describes a single validation failure.  Validate aggregates these with
// go.uber.org/multierr.
type FieldError struct {
	// Target is the type passed to Validate
	Target reflect.Type

	// Path locates the failing value relative to Target, e.g. "Address.City" or "Tags[2]"
	Path string

	// Kind is the decorator kind whose rule failed.  This is empty for ErrNoSuchProperty.
	Kind string

	// Err is the underlying cause, which wraps one of the sentinel errors in this package
	Err error
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("VALIDATION ERROR: [%s] %s %s: %s", fe.Target, fe.Path, fe.Kind, fe.Err)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}
