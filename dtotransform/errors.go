// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtotransform

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotStruct indicates that the target of a transformation is not a struct type.
	ErrNotStruct = errors.New("the transformation target must be a struct")

	// ErrUnsupported indicates an input value that a kind cannot convert.
	ErrUnsupported = errors.New("unsupported value")
)

// ConvertError describes an input value that could not be converted.
type ConvertError struct {
	// Target is the struct type being transformed
	Target reflect.Type

	// Path locates the value relative to Target
	Path string

	// Kind is the decorator kind whose conversion failed
	Kind string

	// Value is the input value
	Value interface{}

	// Err is the cause
	Err error
}

func (ce *ConvertError) Error() string {
	return fmt.Sprintf("CONVERT ERROR: [%s] %s %s: cannot convert %#v: %s", ce.Target, ce.Path, ce.Kind, ce.Value, ce.Err)
}

func (ce *ConvertError) Unwrap() error {
	return ce.Err
}
