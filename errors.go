// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"fmt"
	"reflect"
)

// MissingFactoryError indicates that a collection has no factory for a kind.
type MissingFactoryError struct {
	Kind string
}

func (mfe *MissingFactoryError) Error() string {
	return fmt.Sprintf("MISSING FACTORY: [%s]", mfe.Kind)
}

// SetError indicates that an option could not set a factory.
type SetError struct {
	Kind string
	Err  error
}

func (se *SetError) Error() string {
	return fmt.Sprintf("SET ERROR: [%s] %s", se.Kind, se.Err)
}

func (se *SetError) Unwrap() error {
	return se.Err
}

// UnknownKindError indicates that a declaration referred to a kind that is not
// part of the catalog.
type UnknownKindError struct {
	Kind string
}

func (uke *UnknownKindError) Error() string {
	return fmt.Sprintf("UNKNOWN KIND: [%s]", uke.Kind)
}

// UnknownPropertyError indicates that a declaration referred to a property that
// the target type does not have.
type UnknownPropertyError struct {
	Target   reflect.Type
	Property string
}

func (upe *UnknownPropertyError) Error() string {
	return fmt.Sprintf("UNKNOWN PROPERTY: [%s] %s", upe.Target, upe.Property)
}

// DeclarationError describes a failure to turn a single declaration into a decorator,
// e.g. because its options could not be decoded.
type DeclarationError struct {
	Target   reflect.Type
	Property string
	Kind     string
	Err      error
}

func (de *DeclarationError) Error() string {
	return fmt.Sprintf("DECLARATION ERROR: [%s.%s %s] %s", de.Target, de.Property, de.Kind, de.Err)
}

func (de *DeclarationError) Unwrap() error {
	return de.Err
}
