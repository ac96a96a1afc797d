// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"reflect"

	"go.uber.org/multierr"
)

// Option represents something that can modify a target object, such as
// a Factories collection under construction.
type Option[T any] interface {
	Apply(*T) error
}

// OptionFunc is a closure type that can act as an Option.
type OptionFunc[T any] func(*T) error

// Apply invokes this closure.
func (of OptionFunc[T]) Apply(t *T) error {
	return of(t)
}

// Options is an aggregate Option.  Every option is applied, even after
// an error, so that all problems are reported at once.
type Options[T any] []Option[T]

// Apply applies all the options in this slice, returning an
// aggregate error if any errors occurred.
func (o Options[T]) Apply(t *T) (err error) {
	for _, opt := range o {
		err = multierr.Append(err, opt.Apply(t))
	}

	return
}

// OptionClosure represents the closure types that are convertible
// into Option objects.
type OptionClosure[T any] interface {
	~func(*T) | ~func(*T) error
}

// AsOption converts a closure into an Option for a given target type.
// Named closure types are converted through reflection.
func AsOption[T any, F OptionClosure[T]](f F) Option[T] {
	switch fv := any(f).(type) {
	case func(*T) error:
		return OptionFunc[T](fv)

	case func(*T):
		return OptionFunc[T](func(t *T) error {
			fv(t)
			return nil
		})
	}

	rv := reflect.ValueOf(f)
	if rv.Type().NumOut() == 1 {
		return OptionFunc[T](
			rv.Convert(reflect.TypeOf((func(*T) error)(nil))).Interface().(func(*T) error),
		)
	}

	noError := rv.Convert(reflect.TypeOf((func(*T))(nil))).Interface().(func(*T))
	return OptionFunc[T](func(t *T) error {
		noError(t)
		return nil
	})
}

// InvalidOption returns an Option that always fails with the given error.
// Option constructors use this to report bad arguments instead of panicking.
func InvalidOption[T any](err error) Option[T] {
	return OptionFunc[T](func(*T) error {
		return err
	})
}
