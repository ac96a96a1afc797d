// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

// PropertyDecoratorFactory creates a PropertyDecorator from an options value.
// The options type O is fixed by the decorator kind the factory belongs to.
type PropertyDecoratorFactory[O any] func(O) PropertyDecorator

// Nop returns a factory whose decorators do nothing, regardless of options.
// Useful for collections that have nothing to record for a given kind.
func Nop[O any]() PropertyDecoratorFactory[O] {
	return func(O) PropertyDecorator {
		return NopDecorator
	}
}

// ComposePropertyDecoratorFactories produces a single factory from several factories
// of the same kind.  When the returned factory is invoked, the same options value is
// passed to each factory in order and the resulting decorators are composed with
// ComposePropertyDecorators.
//
// If fs is empty, the returned factory always produces a decorator that does nothing.
func ComposePropertyDecoratorFactories[O any](fs []PropertyDecoratorFactory[O]) PropertyDecoratorFactory[O] {
	factories := append(make([]PropertyDecoratorFactory[O], 0, len(fs)), fs...)
	return func(o O) PropertyDecorator {
		ds := make([]PropertyDecorator, 0, len(factories))
		for _, f := range factories {
			ds = append(ds, f(o))
		}

		return ComposePropertyDecorators(ds)
	}
}
