// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package arrangedto composes property-level decorators for data transfer objects.

A PropertyDecorator records something about a single property of a struct type,
typically a validation or transformation rule kept in a Registry.  Decorators are
produced by factories, each bound to a decorator kind and that kind's options type:

	var validate = dtovalidate.NewFactories(validations)
	var transform = dtotransform.NewFactories(transforms)

	// select the length factory from both collections and invoke both with one options value
	length := arrangedto.ComposePropertyDecoratorFactories(
		arrangedto.SelectPropertyDecoratorFactories(
			arrangedto.Length,
			[]arrangedto.Factories{validate, transform},
		),
	)

	arrangedto.Decorate(User{}, "Name", length(arrangedto.LengthOptions{Min: 1, Max: 64}))

Declarations allow the same thing to be driven by external configuration.
*/
package arrangedto
