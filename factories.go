// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"errors"

	"go.uber.org/multierr"
)

// Factories is a collection of property decorator factories, one for each decorator
// kind.  A collection is total when every field is set.  Several collections can
// coexist, e.g. one that records validation rules and one that records transformations.
//
// Collections may be built directly as struct literals, in which case nothing checks
// that they are total.  NewFactories builds a collection and checks it.
type Factories struct {
	Boolean PropertyDecoratorFactory[BooleanOptions]
	Date    PropertyDecoratorFactory[DateOptions]
	Enum    PropertyDecoratorFactory[EnumOptions]
	Integer PropertyDecoratorFactory[IntegerOptions]
	Length  PropertyDecoratorFactory[LengthOptions]
	Nested  PropertyDecoratorFactory[NestedOptions]
	Number  PropertyDecoratorFactory[NumberOptions]
	String  PropertyDecoratorFactory[StringOptions]
	UUID    PropertyDecoratorFactory[UUIDOptions]
}

// Validate checks that this collection is total.  Each missing kind results in a
// *MissingFactoryError, and all such errors are aggregated.
func (f Factories) Validate() (err error) {
	for _, k := range kinds {
		if k.missing(f) {
			err = multierr.Append(err, &MissingFactoryError{Kind: k.String()})
		}
	}

	return
}

// SelectPropertyDecoratorFactory returns the factory registered for the given kind.
// The exact value stored in the collection is returned.  No existence check is done:
// if the collection has no factory for this kind, the result is nil.  The zero Name
// selects nothing and also yields nil.
func SelectPropertyDecoratorFactory[O any](name Name[O], f Factories) PropertyDecoratorFactory[O] {
	if name.field == nil {
		return nil
	}

	return *name.field(&f)
}

// SelectPropertyDecoratorFactories applies SelectPropertyDecoratorFactory to each collection.
// The returned slice has the same length and order as fs.
func SelectPropertyDecoratorFactories[O any](name Name[O], fs []Factories) []PropertyDecoratorFactory[O] {
	selected := make([]PropertyDecoratorFactory[O], 0, len(fs))
	for _, f := range fs {
		selected = append(selected, SelectPropertyDecoratorFactory(name, f))
	}

	return selected
}

// ErrNilFactory indicates that Set was passed a nil factory.
var ErrNilFactory = errors.New("a factory cannot be nil")

// NewFactories builds a collection by applying options to an empty Factories.
// The result is checked with Validate, so a collection returned with a nil error
// is guaranteed to be total.
func NewFactories(opts ...Option[Factories]) (f Factories, err error) {
	err = Options[Factories](opts).Apply(&f)
	if err == nil {
		err = f.Validate()
	}

	return
}

// Set returns an option that sets the factory for a single kind.
func Set[O any](name Name[O], factory PropertyDecoratorFactory[O]) Option[Factories] {
	if factory == nil {
		return InvalidOption[Factories](&SetError{Kind: name.String(), Err: ErrNilFactory})
	}

	return AsOption[Factories](func(f *Factories) {
		name.set(f, factory)
	})
}

// Fill returns an option that copies every factory set in src, overwriting what
// is already present.  Kinds missing from src are left alone, which allows a
// partial collection to extend or override a complete one.
func Fill(src Factories) Option[Factories] {
	return AsOption[Factories](func(f *Factories) {
		for _, k := range kinds {
			k.fill(f, src)
		}
	})
}

// NopDefaults returns an option that sets every missing factory to Nop.  Use
// this last when only some kinds are of interest.
func NopDefaults() Option[Factories] {
	return AsOption[Factories](func(f *Factories) {
		for _, k := range kinds {
			k.nop(f)
		}
	})
}
