// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"reflect"
	"sort"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Declaration is an externally configured decorator for a property.  Typically,
// declarations are unmarshaled from configuration:
//
//	user:
//	  name:
//	    - kind: string
//	      options:
//	        trim: true
//	    - kind: length
//	      options:
//	        min: 1
//	        max: 64
type Declaration struct {
	// Kind is the identifier of a decorator kind, as returned by Name.String
	Kind string

	// Options is the raw options value, decoded into the kind's options type
	Options map[string]interface{}
}

// Declarations maps property names onto the ordered declarations for each property.
// Property names are resolved against a target type with ResolveProperty, so they
// may use the Go field name in any case or the field's json name.
type Declarations map[string][]Declaration

// PropertyDecorators pairs a resolved property with its composed decorator.
type PropertyDecorators struct {
	Property  string
	Decorator PropertyDecorator
}

// DeclarationTagName is the struct tag consulted when resolving declared property names.
const DeclarationTagName = "json"

// Properties returns the declared property names in sorted order, which is the
// order in which declarations are applied.
func (ds Declarations) Properties() []string {
	names := make([]string, 0, len(ds))
	for name := range ds {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Decorators builds one composed decorator per declared property.  For each declaration,
// the kind is looked up in the catalog, its options are decoded, and the kind's factories
// from every collection are composed and invoked.  Declarations for a property keep
// their order, and so do collections.
//
// Every collection must be total.  All problems are reported together, and if there
// are any, no decorators are returned.
func (ds Declarations) Decorators(target reflect.Type, collections []Factories, opts ...viper.DecoderConfigOption) (pds []PropertyDecorators, err error) {
	for _, c := range collections {
		err = multierr.Append(err, c.Validate())
	}

	if err != nil {
		return
	}

	for _, name := range ds.Properties() {
		property, ok := ResolveProperty(target, name, DeclarationTagName)
		if !ok {
			err = multierr.Append(err, &UnknownPropertyError{Target: target, Property: name})
			continue
		}

		var decorators []PropertyDecorator
		for _, d := range ds[name] {
			kind, ok := LookupKind(d.Kind)
			if !ok {
				err = multierr.Append(err, &UnknownKindError{Kind: d.Kind})
				continue
			}

			decorator, decodeErr := kind.Decorator(d.Options, collections, opts...)
			if decodeErr != nil {
				err = multierr.Append(err, &DeclarationError{
					Target:   target,
					Property: property,
					Kind:     kind.String(),
					Err:      decodeErr,
				})

				continue
			}

			decorators = append(decorators, decorator)
		}

		pds = append(pds, PropertyDecorators{
			Property:  property,
			Decorator: ComposePropertyDecorators(decorators),
		})
	}

	if err != nil {
		pds = nil
	}

	return
}

// Apply builds the decorators for these declarations and, if there were no errors,
// applies each one to its property of the target.  The target may be anything
// TargetOf accepts.
func (ds Declarations) Apply(target interface{}, collections []Factories, opts ...viper.DecoderConfigOption) error {
	t := TargetOf(target)
	pds, err := ds.Decorators(t, collections, opts...)
	for _, pd := range pds {
		pd.Decorator(t, pd.Property)
	}

	return err
}
