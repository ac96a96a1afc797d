// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtofx

import (
	"fmt"
	"reflect"

	"github.com/xmidt-org/arrangedto"
	"github.com/xmidt-org/arrangedto/dtoschema"
	"github.com/xmidt-org/arrangedto/dtotransform"
	"github.com/xmidt-org/arrangedto/dtovalidate"
	"go.uber.org/fx"
	"go.uber.org/multierr"
)

const (
	// ValidateCollection is the component name of the dtovalidate collection provided by Standard.
	ValidateCollection = "validate"

	// TransformCollection is the component name of the dtotransform collection provided by Standard.
	TransformCollection = "transform"

	// SchemaCollection is the component name of the dtoschema collection provided by Standard.
	SchemaCollection = "schema"
)

// Collections is the ordered set of decorator collections that declarations are
// applied against.  The order determines the order in which each collection's
// decorators run for a property.
type Collections []arrangedto.Factories

var (
	factoriesType   = reflect.TypeOf(arrangedto.Factories{})
	collectionsType = reflect.TypeOf(Collections{})
	printerType     = reflect.TypeOf((*fx.Printer)(nil)).Elem()
)

// CollectionError indicates that a named collection could not be used.
type CollectionError struct {
	Name string
	Err  error
}

func (ce *CollectionError) Error() string {
	return fmt.Sprintf("COLLECTION ERROR: [%s] %s", ce.Name, ce.Err)
}

func (ce *CollectionError) Unwrap() error {
	return ce.Err
}

// ProvideFactories emits the result of a constructor as an arrangedto.Factories component
// with the given name.  The constructor may accept any dependencies, and it must return
// an arrangedto.Factories, optionally with an error.
func ProvideFactories(name string, constructor interface{}) fx.Option {
	return fx.Provide(
		fx.Annotated{
			Name:   name,
			Target: constructor,
		},
	)
}

// collectionsIn builds the fx.In struct that ProvideCollections injects.  The named
// collections occupy fields 1 through len(names), followed by an optional fx.Printer.
func collectionsIn(names []string) reflect.Type {
	s := Struct{}.In()
	for _, name := range names {
		s = s.Append(Field{
			Name: name,
			Type: factoriesType,
		})
	}

	return s.Append(Field{
		Type:     printerType,
		Optional: true,
	}).Of()
}

// ProvideCollections gathers the arrangedto.Factories components with the given names,
// in the given order, into a Collections component.  Each collection must be total.
//
// Unlike an fx value group, this preserves order, which determines the order that
// decorators run in.
func ProvideCollections(names ...string) fx.Option {
	names = append([]string(nil), names...)
	in := collectionsIn(names)
	ctor := reflect.MakeFunc(
		reflect.FuncOf(
			[]reflect.Type{in},
			[]reflect.Type{collectionsType, errorType},
			false,
		),
		func(args []reflect.Value) []reflect.Value {
			var (
				err error
				c   = make(Collections, 0, len(names))
			)

			for i, name := range names {
				f := args[0].Field(i + 1).Interface().(arrangedto.Factories)
				if validateErr := f.Validate(); validateErr != nil {
					err = multierr.Append(err, &CollectionError{Name: name, Err: validateErr})
				}

				c = append(c, f)
			}

			p, _ := args[0].Field(len(names) + 1).Interface().(fx.Printer)
			NewModulePrinter(Module, p).Printf("COLLECTIONS => %q", names)
			return []reflect.Value{
				reflect.ValueOf(c),
				errorValue(err),
			}
		},
	)

	return fx.Provide(ctor.Interface())
}

// Standard provides the registries for validation, transformation, and documentation
// rules, the three corresponding named collections, and a Collections component
// holding them in that order.
func Standard() fx.Option {
	return fx.Options(
		fx.Provide(
			arrangedto.NewRegistry[dtovalidate.Rule],
			arrangedto.NewRegistry[dtotransform.Rule],
			arrangedto.NewRegistry[dtoschema.Rule],
		),
		ProvideFactories(ValidateCollection, dtovalidate.NewFactories),
		ProvideFactories(TransformCollection, dtotransform.NewFactories),
		ProvideFactories(SchemaCollection, dtoschema.NewFactories),
		ProvideCollections(ValidateCollection, TransformCollection, SchemaCollection),
	)
}
