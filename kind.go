// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// Name identifies a decorator kind and statically binds it to that kind's options
// type O.  The set of names is closed:  the package variables in this file are the
// only valid Name values.  The zero value of Name selects no factory, and its
// Decorator method returns an *UnknownKindError.
type Name[O any] struct {
	name  string
	field func(*Factories) *PropertyDecoratorFactory[O]
}

// String returns the identifier of this kind, e.g. "length".
func (n Name[O]) String() string {
	return n.name
}

// OptionsType returns the reflection type of O.
func (n Name[O]) OptionsType() reflect.Type {
	return reflect.TypeOf((*O)(nil)).Elem()
}

// Decorator decodes raw options into this kind's options type, then composes this
// kind's factories from each collection, in order, and invokes the result with the
// decoded options.  The raw value is typically a map[string]interface{} from
// external configuration.  A nil raw value uses the zero value of O.
func (n Name[O]) Decorator(raw interface{}, collections []Factories, opts ...viper.DecoderConfigOption) (PropertyDecorator, error) {
	if n.field == nil {
		return nil, &UnknownKindError{Kind: n.name}
	}

	var o O
	if err := DecodeOptions(raw, &o, opts...); err != nil {
		return nil, err
	}

	return ComposePropertyDecoratorFactories(
		SelectPropertyDecoratorFactories(n, collections),
	)(o), nil
}

func (n Name[O]) missing(f Factories) bool {
	return *n.field(&f) == nil
}

func (n Name[O]) nop(f *Factories) {
	if slot := n.field(f); *slot == nil {
		*slot = Nop[O]()
	}
}

func (n Name[O]) fill(dst *Factories, src Factories) {
	if factory := *n.field(&src); factory != nil {
		*n.field(dst) = factory
	}
}

func (n Name[O]) set(dst *Factories, factory PropertyDecoratorFactory[O]) {
	*n.field(dst) = factory
}

// Kind is the type-erased view of a Name, used when a decorator kind is only known
// by its identifier, as with external configuration.  Only Name implements Kind.
type Kind interface {
	fmt.Stringer

	// OptionsType is the type of options this kind accepts
	OptionsType() reflect.Type

	// Decorator decodes raw options and builds the composed decorator for this
	// kind across the given collections.
	Decorator(raw interface{}, collections []Factories, opts ...viper.DecoderConfigOption) (PropertyDecorator, error)

	missing(Factories) bool
	nop(*Factories)
	fill(*Factories, Factories)
}

var (
	// Boolean is the kind for bool properties.
	Boolean = Name[BooleanOptions]{
		name:  "boolean",
		field: func(f *Factories) *PropertyDecoratorFactory[BooleanOptions] { return &f.Boolean },
	}

	// Date is the kind for time.Time properties.
	Date = Name[DateOptions]{
		name:  "date",
		field: func(f *Factories) *PropertyDecoratorFactory[DateOptions] { return &f.Date },
	}

	// Enum is the kind for properties restricted to a fixed set of values.
	Enum = Name[EnumOptions]{
		name:  "enum",
		field: func(f *Factories) *PropertyDecoratorFactory[EnumOptions] { return &f.Enum },
	}

	// Integer is the kind for signed or unsigned integer properties.
	Integer = Name[IntegerOptions]{
		name:  "integer",
		field: func(f *Factories) *PropertyDecoratorFactory[IntegerOptions] { return &f.Integer },
	}

	// Length is the kind that bounds the length of strings, slices, arrays, and maps.
	Length = Name[LengthOptions]{
		name:  "length",
		field: func(f *Factories) *PropertyDecoratorFactory[LengthOptions] { return &f.Length },
	}

	// Nested is the kind for struct-valued properties that are themselves decorated.
	Nested = Name[NestedOptions]{
		name:  "nested",
		field: func(f *Factories) *PropertyDecoratorFactory[NestedOptions] { return &f.Nested },
	}

	// Number is the kind for numeric properties.
	Number = Name[NumberOptions]{
		name:  "number",
		field: func(f *Factories) *PropertyDecoratorFactory[NumberOptions] { return &f.Number },
	}

	// String is the kind for string properties.
	String = Name[StringOptions]{
		name:  "string",
		field: func(f *Factories) *PropertyDecoratorFactory[StringOptions] { return &f.String },
	}

	// UUID is the kind for textual UUID properties.
	UUID = Name[UUIDOptions]{
		name:  "uuid",
		field: func(f *Factories) *PropertyDecoratorFactory[UUIDOptions] { return &f.UUID },
	}
)

// kinds is the fixed catalog, in the same order as the fields of Factories
var kinds = []Kind{
	Boolean,
	Date,
	Enum,
	Integer,
	Length,
	Nested,
	Number,
	String,
	UUID,
}

// Kinds returns the complete catalog of decorator kinds.  The returned slice is a
// distinct copy.
func Kinds() []Kind {
	return append([]Kind{}, kinds...)
}

// LookupKind finds a kind by its identifier.  The comparison is case-insensitive,
// since configuration sources like viper normalize keys and values.
func LookupKind(name string) (Kind, bool) {
	for _, k := range kinds {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}

	return nil, false
}
