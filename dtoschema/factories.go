// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtoschema

import (
	"reflect"
	"time"

	"github.com/xmidt-org/arrangedto"
)

// NewFactories produces the documentation collection.
func NewFactories(r *arrangedto.Registry[Rule]) arrangedto.Factories {
	return arrangedto.Factories{
		Boolean: factory(r, arrangedto.Boolean, documentBoolean),
		Date:    factory(r, arrangedto.Date, documentDate),
		Enum:    factory(r, arrangedto.Enum, documentEnum),
		Integer: factory(r, arrangedto.Integer, documentInteger),
		Length:  factory(r, arrangedto.Length, documentLength),
		Nested:  factory(r, arrangedto.Nested, documentNested),
		Number:  factory(r, arrangedto.Number, documentNumber),
		String:  factory(r, arrangedto.String, documentString),
		UUID:    factory(r, arrangedto.UUID, documentUUID),
	}
}

func factory[O arrangedto.KindOptions](r *arrangedto.Registry[Rule], name arrangedto.Name[O], newFunc func(O) Func) arrangedto.PropertyDecoratorFactory[O] {
	return func(o O) arrangedto.PropertyDecorator {
		return r.Record(Rule{
			Kind:     name.String(),
			Options:  o.Common(),
			Document: newFunc(o),
		})
	}
}

func documentBoolean(arrangedto.BooleanOptions) Func {
	return func(_ Context, s *Schema) {
		s.Type = "boolean"
	}
}

func documentDate(o arrangedto.DateOptions) Func {
	layout := o.LayoutOrDefault()
	return func(_ Context, s *Schema) {
		s.Type = "string"
		switch layout {
		case time.RFC3339, time.RFC3339Nano:
			s.Format = "date-time"

		case "2006-01-02":
			s.Format = "date"

		default:
			s.Format = layout
		}

		if o.After != nil {
			s.FormatMinimum = o.After.Format(layout)
		}

		if o.Before != nil {
			s.FormatMaximum = o.Before.Format(layout)
		}
	}
}

func documentEnum(o arrangedto.EnumOptions) Func {
	values := append([]string(nil), o.Values...)
	return func(_ Context, s *Schema) {
		if len(s.Type) == 0 {
			s.Type = "string"
		}

		s.Enum = values
	}
}

func bound[T int64 | float64](v *T) *float64 {
	if v == nil {
		return nil
	}

	f := float64(*v)
	return &f
}

func documentInteger(o arrangedto.IntegerOptions) Func {
	return func(_ Context, s *Schema) {
		s.Type = "integer"
		s.Minimum = bound(o.Min)
		s.Maximum = bound(o.Max)
	}
}

func documentLength(o arrangedto.LengthOptions) Func {
	var minimum, maximum *int
	if o.Min > 0 {
		minimum = &o.Min
	}

	if o.Max > 0 {
		maximum = &o.Max
	}

	return func(c Context, s *Schema) {
		kind := reflect.String
		if c.Type != nil {
			kind = c.Type.Kind()
		}

		switch kind {
		case reflect.Slice, reflect.Array:
			s.Type = "array"
			s.MinItems, s.MaxItems = minimum, maximum

		case reflect.Map:
			s.Type = "object"
			s.MinProperties, s.MaxProperties = minimum, maximum

		default:
			if len(s.Type) == 0 {
				s.Type = "string"
			}

			s.MinLength, s.MaxLength = minimum, maximum
		}
	}
}

func documentNested(arrangedto.NestedOptions) Func {
	return func(c Context, s *Schema) {
		nested := document(c, c.Type)
		s.Type = nested.Type
		s.Properties = nested.Properties
		s.Required = nested.Required
	}
}

func documentNumber(o arrangedto.NumberOptions) Func {
	return func(_ Context, s *Schema) {
		s.Type = "number"
		s.Minimum = bound(o.Min)
		s.Maximum = bound(o.Max)
	}
}

func documentString(o arrangedto.StringOptions) Func {
	return func(_ Context, s *Schema) {
		s.Type = "string"
		s.Pattern = o.Pattern
	}
}

func documentUUID(arrangedto.UUIDOptions) Func {
	return func(_ Context, s *Schema) {
		s.Type = "string"
		s.Format = "uuid"
	}
}
