// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtofx

import (
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/fx"
)

var (
	inType    = reflect.TypeOf(fx.In{})
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// typeOf turns v into a reflect.Type.  If v is already a reflect.Type, it is returned
// as is.  If v is a reflect.Value, v.Type() is returned.  Otherwise, the result of
// reflect.TypeOf(v) is returned.
func typeOf(v interface{}) reflect.Type {
	switch vt := v.(type) {
	case reflect.Type:
		return vt

	case reflect.Value:
		return vt.Type()

	default:
		return reflect.TypeOf(v)
	}
}

// errorValue produces a reflect.Value of type error, which reflect.MakeFunc requires
// even for a nil error.
func errorValue(err error) reflect.Value {
	ptr := reflect.New(errorType)
	if err != nil {
		ptr.Elem().Set(reflect.ValueOf(err))
	}

	return ptr.Elem()
}

// Field describes a single injected dependency as part of an
// enclosing struct.
type Field struct {
	// Name is the name of the component.  If set, Group is ignored.
	Name string

	// Group is the value group for this component.  Not used if Name is set.
	// The struct field will be a slice of Type.
	Group string

	// Optional indicates an optional component
	Optional bool

	// Type is the type for this component.  This may be a reflect.Type, a reflect.Value,
	// or a prototype value.
	Type interface{}
}

// Struct is a slice of reflect.StructFields that simplifies dynamically creating
// structs that participate in dependency injection.
type Struct []reflect.StructField

// In appends an anonymous (embedded) fx.In field.  Clients must ensure that
// this method is called at most once.
func (s Struct) In() Struct {
	return append(s, reflect.StructField{
		Name:      "In",
		Anonymous: true,
		Type:      inType,
	})
}

// Append adds more dependencies to this sequence of fields.  Field names are
// generated from each field's position, so the i-th struct field is named "Fi".
func (s Struct) Append(more ...Field) Struct {
	var (
		b strings.Builder
		n []byte
	)

	for _, nf := range more {
		var sf reflect.StructField
		b.Reset()

		switch {
		case len(nf.Name) > 0:
			b.WriteString(`name:"`)
			b.WriteString(nf.Name)
			b.WriteString(`"`)
			sf.Type = typeOf(nf.Type)

		case len(nf.Group) > 0:
			b.WriteString(`group:"`)
			b.WriteString(nf.Group)
			b.WriteString(`"`)
			sf.Type = reflect.SliceOf(typeOf(nf.Type))

		default:
			sf.Type = typeOf(nf.Type)
		}

		if nf.Optional {
			if b.Len() > 0 {
				b.WriteRune(' ')
			}

			b.WriteString(`optional:"true"`)
		}

		sf.Tag = reflect.StructTag(b.String())
		b.Reset()
		b.WriteRune('F')
		n = strconv.AppendInt(n[:0], int64(len(s)), 10)
		b.Write(n)

		sf.Name = b.String()
		s = append(s, sf)
	}

	return s
}

// Of returns the struct type with the current set of fields
func (s Struct) Of() reflect.Type {
	return reflect.StructOf(s)
}
