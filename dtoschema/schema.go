// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtoschema

import (
	"reflect"

	"github.com/xmidt-org/arrangedto"
	"gopkg.in/yaml.v3"
)

// Schema describes a DTO or one of its properties.  The fields follow the
// OpenAPI schema object.
type Schema struct {
	Type          string             `json:"type,omitempty" yaml:"type,omitempty"`
	Format        string             `json:"format,omitempty" yaml:"format,omitempty"`
	Description   string             `json:"description,omitempty" yaml:"description,omitempty"`
	Nullable      bool               `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Pattern       string             `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Enum          []string           `json:"enum,omitempty" yaml:"enum,omitempty"`
	Minimum       *float64           `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum       *float64           `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	FormatMinimum string             `json:"formatMinimum,omitempty" yaml:"formatMinimum,omitempty"`
	FormatMaximum string             `json:"formatMaximum,omitempty" yaml:"formatMaximum,omitempty"`
	MinLength     *int               `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength     *int               `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinItems      *int               `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems      *int               `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	MinProperties *int               `json:"minProperties,omitempty" yaml:"minProperties,omitempty"`
	MaxProperties *int               `json:"maxProperties,omitempty" yaml:"maxProperties,omitempty"`
	Items         *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	Properties    map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required      []string           `json:"required,omitempty" yaml:"required,omitempty"`
}

// Context is the state passed to a documentation Func.
type Context struct {
	// Registry holds the rules being documented
	Registry *arrangedto.Registry[Rule]

	// Type is the Go type of the value being documented, with pointers removed.
	// For rules with the Each option, this is the element type.
	Type reflect.Type

	visiting map[reflect.Type]bool
}

// Func documents a single decorator by modifying a property's schema.
type Func func(Context, *Schema)

// Rule is what the decorators in this package record in a Registry.
type Rule struct {
	// Kind is the decorator kind that produced this rule
	Kind string

	// Options are the settings shared by all kinds
	Options arrangedto.PropertyOptions

	// Document applies this rule to a schema
	Document Func
}

// Document produces the object schema for a prototype's type from the rules recorded
// in a Registry.  Properties are named by their json keys.  Properties that are not
// optional are listed as required in the order they were first decorated.
//
// Nested types are documented in place.  A type that refers back to itself is
// documented as a bare object at the point of recursion.
func Document(r *arrangedto.Registry[Rule], prototype interface{}) *Schema {
	return document(
		Context{
			Registry: r,
			visiting: make(map[reflect.Type]bool),
		},
		arrangedto.TargetOf(prototype),
	)
}

// YAML renders a schema with gopkg.in/yaml.v3.
func YAML(s *Schema) ([]byte, error) {
	return yaml.Marshal(s)
}

func elementType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

func document(c Context, t reflect.Type) *Schema {
	s := &Schema{Type: "object"}
	if t == nil || t.Kind() != reflect.Struct || c.visiting[t] {
		return s
	}

	c.visiting[t] = true
	defer delete(c.visiting, t)

	c.Registry.Visit(t, func(property string, rules []Rule) bool {
		var (
			name     = property
			ps       = new(Schema)
			required = true
			pc       = c
		)

		if f, ok := t.FieldByName(property); ok {
			name = arrangedto.TagKey(f, arrangedto.DeclarationTagName)
			pc.Type = elementType(f.Type)
		}

		for _, rule := range rules {
			target, rc := ps, pc
			if rule.Options.Each {
				ps.Type = "array"
				if ps.Items == nil {
					ps.Items = new(Schema)
				}

				target = ps.Items
				if rc.Type != nil && (rc.Type.Kind() == reflect.Slice || rc.Type.Kind() == reflect.Array) {
					rc.Type = elementType(rc.Type.Elem())
				}
			}

			rule.Document(rc, target)
			if len(rule.Options.Description) > 0 {
				ps.Description = rule.Options.Description
			}

			ps.Nullable = ps.Nullable || rule.Options.Nullable
			required = required && !rule.Options.Optional
		}

		if s.Properties == nil {
			s.Properties = make(map[string]*Schema)
		}

		s.Properties[name] = ps
		if required {
			s.Required = append(s.Required, name)
		}

		return true
	})

	return s
}
