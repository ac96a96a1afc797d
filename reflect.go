// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"reflect"
	"strings"
)

// TargetOf determines the target type for decoration.  If v is already a reflect.Type,
// that type is used.  If v is a reflect.Value, its type is used.  Otherwise, the
// result of reflect.TypeOf(v) is used.
//
// Pointer types are dereferenced to any depth, so TargetOf(User{}), TargetOf(&User{}),
// and TargetOf((*User)(nil)) all produce the same type.
func TargetOf(v interface{}) reflect.Type {
	var t reflect.Type
	switch vt := v.(type) {
	case reflect.Type:
		t = vt

	case reflect.Value:
		t = vt.Type()

	default:
		t = reflect.TypeOf(v)
	}

	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

// TagKey returns the key a struct field is known by under the given tag, e.g. "json".
// The first comma-separated element of the tag is used.  If the tag is absent, empty,
// or "-", the field's name is returned.
func TagKey(f reflect.StructField, tagName string) string {
	if len(tagName) > 0 {
		tag := f.Tag.Get(tagName)
		if i := strings.IndexByte(tag, ','); i >= 0 {
			tag = tag[:i]
		}

		if len(tag) > 0 && tag != "-" {
			return tag
		}
	}

	return f.Name
}

// ResolveProperty finds the exported struct field of target that a configured
// property name refers to.  The name is matched, in order, against:
//
//   - the exact field name
//   - the field name, ignoring case
//   - the field's key under tagName, ignoring case
//
// The field's Go name is returned, since that is how decorators identify properties.
func ResolveProperty(target reflect.Type, name, tagName string) (string, bool) {
	if target == nil || target.Kind() != reflect.Struct {
		return "", false
	}

	if f, ok := target.FieldByName(name); ok && len(f.PkgPath) == 0 {
		return f.Name, true
	}

	var byTag string
	for i := 0; i < target.NumField(); i++ {
		f := target.Field(i)
		if len(f.PkgPath) > 0 {
			continue
		}

		if strings.EqualFold(f.Name, name) {
			return f.Name, true
		}

		if len(byTag) == 0 && len(tagName) > 0 && strings.EqualFold(TagKey(f, tagName), name) {
			byTag = f.Name
		}
	}

	return byTag, len(byTag) > 0
}
