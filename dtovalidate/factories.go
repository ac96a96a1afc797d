// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtovalidate

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xmidt-org/arrangedto"
)

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

// NewFactories produces the validation collection.  Each decorator from this
// collection records a single Rule in the given Registry.
func NewFactories(r *arrangedto.Registry[Rule]) arrangedto.Factories {
	return arrangedto.Factories{
		Boolean: factory(r, arrangedto.Boolean, checkBoolean),
		Date:    factory(r, arrangedto.Date, checkDate),
		Enum:    factory(r, arrangedto.Enum, checkEnum),
		Integer: factory(r, arrangedto.Integer, checkInteger),
		Length:  factory(r, arrangedto.Length, checkLength),
		Nested:  factory(r, arrangedto.Nested, checkNested),
		Number:  factory(r, arrangedto.Number, checkNumber),
		String:  factory(r, arrangedto.String, checkString),
		UUID:    factory(r, arrangedto.UUID, checkUUID),
	}
}

func factory[O arrangedto.KindOptions](r *arrangedto.Registry[Rule], name arrangedto.Name[O], newCheck func(O) Check) arrangedto.PropertyDecoratorFactory[O] {
	return func(o O) arrangedto.PropertyDecorator {
		return r.Record(Rule{
			Kind:    name.String(),
			Options: o.Common(),
			Check:   newCheck(o),
		})
	}
}

func typeError(v reflect.Value) error {
	return fmt.Errorf("%w: %s", ErrType, v.Type())
}

func checkBoolean(arrangedto.BooleanOptions) Check {
	return func(_ Context, v reflect.Value) error {
		if v.Kind() != reflect.Bool {
			return typeError(v)
		}

		return nil
	}
}

func checkDate(o arrangedto.DateOptions) Check {
	layout := o.LayoutOrDefault()
	return func(_ Context, v reflect.Value) error {
		var t time.Time
		switch {
		case v.Type() == timeType && v.CanInterface():
			t = v.Interface().(time.Time)

		case v.Kind() == reflect.String:
			var err error
			if t, err = time.Parse(layout, v.String()); err != nil {
				return fmt.Errorf("%w: %s", ErrType, err)
			}

		default:
			return typeError(v)
		}

		if o.After != nil && t.Before(*o.After) {
			return fmt.Errorf("%w: %s is before %s", ErrRange, t.Format(layout), o.After.Format(layout))
		}

		if o.Before != nil && t.After(*o.Before) {
			return fmt.Errorf("%w: %s is after %s", ErrRange, t.Format(layout), o.Before.Format(layout))
		}

		return nil
	}
}

// text returns the textual form of a value used for enum comparisons.
func text(v reflect.Value) (string, bool) {
	if v.CanInterface() {
		switch t := v.Interface().(type) {
		case encoding.TextMarshaler:
			b, err := t.MarshalText()
			return string(b), err == nil

		case fmt.Stringer:
			return t.String(), true
		}
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true

	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true

	default:
		return "", false
	}
}

func checkEnum(o arrangedto.EnumOptions) Check {
	allowed := make(map[string]bool, len(o.Values))
	for _, value := range o.Values {
		allowed[value] = true
	}

	return func(_ Context, v reflect.Value) error {
		s, ok := text(v)
		switch {
		case !ok:
			return typeError(v)

		case !allowed[s]:
			return fmt.Errorf("%w: %q is not one of %q", ErrEnum, s, o.Values)

		default:
			return nil
		}
	}
}

func checkInteger(o arrangedto.IntegerOptions) Check {
	return func(_ Context, v reflect.Value) error {
		var (
			i         int64
			overflows bool
		)

		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i = v.Int()

		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if u := v.Uint(); u > math.MaxInt64 {
				overflows = true
			} else {
				i = int64(u)
			}

		default:
			return typeError(v)
		}

		// an overflowing uint is above every int64 bound
		if o.Min != nil && !overflows && i < *o.Min {
			return fmt.Errorf("%w: %d is less than %d", ErrRange, i, *o.Min)
		}

		if o.Max != nil && (overflows || i > *o.Max) {
			s, _ := text(v)
			return fmt.Errorf("%w: %s is greater than %d", ErrRange, s, *o.Max)
		}

		return nil
	}
}

func checkLength(o arrangedto.LengthOptions) Check {
	return func(_ Context, v reflect.Value) error {
		var n int
		switch v.Kind() {
		case reflect.String:
			n = utf8.RuneCountInString(v.String())

		case reflect.Slice, reflect.Array, reflect.Map:
			n = v.Len()

		default:
			return typeError(v)
		}

		if n < o.Min {
			return fmt.Errorf("%w: %d is shorter than %d", ErrLength, n, o.Min)
		}

		if o.Max > 0 && n > o.Max {
			return fmt.Errorf("%w: %d is longer than %d", ErrLength, n, o.Max)
		}

		return nil
	}
}

func checkNested(arrangedto.NestedOptions) Check {
	return func(c Context, v reflect.Value) error {
		if v.Kind() != reflect.Struct {
			return typeError(v)
		}

		return validateStruct(c, v)
	}
}

func checkNumber(o arrangedto.NumberOptions) Check {
	return func(_ Context, v reflect.Value) error {
		var f float64
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(v.Int())

		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			f = float64(v.Uint())

		case reflect.Float32, reflect.Float64:
			f = v.Float()

		default:
			return typeError(v)
		}

		if o.Min != nil && f < *o.Min {
			return fmt.Errorf("%w: %g is less than %g", ErrRange, f, *o.Min)
		}

		if o.Max != nil && f > *o.Max {
			return fmt.Errorf("%w: %g is greater than %g", ErrRange, f, *o.Max)
		}

		return nil
	}
}

func checkString(o arrangedto.StringOptions) Check {
	var (
		pattern    *regexp.Regexp
		patternErr error
	)

	if len(o.Pattern) > 0 {
		pattern, patternErr = regexp.Compile(o.Pattern)
	}

	return func(_ Context, v reflect.Value) error {
		switch {
		case v.Kind() != reflect.String:
			return typeError(v)

		case patternErr != nil:
			return fmt.Errorf("%w: %s", ErrPattern, patternErr)

		case pattern != nil && !pattern.MatchString(v.String()):
			return fmt.Errorf("%w: %q does not match %s", ErrPattern, v.String(), o.Pattern)

		default:
			return nil
		}
	}
}

func checkUUID(o arrangedto.UUIDOptions) Check {
	return func(_ Context, v reflect.Value) error {
		var id uuid.UUID
		switch {
		case v.Type() == uuidType && v.CanInterface():
			id = v.Interface().(uuid.UUID)

		case v.Kind() == reflect.String:
			var err error
			if id, err = uuid.Parse(v.String()); err != nil {
				return fmt.Errorf("%w: %s", ErrUUID, err)
			}

		default:
			return typeError(v)
		}

		if o.Version > 0 && id.Version() != uuid.Version(o.Version) {
			return fmt.Errorf("%w: %s is version %d, not %d", ErrUUID, id, id.Version(), o.Version)
		}

		return nil
	}
}
