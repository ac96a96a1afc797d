// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtotransform

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/xmidt-org/arrangedto"
)

// NewFactories produces the transformation collection.  The enum and length kinds
// have nothing to convert, so those decorators do nothing.
func NewFactories(r *arrangedto.Registry[Rule]) arrangedto.Factories {
	return arrangedto.Factories{
		Boolean: factory(r, arrangedto.Boolean, convertBoolean),
		Date:    factory(r, arrangedto.Date, convertDate),
		Enum:    arrangedto.Nop[arrangedto.EnumOptions](),
		Integer: factory(r, arrangedto.Integer, convertInteger),
		Length:  arrangedto.Nop[arrangedto.LengthOptions](),
		Nested:  factory(r, arrangedto.Nested, convertNested),
		Number:  factory(r, arrangedto.Number, convertNumber),
		String:  factory(r, arrangedto.String, convertString),
		UUID:    factory(r, arrangedto.UUID, convertUUID),
	}
}

func factory[O arrangedto.KindOptions](r *arrangedto.Registry[Rule], name arrangedto.Name[O], newFunc func(O) Func) arrangedto.PropertyDecoratorFactory[O] {
	return func(o O) arrangedto.PropertyDecorator {
		return r.Record(Rule{
			Kind:    name.String(),
			Options: o.Common(),
			Convert: newFunc(o),
		})
	}
}

func unsupported(v interface{}) error {
	return fmt.Errorf("%w of type %T", ErrUnsupported, v)
}

func convertBoolean(arrangedto.BooleanOptions) Func {
	return func(_ Context, v interface{}) (interface{}, error) {
		switch vt := v.(type) {
		case bool:
			return vt, nil

		case string:
			return strconv.ParseBool(strings.TrimSpace(vt))

		default:
			return nil, unsupported(v)
		}
	}
}

func convertDate(o arrangedto.DateOptions) Func {
	layout := o.LayoutOrDefault()
	return func(_ Context, v interface{}) (interface{}, error) {
		switch vt := v.(type) {
		case time.Time, *time.Time:
			return vt, nil

		case string:
			return time.Parse(layout, strings.TrimSpace(vt))

		default:
			return nil, unsupported(v)
		}
	}
}

func convertInteger(arrangedto.IntegerOptions) Func {
	return func(_ Context, v interface{}) (interface{}, error) {
		switch vt := v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return vt, nil

		case float32:
			return integral(float64(vt))

		case float64:
			return integral(vt)

		case json.Number:
			return vt.Int64()

		case string:
			return strconv.ParseInt(strings.TrimSpace(vt), 10, 64)

		default:
			return nil, unsupported(v)
		}
	}
}

func integral(f float64) (interface{}, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: %g is not an integer", ErrUnsupported, f)
	}

	return int64(f), nil
}

func convertNested(arrangedto.NestedOptions) Func {
	return func(c Context, v interface{}) (interface{}, error) {
		m, ok := v.(map[string]interface{})
		if !ok || c.Type == nil || c.Type.Kind() != reflect.Struct {
			return v, nil
		}

		return transformStruct(c, m)
	}
}

func convertNumber(arrangedto.NumberOptions) Func {
	return func(_ Context, v interface{}) (interface{}, error) {
		switch vt := v.(type) {
		case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return vt, nil

		case json.Number:
			return vt.Float64()

		case string:
			return strconv.ParseFloat(strings.TrimSpace(vt), 64)

		default:
			return nil, unsupported(v)
		}
	}
}

func convertString(o arrangedto.StringOptions) Func {
	return func(_ Context, v interface{}) (interface{}, error) {
		if s, ok := v.(string); ok && o.Trim {
			return strings.TrimSpace(s), nil
		}

		return v, nil
	}
}

func convertUUID(arrangedto.UUIDOptions) Func {
	return func(_ Context, v interface{}) (interface{}, error) {
		if s, ok := v.(string); ok {
			return strings.ToLower(strings.TrimSpace(s)), nil
		}

		return v, nil
	}
}
