// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtotest

import (
	"reflect"
	"sync"

	"github.com/xmidt-org/arrangedto"
)

// Call is a single recorded decorator invocation.
type Call struct {
	// Tag identifies the decorator that was invoked
	Tag string

	// Target is the type the decorator was applied to
	Target reflect.Type

	// Property is the decorated property
	Property string

	// Options are the options the decorator was created with, if any
	Options interface{}
}

// Recorder keeps an ordered log of decorator invocations.  It is safe
// for concurrent use.  The zero value is ready to use.
type Recorder struct {
	lock  sync.Mutex
	calls []Call
}

func (r *Recorder) record(c Call) {
	r.lock.Lock()
	r.calls = append(r.calls, c)
	r.lock.Unlock()
}

// Decorator returns a decorator that records each of its invocations with the given tag.
func (r *Recorder) Decorator(tag string) arrangedto.PropertyDecorator {
	return func(target reflect.Type, property string) {
		r.record(Call{
			Tag:      tag,
			Target:   target,
			Property: property,
		})
	}
}

// Calls returns a copy of the recorded invocations, in order.
func (r *Recorder) Calls() []Call {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Call(nil), r.calls...)
}

// Tags returns just the tags of the recorded invocations, in order.
func (r *Recorder) Tags() (tags []string) {
	for _, c := range r.Calls() {
		tags = append(tags, c.Tag)
	}

	return
}

// Reset clears the recorded invocations.
func (r *Recorder) Reset() {
	r.lock.Lock()
	r.calls = nil
	r.lock.Unlock()
}

// Factory returns a decorator factory whose decorators record their invocations,
// along with the options they were created with.
func Factory[O any](r *Recorder, tag string) arrangedto.PropertyDecoratorFactory[O] {
	return func(o O) arrangedto.PropertyDecorator {
		return func(target reflect.Type, property string) {
			r.record(Call{
				Tag:      tag,
				Target:   target,
				Property: property,
				Options:  o,
			})
		}
	}
}

// Factories returns a complete collection that records into r.  The tag of each
// call is the kind followed by a colon and the given tag, e.g. "string:first".
func Factories(r *Recorder, tag string) arrangedto.Factories {
	return arrangedto.Factories{
		Boolean: Factory[arrangedto.BooleanOptions](r, "boolean:"+tag),
		Date:    Factory[arrangedto.DateOptions](r, "date:"+tag),
		Enum:    Factory[arrangedto.EnumOptions](r, "enum:"+tag),
		Integer: Factory[arrangedto.IntegerOptions](r, "integer:"+tag),
		Length:  Factory[arrangedto.LengthOptions](r, "length:"+tag),
		Nested:  Factory[arrangedto.NestedOptions](r, "nested:"+tag),
		Number:  Factory[arrangedto.NumberOptions](r, "number:"+tag),
		String:  Factory[arrangedto.StringOptions](r, "string:"+tag),
		UUID:    Factory[arrangedto.UUIDOptions](r, "uuid:"+tag),
	}
}
