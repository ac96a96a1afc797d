// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"reflect"
	"sync"
	"time"
)

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type User struct {
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Age      int       `json:"age"`
	Birthday time.Time `json:"birthday"`
	Address  *Address  `json:"address"`
	Tags     []string  `json:"-"`

	hidden string
}

// call is a single recorded decorator invocation
type call struct {
	Tag      string
	Target   reflect.Type
	Property string
}

// callLog captures decorator invocations in order
type callLog struct {
	lock  sync.Mutex
	calls []call
}

func (cl *callLog) decorator(tag string) PropertyDecorator {
	return func(target reflect.Type, property string) {
		cl.lock.Lock()
		defer cl.lock.Unlock()
		cl.calls = append(cl.calls, call{Tag: tag, Target: target, Property: property})
	}
}

func (cl *callLog) tags() (tags []string) {
	cl.lock.Lock()
	defer cl.lock.Unlock()
	for _, c := range cl.calls {
		tags = append(tags, c.Tag)
	}

	return
}

// lengthFactory records the tag along with the options it was invoked with
func lengthFactory(cl *callLog, tag string, seen *[]LengthOptions) PropertyDecoratorFactory[LengthOptions] {
	return func(o LengthOptions) PropertyDecorator {
		if seen != nil {
			*seen = append(*seen, o)
		}

		return cl.decorator(tag)
	}
}

// taggedFactories produces a total collection where every decorator records
// the given tag, prefixed with the kind
func taggedFactories(cl *callLog, tag string) Factories {
	return Factories{
		Boolean: func(BooleanOptions) PropertyDecorator { return cl.decorator("boolean:" + tag) },
		Date:    func(DateOptions) PropertyDecorator { return cl.decorator("date:" + tag) },
		Enum:    func(EnumOptions) PropertyDecorator { return cl.decorator("enum:" + tag) },
		Integer: func(IntegerOptions) PropertyDecorator { return cl.decorator("integer:" + tag) },
		Length:  func(LengthOptions) PropertyDecorator { return cl.decorator("length:" + tag) },
		Nested:  func(NestedOptions) PropertyDecorator { return cl.decorator("nested:" + tag) },
		Number:  func(NumberOptions) PropertyDecorator { return cl.decorator("number:" + tag) },
		String:  func(StringOptions) PropertyDecorator { return cl.decorator("string:" + tag) },
		UUID:    func(UUIDOptions) PropertyDecorator { return cl.decorator("uuid:" + tag) },
	}
}

// funcPointer is used to test the identity of stored function values
func funcPointer(f interface{}) uintptr {
	return reflect.ValueOf(f).Pointer()
}
