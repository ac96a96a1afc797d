// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"reflect"
	"sync"
)

// properties holds the rules for a single target type.  The order slice
// records properties in the order they were first decorated.
type properties[R any] struct {
	order []string
	rules map[string][]R
}

// Registry is explicit metadata about decorated properties.  Each (target, property)
// pair maps to an ordered list of rules of type R.  Decorators produced by a
// factory collection typically record their rules here, and consumers such as a
// validator read them back.
//
// A Registry is safe for concurrent use.  The zero value is not usable; use NewRegistry.
type Registry[R any] struct {
	lock    sync.RWMutex
	order   []reflect.Type
	targets map[reflect.Type]*properties[R]
}

// NewRegistry creates an empty Registry.
func NewRegistry[R any]() *Registry[R] {
	return &Registry[R]{
		targets: make(map[reflect.Type]*properties[R]),
	}
}

// Add appends a rule for the given target and property.
func (r *Registry[R]) Add(target reflect.Type, property string, rule R) {
	r.lock.Lock()
	defer r.lock.Unlock()

	p, ok := r.targets[target]
	if !ok {
		p = &properties[R]{
			rules: make(map[string][]R),
		}

		r.targets[target] = p
		r.order = append(r.order, target)
	}

	if _, ok := p.rules[property]; !ok {
		p.order = append(p.order, property)
	}

	p.rules[property] = append(p.rules[property], rule)
}

// Record returns a PropertyDecorator that adds the given rule to this Registry
// for whatever target and property it is applied to.
func (r *Registry[R]) Record(rule R) PropertyDecorator {
	return func(target reflect.Type, property string) {
		r.Add(target, property, rule)
	}
}

// Rules returns a copy of the rules for a target and property, in the order
// they were added.
func (r *Registry[R]) Rules(target reflect.Type, property string) []R {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if p, ok := r.targets[target]; ok {
		return append([]R(nil), p.rules[property]...)
	}

	return nil
}

// Properties returns the decorated properties of a target, in the order
// each was first decorated.
func (r *Registry[R]) Properties(target reflect.Type) []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if p, ok := r.targets[target]; ok {
		return append([]string(nil), p.order...)
	}

	return nil
}

// Targets returns every type that has at least one decorated property,
// in the order each was first decorated.
func (r *Registry[R]) Targets() []reflect.Type {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return append([]reflect.Type(nil), r.order...)
}

// Len returns the number of targets in this Registry.
func (r *Registry[R]) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.order)
}

// PropertyVisitor is the callback for Visit.  Returning false halts visitation.
type PropertyVisitor[R any] func(property string, rules []R) bool

// Visit invokes the visitor for each decorated property of a target, in order.
// The visitor operates on a snapshot, so it may safely use this Registry,
// including adding rules.
func (r *Registry[R]) Visit(target reflect.Type, v PropertyVisitor[R]) {
	for _, property := range r.Properties(target) {
		if !v(property, r.Rules(target, property)) {
			return
		}
	}
}
