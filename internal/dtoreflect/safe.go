// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtoreflect

import "reflect"

// Safe returns candidate unless it is invalid or nil, in which case def is returned.
// Used to default optional strategies, e.g. error encoders or printers:
//
//	var p fx.Printer // optional, may be unset
//	Safe[fx.Printer](p, DefaultPrinter())
//
// Types that can never be nil, such as ints or structs, always yield the candidate.
func Safe[T any](candidate, def T) T {
	cv := reflect.ValueOf(candidate)
	if !cv.IsValid() {
		return def
	}

	switch cv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		if cv.IsNil() {
			return def
		}
	}

	return candidate
}
