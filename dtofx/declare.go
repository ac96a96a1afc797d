// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtofx

import (
	"errors"
	"reflect"

	"github.com/spf13/viper"
	"github.com/xmidt-org/arrangedto"
	"go.uber.org/fx"
)

// ErrInvalidPrototype is returned to the fx.App when the prototype passed to
// Declare does not refer to a struct type.
var ErrInvalidPrototype = errors.New("the prototype must refer to a struct")

// DeclareIn is the set of dependencies for applying configured declarations.
type DeclareIn struct {
	fx.In

	// Unmarshaler is the required source of configuration
	Unmarshaler Unmarshaler

	// Collections are the required collections that declarations are applied against
	Collections Collections

	// Printer is an optional fx.Printer for informational messages
	Printer fx.Printer `optional:"true"`
}

// Declare reads arrangedto.Declarations from the given configuration key and applies them
// to the prototype's type using the Collections component.  The prototype may be anything
// arrangedto.TargetOf accepts.  The opts control how each declaration's options are decoded.
//
// A missing key declares nothing.  Any problem with the declarations fails the fx.App.
func Declare(key string, prototype interface{}, opts ...viper.DecoderConfigOption) fx.Option {
	target := arrangedto.TargetOf(prototype)
	if target == nil || target.Kind() != reflect.Struct {
		return fx.Error(ErrInvalidPrototype)
	}

	return fx.Invoke(
		func(in DeclareIn) error {
			ds, err := in.Unmarshaler.Declarations(key)
			if err != nil {
				return err
			}

			printDeclarations(NewModulePrinter(Module, in.Printer), key, target, ds)
			return ds.Apply(target, in.Collections, opts...)
		},
	)
}
