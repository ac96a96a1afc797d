// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtofx

import (
	"errors"

	"github.com/spf13/viper"
	"github.com/xmidt-org/arrangedto"
	"go.uber.org/fx"
)

var (
	// ErrNilViper is returned to the fx.App when the externally supplied Viper
	// instance is nil
	ErrNilViper = errors.New("the viper instance cannot be nil")
)

// Unmarshaler is the source of externally configured declarations.  Declare requires
// an unnamed fx.App component that implements this interface.
type Unmarshaler interface {
	// Declarations reads the declarations at a configuration key.  A key that
	// is not set yields no declarations and no error.
	Declarations(key string) (arrangedto.Declarations, error)
}

// ViperUnmarshaler is the standard Unmarshaler, which reads declarations from a Viper instance.
type ViperUnmarshaler struct {
	// Viper is the required Viper instance that holds the declarations
	Viper *viper.Viper

	// Options is the optional slice of viper.DecoderConfigOptions used when
	// decoding the declarations themselves
	Options []viper.DecoderConfigOption

	// Printer is the required fx.Printer component to which informational messages are written.
	// ForViper ensures this field is set even if no fx.Printer component is present.
	Printer fx.Printer
}

// Declarations implements Unmarshaler
func (vu ViperUnmarshaler) Declarations(key string) (ds arrangedto.Declarations, err error) {
	if !vu.Viper.IsSet(key) {
		vu.Printer.Printf("DECLARATIONS\t[%s] => none", key)
		return
	}

	err = vu.Viper.UnmarshalKey(key, &ds, vu.Options...)
	if err == nil {
		vu.Printer.Printf("DECLARATIONS\t[%s] => %d properties", key, len(ds))
	}

	return
}

// ViperUnmarshalerIn is the set of dependencies required to build a ViperUnmarshaler.
// The viper instance itself is supplied externally.
type ViperUnmarshalerIn struct {
	fx.In

	// Options is the optional slice of viper.DecoderConfigOption that will be
	// applied whenever declarations are read
	Options []viper.DecoderConfigOption `optional:"true"`

	// Printer is an optional fx.Printer component.  If not supplied, DefaultPrinter() is used.
	Printer fx.Printer `optional:"true"`
}

// ForViper provides an Unmarshaler that reads declarations from an externally supplied
// viper instance.  The viper instance itself is not made available as a component.
//
// The decoder options used are those passed to this function followed by any
// []viper.DecoderConfigOption component.
func ForViper(v *viper.Viper, o ...viper.DecoderConfigOption) fx.Option {
	if v == nil {
		return fx.Error(ErrNilViper)
	}

	return fx.Provide(
		func(in ViperUnmarshalerIn) Unmarshaler {
			return ViperUnmarshaler{
				Viper: v,
				Options: append(
					append([]viper.DecoderConfigOption{}, o...),
					in.Options...,
				),
				Printer: NewModulePrinter(Module, in.Printer),
			}
		},
	)
}
