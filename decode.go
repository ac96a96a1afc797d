// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"encoding"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DecodeOptions decodes a raw options value, usually a map from external configuration,
// into out, which must be a pointer to a kind's options type.
//
// By default, DefaultDecodeHooks is used and unused keys are errors, so a misspelled
// option does not go unnoticed.  The opts are applied afterward and can change either
// default, e.g. ErrorUnused(false).
func DecodeOptions(raw, out interface{}, opts ...viper.DecoderConfigOption) error {
	dc := mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	}

	DefaultDecodeHooks(&dc)
	Merge(opts)(&dc)

	d, err := mapstructure.NewDecoder(&dc)
	if err == nil {
		err = d.Decode(raw)
	}

	return err
}

// ErrorUnused sets the DecoderConfig.ErrorUnused flag.
func ErrorUnused(f bool) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = f
	}
}

// Exact is a synonym for ErrorUnused(true).
func Exact(dc *mapstructure.DecoderConfig) {
	dc.ErrorUnused = true
}

// WeaklyTypedInput sets the DecoderConfig.WeaklyTypedInput flag.  This is useful
// when options come from sources that only produce strings, such as environment variables.
func WeaklyTypedInput(f bool) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = f
	}
}

// TagName sets the DecoderConfig.TagName used to map struct fields onto keys.
// The mapstructure default is "mapstructure", and TagName("") restores that default.
func TagName(v string) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = v
	}
}

// Merge flattens any number of option slices into a single option that applies
// each one in order.
func Merge(opts ...[]viper.DecoderConfigOption) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		for _, group := range opts {
			for _, o := range group {
				o(dc)
			}
		}
	}
}

// DefaultDecodeHooks replaces the decode hooks with the ones this package relies on:
// durations and comma-separated slices from strings, plus TextUnmarshalerHookFunc
// for things like time.Time bounds on DateOptions.
//
// ComposeDecodeHooks can add more hooks after this option.
func DefaultDecodeHooks(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		TextUnmarshalerHookFunc,
	)
}

// ComposeDecodeHooks appends decode hooks to any that are already configured.
func ComposeDecodeHooks(fs ...mapstructure.DecodeHookFunc) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		if dc.DecodeHook != nil {
			fs = append([]mapstructure.DecodeHookFunc{dc.DecodeHook}, fs...)
		}

		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(fs...)
	}
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// TextUnmarshalerHookFunc is a mapstructure.DecodeHookFunc that converts strings into
// any type whose pointer implements encoding.TextUnmarshaler, e.g. time.Time.  Both T
// and *T destinations are supported, but not deeper indirection.
//
// Any src that is not a string, or any destination that does not qualify, is returned
// unchanged with a nil error, as mapstructure requires.
func TextUnmarshalerHookFunc(_, to reflect.Type, src interface{}) (interface{}, error) {
	text, ok := src.(string)
	if !ok {
		return src, nil
	}

	switch {
	case to.Kind() != reflect.Ptr && reflect.PtrTo(to).Implements(textUnmarshalerType):
		ptr := reflect.New(to)
		err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
		return ptr.Elem().Interface(), err

	case to.Kind() == reflect.Ptr && to.Elem().Kind() != reflect.Ptr && to.Implements(textUnmarshalerType):
		tu := reflect.New(to.Elem()).Interface().(encoding.TextUnmarshaler)
		err := tu.UnmarshalText([]byte(text))
		return tu, err

	default:
		return src, nil
	}
}
