// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtofx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const declarationsYAML = `
accounts:
  login:
    - kind: string
      options:
        trim: true
    - kind: length
      options:
        min: 3
  age:
    - kind: integer
`

func newTestViper(t *testing.T, yaml string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	return v
}

func testViperUnmarshalerDeclarations(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		output  bytes.Buffer

		vu = ViperUnmarshaler{
			Viper:   newTestViper(t, declarationsYAML),
			Printer: PrinterWriter(&output),
		}
	)

	ds, err := vu.Declarations("accounts")
	require.NoError(err)
	assert.Equal([]string{"age", "login"}, ds.Properties())
	require.Len(ds["login"], 2)
	assert.Equal("string", ds["login"][0].Kind)
	assert.Equal(true, ds["login"][0].Options["trim"])
	assert.Equal("length", ds["login"][1].Kind)
	assert.Equal("integer", ds["age"][0].Kind)
	assert.Empty(ds["age"][0].Options)
	assert.Equal("DECLARATIONS\t[accounts] => 2 properties\n", output.String())
}

func testViperUnmarshalerMissingKey(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		output  bytes.Buffer

		vu = ViperUnmarshaler{
			Viper:   newTestViper(t, declarationsYAML),
			Printer: PrinterWriter(&output),
		}
	)

	ds, err := vu.Declarations("nosuch")
	require.NoError(err)
	assert.Empty(ds)
	assert.Contains(output.String(), "[nosuch] => none")
}

func testViperUnmarshalerWithOptions(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		output  bytes.Buffer

		optionCalled bool
		option       = viper.DecoderConfigOption(func(*mapstructure.DecoderConfig) {
			optionCalled = true
		})

		vu = ViperUnmarshaler{
			Viper:   newTestViper(t, declarationsYAML),
			Options: []viper.DecoderConfigOption{option},
			Printer: PrinterWriter(&output),
		}
	)

	ds, err := vu.Declarations("accounts")
	require.NoError(err)
	assert.Len(ds, 2)
	assert.True(optionCalled)
}

func testViperUnmarshalerInvalid(t *testing.T) {
	vu := ViperUnmarshaler{
		Viper:   newTestViper(t, "accounts: 123"),
		Printer: PrinterWriter(new(bytes.Buffer)),
	}

	_, err := vu.Declarations("accounts")
	assert.Error(t, err)
}

func TestViperUnmarshaler(t *testing.T) {
	t.Run("Declarations", testViperUnmarshalerDeclarations)
	t.Run("MissingKey", testViperUnmarshalerMissingKey)
	t.Run("WithOptions", testViperUnmarshalerWithOptions)
	t.Run("Invalid", testViperUnmarshalerInvalid)
}

func testForViperNil(t *testing.T) {
	var unmarshaler Unmarshaler
	app := fx.New(
		fx.NopLogger,
		ForViper(nil),
		fx.Populate(&unmarshaler),
	)

	assert.ErrorIs(t, app.Err(), ErrNilViper)
}

func testForViperNoOptions(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		v           = viper.New()
		unmarshaler Unmarshaler
	)

	fxtest.New(
		t,
		TestLogger(t),
		ForViper(v),
		fx.Populate(&unmarshaler),
	)

	vu, ok := unmarshaler.(ViperUnmarshaler)
	require.True(ok)
	assert.True(v == vu.Viper)
	assert.Empty(vu.Options)
	assert.NotNil(vu.Printer)
}

func testForViperWithOptions(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		v           = viper.New()
		unmarshaler Unmarshaler

		external = viper.DecoderConfigOption(func(*mapstructure.DecoderConfig) {})
		injected = viper.DecoderConfigOption(func(*mapstructure.DecoderConfig) {})
	)

	fxtest.New(
		t,
		ForViper(v, external),
		fx.Supply([]viper.DecoderConfigOption{injected}),
		fx.Populate(&unmarshaler),
	)

	vu, ok := unmarshaler.(ViperUnmarshaler)
	require.True(ok)
	assert.Len(vu.Options, 2)
	assert.NotNil(vu.Printer)
}

func TestForViper(t *testing.T) {
	t.Run("Nil", testForViperNil)
	t.Run("NoOptions", testForViperNoOptions)
	t.Run("WithOptions", testForViperWithOptions)
}
