// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtotest

import (
	"fmt"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/xmidt-org/arrangedto/dtofx"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// Testable is what the helpers in this package need from a test:  assertions
// plus enough to route fx output through dtofx.TestLogger.
type Testable interface {
	Name() string
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
}

// AsTestable converts a value into a Testable.  The v parameter may be a *testing.T,
// a *testing.B, or anything with a T() *testing.T method, such as a testify suite.
// Any other value results in a panic.
func AsTestable(v interface{}) Testable {
	if tt, ok := v.(Testable); ok {
		return tt
	}

	type testHolder interface {
		T() *testing.T
	}

	if th, ok := v.(testHolder); ok {
		return th.T()
	}

	panic(fmt.Errorf("%T cannot be converted into a Testable", v))
}

// NewApp creates an *fxtest.App using the enclosing test, which has the same
// restrictions as AsTestable.
func NewApp(t interface{}, o ...fx.Option) *fxtest.App {
	return fxtest.New(AsTestable(t), o...)
}

// NewDeclareApp creates an *fxtest.App that applies the declarations found in v at
// key to the prototype's type, using the dtofx.Standard collections.  fx output goes
// to the test log.  Components such as the rule registries can be pulled out with
// fx.Populate in o.
func NewDeclareApp(t interface{}, v *viper.Viper, key string, prototype interface{}, o ...fx.Option) *fxtest.App {
	tt := AsTestable(t)
	return fxtest.New(
		tt,
		append(
			[]fx.Option{
				dtofx.TestLogger(tt),
				dtofx.ForViper(v),
				dtofx.Standard(),
				dtofx.Declare(key, prototype),
			},
			o...,
		)...,
	)
}

// NewErrApp creates an *fx.App which is expected to fail during construction,
// such as when a declaration in configuration cannot be applied.  This function
// asserts that there was an error and returns the app for further assertions.
//
// Since an error is assumed to happen, the returned app has logging silenced.
func NewErrApp(t interface{}, o ...fx.Option) *fx.App {
	app := fx.New(
		append(
			o,
			fx.NopLogger,
		)...,
	)

	assert.Error(AsTestable(t), app.Err())
	return app
}
