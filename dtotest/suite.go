// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtotest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/arrangedto/dtofx"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// Suite is an embeddable type for tests that load declarations from configuration.
// Embed this type in testify/suite-style test types.
type Suite struct {
	suite.Suite

	viper *viper.Viper
}

var _ suite.SetupTestSuite = (*Suite)(nil)

// SetupTest initializes a new viper instance for each test.
func (suite *Suite) SetupTest() {
	suite.ResetViper()
}

// ResetViper replaces the current viper instance with a new one, which is
// useful for subtests.  The new instance is returned.
func (suite *Suite) ResetViper() *viper.Viper {
	suite.viper = viper.New()
	return suite.viper
}

// Viper returns the viper instance for the current test.
func (suite *Suite) Viper() *viper.Viper {
	return suite.viper
}

func (suite *Suite) read(configType string, v interface{}) {
	var r io.Reader
	switch vt := v.(type) {
	case string:
		r = strings.NewReader(vt)

	case []byte:
		r = bytes.NewReader(vt)

	case io.Reader:
		r = vt

	default:
		panic(fmt.Errorf("%T is not a supported %s source", v, configType))
	}

	suite.viper.SetConfigType(configType)
	suite.Require().NoError(
		suite.viper.ReadConfig(r),
	)
}

// YAML bootstraps the current viper environment with YAML configuration.
// The v parameter may be a string, a []byte, or an io.Reader.
func (suite *Suite) YAML(v interface{}) {
	suite.read("yaml", v)
}

// JSON bootstraps the current viper environment with JSON configuration.
// The v parameter may be a string, a []byte, or an io.Reader.
func (suite *Suite) JSON(v interface{}) {
	suite.read("json", v)
}

func (suite *Suite) options(more []fx.Option) []fx.Option {
	return append(
		[]fx.Option{
			dtofx.TestLogger(suite.T()),
			dtofx.ForViper(suite.viper),
		},
		more...,
	)
}

// Fxtest is a convenience for doing fxtest.New(...) with the current
// viper environment, test logging, and the additional fx.Options
func (suite *Suite) Fxtest(more ...fx.Option) *fxtest.App {
	return fxtest.New(suite.T(), suite.options(more)...)
}

// Fx is a convenience for doing fx.New(...) with the current
// viper environment, test logging, and the additional fx.Options
func (suite *Suite) Fx(more ...fx.Option) *fx.App {
	return fx.New(suite.options(more)...)
}
