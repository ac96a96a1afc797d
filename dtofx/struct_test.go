// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtofx

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/arrangedto"
	"go.uber.org/dig"
	"go.uber.org/fx"
)

type StructSuite struct {
	suite.Suite
}

func (suite *StructSuite) TestEmpty() {
	st := Struct{}.Of()
	suite.Equal(reflect.Struct, st.Kind())
	suite.Zero(st.NumField())
	suite.False(dig.IsIn(st))
}

func (suite *StructSuite) TestAppend() {
	st := Struct{}.In().Append(
		Field{Name: "first", Type: 0},
		Field{Group: "values", Type: reflect.TypeOf("")},
		Field{Type: reflect.ValueOf(1.0), Optional: true},
		Field{Name: "second", Group: "ignored", Optional: true, Type: arrangedto.Factories{}},
	).Of()

	suite.True(dig.IsIn(st))
	suite.Require().Equal(5, st.NumField())

	suite.True(st.Field(0).Anonymous)

	f1 := st.Field(1)
	suite.Equal("F1", f1.Name)
	suite.Equal(reflect.TypeOf(0), f1.Type)
	suite.Equal(`name:"first"`, string(f1.Tag))

	f2 := st.Field(2)
	suite.Equal("F2", f2.Name)
	suite.Equal(reflect.TypeOf([]string{}), f2.Type)
	suite.Equal(`group:"values"`, string(f2.Tag))

	f3 := st.Field(3)
	suite.Equal(reflect.TypeOf(1.0), f3.Type)
	suite.Equal(`optional:"true"`, string(f3.Tag))

	f4 := st.Field(4)
	suite.Equal(reflect.TypeOf(arrangedto.Factories{}), f4.Type)
	suite.Equal(`name:"second" optional:"true"`, string(f4.Tag))
}

func (suite *StructSuite) TestCollectionsIn() {
	st := collectionsIn([]string{"a", "b"})
	suite.True(dig.IsIn(st))
	suite.Require().Equal(4, st.NumField())
	suite.Equal(`name:"a"`, string(st.Field(1).Tag))
	suite.Equal(`name:"b"`, string(st.Field(2).Tag))
	suite.Equal(reflect.TypeOf((*fx.Printer)(nil)).Elem(), st.Field(3).Type)
}

func (suite *StructSuite) TestErrorValue() {
	nilErr := errorValue(nil)
	suite.Equal(errorType, nilErr.Type())
	suite.True(nilErr.IsNil())

	expected := errors.New("expected")
	suite.Same(expected, errorValue(expected).Interface())
}

func TestStruct(t *testing.T) {
	suite.Run(t, new(StructSuite))
}
