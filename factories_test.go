// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/multierr"
)

type FactoriesSuite struct {
	suite.Suite
	target reflect.Type
}

func (suite *FactoriesSuite) SetupTest() {
	suite.target = reflect.TypeOf(User{})
}

func (suite *FactoriesSuite) TestSelectIdentity() {
	var (
		cl = new(callLog)
		c  = taggedFactories(cl, "c")
	)

	suite.Equal(funcPointer(c.Boolean), funcPointer(SelectPropertyDecoratorFactory(Boolean, c)))
	suite.Equal(funcPointer(c.Date), funcPointer(SelectPropertyDecoratorFactory(Date, c)))
	suite.Equal(funcPointer(c.Enum), funcPointer(SelectPropertyDecoratorFactory(Enum, c)))
	suite.Equal(funcPointer(c.Integer), funcPointer(SelectPropertyDecoratorFactory(Integer, c)))
	suite.Equal(funcPointer(c.Length), funcPointer(SelectPropertyDecoratorFactory(Length, c)))
	suite.Equal(funcPointer(c.Nested), funcPointer(SelectPropertyDecoratorFactory(Nested, c)))
	suite.Equal(funcPointer(c.Number), funcPointer(SelectPropertyDecoratorFactory(Number, c)))
	suite.Equal(funcPointer(c.String), funcPointer(SelectPropertyDecoratorFactory(String, c)))
	suite.Equal(funcPointer(c.UUID), funcPointer(SelectPropertyDecoratorFactory(UUID, c)))

	SelectPropertyDecoratorFactory(UUID, c)(UUIDOptions{})(suite.target, "Name")
	SelectPropertyDecoratorFactory(Nested, c)(NestedOptions{})(suite.target, "Address")
	suite.Equal([]string{"uuid:c", "nested:c"}, cl.tags())
}

func (suite *FactoriesSuite) TestSelectBehavesAsStored() {
	var (
		cl = new(callLog)

		// closures from one literal share a code pointer, so each binds a distinct token
		bound = func(token string) PropertyDecoratorFactory[LengthOptions] {
			return func(LengthOptions) PropertyDecorator {
				return cl.decorator(token)
			}
		}
	)

	first, err := NewFactories(Set(Length, bound("first")), NopDefaults())
	suite.Require().NoError(err)

	second, err := NewFactories(Set(Length, bound("second")), NopDefaults())
	suite.Require().NoError(err)

	SelectPropertyDecoratorFactory(Length, second)(LengthOptions{})(suite.target, "Name")
	SelectPropertyDecoratorFactory(Length, first)(LengthOptions{})(suite.target, "Name")
	suite.Equal([]string{"second", "first"}, cl.tags())
}

func (suite *FactoriesSuite) TestSelectMissing() {
	suite.Nil(SelectPropertyDecoratorFactory(Length, Factories{}))
}

func (suite *FactoriesSuite) TestSelectZeroName() {
	var (
		cl = new(callLog)
		c  = taggedFactories(cl, "c")
	)

	suite.NotPanics(func() {
		suite.Nil(SelectPropertyDecoratorFactory(Name[LengthOptions]{}, c))
		suite.Equal(
			[]PropertyDecoratorFactory[StringOptions]{nil, nil},
			SelectPropertyDecoratorFactories(Name[StringOptions]{}, []Factories{c, c}),
		)
	})

	d, err := Name[LengthOptions]{}.Decorator(nil, []Factories{c})
	suite.Nil(d)

	var uke *UnknownKindError
	suite.True(errors.As(err, &uke))
	suite.Empty(cl.tags())
}

func (suite *FactoriesSuite) TestSelectFactories() {
	var (
		cl = new(callLog)
		c1 = Factories{Length: lengthFactory(cl, "f1", nil)}
		c2 = Factories{Length: lengthFactory(cl, "f2", nil)}

		selected = SelectPropertyDecoratorFactories(Length, []Factories{c1, c2})
	)

	suite.Require().Len(selected, 2)
	for _, f := range selected {
		f(LengthOptions{})(suite.target, "Name")
	}

	suite.Equal([]string{"f1", "f2"}, cl.tags())
}

func (suite *FactoriesSuite) TestSelectFactoriesEmpty() {
	suite.Empty(SelectPropertyDecoratorFactories(String, nil))
}

func (suite *FactoriesSuite) TestSelectFactoriesNoDeduplication() {
	var (
		cl = new(callLog)
		c  = taggedFactories(cl, "same")
	)

	selected := SelectPropertyDecoratorFactories(Enum, []Factories{c, c, c})
	suite.Require().Len(selected, 3)
	ComposePropertyDecoratorFactories(selected)(EnumOptions{})(suite.target, "Name")
	suite.Equal([]string{"enum:same", "enum:same", "enum:same"}, cl.tags())
}

func (suite *FactoriesSuite) TestValidate() {
	suite.NoError(taggedFactories(new(callLog), "total").Validate())

	err := Factories{}.Validate()
	suite.Require().Error(err)

	errs := multierr.Errors(err)
	suite.Require().Len(errs, len(Kinds()))
	for i, k := range Kinds() {
		var mfe *MissingFactoryError
		suite.Require().True(errors.As(errs[i], &mfe))
		suite.Equal(k.String(), mfe.Kind)
	}

	partial := taggedFactories(new(callLog), "partial")
	partial.Date = nil
	err = partial.Validate()
	suite.Require().Error(err)

	var mfe *MissingFactoryError
	suite.Require().True(errors.As(err, &mfe))
	suite.Equal("date", mfe.Kind)
}

func (suite *FactoriesSuite) TestNewFactoriesIncomplete() {
	_, err := NewFactories(
		Set(String, Nop[StringOptions]()),
	)

	suite.Error(err)
	suite.Len(multierr.Errors(err), len(Kinds())-1)
}

func (suite *FactoriesSuite) TestNewFactoriesNopDefaults() {
	cl := new(callLog)
	f, err := NewFactories(
		Set(Length, lengthFactory(cl, "length", nil)),
		NopDefaults(),
	)

	suite.Require().NoError(err)
	suite.NoError(f.Validate())

	f.Length(LengthOptions{})(suite.target, "Name")
	f.String(StringOptions{})(suite.target, "Name")
	suite.Equal([]string{"length"}, cl.tags())
}

func (suite *FactoriesSuite) TestNewFactoriesFill() {
	var (
		cl   = new(callLog)
		base = taggedFactories(cl, "base")
	)

	f, err := NewFactories(
		Fill(base),
		Fill(Factories{Integer: func(IntegerOptions) PropertyDecorator { return cl.decorator("override") }}),
	)

	suite.Require().NoError(err)
	f.Integer(IntegerOptions{})(suite.target, "Age")
	f.Boolean(BooleanOptions{})(suite.target, "Age")
	suite.Equal([]string{"override", "boolean:base"}, cl.tags())
}

func (suite *FactoriesSuite) TestSetNil() {
	_, err := NewFactories(
		Fill(taggedFactories(new(callLog), "base")),
		Set[NumberOptions](Number, nil),
	)

	suite.Require().Error(err)

	var se *SetError
	suite.Require().True(errors.As(err, &se))
	suite.Equal("number", se.Kind)
	suite.ErrorIs(err, ErrNilFactory)
}

func (suite *FactoriesSuite) TestFieldsMatchCatalog() {
	ft := reflect.TypeOf(Factories{})
	suite.Require().Equal(len(Kinds()), ft.NumField())
	for i, k := range Kinds() {
		field := ft.Field(i)
		suite.Equal(reflect.Func, field.Type.Kind())
		suite.Equal(k.OptionsType(), field.Type.In(0))
	}
}

func TestFactories(t *testing.T) {
	suite.Run(t, new(FactoriesSuite))
}
