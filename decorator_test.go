// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ComposePropertyDecoratorsSuite struct {
	suite.Suite
	target reflect.Type
}

func (suite *ComposePropertyDecoratorsSuite) SetupTest() {
	suite.target = reflect.TypeOf(User{})
}

func (suite *ComposePropertyDecoratorsSuite) testOrder(count int) {
	var (
		current    = 0
		decorators = make([]PropertyDecorator, 0, count)
	)

	for i := 0; i < count; i++ {
		i := i
		decorators = append(decorators, func(target reflect.Type, property string) {
			suite.Equal(suite.target, target)
			suite.Equal("Name", property)
			suite.Equal(i, current)
			current++
		})
	}

	composed := ComposePropertyDecorators(decorators)
	suite.Require().NotNil(composed)
	composed(suite.target, "Name")
	suite.Equal(count, current)
}

func (suite *ComposePropertyDecoratorsSuite) TestOrder() {
	for _, count := range []int{0, 1, 2, 5} {
		suite.Run(fmt.Sprintf("count=%d", count), func() {
			suite.testOrder(count)
		})
	}
}

func (suite *ComposePropertyDecoratorsSuite) TestEmpty() {
	for _, ds := range [][]PropertyDecorator{nil, {}} {
		composed := ComposePropertyDecorators(ds)
		suite.Require().NotNil(composed)
		suite.NotPanics(func() {
			composed(suite.target, "Name")
			composed(nil, "")
		})
	}
}

func (suite *ComposePropertyDecoratorsSuite) TestSharedLog() {
	var (
		log = make(map[string][]string)

		annotatorA = func(_ reflect.Type, property string) {
			log[property] = append(log[property], "A")
		}

		annotatorB = func(_ reflect.Type, property string) {
			log[property] = append(log[property], "B")
		}
	)

	ComposePropertyDecorators([]PropertyDecorator{annotatorA, annotatorB})(suite.target, "field")
	suite.Equal([]string{"A", "B"}, log["field"])
}

func (suite *ComposePropertyDecoratorsSuite) TestDuplicatesAreKept() {
	var cl callLog
	d := cl.decorator("dup")
	ComposePropertyDecorators([]PropertyDecorator{d, d, d})(suite.target, "Name")
	suite.Equal([]string{"dup", "dup", "dup"}, cl.tags())
}

func (suite *ComposePropertyDecoratorsSuite) TestLaterMutationsIgnored() {
	var (
		cl = new(callLog)
		ds = []PropertyDecorator{cl.decorator("first"), cl.decorator("second")}

		composed = ComposePropertyDecorators(ds)
	)

	ds[0] = cl.decorator("replaced")
	composed(suite.target, "Name")
	suite.Equal([]string{"first", "second"}, cl.tags())
}

func (suite *ComposePropertyDecoratorsSuite) TestMock() {
	var (
		first  = new(mockDecorator)
		second = new(mockDecorator)
	)

	first.ExpectDecorate(suite.target, "Email").Once()
	second.ExpectDecorate(suite.target, "Email").Once()

	ComposePropertyDecorators([]PropertyDecorator{first.Decorate, second.Decorate})(suite.target, "Email")
	first.AssertExpectations(suite.T())
	second.AssertExpectations(suite.T())
}

func TestComposePropertyDecorators(t *testing.T) {
	suite.Run(t, new(ComposePropertyDecoratorsSuite))
}

type DecorateSuite struct {
	suite.Suite
}

func (suite *DecorateSuite) TestPrototypes() {
	expected := reflect.TypeOf(User{})
	for i, prototype := range []interface{}{User{}, &User{}, (*User)(nil), expected, reflect.ValueOf(&User{})} {
		suite.Run(fmt.Sprintf("prototype=%d", i), func() {
			m := new(mockDecorator)
			m.ExpectDecorate(expected, "Age").Once()
			Decorate(prototype, "Age", m.Decorate)
			m.AssertExpectations(suite.T())
		})
	}
}

func (suite *DecorateSuite) TestOrder() {
	var cl callLog
	Decorate(User{}, "Name", cl.decorator("1"), cl.decorator("2"), cl.decorator("3"))
	suite.Equal([]string{"1", "2", "3"}, cl.tags())
}

func (suite *DecorateSuite) TestNoDecorators() {
	suite.NotPanics(func() {
		Decorate(User{}, "Name")
	})
}

func TestDecorate(t *testing.T) {
	suite.Run(t, new(DecorateSuite))
}
