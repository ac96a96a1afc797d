// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package arrangedto

import (
	"reflect"

	"github.com/stretchr/testify/mock"
)

type mockDecorator struct {
	mock.Mock
}

func (m *mockDecorator) Decorate(target reflect.Type, property string) {
	m.Called(target, property)
}

func (m *mockDecorator) ExpectDecorate(target reflect.Type, property string) *mock.Call {
	return m.On("Decorate", target, property)
}

type mockOption[T any] struct {
	mock.Mock
}

func (m *mockOption[T]) Apply(t *T) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *mockOption[T]) ExpectApply(t *T) *mock.Call {
	return m.On("Apply", t)
}
