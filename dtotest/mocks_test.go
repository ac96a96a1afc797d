// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtotest

import "github.com/stretchr/testify/mock"

type mockTestable struct {
	mock.Mock
}

func (m *mockTestable) Name() string {
	return "mockTestable"
}

func (m *mockTestable) Logf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *mockTestable) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *mockTestable) ExpectAnyErrorf() *mock.Call {
	return m.On(
		"Errorf",
		mock.AnythingOfType("string"),
		mock.MatchedBy(func([]interface{}) bool { return true }),
	)
}

func (m *mockTestable) FailNow() {
	m.Called()
}
