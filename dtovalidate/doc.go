// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package dtovalidate is a decorator collection that records validation rules, together
with the engine that checks struct values against those rules.

	rules := arrangedto.NewRegistry[dtovalidate.Rule]()
	validate := dtovalidate.NewFactories(rules)

	arrangedto.Decorate(User{}, "Name", validate.Length(arrangedto.LengthOptions{Min: 1}))
	err := dtovalidate.Validate(rules, user) // aggregate of *FieldError
*/
package dtovalidate
