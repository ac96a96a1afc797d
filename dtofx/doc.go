// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package dtofx integrates decorator collections with go.uber.org/fx.

Collections are provided as named arrangedto.Factories components and gathered, in
a fixed order, into a single Collections component.  Declarations held in configuration
can then be applied to DTO types as the application starts:

	fx.New(
		dtofx.ForViper(v),
		dtofx.Standard(),
		dtofx.Declare("dto.user", User{}),
		fx.Invoke(
			func(rules *arrangedto.Registry[dtovalidate.Rule]) {
				// User's rules are in the registry
			},
		),
	)
*/
package dtofx
