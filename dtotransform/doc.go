// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package dtotransform is a decorator collection that records conversions for loosely typed
input, such as a JSON body or a set of path variables, before that input is decoded into a DTO.

Transform produces a converted copy of an input map.  Decode does the same, then decodes
the result with mapstructure using the same hooks as the rest of arrangedto.
*/
package dtotransform
