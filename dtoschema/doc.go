// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package dtoschema is a decorator collection that documents DTOs.  Decorated types can
// be rendered as OpenAPI-style object schemas.
package dtoschema
