// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package dtohttp binds HTTP requests to decorated DTOs.  A Binder decodes the request
// into a DTO using recorded transformation rules, checks it against recorded validation
// rules, and makes the result available to the next handler through the request context.
package dtohttp
