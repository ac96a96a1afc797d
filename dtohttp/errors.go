// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtohttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/multierr"
)

// ErrNotObject indicates a request body that is not a JSON object.
var ErrNotObject = errors.New("the request body must be a JSON object")

// BodyError indicates that the request body could not be read or parsed.
type BodyError struct {
	Err error
}

func (be *BodyError) Error() string {
	return fmt.Sprintf("BODY ERROR: %s", be.Err)
}

func (be *BodyError) Unwrap() error {
	return be.Err
}

// ErrorEncoder writes the response for a request that could not be bound.
type ErrorEncoder func(context.Context, error, http.ResponseWriter)

// ErrorResponse is the JSON body written by DefaultErrorEncoder.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

// DefaultErrorEncoder writes a 400 response with an ErrorResponse body that
// lists each individual error.
func DefaultErrorEncoder(_ context.Context, err error, w http.ResponseWriter) {
	var body ErrorResponse
	for _, e := range multierr.Errors(err) {
		body.Errors = append(body.Errors, e.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(body)
}
