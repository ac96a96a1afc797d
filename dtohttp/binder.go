// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtohttp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/spf13/viper"
	"github.com/xmidt-org/arrangedto"
	"github.com/xmidt-org/arrangedto/dtotransform"
	"github.com/xmidt-org/arrangedto/dtovalidate"
	"github.com/xmidt-org/arrangedto/internal/dtoreflect"
	"github.com/xmidt-org/httpaux"
)

type contextKey[T any] struct{}

// Get returns the DTO that a Binder[T] stored in the context.
func Get[T any](ctx context.Context) (*T, bool) {
	v, ok := ctx.Value(contextKey[T]{}).(*T)
	return v, ok
}

// With returns a context holding the given DTO, as a Binder[T] would.
func With[T any](ctx context.Context, v *T) context.Context {
	return context.WithValue(ctx, contextKey[T]{}, v)
}

// Binder is a server middleware that binds each request to a new T.
//
// The input for a T is the request's JSON object body, if any, together with
// any gorilla/mux path variables.  Body values take precedence over path variables
// with the same key.  The input is converted and decoded with dtotransform.Decode,
// then checked with dtovalidate.Validate.
type Binder[T any] struct {
	// Transforms are the transformation rules for T.  If unset, input is decoded
	// without conversion.
	Transforms *arrangedto.Registry[dtotransform.Rule]

	// Validations are the validation rules for T.  If unset, no validation is done.
	Validations *arrangedto.Registry[dtovalidate.Rule]

	// Header is an optional set of headers written on every response
	Header http.Header

	// ErrorEncoder writes the response when binding fails.  DefaultErrorEncoder
	// is used if this field is unset.
	ErrorEncoder ErrorEncoder

	// TagName is the struct tag used to match input keys to fields.  The json
	// tag is used if this field is unset.
	TagName string

	// Options are additional decoding options, e.g. arrangedto.Exact to reject unknown keys
	Options []viper.DecoderConfigOption
}

// Then decorates a handler so that it receives only requests that bound successfully.
// The handler may obtain the bound DTO with Get[T].
func (b Binder[T]) Then(next http.Handler) http.Handler {
	transforms := b.Transforms
	if transforms == nil {
		transforms = arrangedto.NewRegistry[dtotransform.Rule]()
	}

	opts := append([]viper.DecoderConfigOption{}, b.Options...)
	if len(b.TagName) > 0 {
		opts = append(opts, arrangedto.TagName(b.TagName))
	}

	h := &binderHandler[T]{
		next:         next,
		transforms:   transforms,
		validations:  b.Validations,
		errorEncoder: dtoreflect.Safe[ErrorEncoder](b.ErrorEncoder, DefaultErrorEncoder),
		opts:         opts,
	}

	return httpaux.NewHeader(b.Header).Then(h)
}

// Constructor returns Then as an alice.Constructor, for use in middleware chains.
func (b Binder[T]) Constructor() alice.Constructor {
	return b.Then
}

type binderHandler[T any] struct {
	next         http.Handler
	transforms   *arrangedto.Registry[dtotransform.Rule]
	validations  *arrangedto.Registry[dtovalidate.Rule]
	errorEncoder ErrorEncoder
	opts         []viper.DecoderConfigOption
}

func (bh *binderHandler[T]) input(request *http.Request) (map[string]interface{}, error) {
	input := make(map[string]interface{})
	if request.Body != nil {
		decoder := json.NewDecoder(request.Body)
		decoder.UseNumber()

		var body interface{}
		switch err := decoder.Decode(&body); {
		case errors.Is(err, io.EOF):
			// no body

		case err != nil:
			return nil, &BodyError{Err: err}

		default:
			object, ok := body.(map[string]interface{})
			if !ok {
				return nil, &BodyError{Err: ErrNotObject}
			}

			input = object
		}
	}

	for k, v := range mux.Vars(request) {
		if _, exists := input[k]; !exists {
			input[k] = v
		}
	}

	return input, nil
}

func (bh *binderHandler[T]) bind(request *http.Request) (*T, error) {
	input, err := bh.input(request)
	if err != nil {
		return nil, err
	}

	v := new(T)
	if err = dtotransform.Decode(bh.transforms, input, v, bh.opts...); err != nil {
		return nil, err
	}

	if bh.validations != nil {
		if err = dtovalidate.Validate(bh.validations, v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (bh *binderHandler[T]) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	v, err := bh.bind(request)
	if err != nil {
		bh.errorEncoder(request.Context(), err, response)
		return
	}

	bh.next.ServeHTTP(
		response,
		request.WithContext(With(request.Context(), v)),
	)
}
