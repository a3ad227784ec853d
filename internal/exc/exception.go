// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"errors"
	"fmt"

	"gopkg.microglot.org/wcps.go/internal/token"
)

type Exception interface {
	error
	Code() string
	Message() string
	Location() Location
}

type Location struct {
	token.Location
	URI string
}

type exc struct {
	code     string
	message  string
	location Location
}

func (e *exc) Error() string {
	return format(e.location, e.code, e.message)
}

// format renders an exception as uri:line:col -- code: message. Queries given
// inline have no URI and render as line:col -- code: message.
func format(loc Location, code string, message string) string {
	if loc.URI == "" {
		return fmt.Sprintf("%d:%d -- %s: %s", loc.Line, loc.Column, code, message)
	}
	return fmt.Sprintf("%s:%d:%d -- %s: %s", loc.URI, loc.Line, loc.Column, code, message)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

func (e *exc) Location() Location {
	return e.location
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

func New(location Location, code string, message string) Exception {
	return &exc{
		location: location,
		message:  message,
		code:     code,
	}
}

func Wrap(location Location, code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &excUnwrap{
			Exception: New(location, code, e.Message()),
			cause:     e,
		}
	}
	return &excUnwrap{
		cause:     err,
		Exception: New(location, code, err.Error()),
	}
}

func WrapUnknown(location Location, err error) Exception {
	return Wrap(location, CodeUnknownFatal, err)
}

// CodeOf returns the code of the first Exception in the error chain or
// CodeUnknownFatal when there is none.
func CodeOf(err error) string {
	var e Exception
	if errors.As(err, &e) {
		return e.Code()
	}
	return CodeUnknownFatal
}
