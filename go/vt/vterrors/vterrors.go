/*
Copyright 2019 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package vterrors provides simple error handling primitives for the SQL
// math layer.
//
// Every error created by this package carries a gRPC code and, optionally,
// a State describing the SQL condition that caused it. Use Code and
// ErrState to inspect any error, including errors that were wrapped with
// Wrapf or fmt.Errorf("%w").
//
// The only error the math functions return is an out of range error:
//
//	vterrors.NewErrorf(codes.OutOfRange, vterrors.DataOutOfRange, "Integer overflow in function: ABS: %v", x)
//
// Errors that cross a gRPC boundary should be converted with ToGRPC and
// FromGRPC so that the code survives the trip.
package vterrors

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

type vtError struct {
	code  codes.Code
	state State
	msg   string
}

// New returns an error with the supplied message and code.
func New(code codes.Code, message string) error {
	return &vtError{code: code, msg: message}
}

// Errorf formats according to a format specifier and returns the string
// as a value that satisfies error, with the supplied code.
func Errorf(code codes.Code, format string, args ...any) error {
	return &vtError{code: code, msg: fmt.Sprintf(format, args...)}
}

// NewErrorf formats according to a format specifier and returns the string
// as a value that satisfies error, with the supplied code and state.
func NewErrorf(code codes.Code, state State, format string, args ...any) error {
	return &vtError{code: code, state: state, msg: fmt.Sprintf(format, args...)}
}

func (e *vtError) Error() string {
	return e.msg
}

func (e *vtError) ErrorCode() codes.Code {
	return e.code
}

func (e *vtError) ErrorState() State {
	return e.state
}

// Is matches other vterrors with the same code, state and message.
func (e *vtError) Is(target error) bool {
	t, ok := target.(*vtError)
	return ok && t.code == e.code && t.state == e.state && t.msg == e.msg
}

type wrapping struct {
	cause error
	msg   string
}

func (w *wrapping) Error() string {
	return w.msg + ": " + w.cause.Error()
}

func (w *wrapping) Unwrap() error {
	return w.cause
}

// Wrapf returns an error annotating err with the format specifier. If err
// is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapping{cause: err, msg: fmt.Sprintf(format, args...)}
}

// Code returns the error code if it's a vtError. If err is nil, it returns
// codes.OK. Context errors map to Canceled and DeadlineExceeded, every
// other error to Unknown.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var withCode ErrorWithCode
	if errors.As(err, &withCode) {
		return withCode.ErrorCode()
	}

	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	}
	return codes.Unknown
}

// ErrState returns the error state if it's a vtError. If err is nil, or the
// error was created without a state, it returns Undefined.
func ErrState(err error) State {
	var withState ErrorWithState
	if errors.As(err, &withState) {
		return withState.ErrorState()
	}
	return Undefined
}
