/*
Copyright 2026 The Vitess Authors.

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


package vterrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestWrapf(t *testing.T) {
	assert.Nil(t, Wrapf(nil, "no error in %s", "SQRT"))

	tests := []struct {
		err         error
		message     string
		wantMessage string
		wantCode    codes.Code
	}{
		{io.EOF, "read error", "read error: EOF", codes.Unknown},
		{New(codes.InvalidArgument, "invalid rounding mode"), "config", "config: invalid rounding mode", codes.InvalidArgument},
		{NewErrorf(codes.OutOfRange, DataOutOfRange, "Integer overflow in function: ABS: -128"), "row 3", "row 3: Integer overflow in function: ABS: -128", codes.OutOfRange},
	}
	for _, tt := range tests {
		got := Wrapf(tt.err, "%s", tt.message)
		assert.EqualError(t, got, tt.wantMessage)
		assert.Equal(t, tt.wantCode, Code(got))
		assert.Equal(t, tt.err, errors.Unwrap(got))
	}

	got := Wrapf(Wrapf(io.EOF, "read error with %d format specifier", 1), "client error")
	assert.EqualError(t, got, "client error: read error with 1 format specifier: EOF")
}

func TestErrorf(t *testing.T) {
	assert.EqualError(t, Errorf(codes.DataLoss, "read error without format specifiers"), "read error without format specifiers")
	assert.EqualError(t, Errorf(codes.DataLoss, "read error with %d format specifier", 1), "read error with 1 format specifier")
	assert.EqualError(t, NewErrorf(codes.OutOfRange, DataOutOfRange, "%s in function: %s: %s", "Domain error", "LN", "0"), "Domain error in function: LN: 0")
}

// Errors must stay comparable with == even though the result is
// meaningless for distinct values.
func TestErrorEquality(t *testing.T) {
	vals := []error{
		nil,
		io.EOF,
		errors.New("EOF"),
		New(codes.AlreadyExists, "EOF"),
		Errorf(codes.InvalidArgument, "EOF"),
		NewErrorf(codes.OutOfRange, DataOutOfRange, "EOF"),
		Wrapf(io.EOF, "EOF%d", 2),
	}
	for i := range vals {
		for j := range vals {
			_ = vals[i] == vals[j] // mustn't panic
		}
	}
}

func TestCode(t *testing.T) {
	testcases := []struct {
		in   error
		want codes.Code
	}{
		{nil, codes.OK},
		{errors.New("generic"), codes.Unknown},
		{New(codes.Canceled, "generic"), codes.Canceled},
		{Errorf(codes.NotFound, "unknown function %q", "NOPE"), codes.NotFound},
		{NewErrorf(codes.OutOfRange, DataOutOfRange, "Numeric overflow in function: CEIL: 1"), codes.OutOfRange},
		{context.Canceled, codes.Canceled},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
	}
	for _, tcase := range testcases {
		assert.Equalf(t, tcase.want, Code(tcase.in), "Code(%v)", tcase.in)
	}
}

func TestWrapping(t *testing.T) {
	err1 := NewErrorf(codes.OutOfRange, DataOutOfRange, "foo")
	err2 := Wrapf(err1, "bar")
	err3 := Wrapf(err2, "baz")

	assert.EqualError(t, err3, "baz: bar: foo")
	assert.Equal(t, codes.OutOfRange, Code(err3))
	assert.Equal(t, DataOutOfRange, ErrState(err3))
	assert.ErrorIs(t, err3, err1)
	assert.Equal(t, err1, errors.Unwrap(errors.Unwrap(err3)))

	wrapped := fmt.Errorf("eval: %w", err1)
	assert.Equal(t, codes.OutOfRange, Code(wrapped))
	assert.Equal(t, DataOutOfRange, ErrState(wrapped))
}

func TestErrState(t *testing.T) {
	assert.Equal(t, Undefined, ErrState(nil))
	assert.Equal(t, Undefined, ErrState(io.EOF))
	assert.Equal(t, Undefined, ErrState(New(codes.OutOfRange, "x")))
	assert.Equal(t, DataOutOfRange, ErrState(NewErrorf(codes.OutOfRange, DataOutOfRange, "x")))
	assert.Equal(t, "DataOutOfRange", DataOutOfRange.String())
	assert.Equal(t, "State(99)", State(99).String())
}

func TestIs(t *testing.T) {
	a := NewErrorf(codes.OutOfRange, DataOutOfRange, "Domain error in function: SQRT: %d", -1)
	b := NewErrorf(codes.OutOfRange, DataOutOfRange, "Domain error in function: SQRT: -1")
	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, New(codes.OutOfRange, a.Error())))
	assert.False(t, errors.Is(a, io.EOF))
}
